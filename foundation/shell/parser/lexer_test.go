// File: lexer_test.go
// Title: Tokenizer Unit Tests
// Description: Tests for quote-aware splitting: quoting, quote stripping,
//              literal backslashes, blank input and unterminated quotes.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package parser

import (
	"reflect"
	"strings"
	"testing"

	sherr "github.com/avoronin/shellemu/foundation/core/error"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Simple command",
			input:    "echo hello world",
			expected: []string{"echo", "hello", "world"},
		},
		{
			name:     "Extra whitespace collapsed",
			input:    "  echo \t hello   ",
			expected: []string{"echo", "hello"},
		},
		{
			name:     "Double quotes group and strip",
			input:    `echo "hello world" tail`,
			expected: []string{"echo", "hello world", "tail"},
		},
		{
			name:     "Single quotes group and strip",
			input:    "echo 'a b c'",
			expected: []string{"echo", "a b c"},
		},
		{
			name:     "Quoted run joins surrounding token",
			input:    `echo pre"mid dle"post`,
			expected: []string{"echo", "premid dlepost"},
		},
		{
			name:     "Backslashes survive verbatim",
			input:    `ls C:\Windows\System32`,
			expected: []string{"ls", `C:\Windows\System32`},
		},
		{
			name:     "Backslashes inside quotes survive",
			input:    `cd "C:\Users\alex\My Documents"`,
			expected: []string{"cd", `C:\Users\alex\My Documents`},
		},
		{
			name:     "Double quote inside single quotes",
			input:    `echo 'say "hi"'`,
			expected: []string{"echo", `say "hi"`},
		},
		{
			name:     "Empty quoted argument",
			input:    `echo ""`,
			expected: []string{"echo", ""},
		},
		{
			name:     "Empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "Whitespace only",
			input:    "   \t  ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if err != nil {
				t.Fatalf("Split(%q) unexpected error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Split(%q) = %#v, want %#v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplit_UnterminatedQuote(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantColumn int
	}{
		{"Unterminated double quote", `echo "oops`, 6},
		{"Unterminated single quote", `echo 'oops`, 6},
		{"Unterminated at line start", `"oops`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(tt.input)
			if err == nil {
				t.Fatalf("Split(%q) expected error, got nil", tt.input)
			}
			if code := sherr.GetCode(err); code != sherr.CodeSyntax {
				t.Errorf("error code = %v, want %v", code, sherr.CodeSyntax)
			}
			e, ok := err.(*sherr.Error)
			if !ok {
				t.Fatalf("error is %T, want *sherr.Error", err)
			}
			if got := e.Details()["column"]; got != tt.wantColumn {
				t.Errorf("column detail = %v, want %d", got, tt.wantColumn)
			}
		})
	}
}

// Re-joining simple tokens with single spaces and re-tokenizing must give
// the same values back.
func TestSplit_RejoinIdempotence(t *testing.T) {
	inputs := []string{
		"echo one two three",
		`ls C:\Windows`,
		"pwd",
		`cd C:\Users\alex\Documents`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Split(input)
			if err != nil {
				t.Fatalf("first Split failed: %v", err)
			}
			second, err := Split(strings.Join(first, " "))
			if err != nil {
				t.Fatalf("second Split failed: %v", err)
			}
			if !reflect.DeepEqual(first, second) {
				t.Errorf("re-tokenized %#v, want %#v", second, first)
			}
		})
	}
}
