// File: shell_test.go
// Title: Shell Engine Integration Tests
// Description: End-to-end tests of the expand-tokenize-dispatch pipeline
//              including the documented expansion ordering.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package shell

import (
	"reflect"
	"testing"

	sherr "github.com/avoronin/shellemu/foundation/core/error"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	env := map[string]string{
		"USERNAME":    "alex",
		"USERPROFILE": `C:\Users\alex`,
	}
	eng, err := New(Options{
		Identity: Identity{
			Username:   "alex",
			Hostname:   "lab-07",
			WorkingDir: `C:\Users\alex\project`,
			HomeDir:    `C:\Users\alex`,
		},
		Environ: func(name string) (string, bool) {
			v, ok := env[name]
			return v, ok
		},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return eng
}

func TestExecuteLine(t *testing.T) {
	eng := newTestEngine(t)

	tests := []struct {
		name          string
		line          string
		wantLines     []string
		wantTerminate bool
	}{
		{
			name:      "Echo joins arguments",
			line:      "echo a b",
			wantLines: []string{"a b"},
		},
		{
			name:      "Echo expands variable",
			line:      "echo %USERNAME%",
			wantLines: []string{"alex"},
		},
		{
			name:      "Pwd reports identity working dir",
			line:      "pwd",
			wantLines: []string{`C:\Users\alex\project`},
		},
		{
			name: "Variable expansion happens before tokenization",
			line: `cd %USERPROFILE%\Documents`,
			wantLines: []string{
				`cd C:\Users\alex\Documents`,
				`(stub) change directory to: C:\Users\alex\Documents`,
			},
		},
		{
			name:      "Home expansion is per token",
			line:      `ls ~\Downloads`,
			wantLines: []string{`ls C:\Users\alex\Downloads`},
		},
		{
			name:      "Bare tilde argument expands to home",
			line:      "echo ~",
			wantLines: []string{`C:\Users\alex`},
		},
		{
			name:          "Exit terminates",
			line:          "exit",
			wantLines:     []string{"Shutting down the emulator."},
			wantTerminate: true,
		},
		{
			name:      "Blank line is a no-op",
			line:      "   ",
			wantLines: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := eng.ExecuteLine(tt.line)
			if err != nil {
				t.Fatalf("ExecuteLine(%q) failed: %v", tt.line, err)
			}
			if !reflect.DeepEqual(res.Lines, tt.wantLines) {
				t.Errorf("Lines = %#v, want %#v", res.Lines, tt.wantLines)
			}
			if res.Terminate != tt.wantTerminate {
				t.Errorf("Terminate = %v, want %v", res.Terminate, tt.wantTerminate)
			}
		})
	}
}

func TestExecuteLine_Failures(t *testing.T) {
	eng := newTestEngine(t)

	tests := []struct {
		name     string
		line     string
		wantCode sherr.Code
	}{
		{"Unknown command", "frobnicate now", sherr.CodeCommandNotFound},
		{"Unterminated quote", `echo "half`, sherr.CodeSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.ExecuteLine(tt.line)
			if err == nil {
				t.Fatalf("ExecuteLine(%q) expected error", tt.line)
			}
			if code := sherr.GetCode(err); code != tt.wantCode {
				t.Errorf("code = %v, want %v", code, tt.wantCode)
			}
		})
	}
}

func TestRenderFailure(t *testing.T) {
	eng := newTestEngine(t)

	tests := []struct {
		name string
		line string
		want string
	}{
		{"Not found", "frobnicate", "Unknown command: frobnicate"},
		{"Syntax", `echo "x`, `Syntax error: unterminated "-quote opened at column 6`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.ExecuteLine(tt.line)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := RenderFailure(err); got != tt.want {
				t.Errorf("RenderFailure = %q, want %q", got, tt.want)
			}
		})
	}

	if got := RenderFailure(nil); got != "" {
		t.Errorf("RenderFailure(nil) = %q, want empty", got)
	}
}
