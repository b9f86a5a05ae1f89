// File: lexer.go
// Title: Command Line Tokenizer
// Description: Implements quote-aware splitting of an expanded command
//              line into tokens. Text inside matching single or double
//              quotes joins the surrounding token with its whitespace
//              intact; the quote characters themselves are stripped.
//              Backslashes are ordinary characters, not escape
//              introducers, because the emulated environment is full of
//              backslash-delimited paths that must survive verbatim.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package parser

import (
	"strings"

	sherr "github.com/avoronin/shellemu/foundation/core/error"
)

// Lexer splits a single command line into tokens
type Lexer struct {
	input    string
	position int  // current byte position in input
	ch       byte // current byte under examination, 0 at EOF
}

// NewLexer creates a new lexer for the given input line
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, position: -1}
	l.readChar()
	return l
}

// Split tokenizes a full line. Blank input yields an empty token slice
// and no error. An unterminated quote yields a syntax error carrying the
// column (1-based) where the quote was opened.
func Split(line string) ([]string, error) {
	return NewLexer(line).Tokenize()
}

// Tokenize consumes the whole input and returns its tokens in order
func (l *Lexer) Tokenize() ([]string, error) {
	var tokens []string

	for {
		tok, ok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}

	return tokens, nil
}

// nextToken scans one token; ok is false once the input is exhausted
func (l *Lexer) nextToken() (string, bool, error) {
	l.skipWhitespace()
	if l.ch == 0 {
		return "", false, nil
	}

	var b strings.Builder

	for l.ch != 0 && !isWhitespace(l.ch) {
		if l.ch == '"' || l.ch == '\'' {
			quote := l.ch
			openCol := l.position + 1
			l.readChar()

			for l.ch != 0 && l.ch != quote {
				b.WriteByte(l.ch)
				l.readChar()
			}
			if l.ch != quote {
				return "", false, sherr.Newf("unterminated %c-quote opened at column %d", quote, openCol).
					WithCode(sherr.CodeSyntax).
					WithDetail("column", openCol)
			}
			l.readChar() // consume closing quote
			continue
		}

		b.WriteByte(l.ch)
		l.readChar()
	}

	return b.String(), true, nil
}

// readChar advances to the next byte of the input
func (l *Lexer) readChar() {
	l.position++
	if l.position >= len(l.input) {
		l.ch = 0
		return
	}
	l.ch = l.input[l.position]
}

// skipWhitespace consumes spaces and tabs between tokens
func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

// isWhitespace reports whether c separates tokens
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
