// File: expand.go
// Title: Variable and Home Directory Expansion
// Description: Implements textual expansion of %NAME% environment variable
//              references and the leading ~ home directory shorthand.
//              Variable expansion operates on the whole line BEFORE
//              tokenization; home expansion operates per token AFTER
//              tokenization so mid-path occurrences stay untouched.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package parser

import (
	"strings"
)

// LookupFunc resolves an environment variable name to its value
type LookupFunc func(name string) (string, bool)

// Expander resolves %NAME% references and the leading ~ shorthand
type Expander struct {
	lookup LookupFunc
	home   string
}

// NewExpander creates an expander over the given environment lookup and
// home directory. A nil lookup resolves nothing, leaving every reference
// literal.
func NewExpander(lookup LookupFunc, home string) *Expander {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}
	return &Expander{lookup: lookup, home: home}
}

// ExpandLine resolves every %NAME% reference in the line. A reference is
// a % followed by name characters (letters, digits, underscore) and a
// closing %. Unresolved names stay literal, as does any % that does not
// open a well-formed reference. Quote characters have no effect here:
// expansion runs before tokenization.
func (e *Expander) ExpandLine(line string) string {
	if !strings.ContainsRune(line, '%') {
		return line
	}

	var b strings.Builder
	b.Grow(len(line))

	for i := 0; i < len(line); {
		if line[i] != '%' {
			b.WriteByte(line[i])
			i++
			continue
		}

		end := i + 1
		for end < len(line) && isNameChar(line[end]) {
			end++
		}

		// A well-formed reference needs a non-empty name and a closing %
		if end > i+1 && end < len(line) && line[end] == '%' {
			name := line[i+1 : end]
			if value, ok := e.lookup(name); ok {
				b.WriteString(value)
			} else {
				b.WriteString(line[i : end+1])
			}
			i = end + 1
			continue
		}

		b.WriteByte('%')
		i++
	}

	return b.String()
}

// ExpandToken replaces a LEADING ~ in the token with the home directory.
// Recognized forms are a bare ~, ~/rest and ~\rest. A ~ anywhere else in
// the token is left alone so path fragments never get corrupted. Tokens
// pass through unchanged when no home directory is known.
func (e *Expander) ExpandToken(token string) string {
	if e.home == "" || len(token) == 0 || token[0] != '~' {
		return token
	}
	if len(token) == 1 {
		return e.home
	}
	if token[1] == '/' || token[1] == '\\' {
		return e.home + token[1:]
	}
	return token
}

// isNameChar reports whether c may appear in a variable name
func isNameChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
