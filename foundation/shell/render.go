// File: render.go
// Title: Failure Rendering
// Description: Maps classified pipeline errors to the user-facing lines
//              both execution modes print. Kept in one place so the
//              interactive transcript and script output stay identical.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package shell

import (
	sherr "github.com/avoronin/shellemu/foundation/core/error"
)

// RenderFailure converts a pipeline error into the single transcript line
// shown to the user
func RenderFailure(err error) string {
	if err == nil {
		return ""
	}

	// Syntax and not-found errors read best as just their own message;
	// execution errors keep the full cause chain.
	short := err.Error()
	if e, ok := err.(*sherr.Error); ok {
		short = e.Message()
	}

	switch sherr.GetCode(err) {
	case sherr.CodeSyntax:
		return "Syntax error: " + short
	case sherr.CodeCommandNotFound:
		return "Unknown command: " + short
	default:
		return "Execution error: " + err.Error()
	}
}
