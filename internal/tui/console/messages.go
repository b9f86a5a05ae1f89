// File: messages.go
// Title: Console Message Types
// Description: tea.Msg types for deferred console actions: the delayed
//              startup script run and the delayed quit after a
//              terminating command.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package console

import "time"

// startupScriptMsg fires once shortly after the console opens and
// triggers the configured startup script
type startupScriptMsg time.Time

// closeMsg fires after the quit delay so the shutdown notice stays
// visible for a moment before the program exits
type closeMsg time.Time

// Deferred action delays
const (
	// startupScriptDelay postpones the startup script until the first
	// frame has been drawn
	startupScriptDelay = 150 * time.Millisecond

	// closeDelay keeps the final transcript on screen briefly before quit
	closeDelay = 50 * time.Millisecond
)
