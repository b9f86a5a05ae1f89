// File: doc.go
// Title: Session Package Documentation
// Description: Package documentation for the interactive session.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

// Package session implements the interactive execution mode.
//
// A Session owns its history and prompt and feeds one line at a time
// into the shared pipeline. Errors are rendered and the session stays
// open; only exit/quit moves it into the terminal Closed state. History
// recall is cursor-based with clamping at both bounds, so mashing the
// previous key at the oldest entry is harmless.
package session
