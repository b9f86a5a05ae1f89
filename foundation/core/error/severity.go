// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. In the emulator every
//              pipeline error is recoverable; severity only controls how
//              prominently an error is logged.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a routine user-facing error
	// Examples: mistyped command name, unterminated quote
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that interrupted an operation
	// Examples: a handler failing mid-run, an unreadable startup script
	SeverityMedium

	// SeverityHigh indicates an error that prevents normal startup or operation
	// Examples: unparseable configuration file
	SeverityHigh
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-2)
func (s Severity) Level() int {
	return int(s)
}
