// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the shell emulator. Codes drive the
//              recover-or-halt decision in the interactive session and the
//              script runner and keep error reporting uniform.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the shell emulator
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Command pipeline
	CodeSyntax          Code = "SYNTAX_ERROR"
	CodeCommandNotFound Code = "COMMAND_NOT_FOUND"
	CodeExecution       Code = "EXECUTION_ERROR"

	// Scripting
	CodeScriptRead Code = "SCRIPT_READ"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeSyntax, CodeCommandNotFound, CodeExecution,
		CodeScriptRead,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// DefaultSeverity returns the severity normally associated with the code
func (c Code) DefaultSeverity() Severity {
	switch c {
	case CodeSyntax, CodeCommandNotFound:
		return SeverityLow
	case CodeExecution, CodeScriptRead:
		return SeverityMedium
	case CodeConfigError, CodeInvalidConfig, CodeInternal:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
