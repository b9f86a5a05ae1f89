// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used throughout the
//              emulator. Errors carry a code, a severity and an optional
//              detail map while staying compatible with Go's standard
//              error interface, errors.Is and errors.As.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package error

import (
	"fmt"
	"strings"
	"time"
)

// Error represents a structured error with code, severity and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context
func Wrap(cause error, message string) *Error {
	if cause == nil {
		return New(message)
	}

	e := New(message)
	e.cause = cause

	// Inherit code and severity from a wrapped structured error
	if inner, ok := cause.(*Error); ok {
		e.code = inner.code
		e.severity = inner.severity
	}
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(cause error, format string, args ...interface{}) *Error {
	return Wrap(cause, fmt.Sprintf(format, args...))
}

// WithCode sets the error code and its default severity
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = code.DefaultSeverity()
	return e
}

// WithSeverity overrides the severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation records the operation that produced the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail attaches a key/value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// Error implements the standard error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.operation != "" {
		b.WriteString(e.operation)
		b.WriteString(": ")
	}
	b.WriteString(e.message)

	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Message returns the message without operation prefix or cause chain
func (e *Error) Message() string {
	return e.message
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns the creation time of the error
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Operation returns the recorded operation, if any
func (e *Error) Operation() string {
	return e.operation
}

// Details returns the detail map (never nil)
func (e *Error) Details() map[string]interface{} {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	return e.details
}

// GetCode extracts the code from any error, walking the wrap chain
func GetCode(err error) Code {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return CodeUnknown
}

// GetSeverity extracts the severity from any error
func GetSeverity(err error) Severity {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.severity
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return SeverityMedium
}

// HasCode reports whether err or any wrapped error carries the given code
func HasCode(err error, code Code) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return false
}
