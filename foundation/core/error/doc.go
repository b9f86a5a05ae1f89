// File: doc.go
// Title: Error Package Documentation
// Description: Package documentation for the core error handling package.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

// Package error provides structured error handling for the shell emulator.
//
// Every error that crosses a component boundary is an *Error carrying a
// classification Code (syntax error, unknown command, execution failure,
// script read failure, configuration problem) and a Severity. The code is
// what consumers branch on: the interactive session reports and continues
// for every code, the script runner reports and halts for every code.
//
// Usage:
//
//	err := sherr.New("unterminated quote").WithCode(sherr.CodeSyntax)
//	if sherr.GetCode(err) == sherr.CodeSyntax { ... }
//
// The package name collides with the builtin error type, so it is
// conventionally imported as sherr.
package error
