// File: doc.go
// Title: Stringx Package Documentation
// Description: Package documentation for the string utilities.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

// Package stringx provides small string helpers used across the emulator:
// blank checks for input validation, ellipsis truncation for prompt
// rendering and line splitting for script sources.
package stringx
