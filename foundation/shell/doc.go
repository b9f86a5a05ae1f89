// File: doc.go
// Title: Shell Package Documentation
// Description: Package documentation for the shell core.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

// Package shell implements the command interpretation core of the
// emulator.
//
// The pipeline is Expander -> Tokenizer -> Dispatcher, in that fixed
// order, shared by both execution modes: the interactive session
// (subpackage session) and the script runner (subpackage script) each
// feed raw lines into Engine.ExecuteLine and render the outcome onto a
// Sink. The dispatcher never calls back into either runner.
//
// Identity (user, host, working directory, home) is captured once by the
// host process and passed in as an immutable value; the core never
// queries the operating system itself.
package shell
