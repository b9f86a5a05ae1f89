// File: doc.go
// Title: Executor Package Documentation
// Description: Package documentation for the command dispatcher.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

// Package executor dispatches tokenized command lines.
//
// The dispatcher owns no command-specific logic: it resolves the first
// token through the registry and runs whatever handler it finds. Its
// contract toward the runners above it is strict: every error returned
// from Dispatch carries a classification code and is recoverable; whether
// to continue (interactive session) or halt (script runner) is entirely
// the runner's decision.
package executor
