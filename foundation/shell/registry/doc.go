// File: doc.go
// Title: Registry Package Documentation
// Description: Package documentation for the command registry.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

// Package registry holds the fixed set of built-in commands.
//
// Each command carries a Kind so the dispatcher stays free of
// command-specific conditionals: terminating commands end the session,
// functional commands produce real output, stubs only echo their own
// invocation. The registry is populated during New and treated as
// read-only afterwards.
package registry
