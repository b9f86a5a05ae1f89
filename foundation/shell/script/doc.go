// File: doc.go
// Title: Script Package Documentation
// Description: Package overview for the batch execution mode.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

// Package script runs prepared command scripts through the shared shell
// pipeline. Unlike the interactive session, which recovers from failed
// commands and keeps prompting, the runner aborts at the first failure
// and reports the 1-based line number of the command that failed. Blank
// lines and comment lines ("#", "//", ";") are skipped.
//
// The runner reads the whole file before executing anything, so an
// unreadable script never produces a partial run.
package script
