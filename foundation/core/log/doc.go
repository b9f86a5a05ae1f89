// File: doc.go
// Title: Log Package Documentation
// Description: Package documentation for the structured logging package.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

// Package log provides structured logging for the shell emulator.
//
// Logging is strictly separated from the emulator's output sink: the sink
// carries the transcript the user sees, the logger carries diagnostics for
// the developer. Every core component takes a *Logger in its Options and
// falls back to GetDefault() when none is supplied.
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//	}).WithName("shellemu")
//
//	logger.Info("command dispatched", log.Fields{"command": "echo"})
package log
