// File: main.go
// Title: Emulator Entry Point
// Description: Main entry point for the shellemu binary.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package main

import (
	"os"

	"github.com/avoronin/shellemu/cmd/shellemu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
