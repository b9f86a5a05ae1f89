// File: version.go
// Title: Version Information
// Description: Central version management for the shell emulator.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package version

import "fmt"

// Version constants for the emulator
const (
	// Version is the emulator release version
	Version = "0.1.0"

	// Name is the product name shown in banners and version output
	Name = "shellemu"
)

// String returns the full version string for display
func String() string {
	return fmt.Sprintf("%s v%s", Name, Version)
}
