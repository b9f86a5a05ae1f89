// File: version.go
// Title: Version Command
// Description: Prints version and build information.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/avoronin/shellemu/pkg/core/version"
)

var (
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Printf("  Git Commit: %s\n", GitCommit)
		fmt.Printf("  Build Date: %s\n", BuildDate)
		fmt.Printf("  Go Version: %s\n", runtime.Version())
		fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
