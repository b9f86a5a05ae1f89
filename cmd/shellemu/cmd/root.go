// File: root.go
// Title: Root Command
// Description: Root cobra command. Without a subcommand it loads the
//              configuration, applies command-line overrides and starts
//              the interactive console.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avoronin/shellemu/foundation/core/log"
	"github.com/avoronin/shellemu/internal/tui/console"
	"github.com/avoronin/shellemu/pkg/core/config"
)

var (
	cfgFile     string
	vfsPath     string
	startupPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "shellemu",
	Short: "shellemu - prototype OS shell emulator",
	Long: `shellemu is a prototype shell emulator with a terminal UI.

It supports environment variable expansion (%NAME%), home directory
expansion (~), quote-aware tokenization and a small built-in command
set. Stub commands (ls, cd) report their arguments without touching the
file system; echo, pwd and exit/quit behave for real.

A startup script can be run automatically right after the console
opens; it aborts at the first failing command.`,
	RunE: runConsole,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./configs/shellemu.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")

	rootCmd.Flags().StringVar(&vfsPath, "vfs", "",
		"path of the virtual file system source archive")
	rootCmd.Flags().StringVar(&startupPath, "startup", "",
		"path of the startup command script")
}

// loadConfig loads the configuration honoring the --config flag and
// applies flag overrides
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if vfsPath != "" {
		cfg.VFS.Path = vfsPath
	}
	if startupPath != "" {
		cfg.Startup.Script = startupPath
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}

	return cfg, nil
}

// newLogger builds the application logger from the configuration
func newLogger(cfg *config.Config) *log.Logger {
	level, _ := log.ParseLevel(cfg.General.LogLevel)
	format, _ := log.ParseFormat(cfg.General.LogFormat)

	return log.New().
		WithName(cfg.General.Name).
		WithLevel(level).
		WithFormat(format).
		WithOutput(os.Stderr)
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("load configuration", err)
		return err
	}

	logger := newLogger(cfg)

	if err := console.Run(cfg, logger); err != nil {
		printError("run console", err)
		return err
	}
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
