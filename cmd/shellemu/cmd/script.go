// File: script.go
// Title: Script Command
// Description: Headless script execution. Runs a command script through
//              the shell pipeline, writing the transcript to stdout, and
//              exits non-zero when the script aborts.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avoronin/shellemu/foundation/core/log"
	"github.com/avoronin/shellemu/foundation/shell"
	"github.com/avoronin/shellemu/foundation/shell/script"
	"github.com/avoronin/shellemu/internal/host"
)

var scriptCmd = &cobra.Command{
	Use:   "script FILE",
	Short: "Run a command script without the TUI",
	Long: `Runs the given command script through the shell pipeline and
writes the transcript to stdout.

Blank lines and comment lines (starting with #, // or ;) are skipped.
The run aborts at the first failing command, reporting its line number,
and the process exits with a non-zero status.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScript,
}

func init() {
	rootCmd.AddCommand(scriptCmd)
}

// stdoutSink writes transcript lines to standard output
type stdoutSink struct{}

func (stdoutSink) WriteLine(line string) {
	fmt.Println(line)
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("load configuration", err)
		return err
	}
	logger := newLogger(cfg)

	engine, err := shell.New(shell.Options{
		Logger:   logger,
		Identity: host.Discover(),
		Environ:  host.Environ,
	})
	if err != nil {
		printError("initialize shell", err)
		return err
	}

	runner, err := script.New(script.Options{
		Logger:          logger,
		Engine:          engine,
		PromptPathWidth: cfg.Console.PromptPathWidth,
	})
	if err != nil {
		printError("initialize runner", err)
		return err
	}

	report, err := runner.RunFile(args[0], stdoutSink{})
	if err != nil {
		// The transcript already carries the failure details
		return err
	}

	logger.Debug("script finished", log.Fields{
		"executed":   report.Executed,
		"terminated": report.Terminated,
	})
	return nil
}
