// File: runner.go
// Title: Script Runner
// Description: Batch execution mode over the shared pipeline. Reads a
//              whole script up front, runs it line by line through the
//              engine and halts at the first failing command, reporting
//              the 1-based line number. Comment and blank lines are
//              skipped without counting as executions.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package script

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	sherr "github.com/avoronin/shellemu/foundation/core/error"
	"github.com/avoronin/shellemu/foundation/core/log"
	"github.com/avoronin/shellemu/foundation/shell"
	"github.com/avoronin/shellemu/foundation/shell/session"
	"github.com/avoronin/shellemu/foundation/utils/stringx"
)

// commentPrefixes mark lines the runner skips entirely
var commentPrefixes = []string{"#", "//", ";"}

// Options configures runner construction
type Options struct {
	Logger *log.Logger
	Engine *shell.Engine

	// PromptPathWidth caps the echoed prompt's directory width; 0 means
	// session.DefaultPromptPathWidth
	PromptPathWidth int
}

// Report is the observable outcome of a script run
type Report struct {
	// Executed counts the commands that actually ran, skipped lines excluded
	Executed int

	// HaltedLine is the 1-based line number of the failing command, 0 when
	// the script ran to completion
	HaltedLine int

	// Halted is true when a command failed and aborted the run
	Halted bool

	// Terminated is true when a terminating command ended the run early;
	// this is an orderly stop, not a failure
	Terminated bool
}

// Runner executes scripts over the shared pipeline
type Runner struct {
	engine *shell.Engine
	prompt session.Prompt
	logger *log.Logger
}

// New creates a script runner over the given engine
func New(opts Options) (*Runner, error) {
	if opts.Engine == nil {
		return nil, sherr.New("engine is required").WithCode(sherr.CodeInternal)
	}
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	return &Runner{
		engine: opts.Engine,
		prompt: session.NewPrompt(opts.Engine.Identity(), opts.PromptPathWidth),
		logger: opts.Logger.WithField("component", "script-runner"),
	}, nil
}

// RunFile reads the script at path and executes it. A missing or
// unreadable file is reported on the sink and returned as an error
// before any command runs.
func (r *Runner) RunFile(path string, sink shell.Sink) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		rerr := sherr.Wrapf(err, "read script %s", path).
			WithCode(sherr.CodeScriptRead).
			WithDetail("path", path)
		sink.WriteLine("[script] cannot read: " + path)
		return &Report{}, rerr
	}

	sink.WriteLine("[script] running: " + path)
	return r.Run(stringx.SplitLines(string(data)), sink)
}

// Run executes the given script lines in order. Line numbers in the
// returned report are 1-based positions in the input slice. The first
// failing command aborts the run; every later line stays unexecuted.
func (r *Runner) Run(lines []string, sink shell.Sink) (*Report, error) {
	runID := uuid.NewString()
	logger := r.logger.WithField("run_id", runID)
	logger.Info("script run started", log.Fields{"lines": len(lines)})

	report := &Report{}
	promptStr := r.prompt.Render()

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || isComment(line) {
			continue
		}

		sink.WriteLine(promptStr + " " + line)

		result, err := r.engine.ExecuteLine(line)
		if err != nil {
			report.Executed++
			report.Halted = true
			report.HaltedLine = lineNo

			sink.WriteLine(shell.RenderFailure(err))
			sink.WriteLine(fmt.Sprintf("[script] aborted at line %d", lineNo))

			logger.Warn("script run aborted", log.Fields{
				"line":    lineNo,
				"command": line,
				"code":    sherr.GetCode(err).String(),
			})
			return report, sherr.Wrapf(err, "script aborted at line %d", lineNo).
				WithDetail("line", lineNo)
		}

		report.Executed++
		for _, out := range result.Lines {
			sink.WriteLine(out)
		}

		if result.Terminate {
			report.Terminated = true
			logger.Info("script run terminated by command", log.Fields{"line": lineNo})
			return report, nil
		}
	}

	logger.Info("script run completed", log.Fields{"executed": report.Executed})
	return report, nil
}

// isComment reports whether a trimmed line is a comment
func isComment(line string) bool {
	for _, p := range commentPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
