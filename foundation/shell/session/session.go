// File: session.go
// Title: Interactive Session Core
// Description: Implements the interactive execution mode: one submitted
//              line at a time through the shared pipeline, with transcript
//              echo, input history and a terminal Closed state after
//              exit/quit. A failed command is reported and the session
//              stays open; only terminating commands close it.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package session

import (
	"strings"

	"github.com/google/uuid"

	sherr "github.com/avoronin/shellemu/foundation/core/error"
	"github.com/avoronin/shellemu/foundation/core/log"
	"github.com/avoronin/shellemu/foundation/shell"
)

// State describes the session's position in its lifecycle
type State int

const (
	// StateIdle means the session is waiting for the next line
	StateIdle State = iota

	// StateProcessing means a submitted line is running the pipeline
	StateProcessing

	// StateClosed is terminal; submissions are ignored
	StateClosed
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProcessing:
		return "processing"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Options configures session construction
type Options struct {
	Logger *log.Logger
	Engine *shell.Engine

	// HistoryLimit caps the input history; 0 means DefaultHistoryLimit
	HistoryLimit int

	// PromptPathWidth caps the rendered working directory width; 0 means
	// DefaultPromptPathWidth
	PromptPathWidth int
}

// Session is the interactive execution mode over the shared pipeline
type Session struct {
	id      string
	engine  *shell.Engine
	history *History
	prompt  Prompt
	state   State
	logger  *log.Logger
}

// New creates an interactive session over the given engine
func New(opts Options) (*Session, error) {
	if opts.Engine == nil {
		return nil, sherr.New("engine is required").WithCode(sherr.CodeInternal)
	}
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	id := uuid.NewString()
	s := &Session{
		id:      id,
		engine:  opts.Engine,
		history: NewHistory(opts.HistoryLimit),
		prompt:  NewPrompt(opts.Engine.Identity(), opts.PromptPathWidth),
		state:   StateIdle,
		logger:  opts.Logger.WithField("component", "session").WithSessionID(id),
	}

	s.logger.Info("interactive session started", log.Fields{
		"user": opts.Engine.Identity().Username,
		"host": opts.Engine.Identity().Hostname,
	})

	return s, nil
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// State returns the current lifecycle state
func (s *Session) State() State {
	return s.state
}

// Prompt returns the rendered prompt for display next to the input field
func (s *Session) Prompt() string {
	return s.prompt.Render()
}

// History exposes the input history for recall navigation
func (s *Session) History() *History {
	return s.history
}

// Closed reports whether a terminating command has ended the session
func (s *Session) Closed() bool {
	return s.state == StateClosed
}

// Submit processes one raw input line: echoes prompt plus line to the
// sink, appends the line to history, runs the pipeline and renders the
// outcome. Returns true once the session is closed. Blank lines are
// no-ops. A closed session ignores every further submission.
func (s *Session) Submit(raw string, sink shell.Sink) bool {
	if s.state == StateClosed {
		return true
	}

	line := strings.TrimSpace(raw)
	if line == "" {
		return false
	}

	// Transcript fidelity: show the line as if typed after the prompt
	sink.WriteLine(s.prompt.Render() + " " + line)
	s.history.Append(line)

	s.state = StateProcessing
	defer func() {
		if s.state == StateProcessing {
			s.state = StateIdle
		}
	}()

	result, err := s.engine.ExecuteLine(line)
	if err != nil {
		s.logger.Debug("command failed", log.Fields{
			"line": line,
			"code": sherr.GetCode(err).String(),
		})
		sink.WriteLine(shell.RenderFailure(err))
		return false
	}

	for _, out := range result.Lines {
		sink.WriteLine(out)
	}

	if result.Terminate {
		s.state = StateClosed
		s.logger.Info("session closed by terminating command")
		return true
	}

	return false
}
