// File: executor.go
// Title: Command Dispatcher
// Description: Resolves the first token of a tokenized line against the
//              command registry and invokes the matching handler with the
//              remaining tokens. Exactly one registry entry executes per
//              call; every failure is classified and returned, never
//              propagated past the current command.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package executor

import (
	sherr "github.com/avoronin/shellemu/foundation/core/error"
	"github.com/avoronin/shellemu/foundation/core/log"
	"github.com/avoronin/shellemu/foundation/shell/registry"
)

// Result represents the outcome of a successfully dispatched command
type Result struct {
	// Lines holds the output lines produced by the command, in order
	Lines []string

	// Terminate is set when the command asks the hosting session to end
	Terminate bool
}

// Options configures dispatcher construction
type Options struct {
	Logger   *log.Logger
	Registry *registry.Registry
}

// Engine dispatches tokenized command lines to registered handlers
type Engine struct {
	registry *registry.Registry
	logger   *log.Logger
}

// New creates a new dispatcher over the given registry
func New(opts Options) (*Engine, error) {
	if opts.Registry == nil {
		return nil, sherr.New("registry is required").WithCode(sherr.CodeInternal)
	}
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	return &Engine{
		registry: opts.Registry,
		logger:   opts.Logger.WithField("component", "executor"),
	}, nil
}

// Dispatch executes the command named by the first token. An empty token
// sequence is a successful no-op. An unknown name yields a command-not-found
// error whose message is the name itself. A handler failure comes back as
// an execution error unless the handler already classified it.
func (e *Engine) Dispatch(tokens []string) (*Result, error) {
	if len(tokens) == 0 {
		return &Result{}, nil
	}

	name := tokens[0]
	args := tokens[1:]

	cmd, found := e.registry.Resolve(name)
	if !found {
		e.logger.Debug("command not found", log.Fields{"command": name})
		return nil, sherr.New(name).
			WithCode(sherr.CodeCommandNotFound).
			WithDetail("command", name)
	}

	e.logger.Debug("dispatching command", log.Fields{
		"command":  cmd.Name,
		"kind":     cmd.Kind.String(),
		"argCount": len(args),
	})

	lines, err := cmd.Handler(args)
	if err != nil {
		if _, ok := err.(*sherr.Error); ok {
			return nil, err
		}
		return nil, sherr.Wrap(err, cmd.Name).
			WithCode(sherr.CodeExecution).
			WithDetail("command", cmd.Name)
	}

	return &Result{
		Lines:     lines,
		Terminate: cmd.Kind == registry.KindTerminating,
	}, nil
}
