// File: shell.go
// Title: High-Level Shell Engine
// Description: Wires the expander, tokenizer and dispatcher into the
//              single pipeline both execution modes share. One call to
//              ExecuteLine takes a raw line through variable expansion,
//              quote-aware tokenization, per-token home expansion and
//              dispatch.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package shell

import (
	sherr "github.com/avoronin/shellemu/foundation/core/error"
	"github.com/avoronin/shellemu/foundation/core/log"
	"github.com/avoronin/shellemu/foundation/shell/executor"
	"github.com/avoronin/shellemu/foundation/shell/parser"
	"github.com/avoronin/shellemu/foundation/shell/registry"
)

// Identity is the read-once snapshot of process-wide identity state.
// The host fills it at startup; the core never re-queries the system.
type Identity struct {
	Username   string
	Hostname   string
	WorkingDir string
	HomeDir    string
}

// Sink is the append-only text surface the core writes complete lines to
type Sink interface {
	WriteLine(line string)
}

// Result is the outcome of a dispatched command
type Result = executor.Result

// Options configures engine construction
type Options struct {
	Logger   *log.Logger
	Identity Identity

	// Environ resolves environment variable names for %NAME% expansion.
	// Nil resolves nothing.
	Environ parser.LookupFunc
}

// Engine runs the expand-tokenize-dispatch pipeline
type Engine struct {
	expander *parser.Expander
	registry *registry.Registry
	executor *executor.Engine
	identity Identity
	logger   *log.Logger
}

// New creates a new engine with the built-in command set
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	logger := opts.Logger.WithField("component", "shell-engine")

	reg, err := registry.New(registry.Options{
		Logger:     opts.Logger,
		WorkingDir: opts.Identity.WorkingDir,
	})
	if err != nil {
		return nil, sherr.Wrap(err, "initialize registry").WithCode(sherr.CodeInternal)
	}

	exec, err := executor.New(executor.Options{
		Logger:   opts.Logger,
		Registry: reg,
	})
	if err != nil {
		return nil, sherr.Wrap(err, "initialize executor").WithCode(sherr.CodeInternal)
	}

	return &Engine{
		expander: parser.NewExpander(opts.Environ, opts.Identity.HomeDir),
		registry: reg,
		executor: exec,
		identity: opts.Identity,
		logger:   logger,
	}, nil
}

// ExecuteLine runs one raw line through the full pipeline. The phases are
// fixed: line-level %NAME% expansion, tokenization, per-token leading ~
// expansion, dispatch. The whole-line leading ~ case is covered by the
// per-token phase since the first token starts the line.
func (e *Engine) ExecuteLine(raw string) (*Result, error) {
	expanded := e.expander.ExpandLine(raw)

	tokens, err := parser.Split(expanded)
	if err != nil {
		return nil, err
	}
	for i, tok := range tokens {
		tokens[i] = e.expander.ExpandToken(tok)
	}

	return e.executor.Dispatch(tokens)
}

// Registry exposes the command registry for listings and diagnostics
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Identity returns the identity snapshot the engine was built with
func (e *Engine) Identity() Identity {
	return e.identity
}
