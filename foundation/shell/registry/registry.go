// File: registry.go
// Title: Built-in Command Registry
// Description: Implements the registry of built-in commands. Commands are
//              classified as terminating (end the session), functional
//              (produce real output) or stub (only report their own
//              invocation). The registry is populated once at startup and
//              read-only afterwards; lookup is exact and case-sensitive
//              with a single alias hop.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package registry

import (
	"sort"
	"sync"

	sherr "github.com/avoronin/shellemu/foundation/core/error"
	"github.com/avoronin/shellemu/foundation/core/log"
	"github.com/avoronin/shellemu/foundation/utils/stringx"
)

// Kind classifies the behavior of a registered command
type Kind int

const (
	// KindTerminating commands signal the hosting session to end
	KindTerminating Kind = iota

	// KindFunctional commands produce real output
	KindFunctional

	// KindStub commands only echo their own invocation
	KindStub
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindTerminating:
		return "terminating"
	case KindFunctional:
		return "functional"
	case KindStub:
		return "stub"
	default:
		return "unknown"
	}
}

// HandlerFunc executes a command over its argument tokens and returns the
// output lines
type HandlerFunc func(args []string) ([]string, error)

// Command defines a single built-in command
type Command struct {
	Name        string
	Aliases     []string
	Kind        Kind
	Description string
	Handler     HandlerFunc
}

// Options configures registry construction
type Options struct {
	Logger *log.Logger

	// WorkingDir is the working directory snapshot reported by pwd.
	// Read once at startup, never re-queried.
	WorkingDir string
}

// Registry maps command names to their definitions
type Registry struct {
	commands map[string]*Command
	aliases  map[string]string
	logger   *log.Logger
	mutex    sync.RWMutex
}

// New creates a registry pre-populated with the built-in commands
func New(opts Options) (*Registry, error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	r := &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]string),
		logger:   opts.Logger.WithField("component", "registry"),
	}

	if err := r.registerBuiltins(opts.WorkingDir); err != nil {
		return nil, sherr.Wrap(err, "register builtin commands").WithCode(sherr.CodeInternal)
	}

	r.logger.Info("command registry initialized", log.Fields{
		"commandCount": len(r.commands),
		"aliasCount":   len(r.aliases),
	})

	return r, nil
}

// Register adds a command definition to the registry
func (r *Registry) Register(cmd *Command) error {
	if cmd == nil {
		return sherr.New("command definition cannot be nil").WithCode(sherr.CodeInternal)
	}
	if stringx.IsBlank(cmd.Name) {
		return sherr.New("command name cannot be empty").WithCode(sherr.CodeInternal)
	}
	if cmd.Handler == nil {
		return sherr.Newf("command %s has no handler", cmd.Name).WithCode(sherr.CodeInternal)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.commands[cmd.Name]; exists {
		return sherr.Newf("command %s already registered", cmd.Name).WithCode(sherr.CodeInternal)
	}
	if _, exists := r.aliases[cmd.Name]; exists {
		return sherr.Newf("command %s already registered as alias", cmd.Name).WithCode(sherr.CodeInternal)
	}

	for _, alias := range cmd.Aliases {
		if _, exists := r.commands[alias]; exists {
			return sherr.Newf("alias %s collides with command", alias).WithCode(sherr.CodeInternal)
		}
		if _, exists := r.aliases[alias]; exists {
			return sherr.Newf("alias %s already registered", alias).WithCode(sherr.CodeInternal)
		}
	}

	r.commands[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.aliases[alias] = cmd.Name
	}

	return nil
}

// Resolve finds a command by exact, case-sensitive name or alias
func (r *Registry) Resolve(name string) (*Command, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if cmd, ok := r.commands[name]; ok {
		return cmd, true
	}
	if canonical, ok := r.aliases[name]; ok {
		cmd, ok := r.commands[canonical]
		return cmd, ok
	}
	return nil, false
}

// Names returns all primary command names in sorted order
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NamesByKind returns the sorted primary names of all commands of a kind
func (r *Registry) NamesByKind(kind Kind) []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var names []string
	for name, cmd := range r.commands {
		if cmd.Kind == kind {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
