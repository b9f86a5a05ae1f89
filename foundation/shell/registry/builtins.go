// File: builtins.go
// Title: Built-in Command Definitions
// Description: Registers the fixed set of built-in commands: exit/quit
//              (terminating), echo and pwd (functional), ls and cd
//              (diagnostic stubs without filesystem effects).
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package registry

import (
	"strings"
)

// ShutdownNotice is the line emitted by exit/quit before the session ends
const ShutdownNotice = "Shutting down the emulator."

// NoArgumentsMarker replaces the argument list in stub output when a stub
// command is invoked without arguments
const NoArgumentsMarker = "(no arguments)"

// registerBuiltins populates the registry with the fixed command set
func (r *Registry) registerBuiltins(workingDir string) error {
	builtins := []*Command{
		{
			Name:        "exit",
			Aliases:     []string{"quit"},
			Kind:        KindTerminating,
			Description: "end the emulator session",
			Handler: func(args []string) ([]string, error) {
				return []string{ShutdownNotice}, nil
			},
		},
		{
			Name:        "echo",
			Kind:        KindFunctional,
			Description: "print its arguments joined by single spaces",
			Handler: func(args []string) ([]string, error) {
				return []string{strings.Join(args, " ")}, nil
			},
		},
		{
			Name:        "pwd",
			Kind:        KindFunctional,
			Description: "print the working directory",
			Handler: func(args []string) ([]string, error) {
				return []string{workingDir}, nil
			},
		},
		{
			Name:        "ls",
			Kind:        KindStub,
			Description: "stub: list directory contents",
			Handler:     stubHandler("ls", false),
		},
		{
			Name:        "cd",
			Kind:        KindStub,
			Description: "stub: change the working directory",
			Handler:     stubHandler("cd", true),
		},
	}

	for _, cmd := range builtins {
		if err := r.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

// stubHandler builds the diagnostic handler shared by the stub commands.
// The stub prints its own name and arguments; when reportTarget is set
// and an argument is present it adds a line naming the would-be target.
func stubHandler(name string, reportTarget bool) HandlerFunc {
	return func(args []string) ([]string, error) {
		rendered := NoArgumentsMarker
		if len(args) > 0 {
			rendered = strings.Join(args, " ")
		}

		lines := []string{name + " " + rendered}
		if reportTarget && len(args) > 0 {
			lines = append(lines, "(stub) change directory to: "+args[0])
		}
		return lines, nil
	}
}
