// File: prompt.go
// Title: Prompt Rendering
// Description: Renders the user@host:cwd$ prompt from the immutable
//              identity snapshot. Long working directories are shortened
//              from the left so the deepest path segments stay visible.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package session

import (
	"github.com/avoronin/shellemu/foundation/shell"
	"github.com/avoronin/shellemu/foundation/utils/stringx"
)

// DefaultPromptPathWidth is the maximum rendered width of the working
// directory inside the prompt
const DefaultPromptPathWidth = 60

// Prompt renders the session prompt from fixed identity values
type Prompt struct {
	username  string
	hostname  string
	dir       string
	pathWidth int
}

// NewPrompt creates a prompt for the given identity; a non-positive
// pathWidth falls back to DefaultPromptPathWidth
func NewPrompt(identity shell.Identity, pathWidth int) Prompt {
	if pathWidth <= 0 {
		pathWidth = DefaultPromptPathWidth
	}
	return Prompt{
		username:  identity.Username,
		hostname:  identity.Hostname,
		dir:       identity.WorkingDir,
		pathWidth: pathWidth,
	}
}

// Render returns the prompt string, e.g. alex@lab-07:C:\Users\alex$
func (p Prompt) Render() string {
	return p.username + "@" + p.hostname + ":" +
		stringx.TruncateLeft(p.dir, p.pathWidth, "…") + "$"
}
