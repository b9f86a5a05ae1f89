// File: identity.go
// Title: Host Identity Discovery
// Description: Queries the operating system once at startup for the
//              identity values the shell core treats as immutable:
//              username, hostname, working directory and home directory.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package host

import (
	"os"
	"os/user"

	"github.com/avoronin/shellemu/foundation/shell"
	"github.com/avoronin/shellemu/foundation/utils/stringx"
)

// Fallback values used when the system refuses to answer
const (
	FallbackUsername = "user"
	FallbackHostname = "host"
)

// Discover queries the system for the identity snapshot. Every lookup
// has a fallback, so the returned identity is always usable. The core
// never re-queries; changes to the environment after startup are
// invisible by design of the snapshot.
func Discover() shell.Identity {
	id := shell.Identity{
		Username: FallbackUsername,
		Hostname: FallbackHostname,
	}

	// Environment first, then the user database
	name := stringx.FirstNonBlank(os.Getenv("USERNAME"), os.Getenv("USER"))
	if name == "" {
		if u, err := user.Current(); err == nil {
			name = u.Username
		}
	}
	if stringx.IsNotBlank(name) {
		id.Username = name
	}

	if host, err := os.Hostname(); err == nil && stringx.IsNotBlank(host) {
		id.Hostname = host
	}

	if wd, err := os.Getwd(); err == nil {
		id.WorkingDir = wd
	}

	if home, err := os.UserHomeDir(); err == nil {
		id.HomeDir = home
	}

	return id
}

// Environ adapts os.LookupEnv to the expander's lookup contract
func Environ(name string) (string, bool) {
	return os.LookupEnv(name)
}
