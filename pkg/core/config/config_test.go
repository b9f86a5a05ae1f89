// File: config_test.go
// Title: Configuration Tests
// Description: Tests for TOML and YAML loading, defaults, validation
//              and environment-driven discovery.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package config

import (
	"os"
	"path/filepath"
	"testing"

	sherr "github.com/avoronin/shellemu/foundation/core/error"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.Name != "shellemu" {
		t.Errorf("Name = %q, want %q", cfg.General.Name, "shellemu")
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.General.LogLevel, "info")
	}
	if cfg.Console.HistoryLimit != 100 {
		t.Errorf("HistoryLimit = %d, want 100", cfg.Console.HistoryLimit)
	}
	if cfg.Console.PromptPathWidth != 60 {
		t.Errorf("PromptPathWidth = %d, want 60", cfg.Console.PromptPathWidth)
	}
	if !cfg.Console.ShowWelcome {
		t.Error("ShowWelcome should default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[general]
name = "myshell"
log_level = "debug"

[console]
history_limit = 25
show_welcome = false

[vfs]
path = "./fs.zip"

[startup]
script = "./startup.txt"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.General.Name != "myshell" {
		t.Errorf("Name = %q, want %q", cfg.General.Name, "myshell")
	}
	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.General.LogLevel, "debug")
	}
	if cfg.Console.HistoryLimit != 25 {
		t.Errorf("HistoryLimit = %d, want 25", cfg.Console.HistoryLimit)
	}
	if cfg.Console.ShowWelcome {
		t.Error("explicit show_welcome = false should win over the default")
	}
	if cfg.Console.PromptPathWidth != 60 {
		t.Errorf("omitted PromptPathWidth = %d, want default 60", cfg.Console.PromptPathWidth)
	}
	if cfg.VFS.Path != "./fs.zip" {
		t.Errorf("VFS.Path = %q, want %q", cfg.VFS.Path, "./fs.zip")
	}
	if cfg.Startup.Script != "./startup.txt" {
		t.Errorf("Startup.Script = %q, want %q", cfg.Startup.Script, "./startup.txt")
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
general:
  name: myshell
  log_format: json
console:
  history_limit: 10
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Name != "myshell" {
		t.Errorf("Name = %q, want %q", cfg.General.Name, "myshell")
	}
	if cfg.General.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.General.LogFormat, "json")
	}
	if cfg.Console.HistoryLimit != 10 {
		t.Errorf("HistoryLimit = %d, want 10", cfg.Console.HistoryLimit)
	}
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		wantCode sherr.Code
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope.toml")
			},
			wantCode: sherr.CodeConfigError,
		},
		{
			name: "unsupported extension",
			path: func(t *testing.T) string {
				return writeConfig(t, "config.ini", "name=x")
			},
			wantCode: sherr.CodeInvalidConfig,
		},
		{
			name: "broken toml",
			path: func(t *testing.T) string {
				return writeConfig(t, "config.toml", "[general\nname =")
			},
			wantCode: sherr.CodeInvalidConfig,
		},
		{
			name: "invalid log level",
			path: func(t *testing.T) string {
				return writeConfig(t, "config.toml", "[general]\nlog_level = \"loud\"\n")
			},
			wantCode: sherr.CodeInvalidConfig,
		},
		{
			name: "negative history limit",
			path: func(t *testing.T) string {
				return writeConfig(t, "config.toml", "[console]\nhistory_limit = -1\n")
			},
			wantCode: sherr.CodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !sherr.HasCode(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", sherr.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "config.toml", "[general]\nname = \"from-env\"\n")
	t.Setenv(EnvVar, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if cfg.General.Name != "from-env" {
		t.Errorf("Name = %q, want %q", cfg.General.Name, "from-env")
	}
}

func TestLoadFromEnv_FallsBackToDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("Chdir back: %v", err)
		}
	})

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if cfg.General.Name != "shellemu" {
		t.Errorf("Name = %q, want default %q", cfg.General.Name, "shellemu")
	}
}
