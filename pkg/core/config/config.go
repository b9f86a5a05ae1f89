// File: config.go
// Title: Application Configuration
// Description: Loads the emulator configuration from TOML or YAML files,
//              applies defaults for missing values and validates the
//              result. The file format is chosen by extension so users
//              can keep whichever format they prefer.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	sherr "github.com/avoronin/shellemu/foundation/core/error"
	"github.com/avoronin/shellemu/foundation/core/log"
)

// EnvVar names the environment variable pointing at the config file
const EnvVar = "SHELLEMU_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Console ConsoleConfig `toml:"console" yaml:"console"`
	VFS     VFSConfig     `toml:"vfs" yaml:"vfs"`
	Startup StartupConfig `toml:"startup" yaml:"startup"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ConsoleConfig holds interactive console settings
type ConsoleConfig struct {
	HistoryLimit    int  `toml:"history_limit" yaml:"history_limit"`
	PromptPathWidth int  `toml:"prompt_path_width" yaml:"prompt_path_width"`
	ShowWelcome     bool `toml:"show_welcome" yaml:"show_welcome"`
}

// VFSConfig holds the virtual file system source settings
type VFSConfig struct {
	// Path points at the archive that will seed the virtual file system.
	// The emulator only reports the path for now.
	Path string `toml:"path" yaml:"path"`
}

// StartupConfig holds startup automation settings
type StartupConfig struct {
	// Script is the path of a command script run right after the console
	// opens. Empty disables the startup run.
	Script string `toml:"script" yaml:"script"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.Console.ShowWelcome = true
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration file at path. TOML and YAML are accepted,
// selected by the file extension. Values the file leaves out fall back
// to defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, sherr.Newf("config file not found: %s", path).
			WithCode(sherr.CodeConfigError).
			WithDetail("path", path)
	}

	// Decode over a defaulted struct so a file that omits show_welcome
	// keeps it on while an explicit false wins
	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, sherr.Wrap(err, "parse config").
				WithCode(sherr.CodeInvalidConfig).
				WithDetail("path", path)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, sherr.Wrap(err, "read config").
				WithCode(sherr.CodeConfigError).
				WithDetail("path", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, sherr.Wrap(err, "parse config").
				WithCode(sherr.CodeInvalidConfig).
				WithDetail("path", path)
		}
	default:
		return nil, sherr.Newf("unsupported config format: %s", filepath.Ext(path)).
			WithCode(sherr.CodeInvalidConfig).
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnv loads the configuration from the SHELLEMU_CONFIG
// environment variable, falling back to default file locations. When no
// file exists anywhere the built-in defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		defaultPaths := []string{
			"./configs/shellemu.toml",
			"./shellemu.toml",
			"./shellemu.yaml",
		}
		if home, err := os.UserHomeDir(); err == nil {
			defaultPaths = append(defaultPaths,
				filepath.Join(home, ".config", "shellemu", "config.toml"))
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "shellemu"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	if c.Console.HistoryLimit == 0 {
		c.Console.HistoryLimit = 100
	}
	if c.Console.PromptPathWidth == 0 {
		c.Console.PromptPathWidth = 60
	}
}

// Validate checks the configuration for usable values
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		return sherr.Wrap(err, "validate config").
			WithCode(sherr.CodeInvalidConfig).
			WithDetail("log_level", c.General.LogLevel)
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		return sherr.Wrap(err, "validate config").
			WithCode(sherr.CodeInvalidConfig).
			WithDetail("log_format", c.General.LogFormat)
	}
	if c.Console.HistoryLimit < 0 {
		return sherr.Newf("history_limit must not be negative: %d", c.Console.HistoryLimit).
			WithCode(sherr.CodeInvalidConfig)
	}
	if c.Console.PromptPathWidth < 0 {
		return sherr.Newf("prompt_path_width must not be negative: %d", c.Console.PromptPathWidth).
			WithCode(sherr.CodeInvalidConfig)
	}
	return nil
}
