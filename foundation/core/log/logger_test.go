// File: logger_test.go
// Title: Logger Unit Tests
// Description: Tests for logger construction, level filtering, context
//              field propagation and formatter output.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		logAt     Level
		wantWrite bool
	}{
		{"Debug suppressed at info", LevelInfo, LevelDebug, false},
		{"Info passes at info", LevelInfo, LevelInfo, true},
		{"Error passes at info", LevelInfo, LevelError, true},
		{"Trace passes at trace", LevelTrace, LevelTrace, true},
		{"Info suppressed at error", LevelError, LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithConfig(Config{Level: tt.level, Format: FormatText, Output: &buf})

			logger.log(tt.logAt, "hello", nil)

			if got := buf.Len() > 0; got != tt.wantWrite {
				t.Errorf("wrote = %v, want %v (buffer: %q)", got, tt.wantWrite, buf.String())
			}
		})
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
		Name:   "test-logger",
	}).WithSessionID("s-123")

	logger.Info("command dispatched", Fields{"command": "echo", "argCount": 2})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}

	if data["level"] != "info" {
		t.Errorf("level = %v, want info", data["level"])
	}
	if data["message"] != "command dispatched" {
		t.Errorf("message = %v, want %q", data["message"], "command dispatched")
	}
	if data["logger"] != "test-logger" {
		t.Errorf("logger = %v, want test-logger", data["logger"])
	}
	if data["session_id"] != "s-123" {
		t.Errorf("session_id = %v, want s-123", data["session_id"])
	}
	if data["command"] != "echo" {
		t.Errorf("command = %v, want echo", data["command"])
	}
}

func TestLogger_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatText, Output: &buf}).
		WithName("lexer")

	logger.ErrorWithErr("tokenize failed", errors.New("unterminated quote"))

	out := buf.String()
	for _, want := range []string{"[ERR]", "lexer:", "tokenize failed", `error="unterminated quote"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}
}

func TestLogger_WithFieldIsolation(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{Level: LevelDebug, Format: FormatText, Output: &buf})
	derived := base.WithField("component", "registry")

	base.Info("base message")
	if strings.Contains(buf.String(), "component=") {
		t.Error("field on derived logger leaked into base logger")
	}

	buf.Reset()
	derived.Info("derived message")
	if !strings.Contains(buf.String(), "component=registry") {
		t.Errorf("derived output %q missing component field", buf.String())
	}
}

func TestLogger_FieldMergePrecedence(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatText, Output: &buf}).
		WithField("mode", "interactive")

	logger.Info("run", Fields{"mode": "script"})

	if !strings.Contains(buf.String(), "mode=script") {
		t.Errorf("call-site field should win, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"fatal", LevelFatal, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"Text", FormatText, false},
		{"console", FormatConsole, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetDefault(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	replacement := NewWithConfig(Config{Level: LevelDebug, Format: FormatText, Output: &buf})
	SetDefault(replacement)

	if GetDefault() != replacement {
		t.Error("GetDefault should return the replaced logger")
	}

	SetDefault(nil)
	if GetDefault() != replacement {
		t.Error("SetDefault(nil) must be a no-op")
	}
}
