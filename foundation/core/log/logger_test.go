// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, logger derivation, formatters and
//              structured error logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-17 v0.2.0: Tests for the trimmed library logger

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/tantalum/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNew(t *testing.T) {
	logger := New()
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should be disabled by default")
	}
	if !logger.IsLevelEnabled(LevelError) {
		t.Error("error should be enabled by default")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"off", LevelOff, false},
		{"verbose", DefaultLevel(), true},
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
	for _, f := range []Format{FormatJSON, FormatText, FormatConsole, FormatLogfmt} {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)

	logger.Trace("hidden")
	logger.Debug("hidden")
	logger.Info("shown")
	logger.Warn("shown")
	logger.Error("shown")

	lines := decodeLines(t, buf)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0]["level"] != "info" || lines[2]["level"] != "error" {
		t.Errorf("unexpected levels: %v, %v", lines[0]["level"], lines[2]["level"])
	}
}

func TestLevelOffSilencesEverything(t *testing.T) {
	logger, buf := newBufferLogger(LevelOff, FormatText)
	logger.Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("LevelOff wrote %q", buf.String())
	}
	Discard().Error("nothing")
}

func TestWithMethodsDoNotMutate(t *testing.T) {
	base, buf := newBufferLogger(LevelDebug, FormatJSON)
	derived := base.WithName("registry").WithField("units", 42)

	if derived == base {
		t.Fatal("With* should return a new logger")
	}
	if base.Name() != "" {
		t.Error("WithName() modified the original logger")
	}

	base.Debug("base")
	derived.Debug("derived")

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if _, ok := lines[0]["units"]; ok {
		t.Error("base logger should not carry derived fields")
	}
	if lines[1]["logger"] != "registry" || lines[1]["units"] != float64(42) {
		t.Errorf("derived entry = %v", lines[1])
	}
}

func TestCallFieldsOverrideContext(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.WithField("symbol", "m").Debug("lookup", Field("symbol", "km"))

	lines := decodeLines(t, buf)
	if lines[0]["symbol"] != "km" {
		t.Errorf("symbol = %v, want km", lines[0]["symbol"])
	}
}

func TestTextAndLogfmtFieldOrder(t *testing.T) {
	entry := NewEntry(LevelInfo, "loaded")
	entry.Fields = Fields{"units": 3, "file": "extra.toml", "prefixes": 0}

	text, _ := (&TextFormatter{DisableTimestamp: true}).Format(entry)
	if got := string(text); got != "[INF] loaded [file=extra.toml prefixes=0 units=3]\n" {
		t.Errorf("text = %q", got)
	}

	logfmt, _ := NewLogfmtFormatter().Format(entry)
	if !strings.Contains(string(logfmt), `message="loaded" file="extra.toml" prefixes=0 units=3`) {
		t.Errorf("logfmt = %q", logfmt)
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	entry := NewEntry(LevelWarn, "careful")
	f := NewConsoleFormatter()
	f.DisableTimestamp = true

	out, _ := f.Format(entry)
	if !strings.HasPrefix(string(out), LevelWarn.Color()) || !strings.HasSuffix(string(out), "\033[0m\n") {
		t.Errorf("console output not colored: %q", out)
	}

	f.DisableColors = true
	out, _ = f.Format(entry)
	if string(out) != "[WRN] careful\n" {
		t.Errorf("uncolored output = %q", out)
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"low severity", mdwerror.New("no such unit").WithCode(mdwerror.CodeUnknownUnit), "info"},
		{"medium severity", mdwerror.New("cannot add").WithCode(mdwerror.CodeIncompatibleDimensions), "warn"},
		{"high severity", mdwerror.New("bad file").WithCode(mdwerror.CodeConfigError), "error"},
		{"plain error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			lines := decodeLines(t, buf)
			if len(lines) != 1 {
				t.Fatalf("got %d lines", len(lines))
			}
			if lines[0]["level"] != tt.level {
				t.Errorf("level = %v, want %v", lines[0]["level"], tt.level)
			}
		})
	}

	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not log")
	}
}

func TestStructuredErrorDetailsInJSON(t *testing.T) {
	logger, buf := newBufferLogger(LevelError, FormatJSON)
	err := mdwerror.New("cannot convert").
		WithCode(mdwerror.CodeIncompatibleDimensions).
		WithDetail("from", "L")

	logger.ErrorWithErr("conversion failed", err)

	lines := decodeLines(t, buf)
	details, ok := lines[0]["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing: %v", lines[0])
	}
	if details["code"] != "INCOMPATIBLE_DIMENSIONS" {
		t.Errorf("error_details.code = %v", details["code"])
	}
}

func TestSetDefault(t *testing.T) {
	orig := GetDefault()
	defer SetDefault(orig)

	logger, buf := newBufferLogger(LevelDebug, FormatText)
	SetDefault(logger)
	Debug("through default")

	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("default logger output = %q", buf.String())
	}

	SetDefault(nil)
	if GetDefault() != logger {
		t.Error("SetDefault(nil) should be ignored")
	}
}
