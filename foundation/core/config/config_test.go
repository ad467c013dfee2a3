// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, typed access, environment overrides,
//              section decoding and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/tantalum/foundation/core/error"
)

const tomlContent = `
[units]
files = ["extra.toml", "nautical.yaml"]

[parser]
cache_ttl = "5m"

[format]
places = 4

[log]
level = "debug"
format = "logfmt"

[[unit]]
name = "furlong"
symbol = "fur"
of = "m"
factor = "201168/1000"
`

const yamlContent = `
units:
  files:
    - extra.toml
parser:
  cache_ttl: 30s
format:
  places: 2
`

type definition struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	Of     string `yaml:"of"`
	Factor string `yaml:"factor"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadDetectsFormat(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		body   string
		format Format
		places int
		ttl    time.Duration
	}{
		{"toml", "tantalum.toml", tomlContent, FormatTOML, 4, 5 * time.Minute},
		{"yaml", "tantalum.yaml", yamlContent, FormatYAML, 2, 30 * time.Second},
		{"yml", "tantalum.yml", yamlContent, FormatYAML, 2, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.body))
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.Format() != tt.format {
				t.Errorf("Format() = %v, want %v", cfg.Format(), tt.format)
			}
			if got := cfg.GetInt("format.places"); got != tt.places {
				t.Errorf("GetInt(format.places) = %d, want %d", got, tt.places)
			}
			if got := cfg.GetDuration("parser.cache_ttl"); got != tt.ttl {
				t.Errorf("GetDuration(parser.cache_ttl) = %v, want %v", got, tt.ttl)
			}
			if files := cfg.GetStringSlice("units.files"); len(files) == 0 || files[0] != "extra.toml" {
				t.Errorf("GetStringSlice(units.files) = %v", files)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Load(\"\") error = %v", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.toml")
	if _, err := Load(missing); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Load(missing) error = %v", err)
	}

	broken := writeFile(t, "broken.toml", "[units\nfiles = ")
	if _, err := Load(broken); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("Load(broken) error = %v", err)
	}
}

func TestGettersWithDefaults(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error: %v", err)
	}

	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("GetString(log.level) = %q", got)
	}
	if got := cfg.GetString("log.missing", "text"); got != "text" {
		t.Errorf("GetString default = %q", got)
	}
	if got := cfg.GetInt("missing", 7); got != 7 {
		t.Errorf("GetInt default = %d", got)
	}
	if got := cfg.GetBool("missing", true); !got {
		t.Error("GetBool default = false")
	}
	if got := cfg.GetDuration("parser.cache_cleanup", time.Hour); got != time.Hour {
		t.Errorf("GetDuration default = %v", got)
	}
	if !cfg.Has("units.files") || cfg.Has("units.nothing") {
		t.Error("Has() reported wrong presence")
	}
}

func TestDefaultsAreOverriddenByContent(t *testing.T) {
	cfg, err := LoadFromStringWithOptions(yamlContent, LoadOptions{
		Format: FormatYAML,
		Defaults: map[string]interface{}{
			"format.places":        6,
			"parser.cache_cleanup": "1m",
		},
	})
	if err != nil {
		t.Fatalf("LoadFromStringWithOptions() error: %v", err)
	}
	if got := cfg.GetInt("format.places"); got != 2 {
		t.Errorf("format.places = %d, want file value 2", got)
	}
	if got := cfg.GetDuration("parser.cache_cleanup"); got != time.Minute {
		t.Errorf("parser.cache_cleanup = %v, want default 1m", got)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("TANTALUM_UNITS_FILES", "a.toml, b.yaml")
	t.Setenv("TANTALUM_FORMAT_PLACES", "9")

	cfg, err := LoadFromStringWithOptions(tomlContent, LoadOptions{Format: FormatTOML, EnvPrefix: "tantalum"})
	if err != nil {
		t.Fatalf("LoadFromStringWithOptions() error: %v", err)
	}

	files := cfg.GetStringSlice("units.files")
	if len(files) != 2 || files[0] != "a.toml" || files[1] != "b.yaml" {
		t.Errorf("GetStringSlice(units.files) = %v", files)
	}
	if got := cfg.GetInt("format.places"); got != 9 {
		t.Errorf("GetInt(format.places) = %d, want 9", got)
	}

	plain, _ := LoadFromString(tomlContent, FormatTOML)
	if got := plain.GetInt("format.places"); got != 4 {
		t.Errorf("config without prefix read the environment: %d", got)
	}
}

func TestDecodeSection(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error: %v", err)
	}

	var doc struct {
		Units []definition `yaml:"unit"`
	}
	if err := cfg.Decode("", &doc); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(doc.Units) != 1 {
		t.Fatalf("decoded %d units, want 1", len(doc.Units))
	}
	if doc.Units[0].Symbol != "fur" || doc.Units[0].Factor != "201168/1000" {
		t.Errorf("decoded unit = %+v", doc.Units[0])
	}

	var log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	}
	if err := cfg.Decode("log", &log); err != nil {
		t.Fatalf("Decode(log) error: %v", err)
	}
	if log.Level != "debug" || log.Format != "logfmt" {
		t.Errorf("Decode(log) = %+v", log)
	}

	var untouched struct{ X int }
	if err := cfg.Decode("absent", &untouched); err != nil {
		t.Errorf("Decode(absent) error: %v", err)
	}
}

func TestSetAndGetAll(t *testing.T) {
	cfg, _ := LoadFromString(yamlContent, FormatYAML)
	cfg.Set("format.places", 3)

	all := cfg.GetAll()
	all["format"].(map[string]interface{})["places"] = 99

	if got := cfg.GetInt("format.places"); got != 3 {
		t.Errorf("GetAll() should return a copy, places = %d", got)
	}
	if !strings.Contains(cfg.String(), "format: yaml") {
		t.Errorf("String() = %q", cfg.String())
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := LoadFromString(tomlContent, FormatTOML)

	ok := cfg.Validate(ValidationRules{
		"units.files":      {Type: "[]string", Min: Bound(1)},
		"parser.cache_ttl": {Type: "duration"},
		"format.places":    {Type: "int", Min: Bound(0), Max: Bound(30)},
	})
	if !ok.Valid || ok.Err() != nil {
		t.Errorf("Validate() = %+v", ok)
	}

	bad := cfg.Validate(ValidationRules{
		"format.places": {Type: "int", Max: Bound(2)},
		"log.level":     {Type: "bool"},
		"required.key":  {Required: true},
	})
	if bad.Valid || len(bad.Errors) != 3 {
		t.Fatalf("Validate() = %+v, want 3 errors", bad)
	}
	if !mdwerror.HasCode(bad.Err(), mdwerror.CodeConfigError) {
		t.Errorf("Err() code = %v", mdwerror.GetCode(bad.Err()))
	}
	if !strings.Contains(bad.Errors[0], "format.places") {
		t.Errorf("errors not sorted by key: %v", bad.Errors)
	}
}
