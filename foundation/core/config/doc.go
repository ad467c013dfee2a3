// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration files with
//              environment variable overrides and typed access.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Structured Decode, dropped watching and discovery

/*
Package config loads tantalum configuration from TOML or YAML.

The format is detected from the file extension (.toml, .yaml, .yml) and
defaults to TOML. Values are addressed with dotted keys:

	cfg, err := config.Load("tantalum.toml")
	if err != nil {
		return err
	}

	files := cfg.GetStringSlice("units.files")
	ttl := cfg.GetDuration("parser.cache_ttl", 10*time.Minute)
	places := cfg.GetInt("format.places", 6)

# Environment Variables

With an EnvPrefix, every getter first consults the environment. The key
units.files with prefix TANTALUM reads TANTALUM_UNITS_FILES. Slice values
are comma separated.

# Structured Sections

Decode copies a section into a struct. Field names follow yaml struct tags
because the section is round-tripped through gopkg.in/yaml.v3; types that
implement encoding.TextUnmarshaler receive the scalar text:

	var defs struct {
		Units []UnitDefinition `yaml:"unit"`
	}
	err := cfg.Decode("", &defs)

# Validation

Validate checks keys against ValidationRules and reports every violation at
once. It never modifies the configuration.
*/
package config
