// ============================================================================
// tantalum - Exact Unit-Aware Arithmetic
// ============================================================================
//
// Package:     registry
// Description: User unit definitions loaded from TOML or YAML
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package registry

import (
	"path/filepath"
	"strings"

	"github.com/msto63/tantalum/foundation/core/config"
	mdwerror "github.com/msto63/tantalum/foundation/core/error"
	"github.com/msto63/tantalum/foundation/core/errors"
	"github.com/msto63/tantalum/foundation/core/log"
	"github.com/msto63/tantalum/foundation/utils/mathx"
	"github.com/msto63/tantalum/pkg/dimension"
	"github.com/msto63/tantalum/pkg/unit"
)

// Definition describes a unit in a definition file. Either Dimension and
// Scale are given, or Of names an existing unit (prefixes allowed) that is
// multiplied by Factor, which defaults to 1.
type Definition struct {
	Name      string         `yaml:"name"`
	Symbol    string         `yaml:"symbol"`
	Aliases   []string       `yaml:"aliases"`
	Dimension map[string]int `yaml:"dimension"`
	Scale     mathx.Rational `yaml:"scale"`
	Of        string         `yaml:"of"`
	Factor    mathx.Rational `yaml:"factor"`
	Offset    mathx.Rational `yaml:"offset"`
}

// PrefixDefinition describes a prefix in a definition file
type PrefixDefinition struct {
	Name       string         `yaml:"name"`
	Symbol     string         `yaml:"symbol"`
	Multiplier mathx.Rational `yaml:"multiplier"`
	Binary     bool           `yaml:"binary"`
}

type definitionFile struct {
	Prefixes []PrefixDefinition `yaml:"prefixes"`
	Units    []Definition       `yaml:"units"`
}

// loadFile reads the prefixes and units sections of a TOML or YAML file
func (r *Registry) loadFile(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	var file definitionFile
	if err := cfg.Decode("", &file); err != nil {
		return err
	}

	for _, p := range file.Prefixes {
		if err := r.addPrefixDefinition(p); err != nil {
			return errors.NewErrorBuilder(errors.ModuleRegistry).
				Operation("load").
				Messagef("invalid prefix in %s", path).
				Cause(err).
				Code(mdwerror.GetCode(err)).
				Detail("file", path).
				Build()
		}
	}
	for _, d := range file.Units {
		if err := r.addDefinition(d); err != nil {
			return errors.NewErrorBuilder(errors.ModuleRegistry).
				Operation("load").
				Messagef("invalid unit in %s", path).
				Cause(err).
				Code(mdwerror.GetCode(err)).
				Detail("file", path).
				Build()
		}
	}

	r.logger.Info("unit definitions loaded", log.Fields{
		"file":     path,
		"units":    len(file.Units),
		"prefixes": len(file.Prefixes),
	})
	return nil
}

func (r *Registry) addPrefixDefinition(p PrefixDefinition) error {
	prefix := &unit.Prefix{
		Name:       strings.TrimSpace(p.Name),
		Symbol:     strings.TrimSpace(p.Symbol),
		Multiplier: p.Multiplier,
		Binary:     p.Binary,
	}
	if err := r.addPrefix(prefix); err != nil {
		return err
	}
	r.sortPrefixKeys()
	return nil
}

func (r *Registry) addDefinition(d Definition) error {
	def := &unit.Def{
		Name:    strings.TrimSpace(d.Name),
		Symbol:  strings.TrimSpace(d.Symbol),
		Aliases: d.Aliases,
		Offset:  d.Offset,
	}

	switch {
	case d.Of != "" && len(d.Dimension) > 0:
		return errors.InvalidInput(errors.ModuleRegistry, "define", d.Name, "either of or dimension, not both")

	case d.Of != "":
		base, err := r.Lookup(d.Of)
		if err != nil {
			return err
		}
		factor := d.Factor
		if factor.IsZero() {
			factor = mathx.One()
		}
		def.Dim = base.Dim()
		def.Scale = base.Scale().Multiply(factor)

	default:
		exponents := make(map[dimension.Base]int, len(d.Dimension))
		for name, exp := range d.Dimension {
			b, err := dimension.ParseBase(name)
			if err != nil {
				return err
			}
			exponents[b] = exp
		}
		def.Dim = dimension.New(exponents)
		def.Scale = d.Scale
	}

	return r.addUnit(def)
}

// NewFromConfig builds a registry from a loaded configuration. It reads
// units.files for definition files and log.level / log.format for the
// registry logger.
func NewFromConfig(cfg *config.Config) (*Registry, error) {
	result := cfg.Validate(config.ValidationRules{
		"units.files": {Type: "[]string"},
		"log.level":   {Type: "string"},
		"log.format":  {Type: "string"},
	})
	if err := result.Err(); err != nil {
		return nil, err
	}

	logger := log.GetDefault()
	if cfg.Has("log.level") || cfg.Has("log.format") {
		level, err := log.ParseLevel(cfg.GetString("log.level", log.DefaultLevel().String()))
		if err != nil {
			return nil, errors.InvalidInput(errors.ModuleConfig, "log.level", cfg.GetString("log.level"), "trace, debug, info, warn, error or off")
		}
		format, err := log.ParseFormat(cfg.GetString("log.format", "text"))
		if err != nil {
			return nil, errors.InvalidInput(errors.ModuleConfig, "log.format", cfg.GetString("log.format"), "json, text, console or logfmt")
		}
		logger = log.NewWithConfig(log.Config{Level: level, Format: format, Name: "tantalum"})
	}

	// relative definition files are resolved against the config file
	files := cfg.GetStringSlice("units.files")
	if dir := filepath.Dir(cfg.FilePath()); cfg.FilePath() != "" {
		for i, f := range files {
			if !filepath.IsAbs(f) {
				files[i] = filepath.Join(dir, f)
			}
		}
	}

	return New(Options{
		Logger: logger,
		Files:  files,
	})
}
