// ============================================================================
// tantalum - Exact Unit-Aware Arithmetic
// ============================================================================
//
// Package:     registry
// Description: Read-only unit and prefix table with name resolution
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package registry holds the table of known units and prefixes and resolves
// names like "km", "kilometers", "KiB" or "°F" into unit expressions.
//
// A Registry is immutable once built, so it can be shared between goroutines
// without locking. Default returns the builtin table, built on first use.
// New builds an independent registry that extends the builtins with
// definitions from TOML or YAML files:
//
//	[[units]]
//	name = "furlong"
//	symbol = "fur"
//	of = "m"
//	factor = "201.168"
//
// Unknown names are always reported with an UNKNOWN_UNIT error.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/msto63/tantalum/foundation/core/errors"
	"github.com/msto63/tantalum/foundation/core/log"
	"github.com/msto63/tantalum/pkg/unit"
)

// Registry maps symbols, names and aliases to unit and prefix definitions
type Registry struct {
	units    []*unit.Def
	prefixes []*unit.Prefix

	unitBySymbol   map[string]*unit.Def // exact symbols and aliases
	unitByName     map[string]*unit.Def // lower-cased names and aliases
	prefixBySymbol map[string]*unit.Prefix
	prefixByName   map[string]*unit.Prefix

	// prefix symbols and names, longest first
	prefixSymbols []string
	prefixNames   []string

	logger *log.Logger
}

// Options configures a new registry
type Options struct {
	Logger *log.Logger

	// Files are TOML or YAML definition files, loaded in order
	Files []string

	// Prefixes and Units are extra definitions added after the files
	Prefixes []PrefixDefinition
	Units    []Definition
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the registry of builtin units. It is built exactly once.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := newBuiltin(log.GetDefault())
		if err != nil {
			panic("registry: inconsistent builtin table: " + err.Error())
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// New builds a registry with the builtins plus the definitions in opts
func New(opts Options) (*Registry, error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	timer := opts.Logger.StartTimer("registry build").WithField("component", "unit-registry")

	r, err := newBuiltin(opts.Logger)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	timer.Checkpoint("builtins", log.Fields{"units": len(r.units), "prefixes": len(r.prefixes)})

	for _, path := range opts.Files {
		if err := r.loadFile(path); err != nil {
			timer.StopWithError(err)
			return nil, err
		}
	}

	for _, p := range opts.Prefixes {
		if err := r.addPrefixDefinition(p); err != nil {
			timer.StopWithError(err)
			return nil, err
		}
	}
	for _, d := range opts.Units {
		if err := r.addDefinition(d); err != nil {
			timer.StopWithError(err)
			return nil, err
		}
	}

	r.sortPrefixKeys()
	timer.WithField("units", len(r.units)).WithField("prefixes", len(r.prefixes)).Stop()
	return r, nil
}

func newBuiltin(logger *log.Logger) (*Registry, error) {
	r := &Registry{
		unitBySymbol:   make(map[string]*unit.Def),
		unitByName:     make(map[string]*unit.Def),
		prefixBySymbol: make(map[string]*unit.Prefix),
		prefixByName:   make(map[string]*unit.Prefix),
		logger:         logger.WithField("component", "unit-registry"),
	}

	for _, p := range builtinPrefixes {
		if err := r.addPrefix(p); err != nil {
			return nil, err
		}
	}
	for sym, p := range prefixSymbolAliases {
		r.prefixBySymbol[sym] = p
	}
	for _, d := range builtinUnits {
		if err := r.addUnit(d); err != nil {
			return nil, err
		}
	}

	r.sortPrefixKeys()
	return r, nil
}

func (r *Registry) addUnit(d *unit.Def) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if _, exists := r.unitBySymbol[d.Symbol]; exists {
		return errors.DuplicateEntry(errors.ModuleRegistry, "register", d.Symbol)
	}
	keys := append([]string{d.Name}, d.Aliases...)
	for _, k := range keys {
		if _, exists := r.unitByName[strings.ToLower(k)]; exists {
			return errors.DuplicateEntry(errors.ModuleRegistry, "register", k)
		}
	}

	r.unitBySymbol[d.Symbol] = d
	for _, a := range d.Aliases {
		if _, taken := r.unitBySymbol[a]; !taken {
			r.unitBySymbol[a] = d
		}
	}
	for _, k := range keys {
		r.unitByName[strings.ToLower(k)] = d
	}
	r.units = append(r.units, d)

	r.logger.Trace("unit registered", log.Fields{"name": d.Name, "symbol": d.Symbol})
	return nil
}

func (r *Registry) addPrefix(p *unit.Prefix) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, exists := r.prefixBySymbol[p.Symbol]; exists {
		return errors.DuplicateEntry(errors.ModuleRegistry, "register", p.Symbol)
	}
	name := strings.ToLower(p.Name)
	if _, exists := r.prefixByName[name]; exists {
		return errors.DuplicateEntry(errors.ModuleRegistry, "register", p.Name)
	}

	r.prefixBySymbol[p.Symbol] = p
	r.prefixByName[name] = p
	r.prefixes = append(r.prefixes, p)
	return nil
}

func (r *Registry) sortPrefixKeys() {
	r.prefixSymbols = r.prefixSymbols[:0]
	for s := range r.prefixBySymbol {
		r.prefixSymbols = append(r.prefixSymbols, s)
	}
	r.prefixNames = r.prefixNames[:0]
	for n := range r.prefixByName {
		r.prefixNames = append(r.prefixNames, n)
	}
	byLengthDesc(r.prefixSymbols)
	byLengthDesc(r.prefixNames)
}

func byLengthDesc(s []string) {
	sort.Slice(s, func(i, j int) bool {
		if len(s[i]) != len(s[j]) {
			return len(s[i]) > len(s[j])
		}
		return s[i] < s[j]
	})
}

// Lookup resolves a single unit name into an expression. In order it tries
// the exact symbol, the case-insensitive name or alias, a bare prefix, a
// prefix symbol followed by a unit symbol ("km", "KiB"), a prefix name
// followed by a unit name ("kilometer") and finally a plural name ("miles").
func (r *Registry) Lookup(name string) (unit.Expression, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return unit.Expression{}, errors.UnknownUnit(errors.ModuleRegistry, name)
	}

	if d, ok := r.unitBySymbol[s]; ok {
		return unit.FromDef(d), nil
	}
	lower := strings.ToLower(s)
	if d, ok := r.unitByName[lower]; ok {
		return unit.FromDef(d), nil
	}
	if p, ok := r.prefixBySymbol[s]; ok {
		return unit.FromPrefix(p), nil
	}
	if p, ok := r.prefixByName[lower]; ok {
		return unit.FromPrefix(p), nil
	}

	for _, ps := range r.prefixSymbols {
		if rest, ok := strings.CutPrefix(s, ps); ok && rest != "" {
			if d, ok := r.unitBySymbol[rest]; ok {
				return unit.New(unit.Factor{Prefix: r.prefixBySymbol[ps], Unit: d, Power: 1}), nil
			}
		}
	}
	for _, pn := range r.prefixNames {
		if rest, ok := strings.CutPrefix(lower, pn); ok && rest != "" {
			if d, ok := r.unitByPluralName(rest); ok {
				return unit.New(unit.Factor{Prefix: r.prefixByName[pn], Unit: d, Power: 1}), nil
			}
		}
	}
	if d, ok := r.unitByPluralName(lower); ok {
		return unit.FromDef(d), nil
	}

	r.logger.Debug("unknown unit", log.Fields{"name": name})
	return unit.Expression{}, errors.UnknownUnit(errors.ModuleRegistry, name)
}

// unitByPluralName matches a lower-cased name, tolerating a plural "s" or "es"
func (r *Registry) unitByPluralName(lower string) (*unit.Def, bool) {
	if d, ok := r.unitByName[lower]; ok {
		return d, true
	}
	if len(lower) <= 3 {
		return nil, false
	}
	if trimmed, ok := strings.CutSuffix(lower, "es"); ok {
		if d, ok := r.unitByName[trimmed]; ok {
			return d, true
		}
	}
	if trimmed, ok := strings.CutSuffix(lower, "s"); ok {
		if d, ok := r.unitByName[trimmed]; ok {
			return d, true
		}
	}
	return nil, false
}

// Unit returns the definition for an unprefixed unit symbol, name or alias
func (r *Registry) Unit(name string) (*unit.Def, error) {
	s := strings.TrimSpace(name)
	if d, ok := r.unitBySymbol[s]; ok {
		return d, nil
	}
	if d, ok := r.unitByPluralName(strings.ToLower(s)); ok {
		return d, nil
	}
	return nil, errors.UnknownUnit(errors.ModuleRegistry, name)
}

// Prefix returns the prefix with the given symbol or name
func (r *Registry) Prefix(name string) (*unit.Prefix, error) {
	s := strings.TrimSpace(name)
	if p, ok := r.prefixBySymbol[s]; ok {
		return p, nil
	}
	if p, ok := r.prefixByName[strings.ToLower(s)]; ok {
		return p, nil
	}
	return nil, errors.UnknownUnit(errors.ModuleRegistry, name)
}

// Units returns all unit definitions in registration order
func (r *Registry) Units() []*unit.Def {
	out := make([]*unit.Def, len(r.units))
	copy(out, r.units)
	return out
}

// Prefixes returns all prefixes in registration order
func (r *Registry) Prefixes() []*unit.Prefix {
	out := make([]*unit.Prefix, len(r.prefixes))
	copy(out, r.prefixes)
	return out
}

// Lookup resolves name in the default registry
func Lookup(name string) (unit.Expression, error) {
	return Default().Lookup(name)
}
