// ============================================================================
// tantalum - Exact Unit-Aware Arithmetic
// ============================================================================
//
// Package:     parser
// Description: Recursive descent parser for unit expressions
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package parser turns unit expression strings into unit.Expression values.
//
// The grammar is
//
//	expr    := term ( ('*' | '·' | '.' | juxtaposition) term | '/' term )*
//	term    := primary ( '^' ['-'] digits | superscript )?
//	primary := identifier | '1' | '(' expr ')'
//
// Multiplication and division share one precedence level and associate to
// the left, so "m/s/s" is m/s^2 and "J/kg·K" is (J/kg)·K. The word "per"
// divides like '/', as in "kilometers per hour". Identifiers are
// resolved through a registry.Registry, so "km", "kilometers" and "KiB" all
// work. An input made only of names separated by spaces is first tried as a
// single registry name, which lets aliases like "degrees Celsius" through.
//
// Parsed expressions are cached per Parser. A Parser is safe for concurrent
// use.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/msto63/tantalum/foundation/core/config"
	mdwerror "github.com/msto63/tantalum/foundation/core/error"
	"github.com/msto63/tantalum/foundation/core/errors"
	"github.com/msto63/tantalum/foundation/core/log"
	"github.com/msto63/tantalum/pkg/core/cache"
	"github.com/msto63/tantalum/pkg/registry"
	"github.com/msto63/tantalum/pkg/unit"
)

// Parser parses unit expressions against one registry
type Parser struct {
	registry *registry.Registry
	cache    *cache.Cache
	logger   *log.Logger
	options  Options
}

// Options configures parser behavior
type Options struct {
	Logger         *log.Logger
	MaxInputLength int

	// MaxExponent bounds the absolute power of every factor, both as
	// written ("m^3") and after applying it to a group ("(m^2)^3")
	MaxExponent int

	// Cache settings; zero values use the cache defaults
	CacheSize    int
	CacheTTL     time.Duration
	CacheCleanup time.Duration
	DisableCache bool
}

// ParseError represents a syntax error with position information. It is the
// cause of the INVALID_FORMAT errors returned by Parse.
type ParseError struct {
	Message  string
	Position int
	Line     int
	Column   int
	Token    Token
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at column %d: %s (near '%s')",
		pe.Column, pe.Message, pe.Token.Value)
}

// state holds the position of a single Parse call
type state struct {
	input   string
	tokens  []Token
	pos     int
	current Token
}

// New creates a parser resolving names in reg. A nil reg means
// registry.Default().
func New(reg *registry.Registry, opts Options) (*Parser, error) {
	if reg == nil {
		reg = registry.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = 256
	}
	if opts.MaxInputLength < 0 {
		return nil, errors.InvalidInput(errors.ModuleParser, "new", opts.MaxInputLength, "a positive maximum input length")
	}
	if opts.MaxExponent == 0 {
		opts.MaxExponent = 64
	}
	if opts.MaxExponent < 0 {
		return nil, errors.InvalidInput(errors.ModuleParser, "new", opts.MaxExponent, "a positive maximum exponent")
	}

	p := &Parser{
		registry: reg,
		logger:   opts.Logger.WithField("component", "unit-parser"),
		options:  opts,
	}
	if !opts.DisableCache {
		p.cache = cache.New(cache.Config{
			MaxItems:        opts.CacheSize,
			TTL:             opts.CacheTTL,
			CleanupInterval: opts.CacheCleanup,
		})
	}
	return p, nil
}

// NewFromConfig creates a parser with the cache settings under parser.* in
// cfg: parser.cache_ttl, parser.cache_cleanup, parser.cache_size,
// parser.max_input_length and parser.max_exponent.
func NewFromConfig(reg *registry.Registry, cfg *config.Config) (*Parser, error) {
	result := cfg.Validate(config.ValidationRules{
		"parser.cache_ttl":        {Type: "duration"},
		"parser.cache_cleanup":    {Type: "duration"},
		"parser.cache_size":       {Type: "int", Min: config.Bound(1)},
		"parser.max_input_length": {Type: "int", Min: config.Bound(1)},
		"parser.max_exponent":     {Type: "int", Min: config.Bound(1), Max: config.Bound(1024)},
	})
	if err := result.Err(); err != nil {
		return nil, err
	}

	return New(reg, Options{
		MaxInputLength: cfg.GetInt("parser.max_input_length"),
		MaxExponent:    cfg.GetInt("parser.max_exponent"),
		CacheSize:      cfg.GetInt("parser.cache_size"),
		CacheTTL:       cfg.GetDuration("parser.cache_ttl"),
		CacheCleanup:   cfg.GetDuration("parser.cache_cleanup"),
	})
}

// Parse parses a unit expression. Empty input yields the unitless expression.
// Unknown names fail with UNKNOWN_UNIT, syntax errors with INVALID_FORMAT;
// both carry the column in their details.
func (p *Parser) Parse(input string) (unit.Expression, error) {
	if len(input) > p.options.MaxInputLength {
		return unit.Expression{}, errors.InvalidInput(errors.ModuleParser, "parse", len(input),
			fmt.Sprintf("at most %d bytes", p.options.MaxInputLength))
	}

	key := strings.TrimSpace(input)
	if p.cache != nil {
		if v, ok := p.cache.Get(key); ok {
			return v.(unit.Expression), nil
		}
	}

	p.logger.Debug("starting unit expression parsing", log.Fields{
		"input":  key,
		"length": len(key),
	})

	expr, err := p.parse(key)
	if err != nil {
		p.logger.Debug("unit expression parsing failed", log.Fields{
			"input": key,
			"error": err.Error(),
		})
		return unit.Expression{}, err
	}

	if p.cache != nil {
		p.cache.Set(key, expr)
	}
	return expr, nil
}

// MustParse is like Parse but panics on error. It is meant for
// initializing package-level variables.
func (p *Parser) MustParse(input string) unit.Expression {
	expr, err := p.Parse(input)
	if err != nil {
		panic("parser: " + err.Error())
	}
	return expr
}

// Stats returns the expression cache statistics
func (p *Parser) Stats() cache.Stats {
	if p.cache == nil {
		return cache.Stats{}
	}
	return p.cache.Stats()
}

// Collector exports the expression cache statistics for registration with a
// prometheus registry, as tantalum_parser_cache_{hits_total,misses_total,items}
func (p *Parser) Collector() *cache.Collector {
	return cache.NewCollector(p.cache, "tantalum", "parser_cache")
}

// Registry returns the registry names are resolved in
func (p *Parser) Registry() *registry.Registry {
	return p.registry
}

func (p *Parser) parse(input string) (unit.Expression, error) {
	if input == "" {
		return unit.Expression{}, nil
	}

	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		bad := tokens[len(tokens)-1]
		return unit.Expression{}, p.syntaxError(input, bad, "illegal character")
	}

	if name, ok := spacedName(tokens); ok {
		if expr, err := p.registry.Lookup(name); err == nil {
			return expr, nil
		}
	}

	s := &state{input: input, tokens: tokens}
	s.advance()

	expr, err := p.parseExpression(s)
	if err != nil {
		return unit.Expression{}, err
	}
	if s.current.Type != TokenEOF {
		return unit.Expression{}, p.syntaxError(input, s.current, "unexpected "+describe(s.current))
	}
	return expr, nil
}

// parseExpression parses term (op term)*
func (p *Parser) parseExpression(s *state) (unit.Expression, error) {
	left, err := p.parseTerm(s)
	if err != nil {
		return unit.Expression{}, err
	}

	for {
		switch s.current.Type {
		case TokenMultiply:
			s.advance()
			right, err := p.parseTerm(s)
			if err != nil {
				return unit.Expression{}, err
			}
			if left, err = p.combine(s, left.Multiply(right)); err != nil {
				return unit.Expression{}, err
			}

		case TokenDivide:
			s.advance()
			right, err := p.parseTerm(s)
			if err != nil {
				return unit.Expression{}, err
			}
			if left, err = p.combine(s, left.Divide(right)); err != nil {
				return unit.Expression{}, err
			}

		case TokenIdentifier, TokenNumber, TokenLeftParen:
			if s.current.Type == TokenIdentifier && s.current.Value == "per" {
				s.advance()
				right, err := p.parseTerm(s)
				if err != nil {
					return unit.Expression{}, err
				}
				if left, err = p.combine(s, left.Divide(right)); err != nil {
					return unit.Expression{}, err
				}
				continue
			}
			// juxtaposition: "kg m" is kg·m
			right, err := p.parseTerm(s)
			if err != nil {
				return unit.Expression{}, err
			}
			if left, err = p.combine(s, left.Multiply(right)); err != nil {
				return unit.Expression{}, err
			}

		default:
			return left, nil
		}
	}
}

// parseTerm parses primary with an optional integer exponent
func (p *Parser) parseTerm(s *state) (unit.Expression, error) {
	base, err := p.parsePrimary(s)
	if err != nil {
		return unit.Expression{}, err
	}

	switch s.current.Type {
	case TokenPower:
		s.advance()
		sign := ""
		if s.current.Type == TokenMinus {
			sign = "-"
			s.advance()
		}
		if s.current.Type != TokenNumber {
			return unit.Expression{}, p.syntaxError(s.input, s.current, "expected integer exponent")
		}
		return p.raise(s, base, sign+s.current.Value)

	case TokenSuperscript:
		return p.raise(s, base, s.current.Value)
	}

	return base, nil
}

// parsePrimary parses a unit name, the literal 1 or a parenthesized expression
func (p *Parser) parsePrimary(s *state) (unit.Expression, error) {
	tok := s.current

	switch tok.Type {
	case TokenIdentifier:
		expr, err := p.registry.Lookup(tok.Value)
		if err != nil {
			return unit.Expression{}, errors.NewErrorBuilder(errors.ModuleParser).
				Operation("parse").
				Messagef("invalid unit expression %q at column %d", s.input, tok.Column).
				Cause(err).
				Code(mdwerror.CodeUnknownUnit).
				Detail("column", tok.Column).
				Detail("name", tok.Value).
				Build()
		}
		s.advance()
		return expr, nil

	case TokenNumber:
		if tok.Value != "1" {
			return unit.Expression{}, p.syntaxError(s.input, tok, "only 1 may stand in for a unit")
		}
		s.advance()
		return unit.One(), nil

	case TokenLeftParen:
		s.advance()
		expr, err := p.parseExpression(s)
		if err != nil {
			return unit.Expression{}, err
		}
		if s.current.Type != TokenRightParen {
			return unit.Expression{}, p.syntaxError(s.input, s.current, "expected ')'")
		}
		s.advance()
		return expr, nil
	}

	return unit.Expression{}, p.syntaxError(s.input, tok, "expected unit, found "+describe(tok))
}

// raise applies the exponent token at s.current to base. The resulting
// powers are checked before Pow, since the scale of mi^3000000 alone takes
// minutes to compute.
func (p *Parser) raise(s *state, base unit.Expression, text string) (unit.Expression, error) {
	n, err := p.exponent(s, text)
	if err != nil {
		return unit.Expression{}, err
	}
	if maxPower(base)*abs(n) > p.options.MaxExponent {
		return unit.Expression{}, p.syntaxError(s.input, s.current,
			fmt.Sprintf("resulting power exceeds %d", p.options.MaxExponent))
	}
	s.advance()
	return base.Pow(n), nil
}

func (p *Parser) exponent(s *state, text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, p.syntaxError(s.input, s.current, "invalid exponent")
	}
	if n > p.options.MaxExponent || n < -p.options.MaxExponent {
		return 0, p.syntaxError(s.input, s.current,
			fmt.Sprintf("exponent out of range, at most %d", p.options.MaxExponent))
	}
	return n, nil
}

// combine checks the powers of a product or quotient. Merging repeated
// factors as in "m^64·m^64" sums their powers.
func (p *Parser) combine(s *state, expr unit.Expression) (unit.Expression, error) {
	if maxPower(expr) > p.options.MaxExponent {
		return unit.Expression{}, p.syntaxError(s.input, s.current,
			fmt.Sprintf("resulting power exceeds %d", p.options.MaxExponent))
	}
	return expr, nil
}

// maxPower returns the largest absolute factor power of expr
func maxPower(expr unit.Expression) int {
	m := 0
	for _, f := range expr.Factors() {
		m = max(m, abs(f.Power))
	}
	return m
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (p *Parser) syntaxError(input string, tok Token, message string) error {
	return errors.NewErrorBuilder(errors.ModuleParser).
		Operation("parse").
		Messagef("invalid unit expression %q", input).
		Cause(&ParseError{
			Message:  message,
			Position: tok.Position,
			Line:     tok.Line,
			Column:   tok.Column,
			Token:    tok,
		}).
		Code(mdwerror.CodeInvalidFormat).
		Detail("column", tok.Column).
		Build()
}

// advance moves to the next token
func (s *state) advance() {
	if s.pos < len(s.tokens) {
		s.current = s.tokens[s.pos]
		s.pos++
	}
}

// spacedName joins an input of two or more bare names with single spaces
func spacedName(tokens []Token) (string, bool) {
	if len(tokens) < 3 {
		return "", false
	}
	words := make([]string, 0, len(tokens)-1)
	for _, t := range tokens[:len(tokens)-1] {
		if t.Type != TokenIdentifier {
			return "", false
		}
		words = append(words, t.Value)
	}
	return strings.Join(words, " "), true
}

func describe(tok Token) string {
	if tok.Type == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", tok.Value)
}

var (
	defaultParser *Parser
	defaultOnce   sync.Once
)

// Default returns the parser over registry.Default(), created on first use
func Default() *Parser {
	defaultOnce.Do(func() {
		p, err := New(registry.Default(), Options{})
		if err != nil {
			panic("parser: " + err.Error())
		}
		defaultParser = p
	})
	return defaultParser
}

// Parse parses input with the default parser
func Parse(input string) (unit.Expression, error) {
	return Default().Parse(input)
}

// MustParse parses input with the default parser and panics on error
func MustParse(input string) unit.Expression {
	return Default().MustParse(input)
}
