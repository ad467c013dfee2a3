package parser

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/msto63/tantalum/foundation/core/config"
	mdwerror "github.com/msto63/tantalum/foundation/core/error"
	"github.com/msto63/tantalum/foundation/core/errors"
	"github.com/msto63/tantalum/foundation/core/log"
	"github.com/msto63/tantalum/foundation/utils/mathx"
	"github.com/msto63/tantalum/pkg/dimension"
	"github.com/msto63/tantalum/pkg/registry"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := New(nil, Options{Logger: log.Discard()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return p
}

func TestParse(t *testing.T) {
	tests := []struct {
		input      string
		wantSymbol string
		wantScale  string
	}{
		{"km/h", "km/h", "5/18"},
		{"m/s/s", "m/s^2", "1"},
		{"kg·m^2/s^2", "kg·m^2/s^2", "1"},
		{"kg*m**2*s**-2", "kg·m^2/s^2", "1"},
		{"N.m", "N·m", "1"},
		{"J/(kg·K)", "J/(kg·K)", "1"},
		{"J/kg·K", "J·K/kg", "1"},
		{"1/s", "1/s", "1"},
		{"s^-1", "1/s", "1"},
		{"s⁻¹", "1/s", "1"},
		{"m²", "m^2", "1"},
		{"(m/s)^2", "m^2/s^2", "1"},
		{"kg m", "kg·m", "1"},
		{"k m", "km", "1000"},
		{"kilometers per hour", "km/h", "5/18"},
		{"miles / hour", "mi/h", "1397/3125"},
		{"mAU/a", "mAU/a", "49865956897/10519200000"},
		{"KiB/s", "KiB/s", "8192"},
		{"degrees Celsius", "°C", "1"},
		{"  m  ", "m", "1"},
		{"m/m", "", "1"},
		{"m^0", "", "1"},
		{"1", "", "1"},
		{"", "", "1"},
	}

	p := newTestParser(t)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := p.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got.Symbol() != tt.wantSymbol {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got.Symbol(), tt.wantSymbol)
			}
			if got.Scale().String() != tt.wantScale {
				t.Errorf("Parse(%q) scale = %s, want %s", tt.input, got.Scale(), tt.wantScale)
			}
		})
	}
}

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		input string
		want  dimension.Vector
	}{
		{"N", dimension.Force},
		{"kg·m/s^2", dimension.Force},
		{"W/A", dimension.Voltage},
		{"1/s", dimension.Frequency},
		{"Hz", dimension.Frequency},
		{"Mbit/s", dimension.DataRate},
		{"mol/L", dimension.Concentration},
	}

	p := newTestParser(t)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := p.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got.Dim() != tt.want {
				t.Errorf("Parse(%q).Dim() = %v, want %v", tt.input, got.Dim(), tt.want)
			}
		})
	}
}

func TestParseKeepsOffsetOfSingleUnit(t *testing.T) {
	p := newTestParser(t)

	c, err := p.Parse("°C")
	if err != nil {
		t.Fatalf("Parse(°C) error: %v", err)
	}
	if !c.Offset().Equal(mathx.MustNewRational("5463/20")) {
		t.Errorf("°C offset = %s", c.Offset())
	}

	rate, err := p.Parse("°C/s")
	if err != nil {
		t.Fatalf("Parse(°C/s) error: %v", err)
	}
	if !rate.Offset().IsZero() {
		t.Errorf("°C/s offset = %s, want 0", rate.Offset())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input      string
		wantCode   mdwerror.Code
		wantColumn int
	}{
		{"m/", mdwerror.CodeInvalidFormat, 3},
		{"m^", mdwerror.CodeInvalidFormat, 3},
		{"m^x", mdwerror.CodeInvalidFormat, 3},
		{"(m", mdwerror.CodeInvalidFormat, 3},
		{"m)", mdwerror.CodeInvalidFormat, 2},
		{"2 m", mdwerror.CodeInvalidFormat, 1},
		{"m2", mdwerror.CodeInvalidFormat, 2},
		{"m$", mdwerror.CodeInvalidFormat, 2},
		{"/s", mdwerror.CodeInvalidFormat, 1},
		{"m^2^3", mdwerror.CodeInvalidFormat, 4},
		{"m-s", mdwerror.CodeInvalidFormat, 2},
		{"furlong/h", mdwerror.CodeUnknownUnit, 1},
		{"km/fortnight", mdwerror.CodeUnknownUnit, 4},
		{"per hour", mdwerror.CodeUnknownUnit, 1},
	}

	p := newTestParser(t)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := p.Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.input, got)
			}
			if !mdwerror.HasCode(err, tt.wantCode) {
				t.Errorf("Parse(%q) error = %v, want code %s", tt.input, err, tt.wantCode)
			}
			if errors.ExtractModule(err) != errors.ModuleParser {
				t.Errorf("module = %q, want %q", errors.ExtractModule(err), errors.ModuleParser)
			}

			var e *mdwerror.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("error %T is not *mdwerror.Error", err)
			}
			if col, _ := e.Detail("column"); col != tt.wantColumn {
				t.Errorf("column = %v, want %d", col, tt.wantColumn)
			}
		})
	}
}

func TestParseErrorCause(t *testing.T) {
	_, err := Parse("m^")

	var pe *ParseError
	if !stderrors.As(err, &pe) {
		t.Fatalf("error %v does not wrap *ParseError", err)
	}
	if pe.Column != 3 || pe.Token.Type != TokenEOF {
		t.Errorf("ParseError = %+v", pe)
	}
	if !strings.Contains(err.Error(), "expected integer exponent") {
		t.Errorf("error %q should explain the failure", err)
	}
}

func TestParseMaxInputLength(t *testing.T) {
	p, err := New(nil, Options{Logger: log.Discard(), MaxInputLength: 4})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, err := p.Parse("km/h"); err != nil {
		t.Errorf("Parse(km/h) error: %v", err)
	}
	if _, err := p.Parse("km/h/s"); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Parse(km/h/s) error = %v, want INVALID_INPUT", err)
	}

	if _, err := New(nil, Options{MaxInputLength: -1}); err == nil {
		t.Error("New() should reject a negative input length")
	}
}

func TestParseExponentBounds(t *testing.T) {
	tests := []struct {
		input      string
		wantColumn int
	}{
		{"mi^3000000", 4},
		{"(m^4611686018427387904)^4", 4},
		{"m^-9223372036854775808", 4},
		{"(m^8)^9", 7},
		{"(kg·m^-33)^2", 12},
		{"m^-65", 4},
		{"s⁹⁹", 2},
	}

	p := newTestParser(t)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := p.Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.input, got)
			}
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
				t.Errorf("Parse(%q) error = %v, want INVALID_FORMAT", tt.input, err)
			}

			var e *mdwerror.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("error %T is not *mdwerror.Error", err)
			}
			if col, _ := e.Detail("column"); col != tt.wantColumn {
				t.Errorf("column = %v, want %d", col, tt.wantColumn)
			}
		})
	}

	// repeated factors merge into one power
	if _, err := p.Parse("m^40·m^40"); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("Parse(m^40·m^40) error = %v, want INVALID_FORMAT", err)
	}

	for _, input := range []string{"m^64", "(m^8)^8", "m^-64", "m^40/m^40"} {
		if _, err := p.Parse(input); err != nil {
			t.Errorf("Parse(%q) error: %v", input, err)
		}
	}
}

func TestParseMaxExponent(t *testing.T) {
	p, err := New(nil, Options{Logger: log.Discard(), MaxExponent: 3})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if got, err := p.Parse("m^3"); err != nil || got.Symbol() != "m^3" {
		t.Errorf("Parse(m^3) = %q, %v", got, err)
	}
	if _, err := p.Parse("m^4"); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("Parse(m^4) error = %v, want INVALID_FORMAT", err)
	}
	if _, err := p.Parse("m²·m²"); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("Parse(m²·m²) error = %v, want INVALID_FORMAT", err)
	}

	if _, err := New(nil, Options{MaxExponent: -1}); err == nil {
		t.Error("New() should reject a negative maximum exponent")
	}
}

func TestParseCache(t *testing.T) {
	p := newTestParser(t)

	first, err := p.Parse("km/h")
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Parse(" km/h ")
	if err != nil {
		t.Fatal(err)
	}
	if !first.Equal(second) {
		t.Errorf("cached %q != %q", second, first)
	}

	s := p.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Items != 1 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss, 1 item", s)
	}

	// failures are not cached
	_, _ = p.Parse("furlong")
	_, _ = p.Parse("furlong")
	if got := p.Stats().Items; got != 1 {
		t.Errorf("Items = %d after failures, want 1", got)
	}
}

func TestParseWithoutCache(t *testing.T) {
	p, err := New(nil, Options{Logger: log.Discard(), DisableCache: true})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := p.Parse("m/s"); err != nil {
			t.Fatal(err)
		}
	}
	if s := p.Stats(); s.Hits != 0 || s.Misses != 0 {
		t.Errorf("Stats() = %+v, want zero", s)
	}
}

func TestParserCollector(t *testing.T) {
	p := newTestParser(t)
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(p.Collector()); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	for _, input := range []string{"km/h", "km/h", " km/h ", "N·m"} {
		if _, err := p.Parse(input); err != nil {
			t.Fatal(err)
		}
	}

	expected := `
# HELP tantalum_parser_cache_hits_total Cache lookups that found an entry.
# TYPE tantalum_parser_cache_hits_total counter
tantalum_parser_cache_hits_total 2
# HELP tantalum_parser_cache_misses_total Cache lookups that found no entry.
# TYPE tantalum_parser_cache_misses_total counter
tantalum_parser_cache_misses_total 2
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"tantalum_parser_cache_hits_total", "tantalum_parser_cache_misses_total")
	if err != nil {
		t.Error(err)
	}
}

func TestParseLogsMisses(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatJSON, Output: &buf})

	p, err := New(nil, Options{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	_, _ = p.Parse("km/h")
	_, _ = p.Parse("km/h")

	out := buf.String()
	if n := strings.Count(out, "starting unit expression parsing"); n != 1 {
		t.Errorf("logged %d parses, want 1 (second call is cached):\n%s", n, out)
	}
	if !strings.Contains(out, `"component":"unit-parser"`) {
		t.Errorf("log lacks component field:\n%s", out)
	}
}

func TestParseCustomRegistry(t *testing.T) {
	reg, err := registry.New(registry.Options{
		Logger: log.Discard(),
		Units: []registry.Definition{
			{Name: "furlong", Symbol: "fur", Of: "m", Factor: mathx.MustNewRational("201.168")},
			{Name: "fortnight", Symbol: "ftn", Of: "d", Factor: mathx.NewRationalFromInt(14)},
		},
	})
	if err != nil {
		t.Fatalf("registry.New() error: %v", err)
	}

	p, err := New(reg, Options{Logger: log.Discard()})
	if err != nil {
		t.Fatal(err)
	}
	if p.Registry() != reg {
		t.Error("Registry() should return the given registry")
	}

	got, err := p.Parse("fur/ftn")
	if err != nil {
		t.Fatalf("Parse(fur/ftn) error: %v", err)
	}
	// 201.168 m / 1209600 s
	if got.Scale().String() != "1397/8400000" {
		t.Errorf("scale = %s", got.Scale())
	}

	if _, err := Parse("fur/ftn"); !errors.IsUnknownUnit(err) {
		t.Errorf("default parser should not know furlongs, got %v", err)
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg, err := config.LoadFromString("[parser]\ncache_ttl = \"1m\"\ncache_size = 2\nmax_input_length = 8\nmax_exponent = 2\n", config.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewFromConfig(nil, cfg)
	if err != nil {
		t.Fatalf("NewFromConfig() error: %v", err)
	}
	if _, err := p.Parse("km/h"); err != nil {
		t.Errorf("Parse(km/h) error: %v", err)
	}
	if _, err := p.Parse("kilometers"); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Parse(kilometers) error = %v, want INVALID_INPUT", err)
	}
	if _, err := p.Parse("m^3"); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("Parse(m^3) error = %v, want INVALID_FORMAT", err)
	}

	bad, err := config.LoadFromString("[parser]\ncache_ttl = \"soon\"\n", config.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewFromConfig(nil, bad); !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("NewFromConfig() error = %v, want CONFIG_ERROR", err)
	}
}

func TestParseConcurrent(t *testing.T) {
	p := newTestParser(t)
	inputs := []string{"km/h", "m/s^2", "kW·h", "J/(kg·K)", "mi/h"}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := inputs[i%len(inputs)]
			if _, err := p.Parse(in); err != nil {
				t.Errorf("Parse(%q) error: %v", in, err)
			}
		}(i)
	}
	wg.Wait()
}

func TestMustParse(t *testing.T) {
	if got := MustParse("m/s"); got.Symbol() != "m/s" {
		t.Errorf("MustParse(m/s) = %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on unknown units")
		}
	}()
	MustParse("parsnips")
}

func ExampleParse() {
	kmh, err := Parse("kilometers per hour")
	if err != nil {
		panic(err)
	}
	fmt.Println(kmh.Symbol(), kmh.Scale(), kmh.Name())
	// Output: km/h 5/18 kilometer per hour
}

func ExampleParser_Parse() {
	p, _ := New(nil, Options{Logger: log.Discard()})

	_, err := p.Parse("kg·m^2/s^")
	fmt.Println(errors.IsInvalidFormat(err))
	// Output: true
}

func BenchmarkParse(b *testing.B) {
	p, _ := New(nil, Options{Logger: log.Discard()})
	b.Run("cached", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = p.Parse("kg·m^2/(s^2·A)")
		}
	})

	uncached, _ := New(nil, Options{Logger: log.Discard(), DisableCache: true})
	b.Run("uncached", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = uncached.Parse("kg·m^2/(s^2·A)")
		}
	})
}
