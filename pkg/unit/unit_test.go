package unit

import (
	"testing"

	"github.com/msto63/tantalum/foundation/core/errors"
	"github.com/msto63/tantalum/foundation/utils/mathx"
	"github.com/msto63/tantalum/pkg/dimension"
)

var (
	meter  = &Def{Name: "meter", Symbol: "m", Dim: dimension.Of(dimension.Length), Scale: mathx.One()}
	second = &Def{Name: "second", Symbol: "s", Dim: dimension.Of(dimension.Time), Scale: mathx.One()}
	hour   = &Def{Name: "hour", Symbol: "h", Dim: dimension.Of(dimension.Time), Scale: mathx.NewRationalFromInt(3600)}
	gram   = &Def{Name: "gram", Symbol: "g", Dim: dimension.Of(dimension.Mass), Scale: mathx.MustNewRational("1/1000")}
	joule  = &Def{Name: "joule", Symbol: "J", Dim: dimension.Energy, Scale: mathx.One()}
	kelvin = &Def{Name: "kelvin", Symbol: "K", Dim: dimension.Of(dimension.Temperature), Scale: mathx.One()}

	celsius = &Def{
		Name:   "degree Celsius",
		Symbol: "°C",
		Dim:    dimension.Of(dimension.Temperature),
		Scale:  mathx.One(),
		Offset: mathx.MustNewRational("5463/20"),
	}

	kilo  = &Prefix{Name: "kilo", Symbol: "k", Multiplier: mathx.NewRationalFromInt(1000)}
	milli = &Prefix{Name: "milli", Symbol: "m", Multiplier: mathx.MustNewRational("1/1000")}
)

func km() Expression {
	return New(Factor{Prefix: kilo, Unit: meter, Power: 1})
}

func kg() Expression {
	return New(Factor{Prefix: kilo, Unit: gram, Power: 1})
}

func TestRendering(t *testing.T) {
	tests := []struct {
		name       string
		expr       Expression
		wantSymbol string
		wantName   string
	}{
		{"single", FromDef(meter), "m", "meter"},
		{"prefixed", km(), "km", "kilometer"},
		{"velocity", km().Divide(FromDef(hour)), "km/h", "kilometer per hour"},
		{"square", FromDef(meter).Multiply(FromDef(meter)), "m^2", "square meter"},
		{"cubic", FromDef(meter).Pow(3), "m^3", "cubic meter"},
		{"fourth", FromDef(meter).Pow(4), "m^4", "meter to the 4"},
		{"reciprocal", One().Divide(FromDef(second)), "1/s", "reciprocal second"},
		{"newton", kg().Multiply(FromDef(meter)).Divide(FromDef(second).Pow(2)), "kg·m/s^2", "kilogram meter per square second"},
		{"grouped denominator", FromDef(joule).Divide(kg().Multiply(FromDef(kelvin))), "J/(kg·K)", "joule per kilogram kelvin"},
		{"bare prefix", FromPrefix(kilo), "kilo", "kilo"},
		{"bare prefix per unit", FromPrefix(milli).Divide(FromDef(second)), "milli/s", "milli per second"},
		{"bare prefix after units", FromPrefix(milli).Multiply(FromDef(meter).Inverse()).Multiply(FromDef(second)), "s·milli/m", "milli second per meter"},
		{"unitless", One(), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.Symbol(); got != tt.wantSymbol {
				t.Errorf("Symbol() = %q, want %q", got, tt.wantSymbol)
			}
			if got := tt.expr.Name(); got != tt.wantName {
				t.Errorf("Name() = %q, want %q", got, tt.wantName)
			}
			if tt.expr.String() != tt.expr.Symbol() {
				t.Error("String() should equal Symbol()")
			}
		})
	}
}

func TestDerivedDimAndScale(t *testing.T) {
	tests := []struct {
		name      string
		expr      Expression
		wantDim   dimension.Vector
		wantScale string
	}{
		{"meter", FromDef(meter), dimension.Of(dimension.Length), "1"},
		{"kilometer", km(), dimension.Of(dimension.Length), "1000"},
		{"kilogram", kg(), dimension.Of(dimension.Mass), "1"},
		{"km/h", km().Divide(FromDef(hour)), dimension.Velocity, "5/18"},
		{"square km", km().Pow(2), dimension.Area, "1000000"},
		{"per hour", FromDef(hour).Inverse(), dimension.Frequency, "1/3600"},
		{"bare prefix", FromPrefix(milli), dimension.Dimensionless, "1/1000"},
		{"ratio", FromDef(meter).Divide(km()), dimension.Dimensionless, "1/1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expr.Dim() != tt.wantDim {
				t.Errorf("Dim() = %v, want %v", tt.expr.Dim(), tt.wantDim)
			}
			if got := tt.expr.Scale().String(); got != tt.wantScale {
				t.Errorf("Scale() = %s, want %s", got, tt.wantScale)
			}
		})
	}
}

func TestPrefixMergesWithFollowingUnit(t *testing.T) {
	merged := Multiply(FromPrefix(kilo), FromDef(meter))

	if len(merged.Factors()) != 1 {
		t.Fatalf("Factors() = %v, want one factor", merged.Factors())
	}
	if !merged.Equal(km()) {
		t.Errorf("k·m = %s, want km", merged)
	}

	// k·m^2 is 1000 m^2, not (km)^2
	notMerged := Multiply(FromPrefix(kilo), FromDef(meter).Pow(2))
	if len(notMerged.Factors()) != 2 {
		t.Errorf("k·m^2 should keep two factors, got %v", notMerged.Factors())
	}
	if notMerged.Scale().String() != "1000" {
		t.Errorf("k·m^2 scale = %s", notMerged.Scale())
	}
}

func TestCancellation(t *testing.T) {
	e := FromDef(meter).Multiply(FromDef(second)).Divide(FromDef(second))
	if !e.Equal(FromDef(meter)) {
		t.Errorf("m·s/s = %s, want m", e)
	}

	unitless := km().Divide(km())
	if !unitless.IsUnitless() || !unitless.IsDimensionless() {
		t.Errorf("km/km = %q, want unitless", unitless)
	}
	if !unitless.Scale().Equal(mathx.One()) {
		t.Errorf("km/km scale = %s", unitless.Scale())
	}

	if !FromDef(meter).Pow(0).IsUnitless() {
		t.Error("Pow(0) should be unitless")
	}
}

func TestEqualIgnoresOrder(t *testing.T) {
	a := FromDef(meter).Multiply(FromDef(second))
	b := FromDef(second).Multiply(FromDef(meter))

	if !a.Equal(b) {
		t.Error("m·s should equal s·m")
	}
	if a.Equal(FromDef(meter).Divide(FromDef(second))) {
		t.Error("m·s should not equal m/s")
	}
	if !a.IsCompatible(b) || a.IsCompatible(FromDef(meter)) {
		t.Error("IsCompatible() wrong")
	}
}

func TestOffsetOnlyForSinglePlainFactor(t *testing.T) {
	want := mathx.MustNewRational("5463/20")

	if got := FromDef(celsius).Offset(); !got.Equal(want) {
		t.Errorf("°C offset = %s, want %s", got, want)
	}

	for name, e := range map[string]Expression{
		"squared":  FromDef(celsius).Pow(2),
		"prefixed": New(Factor{Prefix: milli, Unit: celsius, Power: 1}),
		"compound": FromDef(celsius).Divide(FromDef(second)),
		"kelvin":   FromDef(kelvin),
	} {
		if !e.Offset().IsZero() {
			t.Errorf("%s offset = %s, want 0", name, e.Offset())
		}
	}
}

func TestOperationsDoNotMutate(t *testing.T) {
	v := km().Divide(FromDef(hour))
	before := v.Symbol()

	_ = v.Pow(3)
	_ = v.Inverse()
	_ = v.Multiply(v)
	factors := v.Factors()
	factors[0].Power = 7

	if v.Symbol() != before {
		t.Errorf("expression changed from %q to %q", before, v.Symbol())
	}
}

func TestWithoutPrefixes(t *testing.T) {
	ms := New(Factor{Prefix: milli, Unit: second, Power: 1})
	e := km().Divide(ms)

	stripped, multiplier := e.WithoutPrefixes()
	if stripped.Symbol() != "m/s" {
		t.Errorf("stripped = %q, want m/s", stripped.Symbol())
	}
	if multiplier.String() != "1000000" {
		t.Errorf("multiplier = %s, want 1000000", multiplier)
	}

	bare, m := FromPrefix(kilo).Multiply(FromDef(second).Inverse()).WithoutPrefixes()
	if bare.Symbol() != "1/s" || m.String() != "1000" {
		t.Errorf("k/s without prefixes = %q × %s", bare.Symbol(), m)
	}
}

func TestZeroValueIsUnitless(t *testing.T) {
	var e Expression
	if !e.IsUnitless() || !e.IsDimensionless() {
		t.Error("zero Expression should be unitless")
	}
	if !e.Scale().Equal(mathx.One()) {
		t.Errorf("zero Expression scale = %s", e.Scale())
	}
	if !e.Multiply(FromDef(meter)).Equal(FromDef(meter)) {
		t.Error("zero Expression should be the identity")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		def     *Def
		wantErr bool
	}{
		{"valid", meter, false},
		{"nil", nil, true},
		{"no symbol", &Def{Name: "x", Scale: mathx.One()}, true},
		{"zero scale", &Def{Name: "x", Symbol: "x"}, true},
		{"negative scale", &Def{Name: "x", Symbol: "x", Scale: mathx.NewRationalFromInt(-1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && errors.ExtractModule(err) != errors.ModuleUnit {
				t.Errorf("module = %q", errors.ExtractModule(err))
			}
		})
	}

	if err := (&Prefix{Name: "kilo", Symbol: "k"}).Validate(); err == nil {
		t.Error("prefix without multiplier should be invalid")
	}
	if err := kilo.Validate(); err != nil {
		t.Errorf("kilo.Validate() = %v", err)
	}
}
