// ============================================================================
// tantalum - Exact Unit-Aware Arithmetic
// ============================================================================
//
// Package:     registry
// Description: Builtin unit and prefix table with exact scales
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package registry

import (
	"github.com/msto63/tantalum/foundation/utils/mathx"
	"github.com/msto63/tantalum/pkg/dimension"
	"github.com/msto63/tantalum/pkg/unit"
)

func def(name, symbol string, dim dimension.Vector, scale string, aliases ...string) *unit.Def {
	return &unit.Def{
		Name:    name,
		Symbol:  symbol,
		Aliases: aliases,
		Dim:     dim,
		Scale:   mathx.MustNewRational(scale),
	}
}

func prefix(name, symbol string, exp int) *unit.Prefix {
	return &unit.Prefix{Name: name, Symbol: symbol, Multiplier: mathx.PowerOfTen(exp)}
}

func binaryPrefix(name, symbol string, exp int) *unit.Prefix {
	m, _ := mathx.NewRationalFromInt(1024).Pow(exp)
	return &unit.Prefix{Name: name, Symbol: symbol, Multiplier: m, Binary: true}
}

var (
	length      = dimension.Of(dimension.Length)
	mass        = dimension.Of(dimension.Mass)
	duration    = dimension.Of(dimension.Time)
	current     = dimension.Of(dimension.Current)
	temperature = dimension.Of(dimension.Temperature)
	amount      = dimension.Of(dimension.Amount)
	luminosity  = dimension.Of(dimension.Luminosity)
	information = dimension.Of(dimension.Information)
)

// Scales are relative to the coherent SI unit: meters, kilograms, seconds,
// cubic meters and so on. Mass units are therefore stated in kilograms.
var (
	meterDef        = def("meter", "m", length, "1", "metre")
	auDef           = def("astronomical unit", "AU", length, "149597870691", "au", "ua")
	inchDef         = def("inch", "in", length, "127/5000")
	footDef         = def("foot", "ft", length, "381/1250", "feet")
	yardDef         = def("yard", "yd", length, "1143/1250")
	mileDef         = def("mile", "mi", length, "201168/125")
	nauticalMileDef = def("nautical mile", "nmi", length, "1852")
	lightYearDef    = def("light-year", "ly", length, "9460730472580800", "light year", "lightyear")
	parsecDef       = def("parsec", "pc", length, "30857000000000000")

	gramDef  = def("gram", "g", mass, "1/1000", "gramme")
	tonneDef = def("tonne", "t", mass, "1000", "metric ton")
	dramDef  = def("dram", "dr", mass, "17718451953/10000000000000")
	ounceDef = def("ounce", "oz", mass, "45359237/1600000000")
	poundDef = def("pound", "lb", mass, "45359237/100000000", "lbs")

	secondDef = def("second", "s", duration, "1", "sec", "secs")
	minuteDef = def("minute", "min", duration, "60", "mins")
	hourDef   = def("hour", "h", duration, "3600", "hr", "hrs")
	dayDef    = def("day", "d", duration, "86400")
	monthDef  = def("month", "mo", duration, "2629746")
	yearDef   = def("year", "a", duration, "31557600", "yr", "yrs", "annum")

	ampereDef = def("ampere", "A", current, "1", "amp", "amps")

	kelvinDef     = def("kelvin", "K", temperature, "1")
	celsiusDef    = affine(def("degree Celsius", "°C", temperature, "1", "celsius", "degC", "degrees Celsius"), "5463/20")
	fahrenheitDef = affine(def("degree Fahrenheit", "°F", temperature, "5/9", "fahrenheit", "degF", "degrees Fahrenheit"), "45967/100")

	moleDef    = def("mole", "mol", amount, "1")
	candelaDef = def("candela", "cd", luminosity, "1")

	bitDef  = def("bit", "bit", information, "1", "b")
	byteDef = def("byte", "B", information, "8", "octet")

	newtonDef  = def("newton", "N", dimension.Force, "1")
	jouleDef   = def("joule", "J", dimension.Energy, "1")
	wattDef    = def("watt", "W", dimension.Power, "1")
	pascalDef  = def("pascal", "Pa", dimension.Pressure, "1")
	hertzDef   = def("hertz", "Hz", dimension.Frequency, "1")
	coulombDef = def("coulomb", "C", dimension.Charge, "1")
	voltDef    = def("volt", "V", dimension.Voltage, "1")
	ohmDef     = def("ohm", "Ω", dimension.Resistance, "1")
	siemensDef = def("siemens", "S", dimension.Conductance, "1")
	faradDef   = def("farad", "F", dimension.Capacitance, "1")
	henryDef   = def("henry", "H", dimension.Inductance, "1", "henries")
	teslaDef   = def("tesla", "T", dimension.FluxDensity, "1")
	weberDef   = def("weber", "Wb", dimension.MagneticFlux, "1")
	hectareDef = def("hectare", "ha", dimension.Area, "10000")
	literDef   = def("liter", "L", dimension.Volume, "1/1000", "l", "litre")
	pintDef    = def("pint", "pt", dimension.Volume, "473176473/1000000000000")
	quartDef   = def("quart", "qt", dimension.Volume, "473176473/500000000000")
	gallonDef  = def("gallon", "gal", dimension.Volume, "473176473/125000000000")
)

func affine(d *unit.Def, offset string) *unit.Def {
	d.Offset = mathx.MustNewRational(offset)
	return d
}

var builtinUnits = []*unit.Def{
	meterDef, auDef, inchDef, footDef, yardDef, mileDef, nauticalMileDef, lightYearDef, parsecDef,
	gramDef, tonneDef, dramDef, ounceDef, poundDef,
	secondDef, minuteDef, hourDef, dayDef, monthDef, yearDef,
	ampereDef,
	kelvinDef, celsiusDef, fahrenheitDef,
	moleDef, candelaDef,
	bitDef, byteDef,
	newtonDef, jouleDef, wattDef, pascalDef, hertzDef, coulombDef, voltDef, ohmDef,
	siemensDef, faradDef, henryDef, teslaDef, weberDef,
	hectareDef, literDef, pintDef, quartDef, gallonDef,
}

var (
	quectoPrefix = prefix("quecto", "q", -30)
	rontoPrefix  = prefix("ronto", "r", -27)
	yoctoPrefix  = prefix("yocto", "y", -24)
	zeptoPrefix  = prefix("zepto", "z", -21)
	attoPrefix   = prefix("atto", "a", -18)
	femtoPrefix  = prefix("femto", "f", -15)
	picoPrefix   = prefix("pico", "p", -12)
	nanoPrefix   = prefix("nano", "n", -9)
	microPrefix  = prefix("micro", "µ", -6)
	milliPrefix  = prefix("milli", "m", -3)
	centiPrefix  = prefix("centi", "c", -2)
	deciPrefix   = prefix("deci", "d", -1)
	decaPrefix   = prefix("deca", "da", 1)
	hectoPrefix  = prefix("hecto", "h", 2)
	kiloPrefix   = prefix("kilo", "k", 3)
	megaPrefix   = prefix("mega", "M", 6)
	gigaPrefix   = prefix("giga", "G", 9)
	teraPrefix   = prefix("tera", "T", 12)
	petaPrefix   = prefix("peta", "P", 15)
	exaPrefix    = prefix("exa", "E", 18)
	zettaPrefix  = prefix("zetta", "Z", 21)
	yottaPrefix  = prefix("yotta", "Y", 24)
	ronnaPrefix  = prefix("ronna", "R", 27)
	quettaPrefix = prefix("quetta", "Q", 30)

	kibiPrefix = binaryPrefix("kibi", "Ki", 1)
	mebiPrefix = binaryPrefix("mebi", "Mi", 2)
	gibiPrefix = binaryPrefix("gibi", "Gi", 3)
	tebiPrefix = binaryPrefix("tebi", "Ti", 4)
	pebiPrefix = binaryPrefix("pebi", "Pi", 5)
	exbiPrefix = binaryPrefix("exbi", "Ei", 6)
	zebiPrefix = binaryPrefix("zebi", "Zi", 7)
	yobiPrefix = binaryPrefix("yobi", "Yi", 8)
)

var builtinPrefixes = []*unit.Prefix{
	quectoPrefix, rontoPrefix, yoctoPrefix, zeptoPrefix, attoPrefix, femtoPrefix,
	picoPrefix, nanoPrefix, microPrefix, milliPrefix, centiPrefix, deciPrefix,
	decaPrefix, hectoPrefix, kiloPrefix, megaPrefix, gigaPrefix, teraPrefix,
	petaPrefix, exaPrefix, zettaPrefix, yottaPrefix, ronnaPrefix, quettaPrefix,
	kibiPrefix, mebiPrefix, gibiPrefix, tebiPrefix, pebiPrefix, exbiPrefix,
	zebiPrefix, yobiPrefix,
}

// Alternative spellings of prefix symbols
var prefixSymbolAliases = map[string]*unit.Prefix{
	"u": microPrefix,
	"μ": microPrefix, // Greek small letter mu
}

// Unit constants
var (
	Meter        = unit.FromDef(meterDef)
	Kilometer    = unit.New(unit.Factor{Prefix: kiloPrefix, Unit: meterDef, Power: 1})
	Centimeter   = unit.New(unit.Factor{Prefix: centiPrefix, Unit: meterDef, Power: 1})
	Millimeter   = unit.New(unit.Factor{Prefix: milliPrefix, Unit: meterDef, Power: 1})
	AU           = unit.FromDef(auDef)
	Inch         = unit.FromDef(inchDef)
	Foot         = unit.FromDef(footDef)
	Yard         = unit.FromDef(yardDef)
	Mile         = unit.FromDef(mileDef)
	NauticalMile = unit.FromDef(nauticalMileDef)
	LightYear    = unit.FromDef(lightYearDef)
	Parsec       = unit.FromDef(parsecDef)

	Gram     = unit.FromDef(gramDef)
	Kilogram = unit.New(unit.Factor{Prefix: kiloPrefix, Unit: gramDef, Power: 1})
	Tonne    = unit.FromDef(tonneDef)
	Dram     = unit.FromDef(dramDef)
	Ounce    = unit.FromDef(ounceDef)
	Pound    = unit.FromDef(poundDef)

	Second = unit.FromDef(secondDef)
	Minute = unit.FromDef(minuteDef)
	Hour   = unit.FromDef(hourDef)
	Day    = unit.FromDef(dayDef)
	Month  = unit.FromDef(monthDef)
	Year   = unit.FromDef(yearDef)

	Ampere     = unit.FromDef(ampereDef)
	Kelvin     = unit.FromDef(kelvinDef)
	Celsius    = unit.FromDef(celsiusDef)
	Fahrenheit = unit.FromDef(fahrenheitDef)
	Mole       = unit.FromDef(moleDef)
	Candela    = unit.FromDef(candelaDef)
	Bit        = unit.FromDef(bitDef)
	Byte       = unit.FromDef(byteDef)

	Newton  = unit.FromDef(newtonDef)
	Joule   = unit.FromDef(jouleDef)
	Watt    = unit.FromDef(wattDef)
	Pascal  = unit.FromDef(pascalDef)
	Hertz   = unit.FromDef(hertzDef)
	Coulomb = unit.FromDef(coulombDef)
	Volt    = unit.FromDef(voltDef)
	Ohm     = unit.FromDef(ohmDef)
	Siemens = unit.FromDef(siemensDef)
	Farad   = unit.FromDef(faradDef)
	Henry   = unit.FromDef(henryDef)
	Tesla   = unit.FromDef(teslaDef)
	Weber   = unit.FromDef(weberDef)

	Hectare   = unit.FromDef(hectareDef)
	Liter     = unit.FromDef(literDef)
	CubicInch = Inch.Pow(3)
	CubicFoot = Foot.Pow(3)
	CubicYard = Yard.Pow(3)
	Pint      = unit.FromDef(pintDef)
	Quart     = unit.FromDef(quartDef)
	Gallon    = unit.FromDef(gallonDef)
)

// Prefix constants, usable as bare factors: Kilo.Multiply(Meter) is a kilometer
var (
	Quecto = unit.FromPrefix(quectoPrefix)
	Ronto  = unit.FromPrefix(rontoPrefix)
	Yocto  = unit.FromPrefix(yoctoPrefix)
	Zepto  = unit.FromPrefix(zeptoPrefix)
	Atto   = unit.FromPrefix(attoPrefix)
	Femto  = unit.FromPrefix(femtoPrefix)
	Pico   = unit.FromPrefix(picoPrefix)
	Nano   = unit.FromPrefix(nanoPrefix)
	Micro  = unit.FromPrefix(microPrefix)
	Milli  = unit.FromPrefix(milliPrefix)
	Centi  = unit.FromPrefix(centiPrefix)
	Deci   = unit.FromPrefix(deciPrefix)
	Deca   = unit.FromPrefix(decaPrefix)
	Hecto  = unit.FromPrefix(hectoPrefix)
	Kilo   = unit.FromPrefix(kiloPrefix)
	Mega   = unit.FromPrefix(megaPrefix)
	Giga   = unit.FromPrefix(gigaPrefix)
	Tera   = unit.FromPrefix(teraPrefix)
	Peta   = unit.FromPrefix(petaPrefix)
	Exa    = unit.FromPrefix(exaPrefix)
	Zetta  = unit.FromPrefix(zettaPrefix)
	Yotta  = unit.FromPrefix(yottaPrefix)
	Ronna  = unit.FromPrefix(ronnaPrefix)
	Quetta = unit.FromPrefix(quettaPrefix)

	Kibi = unit.FromPrefix(kibiPrefix)
	Mebi = unit.FromPrefix(mebiPrefix)
	Gibi = unit.FromPrefix(gibiPrefix)
	Tebi = unit.FromPrefix(tebiPrefix)
	Pebi = unit.FromPrefix(pebiPrefix)
	Exbi = unit.FromPrefix(exbiPrefix)
	Zebi = unit.FromPrefix(zebiPrefix)
	Yobi = unit.FromPrefix(yobiPrefix)
)

// coherent SI unit per base dimension, in rendering order
var baseUnits = []struct {
	base   dimension.Base
	factor unit.Factor
}{
	{dimension.Mass, unit.Factor{Prefix: kiloPrefix, Unit: gramDef, Power: 1}},
	{dimension.Length, unit.Factor{Unit: meterDef, Power: 1}},
	{dimension.Time, unit.Factor{Unit: secondDef, Power: 1}},
	{dimension.Current, unit.Factor{Unit: ampereDef, Power: 1}},
	{dimension.Temperature, unit.Factor{Unit: kelvinDef, Power: 1}},
	{dimension.Amount, unit.Factor{Unit: moleDef, Power: 1}},
	{dimension.Luminosity, unit.Factor{Unit: candelaDef, Power: 1}},
	{dimension.Information, unit.Factor{Unit: bitDef, Power: 1}},
}

// BaseExpression returns the coherent SI expression for dim, e.g. kg·m^2/s^2
// for energy. Its scale is always exactly 1.
func BaseExpression(dim dimension.Vector) unit.Expression {
	factors := make([]unit.Factor, 0, len(baseUnits))
	for _, b := range baseUnits {
		if e := dim.Exponent(b.base); e != 0 {
			f := b.factor
			f.Power = e
			factors = append(factors, f)
		}
	}
	return unit.New(factors...)
}
