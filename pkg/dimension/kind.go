// ============================================================================
// tantalum - Exact Unit-Aware Arithmetic
// ============================================================================
//
// Package:     dimension
// Description: Names for well-known dimension vectors
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package dimension

// Well-known derived dimensions
var (
	Area          = Of(Length).Pow(2)
	Volume        = Of(Length).Pow(3)
	Velocity      = Of(Length).Divide(Of(Time))
	Acceleration  = Velocity.Divide(Of(Time))
	Frequency     = Of(Time).Inverse()
	Force         = Of(Mass).Multiply(Acceleration)
	Energy        = Force.Multiply(Of(Length))
	Power         = Energy.Divide(Of(Time))
	Pressure      = Force.Divide(Area)
	Charge        = Of(Current).Multiply(Of(Time))
	Voltage       = Power.Divide(Of(Current))
	Capacitance   = Charge.Divide(Voltage)
	Resistance    = Voltage.Divide(Of(Current))
	Conductance   = Resistance.Inverse()
	MagneticFlux  = Voltage.Multiply(Of(Time))
	FluxDensity   = MagneticFlux.Divide(Area)
	Inductance    = MagneticFlux.Divide(Of(Current))
	Density       = Of(Mass).Divide(Volume)
	DataRate      = Of(Information).Divide(Of(Time))
	Concentration = Of(Amount).Divide(Volume)
)

var kinds = map[Vector]string{
	Dimensionless:     "dimensionless",
	Of(Length):        "length",
	Of(Mass):          "mass",
	Of(Time):          "time",
	Of(Current):       "current",
	Of(Temperature):   "temperature",
	Of(Amount):        "amount",
	Of(Luminosity):    "luminosity",
	Of(Information):   "information",
	Area:              "area",
	Volume:            "volume",
	Velocity:          "velocity",
	Acceleration:      "acceleration",
	Frequency:         "frequency",
	Force:             "force",
	Energy:            "energy",
	Power:             "power",
	Pressure:          "pressure",
	Charge:            "charge",
	Voltage:           "voltage",
	Capacitance:       "capacitance",
	Resistance:        "resistance",
	Conductance:       "conductance",
	MagneticFlux:      "magnetic flux",
	FluxDensity:       "magnetic flux density",
	Inductance:        "inductance",
	Density:           "density",
	DataRate:          "data rate",
	Concentration:     "concentration",
}

// Kind returns the conventional name of the quantity kind with dimension v,
// such as "velocity" or "energy", or "" if v has no common name.
func (v Vector) Kind() string {
	return kinds[v]
}
