package modberg

import (
	"encoding/json"
	"fmt"
)

// UnitSystem declares the convention every field of an Inputs record uses.
// The engine never mixes systems: metric inputs are converted once, at the
// validator boundary, and all formulas run in the UFC imperial convention.
type UnitSystem int

const (
	// Imperial: BTU/(ft·hr·°F), lb/ft³, °F·days, feet.
	Imperial UnitSystem = iota
	// Metric: W/(m·K), kg/m³, °C·days, metres.
	Metric
)

// Conversion factors between the two conventions.
const (
	wattPerMeterKelvin = 0.5777893  // BTU/(ft·hr·°F) per W/(m·K)
	kgPerCubicMeter    = 0.06242796 // lb/ft³ per kg/m³
	celsiusInterval    = 1.8        // °F per °C temperature interval
	foot               = 0.3048     // m per ft
)

func (u UnitSystem) String() string {
	switch u {
	case Imperial:
		return "imperial"
	case Metric:
		return "metric"
	}
	return fmt.Sprintf("UnitSystem(%d)", int(u))
}

// ParseUnitSystem maps the wire names to a UnitSystem. The empty string is
// the imperial default, matching the UFC worked examples.
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch s {
	case "", "imperial":
		return Imperial, nil
	case "metric":
		return Metric, nil
	}
	return Imperial, fmt.Errorf("unknown unit system %q", s)
}

func (u UnitSystem) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *UnitSystem) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseUnitSystem(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// toImperial returns the inputs in the UFC imperial convention. Fractions,
// the n-factor and the season duration carry over unchanged; temperatures
// here are intervals relative to freezing, so only the scale converts.
func (in Inputs) toImperial() Inputs {
	if in.Units == Imperial {
		return in
	}
	out := in
	out.Units = Imperial
	out.Conductivity *= wattPerMeterKelvin
	out.DryDensity *= kgPerCubicMeter
	out.MeanAnnualTemp *= celsiusInterval
	out.AirFreezingIndex *= celsiusInterval
	return out
}
