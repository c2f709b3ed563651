// Package modberg computes seasonal frost penetration depth in a single
// homogeneous, isotropic soil layer with the modified Berggren equation,
// following the closed-form procedure of UFC 3-130-06. Every function is a
// pure function of its arguments; the package holds no state and is safe to
// call from any number of goroutines.
package modberg

import "math"

// Inputs are the seven raw quantities of a frost depth computation, in the
// declared unit system.
type Inputs struct {
	Units UnitSystem `json:"units"`
	// Conductivity is the soil thermal conductivity, averaged between the
	// frozen and unfrozen state. BTU/(ft·hr·°F) or W/(m·K).
	Conductivity float64 `json:"conductivity"`
	// DryDensity is the dry unit weight of the soil. lb/ft³ or kg/m³.
	DryDensity float64 `json:"dry_density"`
	// WaterContent is the gravimetric water content as a fraction (0–1).
	WaterContent float64 `json:"water_content"`
	// MeanAnnualTemp is the undisturbed ground temperature relative to the
	// freezing point, signed. °F or °C intervals.
	MeanAnnualTemp float64 `json:"mean_annual_temp"`
	// AirFreezingIndex is the seasonal cumulative degree-days below
	// freezing. °F·days or °C·days.
	AirFreezingIndex float64 `json:"air_freezing_index"`
	// NFactor converts the air freezing index to a surface freezing index.
	NFactor float64 `json:"n_factor"`
	// FreezeDuration is the length of the freezing season in days.
	FreezeDuration float64 `json:"freeze_duration"`
}

// Result carries the frost depth plus every intermediate of the pipeline so
// the presentation layer can surface them, matching the transparency of the
// chart-based workflow the closed form replaces.
//
// Depth follows the unit system of the inputs (ft or m). The intermediates
// are always reported in the UFC imperial convention the formulas run in:
// μ, α and λ are dimensionless, and F, vs, L, C are the parameters the
// original λ chart is indexed by.
type Result struct {
	Depth float64 `json:"depth"`

	// Degenerate marks a computation where the surface temperature
	// depression collapsed to zero; the depth is defined as 0 and the
	// ratio parameters are never evaluated.
	Degenerate      bool   `json:"degenerate"`
	DegenerateCause string `json:"degenerate_cause,omitempty"`

	SurfaceFreezingIndex float64 `json:"surface_freezing_index"` // F, °F·days
	SurfaceTemp          float64 `json:"surface_temp"`           // vs, °F below freezing
	LatentHeat           float64 `json:"latent_heat"`            // L, BTU/ft³
	HeatCapacity         float64 `json:"heat_capacity"`          // C, BTU/(ft³·°F)
	FusionParameter      float64 `json:"fusion_parameter"`       // μ
	ThermalRatio         float64 `json:"thermal_ratio"`          // α
	Lambda               float64 `json:"lambda"`                 // λ
}

// Compute runs the full pipeline: validation, thermal property derivation,
// dimensionless parameters, λ, depth. It returns *InvalidInputError for an
// implausible raw input and *DomainError when the λ closed form is
// undefined; a collapsed freezing season is not an error and yields a
// degenerate zero-depth result instead.
func Compute(in Inputs) (*Result, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	imp := in.toImperial()

	l := VolumetricLatentHeat(imp.DryDensity, imp.WaterContent)
	c := AvgVolumetricHeatCapacity(imp.DryDensity, imp.WaterContent)
	f := SurfaceFreezingIndex(imp.AirFreezingIndex, imp.NFactor)

	res := &Result{
		SurfaceFreezingIndex: f,
		LatentHeat:           l,
		HeatCapacity:         c,
	}
	if f == 0 || imp.FreezeDuration == 0 {
		res.Degenerate = true
		res.DegenerateCause = "air_freezing_index"
		if imp.FreezeDuration == 0 {
			res.DegenerateCause = "freeze_duration"
		}
		return res, nil
	}

	vs := SurfaceTempBelowFreezing(f, imp.FreezeDuration)
	res.SurfaceTemp = vs
	res.FusionParameter = FusionParameter(vs, c, l)
	res.ThermalRatio = ThermalRatio(imp.MeanAnnualTemp, vs)

	lambda, err := Coefficient(res.FusionParameter, res.ThermalRatio)
	if err != nil {
		return nil, err
	}
	res.Lambda = lambda

	res.Depth = FrostDepth(lambda, imp.Conductivity, f, l)
	if in.Units == Metric {
		res.Depth *= foot
	}
	return res, nil
}

// FrostDepth is the depth to which freezing temperatures penetrate the soil
// mass: X = λ·sqrt(48·k·F/L), in feet. The 48 is fixed by the UFC
// formulation's hr·°F·days unit convention.
func FrostDepth(lambda, conductivity, f, l float64) float64 {
	return lambda * math.Sqrt(48*conductivity*f/l)
}
