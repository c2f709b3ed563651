package modberg

// Validate checks the physical plausibility of the raw inputs. Pure, no
// side effects. The mean annual temperature is signed and unrestricted; a
// zero air freezing index is plausible (no freezing season) and handled as
// a degenerate computation, not a validation failure.
func Validate(in Inputs) error {
	if in.Units != Imperial && in.Units != Metric {
		return &InvalidInputError{Field: "units", Value: float64(in.Units), Reason: "unknown unit system"}
	}
	if in.Conductivity <= 0 {
		return &InvalidInputError{Field: "conductivity", Value: in.Conductivity, Reason: "must be positive"}
	}
	if in.DryDensity <= 0 {
		return &InvalidInputError{Field: "dry_density", Value: in.DryDensity, Reason: "must be positive"}
	}
	if in.WaterContent < 0 {
		return &InvalidInputError{Field: "water_content", Value: in.WaterContent, Reason: "must not be negative"}
	}
	if in.AirFreezingIndex < 0 {
		return &InvalidInputError{Field: "air_freezing_index", Value: in.AirFreezingIndex, Reason: "must not be negative"}
	}
	if in.NFactor <= 0 {
		return &InvalidInputError{Field: "n_factor", Value: in.NFactor, Reason: "must be positive"}
	}
	if in.FreezeDuration < 0 {
		return &InvalidInputError{Field: "freeze_duration", Value: in.FreezeDuration, Reason: "must not be negative"}
	}
	return nil
}
