package modberg

// SurfaceFreezingIndex converts the air freezing index to a surface index
// with the n-factor: F = AFI·n. °F·days.
func SurfaceFreezingIndex(airFreezingIndex, nFactor float64) float64 {
	return airFreezingIndex * nFactor
}

// SurfaceTempBelowFreezing is the effective surface temperature depression
// over the freezing season: vs = F/t. °F. The caller must not pass a zero
// duration; Compute treats that case as degenerate before reaching here.
func SurfaceTempBelowFreezing(surfaceFreezingIndex, duration float64) float64 {
	return surfaceFreezingIndex / duration
}

// FusionParameter is the dimensionless μ = vs·C/L of the Aldrich λ chart.
func FusionParameter(vs, heatCapacity, latentHeat float64) float64 {
	return vs * heatCapacity / latentHeat
}

// ThermalRatio is the dimensionless α = v0/vs. It keeps the sign of the
// mean annual ground temperature relative to freezing.
func ThermalRatio(meanAnnualTemp, vs float64) float64 {
	return meanAnnualTemp / vs
}

// BelowFreezing rebases an absolute temperature in °F to the freezing
// point, keeping the sign. Convenience for callers that obtain absolute
// mean annual temperatures, such as the climate API client.
func BelowFreezing(tempF float64) float64 {
	return tempF - 32
}
