package modberg

// Thermal constants in the UFC imperial convention.
const (
	// Latent heat of fusion of water, BTU/lb.
	waterLatentHeat = 144
	// Specific heat of soil solids, BTU/(lb·°F); 0.17 holds for most soils.
	solidsSpecificHeat = 0.17
	// Specific heat of pore water, BTU/(lb·°F). The average factor is the
	// midpoint used for a soil mass straddling the freezing front.
	waterSpecificHeatUnfrozen = 1.0
	waterSpecificHeatFrozen   = 0.5
	waterSpecificHeatAvg      = 0.75
)

// WaterContentPercent converts a gravimetric water content given in percent
// to the fraction Inputs carries.
func WaterContentPercent(pct float64) float64 {
	return pct / 100
}

// VolumetricLatentHeat is the heat released freezing all the pore water in
// a unit volume of soil, BTU/ft³. Proportional to the mass of pore water
// per unit volume: L = 144·γd·w.
func VolumetricLatentHeat(dryDensity, waterContent float64) float64 {
	return waterLatentHeat * dryDensity * waterContent
}

// AvgVolumetricHeatCapacity is the heat required to change the temperature
// of a unit volume of soil by 1 °F, averaged between the frozen and
// unfrozen state, BTU/(ft³·°F).
func AvgVolumetricHeatCapacity(dryDensity, waterContent float64) float64 {
	return volumetricHeatCapacity(dryDensity, waterContent, waterSpecificHeatAvg)
}

// FrozenVolumetricHeatCapacity is the volumetric heat capacity of the soil
// with its pore water frozen, BTU/(ft³·°F).
func FrozenVolumetricHeatCapacity(dryDensity, waterContent float64) float64 {
	return volumetricHeatCapacity(dryDensity, waterContent, waterSpecificHeatFrozen)
}

// UnfrozenVolumetricHeatCapacity is the volumetric heat capacity of the
// soil with its pore water unfrozen, BTU/(ft³·°F).
func UnfrozenVolumetricHeatCapacity(dryDensity, waterContent float64) float64 {
	return volumetricHeatCapacity(dryDensity, waterContent, waterSpecificHeatUnfrozen)
}

func volumetricHeatCapacity(dryDensity, waterContent, waterFactor float64) float64 {
	return dryDensity * (solidsSpecificHeat + waterFactor*waterContent)
}
