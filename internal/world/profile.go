package world

// Profile holds global per-world bias values set at world creation and
// applied on top of per-biome attribute ranges.
type Profile struct {
	TempBias     float64 `yaml:"temp_bias"`     // degrees, additive
	MoistureBias float64 `yaml:"moisture_bias"` // points, additive
	SunIntensity float64 `yaml:"sun_intensity"` // base sun exposure, 0-100
}

// DefaultProfile returns a temperate, neutral-bias world profile.
func DefaultProfile() Profile {
	return Profile{
		TempBias:     0,
		MoistureBias: 0,
		SunIntensity: 70,
	}
}
