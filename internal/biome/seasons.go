package biome

// Season is one of the four seasons of the generation year.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

// String returns the string representation of a Season
func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	case Winter:
		return "winter"
	default:
		return "unknown"
	}
}

// ParseSeason converts a string to a Season, defaulting to Spring.
func ParseSeason(s string) Season {
	switch s {
	case "summer":
		return Summer
	case "autumn", "fall":
		return Autumn
	case "winter":
		return Winter
	default:
		return Spring
	}
}

// AllSeasons returns the seasons in calendar order.
func AllSeasons() []Season {
	return []Season{Spring, Summer, Autumn, Winter}
}

// SeasonModifiers adjust synthesized attributes for the current season.
// TemperatureMod and WindMod are additive (degrees / points); MoistureMod
// and SunExposureMod are percentage multipliers applied to the base value.
type SeasonModifiers struct {
	TemperatureMod float64 `yaml:"temperature_mod"`
	MoistureMod    float64 `yaml:"moisture_mod"`
	SunExposureMod float64 `yaml:"sun_exposure_mod"`
	WindMod        float64 `yaml:"wind_mod"`
	EventChance    float64 `yaml:"event_chance"`
}

// DefaultSeasonModifiers returns the built-in season table.
func DefaultSeasonModifiers() map[Season]SeasonModifiers {
	return map[Season]SeasonModifiers{
		Spring: {TemperatureMod: 0, MoistureMod: 1.15, SunExposureMod: 1.0, WindMod: 10, EventChance: 0.10},
		Summer: {TemperatureMod: 8, MoistureMod: 0.85, SunExposureMod: 1.25, WindMod: 0, EventChance: 0.05},
		Autumn: {TemperatureMod: -3, MoistureMod: 1.10, SunExposureMod: 0.85, WindMod: 20, EventChance: 0.12},
		Winter: {TemperatureMod: -12, MoistureMod: 0.90, SunExposureMod: 0.60, WindMod: 30, EventChance: 0.15},
	}
}
