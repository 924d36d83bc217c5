package biome

// ID identifies a biome (e.g. "forest"). Mod-provided biomes use their own IDs.
type ID string

// SoilType identifies a ground composition drawn per cell.
type SoilType string

const (
	SoilLoam   SoilType = "loam"
	SoilClay   SoilType = "clay"
	SoilSand   SoilType = "sand"
	SoilPeat   SoilType = "peat"
	SoilRock   SoilType = "rock"
	SoilGravel SoilType = "gravel"
	SoilSnow   SoilType = "snow"
)

// AttributeKey names a synthesized cell attribute.
type AttributeKey string

const (
	AttrVegetationDensity AttributeKey = "vegetation_density"
	AttrMoisture          AttributeKey = "moisture"
	AttrElevation         AttributeKey = "elevation"
	AttrTemperature       AttributeKey = "temperature"
	AttrDangerLevel       AttributeKey = "danger_level"
	AttrMagicAffinity     AttributeKey = "magic_affinity"
	AttrHumanPresence     AttributeKey = "human_presence"
	AttrPredatorPresence  AttributeKey = "predator_presence"
	AttrSunExposure       AttributeKey = "sun_exposure"
	AttrWindLevel         AttributeKey = "wind_level"
	AttrLightLevel        AttributeKey = "light_level"
	AttrExplorability     AttributeKey = "explorability"
)

// Range is an inclusive numeric interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Clamp bounds v to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// DomainBounds returns the legal domain for an attribute. All synthesized
// values are clamped here as the final step, after every modifier.
// Percentage-like attributes use 0-100; temperature is degrees Celsius.
func DomainBounds(key AttributeKey) Range {
	if key == AttrTemperature {
		return Range{Min: -30, Max: 50}
	}
	return Range{Min: 0, Max: 100}
}

// Definition describes a single biome: how large its regions grow, which
// biomes may border it, and the ranges its cell attributes are drawn from.
// Definitions are immutable after catalog construction.
type Definition struct {
	ID               ID
	MinSize          int
	MaxSize          int
	TravelCost       float64
	SpreadWeight     int
	AllowedNeighbors map[ID]bool // nil or empty means unconstrained
	AttributeRanges  map[AttributeKey]Range
	SoilTypes        []SoilType
	Subterranean     bool // caves and similar; sunlight never reaches these
}

// Allows reports whether other may be placed next to this biome.
// A biome always tolerates itself: region interiors put same-biome cells
// side by side, so self-adjacency cannot be illegal. A missing neighbor
// table is treated as "no constraint" (an authoring defect the loader
// warns about, not a generation failure).
func (d Definition) Allows(other ID) bool {
	if other == d.ID {
		return true
	}
	if len(d.AllowedNeighbors) == 0 {
		return true
	}
	return d.AllowedNeighbors[other]
}

// RangeFor returns the sampling range for the given attribute, if declared.
func (d Definition) RangeFor(key AttributeKey) (Range, bool) {
	r, ok := d.AttributeRanges[key]
	return r, ok
}

func neighborSet(ids ...ID) map[ID]bool {
	set := make(map[ID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
