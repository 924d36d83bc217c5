package worldgen

import (
	"math/rand"
	"sort"

	"github.com/aquilax/go-perlin"

	"github.com/ngoccc0/dreamland-engine-sub010/internal/biome"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/grid"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/world"
)

const (
	// elevationNoiseScale controls how quickly elevation varies across
	// the grid; lower values make broader slopes.
	elevationNoiseScale = 0.05
	// elevationNoiseBlend is the share of the elevation taken from the
	// coherent noise field versus the per-cell uniform draw.
	elevationNoiseBlend = 0.7
)

// Synthesizer fills in a cell's attribute bundle from the biome's ranges,
// the current season's modifiers and the world profile's biases.
type Synthesizer struct {
	profile    world.Profile
	seasonMods map[biome.Season]biome.SeasonModifiers
	noise      *perlin.Perlin
	rng        *rand.Rand
}

// NewSynthesizer creates a synthesizer. The noise field is seeded from
// the world seed so elevation is reproducible alongside everything else.
func NewSynthesizer(profile world.Profile, seasonMods map[biome.Season]biome.SeasonModifiers, worldSeed int64, rng *rand.Rand) *Synthesizer {
	if seasonMods == nil {
		seasonMods = biome.DefaultSeasonModifiers()
	}
	return &Synthesizer{
		profile:    profile,
		seasonMods: seasonMods,
		noise:      perlin.NewPerlin(2, 2, 3, worldSeed),
		rng:        rng,
	}
}

// Synthesize creates the cell at pos. Every declared attribute is drawn
// uniformly from its biome range, elevation is blended with the coherent
// noise field, season and world-profile adjustments are applied, derived
// attributes are computed, and everything is clamped to its domain
// bounds as the very last step.
func (s *Synthesizer) Synthesize(pos grid.Coord, def biome.Definition, regionID uint32, season biome.Season) *world.Cell {
	attrs := make(map[biome.AttributeKey]float64, len(def.AttributeRanges)+4)

	// Sorted iteration keeps the RNG stream identical across runs.
	for _, key := range sortedRangeKeys(def.AttributeRanges) {
		r := def.AttributeRanges[key]
		attrs[key] = r.Min + s.rng.Float64()*(r.Max-r.Min)
	}

	if r, ok := def.RangeFor(biome.AttrElevation); ok {
		// Neighboring cells share the noise field, so ridges and basins
		// span region boundaries instead of resetting per cell.
		n := (s.noise.Noise2D(float64(pos.X)*elevationNoiseScale, float64(pos.Y)*elevationNoiseScale) + 1) / 2
		coherent := r.Min + n*(r.Max-r.Min)
		attrs[biome.AttrElevation] = elevationNoiseBlend*coherent + (1-elevationNoiseBlend)*attrs[biome.AttrElevation]
	}

	mods := s.seasonMods[season]

	if base, ok := attrs[biome.AttrTemperature]; ok {
		attrs[biome.AttrTemperature] = base + mods.TemperatureMod + s.profile.TempBias
	}
	if base, ok := attrs[biome.AttrMoisture]; ok {
		attrs[biome.AttrMoisture] = base*mods.MoistureMod + s.profile.MoistureBias
	}

	// Sun exposure comes from the world profile, not the biome; it never
	// reaches subterranean cells.
	sunExposure := s.profile.SunIntensity * mods.SunExposureMod
	if def.Subterranean {
		sunExposure = 0
	}
	attrs[biome.AttrSunExposure] = sunExposure

	wind := 10 + s.rng.Float64()*30 + mods.WindMod
	if elev, ok := attrs[biome.AttrElevation]; ok {
		wind += elev * 0.3
	}
	if def.Subterranean {
		wind = 0
	}
	attrs[biome.AttrWindLevel] = wind

	lightFloor := 1.0
	if def.Subterranean {
		lightFloor = 0
	}
	light := sunExposure
	if light < lightFloor {
		light = lightFloor
	}
	attrs[biome.AttrLightLevel] = light

	attrs[biome.AttrExplorability] = 100 - attrs[biome.AttrVegetationDensity]/2 - attrs[biome.AttrDangerLevel]/2

	// Final clamp, after every additive and percentage modifier.
	for key, v := range attrs {
		attrs[key] = biome.DomainBounds(key).Clamp(v)
	}

	soil := biome.SoilLoam
	switch len(def.SoilTypes) {
	case 0:
		// Authoring defect, already warned about by the loader.
	case 1:
		soil = def.SoilTypes[0]
	default:
		soil = def.SoilTypes[s.rng.Intn(len(def.SoilTypes))]
	}

	return &world.Cell{
		Pos:        pos,
		Terrain:    def.ID,
		RegionID:   regionID,
		Attributes: attrs,
		SoilType:   soil,
		TravelCost: def.TravelCost,
	}
}

func sortedRangeKeys(ranges map[biome.AttributeKey]biome.Range) []biome.AttributeKey {
	keys := make([]biome.AttributeKey, 0, len(ranges))
	for k := range ranges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
