package biome

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ngoccc0/dreamland-engine-sub010/internal/logger"
)

// BiomeDefinitionYAML represents a biome definition from the YAML file
type BiomeDefinitionYAML struct {
	MinSize          int              `yaml:"min_size"`
	MaxSize          int              `yaml:"max_size"`
	TravelCost       float64          `yaml:"travel_cost"`
	SpreadWeight     int              `yaml:"spread_weight"`
	AllowedNeighbors []string         `yaml:"allowed_neighbors"`
	AttributeRanges  map[string]Range `yaml:"attribute_ranges"`
	SoilTypes        []string         `yaml:"soil_types"`
	Subterranean     bool             `yaml:"subterranean"`
}

// BiomesConfig represents the structure of the biomes.yaml file
type BiomesConfig struct {
	Biomes map[string]BiomeDefinitionYAML `yaml:"biomes"`
}

// LoadCatalogFromYAML loads biome definitions from a YAML file and builds
// an immutable catalog. Authoring defects (missing neighbor tables, empty
// attribute ranges, inverted size bounds) are logged as warnings and
// treated defensively; they never fail the load.
func LoadCatalogFromYAML(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read biomes file: %w", err)
	}

	var config BiomesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse biomes YAML: %w", err)
	}

	var defs []Definition
	for id, raw := range config.Biomes {
		defs = append(defs, definitionFromYAML(ID(id), raw))
	}

	return NewCatalog(defs...), nil
}

// definitionFromYAML converts a YAML biome entry to a Definition,
// warning about data-authoring defects.
func definitionFromYAML(id ID, raw BiomeDefinitionYAML) Definition {
	def := Definition{
		ID:           id,
		MinSize:      raw.MinSize,
		MaxSize:      raw.MaxSize,
		TravelCost:   raw.TravelCost,
		SpreadWeight: raw.SpreadWeight,
		Subterranean: raw.Subterranean,
	}

	if def.MinSize < 1 {
		def.MinSize = 1
	}
	if def.MaxSize < def.MinSize {
		logger.Warning("biome has max_size below min_size, using min_size",
			"biome", string(id), "min_size", def.MinSize, "max_size", raw.MaxSize)
		def.MaxSize = def.MinSize
	}
	if def.SpreadWeight < 1 {
		def.SpreadWeight = 1
	}

	if len(raw.AllowedNeighbors) == 0 {
		// Treated as unconstrained; almost always an authoring mistake.
		logger.Warning("biome has no allowed_neighbors, treating as unconstrained",
			"biome", string(id))
	} else {
		def.AllowedNeighbors = make(map[ID]bool, len(raw.AllowedNeighbors))
		for _, n := range raw.AllowedNeighbors {
			def.AllowedNeighbors[ID(n)] = true
		}
	}

	if len(raw.AttributeRanges) == 0 {
		logger.Warning("biome declares no attribute_ranges", "biome", string(id))
	} else {
		def.AttributeRanges = make(map[AttributeKey]Range, len(raw.AttributeRanges))
		for key, r := range raw.AttributeRanges {
			if r.Max < r.Min {
				logger.Warning("biome attribute range has max below min, swapping",
					"biome", string(id), "attribute", key)
				r.Min, r.Max = r.Max, r.Min
			}
			def.AttributeRanges[AttributeKey(key)] = r
		}
	}

	if len(raw.SoilTypes) == 0 {
		logger.Warning("biome has no soil_types, defaulting to loam", "biome", string(id))
		def.SoilTypes = []SoilType{SoilLoam}
	} else {
		def.SoilTypes = make([]SoilType, len(raw.SoilTypes))
		for i, s := range raw.SoilTypes {
			def.SoilTypes[i] = SoilType(s)
		}
	}

	return def
}

// SeasonsConfig represents the structure of the seasons.yaml file
type SeasonsConfig struct {
	Seasons map[string]SeasonModifiers `yaml:"seasons"`
}

// LoadSeasonModifiersFromYAML loads the season modifier table from a YAML
// file. Seasons missing from the file keep their built-in defaults.
func LoadSeasonModifiersFromYAML(filename string) (map[Season]SeasonModifiers, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read seasons file: %w", err)
	}

	var config SeasonsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse seasons YAML: %w", err)
	}

	mods := DefaultSeasonModifiers()
	for name, m := range config.Seasons {
		mods[ParseSeason(name)] = m
	}
	return mods, nil
}
