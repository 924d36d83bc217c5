package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ngoccc0/dreamland-engine-sub010/internal/world"
)

// EngineConfig holds engine-wide generation settings.
type EngineConfig struct {
	World   WorldConfig   `yaml:"world"`
	Data    DataConfig    `yaml:"data"`
	Profile world.Profile `yaml:"profile"`
}

// WorldConfig holds per-world generation parameters.
type WorldConfig struct {
	// Seed drives every random decision; 0 means "pick from the clock".
	Seed int64 `yaml:"seed"`

	// Radius is the exploration radius in tiles around the player.
	Radius int `yaml:"radius"`

	// TurnsPerSeason controls how fast the season cycle advances.
	TurnsPerSeason int `yaml:"turns_per_season"`
}

// DataConfig points at the authored content files. Empty paths mean the
// compiled-in defaults are used.
type DataConfig struct {
	BiomesFile  string `yaml:"biomes_file"`
	SeasonsFile string `yaml:"seasons_file"`
	SpawnsFile  string `yaml:"spawns_file"`
}

// DefaultConfig returns an EngineConfig with sensible defaults.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		World: WorldConfig{
			Seed:           0,
			Radius:         5,
			TurnsPerSeason: 90,
		},
		Profile: world.DefaultProfile(),
	}
}

// LoadConfig loads engine configuration from a YAML file.
// If the file doesn't exist, returns default config.
func LoadConfig(path string) (*EngineConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	if config.World.Radius < 1 {
		config.World.Radius = 1
	}

	return config, nil
}
