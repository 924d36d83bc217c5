package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.World.Radius != 5 {
		t.Errorf("default radius = %d, want 5", cfg.World.Radius)
	}
	if cfg.World.TurnsPerSeason != 90 {
		t.Errorf("default turns_per_season = %d, want 90", cfg.World.TurnsPerSeason)
	}
	if cfg.Profile.SunIntensity == 0 {
		t.Error("default profile has zero sun intensity")
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if cfg.World.Radius != DefaultConfig().World.Radius {
		t.Errorf("radius = %d, want default", cfg.World.Radius)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `
world:
  seed: 12345
  radius: 8
  turns_per_season: 30
data:
  biomes_file: custom/biomes.yaml
profile:
  temp_bias: -5
  sun_intensity: 40
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.World.Seed != 12345 {
		t.Errorf("seed = %d, want 12345", cfg.World.Seed)
	}
	if cfg.World.Radius != 8 {
		t.Errorf("radius = %d, want 8", cfg.World.Radius)
	}
	if cfg.World.TurnsPerSeason != 30 {
		t.Errorf("turns_per_season = %d, want 30", cfg.World.TurnsPerSeason)
	}
	if cfg.Data.BiomesFile != "custom/biomes.yaml" {
		t.Errorf("biomes_file = %q", cfg.Data.BiomesFile)
	}
	if cfg.Profile.TempBias != -5 {
		t.Errorf("temp_bias = %v, want -5", cfg.Profile.TempBias)
	}
	if cfg.Profile.SunIntensity != 40 {
		t.Errorf("sun_intensity = %v, want 40", cfg.Profile.SunIntensity)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := writeTempConfig(t, "world:\n  seed: 7\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.World.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.World.Seed)
	}
	if cfg.World.Radius != 5 {
		t.Errorf("radius = %d, want default 5", cfg.World.Radius)
	}
}

func TestLoadConfigMalformedFallsBackToDefaults(t *testing.T) {
	path := writeTempConfig(t, "world: [not a mapping")

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("malformed YAML should surface an error")
	}
	if cfg == nil || cfg.World.Radius != 5 {
		t.Error("malformed YAML should still yield usable defaults")
	}
}

func TestLoadConfigClampsRadius(t *testing.T) {
	path := writeTempConfig(t, "world:\n  radius: -3\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.World.Radius != 1 {
		t.Errorf("radius = %d, want floor of 1", cfg.World.Radius)
	}
}
