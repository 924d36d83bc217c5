package biome

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoadCatalogFromYAML(t *testing.T) {
	path := writeTempYAML(t, `
biomes:
  meadow:
    min_size: 5
    max_size: 12
    travel_cost: 1
    spread_weight: 4
    allowed_neighbors: [meadow, thicket]
    attribute_ranges:
      vegetation_density: {min: 20, max: 50}
      temperature: {min: 5, max: 20}
    soil_types: [loam]
  thicket:
    min_size: 3
    max_size: 6
    travel_cost: 2
    spread_weight: 2
    allowed_neighbors: [meadow]
    attribute_ranges:
      vegetation_density: {min: 60, max: 90}
    soil_types: [loam, peat]
`)

	catalog, err := LoadCatalogFromYAML(path)
	if err != nil {
		t.Fatalf("LoadCatalogFromYAML() failed: %v", err)
	}

	if catalog.Len() != 2 {
		t.Fatalf("catalog has %d biomes, want 2", catalog.Len())
	}

	meadow, ok := catalog.Get("meadow")
	if !ok {
		t.Fatal("meadow missing from catalog")
	}
	if meadow.MinSize != 5 || meadow.MaxSize != 12 {
		t.Errorf("meadow bounds = [%d,%d], want [5,12]", meadow.MinSize, meadow.MaxSize)
	}
	if !meadow.Allows("thicket") {
		t.Error("meadow should allow thicket")
	}
	if meadow.Allows("swamp") {
		t.Error("meadow should not allow swamp")
	}
	veg, ok := meadow.RangeFor(AttrVegetationDensity)
	if !ok || veg.Min != 20 || veg.Max != 50 {
		t.Errorf("meadow vegetation range = %v (ok=%v), want [20,50]", veg, ok)
	}
}

func TestLoadCatalogMissingNeighborsUnconstrained(t *testing.T) {
	path := writeTempYAML(t, `
biomes:
  anywhere:
    min_size: 2
    max_size: 4
    attribute_ranges:
      danger_level: {min: 0, max: 10}
    soil_types: [sand]
`)

	catalog, err := LoadCatalogFromYAML(path)
	if err != nil {
		t.Fatalf("LoadCatalogFromYAML() failed: %v", err)
	}

	def, _ := catalog.Get("anywhere")
	if !def.Allows("forest") || !def.Allows("cave") {
		t.Error("biome without allowed_neighbors should be unconstrained")
	}
}

func TestLoadCatalogRepairsDefectiveData(t *testing.T) {
	path := writeTempYAML(t, `
biomes:
  broken:
    min_size: 8
    max_size: 3
    allowed_neighbors: [broken]
    attribute_ranges:
      moisture: {min: 90, max: 10}
`)

	catalog, err := LoadCatalogFromYAML(path)
	if err != nil {
		t.Fatalf("LoadCatalogFromYAML() failed: %v", err)
	}

	def, _ := catalog.Get("broken")
	if def.MaxSize < def.MinSize {
		t.Errorf("max_size %d still below min_size %d", def.MaxSize, def.MinSize)
	}
	moisture, _ := def.RangeFor(AttrMoisture)
	if moisture.Min > moisture.Max {
		t.Errorf("inverted range not repaired: [%v,%v]", moisture.Min, moisture.Max)
	}
	if len(def.SoilTypes) == 0 {
		t.Error("missing soil_types should default, not stay empty")
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalogFromYAML("does/not/exist.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadSeasonModifiersFromYAML(t *testing.T) {
	path := writeTempYAML(t, `
seasons:
  winter:
    temperature_mod: -20
    moisture_mod: 0.8
    sun_exposure_mod: 0.5
    wind_mod: 40
    event_chance: 0.2
`)

	mods, err := LoadSeasonModifiersFromYAML(path)
	if err != nil {
		t.Fatalf("LoadSeasonModifiersFromYAML() failed: %v", err)
	}

	if mods[Winter].TemperatureMod != -20 {
		t.Errorf("winter temperature_mod = %v, want -20", mods[Winter].TemperatureMod)
	}
	// Seasons missing from the file keep defaults.
	if mods[Summer] != DefaultSeasonModifiers()[Summer] {
		t.Error("summer should keep default modifiers")
	}
}
