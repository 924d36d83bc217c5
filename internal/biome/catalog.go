package biome

import "sort"

// Catalog is an immutable, explicitly-injected table of biome definitions.
// It is built once at startup and never mutated; mod-provided biomes are
// layered in with Merge before the catalog is handed to the generator.
type Catalog struct {
	defs map[ID]Definition
	ids  []ID
}

// NewCatalog builds a catalog from the given definitions. Later duplicates
// of the same ID replace earlier ones.
func NewCatalog(defs ...Definition) *Catalog {
	c := &Catalog{defs: make(map[ID]Definition, len(defs))}
	for _, d := range defs {
		c.defs[d.ID] = d
	}
	c.reindex()
	return c
}

func (c *Catalog) reindex() {
	c.ids = c.ids[:0]
	for id := range c.defs {
		c.ids = append(c.ids, id)
	}
	sort.Slice(c.ids, func(i, j int) bool { return c.ids[i] < c.ids[j] })
}

// Get returns the definition for an ID.
func (c *Catalog) Get(id ID) (Definition, bool) {
	d, ok := c.defs[id]
	return d, ok
}

// IDs returns all biome IDs in sorted order for deterministic iteration.
func (c *Catalog) IDs() []ID {
	out := make([]ID, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len returns the number of biomes in the catalog.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Merge returns a new catalog with the given definitions layered over this
// one. The receiver is left untouched.
func (c *Catalog) Merge(mods ...Definition) *Catalog {
	merged := &Catalog{defs: make(map[ID]Definition, len(c.defs)+len(mods))}
	for id, d := range c.defs {
		merged.defs[id] = d
	}
	for _, d := range mods {
		merged.defs[d.ID] = d
	}
	merged.reindex()
	return merged
}

// DefaultCatalog returns the built-in biome table. The adjacency graph is
// symmetric: whenever A lists B, B lists A.
func DefaultCatalog() *Catalog {
	all := []ID{"cave", "desert", "forest", "grassland", "mountain", "swamp", "tundra", "wall"}

	return NewCatalog(
		Definition{
			ID:               "forest",
			MinSize:          10,
			MaxSize:          25,
			TravelCost:       2,
			SpreadWeight:     5,
			AllowedNeighbors: neighborSet("grassland", "mountain", "swamp", "wall"),
			AttributeRanges: map[AttributeKey]Range{
				AttrVegetationDensity: {70, 100},
				AttrMoisture:          {40, 80},
				AttrElevation:         {10, 40},
				AttrTemperature:       {5, 25},
				AttrDangerLevel:       {20, 50},
				AttrMagicAffinity:     {10, 40},
				AttrHumanPresence:     {5, 30},
				AttrPredatorPresence:  {30, 70},
			},
			SoilTypes: []SoilType{SoilLoam, SoilPeat, SoilClay},
		},
		Definition{
			ID:               "grassland",
			MinSize:          12,
			MaxSize:          30,
			TravelCost:       1,
			SpreadWeight:     6,
			AllowedNeighbors: neighborSet("forest", "mountain", "desert", "swamp", "wall"),
			AttributeRanges: map[AttributeKey]Range{
				AttrVegetationDensity: {30, 60},
				AttrMoisture:          {30, 60},
				AttrElevation:         {5, 25},
				AttrTemperature:       {10, 30},
				AttrDangerLevel:       {5, 25},
				AttrMagicAffinity:     {0, 20},
				AttrHumanPresence:     {20, 60},
				AttrPredatorPresence:  {10, 40},
			},
			SoilTypes: []SoilType{SoilLoam, SoilClay},
		},
		Definition{
			ID:               "mountain",
			MinSize:          8,
			MaxSize:          20,
			TravelCost:       4,
			SpreadWeight:     3,
			AllowedNeighbors: neighborSet("forest", "grassland", "tundra", "cave", "desert", "wall"),
			AttributeRanges: map[AttributeKey]Range{
				AttrVegetationDensity: {5, 30},
				AttrMoisture:          {10, 40},
				AttrElevation:         {60, 100},
				AttrTemperature:       {-15, 10},
				AttrDangerLevel:       {40, 80},
				AttrMagicAffinity:     {20, 50},
				AttrHumanPresence:     {0, 15},
				AttrPredatorPresence:  {20, 60},
			},
			SoilTypes: []SoilType{SoilRock, SoilGravel},
		},
		Definition{
			ID:               "swamp",
			MinSize:          6,
			MaxSize:          15,
			TravelCost:       3,
			SpreadWeight:     2,
			AllowedNeighbors: neighborSet("forest", "grassland", "wall"),
			AttributeRanges: map[AttributeKey]Range{
				AttrVegetationDensity: {50, 90},
				AttrMoisture:          {80, 100},
				AttrElevation:         {0, 10},
				AttrTemperature:       {10, 25},
				AttrDangerLevel:       {50, 85},
				AttrMagicAffinity:     {30, 70},
				AttrHumanPresence:     {0, 10},
				AttrPredatorPresence:  {40, 80},
			},
			SoilTypes: []SoilType{SoilPeat, SoilClay},
		},
		Definition{
			ID:               "desert",
			MinSize:          10,
			MaxSize:          22,
			TravelCost:       2,
			SpreadWeight:     2,
			AllowedNeighbors: neighborSet("grassland", "mountain", "wall"),
			AttributeRanges: map[AttributeKey]Range{
				AttrVegetationDensity: {0, 10},
				AttrMoisture:          {0, 15},
				AttrElevation:         {10, 40},
				AttrTemperature:       {25, 50},
				AttrDangerLevel:       {30, 60},
				AttrMagicAffinity:     {10, 40},
				AttrHumanPresence:     {0, 20},
				AttrPredatorPresence:  {10, 40},
			},
			SoilTypes: []SoilType{SoilSand, SoilGravel},
		},
		Definition{
			ID:               "tundra",
			MinSize:          8,
			MaxSize:          18,
			TravelCost:       3,
			SpreadWeight:     2,
			AllowedNeighbors: neighborSet("mountain", "cave", "wall"),
			AttributeRanges: map[AttributeKey]Range{
				AttrVegetationDensity: {0, 20},
				AttrMoisture:          {20, 50},
				AttrElevation:         {30, 70},
				AttrTemperature:       {-30, 0},
				AttrDangerLevel:       {30, 65},
				AttrMagicAffinity:     {10, 40},
				AttrHumanPresence:     {0, 10},
				AttrPredatorPresence:  {20, 50},
			},
			SoilTypes: []SoilType{SoilSnow, SoilRock},
		},
		Definition{
			ID:               "cave",
			MinSize:          4,
			MaxSize:          10,
			TravelCost:       3,
			SpreadWeight:     1,
			AllowedNeighbors: neighborSet("mountain", "tundra", "wall"),
			AttributeRanges: map[AttributeKey]Range{
				AttrVegetationDensity: {0, 5},
				AttrMoisture:          {40, 80},
				AttrElevation:         {20, 60},
				AttrTemperature:       {0, 12},
				AttrDangerLevel:       {60, 95},
				AttrMagicAffinity:     {40, 90},
				AttrHumanPresence:     {0, 5},
				AttrPredatorPresence:  {50, 90},
			},
			SoilTypes:    []SoilType{SoilRock},
			Subterranean: true,
		},
		Definition{
			ID:               "wall",
			MinSize:          1,
			MaxSize:          1,
			TravelCost:       100,
			SpreadWeight:     1,
			AllowedNeighbors: neighborSet(all...),
			AttributeRanges: map[AttributeKey]Range{
				AttrVegetationDensity: {0, 0},
				AttrMoisture:          {0, 20},
				AttrElevation:         {40, 90},
				AttrTemperature:       {-10, 30},
				AttrDangerLevel:       {0, 10},
				AttrMagicAffinity:     {0, 30},
				AttrHumanPresence:     {0, 0},
				AttrPredatorPresence:  {0, 0},
			},
			SoilTypes: []SoilType{SoilRock},
		},
	)
}
