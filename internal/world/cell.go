package world

import (
	"github.com/ngoccc0/dreamland-engine-sub010/internal/biome"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/grid"
)

// Cell is one grid tile. It is created exactly once by the attribute
// synthesizer; after that only the exploration fields (Explored,
// LastVisited) are mutated, by collaborators outside this core.
type Cell struct {
	Pos      grid.Coord
	Terrain  biome.ID
	RegionID uint32

	Explored    bool
	LastVisited int // turn number, 0 = never

	Attributes map[biome.AttributeKey]float64
	SoilType   biome.SoilType
	TravelCost float64

	Items []string // spawned item IDs, duplicates allowed
	NPCs  []string // spawned NPC IDs
	Enemy string   // single enemy slot, empty = none
}

// Attribute returns the synthesized value for a key, if present.
func (c *Cell) Attribute(key biome.AttributeKey) (float64, bool) {
	v, ok := c.Attributes[key]
	return v, ok
}

// HasEnemy reports whether the enemy slot is occupied.
func (c *Cell) HasEnemy() bool {
	return c.Enemy != ""
}

// Visit marks the cell explored at the given turn.
func (c *Cell) Visit(turn int) {
	c.Explored = true
	c.LastVisited = turn
}

// Region is one contiguous run of same-biome cells grown in a single
// grower call. The cell list is fixed at creation.
type Region struct {
	ID      uint32
	Terrain biome.ID
	Cells   []grid.Coord
}

// Size returns the number of cells in the region.
func (r *Region) Size() int {
	return len(r.Cells)
}
