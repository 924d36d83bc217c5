package spawn

import (
	"github.com/ngoccc0/dreamland-engine-sub010/internal/biome"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/world"
)

// Condition is a single declarative requirement a cell must satisfy for a
// rule to apply. Conditions are typed rather than stringly-keyed lookups.
type Condition interface {
	Matches(c *world.Cell) bool
}

// RangeCondition requires a numeric cell attribute to lie within bounds.
// HasMin/HasMax distinguish "no bound" from a bound of zero.
type RangeCondition struct {
	Key    biome.AttributeKey
	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Matches checks the attribute against the declared bounds. A cell that
// does not carry the attribute at all passes: an absent value constrains
// nothing.
func (rc RangeCondition) Matches(c *world.Cell) bool {
	v, ok := c.Attribute(rc.Key)
	if !ok {
		return true
	}
	if rc.HasMin && v < rc.Min {
		return false
	}
	if rc.HasMax && v > rc.Max {
		return false
	}
	return true
}

// SoilCondition requires the cell's soil type to be in the set.
type SoilCondition struct {
	Soils map[biome.SoilType]bool
}

// Matches checks soil set membership.
func (sc SoilCondition) Matches(c *world.Cell) bool {
	if len(sc.Soils) == 0 {
		return true
	}
	return sc.Soils[c.SoilType]
}

// BiomeCondition requires the cell's terrain to equal the given biome.
type BiomeCondition struct {
	Biome biome.ID
}

// Matches checks terrain equality.
func (bc BiomeCondition) Matches(c *world.Cell) bool {
	return c.Terrain == bc.Biome
}
