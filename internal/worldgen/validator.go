package worldgen

import (
	"github.com/ngoccc0/dreamland-engine-sub010/internal/biome"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/grid"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/world"
)

// Validator answers which biomes may legally be placed at a position,
// given the neighbors already present in the world.
type Validator struct {
	catalog *biome.Catalog
}

// NewValidator creates a validator over the given catalog.
func NewValidator(catalog *biome.Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// Candidates returns the biome IDs legally placeable at pos, in sorted
// order. With no placed neighbors the frontier is unconstrained and the
// full catalog is returned. Otherwise a biome T is a candidate iff for
// every placed neighbor N both directions hold: N allows T and T allows
// N. One direction's table alone is never trusted.
func (v *Validator) Candidates(pos grid.Coord, w *world.World) []biome.ID {
	var neighbors []biome.Definition
	for _, n := range pos.Neighbors() {
		cell, ok := w.Get(n)
		if !ok {
			continue
		}
		def, ok := v.catalog.Get(cell.Terrain)
		if !ok {
			// Terrain no longer in the catalog (e.g. removed mod biome);
			// it cannot constrain placement.
			continue
		}
		neighbors = append(neighbors, def)
	}

	if len(neighbors) == 0 {
		return v.catalog.IDs()
	}

	var candidates []biome.ID
	for _, id := range v.catalog.IDs() {
		def, _ := v.catalog.Get(id)
		legal := true
		for _, n := range neighbors {
			if !n.Allows(id) || !def.Allows(n.ID) {
				legal = false
				break
			}
		}
		if legal {
			candidates = append(candidates, id)
		}
	}

	if len(candidates) == 0 {
		// Safety valve, not a bug mask: two neighbors with disjoint
		// allowed-neighbor sets can over-constrain a position. Generation
		// must still produce some tile there, so the constraint is
		// deliberately relaxed to the full catalog.
		return v.catalog.IDs()
	}

	return candidates
}

// Placeable reports whether def may occupy pos given the neighbors
// already in the world. Both directions of every neighbor pair must
// hold, same as Candidates. Used during region growth so a region
// never expands flush against a biome that disallows it.
func (v *Validator) Placeable(pos grid.Coord, def biome.Definition, w *world.World) bool {
	for _, n := range pos.Neighbors() {
		cell, ok := w.Get(n)
		if !ok {
			continue
		}
		ndef, ok := v.catalog.Get(cell.Terrain)
		if !ok {
			continue
		}
		if !ndef.Allows(def.ID) || !def.Allows(ndef.ID) {
			return false
		}
	}
	return true
}
