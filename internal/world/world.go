package world

import (
	"sort"

	"github.com/ngoccc0/dreamland-engine-sub010/internal/grid"
)

// World maps coordinates to cells. From the generator's perspective it is
// append-only: Add refuses to overwrite an existing coordinate.
type World struct {
	cells map[grid.Coord]*Cell
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{cells: make(map[grid.Coord]*Cell)}
}

// Has reports whether a cell exists at the coordinate.
func (w *World) Has(pos grid.Coord) bool {
	_, ok := w.cells[pos]
	return ok
}

// Get returns the cell at the coordinate, if any.
func (w *World) Get(pos grid.Coord) (*Cell, bool) {
	c, ok := w.cells[pos]
	return c, ok
}

// Add inserts a cell at its coordinate. It returns false (and leaves the
// world untouched) if the coordinate is already occupied.
func (w *World) Add(c *Cell) bool {
	if _, exists := w.cells[c.Pos]; exists {
		return false
	}
	w.cells[c.Pos] = c
	return true
}

// Len returns the number of cells in the world.
func (w *World) Len() int {
	return len(w.cells)
}

// Coords returns every occupied coordinate in row-major order (Y, then X)
// for deterministic iteration.
func (w *World) Coords() []grid.Coord {
	out := make([]grid.Coord, 0, len(w.cells))
	for pos := range w.cells {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Regions maps region IDs to regions.
type Regions map[uint32]*Region

// Add inserts a region, refusing to overwrite an existing ID.
func (r Regions) Add(region *Region) bool {
	if _, exists := r[region.ID]; exists {
		return false
	}
	r[region.ID] = region
	return true
}
