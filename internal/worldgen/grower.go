package worldgen

import (
	"math/rand"

	"github.com/ngoccc0/dreamland-engine-sub010/internal/biome"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/grid"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/world"
)

// RegionGrower grows one contiguous region of a single biome from a seed
// cell. It is iterative by construction: an explicit FIFO queue bounds
// the work, never the call stack.
type RegionGrower struct {
	validator *Validator
	rng       *rand.Rand
}

// NewRegionGrower creates a grower drawing from the given RNG stream.
// The validator keeps growth from pressing against biomes that disallow
// the one being grown.
func NewRegionGrower(validator *Validator, rng *rand.Rand) *RegionGrower {
	return &RegionGrower{validator: validator, rng: rng}
}

// Grow performs a randomized BFS from seed, claiming unoccupied cells
// until a target size drawn uniformly from [MinSize, MaxSize] is reached
// or the frontier exhausts. The seed must not already exist in the world.
// If the frontier runs out before MinSize the partial region is returned
// as-is; retrying near densely packed areas could starve generation.
func (g *RegionGrower) Grow(seed grid.Coord, def biome.Definition, w *world.World) []grid.Coord {
	target := def.MinSize
	if def.MaxSize > def.MinSize {
		target += g.rng.Intn(def.MaxSize - def.MinSize + 1)
	}

	visited := map[grid.Coord]bool{seed: true}
	queue := []grid.Coord{seed}
	cells := []grid.Coord{seed}

	for len(queue) > 0 && len(cells) < target {
		current := queue[0]
		queue = queue[1:]

		dirs := grid.AllDirections()
		g.rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		for _, dir := range dirs {
			if len(cells) >= target {
				break
			}
			next := current.Step(dir)
			if visited[next] || w.Has(next) {
				continue
			}
			if !g.validator.Placeable(next, def, w) {
				// A foreign region already borders this cell and one side
				// of the pair forbids the other; the frontier stops here.
				visited[next] = true
				continue
			}
			visited[next] = true
			cells = append(cells, next)
			queue = append(queue, next)
		}
	}

	return cells
}
