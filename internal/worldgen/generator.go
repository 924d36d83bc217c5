package worldgen

import (
	"math/rand"

	"github.com/ngoccc0/dreamland-engine-sub010/internal/biome"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/grid"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/logger"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/spawn"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/world"
)

// Generator orchestrates world expansion: per unfilled frontier position
// it validates biome candidates, grows a region, synthesizes every cell
// and runs the spawn rules. All randomness flows from the single seeded
// RNG stream, so expansion is reproducible from the world seed.
//
// A Generator is not safe for concurrent use: region growth interleaves
// occupancy reads and writes, and two regions growing at once could race
// on the same frontier cell. Callers run Expand from one goroutine; an
// in-flight call only ever adds to the world, so it can safely be left
// to finish while the player keeps moving.
type Generator struct {
	catalog   *biome.Catalog
	validator *Validator
	grower    *RegionGrower
	synth     *Synthesizer

	itemRules  []spawn.Rule
	npcRules   []spawn.Rule
	enemyRules []spawn.Rule

	rng *rand.Rand
}

// Stats summarizes one expansion pass for callers' logs.
type Stats struct {
	RegionsGrown int
	Degenerate   int // regions that ran out of frontier below MinSize
	CellsAdded   int
	ByBiome      map[biome.ID]int // regions grown per biome
}

// NewGenerator wires a generator from its injected dependencies. The
// seed drives every random decision made during expansion.
func NewGenerator(catalog *biome.Catalog, tables *spawn.Tables, profile world.Profile, seasonMods map[biome.Season]biome.SeasonModifiers, seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	validator := NewValidator(catalog)
	return &Generator{
		catalog:    catalog,
		validator:  validator,
		grower:     NewRegionGrower(validator, rng),
		synth:      NewSynthesizer(profile, seasonMods, seed, rng),
		itemRules:  tables.ItemRules(),
		npcRules:   tables.NPCRules(),
		enemyRules: tables.EnemyRules(),
		rng:        rng,
	}
}

// Expand fills every position within radius of playerPos that has no
// world entry yet. Frontier positions are visited in row-major order so
// a fixed seed reproduces the same world. Positions claimed by a region
// grown earlier in the same call are skipped. Returns the updated region
// counter and pass statistics.
func (g *Generator) Expand(w *world.World, regions world.Regions, regionCounter uint32, playerPos grid.Coord, radius int, season biome.Season) (uint32, Stats) {
	stats := Stats{ByBiome: make(map[biome.ID]int)}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			pos := grid.Coord{X: playerPos.X + dx, Y: playerPos.Y + dy}
			if w.Has(pos) {
				continue
			}

			// Over-constrained positions fall back to the full catalog
			// inside Candidates; see the note there.
			candidates := g.validator.Candidates(pos, w)
			terrain := g.pickWeighted(candidates)
			def, ok := g.catalog.Get(terrain)
			if !ok {
				logger.Error("candidate biome missing from catalog", "biome", string(terrain))
				continue
			}

			cells := g.grower.Grow(pos, def, w)
			regionCounter++
			region := &world.Region{ID: regionCounter, Terrain: terrain, Cells: cells}
			regions.Add(region)

			stats.RegionsGrown++
			stats.ByBiome[terrain]++
			if len(cells) < def.MinSize {
				stats.Degenerate++
				logger.Debug("accepted degenerate region",
					"region", regionCounter, "biome", string(terrain),
					"size", len(cells), "min_size", def.MinSize)
			}

			for _, c := range cells {
				cell := g.synth.Synthesize(c, def, regionCounter, season)
				g.populate(cell)
				if !w.Add(cell) {
					// The grower only claims unoccupied cells; reaching
					// this would mean the occupancy check is broken.
					logger.Error("refused to overwrite existing cell", "pos", c.Key())
					continue
				}
				stats.CellsAdded++
			}
		}
	}

	return regionCounter, stats
}

// populate runs the spawn rules against a freshly synthesized cell.
func (g *Generator) populate(cell *world.Cell) {
	cell.Items = spawn.SelectMany(g.itemRules, cell, spawn.MaxItemsPerCell, g.rng)
	cell.NPCs = spawn.SelectMany(g.npcRules, cell, spawn.MaxNPCsPerCell, g.rng)
	if enemy, ok := spawn.SelectOne(g.enemyRules, cell, g.rng); ok {
		cell.Enemy = enemy
	}
}

// pickWeighted selects a candidate biome, biased by SpreadWeight.
func (g *Generator) pickWeighted(candidates []biome.ID) biome.ID {
	if len(candidates) == 0 {
		return ""
	}
	total := 0
	for _, id := range candidates {
		total += g.spreadWeight(id)
	}

	roll := g.rng.Intn(total)
	for _, id := range candidates {
		roll -= g.spreadWeight(id)
		if roll < 0 {
			return id
		}
	}
	return candidates[len(candidates)-1]
}

func (g *Generator) spreadWeight(id biome.ID) int {
	def, ok := g.catalog.Get(id)
	if !ok || def.SpreadWeight < 1 {
		return 1
	}
	return def.SpreadWeight
}
