package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ngoccc0/dreamland-engine-sub010/internal/biome"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/config"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/grid"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/logger"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/spawn"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/world"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/worldgen"
)

func main() {
	configFile := flag.String("config", "data/config.yaml", "Path to engine config file")
	seed := flag.Int64("seed", 0, "World seed (overrides config; 0 picks from the clock)")
	radius := flag.Int("radius", 0, "Exploration radius in tiles (overrides config)")
	seasonName := flag.String("season", "spring", "Season to generate in (spring/summer/autumn/winter)")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	showDetails := flag.Bool("details", true, "Show per-region details and spawns")
	showLegend := flag.Bool("legend", true, "Show legend")
	flag.Parse()

	logConfig, _ := logger.LoadConfig(*configFile)
	if err := logger.Initialize(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	worldSeed := cfg.World.Seed
	if *seed != 0 {
		worldSeed = *seed
	}
	if worldSeed == 0 {
		worldSeed = time.Now().UnixNano()
	}
	genRadius := cfg.World.Radius
	if *radius > 0 {
		genRadius = *radius
	}

	catalog := biome.DefaultCatalog()
	if cfg.Data.BiomesFile != "" {
		catalog, err = biome.LoadCatalogFromYAML(cfg.Data.BiomesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading biomes: %v\n", err)
			os.Exit(1)
		}
	}

	seasonMods := biome.DefaultSeasonModifiers()
	if cfg.Data.SeasonsFile != "" {
		seasonMods, err = biome.LoadSeasonModifiersFromYAML(cfg.Data.SeasonsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading seasons: %v\n", err)
			os.Exit(1)
		}
	}

	tables := spawn.DefaultTables()
	if cfg.Data.SpawnsFile != "" {
		tables, err = spawn.LoadTablesFromYAML(cfg.Data.SpawnsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading spawn tables: %v\n", err)
			os.Exit(1)
		}
	}

	season := biome.ParseSeason(*seasonName)
	gen := worldgen.NewGenerator(catalog, tables, cfg.Profile, seasonMods, worldSeed)

	w := world.NewWorld()
	regions := make(world.Regions)
	origin := grid.Coord{X: 0, Y: 0}

	counter, stats := gen.Expand(w, regions, 0, origin, genRadius, season)
	logger.Info("expansion complete",
		"seed", worldSeed, "radius", genRadius, "season", season.String(),
		"regions", stats.RegionsGrown, "cells", stats.CellsAdded,
		"degenerate", stats.Degenerate)

	var output strings.Builder
	output.WriteString(fmt.Sprintf("World Map (Seed: %d, Season: %s, Radius: %d)\n", worldSeed, season, genRadius))
	output.WriteString(fmt.Sprintf("Regions: %d  Cells: %d\n", counter, w.Len()))
	output.WriteString(strings.Repeat("=", 60) + "\n\n")

	renderMap(&output, w, origin)

	if *showDetails {
		renderDetails(&output, w, regions)
	}
	if *showLegend {
		output.WriteString(getLegend(catalog))
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output.String()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Map written to %s\n", *outputFile)
	} else {
		fmt.Print(output.String())
	}
}

func renderMap(output *strings.Builder, w *world.World, player grid.Coord) {
	coords := w.Coords()
	if len(coords) == 0 {
		output.WriteString("  (empty world)\n")
		return
	}

	minX, maxX := coords[0].X, coords[0].X
	minY, maxY := coords[0].Y, coords[0].Y
	for _, pos := range coords {
		if pos.X < minX {
			minX = pos.X
		}
		if pos.X > maxX {
			maxX = pos.X
		}
		if pos.Y < minY {
			minY = pos.Y
		}
		if pos.Y > maxY {
			maxY = pos.Y
		}
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			pos := grid.Coord{X: x, Y: y}
			if pos == player {
				output.WriteString("@")
				continue
			}
			if cell, ok := w.Get(pos); ok {
				output.WriteString(biomeSymbol(cell.Terrain))
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")
	}
	output.WriteString("\n")
}

func renderDetails(output *strings.Builder, w *world.World, regions world.Regions) {
	output.WriteString("Region Details:\n")

	ids := make([]uint32, 0, len(regions))
	for id := range regions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		region := regions[id]
		output.WriteString(fmt.Sprintf("  #%-3d %-12s %3d cells\n", region.ID, region.Terrain, region.Size()))
	}

	output.WriteString("\nSpawns:\n")
	for _, pos := range w.Coords() {
		cell, _ := w.Get(pos)
		if len(cell.Items) == 0 && len(cell.NPCs) == 0 && !cell.HasEnemy() {
			continue
		}
		var parts []string
		if len(cell.Items) > 0 {
			parts = append(parts, "items: "+strings.Join(cell.Items, ", "))
		}
		if len(cell.NPCs) > 0 {
			parts = append(parts, "npcs: "+strings.Join(cell.NPCs, ", "))
		}
		if cell.HasEnemy() {
			parts = append(parts, "enemy: "+cell.Enemy)
		}
		output.WriteString(fmt.Sprintf("  (%d,%d) %-10s %s\n", pos.X, pos.Y, cell.Terrain, strings.Join(parts, "; ")))
	}
	output.WriteString("\n")
}

// biomeSymbol maps a biome to its single-character map symbol.
func biomeSymbol(id biome.ID) string {
	switch id {
	case "forest":
		return "T"
	case "grassland":
		return "\""
	case "mountain":
		return "^"
	case "swamp":
		return "~"
	case "desert":
		return "."
	case "tundra":
		return "*"
	case "cave":
		return "o"
	case "wall":
		return "#"
	default:
		return "?"
	}
}

func getLegend(catalog *biome.Catalog) string {
	var b strings.Builder
	b.WriteString("Legend:\n")
	b.WriteString("  [@] player position\n")
	for _, id := range catalog.IDs() {
		b.WriteString(fmt.Sprintf("  [%s] %s\n", biomeSymbol(id), id))
	}
	return b.String()
}
