package spawn

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ngoccc0/dreamland-engine-sub010/internal/biome"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/logger"
)

// Per-cell spawn quotas.
const (
	MaxItemsPerCell = 3
	MaxNPCsPerCell  = 2
)

// RangeYAML is an optional-bounded range in authored spawn conditions.
type RangeYAML struct {
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`
}

// ConditionsYAML is the authored form of a rule's condition set.
type ConditionsYAML struct {
	Attributes map[string]RangeYAML `yaml:"attributes"`
	Soil       []string             `yaml:"soil"`
	Biome      string               `yaml:"biome"`
}

// Definition represents one spawnable payload from the YAML file
type Definition struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Chance      *float64       `yaml:"chance"` // nil = 1.0 (always)
	Weight      int            `yaml:"weight"` // SelectOne ordering bias
	Conditions  ConditionsYAML `yaml:"conditions"`
}

// Tables holds the item, NPC and enemy spawn catalogs. External callers
// (mod loaders, the narrative layer's custom content) merge their entries
// into these maps before rules are built.
type Tables struct {
	Items   map[string]Definition `yaml:"items"`
	NPCs    map[string]Definition `yaml:"npcs"`
	Enemies map[string]Definition `yaml:"enemies"`
}

// LoadTablesFromYAML loads spawn tables from a YAML file
func LoadTablesFromYAML(filename string) (*Tables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawn tables file: %w", err)
	}

	var tables Tables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse spawn tables YAML: %w", err)
	}

	return &tables, nil
}

// ItemRules builds the item rule list in deterministic (sorted-ID) order.
func (t *Tables) ItemRules() []Rule {
	return buildRules(t.Items)
}

// NPCRules builds the NPC rule list in deterministic order.
func (t *Tables) NPCRules() []Rule {
	return buildRules(t.NPCs)
}

// EnemyRules builds the enemy rule list in deterministic order.
func (t *Tables) EnemyRules() []Rule {
	return buildRules(t.Enemies)
}

func buildRules(defs map[string]Definition) []Rule {
	ids := make([]string, 0, len(defs))
	for id := range defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rules := make([]Rule, 0, len(ids))
	for _, id := range ids {
		rules = append(rules, ruleFromDefinition(id, defs[id]))
	}
	return rules
}

// ruleFromDefinition converts an authored definition into a Rule.
func ruleFromDefinition(id string, def Definition) Rule {
	r := Rule{
		Payload: id,
		Chance:  1.0,
		Weight:  def.Weight,
	}
	if def.Chance != nil {
		r.Chance = *def.Chance
		if r.Chance < 0 || r.Chance > 1 {
			logger.Warning("spawn chance outside [0,1], clamping",
				"payload", id, "chance", r.Chance)
			if r.Chance < 0 {
				r.Chance = 0
			} else {
				r.Chance = 1
			}
		}
	}

	for _, key := range sortedKeys(def.Conditions.Attributes) {
		ry := def.Conditions.Attributes[key]
		rc := RangeCondition{Key: biome.AttributeKey(key)}
		if ry.Min != nil {
			rc.Min = *ry.Min
			rc.HasMin = true
		}
		if ry.Max != nil {
			rc.Max = *ry.Max
			rc.HasMax = true
		}
		r.Conditions = append(r.Conditions, rc)
	}

	if len(def.Conditions.Soil) > 0 {
		soils := make(map[biome.SoilType]bool, len(def.Conditions.Soil))
		for _, s := range def.Conditions.Soil {
			soils[biome.SoilType(s)] = true
		}
		r.Conditions = append(r.Conditions, SoilCondition{Soils: soils})
	}

	if def.Conditions.Biome != "" {
		r.Conditions = append(r.Conditions, BiomeCondition{Biome: biome.ID(def.Conditions.Biome)})
	}

	return r
}

func sortedKeys(m map[string]RangeYAML) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func f(v float64) *float64 { return &v }

// DefaultTables returns the built-in spawn catalogs.
func DefaultTables() *Tables {
	return &Tables{
		Items: map[string]Definition{
			"healing_herb": {
				Name:        "healing herb",
				Description: "A sprig of wortleaf, bitter but restorative.",
				Chance:      f(0.35),
				Conditions: ConditionsYAML{
					Attributes: map[string]RangeYAML{
						"vegetation_density": {Min: f(50)},
						"moisture":           {Min: f(30)},
					},
				},
			},
			"cave_mushroom": {
				Name:        "cave mushroom",
				Description: "A pale, faintly glowing fungus.",
				Chance:      f(0.5),
				Conditions: ConditionsYAML{
					Biome: "cave",
				},
			},
			"flint_stone": {
				Name:        "flint stone",
				Description: "A sharp-edged stone, good for striking sparks.",
				Chance:      f(0.25),
				Conditions: ConditionsYAML{
					Soil: []string{"rock", "gravel"},
				},
			},
			"wild_berries": {
				Name:        "wild berries",
				Description: "A handful of tart red berries.",
				Chance:      f(0.3),
				Conditions: ConditionsYAML{
					Attributes: map[string]RangeYAML{
						"vegetation_density": {Min: f(40)},
						"temperature":        {Min: f(5)},
					},
				},
			},
			"sun_crystal": {
				Name:        "sun crystal",
				Description: "A shard that holds the day's heat.",
				Chance:      f(0.1),
				Conditions: ConditionsYAML{
					Attributes: map[string]RangeYAML{
						"magic_affinity": {Min: f(40)},
						"sun_exposure":   {Min: f(60)},
					},
				},
			},
			"bog_iron": {
				Name:        "bog iron",
				Description: "A rusty lump pulled from standing water.",
				Chance:      f(0.2),
				Conditions: ConditionsYAML{
					Soil: []string{"peat"},
					Attributes: map[string]RangeYAML{
						"moisture": {Min: f(70)},
					},
				},
			},
		},
		NPCs: map[string]Definition{
			"wandering_trader": {
				Name:        "wandering trader",
				Description: "A pack-laden trader following old footpaths.",
				Chance:      f(0.15),
				Conditions: ConditionsYAML{
					Attributes: map[string]RangeYAML{
						"human_presence": {Min: f(25)},
						"danger_level":   {Max: f(40)},
					},
				},
			},
			"hermit": {
				Name:        "hermit",
				Description: "A reclusive figure who prefers the quiet places.",
				Chance:      f(0.08),
				Conditions: ConditionsYAML{
					Attributes: map[string]RangeYAML{
						"human_presence": {Max: f(15)},
					},
				},
			},
			"hunter": {
				Name:        "hunter",
				Description: "A leather-clad hunter reading tracks in the soil.",
				Chance:      f(0.12),
				Conditions: ConditionsYAML{
					Attributes: map[string]RangeYAML{
						"predator_presence":  {Min: f(30)},
						"vegetation_density": {Min: f(30)},
					},
				},
			},
		},
		Enemies: map[string]Definition{
			"wolf": {
				Name:        "wolf",
				Description: "A lean grey wolf, ribs showing.",
				Chance:      f(0.25),
				Weight:      3,
				Conditions: ConditionsYAML{
					Attributes: map[string]RangeYAML{
						"predator_presence": {Min: f(40)},
						"temperature":       {Max: f(25)},
					},
				},
			},
			"bandit": {
				Name:        "bandit",
				Description: "A ragged figure watching the path.",
				Chance:      f(0.2),
				Weight:      2,
				Conditions: ConditionsYAML{
					Attributes: map[string]RangeYAML{
						"human_presence": {Min: f(20)},
						"danger_level":   {Min: f(25)},
					},
				},
			},
			"swamp_horror": {
				Name:        "swamp horror",
				Description: "Something vast shifting beneath the mire.",
				Chance:      f(0.15),
				Weight:      1,
				Conditions: ConditionsYAML{
					Biome: "swamp",
					Attributes: map[string]RangeYAML{
						"danger_level": {Min: f(60)},
					},
				},
			},
			"cave_lurker": {
				Name:        "cave lurker",
				Description: "Eyes reflecting what little light there is.",
				Chance:      f(0.3),
				Weight:      2,
				Conditions: ConditionsYAML{
					Biome: "cave",
				},
			},
			"frost_stalker": {
				Name:        "frost stalker",
				Description: "A white shape against white snow.",
				Chance:      f(0.2),
				Weight:      1,
				Conditions: ConditionsYAML{
					Attributes: map[string]RangeYAML{
						"temperature": {Max: f(-5)},
					},
					Soil: []string{"snow", "rock"},
				},
			},
		},
	}
}
