package spawn

import (
	"math/rand"
	"testing"

	"github.com/ngoccc0/dreamland-engine-sub010/internal/biome"
	"github.com/ngoccc0/dreamland-engine-sub010/internal/world"
)

func testCell() *world.Cell {
	return &world.Cell{
		Terrain:  "forest",
		SoilType: biome.SoilLoam,
		Attributes: map[biome.AttributeKey]float64{
			biome.AttrVegetationDensity: 80,
			biome.AttrMoisture:          60,
			biome.AttrDangerLevel:       30,
		},
	}
}

func TestRangeConditionMatches(t *testing.T) {
	cell := testCell()

	tests := []struct {
		name string
		cond RangeCondition
		want bool
	}{
		{"within bounds", RangeCondition{Key: biome.AttrMoisture, Min: 40, Max: 80, HasMin: true, HasMax: true}, true},
		{"below min", RangeCondition{Key: biome.AttrMoisture, Min: 70, HasMin: true}, false},
		{"above max", RangeCondition{Key: biome.AttrMoisture, Max: 50, HasMax: true}, false},
		{"min only satisfied", RangeCondition{Key: biome.AttrVegetationDensity, Min: 70, HasMin: true}, true},
		{"absent attribute passes", RangeCondition{Key: biome.AttrMagicAffinity, Min: 90, HasMin: true}, true},
		{"no bounds", RangeCondition{Key: biome.AttrMoisture}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cond.Matches(cell); got != tc.want {
				t.Errorf("Matches() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSoilConditionMatches(t *testing.T) {
	cell := testCell()

	in := SoilCondition{Soils: map[biome.SoilType]bool{biome.SoilLoam: true, biome.SoilPeat: true}}
	if !in.Matches(cell) {
		t.Error("loam cell should match a loam/peat soil set")
	}

	out := SoilCondition{Soils: map[biome.SoilType]bool{biome.SoilRock: true}}
	if out.Matches(cell) {
		t.Error("loam cell should not match a rock-only soil set")
	}

	empty := SoilCondition{}
	if !empty.Matches(cell) {
		t.Error("empty soil set should constrain nothing")
	}
}

func TestBiomeConditionMatches(t *testing.T) {
	cell := testCell()

	if !(BiomeCondition{Biome: "forest"}).Matches(cell) {
		t.Error("forest cell should match forest condition")
	}
	if (BiomeCondition{Biome: "desert"}).Matches(cell) {
		t.Error("forest cell should not match desert condition")
	}
}

func TestRuleMatchesAllConditions(t *testing.T) {
	cell := testCell()

	rule := Rule{
		Payload: "herb",
		Chance:  1.0,
		Conditions: []Condition{
			RangeCondition{Key: biome.AttrVegetationDensity, Min: 50, HasMin: true},
			BiomeCondition{Biome: "forest"},
		},
	}
	if !rule.Matches(cell) {
		t.Error("rule with all conditions satisfied should match")
	}

	rule.Conditions = append(rule.Conditions, RangeCondition{Key: biome.AttrDangerLevel, Min: 90, HasMin: true})
	if rule.Matches(cell) {
		t.Error("rule should fail when any condition fails")
	}
}

func TestSelectManyChanceOneAlwaysSelected(t *testing.T) {
	rules := []Rule{{Payload: "certain", Chance: 1.0}}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got := SelectMany(rules, testCell(), 3, rng)
		if len(got) != 1 || got[0] != "certain" {
			t.Fatalf("seed %d: SelectMany = %v, want [certain]", seed, got)
		}
	}
}

func TestSelectManyChanceZeroNeverSelected(t *testing.T) {
	rules := []Rule{{Payload: "never", Chance: 0.0}}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		if got := SelectMany(rules, testCell(), 3, rng); len(got) != 0 {
			t.Fatalf("seed %d: SelectMany = %v, want empty", seed, got)
		}
	}
}

func TestSelectManyRespectsQuota(t *testing.T) {
	var rules []Rule
	for _, p := range []string{"a", "b", "c", "d", "e", "f"} {
		rules = append(rules, Rule{Payload: p, Chance: 1.0})
	}

	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got := SelectMany(rules, testCell(), 2, rng)
		if len(got) > 2 {
			t.Fatalf("seed %d: SelectMany returned %d payloads, quota is 2", seed, len(got))
		}
	}

	rng := rand.New(rand.NewSource(1))
	if got := SelectMany(rules, testCell(), 0, rng); got != nil {
		t.Errorf("SelectMany with quota 0 = %v, want nil", got)
	}
}

func TestSelectManyFiltersUnmatched(t *testing.T) {
	rules := []Rule{
		{Payload: "desert_only", Chance: 1.0, Conditions: []Condition{BiomeCondition{Biome: "desert"}}},
		{Payload: "anywhere", Chance: 1.0},
	}

	rng := rand.New(rand.NewSource(7))
	got := SelectMany(rules, testCell(), 5, rng)
	if len(got) != 1 || got[0] != "anywhere" {
		t.Errorf("SelectMany = %v, want [anywhere]", got)
	}
}

func TestSelectOneChanceOne(t *testing.T) {
	rules := []Rule{{Payload: "certain", Chance: 1.0}}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		got, ok := SelectOne(rules, testCell(), rng)
		if !ok || got != "certain" {
			t.Fatalf("seed %d: SelectOne = %q, %v; want certain, true", seed, got, ok)
		}
	}
}

func TestSelectOneChanceZero(t *testing.T) {
	rules := []Rule{{Payload: "never", Chance: 0.0}}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		if _, ok := SelectOne(rules, testCell(), rng); ok {
			t.Fatalf("seed %d: SelectOne succeeded for chance 0", seed)
		}
	}
}

func TestSelectOneNoCandidates(t *testing.T) {
	rules := []Rule{
		{Payload: "desert_only", Chance: 1.0, Conditions: []Condition{BiomeCondition{Biome: "desert"}}},
	}

	rng := rand.New(rand.NewSource(3))
	if got, ok := SelectOne(rules, testCell(), rng); ok {
		t.Errorf("SelectOne = %q, want no result", got)
	}
}

func TestSelectOneReturnsExactlyOne(t *testing.T) {
	rules := []Rule{
		{Payload: "a", Chance: 1.0},
		{Payload: "b", Chance: 1.0},
		{Payload: "c", Chance: 1.0},
	}

	rng := rand.New(rand.NewSource(11))
	got, ok := SelectOne(rules, testCell(), rng)
	if !ok {
		t.Fatal("SelectOne should succeed with chance-1 candidates")
	}
	if got != "a" && got != "b" && got != "c" {
		t.Errorf("SelectOne returned unknown payload %q", got)
	}
}

func TestWeightedOrderIsPermutation(t *testing.T) {
	rules := []Rule{
		{Payload: "common", Weight: 10},
		{Payload: "uncommon", Weight: 3},
		{Payload: "rare", Weight: 1},
	}

	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		ordered := weightedOrder(rules, rng)
		if len(ordered) != len(rules) {
			t.Fatalf("seed %d: ordered has %d rules, want %d", seed, len(ordered), len(rules))
		}
		seen := make(map[string]bool)
		for _, r := range ordered {
			if seen[r.Payload] {
				t.Fatalf("seed %d: payload %q appears twice", seed, r.Payload)
			}
			seen[r.Payload] = true
		}
	}
}

func TestWeightedOrderBiasesHighWeights(t *testing.T) {
	rules := []Rule{
		{Payload: "heavy", Weight: 50},
		{Payload: "light", Weight: 1},
	}

	rng := rand.New(rand.NewSource(99))
	heavyFirst := 0
	const trials = 200
	for i := 0; i < trials; i++ {
		if weightedOrder(rules, rng)[0].Payload == "heavy" {
			heavyFirst++
		}
	}

	// Expected share is 50/51; anything above 80% shows the bias works.
	if heavyFirst < trials*8/10 {
		t.Errorf("heavy rule first in only %d/%d trials", heavyFirst, trials)
	}
}

func TestSelectionDeterministicWithFixedSeed(t *testing.T) {
	rules := []Rule{
		{Payload: "a", Chance: 0.5},
		{Payload: "b", Chance: 0.5},
		{Payload: "c", Chance: 0.5},
	}

	run := func() []string {
		rng := rand.New(rand.NewSource(42))
		return SelectMany(rules, testCell(), 3, rng)
	}

	first := run()
	second := run()
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("runs differ at %d: %q vs %q", i, first[i], second[i])
		}
	}
}
