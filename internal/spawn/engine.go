package spawn

import (
	"math/rand"

	"github.com/ngoccc0/dreamland-engine-sub010/internal/world"
)

// SelectMany picks up to maxCount payloads for a cell. Candidates are
// filtered by their conditions, shuffled to avoid positional bias, then
// each surviving candidate rolls against its chance until the quota is
// met or the list is exhausted. The same payload may be accepted more
// than once only if it appears as more than one rule. A cell matching no
// rule yields an empty result; that is a normal outcome, not an error.
func SelectMany(rules []Rule, cell *world.Cell, maxCount int, rng *rand.Rand) []string {
	if maxCount <= 0 {
		return nil
	}

	matched := filterMatching(rules, cell)
	if len(matched) == 0 {
		return nil
	}

	rng.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})

	var selected []string
	for _, r := range matched {
		if rng.Float64() < r.Chance {
			selected = append(selected, r.Payload)
			if len(selected) >= maxCount {
				break
			}
		}
	}
	return selected
}

// SelectOne picks at most one payload for a cell: filter, order by
// weighted random draw, and return the first candidate whose chance roll
// succeeds. Unlike SelectMany it stops at the first success instead of
// filling a quota. The second return is false if every roll failed.
func SelectOne(rules []Rule, cell *world.Cell, rng *rand.Rand) (string, bool) {
	matched := filterMatching(rules, cell)
	if len(matched) == 0 {
		return "", false
	}

	for _, r := range weightedOrder(matched, rng) {
		if rng.Float64() < r.Chance {
			return r.Payload, true
		}
	}
	return "", false
}

// filterMatching returns the rules whose conditions hold for the cell.
func filterMatching(rules []Rule, cell *world.Cell) []Rule {
	var matched []Rule
	for _, r := range rules {
		if r.Matches(cell) {
			matched = append(matched, r)
		}
	}
	return matched
}

// weightedOrder returns a permutation of the rules where higher-weight
// rules tend to come first: a weighted draw without replacement.
func weightedOrder(rules []Rule, rng *rand.Rand) []Rule {
	pool := append([]Rule(nil), rules...)
	total := 0
	for _, r := range pool {
		total += ruleWeight(r)
	}

	ordered := make([]Rule, 0, len(pool))
	for len(pool) > 0 {
		roll := rng.Intn(total)
		for i, r := range pool {
			roll -= ruleWeight(r)
			if roll < 0 {
				ordered = append(ordered, r)
				total -= ruleWeight(r)
				pool = append(pool[:i], pool[i+1:]...)
				break
			}
		}
	}
	return ordered
}

func ruleWeight(r Rule) int {
	if r.Weight < 1 {
		return 1
	}
	return r.Weight
}
