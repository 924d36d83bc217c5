package spawn

import "github.com/ngoccc0/dreamland-engine-sub010/internal/world"

// Rule couples a payload with the conditions under which it may spawn.
// Chance is the per-roll acceptance probability in [0,1]; 1 always
// accepts, 0 never does. Weight biases the order candidates are tried in
// by SelectOne (1 = neutral).
type Rule struct {
	Payload    string
	Chance     float64
	Weight     int
	Conditions []Condition
}

// Matches reports whether every condition of the rule holds for the cell.
// A rule with no conditions matches everywhere.
func (r Rule) Matches(c *world.Cell) bool {
	for _, cond := range r.Conditions {
		if !cond.Matches(c) {
			return false
		}
	}
	return true
}
