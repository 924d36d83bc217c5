package gametime

import (
	"fmt"
	"sync"

	"github.com/ngoccc0/dreamland-engine-sub010/internal/biome"
)

// DefaultTurnsPerSeason is how many player turns one season lasts.
const DefaultTurnsPerSeason = 90

// TurnClock tracks the turn counter and derives the current season from
// it. Callers advance it once per player action and feed Season() into
// the world generator; the turn number backs cells' LastVisited field.
type TurnClock struct {
	turn           int
	turnsPerSeason int
	mu             sync.RWMutex
}

// NewTurnClock creates a clock starting at turn 0, in spring.
func NewTurnClock(turnsPerSeason int) *TurnClock {
	if turnsPerSeason <= 0 {
		turnsPerSeason = DefaultTurnsPerSeason
	}
	return &TurnClock{turnsPerSeason: turnsPerSeason}
}

// Turn returns the current turn number.
func (tc *TurnClock) Turn() int {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.turn
}

// Advance increments the turn counter and returns the new turn number.
func (tc *TurnClock) Advance() int {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.turn++
	return tc.turn
}

// Season returns the season for the current turn. Seasons cycle
// spring -> summer -> autumn -> winter.
func (tc *TurnClock) Season() biome.Season {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return biome.AllSeasons()[(tc.turn/tc.turnsPerSeason)%4]
}

// TurnsUntilNextSeason returns how many turns remain in the current season.
func (tc *TurnClock) TurnsUntilNextSeason() int {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.turnsPerSeason - tc.turn%tc.turnsPerSeason
}

// Describe returns a natural language description of the clock state.
func (tc *TurnClock) Describe() string {
	return fmt.Sprintf("turn %d, %s", tc.Turn(), tc.Season())
}
