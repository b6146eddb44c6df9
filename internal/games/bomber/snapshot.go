package bomber

import (
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/sim"
)

// Snapshot is the complete state of a match.
type Snapshot struct {
	Tick        uint64
	Round       int
	Paused      bool
	MatchOver   bool
	MatchWinner core.PlayerID
	Sim         sim.Snapshot
}

// Snapshot returns a deep copy of the match state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.matchTicks,
		Round:       g.round,
		Paused:      g.paused,
		MatchOver:   g.matchOver,
		MatchWinner: g.matchWinner,
		Sim:         g.sim.Snapshot(),
	}
}
