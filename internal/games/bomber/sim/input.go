package sim

import "github.com/vovakirdan/tui-bomber/internal/core"

// diagonalScale keeps diagonal speed equal to axis speed.
const diagonalScale = 0.7071

// Intent is one player's wish for a single tick.
type Intent struct {
	MoveX, MoveY float64 // each in [-1, 1]
	PlaceBomb    bool
}

// NewIntent builds an intent from raw axis values. Components are
// clamped to [-1, 1] and scaled by 0.7071 when both are non-zero.
func NewIntent(dx, dy float64, bomb bool) Intent {
	dx = core.ClampF(dx, -1, 1)
	dy = core.ClampF(dy, -1, 1)
	if dx != 0 && dy != 0 {
		dx *= diagonalScale
		dy *= diagonalScale
	}
	return Intent{MoveX: dx, MoveY: dy, PlaceBomb: bomb}
}

// Moving reports whether the intent has a movement component.
func (i Intent) Moving() bool {
	return i.MoveX != 0 || i.MoveY != 0
}

// InputBuffer holds the intents gathered for the current tick.
// The simulation clears it after every Update.
type InputBuffer struct {
	intents map[core.PlayerID]Intent
}

// NewInputBuffer returns an empty buffer.
func NewInputBuffer() *InputBuffer {
	return &InputBuffer{intents: make(map[core.PlayerID]Intent)}
}

// Set records the intent for a player, replacing any earlier one.
func (b *InputBuffer) Set(id core.PlayerID, in Intent) {
	if b.intents == nil {
		b.intents = make(map[core.PlayerID]Intent)
	}
	b.intents[id] = in
}

// Get returns the intent for a player. Missing players have zero intent.
func (b *InputBuffer) Get(id core.PlayerID) Intent {
	if b == nil {
		return Intent{}
	}
	return b.intents[id]
}

// Clear drops all recorded intents.
func (b *InputBuffer) Clear() {
	if b == nil {
		return
	}
	clear(b.intents)
}
