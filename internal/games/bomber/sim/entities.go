package sim

import (
	"math"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// Player is one seat in the arena. Score survives round resets.
type Player struct {
	ID           core.PlayerID
	Position     Vec2 // continuous tile coordinates
	Direction    Vec2 // last non-zero movement intent
	Speed        float64
	BombCapacity int
	FlameLength  int
	ActiveBombs  int
	Alive        bool
	Score        int
}

// Tile returns the tile the player occupies: the continuous position
// rounded half away from zero on each axis.
func (p *Player) Tile() Point {
	return tileOf(p.Position)
}

// Bomb is a placed, ticking bomb. FlameLength is captured at placement.
type Bomb struct {
	Owner       core.PlayerID
	Tile        Point
	Timer       float64
	FlameLength int
}

// Explosion marks the tiles of a detonation until its timer runs out.
// It deals no damage after the moment it is created.
type Explosion struct {
	Tiles []Point
	Timer float64
}

// Covers reports whether the explosion includes tile p.
func (e *Explosion) Covers(p Point) bool {
	for _, t := range e.Tiles {
		if t == p {
			return true
		}
	}
	return false
}

// PowerUp is a pickup lying on a floor tile.
type PowerUp struct {
	Tile Point
	Type PowerUpType
}

func tileOf(v Vec2) Point {
	return Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}
