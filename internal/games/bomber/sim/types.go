// Package sim is the deterministic match simulation for the bomber arena.
// It owns the tile grid and every entity collection, advances them one
// timestep at a time and exposes read-only snapshots. It has no terminal,
// logging or persistence dependencies.
package sim

import "github.com/vovakirdan/tui-bomber/internal/core"

// Arena dimensions. Both must be odd so the even/even pillar pattern
// leaves a walkable lattice between the borders.
const (
	Width  = 13
	Height = 11
)

// TileType is the terrain of a single arena cell.
type TileType int

const (
	Floor TileType = iota
	Solid
	Destructible
)

func (t TileType) String() string {
	switch t {
	case Floor:
		return "floor"
	case Solid:
		return "solid"
	case Destructible:
		return "destructible"
	default:
		return "unknown"
	}
}

// PowerUpType is the kind of pickup dropped by a destroyed block.
type PowerUpType int

const (
	NoPowerUp PowerUpType = iota
	BombCapacity
	FlameLength
)

func (p PowerUpType) String() string {
	switch p {
	case BombCapacity:
		return "bomb"
	case FlameLength:
		return "flame"
	default:
		return "none"
	}
}

// powerUpKinds is the uniform pool a drop is chosen from.
var powerUpKinds = [...]PowerUpType{BombCapacity, FlameLength}

// Point is an integer tile coordinate.
type Point struct {
	X, Y int
}

// Add returns p shifted by d scaled by n.
func (p Point) Add(d Point, n int) Point {
	return Point{X: p.X + d.X*n, Y: p.Y + d.Y*n}
}

// directions is the fixed blast order: right, left, down, up.
var directions = [...]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Vec2 is a continuous position or direction in tile units.
type Vec2 struct {
	X, Y float64
}

// Rules are the tunable constants of a match.
type Rules struct {
	PlayerSpeed        float64 // tiles per second
	BombTimer          float64 // seconds from placement to detonation
	ExplosionDuration  float64 // seconds an explosion marker stays visible
	BaseFlameLength    int
	BaseBombCount      int
	PowerUpSpawnChance float64 // probability a destroyed block drops a pickup

	// WalkOffBombs lets a player leave the tile of a bomb they are standing
	// on. Every other bomb tile stays closed. The strict rule treats every
	// bomb as a wall, trapping a player who drops one until it goes off;
	// DefaultRules turns this on to relax that, and the classic
	// difficulty turns it back off.
	WalkOffBombs bool
}

// DefaultRules returns the classic tuning, except that WalkOffBombs is on.
func DefaultRules() Rules {
	return Rules{
		PlayerSpeed:        4.0,
		BombTimer:          2.5,
		ExplosionDuration:  0.5,
		BaseFlameLength:    2,
		BaseBombCount:      1,
		PowerUpSpawnChance: 0.3,
		WalkOffBombs:       true,
	}
}

// Random is the source of randomness for power-up drops.
// *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// spawnPoint returns the fixed start tile of a seat.
func spawnPoint(id core.PlayerID) Point {
	if id == core.Player2 {
		return Point{X: Width - 2, Y: Height - 2}
	}
	return Point{X: 1, Y: 1}
}
