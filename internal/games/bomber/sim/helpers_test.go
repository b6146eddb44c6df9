package sim

import (
	"testing"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// fixedRandom returns the same values every call.
type fixedRandom struct {
	f float64
	n int
}

func (r fixedRandom) Float64() float64 { return r.f }
func (r fixedRandom) Intn(int) int     { return r.n }

// newTestState returns a match that never drops power-ups.
func newTestState(t *testing.T) *State {
	t.Helper()
	return New(DefaultRules(), fixedRandom{f: 1})
}

// clearBlocks turns every destructible block into floor.
func clearBlocks(s *State) {
	s.arena.ForEach(func(x, y int, tile Tile) {
		if tile.Type == Destructible {
			s.arena.SetTile(x, y, Tile{Type: Floor})
		}
	})
}

func placePlayer(s *State, id core.PlayerID, x, y float64) {
	s.player(id).Position = Vec2{X: x, Y: y}
}

func addBomb(s *State, owner core.PlayerID, x, y int, timer float64, flame int) *Bomb {
	b := &Bomb{Owner: owner, Tile: Point{X: x, Y: y}, Timer: timer, FlameLength: flame}
	s.bombs = append(s.bombs, b)
	if p := s.player(owner); p != nil {
		p.ActiveBombs++
	}
	return b
}

func mustHoldInvariant(t *testing.T, s *State) {
	t.Helper()
	if err := s.checkPowerUpInvariant(); err != nil {
		t.Fatalf("power-up invariant broken: %v", err)
	}
}
