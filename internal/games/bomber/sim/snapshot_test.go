package sim

import (
	"testing"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestState(t)
	placePlayer(s, core.Player1, 10, 9)
	addBomb(s, core.Player1, 1, 2, 0, 1)
	addBomb(s, core.Player1, 2, 1, 5, 1)
	s.Update(0, nil)

	snap := s.Snapshot()
	snap.Tiles[1][3] = Tile{Type: Floor, PowerUp: FlameLength}
	snap.Players[0].Score = 9
	snap.Bombs[0].Timer = -1
	snap.Explosions[0].Tiles[0] = Point{7, 7}

	if s.arena.Tile(3, 1).Type != Destructible {
		t.Error("editing the snapshot grid changed the arena")
	}
	if p, _ := s.Player(core.Player1); p.Score != 0 {
		t.Error("editing the snapshot changed a player")
	}
	if s.bombs[0].Timer != 5 {
		t.Error("editing the snapshot changed a bomb")
	}
	if s.explosions[0].Tiles[0] != (Point{1, 2}) {
		t.Error("editing the snapshot changed an explosion")
	}
}

func TestSnapshotQueries(t *testing.T) {
	s := newTestState(t)
	placePlayer(s, core.Player1, 10, 9)
	addBomb(s, core.Player1, 1, 2, 0, 1)
	addBomb(s, core.Player2, 2, 1, 5, 1)
	s.Update(0, nil)

	snap := s.Snapshot()

	if b, ok := snap.BombAt(Point{2, 1}); !ok || b.Owner != core.Player2 {
		t.Errorf("BombAt(2,1) = (%+v, %v), expected P2's bomb", b, ok)
	}
	if !snap.Burning(Point{1, 3}) {
		t.Error("Burning(1,3) = false, expected true")
	}
	if snap.Burning(Point{5, 5}) {
		t.Error("Burning(5,5) = true, expected false")
	}
	if p, ok := snap.PlayerAt(Point{10, 9}); !ok || p.ID != core.Player1 {
		t.Errorf("PlayerAt(10,9) = (%+v, %v), expected P1", p, ok)
	}
	if got := snap.Tile(Point{-1, 0}); got.Type != Solid {
		t.Errorf("Tile outside grid = %v, expected solid", got.Type)
	}
}
