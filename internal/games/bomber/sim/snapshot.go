package sim

import (
	"slices"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// Snapshot is a deep copy of the simulation for renderers and tests.
// Changing it never affects the State it came from.
type Snapshot struct {
	Tiles      [Height][Width]Tile
	Players    []Player // ordered by seat
	Bombs      []Bomb   // placement order
	Explosions []Explosion
	PowerUps   []PowerUp
	RoundOver  bool
	Winner     core.PlayerID
	Ticks      uint64
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Tiles:     s.arena.tiles,
		Players:   slices.Clone(s.players[:]),
		Bombs:     make([]Bomb, 0, len(s.bombs)),
		PowerUps:  slices.Clone(s.powerUps),
		RoundOver: s.roundOver,
		Winner:    s.winner,
		Ticks:     s.ticks,
	}
	for _, b := range s.bombs {
		snap.Bombs = append(snap.Bombs, *b)
	}
	snap.Explosions = make([]Explosion, 0, len(s.explosions))
	for _, e := range s.explosions {
		snap.Explosions = append(snap.Explosions, Explosion{Tiles: slices.Clone(e.Tiles), Timer: e.Timer})
	}
	return snap
}

// Tile returns the tile at p, or a solid tile outside the grid.
func (sn *Snapshot) Tile(p Point) Tile {
	if p.X < 0 || p.X >= Width || p.Y < 0 || p.Y >= Height {
		return Tile{Type: Solid}
	}
	return sn.Tiles[p.Y][p.X]
}

// BombAt returns the bomb on tile p, if any.
func (sn *Snapshot) BombAt(p Point) (Bomb, bool) {
	for _, b := range sn.Bombs {
		if b.Tile == p {
			return b, true
		}
	}
	return Bomb{}, false
}

// Burning reports whether any active explosion covers tile p.
func (sn *Snapshot) Burning(p Point) bool {
	for i := range sn.Explosions {
		if sn.Explosions[i].Covers(p) {
			return true
		}
	}
	return false
}

// PlayerAt returns the living player standing on tile p, if any.
// Player 1 wins ties.
func (sn *Snapshot) PlayerAt(p Point) (Player, bool) {
	for _, pl := range sn.Players {
		if pl.Alive && pl.Tile() == p {
			return pl, true
		}
	}
	return Player{}, false
}

// Player returns the snapshot of one seat.
func (sn *Snapshot) Player(id core.PlayerID) (Player, bool) {
	for _, pl := range sn.Players {
		if pl.ID == id {
			return pl, true
		}
	}
	return Player{}, false
}
