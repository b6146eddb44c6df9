package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// RoundResult is what Update reports back to the driver.
type RoundResult struct {
	RoundOver bool
	Winner    core.PlayerID // NoPlayer while playing or after a draw
}

// State is the whole simulation of one match. It is not safe for
// concurrent use; the driver calls Update once per tick.
type State struct {
	rules Rules
	rng   Random

	arena      *Arena
	players    [len(core.Players)]Player
	bombs      []*Bomb // insertion order
	explosions []Explosion
	powerUps   []PowerUp

	roundOver bool
	winner    core.PlayerID
	ticks     uint64 // ticks simulated in the current round
}

// New creates a match with both players at their spawn tiles.
// A nil rng falls back to a fixed-seed source.
func New(rules Rules, rng Random) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s := &State{
		rules: rules,
		rng:   rng,
		arena: NewArena(),
	}
	s.ResetRound()
	return s
}

// Update advances the simulation by dt seconds using the intents in in,
// then clears in. Once the round is over it changes nothing and returns
// the stored result until ResetRound is called. Negative dt counts as 0.
func (s *State) Update(dt float64, in *InputBuffer) RoundResult {
	defer in.Clear()

	if s.roundOver {
		return s.Result()
	}
	if dt < 0 {
		dt = 0
	}
	s.ticks++

	for i := range s.players {
		p := &s.players[i]
		if !p.Alive {
			continue
		}
		intent := in.Get(p.ID)
		s.movePlayer(p, intent, dt)
		if intent.PlaceBomb {
			s.placeBomb(p)
		}
	}

	s.tickBombs(dt)
	s.tickExplosions(dt)
	s.collectPowerUps()
	s.decideRound()

	return s.Result()
}

// ResetRound puts both players back on their spawn tiles with base
// stats, clears bombs, explosions and power-ups and rebuilds the arena.
// Scores are kept.
func (s *State) ResetRound() {
	for i, id := range core.Players {
		score := s.players[i].Score
		spawn := spawnPoint(id)
		s.players[i] = Player{
			ID:           id,
			Position:     Vec2{X: float64(spawn.X), Y: float64(spawn.Y)},
			Speed:        s.rules.PlayerSpeed,
			BombCapacity: s.rules.BaseBombCount,
			FlameLength:  s.rules.BaseFlameLength,
			Alive:        true,
			Score:        score,
		}
	}
	s.bombs = nil
	s.explosions = nil
	s.powerUps = nil
	s.roundOver = false
	s.winner = core.NoPlayer
	s.ticks = 0
	s.arena.Reset()
}

// ResetMatch starts a fresh match: a new round with both scores at zero.
func (s *State) ResetMatch() {
	for i := range s.players {
		s.players[i].Score = 0
	}
	s.ResetRound()
}

// Result returns the current round outcome.
func (s *State) Result() RoundResult {
	return RoundResult{RoundOver: s.roundOver, Winner: s.winner}
}

// Rules returns the tuning the match was created with.
func (s *State) Rules() Rules {
	return s.rules
}

// Ticks returns the number of ticks simulated in the current round.
func (s *State) Ticks() uint64 {
	return s.ticks
}

// Player returns a copy of the given seat.
func (s *State) Player(id core.PlayerID) (Player, bool) {
	p := s.player(id)
	if p == nil {
		return Player{}, false
	}
	return *p, true
}

func (s *State) player(id core.PlayerID) *Player {
	if !id.Valid() {
		return nil
	}
	return &s.players[int(id)-1]
}

func (s *State) bombAt(t Point) *Bomb {
	for _, b := range s.bombs {
		if b.Tile == t {
			return b
		}
	}
	return nil
}

func (s *State) placeBomb(p *Player) {
	if p.ActiveBombs >= p.BombCapacity {
		return
	}
	t := p.Tile()
	if s.bombAt(t) != nil {
		return
	}
	s.bombs = append(s.bombs, &Bomb{
		Owner:       p.ID,
		Tile:        t,
		Timer:       s.rules.BombTimer,
		FlameLength: p.FlameLength,
	})
	p.ActiveBombs++
}

func (s *State) tickExplosions(dt float64) {
	kept := s.explosions[:0]
	for _, e := range s.explosions {
		e.Timer -= dt
		if e.Timer > 0 {
			kept = append(kept, e)
		}
	}
	clear(s.explosions[len(kept):])
	s.explosions = kept
}

func (s *State) decideRound() {
	var alive []core.PlayerID
	for i := range s.players {
		if s.players[i].Alive {
			alive = append(alive, s.players[i].ID)
		}
	}
	if len(alive) > 1 {
		return
	}
	s.roundOver = true
	if len(alive) == 1 {
		s.winner = alive[0]
		s.player(s.winner).Score++
	}
}
