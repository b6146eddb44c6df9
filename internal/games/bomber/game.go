// Package bomber adapts the arena simulation to the terminal platform:
// it turns input frames into intents, runs a match of several rounds and
// draws the arena into a core.Screen.
package bomber

import (
	"math/rand"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/sim"
)

// Game is a two-seat bomber match.
type Game struct {
	cfg     config.BomberConfig
	runtime core.RuntimeConfig
	dt      float64

	sim   *sim.State
	input *sim.InputBuffer

	round       int
	matchTicks  uint64
	matchOver   bool
	matchWinner core.PlayerID
	paused      bool
}

// New creates a game using cfg. Call Reset before stepping it.
func New(cfg config.BomberConfig) *Game {
	return &Game{
		cfg:   cfg,
		input: sim.NewInputBuffer(),
	}
}

// RulesFromConfig converts the YAML rules section to simulation rules.
func RulesFromConfig(r config.RulesConfig) sim.Rules {
	return sim.Rules{
		PlayerSpeed:        r.PlayerSpeed,
		BombTimer:          r.BombTimer,
		ExplosionDuration:  r.ExplosionDuration,
		BaseFlameLength:    r.BaseFlameLength,
		BaseBombCount:      r.BaseBombCount,
		PowerUpSpawnChance: r.PowerUpSpawnChance,
		WalkOffBombs:       r.WalkOffBombs,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "bomber"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Bomber"
}

// Reset starts a new match. The seed drives every power-up roll.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.dt = cfg.TickSeconds()
	g.sim = sim.New(RulesFromConfig(g.cfg.Rules), rand.New(rand.NewSource(cfg.Seed)))
	g.input.Clear()
	g.round = 1
	g.matchTicks = 0
	g.matchOver = false
	g.matchWinner = core.NoPlayer
	g.paused = false
}

// StepMulti advances the match by one tick.
func (g *Game) StepMulti(in core.MultiInputFrame) core.StepResult {
	if in.System.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if g.matchOver || g.sim.Result().RoundOver {
		return core.StepResult{State: g.State()}
	}

	if in.System.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, id := range core.Players {
		frame := in.Player(id)
		dx, dy := frame.Axis()
		g.input.Set(id, sim.NewIntent(dx, dy, frame.Has(core.ActionBomb)))
	}

	res := g.sim.Update(g.dt, g.input)
	g.matchTicks++

	var events []core.Event
	if res.RoundOver {
		events = g.finishRound(res)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// restart moves on once the round is decided: the next round, or a new
// match when someone has already won. It does nothing mid-round.
func (g *Game) restart() {
	switch {
	case g.matchOver:
		g.sim.ResetMatch()
		g.round = 1
		g.matchTicks = 0
		g.matchOver = false
		g.matchWinner = core.NoPlayer
	case g.sim.Result().RoundOver:
		g.sim.ResetRound()
		g.round++
	default:
		return
	}
	g.paused = false
}

func (g *Game) finishRound(res sim.RoundResult) []core.Event {
	s1, s2 := g.scores()
	events := []core.Event{{
		Kind:   core.EventRoundOver,
		Winner: res.Winner,
		Round:  g.round,
		Score1: s1,
		Score2: s2,
		Ticks:  g.sim.Ticks(),
	}}

	if res.Winner == core.NoPlayer {
		return events
	}
	if p, _ := g.sim.Player(res.Winner); p.Score >= g.cfg.Match.RoundsToWin {
		g.matchOver = true
		g.matchWinner = res.Winner
		events = append(events, core.Event{
			Kind:   core.EventMatchOver,
			Winner: res.Winner,
			Round:  g.round,
			Score1: s1,
			Score2: s2,
			Ticks:  g.matchTicks,
		})
	}
	return events
}

func (g *Game) scores() (int, int) {
	p1, _ := g.sim.Player(core.Player1)
	p2, _ := g.sim.Player(core.Player2)
	return p1.Score, p2.Score
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s1, s2 := g.scores()
	res := g.sim.Result()
	return core.GameState{
		Score1:    s1,
		Score2:    s2,
		Round:     g.round,
		RoundOver: res.RoundOver,
		GameOver:  g.matchOver,
		Paused:    g.paused,
		Winner:    res.Winner,
	}
}
