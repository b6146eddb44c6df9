package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickSeconds returns the fixed timestep length in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score1    int      // Rounds won by Player 1
	Score2    int      // Rounds won by Player 2
	Round     int      // 1-based round number within the match
	RoundOver bool     // Current round has a result, waiting for restart
	GameOver  bool     // The match has a winner
	Paused    bool     // Whether the game is paused
	Winner    PlayerID // Winner of the last finished round (NoPlayer for a draw)
}

// EventKind classifies events emitted by a simulation step.
type EventKind int

const (
	EventRoundOver EventKind = iota + 1
	EventMatchOver
)

// String returns a short name for logs.
func (k EventKind) String() string {
	switch k {
	case EventRoundOver:
		return "round_over"
	case EventMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

// Event is something that happened during a tick that the platform may
// want to persist or log.
type Event struct {
	Kind   EventKind
	Winner PlayerID // NoPlayer for a draw
	Round  int
	Score1 int
	Score2 int
	Ticks  uint64 // Ticks played in the round (or the whole match for EventMatchOver)
}

// StepResult is returned by Game.StepMulti() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
