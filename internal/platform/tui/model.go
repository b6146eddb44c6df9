package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-bomber/internal/applog"
	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

// ResultSaver records decided rounds and finished matches.
type ResultSaver interface {
	SaveRound(r storage.RoundRecord) (int64, error)
	SaveMatch(m storage.MatchRecord) (int64, error)
}

var _ ResultSaver = (*storage.Store)(nil)

// SaverFor returns store as a ResultSaver, or nil when the store is not open.
func SaverFor(store *storage.Store) ResultSaver {
	if store == nil {
		return nil
	}
	return store
}

// GameOptions configures a match model.
type GameOptions struct {
	Config     config.BomberConfig
	Difficulty config.DifficultyPreset
	Runtime    core.RuntimeConfig
	Saver      ResultSaver
	Logger     *log.Logger
}

// GameModel is the Bubble Tea model for one bomber match.
type GameModel struct {
	loop       int64
	game       *bomber.Game
	screen     *core.Screen
	keys       KeyMap
	held       *HeldKeys
	help       help.Model
	system     core.InputFrame
	saver      ResultSaver
	logger     *log.Logger
	config     core.RuntimeConfig
	now        func() time.Time
	preset     config.DifficultyPreset
	match      *matchRecord
	state      core.GameState
	quitting   bool
	backToMenu bool
}

// matchRecord tracks what has been persisted for the current match.
type matchRecord struct {
	id      string
	started time.Time
	rounds  int
	saved   bool
}

// NewGameModel creates a model with a freshly reset match.
func NewGameModel(opts GameOptions) GameModel {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = applog.Discard()
	}
	preset := opts.Difficulty
	if preset == "" {
		preset = config.DifficultyNormal
	}

	game := bomber.New(opts.Config)
	game.Reset(cfg)

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		loop:   nextLoop(),
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-1)),
		keys:   NewKeyMap(opts.Config.Controls),
		held:   NewHeldKeys(time.Duration(opts.Config.Controls.HoldMS) * time.Millisecond),
		help:   h,
		system: core.NewInputFrame(),
		saver:  opts.Saver,
		logger: logger,
		config: cfg,
		now:    time.Now,
		preset: preset,
		state:  game.State(),
	}
	m.startMatch()
	return m
}

func (m *GameModel) startMatch() {
	m.match = &matchRecord{id: uuid.NewString(), started: m.now()}
	m.logger.Debug("match started", "match", m.match.id, "difficulty", m.preset)
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(0, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.abandon()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.abandon()
		m.backToMenu = true
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		m.system.Set(core.ActionPause)
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		m.system.Set(core.ActionRestart)
		return m, nil
	}

	if id, action := m.keys.Lookup(msg); id != core.NoPlayer {
		m.held.Press(id, action, m.now())
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	frame := m.held.Frame(m.now())
	frame.System = m.system.Clone()
	m.system.Clear()

	wasOver := m.state.GameOver
	result := m.game.StepMulti(frame)
	m.state = result.State

	if wasOver && !m.state.GameOver {
		m.held.Reset()
		m.startMatch()
	}
	for _, ev := range result.Events {
		m.record(ev)
	}
	return m, tickCmd(m.config.TickRate, m.loop)
}

// record logs a game event and persists it when a saver is configured.
func (m *GameModel) record(ev core.Event) {
	switch ev.Kind {
	case core.EventRoundOver:
		m.match.rounds++
		m.logger.Info("round over",
			"match", m.match.id,
			"round", ev.Round,
			"winner", ev.Winner,
			"score", scoreLine(ev.Score1, ev.Score2),
			"ticks", ev.Ticks,
		)
		if m.saver == nil {
			return
		}
		if _, err := m.saver.SaveRound(storage.RoundRecord{
			MatchID: m.match.id,
			Round:   ev.Round,
			Winner:  ev.Winner,
			Ticks:   int64(ev.Ticks),
		}); err != nil {
			m.logger.Error("could not save round", "match", m.match.id, "error", err)
		}
	case core.EventMatchOver:
		m.logger.Info("match over",
			"match", m.match.id,
			"winner", ev.Winner,
			"score", scoreLine(ev.Score1, ev.Score2),
		)
		m.saveMatch(ev.Score1, ev.Score2, ev.Winner, storage.EndCompleted)
	}
}

// abandon records an unfinished match once at least one round was decided.
func (m *GameModel) abandon() {
	if m.match == nil || m.match.saved || m.match.rounds == 0 {
		return
	}
	m.logger.Info("match abandoned", "match", m.match.id, "rounds", m.match.rounds)
	m.saveMatch(m.state.Score1, m.state.Score2, core.NoPlayer, storage.EndAbandoned)
}

func (m *GameModel) saveMatch(s1, s2 int, winner core.PlayerID, reason string) {
	m.match.saved = true
	if m.saver == nil {
		return
	}
	rec := storage.MatchRecord{
		MatchID:    m.match.id,
		Difficulty: string(m.preset),
		Score1:     s1,
		Score2:     s2,
		Winner:     winner,
		Rounds:     m.match.rounds,
		EndReason:  reason,
		Duration:   int(m.now().Sub(m.match.started).Seconds()),
	}
	if _, err := m.saver.SaveMatch(rec); err != nil {
		m.logger.Error("could not save match", "match", m.match.id, "error", err)
	}
}

// View renders the arena and the key help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// MatchID returns the identifier of the current match.
func (m GameModel) MatchID() string {
	return m.match.id
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single match in the terminal until the user quits or goes back.
func Run(opts GameOptions) error {
	model := standaloneModel{NewGameModel(opts)}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// standaloneModel ends the program when the game asks for the menu.
type standaloneModel struct {
	GameModel
}

func (s standaloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		s.GameModel = gm
	}
	if s.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}

func scoreLine(s1, s2 int) string {
	return fmt.Sprintf("%d-%d", s1, s2)
}
