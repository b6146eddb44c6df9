package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

type fakeSaver struct {
	rounds  []storage.RoundRecord
	matches []storage.MatchRecord
	err     error
}

func (f *fakeSaver) SaveRound(r storage.RoundRecord) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.rounds = append(f.rounds, r)
	return int64(len(f.rounds)), nil
}

func (f *fakeSaver) SaveMatch(m storage.MatchRecord) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.matches = append(f.matches, m)
	return int64(len(f.matches)), nil
}

func newTestModel(t *testing.T, saver ResultSaver, roundsToWin int) GameModel {
	t.Helper()
	cfg := config.DefaultBomberConfig()
	cfg.Match.RoundsToWin = roundsToWin
	m := NewGameModel(GameOptions{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42},
		Saver:   saver,
	})
	clock := time.Unix(5000, 0)
	m.now = func() time.Time { return clock }
	return m
}

func press(t *testing.T, m GameModel, name string) GameModel {
	t.Helper()
	next, _ := m.Update(keyMsg(name))
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return gm
}

func tick(t *testing.T, m GameModel, n int) GameModel {
	t.Helper()
	for range n {
		next, _ := m.Update(TickMsg{Loop: m.loop})
		m = next.(GameModel)
	}
	return m
}

// playOutRound has P1 sit on its own bomb, so P2 takes the round.
func playOutRound(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m = press(t, m, " ")
	m = tick(t, m, 200)
	if !m.State().RoundOver {
		t.Fatalf("round should be over after the bomb, state = %+v", m.State())
	}
	return m
}

func TestGameModelRecordsCompletedMatch(t *testing.T) {
	saver := &fakeSaver{}
	m := newTestModel(t, saver, 1)

	m = playOutRound(t, m)

	if len(saver.rounds) != 1 {
		t.Fatalf("saved rounds = %d, expected 1", len(saver.rounds))
	}
	r := saver.rounds[0]
	if r.Winner != core.Player2 || r.Round != 1 || r.MatchID != m.MatchID() || r.Ticks == 0 {
		t.Errorf("round record = %+v, unexpected", r)
	}

	if len(saver.matches) != 1 {
		t.Fatalf("saved matches = %d, expected 1", len(saver.matches))
	}
	rec := saver.matches[0]
	if rec.Winner != core.Player2 || rec.EndReason != storage.EndCompleted || rec.Score2 != 1 {
		t.Errorf("match record = %+v, unexpected", rec)
	}
	if rec.Difficulty != string(config.DifficultyNormal) || rec.Rounds != 1 {
		t.Errorf("match record = %+v, expected normal difficulty and 1 round", rec)
	}

	// Quitting after a completed match must not save it again.
	m = press(t, m, "q")
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if len(saver.matches) != 1 {
		t.Errorf("saved matches after quit = %d, expected 1", len(saver.matches))
	}
}

func TestGameModelAbandonedMatch(t *testing.T) {
	saver := &fakeSaver{}
	m := newTestModel(t, saver, 3)

	m = playOutRound(t, m)
	if len(saver.matches) != 0 {
		t.Fatalf("match saved before it was decided: %+v", saver.matches)
	}

	m = press(t, m, "esc")
	if !m.BackToMenu() {
		t.Error("esc should go back to the menu")
	}
	if len(saver.matches) != 1 {
		t.Fatalf("saved matches = %d, expected 1", len(saver.matches))
	}
	rec := saver.matches[0]
	if rec.EndReason != storage.EndAbandoned || rec.Winner != core.NoPlayer || rec.Score2 != 1 {
		t.Errorf("abandoned record = %+v, unexpected", rec)
	}
}

func TestGameModelQuitWithoutRoundsSavesNothing(t *testing.T) {
	saver := &fakeSaver{}
	m := newTestModel(t, saver, 3)
	m = tick(t, m, 5)

	m = press(t, m, "ctrl+c")
	if !m.IsQuitting() {
		t.Error("ctrl+c should quit")
	}
	if len(saver.matches) != 0 || len(saver.rounds) != 0 {
		t.Errorf("nothing should be saved, got %d matches %d rounds", len(saver.matches), len(saver.rounds))
	}
}

func TestGameModelRestartStartsNewMatch(t *testing.T) {
	saver := &fakeSaver{}
	m := newTestModel(t, saver, 1)
	m = playOutRound(t, m)
	first := m.MatchID()

	m = press(t, m, "r")
	m = tick(t, m, 1)

	if m.State().GameOver || m.State().RoundOver {
		t.Errorf("state after restart = %+v, expected a fresh match", m.State())
	}
	if m.MatchID() == first {
		t.Error("restart after a match should start a new match id")
	}
	if m.State().Score1 != 0 || m.State().Score2 != 0 {
		t.Errorf("scores = %d-%d, expected 0-0", m.State().Score1, m.State().Score2)
	}
}

func TestGameModelNextRoundKeepsMatch(t *testing.T) {
	m := newTestModel(t, &fakeSaver{}, 3)
	m = playOutRound(t, m)
	id := m.MatchID()

	m = press(t, m, "r")
	m = tick(t, m, 1)

	if m.State().Round != 2 || m.MatchID() != id {
		t.Errorf("round = %d, id changed = %v; expected round 2 of the same match", m.State().Round, m.MatchID() != id)
	}
}

func TestGameModelPause(t *testing.T) {
	m := newTestModel(t, nil, 3)

	m = press(t, m, "p")
	m = tick(t, m, 1)
	if !m.State().Paused {
		t.Error("p should pause the game")
	}

	m = press(t, m, "p")
	m = tick(t, m, 1)
	if m.State().Paused {
		t.Error("second p should resume the game")
	}
}

func TestGameModelSaverErrorsDoNotStopPlay(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	m := newTestModel(t, saver, 1)

	m = playOutRound(t, m)

	if !m.State().GameOver {
		t.Error("match should still finish when saving fails")
	}
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	stale := newTestModel(t, nil, 3)
	m := newTestModel(t, nil, 3)

	next, cmd := m.Update(TickMsg{Loop: stale.loop})
	m = next.(GameModel)
	if cmd != nil {
		t.Error("a tick from another model should not schedule a tick")
	}
	if got := m.game.Snapshot().Tick; got != 0 {
		t.Errorf("Tick = %d after a foreign tick, expected 0", got)
	}

	m = tick(t, m, 1)
	if got := m.game.Snapshot().Tick; got != 1 {
		t.Errorf("Tick = %d after own tick, expected 1", got)
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestModel(t, nil, 3)
	m = tick(t, m, 1)

	view := m.View()
	if !strings.Contains(view, "Bomber") {
		t.Error("view should contain the HUD title")
	}
	if !strings.Contains(view, "P1 move") {
		t.Error("view should contain the key help line")
	}
}
