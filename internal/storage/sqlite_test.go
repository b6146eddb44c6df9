package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveMatch(MatchRecord{MatchID: "m1", Score1: 3, Winner: core.Player1}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	m, err := store.MatchByID("m1")
	if err != nil || m == nil {
		t.Fatalf("MatchByID() = (%v, %v), expected the saved match", m, err)
	}
}

func TestSaveAndRetrieveMatches(t *testing.T) {
	store := openTestStore(t)

	matches := []MatchRecord{
		{MatchID: "a", Score1: 3, Score2: 1, Winner: core.Player1, Rounds: 4, Duration: 120},
		{MatchID: "b", Score1: 0, Score2: 3, Winner: core.Player2, Rounds: 3, Difficulty: "hard"},
		{MatchID: "c", Score1: 1, Score2: 1, Rounds: 2, EndReason: EndAbandoned},
	}
	for _, m := range matches {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch(%s) failed: %v", m.MatchID, err)
		}
	}

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(recent))
	}
	// Newest first
	if recent[0].MatchID != "c" || recent[2].MatchID != "a" {
		t.Errorf("order = %s,%s,%s, expected c,b,a", recent[0].MatchID, recent[1].MatchID, recent[2].MatchID)
	}
	if recent[2].Difficulty != "normal" || recent[2].EndReason != EndCompleted {
		t.Errorf("defaults = %q/%q, expected normal/completed", recent[2].Difficulty, recent[2].EndReason)
	}
	if recent[1].Winner != core.Player2 || recent[1].Difficulty != "hard" {
		t.Errorf("match b = %+v, unexpected", recent[1])
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	limited, err := store.RecentMatches(1)
	if err != nil {
		t.Fatalf("RecentMatches(1) failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("RecentMatches(1) returned %d rows", len(limited))
	}
}

func TestDuplicateMatchID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(MatchRecord{MatchID: "dup"}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := store.SaveMatch(MatchRecord{MatchID: "dup"}); err == nil {
		t.Error("second SaveMatch with the same ID should fail")
	}
}

func TestMatchByIDMissing(t *testing.T) {
	store := openTestStore(t)

	m, err := store.MatchByID("nope")
	if err != nil || m != nil {
		t.Errorf("MatchByID(missing) = (%v, %v), expected (nil, nil)", m, err)
	}
}

func TestMatchRounds(t *testing.T) {
	store := openTestStore(t)

	rounds := []RoundRecord{
		{MatchID: "m", Round: 2, Winner: core.NoPlayer, Ticks: 300},
		{MatchID: "m", Round: 1, Winner: core.Player2, Ticks: 151},
		{MatchID: "other", Round: 1, Winner: core.Player1, Ticks: 90},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	got, err := store.MatchRounds("m")
	if err != nil {
		t.Fatalf("MatchRounds() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(got))
	}
	if got[0].Round != 1 || got[0].Winner != core.Player2 || got[0].Ticks != 151 {
		t.Errorf("first round = %+v, unexpected", got[0])
	}
	if got[1].Winner != core.NoPlayer {
		t.Errorf("second round winner = %v, expected draw", got[1].Winner)
	}

	if _, err := store.SaveRound(RoundRecord{MatchID: "m", Round: 1}); err == nil {
		t.Error("saving the same round twice should fail")
	}
}

func TestStandings(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Standings()
	if err != nil {
		t.Fatalf("Standings() on empty store failed: %v", err)
	}
	if empty.Matches != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty standings = %+v", empty)
	}

	store.SaveMatch(MatchRecord{MatchID: "1", Winner: core.Player1})
	store.SaveMatch(MatchRecord{MatchID: "2", Winner: core.Player1})
	store.SaveMatch(MatchRecord{MatchID: "3", Winner: core.Player2})
	store.SaveMatch(MatchRecord{MatchID: "4", EndReason: EndAbandoned})
	store.SaveRound(RoundRecord{MatchID: "1", Round: 1, Winner: core.Player1})
	store.SaveRound(RoundRecord{MatchID: "1", Round: 2, Winner: core.NoPlayer})
	store.SaveRound(RoundRecord{MatchID: "3", Round: 1, Winner: core.Player2})

	st, err := store.Standings()
	if err != nil {
		t.Fatalf("Standings() failed: %v", err)
	}
	expected := Standings{
		Matches: 4, Abandoned: 1, MatchWins1: 2, MatchWins2: 1,
		RoundWins1: 1, RoundWins2: 1, DrawRounds: 1,
	}
	st.LastPlayed = expected.LastPlayed
	if st != expected {
		t.Errorf("Standings() = %+v, expected %+v", st, expected)
	}
}

func TestClearHistory(t *testing.T) {
	store := openTestStore(t)
	store.SaveMatch(MatchRecord{MatchID: "x"})
	store.SaveRound(RoundRecord{MatchID: "x", Round: 1})

	if err := store.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory() failed: %v", err)
	}

	recent, _ := store.RecentMatches(10)
	rounds, _ := store.MatchRounds("x")
	if len(recent) != 0 || len(rounds) != 0 {
		t.Errorf("history not cleared: %d matches, %d rounds", len(recent), len(rounds))
	}
}

func TestConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.SaveMatch(MatchRecord{MatchID: fmt.Sprintf("session-%d", i)}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent SaveMatch failed: %v", err)
	}
}
