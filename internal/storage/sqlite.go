// Package storage provides SQLite-based persistence for finished matches
// and rounds. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Only results are recorded; a match in progress is never
// saved.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// Match end reasons.
const (
	EndCompleted = "completed" // someone reached the rounds needed to win
	EndAbandoned = "abandoned" // players left before the match was decided
)

// Store manages the SQLite database connection for match history.
// It is safe for concurrent use by several sessions.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished or abandoned match.
type MatchRecord struct {
	ID         int64
	MatchID    string
	Difficulty string
	Score1     int
	Score2     int
	Winner     core.PlayerID // NoPlayer when abandoned
	Rounds     int
	EndReason  string
	Duration   int // seconds
	CreatedAt  time.Time
}

// RoundRecord is one decided round of a match.
type RoundRecord struct {
	ID        int64
	MatchID   string
	Round     int
	Winner    core.PlayerID // NoPlayer for a draw
	Ticks     int64
	CreatedAt time.Time
}

// Standings aggregates all recorded results.
type Standings struct {
	Matches    int
	Abandoned  int
	MatchWins1 int
	MatchWins2 int
	RoundWins1 int
	RoundWins2 int
	DrawRounds int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SQLite has a single writer; one connection keeps SSH sessions from
	// tripping over each other's locks.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			difficulty TEXT NOT NULL DEFAULT 'normal',
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			winner INTEGER NOT NULL DEFAULT 0,
			rounds INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);

		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL,
			round INTEGER NOT NULL,
			winner INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(match_id, round)
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_match_id ON rounds(match_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a decided round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO rounds (match_id, round, winner, ticks) VALUES (?, ?, ?, ?)",
		r.MatchID, r.Round, int(r.Winner), r.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveMatch records the result of a match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(m MatchRecord) (int64, error) {
	if m.EndReason == "" {
		m.EndReason = EndCompleted
	}
	if m.Difficulty == "" {
		m.Difficulty = "normal"
	}

	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, difficulty, score1, score2, winner, rounds, end_reason, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID,
		m.Difficulty,
		m.Score1,
		m.Score2,
		int(m.Winner),
		m.Rounds,
		m.EndReason,
		m.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// MatchByID retrieves a match by its match ID.
// Returns nil when no such match exists.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, match_id, difficulty, score1, score2, winner, rounds, end_reason, duration_secs, created_at
		 FROM matches
		 WHERE match_id = ?`,
		matchID,
	)

	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, difficulty, score1, score2, winner, rounds, end_reason, duration_secs, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// MatchRounds retrieves the rounds of one match in play order.
func (s *Store) MatchRounds(matchID string) ([]RoundRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, match_id, round, winner, ticks, created_at
		 FROM rounds
		 WHERE match_id = ?
		 ORDER BY round`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var winner int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.MatchID, &r.Round, &winner, &r.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Winner = core.PlayerID(winner)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Standings aggregates wins across every recorded match and round.
func (s *Store) Standings() (Standings, error) {
	var st Standings
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN end_reason = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN end_reason = ? AND winner = 1 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN end_reason = ? AND winner = 2 THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM matches`,
		EndAbandoned, EndCompleted, EndCompleted,
	).Scan(&st.Matches, &st.Abandoned, &st.MatchWins1, &st.MatchWins2, &lastPlayed)
	if err != nil {
		return Standings{}, fmt.Errorf("storage: cannot query standings: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)

	err = s.db.QueryRow(
		`SELECT COALESCE(SUM(CASE WHEN winner = 1 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 2 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 0 THEN 1 ELSE 0 END), 0)
		 FROM rounds`,
	).Scan(&st.RoundWins1, &st.RoundWins2, &st.DrawRounds)
	if err != nil {
		return Standings{}, fmt.Errorf("storage: cannot query round standings: %w", err)
	}

	return st, nil
}

// ClearHistory deletes every recorded match and round.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM rounds; DELETE FROM matches;"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(sc scanner) (MatchRecord, error) {
	var m MatchRecord
	var winner int
	var createdAt any
	err := sc.Scan(
		&m.ID,
		&m.MatchID,
		&m.Difficulty,
		&m.Score1,
		&m.Score2,
		&winner,
		&m.Rounds,
		&m.EndReason,
		&m.Duration,
		&createdAt,
	)
	if err != nil {
		return MatchRecord{}, err
	}
	m.Winner = core.PlayerID(winner)
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
