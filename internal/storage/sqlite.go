// Package storage provides SQLite-based persistence for the player
// profile and run history. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/mfarouk/metro-runner/internal/game"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is a single stored run.
type RunEntry struct {
	ID        int64
	Score     int
	Coins     int
	Character game.Character
	Duration  float64
	CreatedAt time.Time
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

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist. The profile
// table holds a single row keyed by id=1.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			best_score INTEGER NOT NULL DEFAULT 0,
			total_coins INTEGER NOT NULL DEFAULT 0,
			selected_character INTEGER NOT NULL DEFAULT 0
		);
		INSERT OR IGNORE INTO profile (id) VALUES (1);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL,
			character INTEGER NOT NULL,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
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

// LoadRecord returns the stored profile.
func (s *Store) LoadRecord() (game.Record, error) {
	var rec game.Record
	var character int
	err := s.db.QueryRow(
		"SELECT best_score, total_coins, selected_character FROM profile WHERE id = 1",
	).Scan(&rec.BestScore, &rec.TotalCoins, &character)
	if err != nil {
		return game.Record{}, fmt.Errorf("storage: cannot load profile: %w", err)
	}
	rec.SelectedCharacter = game.Character(character)
	return rec, nil
}

// SaveRun appends the run to the history, folds it into the profile and
// returns the updated profile.
func (s *Store) SaveRun(run game.RunResult) (game.Record, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return game.Record{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO runs (score, coins, character, duration_secs) VALUES (?, ?, ?, ?)",
		run.Score, run.Coins, int(run.Character), run.Duration,
	)
	if err != nil {
		return game.Record{}, fmt.Errorf("storage: cannot save run: %w", err)
	}

	_, err = tx.Exec(
		"UPDATE profile SET best_score = MAX(best_score, ?), total_coins = total_coins + ? WHERE id = 1",
		run.Score, run.Coins,
	)
	if err != nil {
		return game.Record{}, fmt.Errorf("storage: cannot update profile: %w", err)
	}

	var rec game.Record
	var character int
	err = tx.QueryRow(
		"SELECT best_score, total_coins, selected_character FROM profile WHERE id = 1",
	).Scan(&rec.BestScore, &rec.TotalCoins, &character)
	if err != nil {
		return game.Record{}, fmt.Errorf("storage: cannot reload profile: %w", err)
	}
	rec.SelectedCharacter = game.Character(character)

	if err := tx.Commit(); err != nil {
		return game.Record{}, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return rec, nil
}

// SaveSelectedCharacter stores the committed character choice.
func (s *Store) SaveSelectedCharacter(c game.Character) error {
	_, err := s.db.Exec(
		"UPDATE profile SET selected_character = ? WHERE id = 1",
		int(c),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save selected character: %w", err)
	}
	return nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		"SELECT id, score, coins, character, duration_secs, created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var character int
		if err := rows.Scan(&e.ID, &e.Score, &e.Coins, &character, &e.Duration, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		e.Character = game.Character(character)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Stats aggregates the run history: number of runs, best score and total
// coins ever collected.
func (s *Store) Stats() (runs int, best int, coins int, err error) {
	err = s.db.QueryRow(
		"SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(SUM(coins), 0) FROM runs",
	).Scan(&runs, &best, &coins)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return runs, best, coins, nil
}
