// Package history persists completed listens to a SQLite database so a run's
// play log survives the process.
package history

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/rs/zerolog/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS plays (
	id        TEXT PRIMARY KEY,
	username  TEXT NOT NULL,
	item      TEXT NOT NULL,
	kind      TEXT NOT NULL,
	played_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_plays_username ON plays(username);
`

// Play is one persisted listen event.
type Play struct {
	ID       string `db:"id"`
	Username string `db:"username"`
	Item     string `db:"item"`
	Kind     string `db:"kind"`
	PlayedAt int    `db:"played_at"`
}

// Store appends listen events to a SQLite database.
type Store struct {
	db *sqlx.DB
}

// Open creates or opens the play-history database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	log.Debug().Str("path", path).Msg("Opened play history database")
	return &Store{db: db}, nil
}

// RecordPlay appends one listen event.
func (s *Store) RecordPlay(username, item, kind string, playedAt int) error {
	_, err := s.db.NamedExec(
		`INSERT INTO plays (id, username, item, kind, played_at)
		 VALUES (:id, :username, :item, :kind, :played_at)`,
		Play{
			ID:       uuid.New().String(),
			Username: username,
			Item:     item,
			Kind:     kind,
			PlayedAt: playedAt,
		})
	if err != nil {
		return fmt.Errorf("failed to record play: %w", err)
	}
	return nil
}

// PlaysForUser returns a user's listen events in played-at order.
func (s *Store) PlaysForUser(username string) ([]Play, error) {
	var plays []Play
	err := s.db.Select(&plays,
		`SELECT id, username, item, kind, played_at FROM plays
		 WHERE username = ? ORDER BY played_at, id`, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query plays: %w", err)
	}
	return plays, nil
}

// CountsForUser aggregates a user's listen events per item name.
func (s *Store) CountsForUser(username string) (map[string]int, error) {
	rows, err := s.db.Queryx(
		`SELECT item, COUNT(*) AS n FROM plays WHERE username = ? GROUP BY item`, username)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate plays: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var item string
		var n int
		if err := rows.Scan(&item, &n); err != nil {
			return nil, fmt.Errorf("failed to scan play count: %w", err)
		}
		counts[item] = n
	}
	return counts, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
