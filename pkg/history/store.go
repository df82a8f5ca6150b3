// Package history persists completed transfers to a local SQLite database
// so past sessions can be reviewed from the transfers panel.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS transfers (
	id         TEXT PRIMARY KEY,
	peer       TEXT NOT NULL,
	file_name  TEXT NOT NULL,
	size       INTEGER NOT NULL,
	direction  TEXT NOT NULL,
	status     TEXT NOT NULL,
	error      TEXT NOT NULL DEFAULT '',
	started_at TIMESTAMP NOT NULL,
	ended_at   TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transfers_started ON transfers(started_at DESC);
`

// Record is one finished transfer.
type Record struct {
	ID        string
	Peer      string
	FileName  string
	Size      int64
	Direction string
	Status    string
	Error     string
	StartedAt time.Time
	EndedAt   time.Time
}

// Store wraps the history database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a record. Inserting the same id twice replaces the row, so
// retried writes after a crash are harmless.
func (s *Store) Add(r Record) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO transfers
			(id, peer, file_name, size, direction, status, error, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Peer, r.FileName, r.Size, r.Direction, r.Status, r.Error, r.StartedAt, r.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("record transfer: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, peer, file_name, size, direction, status, error, started_at, ended_at
		FROM transfers ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Peer, &r.FileName, &r.Size, &r.Direction,
			&r.Status, &r.Error, &r.StartedAt, &r.EndedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Prune deletes records older than cutoff and returns how many were removed.
func (s *Store) Prune(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM transfers WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune history: %w", err)
	}
	return res.RowsAffected()
}
