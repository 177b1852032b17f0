// internal/history/store.go
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Run kinds.
const (
	KindAnalyze = "analyze"
	KindCompare = "compare"
)

// Run is one recorded request with its full JSON response payload.
type Run struct {
	ID        int64           `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Kind      string          `json:"kind"`
	Header    string          `json:"header"`
	Length    int             `json:"length"`
	Payload   json.RawMessage `json:"payload"`
}

// Store persists analysis/comparison runs to a single SQLite table.
type Store struct {
	db *sql.DB
}

// Open creates (if needed) and opens the run-history database.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		kind TEXT NOT NULL,
		header TEXT NOT NULL,
		length INTEGER NOT NULL,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}
	return &Store{db: db}, nil
}

// Record stores one run. payload is serialized as JSON.
func (s *Store) Record(ctx context.Context, kind, header string, length int, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (created_at, kind, header, length, payload) VALUES (?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano), kind, header, length, raw)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, kind, header, length, payload FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	runs := make([]Run, 0, limit)
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &created, &r.Kind, &r.Header, &r.Length, &r.Payload); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }
