// Package history records finished solver sessions in a SQLite
// database so simulation runs can be inspected later.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/wordlent/wordlent/solver"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    secret     TEXT    NOT NULL,
    status     TEXT    NOT NULL,
    turns      INTEGER NOT NULL,
    guesses    TEXT    NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

// Record is one stored session.
type Record struct {
	ID        int64
	Secret    string
	Status    string
	Turns     int
	Guesses   []string
	CreatedAt time.Time
}

// Store wraps the sessions database. Safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) the sessions database at dsn.
func Open(dsn string) (*Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", dsn, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Insert stores one finished session.
func (s *Store) Insert(ctx context.Context, secret string, result solver.Result) error {
	guesses := make([]string, 0, len(result.Steps))
	for _, step := range result.Steps {
		guesses = append(guesses, step.Guess)
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO sessions (secret, status, turns, guesses)
        VALUES (?, ?, ?, ?)`,
		secret, result.Status.String(), result.Turns, strings.Join(guesses, " "),
	)
	if err != nil {
		return fmt.Errorf("history: insert session: %w", err)
	}
	return nil
}

// Recent returns up to limit sessions, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, secret, status, turns, guesses, created_at
        FROM sessions
        ORDER BY id DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query sessions: %w", err)
	}
	defer rows.Close()

	out := make([]Record, 0, limit)
	for rows.Next() {
		var r Record
		var guesses string
		if err := rows.Scan(&r.ID, &r.Secret, &r.Status, &r.Turns, &guesses, &r.CreatedAt); err != nil {
			return nil, err
		}
		if guesses != "" {
			r.Guesses = strings.Split(guesses, " ")
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
