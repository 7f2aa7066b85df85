// Package store persists scramble and solve records in a SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS solves (
	id         TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	scramble   TEXT NOT NULL,
	solution   TEXT NOT NULL,
	move_count INTEGER NOT NULL,
	status     TEXT NOT NULL
);
`

// Record is one scramble/solve outcome.
type Record struct {
	ID        string
	CreatedAt time.Time
	Scramble  string
	Solution  string
	MoveCount int
	Status    string
}

// Store wraps the solve history database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save inserts a record.
func (s *Store) Save(r Record) error {
	_, err := s.db.Exec(
		`INSERT INTO solves (id, created_at, scramble, solution, move_count, status) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt, r.Scramble, r.Solution, r.MoveCount, r.Status,
	)
	if err != nil {
		return fmt.Errorf("store: save %s: %w", r.ID, err)
	}
	return nil
}

// List returns the most recent records, newest first.
func (s *Store) List(limit int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, created_at, scramble, solution, move_count, status FROM solves ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Scramble, &r.Solution, &r.MoveCount, &r.Status); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
