// Package sqlite implements the local preference store: a small key-value
// table written on every mutation, so the widget keeps its state without a
// server round trip.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/DaisukeKawabataYumeji/world-time-clock-app/internal/domain"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS preferences (
	scope      TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

// Store persists preference blobs per scope in a local SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the stored preferences for scope, or nil when the scope has
// never been saved.
func (s *Store) Load(ctx context.Context, scope domain.Scope) (*domain.Preferences, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM preferences WHERE scope = ?`, string(scope),
	).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	var prefs domain.Preferences
	if err := json.Unmarshal([]byte(payload), &prefs); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	return &prefs, nil
}

// Save upserts the preferences blob for scope. Last write wins.
func (s *Store) Save(ctx context.Context, scope domain.Scope, prefs domain.Preferences) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO preferences (scope, payload, updated_at) VALUES (?, ?, datetime('now'))`,
		string(scope), string(payload),
	)
	if err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
