// Package sqlite implements store.Store on SQLite, for gazetteers too
// large to keep in flat files.
package sqlite

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/nerkit/nerkit/pkg/nerkit/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// dictionary schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS dict_entries (
	label TEXT NOT NULL,
	phrase TEXT NOT NULL,
	PRIMARY KEY(label, phrase)
);

CREATE INDEX IF NOT EXISTS idx_dict_entries_label ON dict_entries(label);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// PutEntries adds phrases to a dictionary, ignoring duplicates.
func (s *sqliteStore) PutEntries(ctx context.Context, label string, phrases []string) error {
	if label == "" || len(phrases) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO dict_entries (label, phrase) VALUES (?, ?)
ON CONFLICT(label, phrase) DO NOTHING`

	for _, p := range phrases {
		if p == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt, label, p); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Entries returns all phrases of a dictionary, sorted.
func (s *sqliteStore) Entries(ctx context.Context, label string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT phrase FROM dict_entries WHERE label = ? ORDER BY phrase`, label)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Labels returns all dictionary labels, sorted.
func (s *sqliteStore) Labels(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT label FROM dict_entries ORDER BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		out = append(out, label)
	}
	return out, rows.Err()
}
