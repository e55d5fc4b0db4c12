// Package sqlite implements the record store on an embedded SQLite database.
// This is the default driver; records live in a single key-value table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/fincompass/fincompass-backend/internal/domain"
)

// Store implements domain.RecordReader and domain.RecordWriter using
// modernc.org/sqlite.
type Store struct {
	db *sql.DB
}

// New opens a SQLite database at the given path and configures WAL mode.
func New(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &Store{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS records (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

// Migrate creates the records table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "sqlite: migrate")
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get retrieves the raw record stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM records WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get %s", key)
	}
	return []byte(value), nil
}

// Put stores value under key, replacing any previous record.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC(),
	)
	return eris.Wrapf(err, "sqlite: put %s", key)
}
