// Package postgres implements the record store on PostgreSQL for shared
// deployments. Selected through the store.driver config.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/rotisserie/eris"

	"github.com/fincompass/fincompass-backend/internal/domain"
)

// Store implements domain.RecordReader and domain.RecordWriter on top of a
// PostgreSQL connection.
type Store struct {
	db *sql.DB
}

// New creates a new database connection.
// connectionString should be in the format:
// "host=localhost port=5432 user=postgres password=postgres dbname=fincompass sslmode=disable"
func New(connectionString string) (*Store, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: open")
	}
	if err := db.Ping(); err != nil {
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &Store{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS records (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate creates the records table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "postgres: migrate")
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get retrieves the raw record stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM records WHERE key = $1`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get %s", key)
	}
	return []byte(value), nil
}

// Put stores value under key, replacing any previous record.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO records (key, value, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(value), time.Now().UTC(),
	)
	return eris.Wrapf(err, "postgres: put %s", key)
}
