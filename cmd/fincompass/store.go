package main

import (
	"context"
	"fmt"

	"github.com/fincompass/fincompass-backend/internal/adapter/repository/postgres"
	"github.com/fincompass/fincompass-backend/internal/adapter/repository/sqlite"
	"github.com/fincompass/fincompass-backend/internal/config"
	"github.com/fincompass/fincompass-backend/internal/domain"
	"github.com/fincompass/fincompass-backend/internal/policy"
)

// recordStore is what the commands need from a store backend.
type recordStore interface {
	domain.RecordReader
	domain.RecordWriter
	Migrate(ctx context.Context) error
	Close() error
}

// openStore builds the configured store backend and runs its migration.
func openStore(ctx context.Context, cfg config.StoreConfig) (recordStore, error) {
	var (
		store recordStore
		err   error
	)
	switch cfg.Driver {
	case "sqlite", "":
		store, err = sqlite.New(cfg.DatabaseURL)
	case "postgres":
		store, err = postgres.New(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// loadPolicy resolves the active policy tables.
func loadPolicy() (policy.Policy, error) {
	return policy.Load(cfg.Policy.File)
}
