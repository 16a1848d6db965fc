package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"activity-sampler/internal/eventstore"
	"activity-sampler/internal/eventstore/postgres"
	"activity-sampler/internal/eventstore/sqlite"
)

// CreateEventStore creates the event store selected by the configuration
func CreateEventStore(ctx context.Context, config *Config) (eventstore.EventStore, error) {
	switch config.Store.Driver {
	case DriverMemory:
		return eventstore.NewMemoryStore(), nil
	case DriverCSV:
		path := config.GetStorePath()
		if err := ensureDir(path, config.Store.DirPermissions); err != nil {
			return nil, err
		}
		return eventstore.NewCSVStore(path), nil
	case DriverSQLite:
		path := config.GetStorePath()
		if err := ensureDir(path, config.Store.DirPermissions); err != nil {
			return nil, err
		}
		store, err := sqlite.New(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		return store, nil
	case DriverPostgres:
		store, err := postgres.Open(ctx, config.Store.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres store: %w", err)
		}
		return store, nil
	default:
		return nil, configurationError(&ConfigError{Field: "store.driver", Message: "unsupported driver " + config.Store.Driver})
	}
}

// CreateTestEventStore creates an in-memory event store for testing
func CreateTestEventStore() eventstore.EventStore {
	return eventstore.NewMemoryStore()
}

func ensureDir(path string, perm uint32) error {
	if perm == 0 {
		perm = 0755
	}
	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(perm)); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}
