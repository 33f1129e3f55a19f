package database

import (
	"context"
	"errors"
	"sync"
)

// ErrNotInitialized is returned when no storage backend has been registered.
var ErrNotInitialized = errors.New("PostgreSQL backend not initialized: DATABASE_URL is required")

var (
	backendMu   sync.RWMutex
	runStore    func() RunStore
	initialized bool
)

// RegisterPostgresBackend registers the PostgreSQL run store constructor.
// This is called by the postgres package to avoid import cycles.
func RegisterPostgresBackend(store func() RunStore) {
	backendMu.Lock()
	defer backendMu.Unlock()
	runStore = store
	initialized = store != nil
}

// IsInitialized returns whether the PostgreSQL backend has been initialized.
func IsInitialized() bool {
	backendMu.RLock()
	defer backendMu.RUnlock()
	return initialized
}

// GetRunReader returns a RunReader from the PostgreSQL backend
func GetRunReader(ctx context.Context) (RunReader, error) {
	return getRunStore()
}

// GetRunWriter returns a RunWriter from the PostgreSQL backend
func GetRunWriter(ctx context.Context) (RunWriter, error) {
	return getRunStore()
}

func getRunStore() (RunStore, error) {
	backendMu.RLock()
	defer backendMu.RUnlock()
	if !initialized {
		return nil, ErrNotInitialized
	}
	return runStore(), nil
}
