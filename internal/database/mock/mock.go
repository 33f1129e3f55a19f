// Package mock provides mock implementations of database interfaces for testing.
package mock

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kozaktomas/mrzname/internal/database"
	"github.com/kozaktomas/mrzname/internal/extract"
)

// MockRunStore is an in-memory implementation of database.RunStore
type MockRunStore struct {
	mu      sync.RWMutex
	runs    map[uuid.UUID]database.StoredRun
	records map[uuid.UUID][]extract.PersonRecord
	missing map[uuid.UUID][]extract.MissingLatinName

	// Error injection
	SaveError   error
	DeleteError error
	ListError   error
	GetError    error
}

// NewMockRunStore creates a new mock run store
func NewMockRunStore() *MockRunStore {
	return &MockRunStore{
		runs:    make(map[uuid.UUID]database.StoredRun),
		records: make(map[uuid.UUID][]extract.PersonRecord),
		missing: make(map[uuid.UUID][]extract.MissingLatinName),
	}
}

// SaveRun stores a run in memory
func (m *MockRunStore) SaveRun(ctx context.Context, run database.StoredRun, records []extract.PersonRecord, missing []extract.MissingLatinName) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	run.Records = len(records)
	run.MissingLatin = len(missing)
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	m.runs[run.ID] = run
	m.records[run.ID] = slices.Clone(records)
	m.missing[run.ID] = slices.Clone(missing)
	return nil
}

// DeleteRun removes a run
func (m *MockRunStore) DeleteRun(ctx context.Context, id uuid.UUID) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.runs, id)
	delete(m.records, id)
	delete(m.missing, id)
	return nil
}

// ListRuns returns stored runs, newest first
func (m *MockRunStore) ListRuns(ctx context.Context, limit int) ([]database.StoredRun, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	runs := make([]database.StoredRun, 0, len(m.runs))
	for _, r := range m.runs {
		runs = append(runs, r)
	}
	slices.SortFunc(runs, func(a, b database.StoredRun) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// GetRun retrieves a run by ID
func (m *MockRunStore) GetRun(ctx context.Context, id uuid.UUID) (*database.StoredRun, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	run, ok := m.runs[id]
	if !ok {
		return nil, nil
	}
	return &run, nil
}

// GetRecords returns the records of a run
func (m *MockRunStore) GetRecords(ctx context.Context, id uuid.UUID) ([]extract.PersonRecord, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.records[id]), nil
}

// GetMissingLatin returns the diagnostics of a run
func (m *MockRunStore) GetMissingLatin(ctx context.Context, id uuid.UUID) ([]extract.MissingLatinName, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.missing[id]), nil
}

// Ensure MockRunStore implements database.RunStore
var _ database.RunStore = (*MockRunStore)(nil)
