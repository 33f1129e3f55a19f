package database

import (
	"context"

	"github.com/google/uuid"

	"github.com/kozaktomas/mrzname/internal/extract"
)

// RunReader provides read-only access to persisted extraction runs
type RunReader interface {
	// ListRuns returns the most recent runs first, at most limit of them
	ListRuns(ctx context.Context, limit int) ([]StoredRun, error)
	// GetRun retrieves a run by ID, returns nil if not found
	GetRun(ctx context.Context, id uuid.UUID) (*StoredRun, error)
	// GetRecords returns the person records of a run in extraction order
	GetRecords(ctx context.Context, id uuid.UUID) ([]extract.PersonRecord, error)
	// GetMissingLatin returns the non-Latin diagnostics of a run
	GetMissingLatin(ctx context.Context, id uuid.UUID) ([]extract.MissingLatinName, error)
}

// RunWriter persists extraction runs
type RunWriter interface {
	// SaveRun stores the run together with its records and diagnostics.
	// The run's Records and MissingLatin counts are taken from the slices.
	SaveRun(ctx context.Context, run StoredRun, records []extract.PersonRecord, missing []extract.MissingLatinName) error
	// DeleteRun removes a run and everything stored with it
	DeleteRun(ctx context.Context, id uuid.UUID) error
}

// RunStore combines read and write access
type RunStore interface {
	RunReader
	RunWriter
}
