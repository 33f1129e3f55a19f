package database

import (
	"time"

	"github.com/google/uuid"
)

// StoredRun represents one persisted extraction run
type StoredRun struct {
	ID           uuid.UUID
	Source       string // Input file name or "api"
	Entities     int    // Number of input entities
	Records      int    // Number of person records stored
	MissingLatin int    // Entities without any Latin name
	CreatedAt    time.Time
}
