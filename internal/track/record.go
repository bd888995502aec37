// Package track holds the domain model of the tracker: timestamped
// replacement records, the interval math between them, and the Store that
// keeps the in-memory state in sync with a persistence backend.
package track

import (
	"time"

	"github.com/google/uuid"
)

// Record is a single logged replacement event.
type Record struct {
	ID       string    `json:"id"`
	LoggedAt time.Time `json:"timestamp"`
}

// Settings carries the user-tunable knobs that persist alongside records.
type Settings struct {
	// SuggestedIntervalHours is the fallback spacing used for the next
	// suggested time while fewer than two records exist.
	SuggestedIntervalHours float64 `json:"suggested_interval_hours"`
}

// State is the full persisted application state, saved and loaded as one unit.
type State struct {
	Records  []Record `json:"records"`
	Settings Settings `json:"settings"`
}

// DefaultIntervalHours is the fallback spacing before enough history exists.
const DefaultIntervalHours = 3.0

func DefaultSettings() Settings {
	return Settings{SuggestedIntervalHours: DefaultIntervalHours}
}

// GenerateID returns a unique identifier for a record.
func GenerateID() string {
	return uuid.New().String()
}

// NewRecord creates a record for the given moment with a fresh ID.
func NewRecord(at time.Time) Record {
	return Record{ID: GenerateID(), LoggedAt: at}
}
