package track

import (
	"sync"
	"time"

	"github.com/melusiness/tamstar/internal/calendar"
	"github.com/melusiness/tamstar/internal/log"
)

// Backend persists the full application state as one unit. Load must return
// an empty State and a nil error when nothing has been saved yet; an error
// means saved data exists but could not be read.
type Backend interface {
	Load() (State, error)
	Save(State) error
	Close() error
}

// Store is the single source of truth for records and settings. All access
// goes through its mutex, and every mutation is written through to the
// backend. Persistence failures are logged, never surfaced: losing a save is
// preferable to losing the in-memory session.
type Store struct {
	mu       sync.Mutex
	backend  Backend
	loc      *time.Location
	records  []Record
	settings Settings
}

// NewStore loads whatever the backend holds and serves it from memory.
// A failed load degrades to an empty record list, and absent or zero
// settings normalize to the defaults, so the application always starts.
func NewStore(backend Backend, loc *time.Location) *Store {
	s := &Store{backend: backend, loc: loc, settings: DefaultSettings()}
	state, err := backend.Load()
	if err != nil {
		log.Error("loading saved state failed, starting empty", err)
		return s
	}
	s.records = state.Records
	if state.Settings.SuggestedIntervalHours > 0 {
		s.settings = state.Settings
	}
	return s
}

// Add logs a replacement at the given moment and returns the stored record.
func (s *Store) Add(at time.Time) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := NewRecord(at)
	s.records = append(s.records, r)
	s.persist()
	return r
}

// Delete removes the record with the given ID. It reports whether a record
// was found; deleting an unknown ID is a no-op.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// Update moves the record with the given ID to a new timestamp, keeping its
// identity. It returns the updated record and whether the ID was found.
func (s *Store) Update(id string, at time.Time) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].LoggedAt = at
			s.persist()
			return s.records[i], true
		}
	}
	return Record{}, false
}

// Records returns a copy of all records in insertion order. Callers wanting
// display order sort with SortedByTime.
func (s *Store) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// RecordsForDay returns the records logged on the same calendar day as day
// in the store's location, in insertion order.
func (s *Store) RecordsForDay(day time.Time) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return OnDay(s.records, day, s.loc)
}

// DayReport derives the report for day as of now, using the current
// fallback interval.
func (s *Store) DayReport(day, now time.Time) DayReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildDayReport(OnDay(s.records, day, s.loc), s.settings.SuggestedIntervalHours, now)
}

// MarksForMonth tallies records per day of the given month in the store's
// calendar.
func (s *Store) MarksForMonth(m calendar.Month) map[int]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	times := make([]time.Time, len(s.records))
	for i, r := range s.records {
		times[i] = r.LoggedAt
	}
	return calendar.MarksForMonth(times, m, s.loc)
}

// Settings returns the current settings.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetSuggestedInterval updates the fallback interval. It reports whether
// the value was accepted; non-positive values are rejected and leave the
// current settings untouched.
func (s *Store) SetSuggestedInterval(hours float64) bool {
	if hours <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.SuggestedIntervalHours = hours
	s.persist()
	return true
}

// AverageInterval reports the mean minute gap between consecutive records
// across the whole history. The second return is false while fewer than two
// records exist.
func (s *Store) AverageInterval() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AverageIntervalMinutes(s.records)
}

// NextSuggested projects the next replacement time from the whole history
// as of now.
func (s *Store) NextSuggested(now time.Time) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NextSuggestedTime(s.records, s.settings.SuggestedIntervalHours, now)
}

// Location returns the calendar used to group records into days.
func (s *Store) Location() *time.Location {
	return s.loc
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// persist writes the current state through to the backend. Callers must hold
// the mutex.
func (s *Store) persist() {
	state := State{Records: make([]Record, len(s.records)), Settings: s.settings}
	copy(state.Records, s.records)
	if err := s.backend.Save(state); err != nil {
		log.Error("saving state failed", err, "records", len(state.Records))
	}
}
