package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/melusiness/tamstar/internal/track"
)

// SQLiteStore keeps the state in a SQLite database. Each save rewrites the
// records table inside one transaction, so the database always holds exactly
// the state last handed to Save.
type SQLiteStore struct {
	db *sql.DB
}

const settingInterval = "suggested_interval_hours"

// NewSQLiteStore opens or creates a database at dbPath, creating parent
// directories as needed.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// migrate creates the necessary tables
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			logged_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value REAL NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Load reads the saved state. Records come back in the order they were
// saved; a database with no rows loads as empty state.
func (s *SQLiteStore) Load() (track.State, error) {
	var state track.State

	rows, err := s.db.Query(`SELECT id, logged_at FROM records ORDER BY rowid ASC`)
	if err != nil {
		return track.State{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var r track.Record
		var epoch int64
		if err := rows.Scan(&r.ID, &epoch); err != nil {
			return track.State{}, err
		}
		r.LoggedAt = time.Unix(epoch, 0)
		state.Records = append(state.Records, r)
	}
	if err := rows.Err(); err != nil {
		return track.State{}, err
	}

	err = s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, settingInterval).
		Scan(&state.Settings.SuggestedIntervalHours)
	if err != nil && err != sql.ErrNoRows {
		return track.State{}, err
	}

	return state, nil
}

// Save replaces the stored state with the given one.
func (s *SQLiteStore) Save(state track.State) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM records`); err != nil {
		return err
	}
	for _, r := range state.Records {
		if _, err := tx.Exec(`INSERT INTO records (id, logged_at) VALUES (?, ?)`, r.ID, r.LoggedAt.Unix()); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO settings (key, value)
		VALUES (?, ?)
	`, settingInterval, state.Settings.SuggestedIntervalHours); err != nil {
		return err
	}

	return tx.Commit()
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
