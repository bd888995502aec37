// Package storage provides the persistence backends for the tracker state:
// a JSON file store and a SQLite store. Both save and load the full state as
// one unit and treat a missing store as empty rather than an error.
package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/melusiness/tamstar/internal/track"
)

// FileStore keeps the state as a single JSON document on disk. Writes go
// through a temp file and rename so a crash never leaves a half-written
// store behind.
type FileStore struct {
	path string
}

// NewFileStore creates a file store at path, creating parent directories as
// needed.
func NewFileStore(path string) (*FileStore, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Load reads the saved state. A store that does not exist yet loads as empty.
func (f *FileStore) Load() (track.State, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return track.State{}, nil
	}
	if err != nil {
		return track.State{}, err
	}

	var state track.State
	if err := json.Unmarshal(data, &state); err != nil {
		return track.State{}, err
	}
	return state, nil
}

// Save writes the state atomically, replacing whatever was saved before.
func (f *FileStore) Save(state track.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Close is a no-op; the file store holds no open handles.
func (f *FileStore) Close() error {
	return nil
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
