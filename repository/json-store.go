package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var _ Store = (*JSONStore)(nil)

// JSONStore keeps a snapshot of a repository as a human-readable JSON file on disc.
// Each call to Store rewrites the complete file.
// JSONStore is not schema aware and uses the standard go marshalling.
// CAUTION: This is only intended for local development and demoing.
type JSONStore struct {
	dir string

	mu sync.Mutex
}

func NewJSONStore(path string) *JSONStore {
	err := os.MkdirAll(path, os.ModePerm)
	if err != nil {
		panic("could not create path: " + path + ": " + err.Error())
	}

	return &JSONStore{dir: path, mu: sync.Mutex{}}
}

// Store writes data into a temporary file first and renames it afterwards,
// so a reader never sees a half written snapshot.
func (s *JSONStore) Store(fileName string, data any) error {
	if data == nil {
		return nil
	}

	b, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, fileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // the file is gone after a successful rename

	if _, err = tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(s.dir, fileName)); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	return nil
}

func (s *JSONStore) Load(fileName string, data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(filepath.Join(s.dir, fileName))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	err = json.NewDecoder(f).Decode(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}

	return nil
}
