package appdata

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the whole AppData aggregate as one JSON document,
// read and written atomically as a unit.
type FileStore struct {
	path string

	mu sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the current snapshot. It never fails: a missing or corrupt
// snapshot yields the seed data set.
func (s *FileStore) Load() AppData {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *FileStore) load() AppData {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("unreadable snapshot, starting from seed data", "path", s.path, "error", err)
		}

		return Seed()
	}

	var data AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		slog.Warn("corrupt snapshot, starting from seed data", "path", s.path, "error", err)
		return Seed()
	}

	return data
}

// Save replaces the snapshot with the given data set. The document is written
// to a temporary file and renamed over the old one so a crash mid-write never
// leaves a torn snapshot behind.
func (s *FileStore) Save(data AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(data)
}

func (s *FileStore) save(data AppData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("writing snapshot: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing snapshot: %w", err)
	}

	return nil
}

// Apply runs a pure transform against the current snapshot and persists the
// result, serializing concurrent transforms. If the transform returns an
// error nothing is written and the error is passed through.
func (s *FileStore) Apply(transform func(AppData) (AppData, error)) (AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := transform(s.load())
	if err != nil {
		return AppData{}, err
	}

	if err := s.save(next); err != nil {
		return AppData{}, err
	}

	return next, nil
}
