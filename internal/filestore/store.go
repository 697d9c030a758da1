// Package filestore persists the three collections as flat JSON files,
// one per collection, compatible with the repository interfaces backed
// by the relational store.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	usersFile      = "users.json"
	studyItemsFile = "study_items.json"
	logsFile       = "logs.json"
)

// Store owns the data directory and serializes all access. A single
// mutex is enough here: every repository operation is one read or one
// read-modify-write of a whole collection file.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New prepares the data directory and returns a Store
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// readCollection decodes a collection file into out. A missing file is
// an empty collection, not an error.
func (s *Store) readCollection(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// writeCollection writes the full collection through a temp file and
// rename so a crash never leaves a half-written file behind.
func (s *Store) writeCollection(name string, in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
