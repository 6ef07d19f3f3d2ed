// Package file provides a filesystem KeyValue adapter: one file per
// persisted key under a root directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store implements the KeyValue port on plain files. Writes go through
// a temp file and rename, giving the single-key atomic replace the
// persistence contract requires.
type Store struct {
	dir string
}

// NewStore creates the root directory if needed and returns the
// adapter bound to it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: create dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get returns the content of the key's file. A missing file is
// (ok=false), not an error.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("file get %s: %w", key, err)
	}
	return string(raw), true, nil
}

// Set replaces the key's file content atomically.
func (s *Store) Set(_ context.Context, key, value string) error {
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("file set %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("file set %s: %w", key, err)
	}
	return nil
}

// Delete removes the key's file. Deleting a missing key is not an
// error.
func (s *Store) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("file delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
