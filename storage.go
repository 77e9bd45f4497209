package finances

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage is the durable key/value boundary the stores persist through. It
// mirrors browser-local storage semantics: string keys, string values, and
// reads that distinguish "absent" from "failed".
type Storage interface {
	// Read returns the value stored under key, or ok=false if the key has
	// never been written.
	Read(key string) (value string, ok bool, err error)
	// Write stores value under key, replacing any previous value.
	Write(key, value string) error
}

// DirStorage persists each key as a file named "<key>.json" under a data
// directory, created on first write.
type DirStorage struct {
	dir string
}

// NewDirStorage returns a DirStorage rooted at dir.
func NewDirStorage(dir string) DirStorage {
	return DirStorage{dir: dir}
}

func (s DirStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read implements Storage.
func (s DirStorage) Read(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("could not read storage key %q: %w", key, err)
	}
	return string(data), true, nil
}

// Write implements Storage.
func (s DirStorage) Write(key, value string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create storage directory %q: %w", s.dir, err)
	}
	if err := os.WriteFile(s.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("could not write storage key %q: %w", key, err)
	}
	return nil
}

// MemStorage is an in-memory Storage for tests and ephemeral sessions.
type MemStorage struct {
	values map[string]string
}

// NewMemStorage returns an empty MemStorage.
func NewMemStorage() *MemStorage {
	return &MemStorage{values: make(map[string]string)}
}

// Read implements Storage.
func (s *MemStorage) Read(key string) (string, bool, error) {
	value, ok := s.values[key]
	return value, ok, nil
}

// Write implements Storage.
func (s *MemStorage) Write(key, value string) error {
	s.values[key] = value
	return nil
}
