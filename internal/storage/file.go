package storage

import (
	"errors"
	"os"
	"path/filepath"
)

// File persists each key as its own file under a data directory, the local
// analog of origin-scoped browser storage.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key)
}

func (f *File) Get(key string) (string, bool, error) {
	b, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

func (f *File) Set(key, value string) error {
	return os.WriteFile(f.path(key), []byte(value), 0o600)
}

func (f *File) Remove(key string) error {
	err := os.Remove(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
