package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var safeKey = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// FileKV stores each key as a JSON file in a directory
type FileKV struct {
	dir string
}

// NewFileKV creates the directory if needed
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) (string, error) {
	if !safeKey.MatchString(key) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(f.dir, key+".json"), nil
}

// Get reads the file for key
func (f *FileKV) Get(key string) ([]byte, bool, error) {
	path, err := f.path(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes to a temp file then renames it over the key's file
func (f *FileKV) Set(key string, value []byte) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

// Close is a no-op for files
func (f *FileKV) Close() error {
	return nil
}
