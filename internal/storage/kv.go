// Package storage provides the key-value persistence collaborator used by
// the template store.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// KV is a byte-oriented key-value store
type KV interface {
	// Get returns the value for key and whether it exists
	Get(key string) ([]byte, bool, error)
	// Set replaces the value for key
	Set(key string, value []byte) error
	Close() error
}

// Backend kinds accepted by Open
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open creates the configured backend rooted at baseDir
func Open(backend, baseDir string) (KV, error) {
	if baseDir == "" && backend != BackendMemory {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		baseDir = filepath.Join(homeDir, ".vidgen")
	}

	switch backend {
	case "", BackendFile:
		return NewFileKV(filepath.Join(baseDir, "data"))
	case BackendSQLite:
		return NewSQLiteKV(filepath.Join(baseDir, "vidgen.db"))
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
