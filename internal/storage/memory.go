package storage

import "errors"

// ErrInjected is returned by MemoryKV when a write failure is simulated
var ErrInjected = errors.New("injected storage failure")

// MemoryKV keeps values in memory
type MemoryKV struct {
	values  map[string][]byte
	FailSet bool // Simulate write failures
	Writes  int
}

// NewMemoryKV creates an empty store
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string][]byte)}
}

// Get returns a copy of the stored value
func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set stores a copy of value
func (m *MemoryKV) Set(key string, value []byte) error {
	if m.FailSet {
		return ErrInjected
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	m.Writes++
	return nil
}

// Close is a no-op
func (m *MemoryKV) Close() error {
	return nil
}
