package simulation

import (
	"github.com/dpshade/vidgen/internal/models"
	"github.com/mitchellh/hashstructure/v2"
)

// Memo caches the most recent projection, keyed on a structural hash of
// the selection and speed. It returns exactly what Project returns.
type Memo struct {
	key    uint64
	valid  bool
	cfg    Config
	hits   int
	misses int
}

type memoKey struct {
	Selection models.Selection
	Speed     float64
}

// Project returns the cached configuration when inputs are unchanged
func (m *Memo) Project(sel models.Selection, speed float64) Config {
	key, err := hashstructure.Hash(memoKey{Selection: sel, Speed: speed}, hashstructure.FormatV2, nil)
	if err != nil {
		m.misses++
		return Project(sel, speed)
	}
	if m.valid && key == m.key {
		m.hits++
		return m.cfg
	}

	m.misses++
	m.key = key
	m.cfg = Project(sel, speed)
	m.valid = true
	return m.cfg
}

// Stats returns cache hit and miss counts
func (m *Memo) Stats() (hits, misses int) {
	return m.hits, m.misses
}
