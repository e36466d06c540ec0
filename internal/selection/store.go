// Package selection holds the per-category option choices of the builder.
package selection

import (
	"github.com/dpshade/vidgen/internal/catalog"
	"github.com/dpshade/vidgen/internal/models"
)

// Listener is notified with a snapshot after every state change
type Listener func(models.Selection)

// Store keeps the ordered option choices for every catalog category.
// Operations are total: unknown categories and absent options are no-ops.
type Store struct {
	catalog   *catalog.Catalog
	state     models.Selection
	listeners []Listener
}

// NewStore creates a store with an empty sequence for every category
func NewStore(c *catalog.Catalog) *Store {
	return &Store{
		catalog: c,
		state:   c.EmptySelection(),
	}
}

// OnChange registers a listener for state changes
func (s *Store) OnChange(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// Select adds an option and reports whether the state changed
func (s *Store) Select(categoryID string, option models.Option) bool {
	_, changed := s.SelectReplacing(categoryID, option)
	return changed
}

// SelectReplacing adds an option and also returns the options it displaced.
// Multi-select categories append unless the id is already present; single-select
// categories replace their sequence with the new option.
func (s *Store) SelectReplacing(categoryID string, option models.Option) ([]models.Option, bool) {
	cat, ok := s.catalog.Category(categoryID)
	if !ok {
		return nil, false
	}

	current := s.state[categoryID]
	if cat.AllowMultiple {
		for _, opt := range current {
			if opt.ID == option.ID {
				return nil, false
			}
		}
		next := make([]models.Option, len(current), len(current)+1)
		copy(next, current)
		s.state[categoryID] = append(next, option)
		s.notify()
		return nil, true
	}

	replaced := make([]models.Option, 0, len(current))
	for _, opt := range current {
		if opt.ID != option.ID {
			replaced = append(replaced, opt)
		}
	}
	s.state[categoryID] = []models.Option{option}
	s.notify()
	return replaced, true
}

// Deselect removes an option by id, returning the removed option
func (s *Store) Deselect(categoryID, optionID string) (models.Option, bool) {
	current, ok := s.state[categoryID]
	if !ok {
		return models.Option{}, false
	}
	for i, opt := range current {
		if opt.ID != optionID {
			continue
		}
		next := make([]models.Option, 0, len(current)-1)
		next = append(next, current[:i]...)
		next = append(next, current[i+1:]...)
		s.state[categoryID] = next
		s.notify()
		return opt, true
	}
	return models.Option{}, false
}

// Reset restores every category to an empty sequence
func (s *Store) Reset() {
	s.state = s.catalog.EmptySelection()
	s.notify()
}

// Restore replaces the state with a snapshot, dropping unknown categories
// and re-applying the single-select and uniqueness invariants
func (s *Store) Restore(snap models.Selection) {
	next := s.catalog.EmptySelection()
	for _, cat := range s.catalog.Categories() {
		seen := make(map[string]bool)
		for _, opt := range snap[cat.ID] {
			if seen[opt.ID] {
				continue
			}
			seen[opt.ID] = true
			if !cat.AllowMultiple {
				next[cat.ID] = []models.Option{opt}
				continue
			}
			next[cat.ID] = append(next[cat.ID], opt)
		}
	}
	s.state = next
	s.notify()
}

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot() models.Selection {
	return s.state.Clone()
}

// Selected returns a copy of the chosen options of one category
func (s *Store) Selected(categoryID string) []models.Option {
	current := s.state[categoryID]
	out := make([]models.Option, len(current))
	copy(out, current)
	return out
}

// IsSelected reports whether an option is currently chosen
func (s *Store) IsSelected(categoryID, optionID string) bool {
	return s.state.Has(categoryID, optionID)
}

func (s *Store) notify() {
	if len(s.listeners) == 0 {
		return
	}
	snap := s.state.Clone()
	for _, fn := range s.listeners {
		fn(snap)
	}
}
