package models

// Selection maps a category id to its chosen options in selection order
type Selection map[string][]Option

// Clone returns a deep copy of the selection
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for id, opts := range s {
		cp := make([]Option, len(opts))
		copy(cp, opts)
		out[id] = cp
	}
	return out
}

// Has reports whether the option id is selected within the category
func (s Selection) Has(categoryID, optionID string) bool {
	for _, opt := range s[categoryID] {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}

// First returns the earliest selected option of a category
func (s Selection) First(categoryID string) (Option, bool) {
	opts := s[categoryID]
	if len(opts) == 0 {
		return Option{}, false
	}
	return opts[0], true
}

// Count returns the total number of selected options across categories
func (s Selection) Count() int {
	n := 0
	for _, opts := range s {
		n += len(opts)
	}
	return n
}

// Equal reports whether two selections hold the same options in the same order.
// A missing category and an empty one are treated alike.
func (s Selection) Equal(other Selection) bool {
	for id, opts := range s {
		if len(opts) != len(other[id]) {
			return false
		}
		for i := range opts {
			if opts[i] != other[id][i] {
				return false
			}
		}
	}
	for id, opts := range other {
		if len(opts) != len(s[id]) {
			return false
		}
	}
	return true
}
