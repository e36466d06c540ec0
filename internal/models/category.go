package models

import "strings"

// Category is a fixed group of related prompt options
type Category struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description" yaml:"description"`
	AllowMultiple bool     `json:"allowMultiple" yaml:"allow_multiple"`
	Options       []Option `json:"options" yaml:"options"`
}

// Option returns the catalog option with the given id
func (c Category) Option(id string) (Option, bool) {
	for _, opt := range c.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Singular returns a lowercase singular label for placeholders, e.g. "camera motion"
func (c Category) Singular() string {
	return strings.ToLower(strings.TrimSuffix(c.Title, "s"))
}
