package models

import (
	"strings"
)

// Option is one selectable prompt fragment within a category
type Option struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	Value    string `json:"value" yaml:"value"` // Text inserted into the prompt
	IsCustom bool   `json:"isCustom,omitempty" yaml:"-"`
}

// Implement list.Item interface for bubbles list component

// FilterValue returns the value used for filtering in lists
func (o Option) FilterValue() string {
	return cleanString(o.Label)
}

// Title satisfies the list.Item interface
func (o Option) Title() string {
	if o.Label != "" {
		return cleanString(o.Label)
	}
	return cleanString(o.ID)
}

// Description satisfies the list.Item interface
func (o Option) Description() string {
	desc := cleanString(o.Value)
	if o.IsCustom {
		desc = "custom • " + desc
	}

	// Leave space for list indicator and margins
	maxLength := 60
	if len([]rune(desc)) > maxLength {
		desc = string([]rune(desc)[:maxLength-3]) + "..."
	}
	return desc
}

// cleanString removes problematic characters that might cause rendering issues
func cleanString(s string) string {
	if s == "" {
		return ""
	}

	// Remove any control characters, newlines, tabs that could break rendering
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' {
			b.WriteRune(' ')
		} else if r >= 32 && r != 127 { // Keep printable ASCII + unicode
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	// Collapse multiple spaces
	for strings.Contains(cleaned, "  ") {
		cleaned = strings.ReplaceAll(cleaned, "  ", " ")
	}

	return strings.TrimSpace(cleaned)
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
