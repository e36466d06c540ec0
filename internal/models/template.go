package models

import (
	"fmt"
	"strings"
	"time"
)

// Template is a named, persisted snapshot of a selection
type Template struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Excerpt   string    `json:"description"` // Leading excerpt of the prompt text at save time
	Data      Selection `json:"data"`
	CreatedAt int64     `json:"createdAt"` // Unix milliseconds
	Tags      []string  `json:"tags"`
}

// Created returns the creation time
func (t Template) Created() time.Time {
	return time.UnixMilli(t.CreatedAt)
}

// FilterValue returns the value used for filtering in lists
func (t Template) FilterValue() string {
	return cleanString(t.Name)
}

// Title satisfies the list.Item interface
func (t Template) Title() string {
	if t.Name != "" {
		return cleanString(t.Name)
	}
	return cleanString(t.ID)
}

// Description satisfies the list.Item interface
func (t Template) Description() string {
	var parts []string

	if t.CreatedAt > 0 {
		parts = append(parts, "Saved: "+t.Created().Format("2006-01-02 15:04"))
	}
	parts = append(parts, fmt.Sprintf("%d options", t.Data.Count()))
	if len(t.Tags) > 0 {
		parts = append(parts, "Tags: "+joinTags(t.Tags))
	}

	result := cleanString(strings.Join(parts, " • "))

	maxTotalLength := 100
	if len([]rune(result)) > maxTotalLength {
		result = string([]rune(result)[:maxTotalLength-3]) + "..."
	}
	return result
}
