// Package catalog holds the fixed taxonomy of prompt categories and options.
package catalog

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dpshade/vidgen/internal/models"
	"gopkg.in/yaml.v3"
)

// Category ids of the built-in taxonomy
const (
	Camera      = "camera"
	Subject     = "subject"
	Style       = "style"
	Lighting    = "lighting"
	Environment = "environment"
	Quality     = "quality"
)

// ReconstructOrder is the order categories contribute to a rebuilt prompt
var ReconstructOrder = []string{Style, Subject, Environment, Lighting, Camera, Quality}

// Catalog is an ordered, immutable set of categories
type Catalog struct {
	categories []models.Category
	index      map[string]int
}

// New builds a catalog from categories, rejecting duplicate ids
func New(categories []models.Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]models.Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	for _, cat := range categories {
		if strings.TrimSpace(cat.ID) == "" {
			return nil, fmt.Errorf("category %q has an empty id", cat.Title)
		}
		if _, dup := c.index[cat.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q", cat.ID)
		}
		seen := make(map[string]bool, len(cat.Options))
		for _, opt := range cat.Options {
			if strings.TrimSpace(opt.ID) == "" {
				return nil, fmt.Errorf("category %q has an option with an empty id", cat.ID)
			}
			if seen[opt.ID] {
				return nil, fmt.Errorf("duplicate option id %q in category %q", opt.ID, cat.ID)
			}
			seen[opt.ID] = true
		}
		opts := make([]models.Option, len(cat.Options))
		copy(opts, cat.Options)
		cat.Options = opts
		c.index[cat.ID] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	return c, nil
}

// catalogFile is the YAML layout accepted by LoadFile
type catalogFile struct {
	Categories []models.Category `yaml:"categories"`
}

// LoadFile reads a YAML catalog that replaces the built-in taxonomy
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("catalog defines no categories")
	}
	return New(file.Categories)
}

// Categories returns the categories in display order
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// IDs returns category ids in display order
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.categories))
	for i, cat := range c.categories {
		ids[i] = cat.ID
	}
	return ids
}

// Len returns the number of categories
func (c *Catalog) Len() int {
	return len(c.categories)
}

// Category looks up a category by id
func (c *Catalog) Category(id string) (models.Category, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Category{}, false
	}
	return c.categories[i], true
}

// Option looks up a catalog option
func (c *Catalog) Option(categoryID, optionID string) (models.Option, bool) {
	cat, ok := c.Category(categoryID)
	if !ok {
		return models.Option{}, false
	}
	return cat.Option(optionID)
}

// EmptySelection returns a selection with an empty sequence for every category
func (c *Catalog) EmptySelection() models.Selection {
	sel := make(models.Selection, len(c.categories))
	for _, cat := range c.categories {
		sel[cat.ID] = []models.Option{}
	}
	return sel
}

// CustomOption builds a user-authored option. The id is derived from the
// clock at millisecond resolution, so two submissions within the same
// millisecond collide.
func CustomOption(text string, now time.Time) models.Option {
	text = strings.TrimSpace(text)
	return models.Option{
		ID:       "custom_" + strconv.FormatInt(now.UnixMilli(), 10),
		Label:    text,
		Value:    text,
		IsCustom: true,
	}
}
