// Package templates persists named selection snapshots.
package templates

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	apperrors "github.com/dpshade/vidgen/internal/errors"
	"github.com/dpshade/vidgen/internal/logging"
	"github.com/dpshade/vidgen/internal/models"
	"github.com/dpshade/vidgen/internal/storage"
)

// StorageKey is the key holding the JSON array of templates
const StorageKey = "vidgen_templates"

// DefaultTag is attached to every user-saved template
const DefaultTag = "Custom"

// excerptLength is the number of runes of prompt text kept as description
const excerptLength = 100

// Store holds templates most-recent-first. The in-memory list is
// authoritative; every mutation rewrites the whole list to the KV store.
type Store struct {
	kv        storage.KV
	logger    *log.Logger
	templates []models.Template
	lastErr   error
	now       func() time.Time
}

// New loads templates from kv. Unreadable or malformed data yields an
// empty list and is logged, never returned.
func New(kv storage.KV, logger *log.Logger) *Store {
	s := &Store{
		kv:     kv,
		logger: logging.OrDiscard(logger).With("component", "templates"),
		now:    time.Now,
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		s.lastErr = apperrors.StorageError("read templates", err)
		s.logger.Warn("failed to read templates, starting empty", "err", err)
		return
	}
	if !ok || len(data) == 0 {
		return
	}

	var list []models.Template
	if err := json.Unmarshal(data, &list); err != nil {
		s.lastErr = apperrors.CorruptedError("stored templates", err)
		s.logger.Warn("malformed templates, starting empty", "err", err)
		return
	}
	s.templates = list
	s.logger.Debug("templates loaded", "count", len(list))
}

// Save snapshots sel under name. A blank name is a no-op.
func (s *Store) Save(name string, sel models.Selection, textPreview string) (models.Template, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Template{}, false
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	t := models.Template{
		ID:        id.String(),
		Name:      name,
		Excerpt:   excerpt(textPreview),
		Data:      sel.Clone(),
		CreatedAt: s.now().UnixMilli(),
		Tags:      []string{DefaultTag},
	}

	s.templates = append([]models.Template{t}, s.templates...)
	s.persist()
	s.logger.Info("template saved", "id", t.ID, "name", t.Name)
	return cloneTemplate(t), true
}

// Delete removes the template with id. Unknown ids are a no-op.
func (s *Store) Delete(id string) bool {
	for i, t := range s.templates {
		if t.ID == id {
			s.templates = append(s.templates[:i:i], s.templates[i+1:]...)
			s.persist()
			s.logger.Info("template deleted", "id", id)
			return true
		}
	}
	return false
}

// List returns a copy of all templates, most recent first
func (s *Store) List() []models.Template {
	out := make([]models.Template, len(s.templates))
	for i, t := range s.templates {
		out[i] = cloneTemplate(t)
	}
	return out
}

// Get returns the template with id
func (s *Store) Get(id string) (models.Template, bool) {
	for _, t := range s.templates {
		if t.ID == id {
			return cloneTemplate(t), true
		}
	}
	return models.Template{}, false
}

// Load returns a deep copy of the selection stored in template id
func (s *Store) Load(id string) (models.Selection, bool) {
	t, ok := s.Get(id)
	if !ok {
		return nil, false
	}
	return t.Data, true
}

// Len returns the number of stored templates
func (s *Store) Len() int {
	return len(s.templates)
}

// Search fuzzy-matches query against names, descriptions and tags.
// An empty query returns List().
func (s *Store) Search(query string) []models.Template {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List()
	}

	var searchStrings []string
	for _, t := range s.templates {
		searchStrings = append(searchStrings, fmt.Sprintf("%s %s %s",
			t.Name,
			t.Excerpt,
			strings.Join(t.Tags, " ")))
	}

	matches := fuzzy.Find(query, searchStrings)

	results := make([]models.Template, 0, len(matches))
	for _, match := range matches {
		results = append(results, cloneTemplate(s.templates[match.Index]))
	}
	return results
}

// LastError returns the most recent persistence failure, or nil once a
// later write succeeds
func (s *Store) LastError() error {
	return s.lastErr
}

func (s *Store) persist() {
	data, err := json.Marshal(s.templates)
	if err != nil {
		s.lastErr = apperrors.StorageError("encode templates", err)
		s.logger.Error("failed to encode templates", "err", err)
		return
	}
	if err := s.kv.Set(StorageKey, data); err != nil {
		s.lastErr = apperrors.StorageError("write templates", err)
		s.logger.Error("failed to write templates", "err", err)
		return
	}
	s.lastErr = nil
}

func excerpt(text string) string {
	r := []rune(text)
	if len(r) > excerptLength {
		r = r[:excerptLength]
	}
	return string(r)
}

func cloneTemplate(t models.Template) models.Template {
	t.Data = t.Data.Clone()
	t.Tags = append([]string(nil), t.Tags...)
	return t
}
