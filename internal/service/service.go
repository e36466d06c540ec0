package service

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/dpshade/vidgen/internal/catalog"
	"github.com/dpshade/vidgen/internal/clipboard"
	apperrors "github.com/dpshade/vidgen/internal/errors"
	"github.com/dpshade/vidgen/internal/logging"
	"github.com/dpshade/vidgen/internal/models"
	"github.com/dpshade/vidgen/internal/renderer"
	"github.com/dpshade/vidgen/internal/selection"
	"github.com/dpshade/vidgen/internal/simulation"
	"github.com/dpshade/vidgen/internal/storage"
	"github.com/dpshade/vidgen/internal/templates"
	"github.com/dpshade/vidgen/internal/textsync"
	"github.com/dpshade/vidgen/internal/validation"
)

// Options configures a Service. Zero values fall back to the built-in
// catalog, in-memory storage, the system clipboard and a discard logger.
type Options struct {
	Catalog        *catalog.Catalog
	KV             storage.KV
	Clipboard      clipboard.Writer
	Logger         *log.Logger
	Speed          float64
	WordBoundaries bool
}

// Service owns all builder state: selection, prompt text, templates and
// the preview speed. It is driven from a single event loop and holds no
// locks.
type Service struct {
	catalog   *catalog.Catalog
	selection *selection.Store
	engine    *textsync.Engine
	templates *templates.Store
	validator *validation.Validator
	memo      *simulation.Memo
	clipboard clipboard.Writer
	logger    *log.Logger

	speed float64
	sim   simulation.Config
	now   func() time.Time
}

// NewService creates a new service instance
func NewService(opts Options) *Service {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	kv := opts.KV
	if kv == nil {
		kv = storage.NewMemoryKV()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.System{}
	}
	logger := logging.OrDiscard(opts.Logger)

	var engineOpts []textsync.EngineOption
	if opts.WordBoundaries {
		engineOpts = append(engineOpts, textsync.WithWordBoundaries())
	}

	s := &Service{
		catalog:   cat,
		selection: selection.NewStore(cat),
		engine:    textsync.NewEngine(engineOpts...),
		templates: templates.New(kv, logger),
		validator: validation.NewValidator(),
		memo:      &simulation.Memo{},
		clipboard: clip,
		logger:    logger.With("component", "service"),
		speed:     simulation.ClampSpeed(opts.Speed),
		now:       time.Now,
	}
	if opts.Speed == 0 {
		s.speed = simulation.DefaultSpeed
	}

	s.selection.OnChange(s.project)
	s.project(s.selection.Snapshot())
	return s
}

func (s *Service) project(sel models.Selection) {
	s.sim = s.memo.Project(sel, s.speed)
}

// Catalog returns the category catalog
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Selection returns a snapshot of the current selection
func (s *Service) Selection() models.Selection {
	return s.selection.Snapshot()
}

// IsSelected reports whether an option is chosen
func (s *Service) IsSelected(categoryID, optionID string) bool {
	return s.selection.IsSelected(categoryID, optionID)
}

// SelectOption selects a catalog option by id and splices its value into
// the text at the cursor. In single-select categories the displaced
// option's text is removed first. Reselecting a chosen option is a no-op.
func (s *Service) SelectOption(categoryID, optionID string) bool {
	opt, ok := s.catalog.Option(categoryID, optionID)
	if !ok {
		return false
	}
	return s.selectOption(categoryID, opt)
}

func (s *Service) selectOption(categoryID string, opt models.Option) bool {
	if s.selection.IsSelected(categoryID, opt.ID) {
		return false
	}
	replaced, changed := s.selection.SelectReplacing(categoryID, opt)
	if !changed {
		return false
	}
	for _, old := range replaced {
		s.engine.RemoveOption(old)
	}
	s.engine.InsertOption(opt)
	s.logger.Debug("option selected", "category", categoryID, "option", opt.ID)
	return true
}

// DeselectOption removes an option and its first textual occurrence
func (s *Service) DeselectOption(categoryID, optionID string) bool {
	opt, ok := s.selection.Deselect(categoryID, optionID)
	if !ok {
		return false
	}
	if !s.engine.RemoveOption(opt) {
		s.logger.Debug("option text not found", "category", categoryID, "option", optionID)
	}
	return true
}

// ToggleOption deselects a chosen option, otherwise selects it. Options
// not in the catalog (custom ones) can only be toggled off.
func (s *Service) ToggleOption(categoryID, optionID string) bool {
	if s.selection.IsSelected(categoryID, optionID) {
		return s.DeselectOption(categoryID, optionID)
	}
	return s.SelectOption(categoryID, optionID)
}

// AddCustomOption selects a user-authored option. Blank or invalid text
// and unknown categories are no-ops.
func (s *Service) AddCustomOption(categoryID, text string) (models.Option, bool) {
	if _, ok := s.catalog.Category(categoryID); !ok {
		return models.Option{}, false
	}

	result := s.validator.Validate(validation.SchemaCustomOption, map[string]interface{}{
		"category": categoryID,
		"text":     text,
	})
	if !result.Valid {
		s.logger.Warn("custom option rejected", "err", result.ToAppError())
		return models.Option{}, false
	}

	opt := catalog.CustomOption(result.String("text"), s.now())
	if !s.selectOption(categoryID, opt) {
		return models.Option{}, false
	}
	return opt, true
}

// EditText records a free-form edit from the prompt editor. A negative
// cursor means the editor reported no caret.
func (s *Service) EditText(text string, cursor int) {
	s.engine.SetText(text)
	if cursor < 0 {
		s.engine.ClearCursor()
		return
	}
	s.engine.SetCursor(cursor)
}

// SetCursor records the caret position in runes
func (s *Service) SetCursor(offset int) {
	s.engine.SetCursor(offset)
}

// Cursor returns the tracked caret, if any
func (s *Service) Cursor() (int, bool) {
	return s.engine.Cursor()
}

// Text returns the current prompt text
func (s *Service) Text() string {
	return s.engine.Text()
}

// BuiltPrompt rebuilds the prompt from the selection alone, ignoring
// free edits
func (s *Service) BuiltPrompt() string {
	return textsync.Reconstruct(s.selection.Snapshot())
}

// Clear resets the selection and the text
func (s *Service) Clear() {
	s.selection.Reset()
	s.engine.Reset()
	s.logger.Info("prompt cleared")
}

// SaveTemplate snapshots the selection under name. Invalid names are no-ops.
func (s *Service) SaveTemplate(name string) (models.Template, bool) {
	result := s.validator.Validate(validation.SchemaSaveTemplate, map[string]interface{}{"name": name})
	if !result.Valid {
		s.logger.Warn("template save rejected", "err", result.ToAppError())
		return models.Template{}, false
	}
	return s.templates.Save(result.String("name"), s.selection.Snapshot(), s.engine.Text())
}

// DeleteTemplate removes a template by id
func (s *Service) DeleteTemplate(id string) bool {
	return s.templates.Delete(id)
}

// LoadTemplate restores a template's selection and regenerates the text
// from it. Free edits are discarded and the cursor is cleared.
func (s *Service) LoadTemplate(id string) bool {
	sel, ok := s.templates.Load(id)
	if !ok {
		s.logger.Warn("template not found", "err", apperrors.NotFoundError("template "+id))
		return false
	}
	s.selection.Restore(sel)
	s.engine.Load(textsync.Reconstruct(s.selection.Snapshot()))
	s.logger.Info("template loaded", "id", id)
	return true
}

// Template returns a template by id
func (s *Service) Template(id string) (models.Template, bool) {
	return s.templates.Get(id)
}

// Templates returns all templates, most recent first
func (s *Service) Templates() []models.Template {
	return s.templates.List()
}

// SearchTemplates fuzzy-searches templates
func (s *Service) SearchTemplates(query string) []models.Template {
	return s.templates.Search(query)
}

// StorageError returns the last template persistence failure
func (s *Service) StorageError() error {
	return s.templates.LastError()
}

// SetSpeed sets the preview speed, clamped to the supported range
func (s *Service) SetSpeed(v float64) {
	s.speed = simulation.ClampSpeed(v)
	s.project(s.selection.Snapshot())
}

// Speed returns the preview speed
func (s *Service) Speed() float64 {
	return s.speed
}

// Simulation returns the preview configuration for the current state
func (s *Service) Simulation() simulation.Config {
	return s.sim
}

// Copy writes the current prompt text to the clipboard and returns the
// status message to show
func (s *Service) Copy() (string, error) {
	msg, err := clipboard.CopyWithFallback(s.clipboard, renderer.NewRenderer(s.engine.Text()).RenderText())
	if err != nil {
		appErr := apperrors.ClipboardError(err)
		s.logger.Warn("clipboard write failed", "err", err)
		return "", appErr
	}
	return msg, nil
}

// CopyJSON writes the prompt as an LLM message array to the clipboard
func (s *Service) CopyJSON() (string, error) {
	out, err := renderer.NewRenderer(s.engine.Text()).RenderJSON()
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternalError, "Failed to render JSON")
	}
	msg, err := clipboard.CopyWithFallback(s.clipboard, out)
	if err != nil {
		s.logger.Warn("clipboard write failed", "err", err)
		return "", apperrors.ClipboardError(err)
	}
	return msg, nil
}

// TemplateMarkdown renders a template's detail view
func (s *Service) TemplateMarkdown(id string) (string, error) {
	t, ok := s.templates.Get(id)
	if !ok {
		return "", apperrors.NotFoundError("template")
	}
	return renderer.TemplateMarkdown(t, s.catalog)
}
