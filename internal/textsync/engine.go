// Package textsync keeps a free-text prompt buffer in step with option
// selection events.
//
// The buffer is authoritative once the user edits it directly: selection
// events patch it through InsertOption and RemoveOption, but nothing
// reconciles it back to the selection state. Reconstruct is the clean,
// non-incremental rebuild used when a template is loaded.
//
// Offsets are counted in runes.
package textsync

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dpshade/vidgen/internal/catalog"
	"github.com/dpshade/vidgen/internal/models"
)

// Separator joins fragments in the buffer
const Separator = ", "

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithWordBoundaries makes RemoveOption match values only at word boundaries,
// so removing "eating" no longer strikes the tail of "overeating"
func WithWordBoundaries() EngineOption {
	return func(e *Engine) {
		e.wordBoundaries = true
	}
}

// Engine owns the prompt text and the last known caret position
type Engine struct {
	text           string
	cursor         int
	hasCursor      bool
	wordBoundaries bool
}

// NewEngine creates an empty buffer with no tracked cursor
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Text returns the buffer contents
func (e *Engine) Text() string {
	return e.text
}

// Cursor returns the tracked caret offset; false means "end of text"
func (e *Engine) Cursor() (int, bool) {
	return e.cursor, e.hasCursor
}

// SetText replaces the buffer, as when the user types freely.
// A tracked cursor is clamped to the new length.
func (e *Engine) SetText(text string) {
	e.text = text
	if e.hasCursor {
		e.cursor = clamp(e.cursor, 0, utf8.RuneCountInString(text))
	}
}

// SetCursor records the caret position of the latest direct interaction
func (e *Engine) SetCursor(offset int) {
	e.cursor = clamp(offset, 0, utf8.RuneCountInString(e.text))
	e.hasCursor = true
}

// ClearCursor forgets the caret so insertions append at the end
func (e *Engine) ClearCursor() {
	e.cursor = 0
	e.hasCursor = false
}

// Reset empties the buffer and forgets the caret
func (e *Engine) Reset() {
	e.text = ""
	e.ClearCursor()
}

// Load replaces the buffer with rebuilt text and forgets the caret
func (e *Engine) Load(text string) {
	e.text = text
	e.ClearCursor()
}

// InsertOption splices the option value in at the caret (or the end),
// prefixing a separator unless the preceding rune already separates.
// Inserting the same option twice inserts its text twice.
func (e *Engine) InsertOption(option models.Option) {
	runes := []rune(e.text)
	offset := len(runes)
	if e.hasCursor {
		offset = clamp(e.cursor, 0, len(runes))
	}

	sep := separatorBefore(runes, offset)
	value := []rune(option.Value)

	out := make([]rune, 0, len(runes)+len(sep)+len(value))
	out = append(out, runes[:offset]...)
	out = append(out, []rune(sep)...)
	out = append(out, value...)
	out = append(out, runes[offset:]...)

	e.text = string(out)
	e.cursor = offset + utf8.RuneCountInString(sep) + len(value)
	e.hasCursor = true
}

func separatorBefore(runes []rune, offset int) string {
	if offset == 0 {
		return ""
	}
	switch runes[offset-1] {
	case ' ', ',', '\n':
		return ""
	}
	return Separator
}

// RemoveOption strikes the option value from the buffer, trying in order:
// a leading comma and whitespace before the value, the value with a trailing
// comma and whitespace, then the bare value. Matching is a case-insensitive
// literal match, so a value that is a substring of another fragment can
// remove the wrong text. It reports whether anything was removed; a miss
// leaves the buffer unchanged.
func (e *Engine) RemoveOption(option models.Option) bool {
	if option.Value == "" {
		return false
	}
	for _, re := range e.removalPatterns(option.Value) {
		loc := re.FindStringIndex(e.text)
		if loc == nil {
			continue
		}
		e.cut(loc[0], loc[1])
		return true
	}
	return false
}

func (e *Engine) removalPatterns(value string) []*regexp.Regexp {
	quoted := regexp.QuoteMeta(value)
	if e.wordBoundaries {
		quoted = boundaryGuard(value, true) + quoted + boundaryGuard(value, false)
	}
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i),\s*` + quoted),
		regexp.MustCompile(`(?i)` + quoted + `,\s*`),
		regexp.MustCompile(`(?i)` + quoted),
	}
}

// boundaryGuard returns \b only where the value edge is a word rune;
// a guard next to punctuation would never match.
func boundaryGuard(value string, leading bool) string {
	var r rune
	if leading {
		r, _ = utf8.DecodeRuneInString(value)
	} else {
		r, _ = utf8.DecodeLastRuneInString(value)
	}
	if r == '_' || (r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
		return `\b`
	}
	return ""
}

// cut removes the byte span [start, end) and keeps the caret on the same text
func (e *Engine) cut(start, end int) {
	runeStart := utf8.RuneCountInString(e.text[:start])
	runeEnd := runeStart + utf8.RuneCountInString(e.text[start:end])
	e.text = e.text[:start] + e.text[end:]

	if !e.hasCursor {
		return
	}
	if e.cursor > runeStart {
		e.cursor -= min(e.cursor, runeEnd) - runeStart
	}
	e.cursor = clamp(e.cursor, 0, utf8.RuneCountInString(e.text))
}

// Reconstruct rebuilds prompt text from a selection in the fixed category
// order style, subject, environment, lighting, camera, quality. Categories
// outside that order (from a custom catalog) follow, sorted by id.
func Reconstruct(sel models.Selection) string {
	order := append([]string(nil), catalog.ReconstructOrder...)
	known := make(map[string]bool, len(order))
	for _, id := range order {
		known[id] = true
	}
	var extra []string
	for id := range sel {
		if !known[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)

	var parts []string
	for _, id := range order {
		for _, opt := range sel[id] {
			parts = append(parts, opt.Value)
		}
	}
	return strings.Join(parts, Separator)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
