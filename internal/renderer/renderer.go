package renderer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/dpshade/vidgen/internal/catalog"
	"github.com/dpshade/vidgen/internal/models"
)

// Renderer handles prompt output formats
type Renderer struct {
	text string
}

// NewRenderer creates a renderer for the current prompt text
func NewRenderer(text string) *Renderer {
	return &Renderer{text: text}
}

// RenderText renders the prompt as plain text
func (r *Renderer) RenderText() string {
	return strings.TrimSpace(r.text)
}

// RenderJSON renders the prompt as a JSON message array for LLM APIs
func (r *Renderer) RenderJSON() (string, error) {
	messages := []Message{
		{
			Role:    "user",
			Content: r.RenderText(),
		},
	}

	jsonBytes, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal to JSON: %w", err)
	}

	return string(jsonBytes), nil
}

// Message represents a chat message for LLM APIs
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const templateMarkdown = `# {{ .Name }}

{{ if .Saved }}*Saved {{ .Saved }}*{{ end }}{{ if .Tags }} · {{ .Tags }}{{ end }}
{{ if .Excerpt }}
> {{ .Excerpt }}
{{ end }}
{{ range .Sections }}
## {{ .Title }}
{{ range .Options }}
- **{{ .Label }}**{{ if .IsCustom }} _(custom)_{{ end }}: {{ .Value }}
{{- end }}
{{ else }}
_No options selected._
{{ end }}`

var markdownTemplate = template.Must(template.New("template").Parse(templateMarkdown))

type markdownSection struct {
	Title   string
	Options []models.Option
}

type markdownData struct {
	Name     string
	Saved    string
	Tags     string
	Excerpt  string
	Sections []markdownSection
}

// TemplateMarkdown renders a saved template as markdown for the detail
// view. Categories follow catalog order; categories the catalog does not
// know are appended by id.
func TemplateMarkdown(t models.Template, cat *catalog.Catalog) (string, error) {
	data := markdownData{
		Name:    t.Title(),
		Tags:    strings.Join(t.Tags, ", "),
		Excerpt: strings.ReplaceAll(strings.TrimSpace(t.Excerpt), "\n", " "),
	}
	if t.CreatedAt > 0 {
		data.Saved = t.Created().Format("2006-01-02 15:04")
	}

	seen := make(map[string]bool)
	if cat != nil {
		for _, c := range cat.Categories() {
			seen[c.ID] = true
			if opts := t.Data[c.ID]; len(opts) > 0 {
				data.Sections = append(data.Sections, markdownSection{Title: c.Title, Options: opts})
			}
		}
	}

	var extra []string
	for id, opts := range t.Data {
		if !seen[id] && len(opts) > 0 {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	for _, id := range extra {
		data.Sections = append(data.Sections, markdownSection{Title: id, Options: t.Data[id]})
	}

	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
