package renderer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dpshade/vidgen/internal/catalog"
	"github.com/dpshade/vidgen/internal/models"
)

func TestRenderText(t *testing.T) {
	r := NewRenderer("  cinematic film look, a person walking \n")
	if got := r.RenderText(); got != "cinematic film look, a person walking" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := NewRenderer("neon city").RenderJSON()
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var messages []Message
	if err := json.Unmarshal([]byte(out), &messages); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(messages) != 1 || messages[0].Role != "user" || messages[0].Content != "neon city" {
		t.Errorf("unexpected messages %+v", messages)
	}
}

func TestTemplateMarkdown(t *testing.T) {
	tmpl := models.Template{
		ID:      "t1",
		Name:    "Night walk",
		Excerpt: "neon glow, a person walking",
		Tags:    []string{"Custom"},
		Data: models.Selection{
			"lighting": {{ID: "neon", Label: "Neon", Value: "neon glow"}},
			"subject":  {{ID: "walking", Label: "Walking", Value: "a person walking"}},
			"mood":     {{ID: "custom_1", Label: "eerie", Value: "eerie", IsCustom: true}},
		},
	}

	md, err := TemplateMarkdown(tmpl, catalog.Default())
	if err != nil {
		t.Fatalf("TemplateMarkdown: %v", err)
	}

	for _, want := range []string{"# Night walk", "> neon glow, a person walking", "**Neon**", "**Walking**", "_(custom)_", "## mood"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	// Catalog order puts subject before lighting; unknown categories last
	subject := strings.Index(md, "**Walking**")
	lighting := strings.Index(md, "**Neon**")
	mood := strings.Index(md, "## mood")
	if !(subject < lighting && lighting < mood) {
		t.Errorf("unexpected section order:\n%s", md)
	}
}

func TestTemplateMarkdownEmpty(t *testing.T) {
	md, err := TemplateMarkdown(models.Template{Name: "Empty"}, nil)
	if err != nil {
		t.Fatalf("TemplateMarkdown: %v", err)
	}
	if !strings.Contains(md, "No options selected") {
		t.Errorf("expected empty-state text:\n%s", md)
	}
}
