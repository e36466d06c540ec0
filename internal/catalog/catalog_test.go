package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	want := []string{Camera, Subject, Style, Lighting, Environment, Quality}
	got := c.IDs()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	style, ok := c.Category(Style)
	if !ok {
		t.Fatal("style category missing")
	}
	if style.AllowMultiple {
		t.Error("style should be single-select")
	}
	env, _ := c.Category(Environment)
	if env.AllowMultiple {
		t.Error("environment should be single-select")
	}

	opt, ok := c.Option(Camera, "handheld")
	if !ok || opt.Value != "handheld camera movement" {
		t.Errorf("unexpected handheld option: %+v (found=%v)", opt, ok)
	}
	if _, ok := c.Option("nope", "zoom_in"); ok {
		t.Error("unknown category should not resolve options")
	}
}

func TestEmptySelection(t *testing.T) {
	sel := Default().EmptySelection()
	if len(sel) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(sel))
	}
	for id, opts := range sel {
		if opts == nil || len(opts) != 0 {
			t.Errorf("category %s should hold an empty, non-nil sequence", id)
		}
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	doc := `
categories:
  - id: camera
    title: Camera
    options:
      - {id: a, label: A, value: a}
  - id: camera
    title: Camera again
`
	if _, err := Parse([]byte(doc)); err == nil || !strings.Contains(err.Error(), "duplicate category") {
		t.Fatalf("expected duplicate category error, got %v", err)
	}

	doc = `
categories:
  - id: camera
    title: Camera
    options:
      - {id: a, label: A, value: a}
      - {id: a, label: B, value: b}
`
	if _, err := Parse([]byte(doc)); err == nil || !strings.Contains(err.Error(), "duplicate option") {
		t.Fatalf("expected duplicate option error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `
categories:
  - id: style
    title: Looks
    description: Visual look
    allow_multiple: false
    options:
      - {id: noir, label: Noir, value: film noir}
  - id: quality
    title: Quality
    allow_multiple: true
    options:
      - {id: sharp, label: Sharp, value: tack sharp}
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 categories, got %d", c.Len())
	}
	quality, _ := c.Category(Quality)
	if !quality.AllowMultiple {
		t.Error("allow_multiple should be decoded")
	}
	if opt, ok := c.Option(Style, "noir"); !ok || opt.Value != "film noir" {
		t.Errorf("unexpected option %+v", opt)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Parse([]byte("categories: []")); err == nil {
		t.Error("expected error for empty catalog")
	}
}

func TestCustomOption(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	opt := CustomOption("  slow motion  ", now)

	if opt.ID != "custom_1700000000123" {
		t.Errorf("unexpected id %q", opt.ID)
	}
	if opt.Label != "slow motion" || opt.Value != "slow motion" {
		t.Errorf("text should be trimmed, got label=%q value=%q", opt.Label, opt.Value)
	}
	if !opt.IsCustom {
		t.Error("custom option should be flagged")
	}
}

func TestCategorySingular(t *testing.T) {
	c := Default()
	cam, _ := c.Category(Camera)
	if got := cam.Singular(); got != "camera motion" {
		t.Errorf("expected 'camera motion', got %q", got)
	}
	light, _ := c.Category(Lighting)
	if got := light.Singular(); got != "lighting" {
		t.Errorf("expected 'lighting', got %q", got)
	}
}
