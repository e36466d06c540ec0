package templates

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dpshade/vidgen/internal/models"
	"github.com/dpshade/vidgen/internal/storage"
)

func sampleSelection() models.Selection {
	return models.Selection{
		"style":   {{ID: "cinematic", Label: "Cinematic", Value: "cinematic film look"}},
		"subject": {{ID: "walking", Label: "Walking", Value: "a person walking"}},
		"camera":  {},
	}
}

func TestSaveAndReload(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := New(kv, nil)

	tmpl, ok := s.Save("  Evening walk  ", sampleSelection(), "cinematic film look, a person walking")
	if !ok {
		t.Fatal("expected save to succeed")
	}
	if tmpl.Name != "Evening walk" {
		t.Errorf("name should be trimmed, got %q", tmpl.Name)
	}
	if len(tmpl.Tags) != 1 || tmpl.Tags[0] != DefaultTag {
		t.Errorf("unexpected tags %v", tmpl.Tags)
	}
	if tmpl.ID == "" || tmpl.CreatedAt == 0 {
		t.Errorf("id and timestamp should be set: %+v", tmpl)
	}
	if kv.Writes != 1 {
		t.Errorf("expected one write, got %d", kv.Writes)
	}

	reloaded := New(kv, nil)
	if reloaded.Len() != 1 {
		t.Fatalf("expected 1 template after reload, got %d", reloaded.Len())
	}
	sel, ok := reloaded.Load(tmpl.ID)
	if !ok {
		t.Fatal("template not found after reload")
	}
	if !sel.Equal(sampleSelection()) {
		t.Errorf("selection round-trip mismatch: %v", sel)
	}
}

func TestSaveBlankNameIsNoop(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := New(kv, nil)

	for _, name := range []string{"", "   ", "\t\n"} {
		if _, ok := s.Save(name, sampleSelection(), "x"); ok {
			t.Errorf("save with %q should be a no-op", name)
		}
	}
	if s.Len() != 0 || kv.Writes != 0 {
		t.Errorf("blank names must not store or write: len=%d writes=%d", s.Len(), kv.Writes)
	}
}

func TestMostRecentFirst(t *testing.T) {
	s := New(storage.NewMemoryKV(), nil)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	first, _ := s.Save("first", sampleSelection(), "")
	s.now = func() time.Time { return base.Add(time.Minute) }
	second, _ := s.Save("second", sampleSelection(), "")

	list := s.List()
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Errorf("expected [second, first], got %v", list)
	}
	if !list[0].Created().Equal(base.Add(time.Minute)) {
		t.Errorf("unexpected created time %v", list[0].Created())
	}
}

func TestExcerptTruncatedToRunes(t *testing.T) {
	s := New(storage.NewMemoryKV(), nil)
	text := strings.Repeat("é", 150)
	tmpl, _ := s.Save("long", sampleSelection(), text)
	if got := len([]rune(tmpl.Excerpt)); got != excerptLength {
		t.Errorf("expected %d runes, got %d", excerptLength, got)
	}
}

func TestDelete(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := New(kv, nil)
	a, _ := s.Save("a", sampleSelection(), "")
	b, _ := s.Save("b", sampleSelection(), "")

	if !s.Delete(a.ID) {
		t.Fatal("expected delete to succeed")
	}
	if s.Delete("missing") {
		t.Error("deleting an unknown id should report false")
	}
	if _, ok := s.Get(a.ID); ok {
		t.Error("deleted template still present")
	}

	reloaded := New(kv, nil)
	list := reloaded.List()
	if len(list) != 1 || list[0].ID != b.ID {
		t.Errorf("expected only b after reload, got %v", list)
	}
}

func TestMalformedDataLoadsEmpty(t *testing.T) {
	kv := storage.NewMemoryKV()
	if err := kv.Set(StorageKey, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	s := New(kv, nil)
	if s.Len() != 0 {
		t.Errorf("expected empty list, got %d", s.Len())
	}
	if s.LastError() == nil {
		t.Error("malformed data should be reported through LastError")
	}

	// Saving afterwards replaces the corrupt value
	if _, ok := s.Save("fresh", sampleSelection(), ""); !ok {
		t.Fatal("save failed")
	}
	if s.LastError() != nil {
		t.Errorf("successful write should clear LastError, got %v", s.LastError())
	}
	if New(kv, nil).Len() != 1 {
		t.Error("expected the new list to persist")
	}
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	kv := storage.NewMemoryKV()
	kv.FailSet = true
	s := New(kv, nil)

	tmpl, ok := s.Save("offline", sampleSelection(), "")
	if !ok {
		t.Fatal("save should still succeed in memory")
	}
	if !errors.Is(s.LastError(), storage.ErrInjected) {
		t.Errorf("expected injected error, got %v", s.LastError())
	}
	if _, ok := s.Get(tmpl.ID); !ok {
		t.Error("in-memory list should keep the template")
	}
}

func TestLoadReturnsCopy(t *testing.T) {
	s := New(storage.NewMemoryKV(), nil)
	tmpl, _ := s.Save("copy", sampleSelection(), "")

	sel, _ := s.Load(tmpl.ID)
	sel["style"] = nil
	again, _ := s.Load(tmpl.ID)
	if len(again["style"]) != 1 {
		t.Error("mutating a loaded selection must not affect the store")
	}
}

func TestSearch(t *testing.T) {
	s := New(storage.NewMemoryKV(), nil)
	s.Save("Neon city night", sampleSelection(), "neon lights, city street")
	s.Save("Forest walk", sampleSelection(), "a person walking, forest")

	if got := s.Search(""); len(got) != 2 {
		t.Errorf("empty query should list all, got %d", len(got))
	}
	got := s.Search("forest")
	if len(got) == 0 || got[0].Name != "Forest walk" {
		t.Errorf("expected Forest walk first, got %v", got)
	}
	if got := s.Search("zzzz"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}
