package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()

	if _, ok, err := kv.Get("vidgen_templates"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set("vidgen_templates", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := kv.Get("vidgen_templates")
	if err != nil || !ok {
		t.Fatalf("Get after Set: ok=%v err=%v", ok, err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Errorf("unexpected value %q", got)
	}

	if err := kv.Set("vidgen_templates", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = kv.Get("vidgen_templates")
	if string(got) != `[]` {
		t.Errorf("overwrite should replace the value, got %q", got)
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()
	exerciseKV(t, kv)

	kv.FailSet = true
	if err := kv.Set("k", []byte("v")); err != ErrInjected {
		t.Errorf("expected injected failure, got %v", err)
	}
}

func TestFileKV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	kv, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	exerciseKV(t, kv)

	if _, err := os.Stat(filepath.Join(dir, "vidgen_templates.json")); err != nil {
		t.Errorf("expected key file on disk: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "vidgen_templates.json.tmp")); !os.IsNotExist(err) {
		t.Error("temp file should be renamed away")
	}

	if err := kv.Set("../escape", []byte("x")); err == nil {
		t.Error("path-like keys should be rejected")
	}
}

func TestSQLiteKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vidgen.db")
	kv, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("NewSQLiteKV: %v", err)
	}
	exerciseKV(t, kv)

	// Reopen to confirm persistence
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	kv2, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = kv2.Close() }()
	got, ok, err := kv2.Get("vidgen_templates")
	if err != nil || !ok || string(got) != `[]` {
		t.Errorf("expected persisted value, got %q ok=%v err=%v", got, ok, err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	for _, backend := range []string{"", BackendFile, BackendSQLite, BackendMemory} {
		kv, err := Open(backend, dir)
		if err != nil {
			t.Fatalf("Open(%q): %v", backend, err)
		}
		_ = kv.Close()
	}
	if _, err := Open("redis", dir); err == nil {
		t.Error("unknown backend should fail")
	}
}
