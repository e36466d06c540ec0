package clipboard

import (
	"errors"
	"runtime"
	"strings"
	"testing"
)

func TestClipboardError(t *testing.T) {
	err := NewClipboardError()

	if err.OS != runtime.GOOS {
		t.Errorf("Expected OS to be %s, got %s", runtime.GOOS, err.OS)
	}
	if err.Error() == "" {
		t.Error("Error message should not be empty")
	}

	var clipErr *ClipboardError
	if !errors.As(err, &clipErr) {
		t.Error("Should be able to unwrap as ClipboardError")
	}
}

func TestGetInstallInstructions(t *testing.T) {
	instructions := GetInstallInstructions()
	if instructions == "" {
		t.Error("Install instructions should not be empty")
	}

	switch runtime.GOOS {
	case "linux":
		if !strings.Contains(instructions, "xclip") {
			t.Error("Linux instructions should mention xclip")
		}
	case "darwin":
		if !strings.Contains(instructions, "pbcopy") {
			t.Error("macOS instructions should mention pbcopy")
		}
	}
}

func TestCopyWithFallbackSuccess(t *testing.T) {
	mem := &Memory{}
	msg, err := CopyWithFallback(mem, "cinematic, a person walking")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != SuccessMessage {
		t.Errorf("Expected %q, got %q", SuccessMessage, msg)
	}
	if mem.Text != "cinematic, a person walking" {
		t.Errorf("clipboard holds %q", mem.Text)
	}
}

func TestCopyWithFallbackErrors(t *testing.T) {
	mem := &Memory{Err: errors.New("xclip exited 1")}
	msg, err := CopyWithFallback(mem, "text")
	if err == nil || msg != "" {
		t.Fatalf("expected failure, got %q %v", msg, err)
	}
	if !strings.Contains(err.Error(), "failed to copy to clipboard") {
		t.Errorf("generic failures should be wrapped: %v", err)
	}

	mem.Err = NewClipboardError()
	_, err = CopyWithFallback(mem, "text")
	var clipErr *ClipboardError
	if !errors.As(err, &clipErr) {
		t.Errorf("missing-utility errors should pass through unwrapped: %v", err)
	}
}
