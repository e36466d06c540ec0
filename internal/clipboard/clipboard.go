// Package clipboard copies prompt text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/atotto/clipboard"
)

// SuccessMessage is the toast shown after a successful copy
const SuccessMessage = "Copied to clipboard!"

// Writer writes text to a clipboard
type Writer interface {
	WriteAll(text string) error
}

// System is the OS clipboard
type System struct{}

// WriteAll copies text to the OS clipboard
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return NewClipboardError()
	}
	return clipboard.WriteAll(text)
}

// ClipboardError represents an error when no clipboard utility is available
type ClipboardError struct {
	OS      string
	Message string
}

func (e *ClipboardError) Error() string {
	return e.Message
}

// NewClipboardError creates a new ClipboardError with installation instructions
func NewClipboardError() *ClipboardError {
	return &ClipboardError{
		OS:      runtime.GOOS,
		Message: "no clipboard utility found. " + GetInstallInstructions(),
	}
}

// CopyWithFallback writes text through w and returns a status message
func CopyWithFallback(w Writer, text string) (string, error) {
	if w == nil {
		w = System{}
	}
	if err := w.WriteAll(text); err != nil {
		var clipErr *ClipboardError
		if errors.As(err, &clipErr) {
			return "", err
		}
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return SuccessMessage, nil
}

// IsClipboardAvailable reports whether the platform has a usable clipboard
func IsClipboardAvailable() bool {
	return !clipboard.Unsupported
}

// GetInstallInstructions returns installation instructions for clipboard utilities
func GetInstallInstructions() string {
	switch runtime.GOOS {
	case "linux":
		return "Install a clipboard utility:\n" +
			"  • Ubuntu/Debian: sudo apt install xclip\n" +
			"  • Fedora/RHEL: sudo dnf install xclip\n" +
			"  • Arch: sudo pacman -S xclip\n" +
			"  • For Wayland: install wl-clipboard"
	case "darwin":
		return "pbcopy should be available by default on macOS"
	case "windows":
		return "clip should be available by default on Windows"
	default:
		return fmt.Sprintf("Clipboard not supported on %s", runtime.GOOS)
	}
}

// Memory records writes instead of touching the OS clipboard
type Memory struct {
	Text string
	Err  error
}

// WriteAll stores text, or returns the configured error
func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}
