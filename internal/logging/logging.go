// Package logging builds the structured file logger. The TUI owns the
// terminal, so log output goes to <dir>/logs/vidgen.log.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// New opens the log file under baseDir and returns a logger writing to it.
// The returned closer releases the file.
func New(baseDir, level string) (*log.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	logDir := filepath.Join(baseDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(logDir, "vidgen.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewWriter(f, lvl), f, nil
}

// NewWriter returns a logfmt logger writing to w
func NewWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "vidgen",
		Formatter:       log.LogfmtFormatter,
	})
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OrDiscard returns l, or a discard logger when l is nil
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// ParseLevel accepts debug, info, warn, error (case-insensitive); empty means info
func ParseLevel(level string) (log.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q", level)
	}
	return lvl, nil
}
