// Package errors/handlers provides interface-specific error handling.
//
// ERROR FLOW:
// 1. Startup or program code produces an AppError
// 2. The handler for the current surface formats it
// 3. The handler logs it through the structured logger
package errors

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrorHandler provides interface-specific error handling
type ErrorHandler interface {
	HandleError(err error) error
	FormatError(err error) string
}

// CLIErrorHandler handles errors raised before the TUI starts
type CLIErrorHandler struct {
	Verbose bool
	Logger  *log.Logger
}

// NewCLIErrorHandler creates a new CLI error handler. A nil logger discards.
func NewCLIErrorHandler(verbose bool, logger *log.Logger) *CLIErrorHandler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &CLIErrorHandler{
		Verbose: verbose,
		Logger:  logger,
	}
}

// HandleError logs the error and returns it formatted for display
func (h *CLIErrorHandler) HandleError(err error) error {
	appErr := GetAppError(err)
	logAppError(h.Logger, appErr)
	return fmt.Errorf("%s", h.FormatError(appErr))
}

// FormatError formats an error for CLI display
func (h *CLIErrorHandler) FormatError(err error) string {
	appErr := GetAppError(err)

	message := appErr.Message
	if h.Verbose {
		if appErr.Details != "" {
			message += " (" + appErr.Details + ")"
		}
		if appErr.Cause != nil {
			message += ": " + appErr.Cause.Error()
		}
	}

	switch appErr.Severity {
	case SeverityCritical:
		return fmt.Sprintf("❌ CRITICAL: %s", message)
	case SeverityError:
		return fmt.Sprintf("❌ ERROR: %s", message)
	case SeverityWarning:
		return fmt.Sprintf("⚠️  WARNING: %s", message)
	case SeverityInfo:
		return fmt.Sprintf("ℹ️  INFO: %s", message)
	default:
		return fmt.Sprintf("❌ %s", message)
	}
}

// TUIErrorHandler handles errors for the terminal UI
type TUIErrorHandler struct {
	ShowDetails bool
	Logger      *log.Logger
}

// NewTUIErrorHandler creates a new TUI error handler. A nil logger discards.
func NewTUIErrorHandler(showDetails bool, logger *log.Logger) *TUIErrorHandler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &TUIErrorHandler{
		ShowDetails: showDetails,
		Logger:      logger,
	}
}

// HandleError logs the error to the log file and returns it
func (h *TUIErrorHandler) HandleError(err error) error {
	appErr := GetAppError(err)
	logAppError(h.Logger, appErr)
	return appErr
}

// FormatError formats an error for TUI display
func (h *TUIErrorHandler) FormatError(err error) string {
	appErr := GetAppError(err)

	message := appErr.Message
	if h.ShowDetails && appErr.Details != "" {
		message = fmt.Sprintf("%s\nDetails: %s", message, appErr.Details)
	}
	if h.ShowDetails && appErr.Cause != nil {
		message = fmt.Sprintf("%s\nCause: %v", message, appErr.Cause)
	}

	return message
}

// GetErrorStyle returns an icon and colour for the error severity
func (h *TUIErrorHandler) GetErrorStyle(err error) (string, string) {
	appErr := GetAppError(err)

	switch appErr.Severity {
	case SeverityCritical:
		return "🔥", "#ff0000"
	case SeverityError:
		return "❌", "#ff6b6b"
	case SeverityWarning:
		return "⚠️", "#feca57"
	case SeverityInfo:
		return "ℹ️", "#48cae4"
	default:
		return "❌", "#ff6b6b"
	}
}

// logAppError writes a structured entry at a level matching the severity
func logAppError(logger *log.Logger, appErr *AppError) {
	keyvals := []interface{}{
		"code", appErr.Code,
		"category", appErr.Category,
	}
	if appErr.Details != "" {
		keyvals = append(keyvals, "details", appErr.Details)
	}
	if appErr.Cause != nil {
		keyvals = append(keyvals, "cause", appErr.Cause)
	}
	if appErr.Context != nil {
		contextJSON, _ := json.Marshal(appErr.Context)
		keyvals = append(keyvals, "context", string(contextJSON))
	}

	switch appErr.Severity {
	case SeverityInfo:
		logger.Info(appErr.Message, keyvals...)
	case SeverityWarning:
		logger.Warn(appErr.Message, keyvals...)
	default:
		logger.Error(appErr.Message, keyvals...)
	}
}
