// Package errors provides unified error handling across vidgen.
//
// Core operations (selection, text sync, projection) are total and never
// fail. AppError covers the ambient edges: configuration, catalog loading,
// storage, clipboard and free-text validation.
//
// USAGE PATTERNS:
// - Create errors: use constructors like ValidationError(), NotFoundError()
// - Wrap errors: use Wrap() to add a code and message to an existing error
// - Handle errors: CLIErrorHandler at startup, TUIErrorHandler inside the program
// - Check types: IsAppError() and GetAppError() for type-safe handling
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrCodeMissingField  ErrorCode = "MISSING_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Service errors
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"

	// Storage errors
	ErrCodeStorageFailure ErrorCode = "STORAGE_FAILURE"
	ErrCodeFileNotFound   ErrorCode = "FILE_NOT_FOUND"
	ErrCodeFileCorrupted  ErrorCode = "FILE_CORRUPTED"

	// Configuration errors
	ErrCodeConfig         ErrorCode = "CONFIG_ERROR"
	ErrCodeCatalogInvalid ErrorCode = "CATALOG_INVALID"

	// System integration errors
	ErrCodeClipboard ErrorCode = "CLIPBOARD_UNAVAILABLE"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	SeverityInfo     ErrorSeverity = "info"
	SeverityWarning  ErrorSeverity = "warning"
	SeverityError    ErrorSeverity = "error"
	SeverityCritical ErrorSeverity = "critical"
)

// ErrorCategory represents the category of an error
type ErrorCategory string

const (
	CategoryValidation ErrorCategory = "validation"
	CategoryService    ErrorCategory = "service"
	CategoryStorage    ErrorCategory = "storage"
	CategoryConfig     ErrorCategory = "config"
	CategorySystem     ErrorCategory = "system"
)

// AppError represents a standardized application error
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Severity  ErrorSeverity          `json:"severity"`
	Category  ErrorCategory          `json:"category"`
	Cause     error                  `json:"-"`
	Context   map[string]interface{} `json:"context,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message string) *AppError {
	category, severity := categorizeError(code)
	return &AppError{
		Code:      code,
		Message:   message,
		Severity:  severity,
		Category:  category,
		Timestamp: time.Now(),
	}
}

// Wrap wraps an existing error with application error context
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := NewAppError(code, message)
	appErr.Cause = err
	return appErr
}

// categorizeError determines the category and severity based on error code
func categorizeError(code ErrorCode) (ErrorCategory, ErrorSeverity) {
	switch code {
	case ErrCodeValidation, ErrCodeInvalidInput, ErrCodeMissingField, ErrCodeInvalidFormat:
		return CategoryValidation, SeverityWarning

	case ErrCodeInternalError:
		return CategoryService, SeverityCritical
	case ErrCodeNotFound:
		return CategoryService, SeverityInfo

	case ErrCodeStorageFailure, ErrCodeFileCorrupted:
		return CategoryStorage, SeverityError
	case ErrCodeFileNotFound:
		return CategoryStorage, SeverityInfo

	case ErrCodeConfig, ErrCodeCatalogInvalid:
		return CategoryConfig, SeverityCritical

	case ErrCodeClipboard:
		return CategorySystem, SeverityWarning

	default:
		return CategorySystem, SeverityError
	}
}

// IsAppError checks if an error is, or wraps, an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// GetAppError extracts an AppError from an error, or converts it to one
func GetAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrCodeInternalError, "Internal error occurred")
}

// Common error constructors for frequently used errors
func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message)
}

func NotFoundError(resource string) *AppError {
	return NewAppError(ErrCodeNotFound, fmt.Sprintf("%s not found", resource))
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternalError, message)
}

func StorageError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeStorageFailure, fmt.Sprintf("Storage operation failed: %s", operation))
}

func CorruptedError(resource string, err error) *AppError {
	return Wrap(err, ErrCodeFileCorrupted, fmt.Sprintf("%s is corrupted", resource))
}

func ConfigError(message string, err error) *AppError {
	return Wrap(err, ErrCodeConfig, message)
}

func CatalogError(path string, err error) *AppError {
	return Wrap(err, ErrCodeCatalogInvalid, "Invalid category catalog").WithContext("path", path)
}

func ClipboardError(err error) *AppError {
	return Wrap(err, ErrCodeClipboard, "Clipboard unavailable")
}
