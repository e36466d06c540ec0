// Package validation checks free-text input before it reaches the stores.
//
// Only two values in vidgen are typed by the user rather than picked from
// the catalog: template names and custom option text. Each has a schema
// here; the service turns failures into no-ops and logs the AppError.
//
// USAGE PATTERNS:
// - Register schemas: use RegisterSchema() to add new validation patterns
// - Validate data: use Validate() with schema name and parameter map
// - Handle results: check ValidationResult.Valid, then GetValidatedData()
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dpshade/vidgen/internal/errors"
)

// Schema names
const (
	SchemaSaveTemplate = "save_template"
	SchemaCustomOption = "custom_option"
)

// Length limits for free-text fields, in characters. Longer template names
// are cut to the limit; longer custom options are rejected.
const (
	MaxTemplateNameLength = 80
	MaxCustomOptionLength = 200
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// FieldValidator provides validation rules for individual fields
type FieldValidator struct {
	Name      string
	Required  bool
	Type      string
	MaxLength int
	Trim      bool // Trim surrounding whitespace before checking
	Truncate  bool // Cut to MaxLength instead of failing
	Pattern   *regexp.Regexp
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	Valid  bool                   `json:"valid"`
	Errors []ValidationError      `json:"errors,omitempty"`
	Data   map[string]interface{} `json:"data,omitempty"`
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Schema represents a validation schema
type Schema struct {
	Name   string
	Fields map[string]FieldValidator
}

// Validator provides centralized validation functionality
type Validator struct {
	schemas map[string]*Schema
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := &Validator{
		schemas: make(map[string]*Schema),
	}
	v.registerBuiltinSchemas()
	return v
}

// RegisterSchema registers a validation schema
func (v *Validator) RegisterSchema(schema *Schema) {
	v.schemas[schema.Name] = schema
}

// Validate validates data against a schema
func (v *Validator) Validate(schemaName string, data map[string]interface{}) *ValidationResult {
	schema, exists := v.schemas[schemaName]
	if !exists {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{{
				Field:   "schema",
				Code:    "SCHEMA_NOT_FOUND",
				Message: fmt.Sprintf("Validation schema '%s' not found", schemaName),
			}},
		}
	}

	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
		Data:   make(map[string]interface{}),
	}

	for fieldName, validator := range schema.Fields {
		v.validateField(fieldName, validator, data, result)
	}

	return result
}

func (result *ValidationResult) fail(field, code, message string, value interface{}) {
	result.Valid = false
	result.Errors = append(result.Errors, ValidationError{
		Field:   field,
		Code:    code,
		Message: message,
		Value:   value,
	})
}

// validateField validates a single field
func (v *Validator) validateField(fieldName string, validator FieldValidator, data map[string]interface{}, result *ValidationResult) {
	value, exists := data[fieldName]
	if str, ok := value.(string); ok && validator.Trim {
		value = strings.TrimSpace(str)
	}

	if validator.Required && (!exists || value == nil || value == "") {
		result.fail(fieldName, "REQUIRED_FIELD_MISSING", fmt.Sprintf("Field '%s' is required", fieldName), nil)
		return
	}

	if !exists || value == nil {
		return
	}

	convertedValue, err := v.validateAndConvertType(fieldName, validator.Type, value)
	if err != nil {
		result.fail(fieldName, "INVALID_TYPE", err.Error(), value)
		return
	}

	if strValue, ok := convertedValue.(string); ok {
		if validator.MaxLength > 0 && utf8.RuneCountInString(strValue) > validator.MaxLength {
			if !validator.Truncate {
				result.fail(fieldName, "MAX_LENGTH_VIOLATION",
					fmt.Sprintf("Field '%s' must be at most %d characters long", fieldName, validator.MaxLength), strValue)
				return
			}
			strValue = strings.TrimSpace(string([]rune(strValue)[:validator.MaxLength]))
			convertedValue = strValue
		}
		if validator.Pattern != nil && !validator.Pattern.MatchString(strValue) {
			result.fail(fieldName, "PATTERN_MISMATCH",
				fmt.Sprintf("Field '%s' does not match required pattern", fieldName), strValue)
		}
	}

	result.Data[fieldName] = convertedValue
}

// validateAndConvertType validates and converts value to the specified type
func (v *Validator) validateAndConvertType(fieldName, expectedType string, value interface{}) (interface{}, error) {
	switch expectedType {
	case "string":
		if str, ok := value.(string); ok {
			return str, nil
		}
		return nil, fmt.Errorf("field '%s' must be text", fieldName)

	default:
		return value, nil
	}
}

// registerBuiltinSchemas registers the free-text schemas
func (v *Validator) registerBuiltinSchemas() {
	v.RegisterSchema(&Schema{
		Name: SchemaSaveTemplate,
		Fields: map[string]FieldValidator{
			"name": {
				Name:      "name",
				Type:      "string",
				Required:  true,
				Trim:      true,
				MaxLength: MaxTemplateNameLength,
				Truncate:  true,
			},
		},
	})

	v.RegisterSchema(&Schema{
		Name: SchemaCustomOption,
		Fields: map[string]FieldValidator{
			"category": {
				Name:      "category",
				Type:      "string",
				Required:  true,
				MaxLength: 100,
				Pattern:   identifierPattern,
			},
			"text": {
				Name:      "text",
				Type:      "string",
				Required:  true,
				Trim:      true,
				MaxLength: MaxCustomOptionLength,
			},
		},
	})
}

// ToAppError converts validation result to AppError
func (result *ValidationResult) ToAppError() *errors.AppError {
	if result.Valid {
		return nil
	}

	if len(result.Errors) == 0 {
		return errors.ValidationError("Validation failed")
	}

	// The first error is the primary message
	appErr := errors.ValidationError(result.Errors[0].Message)

	var details []string
	for _, validationErr := range result.Errors {
		details = append(details, fmt.Sprintf("%s: %s", validationErr.Field, validationErr.Message))
	}
	appErr.WithDetails(strings.Join(details, "; "))
	appErr.WithContext("validation_errors", result.Errors)

	return appErr
}

// GetValidatedData returns the validated and converted data
func (result *ValidationResult) GetValidatedData() map[string]interface{} {
	if !result.Valid {
		return nil
	}
	return result.Data
}

// String returns the validated string field, or ""
func (result *ValidationResult) String(field string) string {
	s, _ := result.GetValidatedData()[field].(string)
	return s
}
