package validation

import (
	"strings"
	"testing"

	"github.com/dpshade/vidgen/internal/errors"
)

func TestSaveTemplateSchema(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		input interface{}
		valid bool
		code  string
	}{
		{name: "plain", input: "Evening walk", valid: true},
		{name: "missing", input: nil, valid: false, code: "REQUIRED_FIELD_MISSING"},
		{name: "blank", input: "   ", valid: false, code: "REQUIRED_FIELD_MISSING"},
		{name: "not text", input: 42, valid: false, code: "INVALID_TYPE"},
		{name: "multibyte at limit", input: strings.Repeat("é", MaxTemplateNameLength), valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := map[string]interface{}{}
			if tt.input != nil {
				data["name"] = tt.input
			}
			result := v.Validate(SchemaSaveTemplate, data)
			if result.Valid != tt.valid {
				t.Fatalf("Valid = %v, want %v (errors %v)", result.Valid, tt.valid, result.Errors)
			}
			if !tt.valid && result.Errors[0].Code != tt.code {
				t.Errorf("code = %s, want %s", result.Errors[0].Code, tt.code)
			}
		})
	}
}

func TestSaveTemplateTrims(t *testing.T) {
	result := NewValidator().Validate(SchemaSaveTemplate, map[string]interface{}{"name": "  Night city  "})
	if !result.Valid {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if got := result.String("name"); got != "Night city" {
		t.Errorf("expected trimmed name, got %q", got)
	}
}

func TestCustomOptionSchema(t *testing.T) {
	v := NewValidator()

	ok := v.Validate(SchemaCustomOption, map[string]interface{}{"category": "lighting", "text": " candle light "})
	if !ok.Valid {
		t.Fatalf("unexpected errors: %v", ok.Errors)
	}
	if ok.String("text") != "candle light" {
		t.Errorf("text should be trimmed, got %q", ok.String("text"))
	}

	bad := v.Validate(SchemaCustomOption, map[string]interface{}{"category": "bad id!", "text": ""})
	if bad.Valid {
		t.Fatal("expected validation failure")
	}
	if len(bad.Errors) != 2 {
		t.Errorf("expected two errors, got %v", bad.Errors)
	}
}

func TestUnknownSchema(t *testing.T) {
	result := NewValidator().Validate("nope", nil)
	if result.Valid || result.Errors[0].Code != "SCHEMA_NOT_FOUND" {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestToAppError(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(SchemaSaveTemplate, map[string]interface{}{"name": "ok"}).ToAppError(); err != nil {
		t.Errorf("valid result should not produce an error, got %v", err)
	}

	appErr := v.Validate(SchemaSaveTemplate, map[string]interface{}{}).ToAppError()
	if appErr == nil {
		t.Fatal("expected AppError")
	}
	if appErr.Code != errors.ErrCodeValidation || appErr.Category != errors.CategoryValidation {
		t.Errorf("unexpected code/category %s/%s", appErr.Code, appErr.Category)
	}
	if !strings.Contains(appErr.Details, "name") {
		t.Errorf("details should mention the field: %s", appErr.Details)
	}
	if v.Validate(SchemaSaveTemplate, map[string]interface{}{}).GetValidatedData() != nil {
		t.Error("invalid results should not expose data")
	}
}

func TestSaveTemplateTruncatesLongNames(t *testing.T) {
	v := NewValidator()

	long := strings.Repeat("n", MaxTemplateNameLength+1)
	result := v.Validate(SchemaSaveTemplate, map[string]interface{}{"name": long})
	if !result.Valid {
		t.Fatalf("long names should be cut, not rejected: %v", result.Errors)
	}
	if got := result.String("name"); got != long[:MaxTemplateNameLength] {
		t.Errorf("expected %d runes, got %d", MaxTemplateNameLength, len([]rune(got)))
	}

	// The cut never leaves trailing whitespace
	spaced := strings.Repeat("a", MaxTemplateNameLength-1) + " tail"
	if got := v.Validate(SchemaSaveTemplate, map[string]interface{}{"name": spaced}).String("name"); got != strings.Repeat("a", MaxTemplateNameLength-1) {
		t.Errorf("expected trimmed cut, got %q", got)
	}
}

func TestCustomOptionTooLong(t *testing.T) {
	result := NewValidator().Validate(SchemaCustomOption, map[string]interface{}{
		"category": "lighting",
		"text":     strings.Repeat("x", MaxCustomOptionLength+1),
	})
	if result.Valid {
		t.Fatal("expected overlong custom text to be rejected")
	}
	if result.Errors[0].Code != "MAX_LENGTH_VIOLATION" {
		t.Errorf("code = %s, want MAX_LENGTH_VIOLATION", result.Errors[0].Code)
	}
}
