// Package schemas provides JSON Schema validation for parsed resume data
// and site content files.
package schemas

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/daniel/portfolio-site/internal/resume"
)

// ResolveSchemaPath attempts to find a schema file by trying multiple
// common path resolutions: relative to the working directory, then one and
// two levels up. This keeps validation usable from package test contexts,
// which run from their own directories. Returns empty string if not found.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}
	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateValue validates any Go value against a JSON Schema file by
// marshaling it to JSON first.
func ValidateValue(schemaPath string, value any) error {
	resolved := ResolveSchemaPath(schemaPath)
	if resolved == "" {
		return &SchemaLoadError{Path: schemaPath, Message: "schema file not found"}
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for validation: %w", err)
	}

	return ValidateJSONBytes(resolved, data)
}

// ValidateJSONBytes validates raw JSON bytes against a JSON Schema file.
func ValidateJSONBytes(schemaPath string, data []byte) error {
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(schemaPath))
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "schema validation could not run", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}

// ResumeSchemaPath is the schema for full ParsedResume payloads, relative
// to the repository root.
const ResumeSchemaPath = "schemas/parsed_resume.schema.json"

// ValidateResume checks a ParsedResume against the structural schema and
// the date-ordering rules JSON Schema cannot express.
func ValidateResume(parsed *resume.ParsedResume) error {
	if err := ValidateValue(ResumeSchemaPath, parsed); err != nil {
		return err
	}

	ve := &ValidationError{}
	for i, exp := range parsed.Experience {
		if exp.EndDate != nil && exp.EndDate.Before(exp.StartDate) {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   fmt.Sprintf("experience.%d.end_date", i),
				Message: "end date must not be before start date",
			})
		}
	}
	for i, edu := range parsed.Education {
		if edu.EndDate != nil && edu.EndDate.Before(edu.StartDate) {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   fmt.Sprintf("education.%d.end_date", i),
				Message: "end date must not be before start date",
			})
		}
	}
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
