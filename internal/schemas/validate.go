// Package schemas provides JSON Schema validation for requirements files.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-screener/internal/types"
)

//go:embed requirements.schema.json
var requirementsSchema []byte

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
	sb.WriteString("requirements validation failed:")
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", fe.Field, fe.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load requirements schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load requirements schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateRequirements validates a requirements JSON document against the
// embedded schema.
func ValidateRequirements(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(requirementsSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Message: "schema validation could not run", Cause: err}
	}

	if !result.Valid() {
		ve := &ValidationError{}
		for _, desc := range result.Errors() {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return ve
	}
	return nil
}

// LoadRequirements reads, validates and parses a requirements JSON file.
func LoadRequirements(path string) (*types.MatchRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements file %s: %w", path, err)
	}

	if err := ValidateRequirements(data); err != nil {
		return nil, err
	}

	var req types.MatchRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse requirements JSON: %w", err)
	}
	return &req, nil
}
