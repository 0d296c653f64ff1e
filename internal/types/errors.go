package types

import "fmt"

// SchemaError represents structurally malformed match data, such as a
// found_sections payload whose keys or snippet lists have the wrong shape.
type SchemaError struct {
	Field   string
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema error in %s: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("schema error in %s: %s", e.Field, e.Message)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}
