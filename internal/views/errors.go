package views

import "fmt"

// MissingContextError indicates the matching context handed to the view is
// absent or lacks its required top-level fields. Rendering is aborted rather
// than emitting a partially-broken page.
type MissingContextError struct {
	Message string
}

func (e *MissingContextError) Error() string {
	return fmt.Sprintf("missing matching context: %s", e.Message)
}

// MissingFieldError indicates a resume record lacks a required field.
// Index is the record's position in the input sequence.
type MissingFieldError struct {
	Field string
	Index int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("resume result %d is missing required field %q", e.Index, e.Field)
}

// RenderError wraps a failure in the underlying template engine.
type RenderError struct {
	Template string
	Cause    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render template %s: %v", e.Template, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
