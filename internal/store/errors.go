package store

import "fmt"

// InvalidNameError indicates a filename key that cannot be used as a
// storage key, e.g. one attempting path traversal.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid resume filename %q: %s", e.Name, e.Reason)
}
