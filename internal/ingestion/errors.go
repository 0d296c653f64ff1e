package ingestion

import "fmt"

// UnsupportedTypeError indicates a resume file with an extension the
// extractor does not handle.
type UnsupportedTypeError struct {
	Filename string
	Ext      string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q for %s (expected .pdf, .docx, .doc or .txt)", e.Ext, e.Filename)
}

// ExtractionError indicates a file that could not be parsed by its format reader.
type ExtractionError struct {
	Filename string
	Message  string
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract text from %s: %s: %v", e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to extract text from %s: %s", e.Filename, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
