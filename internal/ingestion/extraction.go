// Package ingestion extracts plain text from uploaded resume files.
package ingestion

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// SupportedExt reports whether the extractor handles files with this name's extension.
func SupportedExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".doc", ".txt":
		return true
	}
	return false
}

// ExtractText extracts the text of a resume from its raw bytes, dispatching
// on the file extension. Output is lowercased so downstream keyword and
// experience scans are case-insensitive.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return strings.ToLower(string(data)), nil
	case ".pdf":
		text, err := extractPDFText(filename, data)
		if err != nil {
			return "", err
		}
		return strings.ToLower(text), nil
	case ".docx", ".doc":
		text, err := extractDocxText(filename, data)
		if err != nil {
			return "", err
		}
		return strings.ToLower(text), nil
	default:
		return "", &UnsupportedTypeError{Filename: filename, Ext: filepath.Ext(filename)}
	}
}

// ExtractFile reads a resume from disk and extracts its text.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Filename: filepath.Base(path), Message: "failed to read file", Cause: err}
	}
	return ExtractText(filepath.Base(path), data)
}

func extractPDFText(filename string, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Filename: filename, Message: "failed to open PDF", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages rather than dropping the whole resume.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocxText(filename string, data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Filename: filename, Message: "failed to parse DOCX", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}
