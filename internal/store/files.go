package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps copies of matching resumes on disk, keyed by filename,
// for the download endpoint to serve.
type FileStore struct {
	dir string
}

// NewFileStore creates the uploads directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Save stores a resume's bytes under its filename.
func (s *FileStore) Save(filename string, data []byte) error {
	path, err := s.resolve(filename)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to store resume %s: %w", filename, err)
	}
	return nil
}

// Read returns the stored bytes for filename. Returns os.ErrNotExist
// (wrapped) when the file was never stored.
func (s *FileStore) Read(filename string) ([]byte, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored resume %s: %w", filename, err)
	}
	return data, nil
}

// resolve maps a filename key to its on-disk path, rejecting names that
// would escape the uploads directory.
func (s *FileStore) resolve(filename string) (string, error) {
	if filename == "" {
		return "", &InvalidNameError{Name: filename, Reason: "empty filename"}
	}
	if strings.ContainsAny(filename, `/\`) || filename != filepath.Base(filename) || filename == ".." || filename == "." {
		return "", &InvalidNameError{Name: filename, Reason: "path separators are not allowed"}
	}
	return filepath.Join(s.dir, filename), nil
}
