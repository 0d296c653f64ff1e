package filter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-screener/internal/ingestion"
)

// listResumeFiles reads every supported resume file in dir. Directory
// entries come back sorted by name, so batch runs are deterministic.
func listResumeFiles(dir string) ([]Resume, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory %s: %w", dir, err)
	}

	var resumes []Resume
	for _, entry := range entries {
		if entry.IsDir() || !ingestion.SupportedExt(entry.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read resume %s: %w", entry.Name(), err)
		}
		resumes = append(resumes, Resume{Name: entry.Name(), Data: data})
	}
	return resumes, nil
}
