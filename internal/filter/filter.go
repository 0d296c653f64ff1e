// Package filter implements the deterministic resume matching pipeline:
// keyword scanning with context capture, experience extraction and
// weighted scoring against a set of job requirements.
package filter

import (
	"context"
	"log"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/types"
)

// maxConcurrentExtractions bounds parallel text extraction; PDF parsing is
// the expensive step and uploads arrive in batches.
const maxConcurrentExtractions = 4

// Requirements describes what a matching run screens resumes against.
type Requirements struct {
	JobDescription string
	Mandatory      []string
	Optional       []string
	MinExperience  float64
}

// Resume is one uploaded resume: its display name and raw bytes.
type Resume struct {
	Name string
	Data []byte
}

// Analysis is the outcome of scanning a single resume's text.
type Analysis struct {
	MissingMandatory []string
	KeywordCounts    map[string]int
	FoundSections    types.FoundSections
	Experience       *float64
	Score            float64
}

// Filter screens resumes against a fixed set of requirements.
// A Filter is immutable after construction and safe for concurrent use.
type Filter struct {
	requirements Requirements
	mandatory    []string
	optional     []string
}

// New creates a Filter. Keywords are normalized to lower case to match the
// lowercased text the extractor produces.
func New(req Requirements) *Filter {
	f := &Filter{requirements: req}
	for _, kw := range req.Mandatory {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			f.mandatory = append(f.mandatory, kw)
		}
	}
	for _, kw := range req.Optional {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			f.optional = append(f.optional, kw)
		}
	}
	return f
}

// Requirements returns the requirements the filter was built with.
func (f *Filter) Requirements() Requirements {
	return f.requirements
}

// AnalyzeText scans one resume's extracted text and returns keyword counts,
// captured context, extracted experience and the weighted score.
func (f *Filter) AnalyzeText(text string) Analysis {
	a := Analysis{
		KeywordCounts: make(map[string]int),
		FoundSections: types.FoundSections{},
	}

	for _, kw := range f.mandatory {
		count, contexts := scanKeyword(text, kw)
		if count == 0 {
			a.MissingMandatory = append(a.MissingMandatory, kw)
		}
		a.KeywordCounts[kw] = count
		for _, c := range contexts {
			a.FoundSections.Add(kw, c)
		}
	}

	for _, kw := range f.optional {
		count, _ := scanKeyword(text, kw)
		a.KeywordCounts[kw] = count
	}

	a.Experience = ExtractExperience(text)
	a.Score = f.score(a)
	return a
}

// Process screens a batch of resumes and returns qualifying results ranked
// by score, then by whether the experience requirement was met. Resumes with
// unsupported extensions, unreadable content or missing mandatory keywords
// are dropped, matching the upstream pipeline's membership policy. The
// returned slice is non-nil even when nothing qualifies.
func (f *Filter) Process(ctx context.Context, resumes []Resume) ([]types.ResumeResult, error) {
	slots := make([]*types.ResumeResult, len(resumes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentExtractions)
	for i, r := range resumes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !ingestion.SupportedExt(r.Name) {
				return nil
			}
			text, err := ingestion.ExtractText(r.Name, r.Data)
			if err != nil {
				log.Printf("[filter] skipping %s: %v", r.Name, err)
				return nil
			}
			if strings.TrimSpace(text) == "" {
				return nil
			}
			if result, ok := f.matchResult(r.Name, text); ok {
				slots[i] = &result
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]types.ResumeResult, 0, len(resumes))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ExperienceMet && !results[j].ExperienceMet
	})
	return results, nil
}

// ProcessDir screens every supported resume file in a directory.
func (f *Filter) ProcessDir(ctx context.Context, dir string) ([]types.ResumeResult, error) {
	entries, err := listResumeFiles(dir)
	if err != nil {
		return nil, err
	}
	return f.Process(ctx, entries)
}

// matchResult analyzes one resume and reports whether it qualifies
// (all mandatory keywords present).
func (f *Filter) matchResult(filename, text string) (types.ResumeResult, bool) {
	a := f.AnalyzeText(text)
	if len(a.MissingMandatory) > 0 {
		return types.ResumeResult{}, false
	}

	met := a.Experience != nil && *a.Experience >= f.requirements.MinExperience
	return types.ResumeResult{
		Filename:      filename,
		Score:         a.Score,
		Experience:    a.Experience,
		ExperienceMet: met,
		KeywordCounts: a.KeywordCounts,
		FoundSections: a.FoundSections,
	}, true
}
