// Package types provides type definitions for structured data used throughout the resume-screener system.
package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// KeywordSections holds the context snippets captured for a single keyword.
type KeywordSections struct {
	Keyword  string   `json:"keyword"`
	Contexts []string `json:"contexts"`
}

// FoundSections maps keywords to the context snippets they were found in.
// It is an ordered sequence rather than a map: the order keywords were
// searched in is the order they are displayed in.
type FoundSections []KeywordSections

// Add appends a context snippet to the entry for keyword, creating the
// entry at the end of the sequence if it does not exist yet.
func (fs *FoundSections) Add(keyword, context string) {
	for i := range *fs {
		if (*fs)[i].Keyword == keyword {
			(*fs)[i].Contexts = append((*fs)[i].Contexts, context)
			return
		}
	}
	*fs = append(*fs, KeywordSections{Keyword: keyword, Contexts: []string{context}})
}

// Get returns the context snippets for keyword and whether the keyword is present.
func (fs FoundSections) Get(keyword string) ([]string, bool) {
	for _, ks := range fs {
		if ks.Keyword == keyword {
			return ks.Contexts, true
		}
	}
	return nil, false
}

// Keywords returns the keywords in insertion order.
func (fs FoundSections) Keywords() []string {
	keys := make([]string, 0, len(fs))
	for _, ks := range fs {
		keys = append(keys, ks.Keyword)
	}
	return keys
}

// UnmarshalJSON decodes the ordered array form and rejects malformed input
// with a SchemaError instead of best-effort coercion.
func (fs *FoundSections) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &SchemaError{Field: "found_sections", Message: "expected an array of keyword entries", Cause: err}
	}
	sections := make(FoundSections, 0, len(raw))
	for _, entry := range raw {
		var ks struct {
			Keyword  string            `json:"keyword"`
			Contexts []json.RawMessage `json:"contexts"`
		}
		if err := json.Unmarshal(entry, &ks); err != nil {
			return &SchemaError{Field: "found_sections", Message: "malformed keyword entry", Cause: err}
		}
		if ks.Keyword == "" {
			return &SchemaError{Field: "found_sections", Message: "keyword must be a non-empty string"}
		}
		contexts := make([]string, 0, len(ks.Contexts))
		for _, rc := range ks.Contexts {
			var c string
			if err := json.Unmarshal(rc, &c); err != nil {
				return &SchemaError{Field: "found_sections", Message: "context snippets must be strings", Cause: err}
			}
			contexts = append(contexts, c)
		}
		sections = append(sections, KeywordSections{Keyword: ks.Keyword, Contexts: contexts})
	}
	*fs = sections
	return nil
}

// ResumeResult represents one candidate's scored match record.
type ResumeResult struct {
	Filename         string         `json:"filename"`
	Score            float64        `json:"score"`
	Experience       *float64       `json:"experience"` // nil when no experience could be extracted
	ExperienceMet    bool           `json:"experience_met"`
	MissingMandatory []string       `json:"missing_mandatory,omitempty"`
	KeywordCounts    map[string]int `json:"keyword_counts,omitempty"`
	FoundSections    FoundSections  `json:"found_sections"`
}

// MatchingContext is the full input to one results render: the experience
// threshold and the ordered resume result list.
type MatchingContext struct {
	MinExperience float64        `json:"min_experience"`
	Resumes       []ResumeResult `json:"resumes"`
}

// MatchRun is a persisted matching run.
type MatchRun struct {
	ID             uuid.UUID `json:"id"`
	JobDescription string    `json:"job_description"`
	Mandatory      []string  `json:"mandatory_keywords"`
	Optional       []string  `json:"optional_keywords"`
	MinExperience  float64   `json:"min_experience"`
	ResumeCount    int       `json:"resume_count"`
	CreatedAt      time.Time `json:"created_at"`
}
