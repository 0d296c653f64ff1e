package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/filter"
	"github.com/jonathan/resume-screener/internal/types"
)

func floatPtr(f float64) *float64 { return &f }

func TestPrintRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(filter.Requirements{
		JobDescription: "Senior Python Developer",
		Mandatory:      []string{"python", "flask", "sql"},
		Optional:       []string{"docker"},
		MinExperience:  3,
	})

	out := buf.String()
	assert.Contains(t, out, "SCREENING REQUIREMENTS")
	assert.Contains(t, out, "Senior Python Developer")
	assert.Contains(t, out, "3+ years")
	assert.Contains(t, out, "• python")
	assert.Contains(t, out, "• docker")
}

func TestPrintRequirements_TruncatesLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(filter.Requirements{
		JobDescription: "Role",
		Mandatory:      []string{"a", "b", "c", "d", "e", "f", "g"},
		MinExperience:  1,
	})

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintRankedResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var sections types.FoundSections
	sections.Add("python", "ctx")
	sections.Add("flask", "ctx")

	p.PrintRankedResults([]types.ResumeResult{
		{
			Filename:      "alice.pdf",
			Score:         8.68,
			Experience:    floatPtr(5),
			ExperienceMet: true,
			FoundSections: sections,
		},
		{Filename: "bob.docx", Score: 3.0},
	})

	out := buf.String()
	assert.Contains(t, out, "RANKED RESUMES")
	assert.Contains(t, out, "Total resumes qualified: 2")
	assert.Contains(t, out, "#1  alice.pdf")
	assert.Contains(t, out, "Score: 8.68")
	assert.Contains(t, out, "Experience: 5 yrs")
	assert.Contains(t, out, "python, flask")
	assert.Contains(t, out, "#2  bob.docx")
}

func TestPrintRankedResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankedResults(nil)

	assert.Contains(t, buf.String(), "No resumes matched all requirements")
}

func TestPrintRankedResults_TruncatesLongList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := make([]types.ResumeResult, 8)
	for i := range results {
		results[i] = types.ResumeResult{Filename: "resume.pdf", Score: 1}
	}
	p.PrintRankedResults(results)

	assert.Contains(t, buf.String(), "... and 3 more resumes")
}

func TestPrintExperienceChecks(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExperienceChecks(3, []types.ResumeResult{
		{Filename: "alice.pdf", Experience: floatPtr(5), ExperienceMet: true},
		{Filename: "bob.docx"},
	})

	out := buf.String()
	assert.Contains(t, out, "EXPERIENCE CHECKS")
	assert.Contains(t, out, "Required: 3+ years")
	assert.Contains(t, out, "✓ alice.pdf (5 yrs)")
	assert.Contains(t, out, "✗ bob.docx (N/A)")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
