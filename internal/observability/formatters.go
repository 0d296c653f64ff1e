// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/filter"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirements outputs a human-readable summary of the screening
// requirements before a run starts.
func (p *Printer) PrintRequirements(req filter.Requirements) {
	var sb strings.Builder

	desc := req.JobDescription
	if len(desc) > 50 {
		desc = desc[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Role:        %s\n", desc))
	sb.WriteString(fmt.Sprintf("Experience:  %g+ years\n", req.MinExperience))
	sb.WriteString("\n")

	if len(req.Mandatory) > 0 {
		sb.WriteString("Mandatory Keywords:\n")
		count := min(len(req.Mandatory), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.Mandatory[i]))
		}
		if len(req.Mandatory) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.Mandatory)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(req.Optional) > 0 {
		sb.WriteString("Optional Keywords:\n")
		count := min(len(req.Optional), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.Optional[i]))
		}
		if len(req.Optional) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.Optional)-3))
		}
	}

	p.printBox("SCREENING REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedResults outputs the top N qualified resumes with scores and
// matched keywords.
func (p *Printer) PrintRankedResults(results []types.ResumeResult) {
	if len(results) == 0 {
		p.printBox("RANKED RESUMES", "No resumes matched all requirements")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total resumes qualified: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		res := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, res.Filename))
		sb.WriteString(fmt.Sprintf("    Score: %.2f", res.Score))
		if res.Experience != nil {
			sb.WriteString(fmt.Sprintf(" (Experience: %g yrs)", *res.Experience))
		}
		sb.WriteString("\n")
		if keywords := res.FoundSections.Keywords(); len(keywords) > 0 {
			joined := strings.Join(keywords, ", ")
			if len(joined) > 40 {
				joined = joined[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Keywords: %s\n", joined))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(results)-maxItemsToShow))
	}

	p.printBox("RANKED RESUMES", sb.String())
}

// PrintExperienceChecks outputs the experience verdict for each resume.
func (p *Printer) PrintExperienceChecks(minExperience float64, results []types.ResumeResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Required: %g+ years\n\n", minExperience))

	for i, res := range results {
		mark := "✗"
		if res.ExperienceMet {
			mark = "✓"
		}
		found := "N/A"
		if res.Experience != nil {
			found = fmt.Sprintf("%g yrs", *res.Experience)
		}
		sb.WriteString(fmt.Sprintf("%s %s (%s)\n", mark, res.Filename, found))
		if i >= maxItemsToShow-1 && len(results) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n... and %d more resumes\n", len(results)-maxItemsToShow))
			break
		}
	}

	p.printBox("EXPERIENCE CHECKS", strings.TrimSuffix(sb.String(), "\n"))
}
