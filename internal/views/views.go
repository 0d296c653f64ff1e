// Package views renders the server-side HTML pages of the resume screener:
// the upload form and the matching results page. Rendering is a pure
// transformation of its input; renderers hold no per-request state and are
// safe for concurrent use.
package views

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strconv"

	"github.com/jonathan/resume-screener/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// snippetLength is the display prefix kept from each context snippet.
const snippetLength = 100

// DownloadURLResolver builds the download reference for a stored resume.
// The view only knows the filename key, never the storage path.
type DownloadURLResolver interface {
	DownloadURL(filename string) string
}

// DownloadURLFunc adapts a plain function to a DownloadURLResolver.
type DownloadURLFunc func(filename string) string

// DownloadURL implements DownloadURLResolver.
func (f DownloadURLFunc) DownloadURL(filename string) string { return f(filename) }

// Renderer renders the screener's HTML pages.
type Renderer struct {
	templates *template.Template
	resolver  DownloadURLResolver
}

// NewRenderer parses the embedded templates and returns a Renderer that
// builds download links through resolver.
func NewRenderer(resolver DownloadURLResolver) (*Renderer, error) {
	tmpl, err := template.New("views").Funcs(template.FuncMap{
		"snippet": Snippet,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, &RenderError{Template: "templates/*.html", Cause: err}
	}
	return &Renderer{templates: tmpl, resolver: resolver}, nil
}

// Snippet returns the first 100 characters of a context snippet with an
// ellipsis appended. The ellipsis is unconditional, even for snippets
// already shorter than the prefix; the original string is never mutated.
func Snippet(s string) string {
	runes := []rune(s)
	if len(runes) > snippetLength {
		runes = runes[:snippetLength]
	}
	return string(runes) + "..."
}

// resultsPage is the view model handed to the results template. Numbers are
// pre-formatted so the template stays free of formatting logic.
type resultsPage struct {
	MinExperience string
	Resumes       []resultEntry
}

type resultEntry struct {
	Filename       string
	Score          string
	ExperienceText string
	ExperienceMet  bool
	DownloadURL    string
	FoundSections  types.FoundSections
}

// RenderResults renders the matching results page for ctx. The page is
// rendered into a buffer first so validation or template errors reach the
// caller before a single byte of output is written.
func (r *Renderer) RenderResults(w io.Writer, ctx *types.MatchingContext) error {
	if ctx == nil {
		return &MissingContextError{Message: "context is nil"}
	}
	if ctx.Resumes == nil {
		return &MissingContextError{Message: "resumes is absent"}
	}

	page := resultsPage{
		MinExperience: formatNumber(ctx.MinExperience),
		Resumes:       make([]resultEntry, 0, len(ctx.Resumes)),
	}
	for i, res := range ctx.Resumes {
		if res.Filename == "" {
			return &MissingFieldError{Field: "filename", Index: i}
		}
		if res.FoundSections == nil {
			return &MissingFieldError{Field: "found_sections", Index: i}
		}
		page.Resumes = append(page.Resumes, resultEntry{
			Filename:       res.Filename,
			Score:          formatNumber(res.Score),
			ExperienceText: experienceText(res.Experience),
			ExperienceMet:  res.ExperienceMet,
			DownloadURL:    r.resolver.DownloadURL(res.Filename),
			FoundSections:  res.FoundSections,
		})
	}

	return r.render(w, "results.html", page)
}

// RenderUpload renders the upload form page.
func (r *Renderer) RenderUpload(w io.Writer) error {
	return r.render(w, "upload.html", nil)
}

func (r *Renderer) render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return &RenderError{Template: name, Cause: err}
	}
	_, err := buf.WriteTo(w)
	return err
}

// experienceText renders the years value, or the "N/A" sentinel only when
// experience is absent. Zero years renders as "0 years", not the sentinel.
func experienceText(years *float64) string {
	if years == nil {
		return "N/A"
	}
	return formatNumber(*years) + " years"
}

// formatNumber renders a float in its natural form: no trailing zeros, no
// locale formatting.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
