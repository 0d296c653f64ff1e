package server

import (
	"context"
	"errors"
	"io"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/filter"
	"github.com/jonathan/resume-screener/internal/store"
	"github.com/jonathan/resume-screener/internal/types"
)

// maxUploadBytes caps the in-memory portion of a multipart upload.
const maxUploadBytes = 32 << 20

// handleUploadForm renders the upload form.
func (s *Server) handleUploadForm(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.views.RenderUpload(w); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render upload form: "+err.Error())
	}
}

// handleMatches runs the matching pipeline over the uploaded resumes and
// renders the results page. Copies of qualifying resumes are stored for the
// download endpoint, and the run is persisted.
func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	minExperience, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("min_experience")), 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "min_experience must be a number")
		return
	}

	req := &types.MatchRequest{
		JobDescription: r.FormValue("job_description"),
		Mandatory:      splitKeywords(r.FormValue("mandatory_keywords")),
		Optional:       splitKeywords(r.FormValue("optional_keywords")),
		MinExperience:  minExperience,
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	fileHeaders := r.MultipartForm.File["resumes"]
	if len(fileHeaders) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "At least one resume file is required")
		return
	}

	resumes := make([]filter.Resume, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to open uploaded file "+fh.Filename+": "+err.Error())
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file "+fh.Filename+": "+err.Error())
			return
		}
		resumes = append(resumes, filter.Resume{Name: filepath.Base(fh.Filename), Data: data})
	}

	filt := filter.New(filter.Requirements{
		JobDescription: req.JobDescription,
		Mandatory:      req.Mandatory,
		Optional:       req.Optional,
		MinExperience:  req.MinExperience,
	})

	results, err := filt.Process(r.Context(), resumes)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Matching failed: "+err.Error())
		return
	}

	s.storeMatches(resumes, results)
	s.persistRun(r.Context(), req, results)

	matchingCtx := &types.MatchingContext{
		MinExperience: req.MinExperience,
		Resumes:       results,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.views.RenderResults(w, matchingCtx); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render results: "+err.Error())
	}
}

// handleDownload serves a stored resume's bytes as an attachment.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	data, err := s.files.Read(filename)
	if err != nil {
		var invalid *store.InvalidNameError
		switch {
		case errors.As(err, &invalid):
			s.errorResponse(w, http.StatusBadRequest, invalid.Error())
		case errors.Is(err, os.ErrNotExist):
			s.errorResponse(w, http.StatusNotFound, "Resume not found: "+filename)
		default:
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing download response: %v", err)
	}
}

// storeMatches keeps a copy of each qualifying resume so its download link
// resolves, mirroring the upstream pipeline's copy-to-uploads behavior.
func (s *Server) storeMatches(resumes []filter.Resume, results []types.ResumeResult) {
	byName := make(map[string][]byte, len(resumes))
	for _, r := range resumes {
		byName[r.Name] = r.Data
	}
	for _, res := range results {
		data, ok := byName[res.Filename]
		if !ok {
			continue
		}
		if err := s.files.Save(res.Filename, data); err != nil {
			log.Printf("Failed to store matching resume %s: %v", res.Filename, err)
		}
	}
}

// persistRun records the run in the database. A persistence failure is
// logged but does not discard the already computed results page.
func (s *Server) persistRun(ctx context.Context, req *types.MatchRequest, results []types.ResumeResult) {
	if s.db == nil {
		return
	}
	run := &types.MatchRun{
		JobDescription: req.JobDescription,
		Mandatory:      req.Mandatory,
		Optional:       req.Optional,
		MinExperience:  req.MinExperience,
	}
	if _, err := s.db.CreateMatchRun(ctx, run, results); err != nil {
		log.Printf("Failed to persist match run: %v", err)
	}
}

// splitKeywords parses a comma-separated keyword list, dropping empties.
func splitKeywords(value string) []string {
	var keywords []string
	for _, kw := range strings.Split(value, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
