package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/resume-builder/internal/compiling"
	"github.com/jonathan/resume-builder/internal/enhancing"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/schemas"
)

// maxRequestBytes bounds request bodies; resume payloads are small.
const maxRequestBytes = 1 << 20

// generateRequest is the payload for /generate and /render. The API key is
// scoped to this request only.
type generateRequest struct {
	APIKey string          `json:"api_key,omitempty"`
	Resume json.RawMessage `json:"resume"`
}

// enhanceRequest is the payload for /enhance.
type enhanceRequest struct {
	APIKey  string `json:"api_key,omitempty"`
	Text    string `json:"text"`
	Section string `json:"section,omitempty"`
}

// handleGenerate runs the full pipeline and responds with the PDF as a
// download, or a structured error.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, rec, ok := s.decodeResumeRequest(w, r)
	if !ok {
		return
	}

	result, err := pipeline.Generate(r.Context(), rec, pipeline.Options{
		APIKey:         req.APIKey,
		Model:          s.cfg.Model,
		EnhanceTimeout: s.cfg.EnhanceTimeout,
		CompileTimeout: s.cfg.CompileTimeout,
	})
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	for _, warning := range result.Warnings {
		log.Printf("[generate %s] warning: %s", result.ID, warning)
	}

	filename := strings.ReplaceAll(resume.StandardizeName(rec.FullName), " ", "_") + "_Resume.pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Generation-ID", result.ID.String())
	w.Header().Set("X-Enhancement-Applied", fmt.Sprintf("%t", result.Enhanced))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.PDF); err != nil {
		log.Printf("[generate %s] failed to write PDF response: %v", result.ID, err)
	}
}

// handleRender returns the rendered LaTeX source without compiling.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	_, rec, ok := s.decodeResumeRequest(w, r)
	if !ok {
		return
	}

	source, err := pipeline.Render(rec)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/x-tex")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, source)
}

// handleEnhance enhances a single text snippet. Degrades to the original
// text when no key is supplied or the call fails.
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	var req enhanceRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	response := map[string]any{"text": req.Text, "enhanced": false}

	if req.APIKey == "" {
		response["warning"] = "no API key provided"
		s.jsonResponse(w, http.StatusOK, response)
		return
	}

	enhancer, err := enhancing.NewGemini(r.Context(), req.APIKey, s.cfg.Model, s.cfg.EnhanceTimeout)
	if err != nil {
		response["warning"] = err.Error()
		s.jsonResponse(w, http.StatusOK, response)
		return
	}
	defer func() { _ = enhancer.Close() }()

	result := enhancer.Enhance(r.Context(), req.Text, req.Section)
	response["text"] = result.Text
	response["enhanced"] = result.Enhanced
	if result.Err != nil {
		response["warning"] = result.Err.Error()
	}
	s.jsonResponse(w, http.StatusOK, response)
}

// decodeResumeRequest parses and schema-validates the resume payload
// shared by /generate and /render. On failure it writes the error response
// and returns ok=false.
func (s *Server) decodeResumeRequest(w http.ResponseWriter, r *http.Request) (*generateRequest, *resume.Record, bool) {
	var req generateRequest
	if !s.decodeJSON(w, r, &req) {
		return nil, nil, false
	}
	if len(req.Resume) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "missing 'resume' field")
		return nil, nil, false
	}

	if err := schemas.ValidateResume(req.Resume); err != nil {
		var verr *schemas.ValidationError
		if errors.As(err, &verr) {
			s.validationResponse(w, verr.Errors)
			return nil, nil, false
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return nil, nil, false
	}

	var rec resume.Record
	if err := json.Unmarshal(req.Resume, &rec); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume JSON: "+err.Error())
		return nil, nil, false
	}

	return &req, &rec, true
}

// decodeJSON decodes a bounded JSON request body, writing a 400 on failure.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// pipelineError maps pipeline failures onto HTTP statuses: validation 422,
// compilation 502 with the diagnostic log, anything else 500.
func (s *Server) pipelineError(w http.ResponseWriter, err error) {
	var verr *resume.ValidationError
	if errors.As(err, &verr) {
		fields := make([]schemas.FieldError, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, schemas.FieldError{Field: f.Field, Message: f.Message})
		}
		s.validationResponse(w, fields)
		return
	}

	var cerr *compiling.Error
	if errors.As(err, &cerr) {
		s.jsonResponse(w, http.StatusBadGateway, map[string]any{
			"error": cerr.Message,
			"log":   cerr.Log,
		})
		return
	}

	s.errorResponse(w, http.StatusInternalServerError, err.Error())
}

// validationResponse writes a 422 with per-field messages.
func (s *Server) validationResponse(w http.ResponseWriter, fields []schemas.FieldError) {
	details := make([]map[string]string, 0, len(fields))
	for _, f := range fields {
		details = append(details, map[string]string{
			"field":   f.Field,
			"message": f.Message,
		})
	}
	s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": details,
	})
}
