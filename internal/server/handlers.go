package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/newkub/templates/internal/dryrun"
	"github.com/newkub/templates/internal/registry"
	"github.com/newkub/templates/internal/validation"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// DryRunRequest is the body of POST /api/templates/{name}/dry-run.
type DryRunRequest struct {
	ProjectName string `json:"projectName"`
	Diff        bool   `json:"diff"`
}

func (s *Server) ListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Registry.List())
}

func (s *Server) PreviewTemplate(w http.ResponseWriter, r *http.Request) {
	p, err := s.Previews.Preview(chi.URLParam(r, "name"))
	if err != nil {
		writeTemplateError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) DryRunTemplate(w http.ResponseWriter, r *http.Request) {
	var req DryRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(req.ProjectName) == "" {
		writeError(w, http.StatusBadRequest, "projectName is required")
		return
	}

	res, err := s.DryRuns.DryRun(chi.URLParam(r, "name"), req.ProjectName, dryrun.Options{Diffs: req.Diff})
	if err != nil {
		writeTemplateError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ValidateTemplate uses the default rules unless the request body carries
// a rules object.
func (s *Server) ValidateTemplate(w http.ResponseWriter, r *http.Request) {
	var rules *validation.Rules
	if r.Method == http.MethodPost {
		var body validation.Rules
		err := json.NewDecoder(r.Body).Decode(&body)
		switch {
		case err == nil:
			rules = &body
		case errors.Is(err, io.EOF):
		default:
			writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, s.Validator.ValidateTemplate(chi.URLParam(r, "name"), rules))
}

func (s *Server) CheckHealth(w http.ResponseWriter, r *http.Request) {
	diff, _ := strconv.ParseBool(r.URL.Query().Get("diff"))
	status := s.Validator.CheckProjectHealth(
		chi.URLParam(r, "name"),
		r.URL.Query().Get("project"),
		validation.HealthOptions{Diffs: diff},
	)
	writeJSON(w, http.StatusOK, status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeTemplateError maps registry error codes onto HTTP statuses.
func writeTemplateError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, registry.ErrTemplateNotFound), errors.Is(err, registry.ErrFileNotFound):
		status = http.StatusNotFound
	case errors.Is(err, registry.ErrInvalidProjectName):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorBody{Error: err.Error(), Code: registry.Code(err)})
}
