package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/BytesPlatform/contact-ingest/internal/mapping"
)

// createTemplateRequest saves a confirmed mapping for reuse on future
// uploads with the same header set.
type createTemplateRequest struct {
	Name    string                `json:"name"`
	Mapping map[mapping.Field]int `json:"mapping"`
	Headers []string              `json:"headers"`
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	for field := range req.Mapping {
		if !field.Valid() {
			s.respondError(w, r, fmt.Errorf("unknown field %q", string(field)), http.StatusBadRequest)
			return
		}
	}

	tmpl, err := s.service.CreateTemplate(r.Context(), req.Name, req.Mapping, req.Headers)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusCreated, tmpl)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.service.ListTemplates(r.Context())
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, templates)
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := s.service.GetTemplate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, tmpl)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteTemplate(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleMatchTemplates finds saved templates matching the uploaded headers,
// passed as a comma-separated "headers" query parameter.
func (s *Server) handleMatchTemplates(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("headers")
	if raw == "" {
		s.respondError(w, r, fmt.Errorf("headers query parameter is required"), http.StatusBadRequest)
		return
	}

	var headers []string
	for _, h := range strings.Split(raw, ",") {
		if h = strings.TrimSpace(h); h != "" {
			headers = append(headers, h)
		}
	}

	matches, err := s.service.MatchTemplates(r.Context(), headers)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, matches)
}
