package web

// errors.go provides unified JSON response handling for the API. Technical
// errors are logged server-side with the request ID; clients get a compact
// envelope they can render inline in the upload form.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/BytesPlatform/contact-ingest/internal/core"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// respondError logs the technical error and writes the JSON error envelope.
// Session lookups that miss map to 404; everything else keeps the caller's
// status.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, status int) {
	if errors.Is(err, core.ErrSessionNotFound) {
		status = http.StatusNotFound
	}

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"request_id", middleware.GetReqID(r.Context()),
	)

	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: err.Error(),
	})
}

// decodeJSON decodes a request body into v, rejecting unknown fields so
// client typos surface as errors instead of silently-ignored settings.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
