package web

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/BytesPlatform/contact-ingest/internal/core"
	"github.com/BytesPlatform/contact-ingest/internal/logging"
	"github.com/BytesPlatform/contact-ingest/internal/mapping"
)

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// createMappingRequest carries an upload's headers and preview rows.
type createMappingRequest struct {
	Headers []string            `json:"headers"`
	Rows    []map[string]string `json:"rows"`
}

// handleCreateMapping runs auto-mapping over the uploaded headers and opens
// a mapping session the UI can refine before confirming.
func (s *Server) handleCreateMapping(w http.ResponseWriter, r *http.Request) {
	var req createMappingRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	session, err := s.service.CreateSession(req.Headers, req.Rows)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusCreated, session)
}

// handleGetMapping returns a session's current state.
func (s *Server) handleGetMapping(w http.ResponseWriter, r *http.Request) {
	session, err := s.service.GetSession(chi.URLParam(r, "sessionID"))
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

// overrideRequest sets or clears (-1) a field's column assignment.
type overrideRequest struct {
	Column int `json:"column"`
}

// overrideResponse returns the updated session plus the verdict for the
// overridden column, so the UI can warn inline without blocking the user.
type overrideResponse struct {
	Session *core.MappingSession `json:"session"`
	Verdict mapping.Verdict      `json:"verdict"`
}

// handleOverrideMapping applies a user's manual mapping change to a session.
func (s *Server) handleOverrideMapping(w http.ResponseWriter, r *http.Request) {
	var req overrideRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	field := mapping.Field(chi.URLParam(r, "field"))
	session, verdict, err := s.service.OverrideMapping(chi.URLParam(r, "sessionID"), field, req.Column)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, overrideResponse{Session: session, Verdict: verdict})
}

// confirmRequest carries the full data rows for ingestion, in header order.
type confirmRequest struct {
	Rows [][]string `json:"rows"`
}

// handleConfirmMapping normalizes and persists the upload under the
// session's confirmed mapping.
func (s *Server) handleConfirmMapping(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	result, err := s.service.ConfirmSession(r.Context(), chi.URLParam(r, "sessionID"), req.Rows)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	logging.FromContext(r.Context()).Info("upload confirmed",
		"batch_id", result.BatchID,
		"inserted", result.Inserted,
		"skipped", len(result.Skipped),
	)

	respondJSON(w, http.StatusOK, result)
}

// validateRequest asks for a one-off column check, used when the user edits
// the mapping form directly.
type validateRequest struct {
	Field   string   `json:"field"`
	Samples []string `json:"samples"`
}

// handleValidateColumn validates sample values against a canonical field.
func (s *Server) handleValidateColumn(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	field := mapping.Field(req.Field)
	if !field.Valid() {
		s.respondError(w, r, fmt.Errorf("unknown field %q", req.Field), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, s.service.Engine().ValidateColumn(field, req.Samples))
}

// normalizePhoneRequest carries raw phone strings for batch normalization at
// submission time.
type normalizePhoneRequest struct {
	Numbers []string `json:"numbers"`
}

type normalizedPhone struct {
	Raw  string `json:"raw"`
	E164 string `json:"e164,omitempty"`
}

// handleNormalizePhone converts raw phone strings to E.164. Unresolvable
// numbers come back with an empty e164 rather than an error.
func (s *Server) handleNormalizePhone(w http.ResponseWriter, r *http.Request) {
	var req normalizePhoneRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	results := make([]normalizedPhone, len(req.Numbers))
	for i, raw := range req.Numbers {
		results[i] = normalizedPhone{Raw: raw, E164: s.service.Engine().NormalizePhone(raw)}
	}

	respondJSON(w, http.StatusOK, map[string][]normalizedPhone{"results": results})
}

// handleRollbackBatch deletes every contact ingested under a batch ID.
func (s *Server) handleRollbackBatch(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")

	deleted, err := s.service.RollbackBatch(r.Context(), batchID)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"batchId":     batchID,
		"rowsDeleted": deleted,
	})
}
