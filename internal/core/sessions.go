package core

// sessions.go tracks in-flight mapping sessions. A session is created when
// the upload form sends headers and preview rows, holds the engine's
// proposal while the user reviews it, and is consumed when the user confirms
// (or silently dropped at TTL expiry if they abandon the upload).

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/BytesPlatform/contact-ingest/internal/mapping"
)

// ErrSessionNotFound is returned when a session ID is unknown or expired.
var ErrSessionNotFound = fmt.Errorf("mapping session not found or expired")

// CreateSession runs the mapping engine over an upload's headers and preview
// rows and stores the proposal under a new session ID.
func (s *Service) CreateSession(headers []string, rows []map[string]string) (*MappingSession, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("no headers provided")
	}

	res := s.engine.MapColumns(headers, rows)
	now := time.Now()

	session := &MappingSession{
		ID:         uuid.New().String(),
		Headers:    headers,
		Mapping:    res.Mapping,
		Warnings:   res.Warnings,
		Samples:    res.Samples,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.sessionTTL),
		colSamples: s.engine.CollectSamples(headers, rows),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	slog.Debug("mapping session created",
		"session_id", session.ID,
		"headers", len(headers),
		"mapped", len(res.Mapping),
		"warnings", len(res.Warnings),
	)

	return session.clone(), nil
}

// GetSession returns a snapshot of a session by ID, or ErrSessionNotFound if
// it is unknown or past its TTL. Callers get a copy, never the live registry
// entry: concurrent overrides mutate session maps, and handing those maps to
// a handler's JSON encoder would race.
func (s *Service) GetSession(id string) (*MappingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok || time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionNotFound
	}
	return session.clone(), nil
}

// OverrideMapping applies a user override to one field of a session. An
// index of -1 clears the field. The overridden column is re-validated
// against its sample values and the verdict is returned alongside the
// session, so the UI can warn without blocking: the user's choice stands
// either way.
func (s *Service) OverrideMapping(id string, field mapping.Field, index int) (*MappingSession, mapping.Verdict, error) {
	if !field.Valid() {
		return nil, mapping.Verdict{}, fmt.Errorf("unknown field %q", string(field))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || time.Now().After(session.ExpiresAt) {
		return nil, mapping.Verdict{}, ErrSessionNotFound
	}

	if index < 0 {
		delete(session.Mapping, field)
		delete(session.Samples, field)
		return session.clone(), mapping.Verdict{Valid: true}, nil
	}

	if index >= len(session.Headers) {
		return nil, mapping.Verdict{}, fmt.Errorf("column index %d out of range (%d headers)", index, len(session.Headers))
	}

	// One column per field: steal the index from any other field holding it.
	for other, idx := range session.Mapping {
		if other != field && idx == index {
			delete(session.Mapping, other)
			delete(session.Samples, other)
		}
	}
	session.Mapping[field] = index
	session.Samples[field] = session.colSamples[index]

	verdict := s.engine.ValidateColumn(field, session.Samples[field])
	return session.clone(), verdict, nil
}

// ConfirmSession normalizes the upload's full row set using the session's
// mapping and persists the resulting contacts under a new batch ID. Rows
// with no usable email or phone are skipped, not failed. The session is
// removed on success.
func (s *Service) ConfirmSession(ctx context.Context, id string, rows [][]string) (*IngestResult, error) {
	session, err := s.GetSession(id)
	if err != nil {
		return nil, err
	}
	if len(session.Mapping) == 0 {
		return nil, fmt.Errorf("session has no mapped columns")
	}

	start := time.Now()
	batchID := uuid.New()

	result := &IngestResult{
		BatchID: batchID.String(),
		Total:   len(rows),
	}

	contacts := make([]Contact, 0, len(rows))
	for i, row := range rows {
		contact, ok := BuildContact(row, session.Mapping, s.engine)
		if !ok {
			result.Skipped = append(result.Skipped, SkippedRow{
				LineNumber: i + 1,
				Reason:     "no usable email or phone",
			})
			continue
		}
		contacts = append(contacts, contact)
	}

	inserted, err := InsertContacts(ctx, s.pool, batchID, contacts)
	result.Inserted = int(inserted)
	result.Duration = time.Since(start)
	if err != nil {
		return result, fmt.Errorf("ingest batch %s: %w", batchID, err)
	}

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	slog.Info("batch ingested",
		"batch_id", result.BatchID,
		"total", result.Total,
		"inserted", result.Inserted,
		"skipped", len(result.Skipped),
		"duration_ms", result.Duration.Milliseconds(),
	)

	return result, nil
}

// RollbackBatch deletes every contact stored under a batch ID.
func (s *Service) RollbackBatch(ctx context.Context, batchID string) (int64, error) {
	id, err := uuid.Parse(batchID)
	if err != nil {
		return 0, fmt.Errorf("invalid batch ID: %w", err)
	}
	return DeleteBatch(ctx, s.pool, id)
}

// StartSessionSweeper removes expired sessions on the given interval until
// ctx is cancelled. Run it from main as a background goroutine.
func (s *Service) StartSessionSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepSessions(time.Now())
		}
	}
}

func (s *Service) sweepSessions(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
}
