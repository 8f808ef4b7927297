package core

// templates.go manages saved import templates: named column mappings stored
// alongside the header set they were created from. When a returning user
// uploads a file with familiar headers, a matching template is offered
// before the heuristic auto-mapper runs.

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/BytesPlatform/contact-ingest/internal/mapping"
)

// TemplateMatchThreshold is the minimum header overlap for a template to be
// considered a match.
const TemplateMatchThreshold = 0.7

// CreateTemplate saves a named column mapping together with the CSV headers
// it applies to.
func (s *Service) CreateTemplate(ctx context.Context, name string, colMap map[mapping.Field]int, csvHeaders []string) (*ImportTemplate, error) {
	if name == "" {
		return nil, fmt.Errorf("template name is required")
	}

	mappingJSON, err := json.Marshal(colMap)
	if err != nil {
		return nil, fmt.Errorf("marshal mapping: %w", err)
	}
	headersJSON, err := json.Marshal(csvHeaders)
	if err != nil {
		return nil, fmt.Errorf("marshal headers: %w", err)
	}

	id := uuid.New()
	now := time.Now().UTC()

	_, err = s.pool.Exec(ctx, `
		INSERT INTO import_templates (id, name, column_mapping, csv_headers, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)`,
		pgtype.UUID{Bytes: id, Valid: true}, name, mappingJSON, headersJSON,
		pgtype.Timestamptz{Time: now, Valid: true})
	if err != nil {
		if strings.Contains(err.Error(), "import_templates_name_unique") {
			return nil, fmt.Errorf("template %q already exists", name)
		}
		return nil, fmt.Errorf("create template: %w", err)
	}

	return &ImportTemplate{
		ID:         id.String(),
		Name:       name,
		Mapping:    colMap,
		CSVHeaders: csvHeaders,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// GetTemplate retrieves a template by ID.
func (s *Service) GetTemplate(ctx context.Context, id string) (*ImportTemplate, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid template ID: %w", err)
	}

	row := s.pool.QueryRow(ctx, `
		SELECT id, name, column_mapping, csv_headers, created_at, updated_at
		FROM import_templates WHERE id = $1`,
		pgtype.UUID{Bytes: uid, Valid: true})

	return scanTemplate(row)
}

// ListTemplates returns all saved templates, newest first.
func (s *Service) ListTemplates(ctx context.Context) ([]ImportTemplate, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, column_mapping, csv_headers, created_at, updated_at
		FROM import_templates ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []ImportTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			continue // skip rows with unreadable payloads
		}
		templates = append(templates, *t)
	}
	return templates, rows.Err()
}

// DeleteTemplate removes a template.
func (s *Service) DeleteTemplate(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid template ID: %w", err)
	}
	_, err = s.pool.Exec(ctx, `DELETE FROM import_templates WHERE id = $1`,
		pgtype.UUID{Bytes: uid, Valid: true})
	return err
}

// MatchTemplates finds saved templates whose header set overlaps the
// uploaded headers, best match first.
func (s *Service) MatchTemplates(ctx context.Context, csvHeaders []string) ([]TemplateMatch, error) {
	templates, err := s.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}

	var matches []TemplateMatch
	for _, t := range templates {
		score := matchTemplateHeaders(csvHeaders, t.CSVHeaders)
		if score >= TemplateMatchThreshold {
			matches = append(matches, TemplateMatch{Template: t, MatchScore: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	return matches, nil
}

// matchTemplateHeaders calculates the fraction of template headers present in
// the uploaded headers (case-insensitive, trimmed).
func matchTemplateHeaders(csvHeaders, templateHeaders []string) float64 {
	if len(templateHeaders) == 0 {
		return 0
	}

	csvSet := make(map[string]bool, len(csvHeaders))
	for _, h := range csvHeaders {
		csvSet[strings.ToLower(strings.TrimSpace(h))] = true
	}

	matched := 0
	for _, h := range templateHeaders {
		if csvSet[strings.ToLower(strings.TrimSpace(h))] {
			matched++
		}
	}

	return float64(matched) / float64(len(templateHeaders))
}

// rowScanner lets scanTemplate work over both QueryRow and Query results.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (*ImportTemplate, error) {
	var (
		id                   pgtype.UUID
		name                 string
		mappingJSON          []byte
		headersJSON          []byte
		createdAt, updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(&id, &name, &mappingJSON, &headersJSON, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scan template: %w", err)
	}

	var colMap map[mapping.Field]int
	if err := json.Unmarshal(mappingJSON, &colMap); err != nil {
		return nil, fmt.Errorf("unmarshal mapping: %w", err)
	}
	var headers []string
	if err := json.Unmarshal(headersJSON, &headers); err != nil {
		return nil, fmt.Errorf("unmarshal headers: %w", err)
	}

	t := &ImportTemplate{
		Name:       name,
		Mapping:    colMap,
		CSVHeaders: headers,
	}
	if id.Valid {
		t.ID = uuid.UUID(id.Bytes).String()
	}
	if createdAt.Valid {
		t.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		t.UpdatedAt = updatedAt.Time
	}
	return t, nil
}
