// Package core provides the business logic for the contact ingestion
// service. This package has no HTTP dependencies and can be driven by web
// handlers, CLI tools, or tests without modification.
package core

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BytesPlatform/contact-ingest/internal/mapping"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error)
}

// Contact is one normalized contact record, ready for persistence.
// Empty strings mean the field was unmapped or unusable; they become NULLs.
type Contact struct {
	BusinessName string `json:"businessName,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"` // E.164 when set
	Website      string `json:"website,omitempty"`
	Zip          string `json:"zip,omitempty"`
	State        string `json:"state,omitempty"` // 2-letter code when recognized
}

// Empty reports whether the contact carries no reachable identity at all.
// Contacts need at least an email or a phone to be worth storing.
func (c Contact) Empty() bool {
	return c.Email == "" && c.Phone == ""
}

// SkippedRow records why a CSV row did not become a stored contact.
type SkippedRow struct {
	LineNumber int    `json:"lineNumber"` // 1-based data row number
	Reason     string `json:"reason"`
}

// IngestResult summarizes one confirmed ingestion run.
type IngestResult struct {
	BatchID  string        `json:"batchId"`
	Total    int           `json:"total"`
	Inserted int           `json:"inserted"`
	Skipped  []SkippedRow  `json:"skipped,omitempty"`
	Duration time.Duration `json:"-"`
}

// MappingSession holds one upload's proposed mapping between the auto-map
// call and the user's confirmation. Sessions live in memory only and expire
// after the configured TTL.
type MappingSession struct {
	ID        string                     `json:"id"`
	Headers   []string                   `json:"headers"`
	Mapping   map[mapping.Field]int      `json:"mapping"`
	Warnings  []mapping.Warning          `json:"warnings,omitempty"`
	Samples   map[mapping.Field][]string `json:"samples,omitempty"`
	CreatedAt time.Time                  `json:"createdAt"`
	ExpiresAt time.Time                  `json:"expiresAt"`

	// colSamples keeps the per-column sample values so overrides can be
	// re-validated against whichever column the user picks.
	colSamples map[int][]string
}

// clone returns a snapshot safe to encode or inspect outside the registry
// lock. The live session stays in the registry and keeps changing under
// OverrideMapping; Headers and the sample slices are shared because they are
// never mutated after creation, only replaced.
func (m *MappingSession) clone() *MappingSession {
	c := &MappingSession{
		ID:        m.ID,
		Headers:   m.Headers,
		Mapping:   make(map[mapping.Field]int, len(m.Mapping)),
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
	for field, idx := range m.Mapping {
		c.Mapping[field] = idx
	}
	if m.Samples != nil {
		c.Samples = make(map[mapping.Field][]string, len(m.Samples))
		for field, vals := range m.Samples {
			c.Samples[field] = vals
		}
	}
	c.Warnings = append(c.Warnings, m.Warnings...)
	return c
}

// ImportTemplate is a saved column mapping keyed by the header set it was
// created from, so repeat uploads from the same source skip the mapping step.
type ImportTemplate struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Mapping    map[mapping.Field]int `json:"mapping"`
	CSVHeaders []string              `json:"csvHeaders"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

// TemplateMatch pairs a template with how well it matches an upload's headers.
type TemplateMatch struct {
	Template   ImportTemplate `json:"template"`
	MatchScore float64        `json:"matchScore"`
}
