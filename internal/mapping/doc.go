// Package mapping implements the CSV column mapping and contact field
// normalization engine.
//
// When a user uploads a contact CSV, the column headers are whatever the
// source system happened to export: "Company", "Biz Name", "E-mail", "Ph#".
// This package decides which column corresponds to each canonical contact
// field, checks that a column's sample data actually looks like that field,
// and converts free-form phone strings to E.164.
//
// # Pipeline
//
// The engine is used in three stages, all driven by the upload form:
//
//  1. [Engine.AutoMap] scores every header against each field's keyword list
//     and proposes a best 1:1 assignment (field -> column index).
//  2. [Engine.ValidateColumn] checks a sample of values from a column against
//     a field's shape rules, so a header called "Phone" full of street
//     addresses gets flagged instead of imported.
//  3. [Engine.NormalizePhone] converts confirmed phone values to E.164 at
//     submission time, returning "" rather than guessing when the country
//     cannot be determined.
//
// [Engine.MapColumns] runs stages 1 and 2 together and returns the accepted
// mapping plus warnings for proposals that failed validation.
//
// # Determinism
//
// Every operation is a pure function of its inputs: no randomness, no I/O, no
// retained state between calls. An Engine is safe for concurrent use from any
// number of goroutines. Mapping decisions are keyword/heuristic based and
// explainable; the scores and sample values that drove a decision are part of
// the result so the UI can show the user why a column was or wasn't mapped.
package mapping
