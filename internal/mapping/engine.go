package mapping

// engine.go combines auto-mapping with sample validation. This is the
// entry point the upload form uses to pre-fill its mapping step.

// Warning explains why a proposed (field, column) pair was demoted to
// unmapped. The user resolves it manually in the mapping form.
type Warning struct {
	Field  Field  `json:"field"`
	Column int    `json:"column"`
	Header string `json:"header"`
	Reason string `json:"reason"`
}

// Result is the orchestrated outcome of mapping one upload's headers.
type Result struct {
	// Mapping holds the accepted field -> column index assignments. Fields
	// that could not be matched, or whose proposal failed validation, are
	// absent.
	Mapping map[Field]int `json:"mapping"`

	// Warnings lists proposals that keyword-matched but whose sample data
	// contradicted the field, in FieldOrder.
	Warnings []Warning `json:"warnings,omitempty"`

	// Samples holds the sample values considered per accepted or demoted
	// field, for display alongside the mapping form.
	Samples map[Field][]string `json:"samples,omitempty"`
}

// MapColumns runs auto-mapping over the headers, then validates every
// proposed pair against that column's sample values. Pairs that fail
// validation are removed from the mapping and surfaced as warnings rather
// than silently kept; nothing is committed without the user seeing it.
func (e *Engine) MapColumns(headers []string, rows []map[string]string) *Result {
	proposed := e.AutoMap(headers)
	samples := e.CollectSamples(headers, rows)

	res := &Result{
		Mapping: make(map[Field]int, len(proposed)),
		Samples: make(map[Field][]string, len(proposed)),
	}

	for _, field := range FieldOrder {
		idx, ok := proposed[field]
		if !ok {
			continue
		}
		colSamples := samples[idx]
		res.Samples[field] = colSamples

		if verdict := e.ValidateColumn(field, colSamples); !verdict.Valid {
			res.Warnings = append(res.Warnings, Warning{
				Field:  field,
				Column: idx,
				Header: headers[idx],
				Reason: verdict.Err,
			})
			continue
		}
		res.Mapping[field] = idx
	}

	return res
}

// MapColumns maps headers using the default engine. See [Engine.MapColumns].
func MapColumns(headers []string, rows []map[string]string) *Result {
	return Default.MapColumns(headers, rows)
}
