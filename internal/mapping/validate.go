package mapping

// validate.go decides whether a column's sample data is consistent with a
// canonical field. Verdicts follow a majority rule so a few dirty cells in an
// otherwise correct column don't block the import.

import (
	"fmt"
	"strings"
)

// Verdict is the outcome of validating one column against one field.
// An invalid verdict always carries a non-empty human-readable error.
type Verdict struct {
	Valid bool   `json:"isValid"`
	Err   string `json:"error,omitempty"`
}

func valid() Verdict { return Verdict{Valid: true} }

func invalid(format string, args ...any) Verdict {
	return Verdict{Valid: false, Err: fmt.Sprintf(format, args...)}
}

// ValidateColumn checks up to MaxSamples sample values from a column against
// the field's shape rule. The column is rejected only when more than half of
// the samples fail, and the verdict carries the first offending sample's
// specific error so the user can see what tripped it.
//
// Blank cells carry no signal either way, so they are dropped before the
// majority rule rather than diluting its denominator. An empty sample set is
// valid: with no data there is nothing to contradict the mapping.
func (e *Engine) ValidateColumn(field Field, samples []string) Verdict {
	check, ok := fieldChecks[field]
	if !ok {
		return invalid("unknown field %q", string(field))
	}

	trimmed := make([]string, 0, len(samples))
	for _, s := range samples {
		if s = strings.TrimSpace(s); s != "" {
			trimmed = append(trimmed, s)
		}
	}
	if len(trimmed) > e.opt.MaxSamples {
		trimmed = trimmed[:e.opt.MaxSamples]
	}
	if len(trimmed) == 0 {
		return valid()
	}

	failures := 0
	firstErr := ""
	for _, s := range trimmed {
		if !check.match(s) {
			failures++
			if firstErr == "" {
				firstErr = fmt.Sprintf("%q %s", s, check.msg)
			}
		}
	}

	// Majority rule: reject only when failures outnumber half the sample.
	if failures*2 > len(trimmed) {
		return Verdict{Valid: false, Err: firstErr}
	}
	return valid()
}

// ValidateColumn validates samples against a field using the default engine.
// See [Engine.ValidateColumn].
func ValidateColumn(field Field, samples []string) Verdict {
	return Default.ValidateColumn(field, samples)
}
