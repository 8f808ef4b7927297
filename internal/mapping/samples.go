package mapping

import "strings"

// CollectSamples extracts per-column sample values from parsed CSV rows.
// Rows arrive as header -> raw value maps (the upload form sends the first
// few rows alongside the header list). For each column, the first MaxSamples
// non-empty trimmed values found within the first SampleRows rows are kept.
//
// The result is keyed by column index so sampling stays correct even when a
// file repeats a header name; lookups go through the headers slice.
func (e *Engine) CollectSamples(headers []string, rows []map[string]string) map[int][]string {
	samples := make(map[int][]string, len(headers))

	if len(rows) > e.opt.SampleRows {
		rows = rows[:e.opt.SampleRows]
	}

	for idx, header := range headers {
		for _, row := range rows {
			v := strings.TrimSpace(row[header])
			if v == "" {
				continue
			}
			samples[idx] = append(samples[idx], v)
			if len(samples[idx]) >= e.opt.MaxSamples {
				break
			}
		}
	}

	return samples
}
