package mapping

// automap.go proposes a best 1:1 assignment of CSV columns to canonical
// fields using fuzzy keyword scoring.
//
// Fields claim columns greedily in FieldOrder: once a column is assigned to
// an earlier field it is out of play for later ones, which keeps the mapping
// 1:1 without a global matching pass. On ambiguous headers this makes the
// priority order part of the observable behavior, so FieldOrder is fixed.

import "strings"

// headerNormalizer strips the separators that vary between export formats
// ("Business_Name", "business-name", "Business Name" all normalize the same).
var headerNormalizer = strings.NewReplacer("_", "", "-", "", " ", "", "\t", "")

// NormalizeHeader lowercases a header and removes underscore, hyphen, and
// whitespace separators.
func NormalizeHeader(header string) string {
	return headerNormalizer.Replace(strings.ToLower(strings.TrimSpace(header)))
}

// AutoMap proposes a column index for each canonical field it can match.
// Unmatched fields are absent from the result; no column index appears twice.
// Given identical headers the result is always identical.
func (e *Engine) AutoMap(headers []string) map[Field]int {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}

	result := make(map[Field]int, len(FieldOrder))
	claimed := make(map[int]bool, len(FieldOrder))

	for _, field := range FieldOrder {
		bestIdx, bestScore := -1, 0

		for idx, header := range normalized {
			if claimed[idx] || header == "" {
				continue
			}
			for _, keyword := range e.dict[field] {
				// Strictly greater: the first column to reach the max score
				// wins ties, matching column order.
				if score := e.scoreHeader(header, keyword); score > bestScore {
					bestIdx, bestScore = idx, score
				}
			}
		}

		if bestIdx >= 0 && bestScore >= e.opt.MinScore {
			result[field] = bestIdx
			claimed[bestIdx] = true
		}
	}

	return result
}

// scoreHeader scores one normalized header against one keyword.
func (e *Engine) scoreHeader(header, keyword string) int {
	if header == keyword {
		return e.opt.ScoreExact
	}
	if strings.Contains(header, keyword) || strings.Contains(keyword, header) {
		return e.opt.ScoreSubstring
	}
	if len(keyword) >= 3 && strings.Contains(header, keyword[:3]) {
		return e.opt.ScorePrefix
	}
	if len(header) >= 3 && strings.Contains(keyword, header[:3]) {
		return e.opt.ScorePrefix
	}
	return 0
}

// AutoMap proposes a mapping using the default engine. See [Engine.AutoMap].
func AutoMap(headers []string) map[Field]int {
	return Default.AutoMap(headers)
}
