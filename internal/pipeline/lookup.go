package pipeline

import (
	"erptgen/internal"
	"erptgen/internal/util"
)

// BuildLookup normalizes descriptions up front and keeps codes verbatim.
// Row order is preserved and nothing is filtered; the matcher's first-hit
// rule depends on both.
func BuildLookup(rows []internal.LookupRow) []internal.LookupEntry {
	out := make([]internal.LookupEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, internal.LookupEntry{
			NormalizedDesc: util.Normalize(row.Description),
			Code:           row.Code,
		})
	}
	return out
}
