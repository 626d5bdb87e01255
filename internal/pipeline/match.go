package pipeline

import (
	"log/slog"
	"strings"

	"erptgen/internal"
	"erptgen/internal/util"
)

// MatchFaultCodes scans the lookup entries in source row order; a record
// matches on normalized equality or when its normalized description is
// contained in the entry's (one-directional), first hit wins. Records
// without an English description are skipped and not counted; unmatched
// records keep an empty fault code.
func MatchFaultCodes(records []internal.OutputRecord, lookup []internal.LookupEntry, board string, logger *slog.Logger) (matched, unmatched int) {
	for i := range records {
		desc := records[i].EnglishDesc
		if strings.TrimSpace(desc) == "" {
			continue
		}

		code, ok := findCode(util.Normalize(desc), lookup)
		if ok {
			records[i].FaultCode = code
			matched++
			logger.Info("match ok", "board", board, "description", desc, "code", code)
		} else {
			unmatched++
			logger.Warn("match failed", "board", board, "description", desc)
		}
	}
	return matched, unmatched
}

func findCode(normalized string, lookup []internal.LookupEntry) (string, bool) {
	for _, entry := range lookup {
		if normalized == entry.NormalizedDesc || strings.Contains(entry.NormalizedDesc, normalized) {
			return entry.Code, true
		}
	}
	return "", false
}
