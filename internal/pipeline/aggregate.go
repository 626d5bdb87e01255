package pipeline

import "erptgen/internal"

// Stats summarizes the merged result table.
type Stats struct {
	Total       int
	WithCode    int
	WithoutCode int
}

// Aggregate concatenates the boards' tables in processing order, keeping
// each board's row order, and computes the run totals.
func Aggregate(reports []internal.BoardReport) ([]internal.OutputRecord, Stats) {
	total := 0
	for _, r := range reports {
		total += len(r.Records)
	}

	records := make([]internal.OutputRecord, 0, total)
	stats := Stats{}
	for _, r := range reports {
		for _, rec := range r.Records {
			records = append(records, rec)
			stats.Total++
			if rec.FaultCode != "" {
				stats.WithCode++
			} else {
				stats.WithoutCode++
			}
		}
	}
	return records, stats
}
