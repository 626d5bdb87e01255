package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"erptgen/internal"
	"erptgen/internal/config"
	"erptgen/internal/sheet"
)

// ProcessBoard runs read, generate and match for one board. The lookup
// table is rebuilt per board; it is invariant within a run but rebuilding
// keeps a broken lookup read confined to the board that hit it.
func ProcessBoard(cfg config.Config, board config.Board, logger *slog.Logger) (internal.BoardReport, error) {
	reportPath := filepath.Join(board.InputDir, board.ReportFile)
	logger.Info("reading fault report", "board", board.FolderName, "path", reportPath, "sheet", board.ReportSheet)

	records, err := sheet.ReadFaultReport(reportPath, board.ReportSheet)
	if err != nil {
		return internal.BoardReport{}, fmt.Errorf("fault report %s: %w", reportPath, err)
	}

	logger.Info("reading lookup table", "path", cfg.LookupFile, "sheet", cfg.LookupSheet)
	lookupRows, err := sheet.ReadLookup(cfg.LookupFile, cfg.LookupSheet)
	if err != nil {
		return internal.BoardReport{}, fmt.Errorf("lookup table %s: %w", cfg.LookupFile, err)
	}
	logger.Info("read complete", "board", board.FolderName,
		"report_rows", len(records), "lookup_rows", len(lookupRows))

	gen, err := NewGenerator(cfg.Platform, board, logger)
	if err != nil {
		return internal.BoardReport{}, err
	}
	out, err := gen.Generate(records)
	if err != nil {
		return internal.BoardReport{}, fmt.Errorf("generate: %w", err)
	}

	lookup := BuildLookup(lookupRows)
	matched, unmatched := MatchFaultCodes(out, lookup, board.FolderName, logger)

	logger.Info("board complete", "board", board.FolderName,
		"records", len(out), "matched", matched, "unmatched", unmatched)

	return internal.BoardReport{
		Board:     board.FolderName,
		Records:   out,
		Matched:   matched,
		Unmatched: unmatched,
	}, nil
}

// ProcessBoards walks the configured boards in order. A failing board is
// logged and skipped; the batch continues.
func ProcessBoards(cfg config.Config, logger *slog.Logger) []internal.BoardReport {
	reports := make([]internal.BoardReport, 0, len(cfg.Boards))
	for i, board := range cfg.Boards {
		fmt.Printf("[%d/%d] %s\n", i+1, len(cfg.Boards), board.FolderName)
		report, err := ProcessBoard(cfg, board, logger)
		if err != nil {
			fmt.Printf("  skipped: %v\n", err)
			logger.Error("board skipped", "board", board.FolderName, "error", err)
			continue
		}
		fmt.Printf("  %d records, matched %d, unmatched %d\n",
			len(report.Records), report.Matched, report.Unmatched)
		reports = append(reports, report)
	}
	return reports
}

// Run processes every configured board and writes the merged artifact.
// Fatal only when no board succeeded or the write failed; no output file
// is produced in either case.
func Run(cfg config.Config, logger *slog.Logger) (Stats, string, error) {
	reports := ProcessBoards(cfg, logger)
	if len(reports) == 0 {
		logger.Error("no boards processed successfully")
		return Stats{}, "", fmt.Errorf("no boards processed successfully")
	}

	records, stats := Aggregate(reports)
	outPath := filepath.Join(cfg.OutputDir, cfg.OutputFile)
	if err := ExportRecords(records, outPath); err != nil {
		return Stats{}, "", err
	}

	logger.Info("results written", "path", outPath)
	logger.Info("run statistics", "total", stats.Total,
		"with_code", stats.WithCode, "without_code", stats.WithoutCode)
	for _, r := range reports {
		logger.Info("board distribution", "board", r.Board, "rows", len(r.Records))
	}
	return stats, outPath, nil
}
