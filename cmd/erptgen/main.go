package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"erptgen/internal/config"
	"erptgen/internal/pipeline"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cfgPath := os.Args[1]

	cfg, err := config.Load(cfgPath)
	must(err)

	logger, logPath, err := openRunLog(cfg.OutputDir)
	must(err)
	logger.Info("run started", "config", cfgPath, "platform", cfg.Platform, "boards", len(cfg.Boards))
	fmt.Printf("platform %s: %d board(s)\n", cfg.Platform, len(cfg.Boards))

	stats, outPath, err := pipeline.Run(cfg, logger)
	must(err)

	fmt.Printf("done: %d rows (%d with fault code) -> %s\n", stats.Total, stats.WithCode, outPath)
	fmt.Printf("log: %s\n", logPath)
}

// The log file stays open for the lifetime of the process; detailed
// diagnostics go here, stdout gets only coarse progress lines.
func openRunLog(dir string) (*slog.Logger, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("fault_matching_log_%s.txt", time.Now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return nil, "", err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return logger, path, nil
}

func usage() {
	fmt.Println("usage: erptgen <config.yaml>")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
