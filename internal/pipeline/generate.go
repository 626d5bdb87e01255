package pipeline

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"erptgen/internal"
	"erptgen/internal/config"
	"erptgen/internal/util"
)

// Simulator variable-pool prefixes per platform.
var platformPrefixes = map[string]string{
	"RS":   "rsspm_erpt.RSSPM_ERPT_Varpool.",
	"RH":   "rhrede.RhredeVarpool.",
	"WH":   "whvpa.WhvpaVarpool.",
	"FLS":  "fls.FlsVarPool.",
	"WA":   "wa.WaVarPool.",
	"IS":   "is.IS_Varpool.",
	"RA":   "ra.RA_Varpool.",
	"WS":   "wsetc.WsetcVarpool.",
	"DC":   "dc.DcVarpool.",
	"SD":   "avis.AVISVarpool.",
	"WSPM": "wsetc.WsetcVarpool.",
	"RSPM": "rsspm_erpt.RSSPM_ERPT_Varpool.",
	"RM":   "rm_erpt.RM_ERPT_Varpool.",
}

const defaultPrefix = "wsetc.WsetcVarpool."

// PrefixFor falls back to the default prefix with a warning when the
// platform is unknown.
func PrefixFor(platform string, logger *slog.Logger) string {
	if prefix, ok := platformPrefixes[platform]; ok {
		return prefix
	}
	logger.Warn("no variable-pool prefix for platform, using default",
		"platform", platform, "prefix", defaultPrefix)
	return defaultPrefix
}

// Generator derives the generated columns for one board.
type Generator struct {
	platform string
	module   string
	boardID  int
	prefix   string
	board    string
}

func NewGenerator(platform string, board config.Board, logger *slog.Logger) (*Generator, error) {
	module, err := moduleCode(board.FolderName)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		platform: strings.ToUpper(platform),
		module:   module,
		boardID:  board.BoardID,
		prefix:   PrefixFor(platform, logger),
		board:    board.FolderName,
	}
	logger.Info("board configuration resolved",
		"board", g.board, "board_id", g.boardID, "module", g.module, "prefix", g.prefix)
	return g, nil
}

// Generate produces the base output table. Missing offsets render as 0;
// an unparsable offset is an error.
func (g *Generator) Generate(records []internal.FaultRecord) ([]internal.OutputRecord, error) {
	out := make([]internal.OutputRecord, 0, len(records))
	for i, rec := range records {
		byteOff, err := offsetValue(rec.ByteOffset)
		if err != nil {
			return nil, fmt.Errorf("record %d: byte offset %w", i+1, err)
		}
		bitOff, err := offsetValue(rec.BitOffset)
		if err != nil {
			return nil, fmt.Errorf("record %d: bit offset %w", i+1, err)
		}
		member := strings.ToUpper(rec.Member)
		out = append(out, internal.OutputRecord{
			ActiveName: fmt.Sprintf("%s_ERPT_ACTIVE.%s_%s_%s_%s",
				g.platform, g.module, member, rec.Component, rec.ComponentIndex),
			InjectExpr: fmt.Sprintf("%serrRptInject[%d][%d][%d]",
				g.prefix, g.boardID, byteOff, bitOff),
			NativeDesc:  util.CollapseNewlines(rec.NativeDesc),
			FaultCode:   "",
			EnglishDesc: rec.EnglishDesc,
			Board:       g.board,
		})
	}
	return out, nil
}

func moduleCode(folder string) (string, error) {
	parts := strings.Split(folder, "_")
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return "", fmt.Errorf("board folder %q carries no module code", folder)
	}
	return strings.ToUpper(parts[1]), nil
}

// Offset cells may render as "5", "5.0" or with thousand separators.
func offsetValue(raw string) (int, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not numeric", raw)
	}
	return int(f), nil
}
