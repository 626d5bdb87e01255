package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"erptgen/internal"
)

// Output columns in artifact order; the board tag is not written.
var exportHeaders = []string{
	"active_name", "inject_expr", "description", "fault_code", "description_en",
}

// ExportRecords writes a workbook when outputPath ends in .xlsx, otherwise
// UTF-8 CSV with a byte-order mark.
func ExportRecords(records []internal.OutputRecord, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(outputPath), ".xlsx") {
		return exportXLSX(records, outputPath)
	}
	return exportCSV(records, outputPath)
}

func exportCSV(records []internal.OutputRecord, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(exportHeaders); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(exportFields(rec)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func exportXLSX(records []internal.OutputRecord, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i, rec := range records {
		for j, v := range exportFields(rec) {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	return f.SaveAs(outputPath)
}

func exportFields(rec internal.OutputRecord) []string {
	return []string{rec.ActiveName, rec.InjectExpr, rec.NativeDesc, rec.FaultCode, rec.EnglishDesc}
}
