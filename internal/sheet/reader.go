package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"erptgen/internal"
)

// The header sits on the third row of both input sheets. The fault-report
// sheet repeats grouping info on the row under the header; that row is
// skipped.
const headerRowIdx = 2

// Fault-report column headers as they appear in the source workbooks.
const (
	colMember         = "成员名称"
	colComponent      = "器件"
	colComponentIndex = "器件编号"
	colByteOffset     = "Byte地址"
	colBitOffset      = "bit位"
	colNativeDesc     = "故障说明"
	colEnglishDesc    = "故障说明（英文）"
)

// The lookup sheet is consumed by fixed position: English description in
// column L, event code in column AG.
const (
	lookupDescCol = "L"
	lookupCodeCol = "AG"
)

var requiredColumns = []string{
	colMember, colComponent, colComponentIndex,
	colByteOffset, colBitOffset, colNativeDesc, colEnglishDesc,
}

// ReadFaultReport resolves columns by header text and drops rows that are
// entirely empty.
func ReadFaultReport(path, sheetName string) ([]internal.FaultRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	if len(rows) <= headerRowIdx {
		return nil, fmt.Errorf("sheet %q has no header row", sheetName)
	}

	idx, err := mapHeaders(rows[headerRowIdx])
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}

	out := make([]internal.FaultRecord, 0, len(rows))
	for i := headerRowIdx + 2; i < len(rows); i++ {
		row := rows[i]
		if emptyRow(row) {
			continue
		}
		out = append(out, internal.FaultRecord{
			Member:         cell(row, idx[colMember]),
			Component:      cell(row, idx[colComponent]),
			ComponentIndex: cell(row, idx[colComponentIndex]),
			ByteOffset:     cell(row, idx[colByteOffset]),
			BitOffset:      cell(row, idx[colBitOffset]),
			NativeDesc:     cell(row, idx[colNativeDesc]),
			EnglishDesc:    cell(row, idx[colEnglishDesc]),
		})
	}
	return out, nil
}

// ReadLookup reads both columns as text; blank and duplicate rows are
// retained.
func ReadLookup(path, sheetName string) ([]internal.LookupRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	if len(rows) <= headerRowIdx {
		return nil, fmt.Errorf("sheet %q has no header row", sheetName)
	}

	descIdx, _ := excelize.ColumnNameToNumber(lookupDescCol)
	codeIdx, _ := excelize.ColumnNameToNumber(lookupCodeCol)

	out := make([]internal.LookupRow, 0, len(rows))
	for i := headerRowIdx + 1; i < len(rows); i++ {
		out = append(out, internal.LookupRow{
			Description: cell(rows[i], descIdx-1),
			Code:        cell(rows[i], codeIdx-1),
		})
	}
	return out, nil
}

func mapHeaders(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
