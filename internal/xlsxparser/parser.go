// =============================================================================
// Vendor Price-File Converter - XLSX Parser Module
// =============================================================================
//
// This module is the XLSX row source. Some vendors send their price sheets as
// Excel workbooks rather than CSV; this parser reads the first sheet (or a
// named one) into the same FileData shape the CSV parser produces.
//
// Cells are read with RawCellValue so that Excel's display formatting never
// rewrites the data: a cell holding "012345" stays "012345", and a currency
// cell comes back as the underlying value rather than a locale-rendered
// string. The transform core depends on that.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/retailops/pricefeed/internal/types"
	"github.com/xuri/excelize/v2"
)

// Parse reads the first sheet of an XLSX workbook.
//
// PARAMETERS:
//   - filePath: The path to the workbook.
//
// RETURNS:
//   - The parsed sheet: headers from the first non-empty row plus one RawRow
//     per data row.
//   - An error if the workbook cannot be opened or has no sheets.
func Parse(filePath string) (*types.FileData, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	return parseSheet(f, sheets[0], filePath)
}

// ParseSheet reads a named sheet of an XLSX workbook.
func ParseSheet(filePath, sheetName string) (*types.FileData, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return parseSheet(f, sheetName, filePath)
}

// parseSheet extracts headers and data rows from one sheet.
func parseSheet(f *excelize.File, sheetName, filePath string) (*types.FileData, error) {
	records, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	// Skip leading blank rows; vendor sheets often start with a title band.
	start := 0
	for start < len(records) && isRowEmpty(records[start]) {
		start++
	}
	if start >= len(records) {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	headers := cleanHeaders(records[start])

	rows := make([]types.RawRow, 0, len(records)-start-1)
	for _, record := range records[start+1:] {
		if isRowEmpty(record) {
			continue
		}

		row := make(types.RawRow, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}

		rows = append(rows, row)
	}

	return &types.FileData{
		Headers:    headers,
		Rows:       rows,
		SourceFile: filePath,
		RowCount:   len(rows),
	}, nil
}

// cleanHeaders trims header values and names any empty headers by position.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))

	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}

	return cleaned
}

// isRowEmpty checks if a record contains only empty values.
func isRowEmpty(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
