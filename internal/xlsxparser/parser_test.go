package xlsxparser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeTestWorkbook creates a small workbook on disk and returns its path.
func writeTestWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("failed to build cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("failed to write sheet row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "sheet.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

func TestParseBasic(t *testing.T) {
	path := writeTestWorkbook(t, [][]interface{}{
		{"ITEM", "DESCRIPTION", "PRICE"},
		{"1001", "Bourbon 750ml", "24.99"},
		{"1002", "Vodka 1L", "18.50"},
	})

	data, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if data.RowCount != 2 {
		t.Fatalf("expected 2 rows, got %d", data.RowCount)
	}
	if got := data.Rows[0]["DESCRIPTION"]; got != "Bourbon 750ml" {
		t.Errorf("expected description %q, got %q", "Bourbon 750ml", got)
	}
	if got := data.Rows[1]["PRICE"]; got != "18.50" {
		t.Errorf("expected price %q, got %q", "18.50", got)
	}
}

func TestParseSkipsTitleBand(t *testing.T) {
	path := writeTestWorkbook(t, [][]interface{}{
		{"", "", ""},
		{"ITEM", "PRICE"},
		{"1001", "2.99"},
	})

	data, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if len(data.Headers) < 2 || data.Headers[0] != "ITEM" {
		t.Errorf("expected headers from first non-empty row, got %v", data.Headers)
	}
	if data.RowCount != 1 {
		t.Errorf("expected 1 data row, got %d", data.RowCount)
	}
}

func TestParseShortRowsPadEmpty(t *testing.T) {
	path := writeTestWorkbook(t, [][]interface{}{
		{"A", "B", "C"},
		{"1", "2"},
	})

	data, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if got, ok := data.Rows[0]["C"]; !ok || got != "" {
		t.Errorf("expected missing trailing cell to be empty, got %q (present=%v)", got, ok)
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "nope.xlsx")); err == nil {
		t.Error("expected error for missing workbook")
	}
}
