// =============================================================================
// Vendor Price-File Converter - CSV Writer Module
// =============================================================================
//
// This module is the row sink: it serializes transformed rows to the
// normalized CSV format the downstream retail system imports.
//
// COLUMN ORDER: the writer takes the column order straight from the vendor
// transformer's OutputColumns() and writes it exactly; the downstream import
// is positional and any reordering breaks it. Field quoting and escaping
// follow RFC 4180 via encoding/csv.
//
// =============================================================================

package csvwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/retailops/pricefeed/internal/types"
)

// Write serializes rows to a CSV file at the given path.
//
// PARAMETERS:
//   - outputPath: The destination file path.
//   - columns: The output column names in serialization order.
//   - rows: The transformed rows; every row is expected to carry every
//     column (the validation package enforces this before writing).
//
// RETURNS:
//   - An error if the file cannot be created or written.
func Write(outputPath string, columns []string, rows []types.OutputRow) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := WriteTo(file, columns, rows); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// WriteTo serializes rows to any writer. The header row is always written,
// even when there are no data rows.
func WriteTo(w io.Writer, columns []string, rows []types.OutputRow) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(columns); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	record := make([]string, len(columns))
	for i, row := range rows {
		for j, col := range columns {
			record[j] = row[col]
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
