// =============================================================================
// Vendor Price-File Converter - Output Contract Validation
// =============================================================================
//
// This module checks transformed rows against the vendor's output contract
// before they reach the row sink.
//
// WHAT IS CHECKED HERE:
//   Exactly one thing: that every row carries every column the vendor's
//   OutputColumns() promises, and nothing it doesn't. A violation is a
//   programmer error in a transformer, not a data problem: per-value issues
//   (bad dates, odd flags, missing deposits) are already surfaced as warnings
//   by the transform core, and re-validating values here would just duplicate
//   transformer logic and drift from it.
//
// =============================================================================

package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/retailops/pricefeed/internal/types"
)

// =============================================================================
// VALIDATION ERROR STRUCTURE
// =============================================================================

// ValidationError describes one contract violation in one row.
type ValidationError struct {
	// RowNumber is the 1-indexed data row the violation was found in.
	RowNumber int

	// Column is the affected output column name.
	Column string

	// Message describes the violation.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d, column %q: %s", e.RowNumber, e.Column, e.Message)
}

// =============================================================================
// VALIDATION FUNCTIONS
// =============================================================================

// Validate checks every row against the output column contract.
//
// PARAMETERS:
//   - rows: The transformed rows.
//   - columns: The vendor's output columns in serialization order.
//
// RETURNS:
//   - All violations found, empty for a clean run.
func Validate(rows []types.OutputRow, columns []string) []*ValidationError {
	var errors []*ValidationError

	expected := make(map[string]bool, len(columns))
	for _, col := range columns {
		expected[col] = true
	}

	for i, row := range rows {
		for _, col := range columns {
			if _, ok := row[col]; !ok {
				errors = append(errors, &ValidationError{
					RowNumber: i + 1,
					Column:    col,
					Message:   "output column missing from transformed row",
				})
			}
		}

		// Extra keys mean a transformer wrote outside its declared schema.
		if len(row) > len(columns) {
			extras := make([]string, 0, len(row)-len(columns))
			for key := range row {
				if !expected[key] {
					extras = append(extras, key)
				}
			}
			sort.Strings(extras)
			for _, key := range extras {
				errors = append(errors, &ValidationError{
					RowNumber: i + 1,
					Column:    key,
					Message:   "column not declared in the vendor's output schema",
				})
			}
		}
	}

	return errors
}

// =============================================================================
// ERROR REPORTING
// =============================================================================

// FormatErrors renders violations as a human-readable block for logs.
func FormatErrors(errors []*ValidationError) string {
	if len(errors) == 0 {
		return "no validation errors"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d validation error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Fprintf(&b, "  - %s\n", e.Error())
	}
	return b.String()
}

// WriteErrorLog writes violations to a timestamped log file in the given
// directory and returns the log path.
func WriteErrorLog(errors []*ValidationError, dir string) (string, error) {
	logPath := filepath.Join(dir, fmt.Sprintf("validation_errors_%s.log", time.Now().Format("20060102_150405")))

	if err := os.WriteFile(logPath, []byte(FormatErrors(errors)), 0644); err != nil {
		return "", fmt.Errorf("failed to write error log: %w", err)
	}

	return logPath, nil
}
