// =============================================================================
// Vendor Price-File Converter - Deposit Reference Builder
// =============================================================================
//
// This module builds the DepositMapping from the deposit-fee reference file.
// The reference file is maintained by the back office independently of any
// vendor and is parsed once per run, before transformation starts. The
// resulting mapping is read-only for the rest of the run.
//
// REFERENCE FILE COLUMNS (case-insensitive):
//   FEE CODE  - required; the canonical fee identifier
//   AMOUNT    - optional; the deposit amount (e.g. "0.05")
//   UPC       - optional; a product UPC carrying this fee
//   ITEM      - optional; an item identifier carrying this fee
//
// Each non-empty key form maps to the fee code. The amount is inserted both
// exactly as written AND re-stringified through the loose numeric parser, so
// "0.30" in the reference file still matches a vendor sheet that says "0.3".
//
// =============================================================================

package depositfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retailops/pricefeed/internal/csvparser"
	"github.com/retailops/pricefeed/internal/transform"
	"github.com/retailops/pricefeed/internal/types"
	"github.com/retailops/pricefeed/internal/xlsxparser"
)

// Load parses a deposit reference file (CSV or XLSX, by extension) and builds
// the mapping.
//
// PARAMETERS:
//   - filePath: The path to the reference file. Empty returns an empty
//     mapping: running without deposit data is allowed, rows simply collect
//     deposit-not-found warnings.
//
// RETURNS:
//   - The deposit mapping.
//   - An error if the file cannot be parsed or has no fee-code column.
func Load(filePath string) (types.DepositMapping, error) {
	if filePath == "" {
		return types.DepositMapping{}, nil
	}

	var data *types.FileData
	var err error

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".xlsx", ".xlsm":
		data, err = xlsxparser.Parse(filePath)
	default:
		data, err = csvparser.Parse(filePath, csvparser.DefaultSettings())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse deposit reference file: %w", err)
	}

	return Build(data.Rows)
}

// Build constructs the mapping from already-parsed reference rows.
func Build(rows []types.RawRow) (types.DepositMapping, error) {
	mapping := make(types.DepositMapping)

	for i, row := range rows {
		feeCode, ok := transform.ColumnValue(row, "FEE CODE")
		if !ok {
			return nil, fmt.Errorf("deposit reference row %d has no FEE CODE column", i+1)
		}
		if feeCode == "" {
			// A keyed row without a fee code can't resolve anything.
			continue
		}

		if amount, _ := transform.ColumnValue(row, "AMOUNT"); amount != "" {
			mapping[amount] = feeCode
			if n := transform.ParseNumericLoose(amount); n != nil {
				mapping[transform.FormatNumeric(*n)] = feeCode
			}
		}

		if upc, _ := transform.ColumnValue(row, "UPC"); upc != "" {
			mapping[upc] = feeCode
		}

		if item, _ := transform.ColumnValue(row, "ITEM"); item != "" {
			mapping[item] = feeCode
		}
	}

	return mapping, nil
}
