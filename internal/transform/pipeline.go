// =============================================================================
// Vendor Price-File Converter - Row Pipeline
// =============================================================================
//
// The pipeline is the external-facing boundary of the transform core: given a
// sequence of raw rows, a vendor identifier, and a deposit mapping, it yields
// the transformed rows and an aggregated, row-numbered warning list.
//
// ERROR POLICY:
//   - Unknown vendor id: fatal, the run never starts (see the registry).
//   - Everything per-row is recovered locally and surfaced as a warning; a
//     malformed row never aborts processing of the remaining rows.
//
// =============================================================================

package transform

import (
	"fmt"

	"github.com/retailops/pricefeed/internal/types"
)

// PipelineResult is the outcome of transforming one file's rows.
type PipelineResult struct {
	// VendorID is the vendor the rows were transformed as.
	VendorID string

	// Columns is the output column order for serialization.
	Columns []string

	// Rows contains the transformed rows in input order.
	Rows []types.OutputRow

	// Warnings contains all per-row warnings, each prefixed with the
	// 1-indexed data row number it belongs to.
	Warnings []string
}

// TransformRows runs every raw row through the vendor's transformer.
//
// PARAMETERS:
//   - rows: The raw rows in file order.
//   - vendorID: The vendor to transform as; resolution failure fails the run.
//   - registry: The transformer registry.
//   - deposits: The preloaded deposit mapping (read-only, may be nil/empty).
//   - opts: Optional per-run context (original data).
//
// RETURNS:
//   - The transformed rows plus aggregated warnings.
//   - An error only for an unknown vendor id.
func TransformRows(rows []types.RawRow, vendorID string, registry *Registry, deposits types.DepositMapping, opts Options) (*PipelineResult, error) {
	transformer, err := registry.Get(vendorID)
	if err != nil {
		return nil, err
	}

	result := &PipelineResult{
		VendorID: vendorID,
		Columns:  transformer.OutputColumns(),
		Rows:     make([]types.OutputRow, 0, len(rows)),
	}

	for i, row := range rows {
		outputRow, warnings := transformer.TransformRow(row, deposits, opts)
		result.Rows = append(result.Rows, outputRow)

		for _, w := range warnings {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: %s", i+1, w))
		}
	}

	return result, nil
}
