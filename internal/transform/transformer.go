// =============================================================================
// Vendor Price-File Converter - Transformer Contract
// =============================================================================
//
// Each supported vendor implements the Transformer interface: one call per
// input row producing one fully populated output row plus any data-quality
// warnings collected along the way.
//
// CONTRACT:
//   - TransformRow is a pure function of its inputs: no hidden state, no I/O.
//     It may be invoked concurrently across rows.
//   - Every key returned by OutputColumns() is present in every emitted row,
//     possibly with an empty-string value. Missing keys are a programmer
//     error, checked by the validation package and asserted in tests.
//   - Warnings are advisory and never block row emission.
//
// The vendors deliberately do not share a code path for gating, date output
// format, or UPC handling: those rules genuinely differ per vendor and are
// parameters or per-vendor code, never cross-vendor assumptions.
//
// =============================================================================

package transform

import (
	"github.com/retailops/pricefeed/internal/types"
)

// Options carries optional per-run context for a transformation.
type Options struct {
	// OriginalData maps an item identifier to values previously on record,
	// used by department preservation. Nil when no original data exists.
	OriginalData map[string]types.OriginalItem
}

// Transformer converts one vendor's raw rows into the normalized output
// schema.
type Transformer interface {
	// VendorID returns the registry identifier for this vendor.
	VendorID() string

	// TransformRow transforms a single raw row. The deposit mapping is
	// read-only shared input; the returned warning list is owned by the
	// caller.
	TransformRow(row types.RawRow, deposits types.DepositMapping, opts Options) (types.OutputRow, []string)

	// OutputColumns returns the fixed output column names in serialization
	// order. The order is significant: the row sink writes columns exactly as
	// returned here.
	OutputColumns() []string
}
