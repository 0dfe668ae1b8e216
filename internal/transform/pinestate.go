// =============================================================================
// Vendor Price-File Converter - Pine State Transformer
// =============================================================================
//
// Pine State's spirits monthly specials sheet is narrower (~12 columns) and
// plays by different rules than AGNE. The differences are deliberate and must
// not be collapsed into a shared code path:
//
//   - UPC is zero-padded UP TO 13 digits, not stripped: the value is reduced
//     to digits, left-padded when shorter than 13, passed through unchanged
//     when 13 or longer. A value with no digits at all emits empty (with a
//     warning when the original input was non-empty).
//   - The item number is zero-padded to 6 digits only when purely numeric;
//     anything else passes through verbatim.
//   - Monetary fields are formatted to exactly two decimal places via
//     fixed-point rounding, never string truncation.
//   - The sale method column is ALWAYS the flat sentinel, regardless of data
//     presence; there is no has-data gating for this vendor.
//   - Dates render as DD-MM-YYYY and accept the full input pattern set,
//     including the 2-digit-year slash and dash variants.
//   - SAVINGS and PROOF are dropped (deny-list).
//
// =============================================================================

package transform

import (
	"fmt"

	"github.com/retailops/pricefeed/internal/types"
)

// Fixed identifier widths on the Pine State output schema.
const (
	pineStateUPCWidth  = 13
	pineStateItemWidth = 6
)

// PineStateTransformer implements Transformer for Pine State spirits sheets.
type PineStateTransformer struct{}

// NewPineStateTransformer creates the Pine State transformer.
func NewPineStateTransformer() *PineStateTransformer {
	return &PineStateTransformer{}
}

// pineStateOutputColumns is the fixed output order for Pine State files.
var pineStateOutputColumns = []string{
	"Item Number",
	"Description",
	"UPC",
	"Size",
	"Category",
	"Regular Price",
	"Sale Price",
	"Case Cost",
	"Sale Method",
	"Sale Start",
	"Sale End",
	"Deposit",
}

// pineStateDroppedColumns is the input deny-list.
var pineStateDroppedColumns = []string{"SAVINGS", "PROOF"}

// VendorID returns the registry identifier.
func (t *PineStateTransformer) VendorID() string {
	return "pinestate"
}

// OutputColumns returns the output column names in serialization order.
func (t *PineStateTransformer) OutputColumns() []string {
	return pineStateOutputColumns
}

// DroppedColumns returns the input deny-list for introspection.
func (t *PineStateTransformer) DroppedColumns() []string {
	return pineStateDroppedColumns
}

// TransformRow transforms a single Pine State row.
func (t *PineStateTransformer) TransformRow(row types.RawRow, deposits types.DepositMapping, opts Options) (types.OutputRow, []string) {
	var warnings []string
	out := make(types.OutputRow, len(pineStateOutputColumns))

	// ==========================================================================
	// IDENTIFIERS
	// ==========================================================================

	item := normalizePineStateItem(FirstColumnValue(row, "ITEM NUMBER"))
	out["Item Number"] = item
	out["Description"] = FirstColumnValue(row, "DESCRIPTION")
	out["Size"] = FirstColumnValue(row, "SIZE")

	upc, warn := normalizePineStateUPC(FirstColumnValue(row, "UPC"))
	out["UPC"] = upc
	if warn != "" {
		warnings = append(warnings, warn)
	}

	category, warn := ResolveDepartment(FirstColumnValue(row, "CATEGORY"), item, opts.OriginalData)
	out["Category"] = category
	if warn != "" {
		warnings = append(warnings, warn)
	}

	// ==========================================================================
	// MONEY
	// ==========================================================================

	out["Regular Price"] = FormatMoney(FirstColumnValue(row, "REGULAR PRICE"))
	out["Sale Price"] = FormatMoney(FirstColumnValue(row, "SALE PRICE"))
	out["Case Cost"] = FormatMoney(FirstColumnValue(row, "CASE COST"))

	// ==========================================================================
	// SALE WINDOW
	// ==========================================================================
	// Pine State specials are always flat per-unit discounts; the method flag
	// is a constant, not gated on data presence.

	out["Sale Method"] = PriceMethodFlat

	start, warn := NormalizeDate(FirstColumnValue(row, "START DATE"), DateDayFirst)
	out["Sale Start"] = start
	if warn != "" {
		warnings = append(warnings, warn)
	}

	end, warn := NormalizeDate(FirstColumnValue(row, "END DATE"), DateDayFirst)
	out["Sale End"] = end
	if warn != "" {
		warnings = append(warnings, warn)
	}

	// ==========================================================================
	// DEPOSIT
	// ==========================================================================

	deposit, warn := ResolveDeposit(FirstColumnValue(row, "BOTTLE DEPOSIT"), upc, item, deposits)
	out["Deposit"] = deposit
	if warn != "" {
		warnings = append(warnings, warn)
	}

	return out, warnings
}

// normalizePineStateUPC reduces a UPC to digits and left-pads it to the fixed
// 13-digit width. Values already at or beyond the width pass through
// unchanged; values with no digits at all come back empty, with a warning
// when the original input was non-empty.
func normalizePineStateUPC(raw string) (value string, warning string) {
	digits := DigitsOnly(raw)
	if digits == "" {
		if raw != "" {
			return "", fmt.Sprintf("unparseable UPC %q", raw)
		}
		return "", ""
	}
	return PadLeft(digits, pineStateUPCWidth, '0'), ""
}

// normalizePineStateItem zero-pads an item number to the fixed 6-digit width
// only when it is purely numeric; anything else passes through verbatim.
func normalizePineStateItem(raw string) string {
	if raw == "" || DigitsOnly(raw) != raw {
		return raw
	}
	return PadLeft(raw, pineStateItemWidth, '0')
}
