// =============================================================================
// Vendor Price-File Converter - Special Pricing Derivation
// =============================================================================
//
// A "special pricing group" is the set of output fields describing one
// promotional pricing mechanism: method flag, per-unit price, quantity,
// deal/group price, cost, and the date window. AGNE sheets carry two
// independent groups per row (the Sale window and the TPR window); each is
// derived through the same rules.
//
// HAS-DATA GATING:
//   A group is populated with real values ONLY if at least one of its raw
//   fields is non-empty (price, cost, start date, end date) or the multiplier
//   parses to a number greater than zero. A group with no data at all emits
//   every field as the empty string, never a default "0", because "0" would
//   be indistinguishable from "no special pricing, explicitly confirmed".
//
// MULTIPLIER BRANCH (within a has-data group):
//   multiplier > 1  : "buy N for group price" deal. The deal-price field
//                     receives the ORIGINAL per-unit special price, the
//                     per-unit price is overwritten with the regular retail,
//                     the method flag is the multi-unit sentinel, and the
//                     quantity carries the original multiplier text.
//   otherwise       : simple single-unit discount. Per-unit price kept as-is,
//                     method flag is the flat sentinel, quantity and
//                     deal-price stay empty.
//
// =============================================================================

package transform

import (
	"strconv"

	"github.com/retailops/pricefeed/internal/types"
)

// =============================================================================
// METHOD FLAG SENTINELS
// =============================================================================

// Method flag values understood by the downstream POS system.
const (
	// PriceMethodFlat marks a simple single-unit discount.
	PriceMethodFlat = "1"

	// PriceMethodMultiUnit marks a "buy N for group price" deal.
	PriceMethodMultiUnit = "2"
)

// =============================================================================
// PRICING GROUP TYPES
// =============================================================================

// PricingFields holds the raw input fields contributing to one special
// pricing group, exactly as read from the row.
type PricingFields struct {
	// Price is the per-unit special/promotional price.
	Price string

	// Cost is the promotional unit cost.
	Cost string

	// Multiplier is the deal quantity field (e.g. SALE_MULTIPLE).
	Multiplier string

	// StartDate and EndDate bound the promotion window.
	StartDate string
	EndDate   string
}

// PricingResult holds the derived output fields for one group. All fields are
// empty strings when the group had no data.
type PricingResult struct {
	Method    string
	Price     string
	Qty       string
	DealPrice string
	Cost      string
	StartDate string
	EndDate   string
}

// =============================================================================
// DERIVATION
// =============================================================================

// DerivePricing derives one special pricing group.
//
// PARAMETERS:
//   - fields: The group's raw input fields.
//   - regularRetail: The row's regular (non-promotional) retail price, used as
//     the per-unit price in the multi-unit branch.
//   - dateFormat: The vendor's date output rendering.
//
// RETURNS:
//   - The derived group, all-empty when the group has no data.
//   - Warnings for unparseable dates within the window.
func DerivePricing(fields PricingFields, regularRetail string, dateFormat DateFormat) (PricingResult, []string) {
	var result PricingResult
	var warnings []string

	if !hasPricingData(fields) {
		return result, nil
	}

	var warn string
	result.StartDate, warn = NormalizeDate(fields.StartDate, dateFormat)
	if warn != "" {
		warnings = append(warnings, warn)
	}
	result.EndDate, warn = NormalizeDate(fields.EndDate, dateFormat)
	if warn != "" {
		warnings = append(warnings, warn)
	}

	result.Cost = fields.Cost

	multiplier := ParseNumericLoose(fields.Multiplier)
	if multiplier != nil && *multiplier > 1 {
		result.Method = PriceMethodMultiUnit
		result.DealPrice = fields.Price
		result.Price = regularRetail
		result.Qty = fields.Multiplier
	} else {
		result.Method = PriceMethodFlat
		result.Price = fields.Price
	}

	return result, warnings
}

// hasPricingData reports whether any raw field in the group carries data. The
// multiplier only counts when it parses to a number greater than zero; a
// vendor filling "0" into an otherwise blank group means "no deal".
func hasPricingData(fields PricingFields) bool {
	if fields.Price != "" || fields.Cost != "" || fields.StartDate != "" || fields.EndDate != "" {
		return true
	}
	if m := ParseNumericLoose(fields.Multiplier); m != nil && *m > 0 {
		return true
	}
	return false
}

// =============================================================================
// DEPARTMENT PRESERVATION
// =============================================================================

// ResolveDepartment resolves an output department/category value against an
// optional externally supplied original, keyed by item identifier.
//
// RULES:
//   - Original exists and differs from the incoming value: the ORIGINAL wins,
//     with a warning naming both values.
//   - No original supplied, or the values match: the incoming value passes
//     through with no warning.
func ResolveDepartment(incoming, itemKey string, originals map[string]types.OriginalItem) (value string, warning string) {
	original, ok := originals[itemKey]
	if !ok {
		return incoming, ""
	}

	if original.Department != "" && original.Department != incoming {
		return original.Department, "department mismatch for " + itemKey +
			": keeping original " + strconv.Quote(original.Department) +
			" over incoming " + strconv.Quote(incoming)
	}

	return incoming, ""
}
