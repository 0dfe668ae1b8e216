// =============================================================================
// Vendor Price-File Converter - Deposit Fee Lookup
// =============================================================================
//
// Bottle/container deposits in the downstream system are identified by
// canonical fee codes, while vendor sheets carry them as monetary amounts (or
// not at all). This module resolves a row against the preloaded deposit
// reference mapping.
//
// RESOLUTION ORDER (fixed; preserved exactly as deployed even where a simpler
// priority might look more intuitive, because changing it would alter
// real-world fee resolution outcomes):
//   1. Exact match on the row's pre-existing deposit value as given.
//   2. Exact match on that value re-parsed through the loose numeric parser
//      and re-stringified ("0.30" and "0.3" resolve to the same key).
//   3. Fallback match on the row's normalized UPC, then its item identifier.
//   4. No match: empty fee code plus a warning naming the failed key, unless
//      the row had no candidate key at all, in which case absence of a key is
//      not itself a data-quality issue and no warning is emitted.
//
// Never returns an error; every branch has a defined fallback.
//
// =============================================================================

package transform

import (
	"fmt"

	"github.com/retailops/pricefeed/internal/types"
)

// ResolveDeposit resolves a row's deposit fee code.
//
// PARAMETERS:
//   - rawValue: The vendor's pre-existing deposit amount column, as given.
//   - upc: The row's normalized UPC (already through the vendor's UPC rules).
//   - item: The row's item identifier.
//   - deposits: The preloaded deposit reference mapping (read-only).
//
// RETURNS:
//   - The canonical fee code, or "" when nothing matched.
//   - A warning naming the failed lookup key, or "" (see resolution order
//     above for when absence is silent).
func ResolveDeposit(rawValue, upc, item string, deposits types.DepositMapping) (code string, warning string) {
	// Step 1: the amount exactly as the vendor wrote it.
	if rawValue != "" {
		if fee, ok := deposits[rawValue]; ok {
			return fee, ""
		}

		// Step 2: the amount re-parsed and re-stringified, so formatting
		// differences between the sheet and the reference file don't matter.
		if n := ParseNumericLoose(rawValue); n != nil {
			if fee, ok := deposits[FormatNumeric(*n)]; ok {
				return fee, ""
			}
		}
	}

	// Step 3: fall back to product identity, UPC before item.
	if upc != "" {
		if fee, ok := deposits[upc]; ok {
			return fee, ""
		}
	}
	if item != "" {
		if fee, ok := deposits[item]; ok {
			return fee, ""
		}
	}

	// Step 4: nothing matched. A row with no candidate key at all is emitted
	// silently; otherwise warn with the key that failed.
	key := upc
	if key == "" {
		key = item
	}
	if key == "" {
		return "", ""
	}

	return "", fmt.Sprintf("no deposit mapping found for %q", key)
}
