// =============================================================================
// Vendor Price-File Converter - Value Transforms
// =============================================================================
//
// This module provides the stateless value-level transformations shared by the
// vendor transformers. Each function converts a single field's raw string into
// a normalized value, optionally with a warning describing a data-quality
// issue found along the way.
//
// TRANSFORMATION TYPES:
//   - UPC normalization (leading-zero stripping, fixed-width padding)
//   - Boolean flag remapping (Y/N -> POS flag values)
//   - Loose numeric parsing (currency symbols, stray characters)
//   - Date normalization across the vendors' accepted input patterns
//   - Fixed-point money formatting
//   - Case-insensitive, multi-alias column resolution
//
// All functions here are pure: no hidden state, no I/O, safe for concurrent
// use across rows.
//
// =============================================================================

package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retailops/pricefeed/internal/types"
)

// =============================================================================
// UPC NORMALIZATION
// =============================================================================

// NormalizeLeadingZeroUPC strips exactly one leading zero from a UPC.
//
// EXAMPLE:
//   Input: "012345"   Output: "12345"
//   Input: "0012345"  Output: "012345" (one zero removed, one remains)
//   Input: "12345"    Output: "12345"  (unchanged)
//
// Empty input is returned unchanged. The value is trimmed before the check, so
// " 012345 " also becomes "12345".
func NormalizeLeadingZeroUPC(raw string) string {
	if raw == "" {
		return raw
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}

	// Strip exactly one leading zero, never all of them.
	if trimmed[0] == '0' {
		return trimmed[1:]
	}

	return trimmed
}

// PadLeft pads a string with a character on the left to reach the target
// length. Strings already at or beyond the target length pass through
// unchanged.
func PadLeft(s string, length int, padChar rune) string {
	if len(s) >= length {
		return s
	}
	padding := make([]rune, length-len(s))
	for i := range padding {
		padding[i] = padChar
	}
	return string(padding) + s
}

// DigitsOnly strips every non-digit character from a string.
//
// EXAMPLE:
//   Input: "0-12345-67890-5"  Output: "012345678905"
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// =============================================================================
// BOOLEAN FLAG REMAPPING
// =============================================================================

// MapBooleanFlag converts a vendor Y/N flag into the downstream system's
// flag value.
//
// MAPPING:
//   "Y" (any case, surrounding spaces ignored) -> "1"
//   "N" (any case)                             -> ""
//   empty / absent                             -> ""
//   anything else -> original value unchanged, plus a warning
//
// The function is total: every input produces a defined result, never an
// error. Unexpected values are passed through untouched (not uppercased) so
// the downstream file shows exactly what the vendor sent.
func MapBooleanFlag(raw string) (value string, warning string) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))

	switch normalized {
	case "Y":
		return "1", ""
	case "N", "":
		return "", ""
	default:
		return raw, fmt.Sprintf("unexpected flag value %q", raw)
	}
}

// =============================================================================
// LOOSE NUMERIC PARSING
// =============================================================================

// ParseNumericLoose parses a raw cell value as a floating-point number,
// tolerating currency symbols, commas, and other stray characters.
//
// PARSING PROCESS:
//   1. Strip every character except digits, '.' and '-'.
//   2. Take the longest leading run that still forms a valid number.
//   3. Parse that prefix as a float.
//
// Returns nil for absent/empty input and for values with no numeric content.
//
// KNOWN LOOSE BEHAVIOR: malformed strings like "1.2.3" parse as 1.2 (the
// valid prefix wins). Real-world deposit resolution depends on this, so it is
// deliberate and covered by tests; do not tighten it.
func ParseNumericLoose(raw string) *float64 {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return nil
	}

	// Longest valid numeric prefix: optional sign, digits, at most one dot.
	end := 0
	seenDot := false
	for i, r := range cleaned {
		if r == '-' && i != 0 {
			break
		}
		if r == '.' {
			if seenDot {
				break
			}
			seenDot = true
		}
		end = i + 1
	}

	prefix := cleaned[:end]
	num, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return nil
	}

	return &num
}

// FormatNumeric renders a parsed number back to its canonical string form, the
// same way strconv renders it with minimal digits. "0.30" and "0.3" both come
// back as "0.3", which is what makes re-parsed deposit-amount lookups line up.
func FormatNumeric(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// FormatMoney formats a raw monetary value to exactly two decimal places using
// fixed-point rounding (not string truncation).
//
// EXAMPLE:
//   Input: "4.5"    Output: "4.50"
//   Input: "$4.599" Output: "4.60"
//
// Values with no numeric content pass through unchanged.
func FormatMoney(raw string) string {
	n := ParseNumericLoose(raw)
	if n == nil {
		return raw
	}
	return strconv.FormatFloat(*n, 'f', 2, 64)
}

// =============================================================================
// COLUMN RESOLUTION
// =============================================================================

// ColumnValue looks up a column in a raw row by name.
//
// LOOKUP ORDER:
//   1. Exact key match.
//   2. Case-insensitive scan over all keys; first match wins.
//
// The tie-break among multiple case-insensitive matches is unspecified (map
// iteration order); vendor files never carry two headers differing only in
// case.
func ColumnValue(row types.RawRow, name string) (string, bool) {
	if v, ok := row[name]; ok {
		return v, true
	}

	for key, v := range row {
		if strings.EqualFold(key, name) {
			return v, true
		}
	}

	return "", false
}

// FirstColumnValue resolves a column through a list of historical alias
// spellings, returning the first one present in the row.
//
// USE CASE: AGNE sheets have carried both TPR_RETAIL and TRP_RETAIL over the
// years; both must be accepted wherever a TPR field is read.
func FirstColumnValue(row types.RawRow, names ...string) string {
	for _, name := range names {
		if v, ok := ColumnValue(row, name); ok {
			return v
		}
	}
	return ""
}
