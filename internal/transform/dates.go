// =============================================================================
// Vendor Price-File Converter - Date Normalization
// =============================================================================
//
// Vendor sheets carry promotion dates in a handful of formats, sometimes mixed
// within a single file. This module normalizes them to the output format each
// vendor's downstream schema expects.
//
// ACCEPTED INPUT PATTERNS (tried in this priority order):
//   1. YYYYMMDD      compact, no separators
//   2. YYYY-M-D      1-2 digit month/day
//   3. M/D/YYYY      US slash order
//   4. D-M-YYYY      day-first dash order
//   5. D/M/YY, D-M-YY  2-digit year: <50 -> 20YY, otherwise 19YY
//
// VALIDATION: month 1-12 and day 1-31 only. There is intentionally no
// per-month day-count check; day 31 passes for every month because that is
// what the deployed system accepts, and rejecting it would change which rows
// warn. Dates are therefore rendered with sprintf, never time.Date, which
// would roll Feb 31 over into March.
//
// =============================================================================

package transform

import (
	"fmt"
	"regexp"
	"strconv"
)

// DateFormat selects the output rendering for a normalized date. The output
// pattern is a per-vendor transformer parameter, not a shared constant: AGNE
// emits compact YYYYMMDD while Pine State emits DD-MM-YYYY.
type DateFormat int

const (
	// DateCompact renders as YYYYMMDD (AGNE).
	DateCompact DateFormat = iota

	// DateDayFirst renders as DD-MM-YYYY (Pine State).
	DateDayFirst
)

// datePatterns are the accepted input patterns in priority order. Each entry
// names the capture positions of year, month and day within its match.
var datePatterns = []struct {
	re               *regexp.Regexp
	year, month, day int
	twoDigitYear     bool
}{
	{regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})$`), 1, 2, 3, false},         // YYYYMMDD
	{regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`), 1, 2, 3, false},   // YYYY-M-D
	{regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`), 3, 1, 2, false},   // M/D/YYYY
	{regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`), 3, 2, 1, false},   // D-M-YYYY
	{regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{2})$`), 3, 2, 1, true}, // D/M/YY, D-M-YY
}

// NormalizeDate converts a raw date cell into the requested output format.
//
// PARAMETERS:
//   - raw: The cell value as it appeared in the file.
//   - format: The vendor's output rendering.
//
// RETURNS:
//   - The normalized date, or "" when raw is empty or unparseable.
//   - A warning naming the original value when no pattern matched or the
//     month/day range check failed. Empty input yields no warning.
func NormalizeDate(raw string, format DateFormat) (value string, warning string) {
	if raw == "" {
		return "", ""
	}

	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}

		year, _ := strconv.Atoi(m[p.year])
		month, _ := strconv.Atoi(m[p.month])
		day, _ := strconv.Atoi(m[p.day])

		if p.twoDigitYear {
			if year < 50 {
				year += 2000
			} else {
				year += 1900
			}
		}

		if month < 1 || month > 12 || day < 1 || day > 31 {
			return "", fmt.Sprintf("could not parse date: %s", raw)
		}

		return renderDate(format, year, month, day), ""
	}

	return "", fmt.Sprintf("could not parse date: %s", raw)
}

// renderDate renders a validated calendar date, zero-padding month and day to
// two digits.
func renderDate(format DateFormat, year, month, day int) string {
	switch format {
	case DateDayFirst:
		return fmt.Sprintf("%02d-%02d-%04d", day, month, year)
	default:
		return fmt.Sprintf("%04d%02d%02d", year, month, day)
	}
}
