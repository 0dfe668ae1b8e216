package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// All five accepted input patterns must normalize to the same calendar date
// (day=1, month=12, year=2025), rendered per the requested output format.
func TestNormalizeDateRoundTripsAllPatterns(t *testing.T) {
	inputs := []struct {
		name string
		raw  string
	}{
		{"compact", "20251201"},
		{"dashed year-first", "2025-12-1"},
		{"US slash", "12/1/2025"},
		{"day-first dash", "1-12-2025"},
		{"two-digit-year slash", "1/12/25"},
		{"two-digit-year dash", "1-12-25"},
	}

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			compact, warn := NormalizeDate(tt.raw, DateCompact)
			assert.Empty(t, warn)
			assert.Equal(t, "20251201", compact)

			dayFirst, warn := NormalizeDate(tt.raw, DateDayFirst)
			assert.Empty(t, warn)
			assert.Equal(t, "01-12-2025", dayFirst)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		format      DateFormat
		expected    string
		wantWarning bool
	}{
		{"empty is silent", "", DateCompact, "", false},
		{"zero-pads month and day", "2025-3-5", DateCompact, "20250305", false},
		{"two-digit year below 50 is 20xx", "1/6/49", DateDayFirst, "01-06-2049", false},
		{"two-digit year at 50 is 19xx", "1/6/50", DateDayFirst, "01-06-1950", false},
		{"day 31 accepted in every month", "2025-2-31", DateCompact, "20250231", false},
		{"month out of range", "2025-13-01", DateCompact, "", true},
		{"day out of range", "2025-01-32", DateCompact, "", true},
		{"day zero", "2025-01-0", DateCompact, "", true},
		{"garbage", "next week", DateCompact, "", true},
		{"partial numeric", "2025-12", DateCompact, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, warning := NormalizeDate(tt.input, tt.format)
			assert.Equal(t, tt.expected, value)
			if tt.wantWarning {
				assert.Contains(t, warning, tt.input)
			} else {
				assert.Empty(t, warning)
			}
		})
	}
}
