package transform

import (
	"testing"

	"github.com/retailops/pricefeed/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeLeadingZeroUPC(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single leading zero", "012345", "12345"},
		{"only one zero stripped", "0012345", "012345"},
		{"no leading zero", "12345", "12345"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"trimmed before check", " 012345 ", "12345"},
		{"lone zero", "0", ""},
		{"non-numeric", "ABC", "ABC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLeadingZeroUPC(tt.input))
		})
	}
}

func TestMapBooleanFlagIsTotal(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		wantWarning bool
	}{
		{"upper Y", "Y", "1", false},
		{"lower y", "y", "1", false},
		{"padded y", " y ", "1", false},
		{"upper N", "N", "", false},
		{"lower n", "n", "", false},
		{"empty", "", "", false},
		{"whitespace", "  ", "", false},
		{"garbage passes through unchanged", "maybe", "maybe", true},
		{"garbage is not uppercased", "x1", "x1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, warning := MapBooleanFlag(tt.input)
			assert.Equal(t, tt.expected, value)
			if tt.wantWarning {
				assert.Contains(t, warning, tt.input)
			} else {
				assert.Empty(t, warning)
			}
		})
	}
}

func TestParseNumericLoose(t *testing.T) {
	ptr := func(f float64) *float64 { return &f }

	tests := []struct {
		name     string
		input    string
		expected *float64
	}{
		{"plain integer", "42", ptr(42)},
		{"decimal", "0.30", ptr(0.3)},
		{"currency symbol", "$1.99", ptr(1.99)},
		{"thousands separator", "1,234.50", ptr(1234.5)},
		{"negative", "-2.5", ptr(-2.5)},
		{"empty", "", nil},
		{"whitespace", "   ", nil},
		{"no numeric content", "abc", nil},
		{"loose prefix of malformed value", "1.2.3", ptr(1.2)},
		{"dash in the middle stops the prefix", "1-2", ptr(1)},
		{"lone dash", "-", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumericLoose(tt.input)
			if tt.expected == nil {
				assert.Nil(t, got)
			} else {
				if assert.NotNil(t, got) {
					assert.InDelta(t, *tt.expected, *got, 1e-9)
				}
			}
		})
	}
}

func TestFormatNumericCollapsesTrailingZeros(t *testing.T) {
	n := ParseNumericLoose("0.30")
	if assert.NotNil(t, n) {
		assert.Equal(t, "0.3", FormatNumeric(*n))
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"pads to two decimals", "4.5", "4.50"},
		{"rounds, not truncates", "4.599", "4.60"},
		{"integer", "12", "12.00"},
		{"currency symbol stripped", "$9.99", "9.99"},
		{"non-numeric passes through", "call for price", "call for price"},
		{"empty passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMoney(tt.input))
		})
	}
}

func TestColumnValue(t *testing.T) {
	row := types.RawRow{"UPC": "123", "Reg_Retail": "2.99"}

	v, ok := ColumnValue(row, "UPC")
	assert.True(t, ok)
	assert.Equal(t, "123", v)

	v, ok = ColumnValue(row, "REG_RETAIL")
	assert.True(t, ok)
	assert.Equal(t, "2.99", v)

	_, ok = ColumnValue(row, "MISSING")
	assert.False(t, ok)
}

func TestFirstColumnValueAliases(t *testing.T) {
	// Historical TRP_ spelling must satisfy a TPR_ lookup.
	row := types.RawRow{"TRP_RETAIL": "1.99"}
	assert.Equal(t, "1.99", FirstColumnValue(row, "TPR_RETAIL", "TRP_RETAIL"))

	// Canonical spelling wins when both are present.
	row = types.RawRow{"TPR_RETAIL": "2.49", "TRP_RETAIL": "1.99"}
	assert.Equal(t, "2.49", FirstColumnValue(row, "TPR_RETAIL", "TRP_RETAIL"))

	assert.Equal(t, "", FirstColumnValue(types.RawRow{}, "TPR_RETAIL", "TRP_RETAIL"))
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "000123", PadLeft("123", 6, '0'))
	assert.Equal(t, "123456", PadLeft("123456", 6, '0'))
	assert.Equal(t, "1234567", PadLeft("1234567", 6, '0'))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "012345678905", DigitsOnly("0-12345-67890-5"))
	assert.Equal(t, "", DigitsOnly("N/A"))
}
