package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailops/pricefeed/internal/types"
)

func TestValidateClean(t *testing.T) {
	columns := []string{"A", "B"}
	rows := []types.OutputRow{
		{"A": "1", "B": ""},
		{"A": "", "B": "2"},
	}

	errors := Validate(rows, columns)
	assert.Empty(t, errors)
}

func TestValidateMissingColumn(t *testing.T) {
	columns := []string{"A", "B"}
	rows := []types.OutputRow{
		{"A": "1"},
	}

	errors := Validate(rows, columns)
	require.Len(t, errors, 1)
	assert.Equal(t, 1, errors[0].RowNumber)
	assert.Equal(t, "B", errors[0].Column)
}

func TestValidateExtraColumn(t *testing.T) {
	columns := []string{"A"}
	rows := []types.OutputRow{
		{"A": "1", "Rogue": "x"},
	}

	errors := Validate(rows, columns)
	require.Len(t, errors, 1)
	assert.Equal(t, "Rogue", errors[0].Column)
	assert.Contains(t, errors[0].Message, "not declared")
}

func TestValidateRowNumbersAreOneIndexed(t *testing.T) {
	columns := []string{"A"}
	rows := []types.OutputRow{
		{"A": "1"},
		{},
	}

	errors := Validate(rows, columns)
	require.Len(t, errors, 1)
	assert.Equal(t, 2, errors[0].RowNumber)
}

func TestFormatErrors(t *testing.T) {
	assert.Equal(t, "no validation errors", FormatErrors(nil))

	errors := []*ValidationError{
		{RowNumber: 3, Column: "UPC", Message: "output column missing from transformed row"},
	}
	formatted := FormatErrors(errors)
	assert.Contains(t, formatted, "1 validation error(s)")
	assert.Contains(t, formatted, `row 3, column "UPC"`)
}
