package transform

import (
	"testing"

	"github.com/retailops/pricefeed/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDerivePricingEmptyGroupStaysEmpty(t *testing.T) {
	// All fields empty string, never a default "0": a "0" would be
	// indistinguishable from "no special pricing, explicitly confirmed".
	result, warnings := DerivePricing(PricingFields{}, "8.00", DateCompact)

	assert.Equal(t, PricingResult{}, result)
	assert.Empty(t, warnings)
}

func TestDerivePricingZeroMultiplierAloneIsNoData(t *testing.T) {
	result, warnings := DerivePricing(PricingFields{Multiplier: "0"}, "8.00", DateCompact)

	assert.Equal(t, PricingResult{}, result)
	assert.Empty(t, warnings)
}

func TestDerivePricingMultiUnitBranch(t *testing.T) {
	result, warnings := DerivePricing(PricingFields{
		Price:      "5.00",
		Multiplier: "2",
	}, "8.00", DateCompact)

	assert.Empty(t, warnings)
	assert.Equal(t, PriceMethodMultiUnit, result.Method)
	assert.Equal(t, "5.00", result.DealPrice, "deal price carries the original per-unit special price")
	assert.Equal(t, "8.00", result.Price, "per-unit price is overwritten with the regular retail")
	assert.Equal(t, "2", result.Qty, "quantity carries the original multiplier text")
}

func TestDerivePricingFlatBranch(t *testing.T) {
	result, warnings := DerivePricing(PricingFields{
		Price:      "3.29",
		Multiplier: "1",
	}, "3.29", DateCompact)

	assert.Empty(t, warnings)
	assert.Equal(t, PriceMethodFlat, result.Method)
	assert.Equal(t, "3.29", result.Price)
	assert.Empty(t, result.Qty)
	assert.Empty(t, result.DealPrice)
}

func TestDerivePricingAbsentMultiplierIsFlat(t *testing.T) {
	result, _ := DerivePricing(PricingFields{Price: "2.49"}, "2.99", DateCompact)

	assert.Equal(t, PriceMethodFlat, result.Method)
	assert.Equal(t, "2.49", result.Price)
}

func TestDerivePricingDatesFollowVendorFormat(t *testing.T) {
	result, warnings := DerivePricing(PricingFields{
		Price:     "1.99",
		StartDate: "12/1/2025",
		EndDate:   "12/31/2025",
	}, "2.99", DateDayFirst)

	assert.Empty(t, warnings)
	assert.Equal(t, "01-12-2025", result.StartDate)
	assert.Equal(t, "31-12-2025", result.EndDate)
}

func TestDerivePricingBadDateWarnsButKeepsGroup(t *testing.T) {
	result, warnings := DerivePricing(PricingFields{
		Price:     "1.99",
		StartDate: "soon",
	}, "2.99", DateCompact)

	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "soon")
	assert.Empty(t, result.StartDate)
	assert.Equal(t, PriceMethodFlat, result.Method)
	assert.Equal(t, "1.99", result.Price)
}

func TestResolveDepartment(t *testing.T) {
	originals := map[string]types.OriginalItem{
		"Chips": {Department: "Snacks"},
	}

	t.Run("original wins over differing incoming", func(t *testing.T) {
		value, warning := ResolveDepartment("Beverages", "Chips", originals)
		assert.Equal(t, "Snacks", value)
		assert.Contains(t, warning, "Snacks")
		assert.Contains(t, warning, "Beverages")
	})

	t.Run("matching values pass silently", func(t *testing.T) {
		value, warning := ResolveDepartment("Snacks", "Chips", originals)
		assert.Equal(t, "Snacks", value)
		assert.Empty(t, warning)
	})

	t.Run("no original supplied", func(t *testing.T) {
		value, warning := ResolveDepartment("Beverages", "Soda", originals)
		assert.Equal(t, "Beverages", value)
		assert.Empty(t, warning)
	})

	t.Run("nil original map", func(t *testing.T) {
		value, warning := ResolveDepartment("Beverages", "Chips", nil)
		assert.Equal(t, "Beverages", value)
		assert.Empty(t, warning)
	})
}
