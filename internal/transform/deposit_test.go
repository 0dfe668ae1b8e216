package transform

import (
	"testing"

	"github.com/retailops/pricefeed/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestResolveDepositByUPC(t *testing.T) {
	deposits := types.DepositMapping{"54321": "DEP-001"}

	code, warning := ResolveDeposit("", "54321", "", deposits)
	assert.Equal(t, "DEP-001", code)
	assert.Empty(t, warning)
}

func TestResolveDepositNoMatchWarnsWithKey(t *testing.T) {
	deposits := types.DepositMapping{"54321": "DEP-001"}

	code, warning := ResolveDeposit("", "99999", "", deposits)
	assert.Empty(t, code)
	assert.Contains(t, warning, "99999")
}

func TestResolveDepositRawValueFirst(t *testing.T) {
	// The as-given amount outranks UPC and item even when those would match.
	deposits := types.DepositMapping{
		"0.30":  "DEP-030",
		"54321": "DEP-UPC",
		"CHIPS": "DEP-ITEM",
	}

	code, warning := ResolveDeposit("0.30", "54321", "CHIPS", deposits)
	assert.Equal(t, "DEP-030", code)
	assert.Empty(t, warning)
}

func TestResolveDepositReparsedAmount(t *testing.T) {
	// Reference file says "0.3", vendor sheet says "0.30": the re-parsed form
	// must line up.
	deposits := types.DepositMapping{"0.3": "DEP-030"}

	code, warning := ResolveDeposit("0.30", "", "", deposits)
	assert.Equal(t, "DEP-030", code)
	assert.Empty(t, warning)
}

func TestResolveDepositItemFallback(t *testing.T) {
	deposits := types.DepositMapping{"CHIPS": "DEP-ITEM"}

	code, warning := ResolveDeposit("", "99999", "CHIPS", deposits)
	assert.Equal(t, "DEP-ITEM", code)
	assert.Empty(t, warning)
}

func TestResolveDepositNoCandidateKeyIsSilent(t *testing.T) {
	// Absence of a key is not itself a data-quality issue.
	code, warning := ResolveDeposit("", "", "", types.DepositMapping{})
	assert.Empty(t, code)
	assert.Empty(t, warning)
}

func TestResolveDepositWarningPrefersUPCOverItem(t *testing.T) {
	_, warning := ResolveDeposit("", "99999", "CHIPS", types.DepositMapping{})
	assert.Contains(t, warning, "99999")
	assert.NotContains(t, warning, "CHIPS")
}
