package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolvesKnownVendors(t *testing.T) {
	registry := NewRegistry()

	for _, id := range []string{"agne", "pinestate"} {
		transformer, err := registry.Get(id)
		require.NoError(t, err)
		assert.Equal(t, id, transformer.VendorID())
		assert.NotEmpty(t, transformer.OutputColumns())
	}
}

func TestRegistryUnknownVendorFailsWithKnownSet(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("costco")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "costco")
	assert.Contains(t, err.Error(), "agne")
	assert.Contains(t, err.Error(), "pinestate")
}

func TestRegistryVendorIDsSorted(t *testing.T) {
	registry := NewRegistry()
	assert.Equal(t, []string{"agne", "pinestate"}, registry.VendorIDs())
}

// Output-contract check across every registered vendor: transformRow must
// populate every key from OutputColumns, even on an empty input row.
func TestAllVendorsHonorOutputContract(t *testing.T) {
	registry := NewRegistry()

	for _, id := range registry.VendorIDs() {
		transformer, err := registry.Get(id)
		require.NoError(t, err)

		out, _ := transformer.TransformRow(map[string]string{}, nil, Options{})
		for _, col := range transformer.OutputColumns() {
			_, ok := out[col]
			assert.True(t, ok, "vendor %s: missing output column %q", id, col)
		}
	}
}
