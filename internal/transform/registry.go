// =============================================================================
// Vendor Price-File Converter - Transformer Registry
// =============================================================================
//
// The registry maps a vendor identifier to its Transformer implementation and
// exposes the introspection the CLI needs (known ids, output column order).
// New vendors register here without touching the transform core.
//
// An unknown vendor id is a run-level configuration error: the whole run fails
// immediately with an error naming the requested id and the known set. There
// is deliberately no silent fallback to a default vendor inside the registry;
// defaulting, if any, is an explicit decision at the call boundary.
//
// =============================================================================

package transform

import (
	"fmt"
	"sort"
	"strings"
)

// Registry resolves vendor identifiers to transformers.
type Registry struct {
	transformers map[string]Transformer
}

// NewRegistry creates a registry preloaded with all supported vendors.
func NewRegistry() *Registry {
	r := &Registry{transformers: make(map[string]Transformer)}
	r.Register(NewAGNETransformer())
	r.Register(NewPineStateTransformer())
	return r
}

// Register adds a transformer under its vendor id. Later registrations for
// the same id replace earlier ones.
func (r *Registry) Register(t Transformer) {
	r.transformers[t.VendorID()] = t
}

// Get resolves a vendor id.
//
// RETURNS:
//   - The transformer for the id.
//   - An error naming the requested id and the known ids when no transformer
//     is registered under it.
func (r *Registry) Get(vendorID string) (Transformer, error) {
	if t, ok := r.transformers[vendorID]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("unknown vendor %q (known vendors: %s)",
		vendorID, strings.Join(r.VendorIDs(), ", "))
}

// VendorIDs returns the registered vendor ids in sorted order.
func (r *Registry) VendorIDs() []string {
	ids := make([]string, 0, len(r.transformers))
	for id := range r.transformers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
