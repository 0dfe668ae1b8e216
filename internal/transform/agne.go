// =============================================================================
// Vendor Price-File Converter - AGNE Transformer
// =============================================================================
//
// AG New England ships a wide retail sheet (~25 columns) covering regular
// pricing, taxation flags, deposits, and two independent promotion windows:
// the Sale window and the TPR (temporary price reduction) window. Both windows
// go through the shared special-pricing derivation with AGNE's compact date
// rendering.
//
// FIELD RULES:
//   - ITEM        -> "Product Code" (renamed)
//   - UPC         -> one leading zero stripped
//   - DEPARTMENT  -> preserved against original data, warning on mismatch
//   - TAX1        -> "Tax ID" flag (Y -> 1, N/empty -> empty)
//   - FOOD_STAMP  -> "Food Stamp" flag, same mapping
//   - DEPOSIT     -> resolved to a fee code via the deposit reference mapping
//   - SALE_* / TPR_* -> special pricing groups; TPR fields accept the
//     historical TRP_* alias spelling
//   - VENDOR_NUM, BRAND, PACK, REG_MULTIPLE -> dropped (deny-list)
//
// =============================================================================

package transform

import (
	"github.com/retailops/pricefeed/internal/types"
)

// AGNETransformer implements Transformer for AG New England retail sheets.
type AGNETransformer struct{}

// NewAGNETransformer creates the AGNE transformer.
func NewAGNETransformer() *AGNETransformer {
	return &AGNETransformer{}
}

// agneOutputColumns is the fixed output order for AGNE files.
var agneOutputColumns = []string{
	"Product Code",
	"Description",
	"UPC",
	"Department",
	"Size",
	"Unit Cost",
	"Case Cost",
	"Regular Retail",
	"Tax ID",
	"Food Stamp",
	"Deposit",
	"Sale Method",
	"Sale Retail",
	"Sale Qty",
	"Sale Deal Price",
	"Sale Cost",
	"Sale Start",
	"Sale End",
	"TPR Method",
	"TPR Retail",
	"TPR Qty",
	"TPR Deal Price",
	"TPR Cost",
	"TPR Start",
	"TPR End",
}

// agneDroppedColumns is the input deny-list: these columns never appear in the
// output. Configuration data, not logic; kept here so introspection and the
// transformer can't drift apart.
var agneDroppedColumns = []string{"VENDOR_NUM", "BRAND", "PACK", "REG_MULTIPLE"}

// VendorID returns the registry identifier.
func (t *AGNETransformer) VendorID() string {
	return "agne"
}

// OutputColumns returns the output column names in serialization order.
func (t *AGNETransformer) OutputColumns() []string {
	return agneOutputColumns
}

// DroppedColumns returns the input deny-list for introspection.
func (t *AGNETransformer) DroppedColumns() []string {
	return agneDroppedColumns
}

// TransformRow transforms a single AGNE row.
//
// All per-field conditions are recovered locally and surfaced as warnings;
// the row is always emitted with every output column populated.
func (t *AGNETransformer) TransformRow(row types.RawRow, deposits types.DepositMapping, opts Options) (types.OutputRow, []string) {
	var warnings []string
	out := make(types.OutputRow, len(agneOutputColumns))

	// ==========================================================================
	// IDENTITY AND DESCRIPTIVE FIELDS
	// ==========================================================================

	item := FirstColumnValue(row, "ITEM")
	out["Product Code"] = item
	out["Description"] = FirstColumnValue(row, "DESCRIPTION")
	out["Size"] = FirstColumnValue(row, "SIZE")

	upc := NormalizeLeadingZeroUPC(FirstColumnValue(row, "UPC"))
	out["UPC"] = upc

	department, warn := ResolveDepartment(FirstColumnValue(row, "DEPARTMENT"), item, opts.OriginalData)
	out["Department"] = department
	if warn != "" {
		warnings = append(warnings, warn)
	}

	// ==========================================================================
	// REGULAR PRICING AND FLAGS
	// ==========================================================================

	out["Unit Cost"] = FirstColumnValue(row, "UNIT_COST")
	out["Case Cost"] = FirstColumnValue(row, "CASE_COST")

	regularRetail := FirstColumnValue(row, "REG_RETAIL")
	out["Regular Retail"] = regularRetail

	taxFlag, warn := MapBooleanFlag(FirstColumnValue(row, "TAX1"))
	out["Tax ID"] = taxFlag
	if warn != "" {
		warnings = append(warnings, warn)
	}

	foodStamp, warn := MapBooleanFlag(FirstColumnValue(row, "FOOD_STAMP"))
	out["Food Stamp"] = foodStamp
	if warn != "" {
		warnings = append(warnings, warn)
	}

	// ==========================================================================
	// DEPOSIT RESOLUTION
	// ==========================================================================

	deposit, warn := ResolveDeposit(FirstColumnValue(row, "DEPOSIT"), upc, item, deposits)
	out["Deposit"] = deposit
	if warn != "" {
		warnings = append(warnings, warn)
	}

	// ==========================================================================
	// PROMOTION WINDOWS
	// ==========================================================================
	// Two independent groups; each gated on its own raw fields.

	sale, saleWarnings := DerivePricing(PricingFields{
		Price:      FirstColumnValue(row, "SALE_RETAIL"),
		Cost:       FirstColumnValue(row, "SALE_COST"),
		Multiplier: FirstColumnValue(row, "SALE_MULTIPLE"),
		StartDate:  FirstColumnValue(row, "SALE_START_DATE"),
		EndDate:    FirstColumnValue(row, "SALE_END_DATE"),
	}, regularRetail, DateCompact)
	warnings = append(warnings, saleWarnings...)

	out["Sale Method"] = sale.Method
	out["Sale Retail"] = sale.Price
	out["Sale Qty"] = sale.Qty
	out["Sale Deal Price"] = sale.DealPrice
	out["Sale Cost"] = sale.Cost
	out["Sale Start"] = sale.StartDate
	out["Sale End"] = sale.EndDate

	// TPR fields accept both historical spellings.
	tpr, tprWarnings := DerivePricing(PricingFields{
		Price:      FirstColumnValue(row, "TPR_RETAIL", "TRP_RETAIL"),
		Cost:       FirstColumnValue(row, "TPR_COST", "TRP_COST"),
		Multiplier: FirstColumnValue(row, "TPR_MULTIPLE", "TRP_MULTIPLE"),
		StartDate:  FirstColumnValue(row, "TPR_START_DATE", "TRP_START_DATE"),
		EndDate:    FirstColumnValue(row, "TPR_END_DATE", "TRP_END_DATE"),
	}, regularRetail, DateCompact)
	warnings = append(warnings, tprWarnings...)

	out["TPR Method"] = tpr.Method
	out["TPR Retail"] = tpr.Price
	out["TPR Qty"] = tpr.Qty
	out["TPR Deal Price"] = tpr.DealPrice
	out["TPR Cost"] = tpr.Cost
	out["TPR Start"] = tpr.StartDate
	out["TPR End"] = tpr.EndDate

	return out, warnings
}
