// =============================================================================
// Vendor Price-File Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - transform
//   - csvparser / xlsxparser
//   - csvwriter
//   - validation
//
// =============================================================================

package types

// =============================================================================
// ROW TYPES
// =============================================================================

// RawRow is one input row as produced by a row source: a mapping from column
// header to the raw cell value exactly as it appeared in the file.
//
// Cell values are never coerced before reaching the transform core; leading
// zeros and currency symbols are semantically meaningful to the value
// transforms. Keys have no fixed set across vendors, and lookups against a
// RawRow are case-insensitive (see transform.ColumnValue).
type RawRow map[string]string

// OutputRow is one transformed row keyed by the fixed output column names of a
// vendor. Every key returned by a transformer's OutputColumns() is present,
// possibly with an empty-string value.
type OutputRow map[string]string

// FileData represents a fully parsed input file, regardless of whether it came
// from a CSV or an XLSX source.
type FileData struct {
	// Headers contains the column headers in file order.
	Headers []string

	// Rows contains the data rows as header -> raw value maps.
	Rows []RawRow

	// SourceFile is the path to the source file.
	SourceFile string

	// RowCount is the total number of data rows (excluding headers).
	RowCount int
}

// =============================================================================
// DEPOSIT MAPPING
// =============================================================================

// DepositMapping translates a lookup key into a canonical bottle/container fee
// identifier used by the downstream system. Keys can be a monetary amount (in
// both its original and re-normalized string forms), a UPC, or an item
// identifier.
//
// The mapping is built once per run by the depositfile package and is
// read-only afterwards: transformers may be invoked concurrently across rows
// and never mutate it. A host that needs to update it mid-run must swap the
// reference rather than mutate in place.
type DepositMapping map[string]string

// =============================================================================
// ORIGINAL DATA
// =============================================================================

// OriginalItem carries externally supplied "original" values for an item,
// keyed by the vendor's item identifier. When an original department is on
// record and differs from the incoming value, the original wins and the
// transformer emits a warning naming both.
type OriginalItem struct {
	// Department is the department/category value previously on record.
	Department string
}
