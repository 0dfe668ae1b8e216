// =============================================================================
// Vendor Price-File Converter - Main Entry Point
// =============================================================================
//
// Pricefeed normalizes the price and promotion files our vendors send into
// the CSV format the retail back office imports. See cmd/ for the CLI
// commands and internal/transform for the per-vendor row transformation
// rules.
//
// =============================================================================

package main

import "github.com/retailops/pricefeed/cmd"

func main() {
	cmd.Execute()
}
