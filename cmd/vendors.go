// =============================================================================
// Vendor Price-File Converter - Vendors Command
// =============================================================================
//
// This file defines the 'vendors' command, which lists the supported vendors,
// their transformation rules, and the output columns their transformers emit.
// It is introspection only; the transformers themselves are the source of
// truth for behavior.
//
// COMMAND USAGE:
//   pricefeed vendors
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/retailops/pricefeed/internal/config"
	"github.com/retailops/pricefeed/internal/transform"
	"github.com/spf13/cobra"
)

// vendorsCmd represents the 'vendors' command.
var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "List supported vendors and their transformation rules",
	Long: `The vendors command prints every vendor the converter knows about, together
with a description of the rules its transformer applies and the output columns
it emits. Use this to check which --vendor values are valid and what a given
vendor's output will look like.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runVendors()
	},
}

func init() {
	rootCmd.AddCommand(vendorsCmd)
}

// runVendors prints the vendor listing.
func runVendors() error {
	registry := transform.NewRegistry()

	for _, id := range registry.VendorIDs() {
		transformer, err := registry.Get(id)
		if err != nil {
			return err
		}

		meta, hasMeta := config.VendorConfigs[id]

		fmt.Printf("Vendor: %s\n", id)
		if hasMeta {
			fmt.Printf("  Name:  %s\n", meta.DisplayName)
			fmt.Printf("  File:  %s\n", meta.FileDescription)

			if len(meta.RemovedColumns) > 0 {
				fmt.Printf("  Dropped columns: %s\n", strings.Join(meta.RemovedColumns, ", "))
			}

			if len(meta.RuleNotes) > 0 {
				fmt.Println("  Rules:")
				for _, note := range meta.RuleNotes {
					fmt.Printf("    - %s\n", note)
				}
			}
		}

		fmt.Printf("  Output columns (%d):\n", len(transformer.OutputColumns()))
		for _, col := range transformer.OutputColumns() {
			fmt.Printf("    %s\n", col)
		}

		fmt.Println()
	}

	return nil
}
