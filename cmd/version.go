// =============================================================================
// Vendor Price-File Converter - Version Command
// =============================================================================
//
// This file defines the 'version' command, which prints build information.
// The variables below are overridden at build time via -ldflags:
//
//   go build -ldflags "-X github.com/retailops/pricefeed/cmd.Version=1.2.0 \
//                      -X github.com/retailops/pricefeed/cmd.BuildDate=2026-08-24"
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the application version, set at build time.
var Version = "dev"

// BuildDate is the build date, set at build time.
var BuildDate = "unknown"

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pricefeed %s (built %s)\n", Version, BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
