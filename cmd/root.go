// =============================================================================
// Vendor Price-File Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'process', 'vendors') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (pricefeed)
//   ├── processCmd (pricefeed process)
//   ├── vendorsCmd (pricefeed vendors)
//   └── versionCmd (pricefeed version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/retailops/pricefeed/internal/config"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "pricefeed",

	Short: "Vendor price-file converter - normalize vendor price sheets for retail import",

	Long: `Pricefeed transforms the price and promotion files our vendors send into
the normalized CSV format the retail back office imports.

Each vendor has its own sheet layout and its own quirks; a vendor transformer
encodes those rules and maps every incoming row onto the standard output
columns. Row-level problems (unparseable dates, unknown flags, missing deposit
mappings) become warnings, never hard failures: a single bad cell must not
block the rest of a price file.

Example Usage:
  pricefeed process                         # Process all files in the input directory
  pricefeed process --file sheet.csv --vendor pinestate
  pricefeed vendors                         # List supported vendors and their rules`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig loads the main configuration, falling back to built-in defaults
// when the default config file does not exist. An explicitly passed --config
// path that is missing is still an error.
func loadConfig() (*config.MainConfig, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		if !rootCmd.PersistentFlags().Changed("config") {
			return config.DefaultMainConfig(), nil
		}
		return nil, fmt.Errorf("config file not found: %s", cfgFile)
	}

	return config.LoadMainConfig(cfgFile)
}
