// =============================================================================
// Vendor Price-File Converter - Process Command
// =============================================================================
//
// This file defines the 'process' command, which is the main command for
// converting vendor price files. It loads the deposit reference data once,
// then runs every discovered file through the vendor transformer.
//
// COMMAND USAGE:
//   pricefeed process [flags]
//
// FLAGS:
//   --file         : Process only the given file instead of scanning input_dir
//   --vendor       : Vendor id selecting the transformer (default from config)
//   --deposit-file : Override the deposit reference file from config
//   --dry-run      : Parse and transform without writing output files
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Build the deposit mapping from the reference file
//   3. Discover price files in the input directory (or take --file)
//   4. For each file (concurrently, bounded by max_concurrency):
//      a. Parse the file (CSV or XLSX)
//      b. Transform every row through the vendor transformer
//      c. Validate the output contract
//      d. Write the normalized CSV
//      e. Archive the processed files
//   5. Print a summary and write the summary log
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/retailops/pricefeed/internal/converter"
	"github.com/retailops/pricefeed/internal/depositfile"
	"github.com/retailops/pricefeed/internal/transform"
	"github.com/retailops/pricefeed/pkg/utils"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dryRun parses and transforms without writing output files.
var dryRun bool

// singleFile is the path to a specific file to process instead of scanning
// the input directory.
var singleFile string

// vendorID selects the vendor transformer. Empty means the configured
// default.
var vendorID string

// depositFileOverride replaces the deposit reference file from the config.
var depositFileOverride string

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process vendor price files into normalized import CSVs",
	Long: `The process command scans the input directory for vendor price files (CSV or
XLSX) and runs each one through the selected vendor's transformer.

All files in one run belong to the same vendor; pass --vendor to select it, or
rely on the default vendor from the configuration. Files are processed
concurrently, and a failure in one file does not stop the others.

On successful processing:
  - The normalized CSV is placed in the output directory
  - The original price file is moved to the input archive
  - Row-level warnings are printed and counted in the summary

On error:
  - The original file remains in the input directory
  - Processing continues for the other files`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the process command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Parse and transform without writing output files",
	)

	processCmd.Flags().StringVar(
		&singleFile,
		"file",
		"",
		"Process only the given file instead of scanning the input directory",
	)

	processCmd.Flags().StringVar(
		&vendorID,
		"vendor",
		"",
		"Vendor id selecting the transformer (default taken from configuration)",
	)

	processCmd.Flags().StringVar(
		&depositFileOverride,
		"deposit-file",
		"",
		"Path to the deposit reference file, overriding the configuration",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess orchestrates a full processing run.
func runProcess() error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	fmt.Println("=== Vendor Price-File Converter ===")

	mainConfig, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The default vendor applies only here, at the operator boundary. The
	// registry itself rejects anything it doesn't know.
	vendor := vendorID
	if vendor == "" {
		vendor = mainConfig.DefaultVendor
	}

	registry := transform.NewRegistry()
	if _, err := registry.Get(vendor); err != nil {
		return err
	}

	fmt.Printf("Vendor: %s\n", vendor)

	// =========================================================================
	// STEP 2: BUILD DEPOSIT MAPPING
	// =========================================================================
	// The reference file is parsed once per run and shared read-only across
	// all file goroutines.

	depositPath := mainConfig.DepositFile
	if depositFileOverride != "" {
		depositPath = depositFileOverride
	}

	deposits, err := depositfile.Load(depositPath)
	if err != nil {
		return fmt.Errorf("failed to load deposit reference data: %w", err)
	}

	if depositPath != "" {
		fmt.Printf("Loaded %d deposit mapping(s) from %s\n", len(deposits), depositPath)
	}

	// =========================================================================
	// STEP 3: DISCOVER INPUT FILES
	// =========================================================================

	fm := utils.NewFileManager(mainConfig.InputDir, mainConfig.OutputDir, mainConfig.InputArchiveDir, mainConfig.OutputArchiveDir)
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	var inputFiles []string
	if singleFile != "" {
		if !utils.FileExists(singleFile) {
			return fmt.Errorf("input file not found: %s", singleFile)
		}
		inputFiles = []string{singleFile}
	} else {
		inputFiles, err = fm.DiscoverInputFiles()
		if err != nil {
			return fmt.Errorf("failed to discover input files: %w", err)
		}
	}

	if len(inputFiles) == 0 {
		fmt.Println("No price files found in the input directory.")
		return nil
	}

	fmt.Printf("Found %d file(s) to process\n", len(inputFiles))

	// =========================================================================
	// STEP 4: PROCESS FILES CONCURRENTLY
	// =========================================================================
	// One goroutine per file, bounded by max_concurrency. Results are
	// collected over a buffered channel.

	var wg sync.WaitGroup
	results := make(chan converter.Result, len(inputFiles))
	semaphore := make(chan struct{}, mainConfig.MaxConcurrency)

	for _, file := range inputFiles {
		wg.Add(1)

		go func(filePath string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			conv := converter.New(filePath, vendor, mainConfig, registry, deposits)
			conv.SetDryRun(dryRun)
			results <- conv.Run()
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 5: COLLECT RESULTS AND PRINT SUMMARY
	// =========================================================================

	summary := utils.ProcessingSummary{
		StartTime:  startTime,
		TotalFiles: len(inputFiles),
	}

	for result := range results {
		summary.TotalRows += result.Stats.RowsProcessed
		summary.TotalWarnings += result.Stats.WarningCount

		if result.Success {
			summary.SuccessfulFiles++
			summary.ProcessedFiles = append(summary.ProcessedFiles, utils.ProcessedFileInfo{
				InputFile:   result.FilePath,
				OutputFile:  result.OutputFile,
				Vendor:      vendor,
				Rows:        result.Stats.RowsProcessed,
				Warnings:    result.Stats.WarningCount,
				ProcessTime: result.Stats.ProcessingTime,
			})
			fmt.Printf("  OK   %s -> %s (%d rows, %d warnings)\n",
				filepath.Base(result.FilePath), result.OutputFile,
				result.Stats.RowsProcessed, result.Stats.WarningCount)
		} else {
			summary.FailedFiles++
			summary.FailedFilesList = append(summary.FailedFilesList, utils.FailedFileInfo{
				InputFile:    result.FilePath,
				ErrorMessage: result.Error.Error(),
			})
			fmt.Printf("  FAIL %s: %v\n", filepath.Base(result.FilePath), result.Error)
		}
	}

	summary.EndTime = time.Now()

	elapsed := time.Since(startTime)
	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:    %d\n", summary.TotalFiles)
	fmt.Printf("Successful:     %d\n", summary.SuccessfulFiles)
	fmt.Printf("Failed:         %d\n", summary.FailedFiles)
	fmt.Printf("Total rows:     %d\n", summary.TotalRows)
	fmt.Printf("Total warnings: %d\n", summary.TotalWarnings)
	fmt.Printf("Time elapsed:   %s\n", elapsed)

	if !dryRun {
		if summaryPath, err := utils.WriteSummaryLog(summary, mainConfig.OutputDir); err == nil {
			fmt.Printf("Summary written to %s\n", summaryPath)
		}

		if mainConfig.ArchiveRetentionDays > 0 {
			maxAge := time.Duration(mainConfig.ArchiveRetentionDays) * 24 * time.Hour
			for _, dir := range []string{mainConfig.InputArchiveDir, mainConfig.OutputArchiveDir} {
				if removed, err := utils.CleanOldArchives(dir, maxAge); err == nil && removed > 0 && verbose {
					fmt.Printf("Removed %d expired archive file(s) from %s\n", removed, dir)
				}
			}
		}
	}

	if summary.FailedFiles > 0 && !mainConfig.ContinueOnFileError() {
		return fmt.Errorf("%d file(s) failed to process", summary.FailedFiles)
	}

	return nil
}
