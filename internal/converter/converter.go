// =============================================================================
// Vendor Price-File Converter - Converter Module
// =============================================================================
//
// This module orchestrates the processing of a single vendor price file, from
// parsing through transformation to the written output CSV.
//
// PROCESSING PIPELINE:
//   1. Parse the input file (CSV or XLSX, chosen by extension)
//   2. Run every row through the vendor's transformer
//   3. Validate the transformed rows against the output contract
//   4. Write the normalized output CSV
//   5. Archive the processed files
//
// CONCURRENCY:
//   Each file is processed in its own goroutine. A Converter owns no shared
//   mutable state beyond the deposit mapping and originals map, both of which
//   are read-only during a run, so instances are safe to run concurrently.
//
// =============================================================================

package converter

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/retailops/pricefeed/internal/config"
	"github.com/retailops/pricefeed/internal/csvparser"
	"github.com/retailops/pricefeed/internal/csvwriter"
	"github.com/retailops/pricefeed/internal/transform"
	"github.com/retailops/pricefeed/internal/types"
	"github.com/retailops/pricefeed/internal/validation"
	"github.com/retailops/pricefeed/internal/xlsxparser"
	"github.com/retailops/pricefeed/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single file.
type Result struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// OutputFile is the path to the generated CSV file.
	// This is empty if processing failed.
	OutputFile string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed.
	// This is nil if processing was successful.
	Error error

	// Warnings contains the row-level warnings collected during
	// transformation, each prefixed with its row number.
	Warnings []string

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// RowsProcessed is the number of data rows transformed.
	RowsProcessed int

	// WarningCount is the number of row-level warnings collected.
	WarningCount int

	// ValidationErrors is the number of output-contract violations found.
	ValidationErrors int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter handles the processing of a single vendor price file.
type Converter struct {
	// inputPath is the path to the input price file.
	inputPath string

	// vendorID selects the vendor transformer from the registry.
	vendorID string

	// mainConfig is the main application configuration.
	mainConfig *config.MainConfig

	// registry holds the known vendor transformers.
	registry *transform.Registry

	// deposits is the deposit mapping built from the reference file.
	deposits types.DepositMapping

	// originals carries previously imported item data for department
	// preservation. May be nil.
	originals map[string]types.OriginalItem

	// dryRun skips the write and archive steps when set.
	dryRun bool

	// logger is used for logging.
	logger Logger
}

// Logger is an interface for logging.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// New creates a new Converter instance.
//
// PARAMETERS:
//   - inputPath: The path to the input price file.
//   - vendorID: The vendor whose transformer should process the file.
//   - mainConfig: The main application configuration.
//   - registry: The vendor transformer registry.
//   - deposits: The deposit mapping for this run.
//
// RETURNS:
//   - A new Converter instance.
func New(inputPath, vendorID string, mainConfig *config.MainConfig, registry *transform.Registry, deposits types.DepositMapping) *Converter {
	return &Converter{
		inputPath:  inputPath,
		vendorID:   vendorID,
		mainConfig: mainConfig,
		registry:   registry,
		deposits:   deposits,
		logger:     &defaultLogger{},
	}
}

// SetOriginals provides previously imported item data for department
// preservation.
func (c *Converter) SetOriginals(originals map[string]types.OriginalItem) {
	c.originals = originals
}

// SetDryRun controls whether the output and archive steps are skipped.
func (c *Converter) SetDryRun(dryRun bool) {
	c.dryRun = dryRun
}

// SetLogger replaces the default logger.
func (c *Converter) SetLogger(logger Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the processing pipeline for the file.
//
// RETURNS:
//   - A Result struct containing the outcome of the processing.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{
		FilePath: c.inputPath,
		Success:  false,
	}

	// =========================================================================
	// STEP 1: PARSE INPUT FILE
	// =========================================================================
	// Parse the price file by extension. Both parsers produce the same
	// FileData shape, so the rest of the pipeline never cares which format
	// the vendor sent.

	c.logger.Info("Processing file: %s (vendor: %s)", c.inputPath, c.vendorID)

	fileData, err := c.parseInput()
	if err != nil {
		result.Error = fmt.Errorf("failed to parse input: %w", err)
		return result
	}

	result.Stats.RowsProcessed = len(fileData.Rows)
	c.logger.Debug("Parsed %d rows from %s", len(fileData.Rows), filepath.Base(c.inputPath))

	// =========================================================================
	// STEP 2: TRANSFORM ROWS
	// =========================================================================
	// Run every row through the vendor transformer. Warnings never stop the
	// run; each one is tagged with its row number by the pipeline.

	pipelineResult, err := transform.TransformRows(fileData.Rows, c.vendorID, c.registry, c.deposits, transform.Options{
		OriginalData: c.originals,
	})
	if err != nil {
		result.Error = fmt.Errorf("failed to transform rows: %w", err)
		return result
	}

	result.Warnings = pipelineResult.Warnings
	result.Stats.WarningCount = len(pipelineResult.Warnings)

	for _, warning := range pipelineResult.Warnings {
		c.logger.Warn("%s: %s", filepath.Base(c.inputPath), warning)
	}

	c.logger.Debug("Transformed %d rows with %d warnings", len(pipelineResult.Rows), len(pipelineResult.Warnings))

	// =========================================================================
	// STEP 3: VALIDATE OUTPUT CONTRACT
	// =========================================================================
	// Every row must carry exactly the columns the vendor transformer
	// declares. A violation here is a bug, not bad vendor data, so it fails
	// the file unless continue-on-error is set.

	validationErrors := validation.Validate(pipelineResult.Rows, pipelineResult.Columns)
	result.Stats.ValidationErrors = len(validationErrors)

	if len(validationErrors) > 0 {
		for _, ve := range validationErrors {
			c.logger.Error("Validation error: %s", ve.Error())
		}

		if !c.mainConfig.ContinueOnFileError() {
			result.Error = fmt.Errorf("output validation failed with %d errors", len(validationErrors))
			return result
		}
	}

	// =========================================================================
	// STEP 4: WRITE OUTPUT FILE
	// =========================================================================

	if c.dryRun {
		c.logger.Info("Dry run: skipping output for %s (%d rows, %d warnings)", filepath.Base(c.inputPath), len(pipelineResult.Rows), len(pipelineResult.Warnings))
		result.Success = true
		result.Stats.ProcessingTime = time.Since(startTime)
		return result
	}

	outputPath, err := c.writeOutput(pipelineResult)
	if err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		return result
	}

	result.OutputFile = outputPath
	c.logger.Info("Wrote output to: %s", outputPath)

	// =========================================================================
	// STEP 5: ARCHIVE FILES
	// =========================================================================
	// Archival failures are logged but never fail a file whose output was
	// already written.

	if err := c.archiveFiles(outputPath); err != nil {
		c.logger.Warn("Failed to archive files: %v", err)
	}

	// =========================================================================
	// COMPLETE
	// =========================================================================

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	return result
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// parseInput parses the price file, choosing the parser by extension.
func (c *Converter) parseInput() (*types.FileData, error) {
	switch strings.ToLower(filepath.Ext(c.inputPath)) {
	case ".xlsx", ".xlsm":
		return xlsxparser.Parse(c.inputPath)
	default:
		return csvparser.Parse(c.inputPath, csvparser.DefaultSettings())
	}
}

// writeOutput writes the transformed rows to the output directory.
//
// FILE NAMING:
//   The output file is named according to the OutputNameFormat in the main
//   configuration. Supported placeholders: {vendor}, {timestamp}, {date},
//   {time}, {uuid}, {original}.
func (c *Converter) writeOutput(pipelineResult *transform.PipelineResult) (string, error) {
	originalName := strings.TrimSuffix(filepath.Base(c.inputPath), filepath.Ext(c.inputPath))

	fileName := utils.GenerateOutputFileName(c.mainConfig.OutputNameFormat, map[string]string{
		"vendor":   c.vendorID,
		"original": originalName,
	})
	outputPath := filepath.Join(c.mainConfig.OutputDir, fileName)

	if err := csvwriter.Write(outputPath, pipelineResult.Columns, pipelineResult.Rows); err != nil {
		return "", err
	}

	return outputPath, nil
}

// archiveFiles moves the input file and copies the output file to the archive
// directories.
func (c *Converter) archiveFiles(outputPath string) error {
	fm := utils.NewFileManager(c.mainConfig.InputDir, c.mainConfig.OutputDir, c.mainConfig.InputArchiveDir, c.mainConfig.OutputArchiveDir)

	if _, err := fm.ArchiveInputFile(c.inputPath); err != nil {
		return fmt.Errorf("failed to archive input file: %w", err)
	}

	if _, err := fm.ArchiveOutputFile(outputPath); err != nil {
		return fmt.Errorf("failed to archive output file: %w", err)
	}

	return nil
}

// =============================================================================
// DEFAULT LOGGER
// =============================================================================

// defaultLogger is a simple logger that prints to stdout.
type defaultLogger struct{}

func (l *defaultLogger) Debug(msg string, args ...interface{}) {
	fmt.Printf("[DEBUG] "+msg+"\n", args...)
}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	fmt.Printf("[INFO] "+msg+"\n", args...)
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	fmt.Printf("[WARN] "+msg+"\n", args...)
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("[ERROR] "+msg+"\n", args...)
}
