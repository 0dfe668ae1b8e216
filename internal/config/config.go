// =============================================================================
// Vendor Price-File Converter - Configuration Module
// =============================================================================
//
// This module loads and manages the application configuration and holds the
// static per-vendor metadata used for introspection.
//
// CONFIGURATION FILES:
//   1. Main Config (config.yaml): directories, deposit reference file,
//      default vendor, output naming, processing settings.
//
// Vendor metadata is static Go data rather than a per-vendor file: the vendor
// set is closed, and the metadata is documentation-only: it describes the
// rules for operators but MUST NOT drive transformation behavior. The
// transformers are the single source of truth for what actually happens to a
// row.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration, loaded from
// config.yaml.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is the directory scanned for vendor price files.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where normalized CSV files are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir is where processed price files are moved after a
	// successful run. Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// OutputArchiveDir is where generated files are archived for long-term
	// storage. Default: "./output_archive"
	OutputArchiveDir string `yaml:"output_archive_dir"`

	// =========================================================================
	// REFERENCE DATA
	// =========================================================================

	// DepositFile is the path to the deposit-fee reference file (CSV or
	// XLSX). Parsed once per run, before any transformation, independent of
	// vendor. Empty means no deposit resolution data is available.
	DepositFile string `yaml:"deposit_file"`

	// =========================================================================
	// VENDOR SELECTION
	// =========================================================================

	// DefaultVendor is the vendor id used when the operator does not pass
	// --vendor. This default lives at the call boundary only; the transform
	// core itself never falls back silently. Default: "agne"
	DefaultVendor string `yaml:"default_vendor"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputNameFormat defines the output file name.
	// Placeholders:
	//   {vendor}    - Vendor id
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {uuid}      - A random UUID
	// Default: "{vendor}_{timestamp}_{uuid}.csv"
	OutputNameFormat string `yaml:"output_name_format"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// MaxConcurrency is the maximum number of files processed concurrently.
	// Set to 1 for sequential processing. Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError determines whether processing of other files continues
	// when one file fails. Unset means true; a pointer keeps an explicit
	// `continue_on_error: false` distinguishable from the zero value.
	ContinueOnError *bool `yaml:"continue_on_error"`

	// ArchiveRetentionDays is how long archived files are kept before the
	// cleanup pass removes them. Zero disables cleanup.
	ArchiveRetentionDays int `yaml:"archive_retention_days"`
}

// =============================================================================
// VENDOR METADATA STRUCTURE
// =============================================================================

// VendorConfig is static descriptive metadata about one vendor, used only for
// introspection (the `vendors` command and logs). It never drives branching
// inside a transformer; the free-text rule notes can drift and are not the
// authority on behavior.
type VendorConfig struct {
	// ID is the registry identifier.
	ID string

	// DisplayName is the human-readable vendor name.
	DisplayName string

	// FileDescription names the kind of sheet this vendor sends.
	FileDescription string

	// RemovedColumns lists input columns dropped from the output.
	RemovedColumns []string

	// RuleNotes are human-readable descriptions of the transformation rules.
	RuleNotes []string
}

// VendorConfigs holds the metadata for every supported vendor, keyed by
// vendor id.
var VendorConfigs = map[string]VendorConfig{
	"agne": {
		ID:              "agne",
		DisplayName:     "AG New England",
		FileDescription: "weekly multi-field retail price sheet",
		RemovedColumns:  []string{"VENDOR_NUM", "BRAND", "PACK", "REG_MULTIPLE"},
		RuleNotes: []string{
			"ITEM renamed to Product Code; TAX1 renamed to Tax ID",
			"one leading zero stripped from UPC",
			"TAX1/FOOD_STAMP flags remapped Y->1, N->empty",
			"deposit amount resolved to a fee code via the reference file",
			"Sale and TPR windows derived independently; multi-unit deals split into deal price + quantity",
			"promotion dates emitted as YYYYMMDD",
		},
	},
	"pinestate": {
		ID:              "pinestate",
		DisplayName:     "Pine State",
		FileDescription: "spirits monthly specials sheet",
		RemovedColumns:  []string{"SAVINGS", "PROOF"},
		RuleNotes: []string{
			"UPC reduced to digits and left-padded to 13",
			"numeric item numbers zero-padded to 6",
			"monetary fields fixed to two decimal places",
			"sale method always emitted as the flat sentinel",
			"promotion dates emitted as DD-MM-YYYY",
		},
	},
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// LoadMainConfig loads the main configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the main configuration file.
//
// RETURNS:
//   - A pointer to the MainConfig struct with defaults applied.
//   - An error if the file cannot be read or parsed.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultMainConfig returns a configuration with every default applied,
// used when no config file exists on disk.
func DefaultMainConfig() *MainConfig {
	config := &MainConfig{}
	applyDefaults(config)
	return config
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *MainConfig) {
	if config.InputDir == "" {
		config.InputDir = "./input"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.InputArchiveDir == "" {
		config.InputArchiveDir = "./input_archive"
	}
	if config.OutputArchiveDir == "" {
		config.OutputArchiveDir = "./output_archive"
	}
	if config.DefaultVendor == "" {
		config.DefaultVendor = "agne"
	}
	if config.OutputNameFormat == "" {
		config.OutputNameFormat = "{vendor}_{timestamp}_{uuid}.csv"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.MaxConcurrency == 0 {
		config.MaxConcurrency = 4
	}
}

// ContinueOnFileError reports whether a failed file should abort the batch.
func (c *MainConfig) ContinueOnFileError() bool {
	return c.ContinueOnError == nil || *c.ContinueOnError
}

// validate checks the loaded configuration and creates missing directories.
func validate(config *MainConfig) error {
	dirs := []string{
		config.InputDir,
		config.OutputDir,
		config.InputArchiveDir,
		config.OutputArchiveDir,
	}

	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}

	if config.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1, got %d", config.MaxConcurrency)
	}

	return nil
}
