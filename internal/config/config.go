package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultBatchSize is the number of source files extracted
	// concurrently. Extraction is I/O-bound and per-file work is tiny,
	// so a modest limit keeps file-descriptor usage predictable without
	// costing throughput.
	DefaultBatchSize = 8

	// AppName is the application name used for XDG directory paths.
	AppName = "srcweld"
)

// DefaultIgnoreFiles lists generated metadata files excluded from
// combination unless the user overrides the list in the config file.
// AssemblyInfo.cs is assembly metadata emitted by project templates and
// never useful in a single-file submission.
var DefaultIgnoreFiles = []string{"AssemblyInfo.cs"}

// Config holds all options for a combine run. It is populated from CLI
// flags plus the optional config file and validated before any work starts.
type Config struct {
	// ProjectListPath is the file naming the project manifests to
	// combine, one per line.
	ProjectListPath string

	// OutputPath is the destination for the combined document.
	OutputPath string

	// Minify strips comments and removes line breaks from the combined
	// document before writing it.
	Minify bool

	// OpenWhenDone launches the platform opener on the output file after
	// a successful write.
	OpenWhenDone bool

	// BatchSize is the number of files extracted concurrently.
	BatchSize int

	// IgnoreFiles lists base names excluded during project expansion.
	IgnoreFiles []string

	// ConfigFilePath is an explicit config file path. Empty means search
	// the working directory and then the home directory.
	ConfigFilePath string

	// Verbose enables debug-level logging.
	Verbose bool

	// JSONReport selects JSON format for the run summary.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown format for the run summary.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile, when set, additionally writes the run summary to this
	// path.
	ReportFile string

	// SaveHistory records the run in the history database.
	SaveHistory bool

	// DBDir is the directory holding the history database.
	DBDir string
}

// NewConfig creates a Config with defaults. Non-zero defaults live here
// rather than relying on zero values so they are documented in one place.
func NewConfig() *Config {
	return &Config{
		BatchSize:   DefaultBatchSize,
		IgnoreFiles: append([]string(nil), DefaultIgnoreFiles...),
		SaveHistory: true,
		DBDir:       XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for srcweld.
// On Linux: ~/.local/share/srcweld
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for srcweld.
// On Linux: ~/.config/srcweld
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns the first problem found.
// It runs once after flag and file merging, before any file is read.
func (c *Config) Validate() error {
	if c.ProjectListPath == "" {
		return ErrNoProjectList
	}
	if c.OutputPath == "" {
		return ErrNoOutputPath
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}
