package model

import "time"

// FileResult holds the extraction output for a single source file.
// It is produced independently per file so extraction can run in parallel;
// results are collected back into input order before combination.
type FileResult struct {
	// Path is the absolute path of the source file.
	Path string

	// Namespaces lists the namespace names extracted from the file's
	// import directives, in the order they appeared.
	Namespaces []string

	// Body contains the file's remaining lines after import directives
	// and blank lines are removed. Lines are preserved verbatim,
	// including indentation.
	Body []string
}

// RunReport summarizes a single combine run. It is the unit written by the
// report writers and persisted as one row in the history database.
type RunReport struct {
	// ProjectListPath is the project-list file the run was started with.
	ProjectListPath string `json:"project_list_path"`

	// OutputPath is the destination the combined document was written to.
	OutputPath string `json:"output_path"`

	// GeneratedAt is the timestamp embedded in the combined document's
	// header block.
	GeneratedAt time.Time `json:"generated_at"`

	// FileCount is the number of source files combined.
	FileCount int `json:"file_count"`

	// Namespaces is the deduplicated, sorted namespace list emitted at
	// the top of the combined document.
	Namespaces []string `json:"namespaces"`

	// BytesWritten is the size of the persisted output document.
	BytesWritten int `json:"bytes_written"`

	// Minified reports whether comment stripping and line-break removal
	// were applied before persisting.
	Minified bool `json:"minified"`

	// UnterminatedComments counts block comments that ran to end of
	// input during stripping. Zero when minification was not requested.
	UnterminatedComments int `json:"unterminated_comments"`

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed"`

	// Files lists the combined files' base names in output order.
	Files []string `json:"files"`
}

// NewRunReport creates a RunReport for the given input and output paths.
// Counters are filled in as the run progresses.
func NewRunReport(projectListPath, outputPath string) *RunReport {
	return &RunReport{
		ProjectListPath: projectListPath,
		OutputPath:      outputPath,
		GeneratedAt:     time.Now(),
	}
}
