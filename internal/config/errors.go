package config

import "errors"

// Configuration validation errors. Package-level sentinels so callers can
// use errors.Is while still getting a readable message.
var (
	// ErrNoProjectList is returned when no project-list path is given.
	ErrNoProjectList = errors.New("no project list specified: provide the project-list path as the first argument")

	// ErrNoOutputPath is returned when no output destination is given.
	ErrNoOutputPath = errors.New("no output path specified: provide the output path as the second argument")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
