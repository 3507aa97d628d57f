// Package log provides the structured logging setup for srcweld, built on
// the standard slog package.
//
// The CountingHandler wraps any slog.Handler and counts records at Warn
// level and above. The combiner tolerates some structural oddities in its
// input (an unterminated block comment swallows the rest of a file when
// stripping); those are logged as warnings, and the counter makes them
// observable to the run report even when the log output itself is
// discarded.
//
// # Usage
//
//	logger, counter := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//	...
//	report.Warnings = counter.Warnings()
package log
