// Package database provides SQLite-backed storage of combine-run history.
//
// Each combine run is recorded as one row: when it ran, what it combined,
// where the output went, and the diagnostic counters. The history command
// reads these rows back; nothing in the combine pipeline depends on the
// database, and a failure to record history degrades to a warning rather
// than failing the run.
package database
