// Package model defines the data types shared across the srcweld pipeline:
// per-file extraction results and the run report consumed by the report
// writers and the history database.
package model
