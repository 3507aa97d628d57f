// Package pipeline runs per-file import extraction concurrently while
// preserving the input file order.
//
// Extraction is embarrassingly parallel: each file is read and filtered
// independently with no shared mutable state. Ordering, however, is a
// correctness requirement, not a performance nicety — the combined output
// must present file sections in exactly the caller-supplied order. The
// batch extractor therefore writes each result into a pre-sized slice at
// the file's input index, so the final order never depends on goroutine
// scheduling.
package pipeline
