// Package combiner assembles per-file extraction results into the single
// combined document and persists it.
//
// The document layout is fixed: a header block comment carrying the
// generation timestamp and file count, one import statement per unique
// namespace in sorted order, then each file's filtered body prefixed by a
// marker comment naming the original file. File sections appear in exactly
// the caller-supplied order; the combiner never re-sorts them.
//
// Minification, when requested, transforms the whole document: comments are
// stripped first (the header and markers are comments and disappear with
// them), then every line break is removed.
package combiner
