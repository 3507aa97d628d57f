// Package imports extracts import directives from source files and
// aggregates the referenced namespaces across files.
//
// A directive is a full line of the form `using <namespace>;`. Matching is
// deliberately shallow: the line is trimmed, a single doubled interior space
// is collapsed, and the result must start with the keyword and end with the
// statement terminator. A line that merely contains the keyword somewhere,
// or that lacks the terminator, is ordinary body text and is preserved.
//
// Extraction carries no cross-file state, so files can be processed in
// parallel; the namespace Set is filled in afterwards from the collected
// per-file results.
package imports
