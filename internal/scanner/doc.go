// Package scanner provides the literal-aware lexical scanner that underpins
// comment stripping, plus the comment stripper and line-break compactor
// built on top of it.
//
// The scanner partitions source text into contiguous, non-overlapping spans
// classified as comments, string literals, verbatim string literals, or
// plain text. The classification is what makes comment stripping safe:
// a "/*" occurring inside an open string literal is literal content, not a
// comment start, and must survive stripping byte-for-byte.
//
// # Scanning model
//
// The scanner is an explicit finite-state machine rather than a regular
// expression. The states are: normal text, line comment, block comment,
// string literal, string escape, and verbatim string literal. Expressing
// the lexer this way makes the literal-over-comment precedence an explicit
// transition rule and avoids pathological backtracking on adversarial
// input.
//
// # Usage
//
//	sc := scanner.New(src)
//	for span := range sc.Spans() {
//	    fmt.Println(span.Kind, src[span.Start:span.End])
//	}
//	diags := sc.Diagnostics() // valid after full iteration
//
// Most callers want the higher-level helpers instead:
//
//	stripped, diags := scanner.StripComments(src)
//	minified, diags := scanner.Minify(src)
package scanner
