package scanner

import "strings"

// StripComments returns src with every comment span removed and every other
// span copied byte-for-byte. The relative order of surviving text is
// unchanged and no separators are inserted, so stripping already-stripped
// text is a no-op.
func StripComments(src string) (string, Diagnostics) {
	sc := New(src)

	var b strings.Builder
	b.Grow(len(src))
	for span := range sc.Spans() {
		if span.Kind == KindComment {
			continue
		}
		b.WriteString(src[span.Start:span.End])
	}
	return b.String(), sc.Diagnostics()
}

// CompactLines removes every line-break character from src, concatenating
// all lines into one. It is a pure string transform: runs of spaces and
// tabs are left as-is, and no re-tokenization happens. It must only run on
// text whose comments were already stripped, since a surviving line comment
// would swallow everything after it once the newlines disappear; use Minify
// for the combined operation.
func CompactLines(src string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, src)
}

// Minify strips comments and then removes line breaks, in that order.
func Minify(src string) (string, Diagnostics) {
	stripped, diags := StripComments(src)
	return CompactLines(stripped), diags
}
