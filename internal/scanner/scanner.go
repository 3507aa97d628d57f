package scanner

import "iter"

// Kind classifies a span of source text.
type Kind int

// Span kinds, in order of definition. KindOther covers everything the
// scanner does not recognize as a comment or literal: identifiers,
// operators, whitespace, and punctuation.
const (
	KindOther Kind = iota
	KindComment
	KindStringLiteral
	KindVerbatimStringLiteral
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindComment:
		return "comment"
	case KindStringLiteral:
		return "string"
	case KindVerbatimStringLiteral:
		return "verbatim_string"
	default:
		return "unknown"
	}
}

// Span is a classified region of source text. Start is inclusive, End is
// exclusive, both byte offsets. Spans produced by a single scan are
// contiguous, never overlap, and cover every byte of the input exactly once.
type Span struct {
	Start int
	End   int
	Kind  Kind
}

// Diagnostics counts structural oddities observed during a scan.
// None of them is fatal; they exist so callers can surface surprising
// input (an unterminated block comment silently swallows the rest of the
// file when stripping).
type Diagnostics struct {
	// UnterminatedComments counts block comments that reached end of
	// input without a closing delimiter.
	UnterminatedComments int

	// UnterminatedStrings counts string literals terminated by a line
	// break instead of a closing quote. The literal content up to the
	// line break is preserved.
	UnterminatedStrings int
}

// Scanner produces classified spans over a single source text.
type Scanner struct {
	src  string
	diag Diagnostics
}

// New creates a Scanner over src.
func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Diagnostics returns the counts accumulated by the most recent complete
// iteration of Spans. It is zero before the first iteration and undefined
// if iteration was abandoned early.
func (s *Scanner) Diagnostics() Diagnostics {
	return s.diag
}

// Spans returns a lazy sequence of classified spans covering the entire
// source text with no gaps and no overlaps.
//
// Precedence: the leftmost match wins, and once a literal is open its
// content is never re-inspected for comment delimiters. That rule, not the
// individual token patterns, is what keeps `"/* not a comment */"` intact.
func (s *Scanner) Spans() iter.Seq[Span] {
	return func(yield func(Span) bool) {
		s.diag = Diagnostics{}

		src := s.src
		n := len(src)
		start := 0 // start of the pending KindOther run
		i := 0

		// flushOther emits the pending plain-text run up to end.
		flushOther := func(end int) bool {
			if end > start {
				return yield(Span{Start: start, End: end, Kind: KindOther})
			}
			return true
		}

		for i < n {
			switch {
			case src[i] == '/' && i+1 < n && src[i+1] == '/':
				if !flushOther(i) {
					return
				}
				end := i + 2
				for end < n && src[end] != '\n' && src[end] != '\r' {
					end++
				}
				// The line terminator is not part of the comment,
				// so stripping never joins adjacent lines.
				if !yield(Span{Start: i, End: end, Kind: KindComment}) {
					return
				}
				i = end
				start = i

			case src[i] == '/' && i+1 < n && src[i+1] == '*':
				if !flushOther(i) {
					return
				}
				end := i + 2
				closed := false
				for end < n {
					if src[end] == '*' && end+1 < n && src[end+1] == '/' {
						end += 2
						closed = true
						break
					}
					end++
				}
				if !closed {
					s.diag.UnterminatedComments++
				}
				if !yield(Span{Start: i, End: end, Kind: KindComment}) {
					return
				}
				i = end
				start = i

			case src[i] == '@' && i+1 < n && src[i+1] == '"':
				if !flushOther(i) {
					return
				}
				end := s.scanVerbatimString(i)
				if !yield(Span{Start: i, End: end, Kind: KindVerbatimStringLiteral}) {
					return
				}
				i = end
				start = i

			case src[i] == '"':
				if !flushOther(i) {
					return
				}
				end := s.scanString(i)
				if !yield(Span{Start: i, End: end, Kind: KindStringLiteral}) {
					return
				}
				i = end
				start = i

			default:
				i++
			}
		}

		flushOther(n)
	}
}

// scanString scans a double-quoted string literal starting at the opening
// quote and returns the offset just past its end. A backslash escapes the
// following character, so an escaped quote does not terminate the literal.
// A literal interrupted by a line break ends before the line break and is
// counted as unterminated.
func (s *Scanner) scanString(at int) int {
	src := s.src
	n := len(src)
	i := at + 1
	for i < n {
		switch src[i] {
		case '\\':
			i++ // the escaped character, whatever it is
			if i < n {
				i++
			}
		case '"':
			return i + 1
		case '\n', '\r':
			s.diag.UnterminatedStrings++
			return i
		default:
			i++
		}
	}
	s.diag.UnterminatedStrings++
	return n
}

// scanVerbatimString scans a verbatim string literal starting at the '@'
// marker and returns the offset just past its end. A doubled quote is a
// literal quote character; backslashes have no special meaning and the
// literal may span multiple lines.
func (s *Scanner) scanVerbatimString(at int) int {
	src := s.src
	n := len(src)
	i := at + 2
	for i < n {
		if src[i] == '"' {
			if i+1 < n && src[i+1] == '"' {
				i += 2
				continue
			}
			return i + 1
		}
		i++
	}
	s.diag.UnterminatedStrings++
	return n
}

// Scan is a convenience wrapper returning the span sequence for src when
// diagnostics are not needed.
func Scan(src string) iter.Seq[Span] {
	return New(src).Spans()
}
