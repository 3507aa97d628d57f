package imports

import "strings"

const (
	// keyword is the import-directive keyword including its mandatory
	// trailing space.
	keyword = "using "

	// terminator ends a directive line.
	terminator = ";"
)

// ParseDirective reports whether line is an import directive and, if so,
// returns the namespace it declares.
//
// Normalization is a narrow heuristic kept intentionally shallow: leading
// and trailing whitespace is trimmed and each doubled interior space
// collapses to one, which tolerates at most one extra space between tokens.
// Full whitespace folding could change matching on lines with deliberate
// multi-space formatting, so it is not done here.
func ParseDirective(line string) (string, bool) {
	norm := strings.TrimSpace(line)
	norm = strings.ReplaceAll(norm, "  ", " ")

	if !strings.HasPrefix(norm, keyword) || !strings.HasSuffix(norm, terminator) {
		return "", false
	}

	name := norm[len(keyword) : len(norm)-len(terminator)]
	if name == "" {
		// `using ;` declares nothing; leave it as body text.
		return "", false
	}
	return name, true
}

// Extract processes one file's lines and returns the namespaces declared by
// its import directives together with the filtered body.
//
// Every line lands in exactly one of three buckets: a directive line is
// removed from the body and contributes its namespace; a blank or
// whitespace-only line is removed unconditionally; anything else is kept
// verbatim, original indentation included.
func Extract(lines []string) (namespaces []string, body []string) {
	for _, line := range lines {
		if name, ok := ParseDirective(line); ok {
			namespaces = append(namespaces, name)
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		body = append(body, line)
	}
	return namespaces, body
}
