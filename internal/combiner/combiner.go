package combiner

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/srcweld/srcweld/internal/imports"
	"github.com/srcweld/srcweld/internal/model"
	"github.com/srcweld/srcweld/internal/scanner"
)

// headerTimeLayout is the human-readable timestamp format used in the
// generated header block.
const headerTimeLayout = "2006-01-02 15:04:05 MST"

// Document is the combined output artifact. It is built once per run and
// never mutated; minification produces a new string from Text.
type Document struct {
	// Text is the full combined document.
	Text string

	// Namespaces is the deduplicated, sorted namespace list the header
	// renders, kept for reporting.
	Namespaces []string

	// FileCount is the number of file sections in the document.
	FileCount int
}

// Build assembles the combined document from per-file results. Results must
// already be in the order the files should appear; Build preserves it.
func Build(results []*model.FileResult, generatedAt time.Time) *Document {
	set := imports.NewSet()
	for _, r := range results {
		set.Add(r.Namespaces...)
	}
	namespaces := set.Sorted()

	var b strings.Builder

	// Header block. A block comment so minified output, which strips all
	// comments, does not carry generation metadata into the payload.
	fmt.Fprintf(&b, "/*\n * Combined at %s\n * Files combined: %d\n */\n",
		generatedAt.Format(headerTimeLayout), len(results))

	for _, ns := range namespaces {
		fmt.Fprintf(&b, "using %s;\n", ns)
	}

	for _, r := range results {
		fmt.Fprintf(&b, "\n/* ===== %s ===== */\n", filepath.Base(r.Path))
		for _, line := range r.Body {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return &Document{
		Text:       b.String(),
		Namespaces: namespaces,
		FileCount:  len(results),
	}
}

// Minified returns the document text with comments stripped and line breaks
// removed, along with the scanner's diagnostics. The header block and file
// markers are comments, so they do not survive.
func (d *Document) Minified() (string, scanner.Diagnostics) {
	return scanner.Minify(d.Text)
}
