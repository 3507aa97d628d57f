package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/srcweld/srcweld/internal/model"
)

// SimpleWriter outputs human-readable text summaries for the terminal.
// Plain ASCII, no color, so output pipes cleanly into files and other
// tools.
type SimpleWriter struct {
	baseWriter

	// verbose adds the full namespace and file lists to the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables the namespace and file listings.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the run summary in human-readable format.
func (w *SimpleWriter) Write(report *model.RunReport) (int, error) {
	var sb strings.Builder

	sb.WriteString("Combine summary\n")
	sb.WriteString("===============\n")
	fmt.Fprintf(&sb, "Project list:  %s\n", report.ProjectListPath)
	fmt.Fprintf(&sb, "Output:        %s\n", report.OutputPath)
	fmt.Fprintf(&sb, "Generated at:  %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&sb, "Files:         %d\n", report.FileCount)
	fmt.Fprintf(&sb, "Namespaces:    %d\n", len(report.Namespaces))
	fmt.Fprintf(&sb, "Bytes written: %d\n", report.BytesWritten)
	fmt.Fprintf(&sb, "Minified:      %t\n", report.Minified)
	fmt.Fprintf(&sb, "Elapsed:       %s\n", report.Elapsed.Round(time.Millisecond))

	if report.UnterminatedComments > 0 {
		fmt.Fprintf(&sb, "Warning: %d unterminated block comment(s); the remainder of the affected text was discarded\n",
			report.UnterminatedComments)
	}

	if w.verbose {
		if len(report.Namespaces) > 0 {
			sb.WriteString("\nNamespaces:\n")
			for _, ns := range report.Namespaces {
				fmt.Fprintf(&sb, "  - %s\n", ns)
			}
		}
		if len(report.Files) > 0 {
			sb.WriteString("\nFiles combined:\n")
			for _, f := range report.Files {
				fmt.Fprintf(&sb, "  - %s\n", f)
			}
		}
	}

	return w.output.Write([]byte(sb.String()))
}
