package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"

	"github.com/srcweld/srcweld/internal/model"
)

// MarkdownWriter outputs run summaries in GitHub Flavored Markdown,
// suitable for checking into documentation or pasting into a PR.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run summary in Markdown format.
func (w *MarkdownWriter) Write(report *model.RunReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Combine Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Project list", "`" + report.ProjectListPath + "`"},
			{"Output", "`" + report.OutputPath + "`"},
			{"Generated at", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Files combined", strconv.Itoa(report.FileCount)},
			{"Namespaces", strconv.Itoa(len(report.Namespaces))},
			{"Bytes written", strconv.Itoa(report.BytesWritten)},
			{"Minified", strconv.FormatBool(report.Minified)},
			{"Elapsed", report.Elapsed.Round(time.Millisecond).String()},
		},
	})
	md.PlainText("")

	if report.UnterminatedComments > 0 {
		md.Warningf("%d unterminated block comment(s) detected; the remainder of the affected text was discarded during stripping.",
			report.UnterminatedComments)
		md.PlainText("")
	}

	if len(report.Namespaces) > 0 {
		md.H2("Namespaces")
		md.PlainText("")
		md.BulletList(report.Namespaces...)
		md.PlainText("")
	}

	if len(report.Files) > 0 {
		md.H2("Files")
		md.PlainText("")
		md.BulletList(report.Files...)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}
