// Package report renders combine-run summaries in several output formats:
// human-readable text for the terminal, JSON for tooling, and Markdown for
// documentation. A MultiWriter fans one report out to several destinations,
// which is how the run summary lands on both stdout and a --report file.
package report
