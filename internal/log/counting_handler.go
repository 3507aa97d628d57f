package log

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

// CountingHandler wraps an slog.Handler and counts records logged at Warn
// level or above. The counter is shared across handlers derived via
// WithAttrs and WithGroup, so attribute scoping does not split the count.
type CountingHandler struct {
	// handler is the underlying slog handler that receives all records.
	handler slog.Handler

	// warnings counts Warn+ records across all derived handlers.
	warnings *atomic.Int64
}

// NewCountingHandler creates a CountingHandler wrapping the given handler.
// If handler is nil, slog.Default's handler is used.
func NewCountingHandler(handler slog.Handler) *CountingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &CountingHandler{
		handler:  handler,
		warnings: new(atomic.Int64),
	}
}

// Warnings returns the number of Warn-and-above records handled so far.
func (h *CountingHandler) Warnings() int64 {
	return h.warnings.Load()
}

// Enabled reports whether the handler handles records at the given level.
// Records are counted regardless of whether the underlying handler would
// emit them, so diagnostics stay observable at quiet log levels; Enabled
// therefore always returns true for Warn and above.
func (h *CountingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level >= slog.LevelWarn {
		return true
	}
	return h.handler.Enabled(ctx, level)
}

// Handle counts Warn+ records and passes every record to the underlying
// handler if it is enabled for the record's level.
func (h *CountingHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.warnings.Add(1)
	}
	if !h.handler.Enabled(ctx, r.Level) {
		return nil
	}
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a derived handler sharing the same counter.
func (h *CountingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CountingHandler{
		handler:  h.handler.WithAttrs(attrs),
		warnings: h.warnings,
	}
}

// WithGroup returns a derived handler sharing the same counter.
func (h *CountingHandler) WithGroup(name string) slog.Handler {
	return &CountingHandler{
		handler:  h.handler.WithGroup(name),
		warnings: h.warnings,
	}
}

// NewLogger creates a logger writing text output to w, along with the
// CountingHandler observing it.
//
// Parameters:
//   - w: destination for log output (typically os.Stderr)
//   - verbose: if true, log level is Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) (*slog.Logger, *CountingHandler) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	text := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	counting := NewCountingHandler(text)
	return slog.New(counting), counting
}
