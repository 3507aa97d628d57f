package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestCountingHandler verifies warning counting across levels and derived
// handlers.
func TestCountingHandler(t *testing.T) {
	t.Parallel()

	t.Run("counts warn and error, not info or debug", func(t *testing.T) {
		t.Parallel()

		logger, counter := NewLogger(&bytes.Buffer{}, true)

		logger.Debug("d")
		logger.Info("i")
		logger.Warn("w")
		logger.Error("e")

		if got := counter.Warnings(); got != 2 {
			t.Errorf("Warnings() = %d, want 2", got)
		}
	})

	t.Run("counts even when output level suppresses the record", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		text := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError})
		counting := NewCountingHandler(text)
		logger := slog.New(counting)

		logger.Warn("quiet warning")

		if got := counting.Warnings(); got != 1 {
			t.Errorf("Warnings() = %d, want 1", got)
		}
		if strings.Contains(buf.String(), "quiet warning") {
			t.Error("record should have been suppressed by the underlying level")
		}
	})

	t.Run("derived handlers share the counter", func(t *testing.T) {
		t.Parallel()

		logger, counter := NewLogger(&bytes.Buffer{}, false)

		scoped := logger.With("file", "a.cs").WithGroup("scan")
		scoped.Warn("first")
		logger.Warn("second")

		if got := counter.Warnings(); got != 2 {
			t.Errorf("Warnings() = %d, want 2", got)
		}
	})

	t.Run("records reach the underlying handler", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, _ := NewLogger(&buf, false)

		logger.Warn("unterminated block comment", "file", "a.cs")

		out := buf.String()
		if !strings.Contains(out, "unterminated block comment") || !strings.Contains(out, "a.cs") {
			t.Errorf("unexpected log output: %q", out)
		}
	})
}

// TestNewLoggerLevels verifies the verbose switch.
func TestNewLoggerLevels(t *testing.T) {
	t.Parallel()

	t.Run("verbose enables debug output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, _ := NewLogger(&buf, true)
		logger.Debug("details")

		if !strings.Contains(buf.String(), "details") {
			t.Error("expected debug output in verbose mode")
		}
	})

	t.Run("quiet mode suppresses info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, _ := NewLogger(&buf, false)
		logger.Info("chatty")

		if strings.Contains(buf.String(), "chatty") {
			t.Error("expected info to be suppressed in quiet mode")
		}
	})
}
