package config

import (
	"errors"
	"slices"
	"testing"
)

// TestNewConfig pins the defaults; changes to them should be intentional.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default BatchSize is 8", func(t *testing.T) {
		t.Parallel()
		if cfg.BatchSize != 8 {
			t.Errorf("expected BatchSize 8, got %d", cfg.BatchSize)
		}
	})

	t.Run("default ignore list contains AssemblyInfo.cs", func(t *testing.T) {
		t.Parallel()
		if !slices.Contains(cfg.IgnoreFiles, "AssemblyInfo.cs") {
			t.Errorf("expected AssemblyInfo.cs in ignore list, got %v", cfg.IgnoreFiles)
		}
	})

	t.Run("default SaveHistory is true", func(t *testing.T) {
		t.Parallel()
		if !cfg.SaveHistory {
			t.Error("expected SaveHistory to default to true")
		}
	})

	t.Run("default Minify is false", func(t *testing.T) {
		t.Parallel()
		if cfg.Minify {
			t.Error("expected Minify to default to false")
		}
	})

	t.Run("default DBDir is the XDG data dir", func(t *testing.T) {
		t.Parallel()
		if cfg.DBDir != XDGDataDir() {
			t.Errorf("expected DBDir %q, got %q", XDGDataDir(), cfg.DBDir)
		}
	})

	t.Run("ignore list is a copy of the default", func(t *testing.T) {
		t.Parallel()
		other := NewConfig()
		other.IgnoreFiles[0] = "changed"
		if DefaultIgnoreFiles[0] != "AssemblyInfo.cs" {
			t.Error("mutating a config's ignore list changed the package default")
		}
	})
}

// TestValidate covers each validation error.
func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := NewConfig()
		cfg.ProjectListPath = "projects.txt"
		cfg.OutputPath = "out.cs"
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		t.Parallel()
		if err := valid().Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("missing project list", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.ProjectListPath = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoProjectList) {
			t.Errorf("expected ErrNoProjectList, got %v", err)
		}
	})

	t.Run("missing output path", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.OutputPath = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoOutputPath) {
			t.Errorf("expected ErrNoOutputPath, got %v", err)
		}
	})

	t.Run("non-positive batch size", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.BatchSize = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidBatchSize) {
			t.Errorf("expected ErrInvalidBatchSize, got %v", err)
		}
	})

	t.Run("conflicting report formats", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.JSONReport = true
		cfg.MarkdownReport = true
		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})
}
