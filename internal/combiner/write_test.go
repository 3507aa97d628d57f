package combiner

import (
	"os"
	"path/filepath"
	"testing"
)

// TestWriteAtomic verifies the write-then-rename discipline.
func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes content to destination", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.cs")
		if err := WriteAtomic(path, []byte("class A{}\n")); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		if string(got) != "class A{}\n" {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.cs")
		if err := os.WriteFile(path, []byte("old"), 0600); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		if err := WriteAtomic(path, []byte("new")); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("output = %q, want %q", got, "new")
		}
	})

	t.Run("unwritable destination leaves no file behind", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing-dir", "out.cs")
		if err := WriteAtomic(path, []byte("data")); err == nil {
			t.Fatal("expected error for unwritable destination")
		}

		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("partial output left at destination: %v", err)
		}
	})

	t.Run("leaves no temporary files on success", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.cs")
		if err := WriteAtomic(path, []byte("x")); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("failed to list dir: %v", err)
		}
		if len(entries) != 1 {
			names := make([]string, len(entries))
			for i, e := range entries {
				names[i] = e.Name()
			}
			t.Errorf("expected only the output file, found %v", names)
		}
	})
}
