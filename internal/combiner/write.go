package combiner

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteAtomic writes data to path without ever leaving a partial file at
// the destination: the content goes to a temporary file in the same
// directory first and is renamed into place only after a successful write.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary output file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close output: %w", err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil { //nolint:gosec // Output is a source file, not a secret
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set output permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}
