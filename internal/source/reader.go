package source

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadFile reads the file at path and returns its content as UTF-8 text.
// A UTF-8, UTF-16 LE, or UTF-16 BE byte order mark selects the decoder and
// is removed from the result. Files without a BOM are treated as UTF-8.
//
// Any read failure is returned as-is; per the tool's error model an
// unreadable input aborts the whole run, there is no best-effort mode.
func ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // Paths come from the user's project manifests
	if err != nil {
		return "", err
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return string(decoded), nil
}

// Lines splits text into lines. The line terminator ("\n" or "\r\n") is not
// part of any line; everything else is preserved verbatim. A trailing
// terminator does not produce a final empty line.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ReadLines reads the file at path and returns its decoded lines.
func ReadLines(path string) ([]string, error) {
	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Lines(text), nil
}
