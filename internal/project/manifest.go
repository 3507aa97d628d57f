package project

import (
	"encoding/xml"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/srcweld/srcweld/internal/source"
)

// ErrNoProjects is returned when the project list names no manifests.
var ErrNoProjects = errors.New("project list contains no project manifests")

// ErrNoSourceFiles is returned when the manifests expand to no source files.
var ErrNoSourceFiles = errors.New("projects contain no source files")

// manifest mirrors the subset of the project file format we read.
// Everything except Compile items is ignored.
type manifest struct {
	XMLName    xml.Name    `xml:"Project"`
	ItemGroups []itemGroup `xml:"ItemGroup"`
}

type itemGroup struct {
	Compiles []compileItem `xml:"Compile"`
}

type compileItem struct {
	Include string `xml:"Include,attr"`
}

// ExpandList reads the project-list file at listPath and returns the
// ordered, absolute paths of all source files across its projects.
// Projects appear in list order and files in manifest document order.
// Files whose base name is on the ignore list are skipped.
func ExpandList(listPath string, ignore []string) ([]string, error) {
	lines, err := source.ReadLines(listPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read project list %s: %w", listPath, err)
	}

	listDir := filepath.Dir(listPath)

	var manifests []string
	for _, line := range lines {
		entry := strings.TrimSpace(line)
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}
		manifests = append(manifests, resolve(listDir, entry))
	}
	if len(manifests) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoProjects, listPath)
	}

	ignored := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		ignored[name] = true
	}

	var files []string
	for _, manifestPath := range manifests {
		expanded, err := expandManifest(manifestPath, ignored)
		if err != nil {
			return nil, err
		}
		files = append(files, expanded...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSourceFiles, listPath)
	}

	return files, nil
}

// expandManifest parses one project manifest and returns its source files
// in document order, resolved against the manifest's directory.
func expandManifest(path string, ignored map[string]bool) ([]string, error) {
	text, err := source.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project manifest %s: %w", path, err)
	}

	var m manifest
	if err := xml.Unmarshal([]byte(text), &m); err != nil {
		return nil, fmt.Errorf("failed to parse project manifest %s: %w", path, err)
	}

	dir := filepath.Dir(path)

	var files []string
	for _, group := range m.ItemGroups {
		for _, item := range group.Compiles {
			if item.Include == "" {
				continue
			}
			// Manifests commonly use backslash separators regardless
			// of the platform they were written on.
			include := filepath.FromSlash(strings.ReplaceAll(item.Include, `\`, "/"))
			if ignored[filepath.Base(include)] {
				continue
			}
			files = append(files, resolve(dir, include))
		}
	}

	return files, nil
}

// resolve joins a relative path against base, leaving absolute paths alone.
func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
