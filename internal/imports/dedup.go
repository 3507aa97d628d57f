package imports

import (
	"maps"
	"slices"
)

// Set accumulates namespace names keyed by exact string equality.
// Insertion order is irrelevant; rendering is always sorted.
type Set struct {
	names map[string]struct{}
}

// NewSet creates an empty namespace set.
func NewSet() *Set {
	return &Set{names: make(map[string]struct{})}
}

// Add inserts the given namespaces, ignoring duplicates.
func (s *Set) Add(names ...string) {
	for _, name := range names {
		s.names[name] = struct{}{}
	}
}

// Len returns the number of unique namespaces.
func (s *Set) Len() int {
	return len(s.names)
}

// Sorted returns the namespaces in ascending ordinal order.
func (s *Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s.names))
}
