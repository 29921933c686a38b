package typedmap

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// SortedKeys returns the keys of m in ascending order, a deterministic
// view over maps whose own enumeration order is unspecified.
func SortedKeys[K constraints.Ordered, V any](m Map[K, V]) []K {
	keys := m.Keys()
	slices.Sort(keys)
	return keys
}

// SortedEntries returns the entries of m ordered by ascending key.
func SortedEntries[K constraints.Ordered, V any](m Map[K, V]) []Entry[K, V] {
	entries := m.Entries()
	slices.SortFunc(entries, func(a, b Entry[K, V]) bool {
		return a.Key < b.Key
	})
	return entries
}
