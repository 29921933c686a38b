package typedmap

// ConstructionMode controls what FromEntries does when the input sequence
// repeats a key. There is no default mode: callers state the policy
// explicitly at every construction site.
type ConstructionMode int

const (
	// Strict rejects a repeated key with a DuplicateKeyError and produces
	// no container.
	Strict ConstructionMode = iota
	// Permissive collapses repeated keys silently, last write wins.
	Permissive
)

// FromEntries builds a HashMap from a literal entry sequence.
func FromEntries[K comparable, V any](mode ConstructionMode, entries []Entry[K, V]) (*HashMap[K, V], error) {
	m := NewHashMap[K, V]()
	for _, e := range entries {
		if mode == Strict && m.Contains(e.Key) {
			return nil, &DuplicateKeyError{Key: e.Key}
		}
		m.Set(e.Key, e.Value)
	}
	return m, nil
}

// LinkedFromEntries is FromEntries for LinkedMap. Under Permissive mode a
// repeated key keeps the position of its first occurrence while taking the
// value of its last.
func LinkedFromEntries[K comparable, V any](mode ConstructionMode, entries []Entry[K, V]) (*LinkedMap[K, V], error) {
	m := NewLinkedMap[K, V]()
	for _, e := range entries {
		if mode == Strict && m.Contains(e.Key) {
			return nil, &DuplicateKeyError{Key: e.Key}
		}
		m.Set(e.Key, e.Value)
	}
	return m, nil
}
