package typedmap

// Entry is a single key/value pair, used both as FromEntries input and as
// the element type of Entries snapshots.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}
