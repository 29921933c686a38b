package typedmap

// Map is the contract shared by HashMap and LinkedMap. Get never fails:
// absence is reported through the found flag, never through a sentinel
// value, so a stored zero value stays distinguishable from a missing key.
// Set is insert-or-overwrite, last write wins. Delete of an absent key is
// a no-op. Keys, Values and Entries are snapshots taken at call time;
// mutating the map afterwards does not affect a snapshot already taken.
//
// Implementations are not synchronized. Concurrent mutation without
// external coordination is a data race; wrap with Synchronized when a map
// is shared across goroutines.
type Map[K comparable, V any] interface {
	Get(k K) (V, bool)
	Contains(k K) bool
	Set(k K, v V)
	Delete(k K)
	Len() int
	Keys() []K
	Values() []V
	Entries() []Entry[K, V]
	GetOrInsertDefault(k K) *V
}
