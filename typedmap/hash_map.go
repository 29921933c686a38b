package typedmap

var _ Map[string, int] = (*HashMap[string, int])(nil)

// HashMap is the unordered Map implementation. Enumeration order of Keys,
// Values and Entries is unspecified and may differ between calls.
//
// The zero value is not ready for use: reads behave as an empty map, but
// any write panics with ErrUninitializedMap. Construct through NewHashMap
// or FromEntries.
type HashMap[K comparable, V any] struct {
	entries map[K]*Entry[K, V]
}

func NewHashMap[K comparable, V any]() *HashMap[K, V] {
	return &HashMap[K, V]{
		entries: make(map[K]*Entry[K, V]),
	}
}

func (m *HashMap[K, V]) Get(k K) (v V, found bool) {
	e, ok := m.entries[k]
	if !ok {
		return v, false
	}
	return e.Value, true
}

func (m *HashMap[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]
	return ok
}

func (m *HashMap[K, V]) Set(k K, v V) {
	m.checkInitialized()
	if e, ok := m.entries[k]; ok {
		e.Value = v
		return
	}
	m.entries[k] = &Entry[K, V]{Key: k, Value: v}
}

func (m *HashMap[K, V]) Delete(k K) {
	m.checkInitialized()
	delete(m.entries, k)
}

func (m *HashMap[K, V]) Len() int {
	return len(m.entries)
}

func (m *HashMap[K, V]) Keys() []K {
	arr := make([]K, 0, len(m.entries))
	for k := range m.entries {
		arr = append(arr, k)
	}
	return arr
}

func (m *HashMap[K, V]) Values() []V {
	arr := make([]V, 0, len(m.entries))
	for _, e := range m.entries {
		arr = append(arr, e.Value)
	}
	return arr
}

func (m *HashMap[K, V]) Entries() []Entry[K, V] {
	arr := make([]Entry[K, V], 0, len(m.entries))
	for _, e := range m.entries {
		arr = append(arr, *e)
	}
	return arr
}

// GetOrInsertDefault returns a stable pointer to the value stored under k,
// inserting the zero value of V first when k is absent. The pointer stays
// valid across later mutation of other keys, so a caller can grow a
// slice-typed value in place without a read-modify-write cycle.
func (m *HashMap[K, V]) GetOrInsertDefault(k K) *V {
	m.checkInitialized()
	e, ok := m.entries[k]
	if !ok {
		e = &Entry[K, V]{Key: k}
		m.entries[k] = e
	}
	return &e.Value
}

func (m *HashMap[K, V]) checkInitialized() {
	if m.entries == nil {
		panic(ErrUninitializedMap)
	}
}
