package typedmap

import "golang.org/x/exp/slices"

var _ Map[string, int] = (*LinkedMap[string, int])(nil)

// LinkedMap keeps entries in insertion order: Keys, Values and Entries
// enumerate oldest first. Overwriting an existing key keeps its original
// position; deleting and re-inserting a key moves it to the end.
//
// Zero value rules match HashMap: reads behave as an empty map, writes
// panic with ErrUninitializedMap.
type LinkedMap[K comparable, V any] struct {
	index map[K]*Entry[K, V]
	order []*Entry[K, V]
}

func NewLinkedMap[K comparable, V any]() *LinkedMap[K, V] {
	return &LinkedMap[K, V]{
		index: make(map[K]*Entry[K, V]),
		order: make([]*Entry[K, V], 0),
	}
}

func (m *LinkedMap[K, V]) Get(k K) (v V, found bool) {
	e, ok := m.index[k]
	if !ok {
		return v, false
	}
	return e.Value, true
}

func (m *LinkedMap[K, V]) Contains(k K) bool {
	_, ok := m.index[k]
	return ok
}

func (m *LinkedMap[K, V]) Set(k K, v V) {
	m.checkInitialized()
	if e, ok := m.index[k]; ok {
		e.Value = v
		return
	}
	e := &Entry[K, V]{Key: k, Value: v}
	m.index[k] = e
	m.order = append(m.order, e)
}

func (m *LinkedMap[K, V]) Delete(k K) {
	m.checkInitialized()
	e, ok := m.index[k]
	if !ok {
		return
	}
	delete(m.index, k)
	if i := slices.Index(m.order, e); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
}

func (m *LinkedMap[K, V]) Len() int {
	return len(m.index)
}

func (m *LinkedMap[K, V]) Keys() []K {
	arr := make([]K, 0, len(m.order))
	for _, e := range m.order {
		arr = append(arr, e.Key)
	}
	return arr
}

func (m *LinkedMap[K, V]) Values() []V {
	arr := make([]V, 0, len(m.order))
	for _, e := range m.order {
		arr = append(arr, e.Value)
	}
	return arr
}

func (m *LinkedMap[K, V]) Entries() []Entry[K, V] {
	arr := make([]Entry[K, V], 0, len(m.order))
	for _, e := range m.order {
		arr = append(arr, *e)
	}
	return arr
}

// GetOrInsertDefault behaves as on HashMap; a fresh insert takes the last
// position in the order.
func (m *LinkedMap[K, V]) GetOrInsertDefault(k K) *V {
	m.checkInitialized()
	e, ok := m.index[k]
	if !ok {
		e = &Entry[K, V]{Key: k}
		m.index[k] = e
		m.order = append(m.order, e)
	}
	return &e.Value
}

func (m *LinkedMap[K, V]) checkInitialized() {
	if m.index == nil {
		panic(ErrUninitializedMap)
	}
}
