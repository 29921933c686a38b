package typedmap

// Set is an existence-checking container over comparable values, backed by
// a HashMap with empty struct values.
type Set[V comparable] struct {
	inner *HashMap[V, struct{}]
}

func NewSet[V comparable]() *Set[V] {
	return &Set[V]{
		inner: NewHashMap[V, struct{}](),
	}
}

func SetOf[V comparable](vs ...V) *Set[V] {
	s := NewSet[V]()
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

// Add reports whether v was newly inserted.
func (s *Set[V]) Add(v V) bool {
	if s.inner.Contains(v) {
		return false
	}
	s.inner.Set(v, struct{}{})
	return true
}

// Remove reports whether v was present.
func (s *Set[V]) Remove(v V) bool {
	if !s.inner.Contains(v) {
		return false
	}
	s.inner.Delete(v)
	return true
}

func (s *Set[V]) Contains(v V) bool {
	return s.inner.Contains(v)
}

func (s *Set[V]) Len() int {
	return s.inner.Len()
}

func (s *Set[V]) Entries() []V {
	return s.inner.Keys()
}
