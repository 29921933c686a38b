package typedmap

import "sync"

var _ Map[string, int] = (*SyncMap[string, int])(nil)

// SyncMap serializes access to an underlying Map with an RWMutex. It is
// the opt-in path for sharing a map across goroutines; the base
// implementations stay unsynchronized.
type SyncMap[K comparable, V any] struct {
	mu    sync.RWMutex
	inner Map[K, V]
}

// Synchronized wraps m. The caller must stop using m directly afterwards.
func Synchronized[K comparable, V any](m Map[K, V]) *SyncMap[K, V] {
	return &SyncMap[K, V]{inner: m}
}

func (s *SyncMap[K, V]) Get(k K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Get(k)
}

func (s *SyncMap[K, V]) Contains(k K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Contains(k)
}

func (s *SyncMap[K, V]) Set(k K, v V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Set(k, v)
}

func (s *SyncMap[K, V]) Delete(k K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Delete(k)
}

func (s *SyncMap[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Len()
}

func (s *SyncMap[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Keys()
}

func (s *SyncMap[K, V]) Values() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Values()
}

func (s *SyncMap[K, V]) Entries() []Entry[K, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Entries()
}

// GetOrInsertDefault inserts under the write lock, but the returned handle
// is not guarded once the call returns. Prefer Update when the mutation
// itself must be serialized.
func (s *SyncMap[K, V]) GetOrInsertDefault(k K) *V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.GetOrInsertDefault(k)
}

// Update runs fn against the value handle for k while holding the write
// lock, inserting the zero value of V first when k is absent.
func (s *SyncMap[K, V]) Update(k K, fn func(*V)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.inner.GetOrInsertDefault(k))
}
