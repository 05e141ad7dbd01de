package colmap

import (
	"sync"

	"go.llib.dev/collectivity"
)

// Sync is an associative container that is safe for concurrent use.
// It must not be copied after first use.
//
// Len walks the whole map, so its result is only a snapshot under concurrent writes.
type Sync[K comparable, V any] struct {
	m sync.Map
}

var (
	_ collectivity.Get[string, int]       = (*Sync[string, int])(nil)
	_ collectivity.Len                    = (*Sync[string, int])(nil)
	_ collectivity.Insert[string, int]    = (*Sync[string, int])(nil)
	_ collectivity.TryInsert[string, int] = (*Sync[string, int])(nil)
	_ collectivity.Remove[string, int]    = (*Sync[string, int])(nil)
)

func (s *Sync[K, V]) Get(key K) (V, bool) {
	v, ok := s.m.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	val, _ := v.(V)
	return val, true
}

func (s *Sync[K, V]) Len() int {
	var n int
	s.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (s *Sync[K, V]) Insert(key K, val V) { s.m.Store(key, val) }

func (s *Sync[K, V]) TryInsert(key K, val V) error {
	s.m.Store(key, val)
	return nil
}

func (s *Sync[K, V]) Remove(key K) (V, bool) {
	v, ok := s.m.LoadAndDelete(key)
	if !ok {
		var zero V
		return zero, false
	}
	val, _ := v.(V)
	return val, true
}
