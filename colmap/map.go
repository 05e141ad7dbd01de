// Package colmap binds Go maps to the collectivity capabilities.
package colmap

import (
	"iter"

	"go.llib.dev/collectivity"
)

// Map is an associative container over the builtin map.
// Insert on a nil Map allocates it.
type Map[K comparable, V any] map[K]V

var (
	_ collectivity.Get[string, int]       = Map[string, int]{}
	_ collectivity.Len                    = Map[string, int]{}
	_ collectivity.Insert[string, int]    = (*Map[string, int])(nil)
	_ collectivity.TryInsert[string, int] = (*Map[string, int])(nil)
	_ collectivity.Remove[string, int]    = Map[string, int]{}
)

func (m Map[K, V]) Get(key K) (V, bool) {
	val, ok := m[key]
	return val, ok
}

func (m Map[K, V]) Len() int { return len(m) }

func (m *Map[K, V]) Insert(key K, val V) {
	if *m == nil {
		*m = make(Map[K, V])
	}
	(*m)[key] = val
}

func (m *Map[K, V]) TryInsert(key K, val V) error {
	m.Insert(key, val)
	return nil
}

func (m Map[K, V]) Remove(key K) (V, bool) {
	val, ok := m[key]
	if ok {
		delete(m, key)
	}
	return val, ok
}

func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}
}
