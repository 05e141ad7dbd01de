package gods

import (
	"cmp"

	"github.com/emirpasic/gods/v2/maps"
	"github.com/emirpasic/gods/v2/maps/hashmap"
	"github.com/emirpasic/gods/v2/maps/treemap"

	"go.llib.dev/collectivity"
)

type Map[K comparable, V any] struct {
	m maps.Map[K, V]
}

var (
	_ collectivity.Get[string, int]       = Map[string, int]{}
	_ collectivity.Len                    = Map[string, int]{}
	_ collectivity.Insert[string, int]    = Map[string, int]{}
	_ collectivity.TryInsert[string, int] = Map[string, int]{}
	_ collectivity.Remove[string, int]    = Map[string, int]{}
)

func NewMap[K comparable, V any](m maps.Map[K, V]) Map[K, V] {
	return Map[K, V]{m: m}
}

// NewTreeMap makes an ordered map backed by a red-black tree.
func NewTreeMap[K cmp.Ordered, V any]() Map[K, V] {
	return NewMap[K, V](treemap.New[K, V]())
}

func NewHashMap[K comparable, V any]() Map[K, V] {
	return NewMap[K, V](hashmap.New[K, V]())
}

func (m Map[K, V]) Unwrap() maps.Map[K, V] { return m.m }

func (m Map[K, V]) Get(key K) (V, bool) { return m.m.Get(key) }

func (m Map[K, V]) Len() int { return m.m.Size() }

func (m Map[K, V]) Insert(key K, val V) { m.m.Put(key, val) }

func (m Map[K, V]) TryInsert(key K, val V) error {
	m.m.Put(key, val)
	return nil
}

func (m Map[K, V]) Remove(key K) (V, bool) {
	v, ok := m.m.Get(key)
	if ok {
		m.m.Remove(key)
	}
	return v, ok
}
