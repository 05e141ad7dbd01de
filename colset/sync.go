package colset

import (
	"iter"
	"sync"

	"go.llib.dev/collectivity"
)

// Sync is a set that is safe for concurrent use.
// It must not be copied after first use.
//
// Len walks the whole set, so its result is only a snapshot under concurrent writes.
type Sync[T comparable] struct {
	m sync.Map
}

var (
	_ collectivity.Get[string, string]      = (*Sync[string])(nil)
	_ collectivity.Len                      = (*Sync[string])(nil)
	_ collectivity.Push[string]             = (*Sync[string])(nil)
	_ collectivity.Insert[string, struct{}] = (*Sync[string])(nil)
	_ collectivity.Remove[string, struct{}] = (*Sync[string])(nil)
)

func (s *Sync[T]) Get(elem T) (T, bool) {
	if _, ok := s.m.Load(elem); !ok {
		var zero T
		return zero, false
	}
	return elem, true
}

func (s *Sync[T]) Len() int {
	var n int
	s.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (s *Sync[T]) Push(elem T) { s.m.Store(elem, struct{}{}) }

func (s *Sync[T]) Insert(elem T, _ struct{}) { s.Push(elem) }

func (s *Sync[T]) Remove(elem T) (struct{}, bool) {
	_, ok := s.m.LoadAndDelete(elem)
	return struct{}{}, ok
}

// Values follows the sync.Map Range semantics:
// elements pushed or removed during the iteration may or may not be yielded.
func (s *Sync[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.m.Range(func(k, _ any) bool {
			return yield(k.(T))
		})
	}
}
