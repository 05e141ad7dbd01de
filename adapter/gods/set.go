package gods

import (
	"cmp"

	"github.com/emirpasic/gods/v2/sets"
	"github.com/emirpasic/gods/v2/sets/hashset"
	"github.com/emirpasic/gods/v2/sets/treeset"

	"go.llib.dev/collectivity"
)

type Set[T comparable] struct {
	set sets.Set[T]
}

var (
	_ collectivity.Get[string, string]      = Set[string]{}
	_ collectivity.Len                      = Set[string]{}
	_ collectivity.Push[string]             = Set[string]{}
	_ collectivity.Insert[string, struct{}] = Set[string]{}
	_ collectivity.Remove[string, struct{}] = Set[string]{}
)

func NewSet[T comparable](set sets.Set[T]) Set[T] {
	return Set[T]{set: set}
}

func NewHashSet[T comparable](vs ...T) Set[T] {
	return NewSet[T](hashset.New[T](vs...))
}

// NewTreeSet makes an ordered set backed by a red-black tree.
func NewTreeSet[T cmp.Ordered](vs ...T) Set[T] {
	return NewSet[T](treeset.New[T](vs...))
}

func (s Set[T]) Unwrap() sets.Set[T] { return s.set }

func (s Set[T]) Get(elem T) (T, bool) {
	if !s.set.Contains(elem) {
		var zero T
		return zero, false
	}
	return elem, true
}

func (s Set[T]) Len() int { return s.set.Size() }

func (s Set[T]) Push(elem T) { s.set.Add(elem) }

func (s Set[T]) Insert(elem T, _ struct{}) { s.set.Add(elem) }

func (s Set[T]) Remove(elem T) (struct{}, bool) {
	ok := s.set.Contains(elem)
	if ok {
		s.set.Remove(elem)
	}
	return struct{}{}, ok
}
