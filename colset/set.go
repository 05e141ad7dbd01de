// Package colset binds hash sets to the collectivity capabilities.
//
// A set uses its element as the key.
// Get returns the stored element, and Insert takes an empty struct as value.
package colset

import (
	"iter"

	"go.llib.dev/collectivity"
)

type Set[T comparable] map[T]struct{}

var (
	_ collectivity.Get[string, string]      = Set[string]{}
	_ collectivity.Len                      = Set[string]{}
	_ collectivity.Push[string]             = (*Set[string])(nil)
	_ collectivity.Insert[string, struct{}] = (*Set[string])(nil)
	_ collectivity.Remove[string, struct{}] = Set[string]{}
)

// Of makes a Set from the given elements.
func Of[T comparable](vs ...T) Set[T] {
	s := make(Set[T], len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Get(elem T) (T, bool) {
	if _, ok := s[elem]; !ok {
		var zero T
		return zero, false
	}
	return elem, true
}

func (s Set[T]) Len() int { return len(s) }

func (s *Set[T]) Push(elem T) {
	if *s == nil {
		*s = make(Set[T])
	}
	(*s)[elem] = struct{}{}
}

func (s *Set[T]) Insert(elem T, _ struct{}) { s.Push(elem) }

func (s Set[T]) Remove(elem T) (struct{}, bool) {
	_, ok := s[elem]
	delete(s, elem)
	return struct{}{}, ok
}

func (s Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !yield(v) {
				return
			}
		}
	}
}
