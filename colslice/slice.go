// Package colslice binds Go slices and arrays to the collectivity capabilities.
package colslice

import (
	"slices"

	"go.llib.dev/collectivity"
	"go.llib.dev/collectivity/internal/bounds"
)

// Slice is a growable sequence over a builtin slice.
// The zero value is an empty sequence ready to use.
type Slice[T any] []T

var (
	_ collectivity.Get[int, string]       = Slice[string]{}
	_ collectivity.Len                    = Slice[string]{}
	_ collectivity.Insert[int, string]    = (*Slice[string])(nil)
	_ collectivity.TryInsert[int, string] = (*Slice[string])(nil)
	_ collectivity.Push[string]           = (*Slice[string])(nil)
	_ collectivity.Remove[int, string]    = (*Slice[string])(nil)
)

func (s Slice[T]) Get(index int) (T, bool) {
	if !bounds.Index(index, len(s)) {
		var zero T
		return zero, false
	}
	return s[index], true
}

func (s Slice[T]) Len() int { return len(s) }

// Insert places val at index and shifts the subsequent elements to the right.
// It panics when index is outside of [0, Len()].
func (s *Slice[T]) Insert(index int, val T) {
	bounds.MustInsert(index, len(*s))
	*s = slices.Insert(*s, index, val)
}

func (s *Slice[T]) TryInsert(index int, val T) error {
	if err := bounds.ErrInsert(index, len(*s)); err != nil {
		return err
	}
	*s = slices.Insert(*s, index, val)
	return nil
}

func (s *Slice[T]) Push(val T) { *s = append(*s, val) }

func (s *Slice[T]) Remove(index int) (T, bool) {
	v, ok := s.Get(index)
	if !ok {
		return v, false
	}
	*s = slices.Delete(*s, index, index+1)
	return v, true
}

// Refs returns a view that yields pointers into the backing array.
// The pointers stay valid until the next operation that grows or shrinks s.
func (s Slice[T]) Refs() Refs[T] { return Refs[T](s) }

// Refs is a borrowed view over a slice.
// Get returns a pointer to the stored element instead of a copy,
// so the caller can modify the element in place.
type Refs[T any] []T

var (
	_ collectivity.Get[int, *string] = Refs[string]{}
	_ collectivity.Len               = Refs[string]{}
)

func (r Refs[T]) Get(index int) (*T, bool) {
	if !bounds.Index(index, len(r)) {
		return nil, false
	}
	return &r[index], true
}

func (r Refs[T]) Len() int { return len(r) }
