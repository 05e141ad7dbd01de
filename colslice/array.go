package colslice

import (
	"go.llib.dev/collectivity"
	"go.llib.dev/collectivity/internal/bounds"
)

// Array is a fixed-size sequence.
// Use it as a view over a Go array (colslice.Array[T](arr[:])) or a slice that must not grow.
// Insert overwrites the element at the position since the length cannot change.
type Array[T any] []T

var (
	_ collectivity.Get[int, string]       = Array[string]{}
	_ collectivity.Len                    = Array[string]{}
	_ collectivity.Insert[int, string]    = Array[string]{}
	_ collectivity.TryInsert[int, string] = Array[string]{}
)

func (a Array[T]) Get(index int) (T, bool) {
	if !bounds.Index(index, len(a)) {
		var zero T
		return zero, false
	}
	return a[index], true
}

func (a Array[T]) Len() int { return len(a) }

// Insert overwrites the element at index.
// It panics when index does not address an existing element.
func (a Array[T]) Insert(index int, val T) {
	bounds.MustIndex(index, len(a))
	a[index] = val
}

func (a Array[T]) TryInsert(index int, val T) error {
	if err := bounds.ErrIndex(index, len(a)); err != nil {
		return err
	}
	a[index] = val
	return nil
}
