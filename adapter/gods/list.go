// Package gods binds the github.com/emirpasic/gods/v2 containers to the collectivity capabilities.
//
// The gods lists ignore insertion at an invalid position silently.
// The adapters here check the position first and panic like the other sequence adapters.
package gods

import (
	"github.com/emirpasic/gods/v2/lists"
	"github.com/emirpasic/gods/v2/lists/arraylist"
	"github.com/emirpasic/gods/v2/lists/doublylinkedlist"

	"go.llib.dev/collectivity"
	"go.llib.dev/collectivity/internal/bounds"
)

type List[T comparable] struct {
	list lists.List[T]
}

var (
	_ collectivity.Get[int, string]       = List[string]{}
	_ collectivity.Len                    = List[string]{}
	_ collectivity.Insert[int, string]    = List[string]{}
	_ collectivity.TryInsert[int, string] = List[string]{}
	_ collectivity.Push[string]           = List[string]{}
	_ collectivity.Remove[int, string]    = List[string]{}
)

// NewList wraps an existing gods list.
func NewList[T comparable](list lists.List[T]) List[T] {
	return List[T]{list: list}
}

func NewArrayList[T comparable](vs ...T) List[T] {
	return NewList[T](arraylist.New[T](vs...))
}

func NewLinkedList[T comparable](vs ...T) List[T] {
	return NewList[T](doublylinkedlist.New[T](vs...))
}

// Unwrap returns the delegate list.
func (l List[T]) Unwrap() lists.List[T] { return l.list }

func (l List[T]) Get(index int) (T, bool) {
	if !bounds.Index(index, l.list.Size()) {
		var zero T
		return zero, false
	}
	return l.list.Get(index)
}

func (l List[T]) Len() int { return l.list.Size() }

func (l List[T]) Push(val T) { l.list.Add(val) }

// Insert panics when index is outside of [0, Len()].
func (l List[T]) Insert(index int, val T) {
	bounds.MustInsert(index, l.list.Size())
	l.list.Insert(index, val)
}

func (l List[T]) TryInsert(index int, val T) error {
	if err := bounds.ErrInsert(index, l.list.Size()); err != nil {
		return err
	}
	l.list.Insert(index, val)
	return nil
}

func (l List[T]) Remove(index int) (T, bool) {
	v, ok := l.Get(index)
	if !ok {
		return v, false
	}
	l.list.Remove(index)
	return v, true
}
