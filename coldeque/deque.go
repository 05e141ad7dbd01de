// Package coldeque binds a ring-buffer double-ended queue to the collectivity capabilities.
package coldeque

import (
	"github.com/gammazero/deque"

	"go.llib.dev/collectivity"
	"go.llib.dev/collectivity/internal/bounds"
)

// Deque is a growable sequence with cheap insertion at both ends.
// The zero value is an empty deque ready to use.
type Deque[T any] struct {
	d deque.Deque[T]
}

// Unwrap returns the underlying deque,
// for the operations the capabilities do not cover, like PushFront.
func (d *Deque[T]) Unwrap() *deque.Deque[T] { return &d.d }

var (
	_ collectivity.Get[int, string]       = (*Deque[string])(nil)
	_ collectivity.Len                    = (*Deque[string])(nil)
	_ collectivity.Insert[int, string]    = (*Deque[string])(nil)
	_ collectivity.TryInsert[int, string] = (*Deque[string])(nil)
	_ collectivity.Push[string]           = (*Deque[string])(nil)
	_ collectivity.Remove[int, string]    = (*Deque[string])(nil)
)

func (d *Deque[T]) Get(index int) (T, bool) {
	if !bounds.Index(index, d.d.Len()) {
		var zero T
		return zero, false
	}
	return d.d.At(index), true
}

func (d *Deque[T]) Len() int { return d.d.Len() }

// Push appends to the back.
func (d *Deque[T]) Push(val T) { d.d.PushBack(val) }

// Insert panics when index is outside of [0, Len()].
// The deque itself would push such values to one of its ends instead.
func (d *Deque[T]) Insert(index int, val T) {
	bounds.MustInsert(index, d.d.Len())
	d.d.Insert(index, val)
}

func (d *Deque[T]) TryInsert(index int, val T) error {
	if err := bounds.ErrInsert(index, d.d.Len()); err != nil {
		return err
	}
	d.d.Insert(index, val)
	return nil
}

func (d *Deque[T]) Remove(index int) (T, bool) {
	if !bounds.Index(index, d.d.Len()) {
		var zero T
		return zero, false
	}
	return d.d.Remove(index), true
}
