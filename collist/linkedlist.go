// Package collist provides a doubly linked list bound to the collectivity capabilities.
package collist

import (
	"iter"

	"go.llib.dev/collectivity"
	"go.llib.dev/collectivity/internal/bounds"
)

// LinkedList is a doubly linked list.
// The zero value is an empty list ready to use.
type LinkedList[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

var (
	_ collectivity.Get[int, string]       = (*LinkedList[string])(nil)
	_ collectivity.Len                    = (*LinkedList[string])(nil)
	_ collectivity.Insert[int, string]    = (*LinkedList[string])(nil)
	_ collectivity.TryInsert[int, string] = (*LinkedList[string])(nil)
	_ collectivity.Push[string]           = (*LinkedList[string])(nil)
	_ collectivity.Remove[int, string]    = (*LinkedList[string])(nil)
)

type node[T any] struct {
	data T
	prev *node[T]
	next *node[T]
}

// Of makes a LinkedList from the given values.
func Of[T any](vs ...T) *LinkedList[T] {
	ll := &LinkedList[T]{}
	for _, v := range vs {
		ll.Push(v)
	}
	return ll
}

func (ll *LinkedList[T]) Len() int {
	if ll == nil {
		return 0
	}
	return ll.length
}

func (ll *LinkedList[T]) Get(index int) (T, bool) {
	n, ok := ll.lookup(index)
	if !ok {
		var zero T
		return zero, false
	}
	return n.data, true
}

// lookup walks from the closer end of the list.
func (ll *LinkedList[T]) lookup(index int) (*node[T], bool) {
	if !bounds.Index(index, ll.Len()) {
		return nil, false
	}
	if index < ll.length/2 {
		current := ll.head
		for i := 0; i < index; i++ {
			current = current.next
		}
		return current, true
	}
	current := ll.tail
	for i := ll.length - 1; index < i; i-- {
		current = current.prev
	}
	return current, true
}

func (ll *LinkedList[T]) Push(v T) {
	n := &node[T]{data: v}
	if ll.tail == nil {
		ll.head = n
		ll.tail = n
	} else {
		n.prev = ll.tail
		ll.tail.next = n
		ll.tail = n
	}
	ll.length++
}

// Insert links v in front of the element at index.
// It panics when index is outside of [0, Len()].
func (ll *LinkedList[T]) Insert(index int, v T) {
	bounds.MustInsert(index, ll.Len())
	ll.insert(index, v)
}

func (ll *LinkedList[T]) TryInsert(index int, v T) error {
	if err := bounds.ErrInsert(index, ll.Len()); err != nil {
		return err
	}
	ll.insert(index, v)
	return nil
}

func (ll *LinkedList[T]) insert(index int, v T) {
	if index == ll.length {
		ll.Push(v)
		return
	}
	next, _ := ll.lookup(index)
	n := &node[T]{data: v, prev: next.prev, next: next}
	if next.prev == nil {
		ll.head = n
	} else {
		next.prev.next = n
	}
	next.prev = n
	ll.length++
}

func (ll *LinkedList[T]) Remove(index int) (T, bool) {
	n, ok := ll.lookup(index)
	if !ok {
		var zero T
		return zero, false
	}
	if n.prev == nil {
		ll.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		ll.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	ll.length--
	return n.data, true
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for current := ll.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) Slice() []T {
	var vs []T
	for v := range ll.Values() {
		vs = append(vs, v)
	}
	return vs
}
