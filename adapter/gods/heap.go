package gods

import (
	"cmp"

	"github.com/emirpasic/gods/v2/trees/binaryheap"

	"go.llib.dev/collectivity"
)

// Heap is a binary min-heap.
// Positions are not observable, so it only offers Push and Len.
type Heap[T cmp.Ordered] struct {
	heap *binaryheap.Heap[T]
}

var (
	_ collectivity.Len       = Heap[int]{}
	_ collectivity.Push[int] = Heap[int]{}
)

func NewHeap[T cmp.Ordered]() Heap[T] {
	return Heap[T]{heap: binaryheap.New[T]()}
}

func (h Heap[T]) Unwrap() *binaryheap.Heap[T] { return h.heap }

func (h Heap[T]) Len() int { return h.heap.Size() }

func (h Heap[T]) Push(val T) { h.heap.Push(val) }
