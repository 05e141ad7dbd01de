package gods

import (
	"github.com/emirpasic/gods/v2/queues"
	"github.com/emirpasic/gods/v2/queues/linkedlistqueue"

	"go.llib.dev/collectivity"
)

// Queue is a first-in-first-out queue.
// Push enqueues at the back.
type Queue[T comparable] struct {
	queue queues.Queue[T]
}

var (
	_ collectivity.Len              = Queue[int]{}
	_ collectivity.Push[int]        = Queue[int]{}
	_ collectivity.Remove[int, int] = Queue[int]{}
)

func NewQueue[T comparable]() Queue[T] {
	return Queue[T]{queue: linkedlistqueue.New[T]()}
}

func (q Queue[T]) Unwrap() queues.Queue[T] { return q.queue }

func (q Queue[T]) Len() int { return q.queue.Size() }

func (q Queue[T]) Push(val T) { q.queue.Enqueue(val) }

// Remove dequeues the front element.
// Only position 0 can be removed.
func (q Queue[T]) Remove(index int) (T, bool) {
	if index != 0 {
		var zero T
		return zero, false
	}
	return q.queue.Dequeue()
}
