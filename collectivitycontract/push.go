package collectivitycontract

import (
	"go.llib.dev/collectivity"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

type PushableSubject[V any] interface {
	collectivity.Push[V]
	collectivity.Len
}

// Pushable describes containers that only promise growth on Push,
// such as heaps and queues where the position of the pushed value is not observable.
// The Make function must return an empty container.
func Pushable[V any, Subject PushableSubject[V]](mk contract.Make[Subject], opts ...Option[int, V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	subject := let.Var(s, func(t *testcase.T) Subject {
		return mk(t)
	})

	s.Describe("#Push", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) V {
			return c.makeValue(t)
		})
		act := let.Act0(func(t *testcase.T) {
			subject.Get(t).Push(value.Get(t))
		})

		s.Then("length increases by exactly one", func(t *testcase.T) {
			before := subject.Get(t).Len()
			act(t)
			assert.Equal(t, before+1, subject.Get(t).Len())
		})

		s.Then("length follows the number of pushed values", func(t *testcase.T) {
			vs := random.Slice(t.Random.IntBetween(3, 42), func() V {
				return c.makeValue(t)
			})
			collectivity.PushAll[V](subject.Get(t), vs...)
			assert.Equal(t, len(vs), subject.Get(t).Len())
		})
	})

	s.Test("empty container has zero length", func(t *testcase.T) {
		assert.Equal(t, 0, subject.Get(t).Len())
	})

	return s.AsSuite("Pushable")
}
