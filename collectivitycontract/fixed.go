package collectivitycontract

import (
	"errors"

	"go.llib.dev/collectivity"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

type FixedSequenceSubject[V any] interface {
	collectivity.Get[int, V]
	collectivity.Insert[int, V]
	collectivity.Len
}

// FixedSequence describes a sequence whose length never changes,
// where Insert overwrites the element at an existing position.
// The Make function must return a non-empty sequence.
func FixedSequence[V any, Subject FixedSequenceSubject[V]](mk contract.Make[Subject], opts ...Option[int, V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	subject := let.Var(s, func(t *testcase.T) Subject {
		seq := mk(t)
		assert.True(t, 0 < seq.Len(), `The "Make" sequence should not be empty, please check the setup.`)
		return seq
	})

	snapshot := func(t *testcase.T) []V {
		var vs []V
		for i := 0; i < subject.Get(t).Len(); i++ {
			v, ok := subject.Get(t).Get(i)
			assert.True(t, ok)
			vs = append(vs, v)
		}
		return vs
	}

	s.Describe("#Get", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (V, bool) {
			return subject.Get(t).Get(index.Get(t))
		})

		s.When("index is within the length", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntN(subject.Get(t).Len())
			})

			s.Then("the value is found", func(t *testcase.T) {
				_, ok := act(t)
				assert.True(t, ok)
			})
		})

		s.When("index is equal to or beyond the length", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return subject.Get(t).Len() + t.Random.IntBetween(0, 42)
			})

			s.Then("the requested value is reported to be missing", func(t *testcase.T) {
				_, ok := act(t)
				assert.False(t, ok)
			})
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) V {
				return c.makeValue(t)
			})
		)
		act := let.Act0(func(t *testcase.T) {
			subject.Get(t).Insert(index.Get(t), value.Get(t))
		})

		s.When("index points to an existing element", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntN(subject.Get(t).Len())
			})

			s.Then("the element is overwritten", func(t *testcase.T) {
				act(t)
				got, ok := subject.Get(t).Get(index.Get(t))
				assert.True(t, ok)
				assert.Equal(t, value.Get(t), got)
			})

			s.Then("length remains the same", func(t *testcase.T) {
				before := subject.Get(t).Len()
				act(t)
				assert.Equal(t, before, subject.Get(t).Len())
			})

			s.Then("apart from the changed value, everything else remains the original one", func(t *testcase.T) {
				before := snapshot(t)
				act(t)
				after := snapshot(t)
				for i := range before {
					if i == index.Get(t) {
						continue
					}
					assert.Equal(t, before[i], after[i])
				}
			})
		})

		s.When("index is equal to or beyond the length", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return subject.Get(t).Len() + t.Random.IntBetween(0, 42)
			})

			s.Then("it panics", func(t *testcase.T) {
				assert.Panic(t, func() { act(t) })
			})
		})

		s.When("index is negative", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return -1 * t.Random.IntBetween(1, 42)
			})

			s.Then("it panics", func(t *testcase.T) {
				assert.Panic(t, func() { act(t) })
			})
		})
	})

	if sub, ok := testcase.Implements[collectivity.TryInsert[int, V]](subject); ok {
		s.Describe("#TryInsert", func(s *testcase.Spec) {
			var (
				index = let.Var[int](s, nil)
				value = let.Var(s, func(t *testcase.T) V {
					return c.makeValue(t)
				})
			)
			act := let.Act(func(t *testcase.T) error {
				return sub.Get(t).TryInsert(index.Get(t), value.Get(t))
			})

			s.When("index points to an existing element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(subject.Get(t).Len())
				})

				s.Then("the element is overwritten", func(t *testcase.T) {
					assert.NoError(t, act(t))
					got, ok := subject.Get(t).Get(index.Get(t))
					assert.True(t, ok)
					assert.Equal(t, value.Get(t), got)
				})
			})

			s.When("index is equal to the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return subject.Get(t).Len()
				})

				s.Then("it reports out of bounds", func(t *testcase.T) {
					var err error
					assert.NotPanic(t, func() { err = act(t) })
					assert.True(t, errors.Is(err, collectivity.ErrOutOfBounds))
				})
			})
		})
	}

	return s.AsSuite("FixedSequence")
}
