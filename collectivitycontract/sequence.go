package collectivitycontract

import (
	"errors"

	"go.llib.dev/collectivity"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

type SequenceSubject[V any] interface {
	collectivity.Get[int, V]
	collectivity.Insert[int, V]
	collectivity.Push[V]
	collectivity.Len
}

// Sequence describes a growable sequence with index-checked insertion.
// The Make function must return an empty sequence.
//
// When the subject also implements TryInsert or Remove, those are verified as well.
func Sequence[V any, Subject SequenceSubject[V]](mk contract.Make[Subject], opts ...Option[int, V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	subject := let.Var(s, func(t *testcase.T) Subject {
		return mk(t)
	})

	values := let.Var(s, func(t *testcase.T) []V {
		return random.Slice(t.Random.IntBetween(3, 7), func() V {
			return c.makeValue(t)
		}, random.UniqueValues)
	})

	withValues := func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) Subject {
			seq := subject.Super(t)
			collectivity.PushAll[V](seq, values.Get(t)...)
			return seq
		})
	}

	s.Test("pushed values are retrievable by their position", func(t *testcase.T) {
		seq := subject.Get(t)
		for i, v := range values.Get(t) {
			assert.Equal(t, i, seq.Len())
			seq.Push(v)
		}
		for i, exp := range values.Get(t) {
			got, ok := seq.Get(i)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		}
	})

	s.Describe("#Get", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (V, bool) {
			return subject.Get(t).Get(index.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				assert.Equal(t, 0, subject.Get(t).Len(), `The "Make" sequence should be empty but isn't, please check the setup.`)
			})

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("the requested value is reported to be missing", func(t *testcase.T) {
				_, ok := act(t)
				assert.False(t, ok)
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the expected value is returned", func(t *testcase.T) {
					got, ok := act(t)
					assert.True(t, ok)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("the requested value is reported to be missing", func(t *testcase.T) {
					_, ok := act(t)
					assert.False(t, ok)
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return -1 * t.Random.IntBetween(1, 42)
				})

				s.Then("the requested value is reported to be missing", func(t *testcase.T) {
					_, ok := act(t)
					assert.False(t, ok)
				})
			})
		})
	})

	s.Describe("#Push", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) V {
			return c.makeValue(t)
		})
		act := let.Act0(func(t *testcase.T) {
			subject.Get(t).Push(value.Get(t))
		})

		thenAppended := func(s *testcase.Spec) {
			s.Then("length increases by exactly one", func(t *testcase.T) {
				before := subject.Get(t).Len()
				act(t)
				assert.Equal(t, before+1, subject.Get(t).Len())
			})

			s.Then("the value is placed at the end", func(t *testcase.T) {
				act(t)
				got, ok := subject.Get(t).Get(subject.Get(t).Len() - 1)
				assert.True(t, ok)
				assert.Equal(t, value.Get(t), got)
			})
		}

		s.When("sequence is empty", thenAppended)

		s.When("sequence contains values", func(s *testcase.Spec) {
			withValues(s)
			thenAppended(s)

			s.Then("the previous values keep their position", func(t *testcase.T) {
				act(t)
				for i, exp := range values.Get(t) {
					got, ok := subject.Get(t).Get(i)
					assert.True(t, ok)
					assert.Equal(t, exp, got)
				}
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

		withValues(s)

		s.When("index points to an existing element", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntN(len(values.Get(t)))
			})

			s.Then("the value is retrievable at the index", func(t *testcase.T) {
				act(t)
				got, ok := subject.Get(t).Get(index.Get(t))
				assert.True(t, ok)
				assert.Equal(t, value.Get(t), got)
			})

			s.Then("length increases by exactly one", func(t *testcase.T) {
				act(t)
				assert.Equal(t, len(values.Get(t))+1, subject.Get(t).Len())
			})

			s.Then("the elements from the index are shifted to the right", func(t *testcase.T) {
				act(t)
				for i, exp := range values.Get(t) {
					pos := i
					if index.Get(t) <= i {
						pos++
					}
					got, ok := subject.Get(t).Get(pos)
					assert.True(t, ok)
					assert.Equal(t, exp, got)
				}
			})
		})

		s.When("index is equal to the length", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return len(values.Get(t))
			})

			s.Then("the value is appended", func(t *testcase.T) {
				act(t)
				assert.Equal(t, len(values.Get(t))+1, subject.Get(t).Len())
				got, ok := subject.Get(t).Get(len(values.Get(t)))
				assert.True(t, ok)
				assert.Equal(t, value.Get(t), got)
			})
		})

		s.When("index is beyond the length", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return len(values.Get(t)) + t.Random.IntBetween(1, 42)
			})

			s.Then("it panics", func(t *testcase.T) {
				assert.Panic(t, func() { act(t) })
			})

			s.Then("the sequence is left untouched", func(t *testcase.T) {
				assert.Panic(t, func() { act(t) })
				assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
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

			withValues(s)

			s.When("index is within the insertion range", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(0, len(values.Get(t)))
				})

				s.Then("the value is inserted", func(t *testcase.T) {
					assert.NoError(t, act(t))
					got, ok := subject.Get(t).Get(index.Get(t))
					assert.True(t, ok)
					assert.Equal(t, value.Get(t), got)
					assert.Equal(t, len(values.Get(t))+1, subject.Get(t).Len())
				})
			})

			s.When("index is out of range", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					if t.Random.Bool() {
						return -1 * t.Random.IntBetween(1, 42)
					}
					return len(values.Get(t)) + t.Random.IntBetween(1, 42)
				})

				s.Then("it reports out of bounds without panicking", func(t *testcase.T) {
					var err error
					assert.NotPanic(t, func() { err = act(t) })
					assert.True(t, errors.Is(err, collectivity.ErrOutOfBounds))
				})

				s.Then("the sequence is left untouched", func(t *testcase.T) {
					_ = act(t)
					assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
				})
			})
		})
	}

	if sub, ok := testcase.Implements[collectivity.Remove[int, V]](subject); ok {
		s.Describe("#Remove", func(s *testcase.Spec) {
			index := let.Var[int](s, nil)
			act := let.Act2(func(t *testcase.T) (V, bool) {
				return sub.Get(t).Remove(index.Get(t))
			})

			withValues(s)

			s.When("index points to an existing element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the removed value is returned", func(t *testcase.T) {
					got, ok := act(t)
					assert.True(t, ok)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})

				s.Then("length decreases by exactly one", func(t *testcase.T) {
					act(t)
					assert.Equal(t, len(values.Get(t))-1, subject.Get(t).Len())
				})

				s.Then("the following elements are shifted to the left", func(t *testcase.T) {
					act(t)
					for i, exp := range values.Get(t) {
						if i == index.Get(t) {
							continue
						}
						pos := i
						if index.Get(t) < i {
							pos--
						}
						got, ok := subject.Get(t).Get(pos)
						assert.True(t, ok)
						assert.Equal(t, exp, got)
					}
				})
			})

			s.When("index is out of range", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("nothing is removed", func(t *testcase.T) {
					_, ok := act(t)
					assert.False(t, ok)
					assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
				})
			})
		})
	}

	return s.AsSuite("Sequence")
}
