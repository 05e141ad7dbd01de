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

type AssociativeSubject[K, V any] interface {
	collectivity.Get[K, V]
	collectivity.Insert[K, V]
	collectivity.Len
}

// Associative describes a key-value container with create-or-replace insertion.
// The Make function must return an empty container.
//
// When the subject also implements TryInsert or Remove, those are verified as well.
func Associative[K, V any, Subject AssociativeSubject[K, V]](mk contract.Make[Subject], opts ...Option[K, V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	subject := let.Var(s, func(t *testcase.T) Subject {
		return mk(t)
	})

	var (
		key = let.Var(s, func(t *testcase.T) K {
			return c.makeKey(t)
		})
		value = let.Var(s, func(t *testcase.T) V {
			return c.makeValue(t)
		})
	)

	s.Describe("#Get", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (V, bool) {
			return subject.Get(t).Get(key.Get(t))
		})

		s.When("container is empty", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				assert.Equal(t, 0, subject.Get(t).Len(), `The "Make" container should be empty but isn't, please check the setup.`)
			})

			s.Then("the key is reported to be missing", func(t *testcase.T) {
				_, ok := act(t)
				assert.False(t, ok)
				assert.False(t, collectivity.Contains[K, V](subject.Get(t), key.Get(t)))
			})
		})

		s.When("the key is present", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				subject.Get(t).Insert(key.Get(t), value.Get(t))
			})

			s.Then("the stored value is returned", func(t *testcase.T) {
				got, ok := act(t)
				assert.True(t, ok)
				assert.Equal(t, value.Get(t), got)
				assert.True(t, collectivity.Contains[K, V](subject.Get(t), key.Get(t)))
			})
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		act := let.Act0(func(t *testcase.T) {
			subject.Get(t).Insert(key.Get(t), value.Get(t))
		})

		s.When("the key is new", func(s *testcase.Spec) {
			s.Then("the value becomes retrievable", func(t *testcase.T) {
				act(t)
				got, ok := subject.Get(t).Get(key.Get(t))
				assert.True(t, ok)
				assert.Equal(t, value.Get(t), got)
			})

			s.Then("length increases by exactly one", func(t *testcase.T) {
				before := subject.Get(t).Len()
				act(t)
				assert.Equal(t, before+1, subject.Get(t).Len())
			})
		})

		s.When("the key is already present", func(s *testcase.Spec) {
			othValue := let.Var(s, func(t *testcase.T) V {
				return c.makeValue(t)
			})

			s.Before(func(t *testcase.T) {
				subject.Get(t).Insert(key.Get(t), othValue.Get(t))
			})

			s.Then("the previous value is replaced", func(t *testcase.T) {
				act(t)
				got, ok := subject.Get(t).Get(key.Get(t))
				assert.True(t, ok)
				assert.Equal(t, value.Get(t), got)
			})

			s.Then("length remains the same", func(t *testcase.T) {
				before := subject.Get(t).Len()
				act(t)
				assert.Equal(t, before, subject.Get(t).Len())
			})
		})

		s.Then("it never panics on key values", func(t *testcase.T) {
			keys := random.Slice(t.Random.IntBetween(3, 7), func() K {
				return c.makeKey(t)
			}, random.UniqueValues)
			for _, k := range keys {
				assert.NotPanic(t, func() { subject.Get(t).Insert(k, value.Get(t)) })
			}
			assert.Equal(t, len(keys), subject.Get(t).Len())
		})
	})

	if sub, ok := testcase.Implements[collectivity.TryInsert[K, V]](subject); ok {
		s.Describe("#TryInsert", func(s *testcase.Spec) {
			act := let.Act(func(t *testcase.T) error {
				return sub.Get(t).TryInsert(key.Get(t), value.Get(t))
			})

			s.Then("it succeeds and the value becomes retrievable", func(t *testcase.T) {
				assert.NoError(t, act(t))
				got, ok := subject.Get(t).Get(key.Get(t))
				assert.True(t, ok)
				assert.Equal(t, value.Get(t), got)
			})

			s.Then("replacing an existing key succeeds as well", func(t *testcase.T) {
				subject.Get(t).Insert(key.Get(t), c.makeValue(t))
				assert.NoError(t, act(t))
				assert.Equal(t, 1, subject.Get(t).Len())
			})
		})
	}

	if sub, ok := testcase.Implements[collectivity.Remove[K, V]](subject); ok {
		s.Describe("#Remove", func(s *testcase.Spec) {
			act := let.Act2(func(t *testcase.T) (V, bool) {
				return sub.Get(t).Remove(key.Get(t))
			})

			s.When("the key is present", func(s *testcase.Spec) {
				s.Before(func(t *testcase.T) {
					subject.Get(t).Insert(key.Get(t), value.Get(t))
				})

				s.Then("the removed value is returned", func(t *testcase.T) {
					got, ok := act(t)
					assert.True(t, ok)
					assert.Equal(t, value.Get(t), got)
				})

				s.Then("the key is no longer present", func(t *testcase.T) {
					act(t)
					_, ok := subject.Get(t).Get(key.Get(t))
					assert.False(t, ok)
					assert.Equal(t, 0, subject.Get(t).Len())
				})
			})

			s.When("the key is missing", func(s *testcase.Spec) {
				s.Then("nothing is removed", func(t *testcase.T) {
					_, ok := act(t)
					assert.False(t, ok)
					assert.Equal(t, 0, subject.Get(t).Len())
				})
			})
		})
	}

	return s.AsSuite("Associative")
}
