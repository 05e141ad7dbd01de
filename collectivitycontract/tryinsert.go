package collectivitycontract

import (
	"go.llib.dev/collectivity"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

type TryInsertableSubject[K, V any] interface {
	collectivity.Get[K, V]
	collectivity.TryInsert[K, V]
	collectivity.Len
}

// TryInsertable describes a key-value container that only offers the error returning insertion,
// usually because its delegate storage can refuse a write.
// The Make function must return an empty container that accepts writes.
func TryInsertable[K, V any, Subject TryInsertableSubject[K, V]](mk contract.Make[Subject], opts ...Option[K, V]) contract.Contract {
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

	act := let.Act(func(t *testcase.T) error {
		return subject.Get(t).TryInsert(key.Get(t), value.Get(t))
	})

	s.Describe("#TryInsert", func(s *testcase.Spec) {
		s.When("the key is new", func(s *testcase.Spec) {
			s.Then("the value becomes retrievable", func(t *testcase.T) {
				assert.NoError(t, act(t))
				got, ok := subject.Get(t).Get(key.Get(t))
				assert.True(t, ok)
				assert.Equal(t, value.Get(t), got)
			})

			s.Then("length increases by exactly one", func(t *testcase.T) {
				before := subject.Get(t).Len()
				assert.NoError(t, act(t))
				assert.Equal(t, before+1, subject.Get(t).Len())
			})
		})

		s.When("the key is already present", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				assert.NoError(t, subject.Get(t).TryInsert(key.Get(t), c.makeValue(t)))
			})

			s.Then("the previous value is replaced", func(t *testcase.T) {
				assert.NoError(t, act(t))
				got, ok := subject.Get(t).Get(key.Get(t))
				assert.True(t, ok)
				assert.Equal(t, value.Get(t), got)
			})

			s.Then("length remains the same", func(t *testcase.T) {
				before := subject.Get(t).Len()
				assert.NoError(t, act(t))
				assert.Equal(t, before, subject.Get(t).Len())
			})
		})
	})

	s.Describe("#Get", func(s *testcase.Spec) {
		s.Then("a missing key is reported to be missing", func(t *testcase.T) {
			_, ok := subject.Get(t).Get(key.Get(t))
			assert.False(t, ok)
		})
	})

	if sub, ok := testcase.Implements[collectivity.Remove[K, V]](subject); ok {
		s.Describe("#Remove", func(s *testcase.Spec) {
			s.Then("a stored key can be removed", func(t *testcase.T) {
				assert.NoError(t, act(t))
				got, ok := sub.Get(t).Remove(key.Get(t))
				assert.True(t, ok)
				assert.Equal(t, value.Get(t), got)
				assert.False(t, collectivity.Contains[K, V](subject.Get(t), key.Get(t)))
			})

			s.Then("removing a missing key reports false", func(t *testcase.T) {
				_, ok := sub.Get(t).Remove(key.Get(t))
				assert.False(t, ok)
			})
		})
	}

	return s.AsSuite("TryInsertable")
}
