package collectivitycontract

import (
	"go.llib.dev/collectivity"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

type SetSubject[T any] interface {
	collectivity.Get[T, T]
	collectivity.Push[T]
	collectivity.Len
}

// Set describes a membership container where the element is its own key.
// The Make function must return an empty set.
func Set[T any, Subject SetSubject[T]](mk contract.Make[Subject], opts ...Option[T, T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	subject := let.Var(s, func(t *testcase.T) Subject {
		set := mk(t)
		assert.Equal(t, 0, set.Len(), `The "Make" set should be empty but isn't, please check the setup.`)
		return set
	})

	elem := let.Var(s, func(t *testcase.T) T {
		return c.makeValue(t)
	})

	s.Describe("#Push", func(s *testcase.Spec) {
		act := let.Act0(func(t *testcase.T) {
			subject.Get(t).Push(elem.Get(t))
		})

		s.When("the element is new", func(s *testcase.Spec) {
			s.Then("it becomes a member", func(t *testcase.T) {
				act(t)
				got, ok := subject.Get(t).Get(elem.Get(t))
				assert.True(t, ok)
				assert.Equal(t, elem.Get(t), got)
			})

			s.Then("length increases by exactly one", func(t *testcase.T) {
				before := subject.Get(t).Len()
				act(t)
				assert.Equal(t, before+1, subject.Get(t).Len())
			})
		})

		s.When("the element is already a member", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				subject.Get(t).Push(elem.Get(t))
			})

			s.Then("length remains the same", func(t *testcase.T) {
				before := subject.Get(t).Len()
				act(t)
				assert.Equal(t, before, subject.Get(t).Len())
			})
		})
	})

	s.Describe("#Get", func(s *testcase.Spec) {
		s.Then("a non-member is reported to be missing", func(t *testcase.T) {
			_, ok := subject.Get(t).Get(elem.Get(t))
			assert.False(t, ok)
		})
	})

	if sub, ok := testcase.Implements[collectivity.Insert[T, struct{}]](subject); ok {
		s.Describe("#Insert", func(s *testcase.Spec) {
			s.Then("the key becomes a member", func(t *testcase.T) {
				sub.Get(t).Insert(elem.Get(t), struct{}{})
				assert.True(t, collectivity.Contains[T, T](subject.Get(t), elem.Get(t)))
				assert.Equal(t, 1, subject.Get(t).Len())
			})

			s.Then("inserting a member twice keeps a single entry", func(t *testcase.T) {
				sub.Get(t).Insert(elem.Get(t), struct{}{})
				sub.Get(t).Insert(elem.Get(t), struct{}{})
				assert.Equal(t, 1, subject.Get(t).Len())
			})
		})
	}

	if sub, ok := testcase.Implements[collectivity.Remove[T, struct{}]](subject); ok {
		s.Describe("#Remove", func(s *testcase.Spec) {
			act := let.Act2(func(t *testcase.T) (struct{}, bool) {
				return sub.Get(t).Remove(elem.Get(t))
			})

			s.When("the element is a member", func(s *testcase.Spec) {
				s.Before(func(t *testcase.T) {
					subject.Get(t).Push(elem.Get(t))
				})

				s.Then("it is no longer a member", func(t *testcase.T) {
					_, ok := act(t)
					assert.True(t, ok)
					assert.False(t, collectivity.Contains[T, T](subject.Get(t), elem.Get(t)))
					assert.Equal(t, 0, subject.Get(t).Len())
				})
			})

			s.When("the element is not a member", func(s *testcase.Spec) {
				s.Then("nothing is removed", func(t *testcase.T) {
					_, ok := act(t)
					assert.False(t, ok)
				})
			})
		})
	}

	return s.AsSuite("Set")
}
