package collist_test

import (
	"testing"

	"go.llib.dev/collectivity/collectivitycontract"
	"go.llib.dev/collectivity/collist"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestLinkedList(t *testing.T) {
	s := testcase.NewSpec(t)

	list := let.Var(s, func(t *testcase.T) *collist.LinkedList[string] {
		return collist.Of("a", "b", "c", "d")
	})

	s.Context("implements Sequence", collectivitycontract.Sequence[int](func(tb testing.TB) *collist.LinkedList[int] {
		return &collist.LinkedList[int]{}
	}).Spec)

	s.Test("Insert links into the head, the middle and the tail", func(t *testcase.T) {
		l := list.Get(t)
		l.Insert(0, "0")
		l.Insert(3, "x")
		l.Insert(l.Len(), "z")
		assert.Equal(t, []string{"0", "a", "b", "x", "c", "d", "z"}, l.Slice())
		assert.Equal(t, 7, l.Len())
	})

	s.Test("Remove keeps the links consistent in both directions", func(t *testcase.T) {
		l := list.Get(t)

		got, ok := l.Remove(0)
		assert.True(t, ok)
		assert.Equal(t, "a", got)

		got, ok = l.Remove(l.Len() - 1)
		assert.True(t, ok)
		assert.Equal(t, "d", got)

		assert.Equal(t, []string{"b", "c"}, l.Slice())

		l.Push("e")
		l.Insert(0, "z")
		assert.Equal(t, []string{"z", "b", "c", "e"}, l.Slice())

		for i, exp := range []string{"z", "b", "c", "e"} {
			got, ok := l.Get(i)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		}
	})

	s.Test("removing every element leaves an empty list", func(t *testcase.T) {
		l := list.Get(t)
		for 0 < l.Len() {
			_, ok := l.Remove(t.Random.IntN(l.Len()))
			assert.True(t, ok)
		}
		assert.Empty(t, l.Slice())
		l.Push("x")
		assert.Equal(t, []string{"x"}, l.Slice())
	})

	s.Test("nil list is empty", func(t *testcase.T) {
		var l *collist.LinkedList[int]
		assert.Equal(t, 0, l.Len())
		_, ok := l.Get(0)
		assert.False(t, ok)
		assert.Empty(t, l.Slice())
	})
}
