package colset_test

import (
	"slices"
	"sync"
	"testing"

	"go.llib.dev/collectivity/collectivitycontract"
	"go.llib.dev/collectivity/colset"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestSet(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Context("implements Set", collectivitycontract.Set[string](func(tb testing.TB) *colset.Set[string] {
		return &colset.Set[string]{}
	}).Spec)

	s.Context("implements Set with int elements", collectivitycontract.Set[int](func(tb testing.TB) *colset.Set[int] {
		return &colset.Set[int]{}
	}).Spec)

	s.Test("Of deduplicates", func(t *testcase.T) {
		v := t.Random.String()
		set := colset.Of(v, v, t.Random.StringNC(8, "abc")+"-"+v)
		assert.Equal(t, 2, set.Len())
	})

	s.Test("Values yields every member", func(t *testcase.T) {
		exp := []int{1, 2, 3}
		got := slices.Sorted(colset.Of(exp...).Values())
		assert.Equal(t, exp, got)
	})

	s.Test("Push on a nil set allocates it", func(t *testcase.T) {
		var set colset.Set[int]
		set.Push(42)
		_, ok := set.Get(42)
		assert.True(t, ok)
		assert.Equal(t, 1, set.Len())
	})
}

func TestSync(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Context("implements Set", collectivitycontract.Set[string](func(tb testing.TB) *colset.Sync[string] {
		return &colset.Sync[string]{}
	}).Spec)

	s.Test("concurrent pushes of overlapping elements keep one of each", func(t *testcase.T) {
		var (
			set colset.Sync[int]
			wg  sync.WaitGroup
		)
		n := t.Random.IntBetween(8, 64)
		for w := 0; w < 4; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < n; i++ {
					set.Push(i)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, n, set.Len())
		got := slices.Sorted(set.Values())
		for i, v := range got {
			assert.Equal(t, i, v)
		}
	})

	s.Test("Remove reports whether the element was a member", func(t *testcase.T) {
		var set colset.Sync[string]
		v := t.Random.String()
		set.Push(v)

		_, ok := set.Remove(v)
		assert.True(t, ok)
		_, ok = set.Remove(v)
		assert.False(t, ok)
		assert.Equal(t, 0, set.Len())
	})
}
