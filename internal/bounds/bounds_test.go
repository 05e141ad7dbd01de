package bounds_test

import (
	"errors"
	"testing"

	"go.llib.dev/collectivity"
	"go.llib.dev/collectivity/internal/bounds"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestIndex(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("positions inside the length are valid", func(t *testcase.T) {
		length := t.Random.IntBetween(1, 42)
		assert.True(t, bounds.Index(0, length))
		assert.True(t, bounds.Index(length-1, length))
		assert.True(t, bounds.Index(t.Random.IntN(length), length))
		assert.NoError(t, bounds.ErrIndex(length-1, length))
		assert.NotPanic(t, func() { bounds.MustIndex(length-1, length) })
	})

	s.Test("length itself is not an existing element", func(t *testcase.T) {
		length := t.Random.IntBetween(0, 42)
		assert.False(t, bounds.Index(length, length))
		assert.True(t, errors.Is(bounds.ErrIndex(length, length), collectivity.ErrOutOfBounds))
		assert.Panic(t, func() { bounds.MustIndex(length, length) })
	})

	s.Test("negative positions are invalid", func(t *testcase.T) {
		assert.False(t, bounds.Index(-1*t.Random.IntBetween(1, 42), 42))
	})
}

func TestInsert(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("length is a valid insertion point", func(t *testcase.T) {
		length := t.Random.IntBetween(0, 42)
		assert.True(t, bounds.Insert(length, length))
		assert.True(t, bounds.Insert(0, length))
		assert.NoError(t, bounds.ErrInsert(length, length))
		assert.NotPanic(t, func() { bounds.MustInsert(length, length) })
	})

	s.Test("positions beyond the length are invalid", func(t *testcase.T) {
		length := t.Random.IntBetween(0, 42)
		index := length + t.Random.IntBetween(1, 42)
		assert.False(t, bounds.Insert(index, length))
		assert.True(t, errors.Is(bounds.ErrInsert(index, length), collectivity.ErrOutOfBounds))
		assert.Panic(t, func() { bounds.MustInsert(index, length) })
	})

	s.Test("negative positions are invalid", func(t *testcase.T) {
		assert.False(t, bounds.Insert(-1, 0))
		assert.Panic(t, func() { bounds.MustInsert(-1, 0) })
	})
}
