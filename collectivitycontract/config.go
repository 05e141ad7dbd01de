// Package collectivitycontract contains reusable testing suites
// that verify whether an adapter honours the collectivity capabilities.
package collectivitycontract

import (
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
)

type Option[K, V any] interface {
	option.Option[Config[K, V]]
}

// Config lets the contract user supply fixture makers
// for key and value types the random generator cannot make.
type Config[K, V any] struct {
	MakeKey   func(testing.TB) K
	MakeValue func(testing.TB) V
}

var _ Option[string, int] = Config[string, int]{}

func (c Config[K, V]) Configure(o *Config[K, V]) {
	if c.MakeKey != nil {
		o.MakeKey = c.MakeKey
	}
	if c.MakeValue != nil {
		o.MakeValue = c.MakeValue
	}
}

func (c Config[K, V]) makeKey(tb testing.TB) K {
	if c.MakeKey != nil {
		return c.MakeKey(tb)
	}
	return makeRandom[K](tb)
}

func (c Config[K, V]) makeValue(tb testing.TB) V {
	if c.MakeValue != nil {
		return c.MakeValue(tb)
	}
	return makeRandom[V](tb)
}

func makeRandom[T any](tb testing.TB) T {
	t := testcase.ToT(&tb)
	return t.Random.Make(reflectkit.TypeOf[T]()).(T)
}
