// Package collectivity contains generic capability interfaces for working with collections.
//
// Each capability is a narrow interface with a single operation,
// so application code can depend on what it needs from a container
// instead of depending on the concrete container type.
// The adapters in the sub packages bind concrete containers to these capabilities
// by delegating to the container's own native operation.
//
// The key and value types are chosen by each adapter.
// Sequences use int positions, associative containers use their own key type.
// An adapter that returns values it owns returns copies,
// while an adapter that exposes the delegate's memory returns pointers or slices into it.
package collectivity

// Get provides access to a value at a given key or position.
type Get[K, V any] interface {
	// Get returns the value stored at key.
	// When the key is missing, or the position is out of range, it returns false.
	// Get never panics and has no side effect.
	Get(key K) (V, bool)
}

// Insert places a value at a given key or position.
//
// Sequence implementations shift the subsequent elements,
// and they panic when the position is outside of the valid range,
// just like the builtin slice operations do.
// Associative implementations create or replace the entry and never panic on any key value.
//
// Use TryInsert when the panic is not acceptable.
type Insert[K, V any] interface {
	Insert(key K, val V)
}

// TryInsert is the non-panicking counterpart of Insert.
// It yields ErrOutOfBounds or ErrUnsupportedContainerType instead of aborting.
type TryInsert[K, V any] interface {
	TryInsert(key K, val V) error
}

type Len interface {
	// Len returns the number of stored elements.
	Len() int
}

// Push appends a value to the logical end of the container.
type Push[V any] interface {
	Push(val V)
}

// Remove deletes the value at a given key or position.
type Remove[K, V any] interface {
	// Remove returns the removed value.
	// When nothing is stored at key, it reports false and leaves the container unchanged.
	Remove(key K) (V, bool)
}

// Contains reports whether the key is present in the collection.
func Contains[K, V any](g Get[K, V], key K) bool {
	_, ok := g.Get(key)
	return ok
}

// PushAll pushes the values one by one in the order they were given.
func PushAll[V any](p Push[V], vs ...V) {
	for _, v := range vs {
		p.Push(v)
	}
}
