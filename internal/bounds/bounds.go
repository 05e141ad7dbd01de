// Package bounds holds the position checks shared by the sequence adapters.
package bounds

import (
	"fmt"

	"go.llib.dev/collectivity"
)

// Index reports whether index addresses an existing element.
func Index(index, length int) bool {
	return 0 <= index && index < length
}

// Insert reports whether index is a valid insertion point.
// The position equal to length is valid and means append.
func Insert(index, length int) bool {
	return 0 <= index && index <= length
}

// MustIndex panics when index does not address an existing element.
func MustIndex(index, length int) {
	if !Index(index, length) {
		panic(fmt.Sprintf("index out of range [%d] with length %d", index, length))
	}
}

// MustInsert panics when index is not a valid insertion point.
func MustInsert(index, length int) {
	if !Insert(index, length) {
		panic(fmt.Sprintf("insertion index out of range [%d] with length %d", index, length))
	}
}

// ErrInsert returns collectivity.ErrOutOfBounds when index is not a valid insertion point.
func ErrInsert(index, length int) error {
	if Insert(index, length) {
		return nil
	}
	return collectivity.ErrOutOfBounds.F("insertion index %d with length %d", index, length)
}

// ErrIndex returns collectivity.ErrOutOfBounds when index does not address an existing element.
func ErrIndex(index, length int) error {
	if Index(index, length) {
		return nil
	}
	return collectivity.ErrOutOfBounds.F("index %d with length %d", index, length)
}
