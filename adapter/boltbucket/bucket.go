// Package boltbucket binds a github.com/boltdb/bolt bucket to the collectivity capabilities.
//
// A Bucket is only valid inside the transaction its bolt.Bucket belongs to.
// Values returned by Get point into the memory-mapped database
// and must not be used after the transaction ends or be modified.
package boltbucket

import (
	"encoding/binary"
	"fmt"

	"github.com/boltdb/bolt"

	"go.llib.dev/collectivity"
)

type Bucket struct {
	B *bolt.Bucket
}

var (
	_ collectivity.Get[[]byte, []byte]       = Bucket{}
	_ collectivity.Len                       = Bucket{}
	_ collectivity.TryInsert[[]byte, []byte] = Bucket{}
	_ collectivity.Push[[]byte]              = Bucket{}
	_ collectivity.Remove[[]byte, []byte]    = Bucket{}
)

// Get reports nested bucket keys as absent.
func (b Bucket) Get(key []byte) ([]byte, bool) {
	if len(key) == 0 {
		return nil, false
	}
	val := b.B.Get(key)
	return val, val != nil
}

// Len counts the key/value pairs with a cursor.
// Nested buckets have a nil value and are skipped, the same way Get skips them.
func (b Bucket) Len() int {
	var n int
	c := b.B.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		if v != nil {
			n++
		}
	}
	return n
}

// TryInsert stores val under key.
// Storage errors, like a read-only transaction or an empty key, are wrapped with ErrInsertRejected.
func (b Bucket) TryInsert(key, val []byte) error {
	if val == nil {
		val = []byte{}
	}
	if err := b.B.Put(key, val); err != nil {
		return collectivity.ErrInsertRejected.Wrap(err)
	}
	return nil
}

// Push stores val under the next sequence number of the bucket, encoded as a big-endian uint64.
// It panics when the bucket rejects the write.
func (b Bucket) Push(val []byte) {
	seq, err := b.B.NextSequence()
	if err != nil {
		panic(fmt.Sprintf("boltbucket: next sequence: %v", err))
	}
	if err := b.TryInsert(SequenceKey(seq), val); err != nil {
		panic(fmt.Sprintf("boltbucket: push: %v", err))
	}
}

// Remove returns a copy of the deleted value.
// The memory Get points to is not valid after the delete.
// It panics when the bucket rejects the delete, like in a read-only transaction.
func (b Bucket) Remove(key []byte) ([]byte, bool) {
	val, ok := b.Get(key)
	if !ok {
		return nil, false
	}
	cpy := append([]byte{}, val...)
	if err := b.B.Delete(key); err != nil {
		panic(fmt.Sprintf("boltbucket: remove: %v", err))
	}
	return cpy, true
}

// SequenceKey encodes a bucket sequence number the way Push does.
func SequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
