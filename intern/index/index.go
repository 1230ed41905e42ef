// Package index defines the ordered-index contract the interning table
// builds on, and provides a concrete in-memory B-tree implementation.
package index

// Index is a unique-key ordered index mapping a key value to an arena slot.
// Implementations must support Put (with duplicate rejection), Get, Delete,
// and in-order ascending traversal.
type Index interface {
	// Put inserts a key→slot mapping. Returns false if the key already exists.
	Put(key any, slot int64) bool
	// Get looks up a key and returns its slot. Returns false if not found.
	Get(key any) (int64, bool)
	// Delete removes a key. Returns false if the key was not found.
	Delete(key any) bool
	// Ascend visits every entry in ascending key order. The visit function
	// must not mutate the index; the traversal always runs to completion.
	Ascend(fn func(key any, slot int64))
	// Len returns the number of entries in the index.
	Len() int
}
