// Package flist provides FList[T], an immutable singly-linked list with
// structural sharing.
//
// The zero FList is the empty list. Prepend shares the receiver as the new
// tail; every other operation that changes the content rebuilds only the
// part of the spine in front of the change. Cells are never mutated, so a
// list can be shared freely between goroutines.
//
// Size is computed by walking the list and every index operation checks
// against it, failing with adt.ErrIndexOutOfBounds.
package flist
