// Package option provides Option[T], a value that is either present (Some)
// or absent (None).
//
// Of treats nil-like values as absent; Some never does, so Some(nil) is a
// present option holding nil and is not equal to None. The zero Option is
// None and is shared by every caller.
//
// Combinators that change the element type are package functions (Map,
// FlatMap, Fold, Zip); the rest are methods. Every combinator panics with an
// *adt.ArgumentError on a nil function before doing any work.
package option
