// Package adt holds the pieces shared by the algebraic data types under
// pkg/adt: the error conditions every type reports, the null test used by
// option.Of, the Value capability implemented by Option, Either and Try,
// and the Unit placeholder.
//
// Highlights:
// - ErrNoSuchElement/ErrNilArgument/ErrIllegalArgument/ErrIndexOutOfBounds
// - ArgumentError: panic payload for nil functions handed to combinators
// - PanicError: a recovered non-error panic captured by try.Of
// - IsNil/GetErrors: helpers for nil-like values and joined errors
// - Value/Exists/ForAll/GetOrElse/Contains: combinators over any Value[T]
//
// Subpackages:
// - flist: persistent singly-linked list
// - nel: non-empty list backed by flist
// - option, either, try: the sum types
// - lazy: memoized value
// - tuple, fn, validate: collaborators
package adt
