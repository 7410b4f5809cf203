// Package fn holds small function combinators used alongside the sum types:
// composition, currying, and lifting plain or failable functions into
// Option and Try.
package fn

import (
	"github.com/ib-77/sumtype/pkg/adt"
	"github.com/ib-77/sumtype/pkg/adt/lazy"
	"github.com/ib-77/sumtype/pkg/adt/option"
	"github.com/ib-77/sumtype/pkg/adt/try"
)

func Identity[T any](v T) T {
	return v
}

func Constant[A, T any](v T) func(A) T {
	return func(A) T { return v }
}

// AndThen is left to right composition: AndThen(f, g)(x) == g(f(x)).
func AndThen[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	adt.RequireNonNil("f", f)
	adt.RequireNonNil("g", g)
	return func(a A) C { return g(f(a)) }
}

// Compose is right to left composition: Compose(g, f)(x) == g(f(x)).
func Compose[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return AndThen(f, g)
}

func Curried2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	adt.RequireNonNil("f", f)
	return func(a A) func(B) R {
		return func(b B) R { return f(a, b) }
	}
}

func Curried3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	adt.RequireNonNil("f", f)
	return func(a A) func(B) func(C) R {
		return Curried2(func(b B, c C) R { return f(a, b, c) })
	}
}

func Uncurried2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	adt.RequireNonNil("f", f)
	return func(a A, b B) R { return f(a)(b) }
}

// Lift turns f into a function that returns None instead of panicking.
func Lift[A, R any](f func(A) R) func(A) option.Option[R] {
	adt.RequireNonNil("f", f)
	return func(a A) option.Option[R] {
		return try.ToOption(try.OfValue(func() R { return f(a) }))
	}
}

// Liftable turns a failable f into a function returning Try.
func Liftable[A, R any](f func(A) (R, error)) func(A) try.Try[R] {
	adt.RequireNonNil("f", f)
	return func(a A) try.Try[R] {
		return try.Of(func() (R, error) { return f(a) })
	}
}

// Memoized returns a supplier that calls f at most once.
func Memoized[R any](f func() R) func() R {
	return lazy.New(f).Get
}
