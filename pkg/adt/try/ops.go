package try

import (
	"github.com/ib-77/sumtype/pkg/adt"
	"github.com/ib-77/sumtype/pkg/adt/either"
	"github.com/ib-77/sumtype/pkg/adt/option"
)

// Map applies f to a Success. A panic in f becomes a Failure.
func Map[T, U any](t Try[T], f func(T) U) Try[U] {
	adt.RequireNonNil("mapper", f)
	if !t.isSuccess {
		return failure[U](t.cause())
	}
	return OfValue(func() U { return f(t.value) })
}

// MapTry is Map for mappers that return an error.
func MapTry[T, U any](t Try[T], f func(T) (U, error)) Try[U] {
	adt.RequireNonNil("mapper", f)
	if !t.isSuccess {
		return failure[U](t.cause())
	}
	return Of(func() (U, error) { return f(t.value) })
}

func FlatMap[T, U any](t Try[T], f func(T) Try[U]) Try[U] {
	adt.RequireNonNil("mapper", f)
	if !t.isSuccess {
		return failure[U](t.cause())
	}
	return flatten(OfValue(func() Try[U] { return f(t.value) }))
}

func flatten[T any](t Try[Try[T]]) Try[T] {
	if !t.isSuccess {
		return failure[T](t.cause())
	}
	return t.value
}

func Fold[T, U any](t Try[T], onFailure func(error) U, onSuccess func(T) U) U {
	adt.RequireNonNil("onFailure", onFailure)
	adt.RequireNonNil("onSuccess", onSuccess)
	if t.isSuccess {
		return onSuccess(t.value)
	}
	return onFailure(t.cause())
}

// ToEither maps Failure to Left(cause) and Success to Right(value).
func ToEither[T any](t Try[T]) either.Either[error, T] {
	if t.isSuccess {
		return either.Right[error](t.value)
	}
	return either.Left[error, T](t.cause())
}

// FromEither is the inverse of ToEither.
func FromEither[T any](e either.Either[error, T]) Try[T] {
	return either.Fold(e, failure[T], success[T])
}

func ToOption[T any](t Try[T]) option.Option[T] {
	if !t.isSuccess {
		return option.None[T]()
	}
	return option.Some(t.value)
}
