package validate

import (
	"github.com/ib-77/sumtype/pkg/adt"
	"github.com/ib-77/sumtype/pkg/adt/either"
	"github.com/ib-77/sumtype/pkg/adt/nel"
)

// Check reports whether in is valid and, if not, why.
type Check[E, T any] func(in T) (valid bool, failure E)

func Validate[E, T any](input T, check Check[E, T]) either.Either[E, T] {
	return AndValidate(either.Right[E](input), check)
}

func AndValidate[E, T any](input either.Either[E, T], check Check[E, T]) either.Either[E, T] {
	adt.RequireNonNil("check", check)

	if v, err := input.Get(); err == nil {
		if valid, failure := check(v); !valid {
			return either.Left[E, T](failure)
		}
	}
	return input
}

// All runs every check against input. With breakOnError the first failure
// stops the run; otherwise all failures are collected in check order.
func All[E, T any](input T, breakOnError bool, checks ...Check[E, T]) either.Either[nel.NonEmptyList[E], T] {
	failures := make([]E, 0)
	for _, check := range checks {
		adt.RequireNonNil("check", check)

		if valid, failure := check(input); !valid {
			failures = append(failures, failure)
			if breakOnError {
				break
			}
		}
	}

	if collected, err := nel.FromSlice(failures); err == nil {
		return either.Left[nel.NonEmptyList[E], T](collected)
	}
	return either.Right[nel.NonEmptyList[E]](input)
}

func Switch[E, In, Out any](input either.Either[E, In],
	onSuccess func(r In) either.Either[E, Out]) either.Either[E, Out] {
	return either.FlatMap(input, onSuccess)
}

func Map[E, In, Out any](input either.Either[E, In], onSuccess func(r In) Out) either.Either[E, Out] {
	return either.Map(input, onSuccess)
}

func DoubleMap[E, In, Out any](input either.Either[E, In],
	onSuccess func(r In) Out,
	onError func(failure E) Out) either.Either[E, Out] {

	adt.RequireNonNil("onSuccess", onSuccess)
	adt.RequireNonNil("onError", onError)
	if failure, err := input.GetLeft(); err == nil {
		onError(failure)
	}
	return either.Map(input, onSuccess)
}

// Try calls a (value, error) function on a Right and turns the error into Left.
func Try[In, Out any](input either.Either[error, In],
	onTryExecute func(r In) (Out, error)) either.Either[error, Out] {

	adt.RequireNonNil("onTryExecute", onTryExecute)
	return either.FlatMap(input, func(in In) either.Either[error, Out] {
		out, err := onTryExecute(in)
		return either.FromResult(out, err)
	})
}

func FailOnError[T any](input either.Either[error, T], maybeErr func(in T) error) either.Either[error, T] {
	adt.RequireNonNil("maybeErr", maybeErr)
	if v, err := input.Get(); err == nil {
		if failure := maybeErr(v); failure != nil {
			return either.Left[error, T](failure)
		}
	}
	return input
}

func Tee[E, T any](input either.Either[E, T], onSuccess func(r T)) either.Either[E, T] {
	return input.Peek(onSuccess)
}

func DoubleTee[E, T any](input either.Either[E, T],
	onSuccess func(r T),
	onError func(failure E)) either.Either[E, T] {

	adt.RequireNonNil("onSuccess", onSuccess)
	adt.RequireNonNil("onError", onError)
	return input.Peek(onSuccess).PeekLeft(onError)
}

func Finally[E, In, Out any](input either.Either[E, In],
	onSuccess func(r In) Out,
	onError func(failure E) Out) Out {
	return either.Fold(input, onError, onSuccess)
}
