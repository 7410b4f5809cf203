package try

import (
	"fmt"

	"github.com/ib-77/sumtype/pkg/adt"
)

type Try[T any] struct {
	value     T
	err       error
	isSuccess bool
}

var _ adt.Value[int] = Try[int]{}

// Of runs computation once on the calling goroutine. A returned error or a
// panic yields Failure; a normal return yields Success.
func Of[T any](computation func() (T, error)) (t Try[T]) {
	adt.RequireNonNil("computation", computation)

	defer func() {
		if r := recover(); r != nil {
			t = failure[T](fault(r))
		}
	}()

	v, err := computation()
	if err != nil {
		return failure[T](err)
	}
	return success(v)
}

// OfValue is Of for computations that can only fail by panicking.
func OfValue[T any](computation func() T) Try[T] {
	adt.RequireNonNil("computation", computation)
	return Of(func() (T, error) {
		return computation(), nil
	})
}

func Run(computation func() error) Try[adt.Unit] {
	adt.RequireNonNil("computation", computation)
	return Of(func() (adt.Unit, error) {
		return adt.Unit{}, computation()
	})
}

// fault keeps error panic values as they are and wraps anything else.
func fault(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &adt.PanicError{Value: r}
}

func success[T any](v T) Try[T] {
	return Try[T]{value: v, isSuccess: true}
}

// failure never stores a nil cause; a nil err is replaced by an
// *adt.ArgumentError.
func failure[T any](err error) Try[T] {
	if err == nil {
		err = &adt.ArgumentError{Name: "cause"}
	}
	return Try[T]{err: err, isSuccess: false}
}

// cause also covers the zero Try, a Failure built without failure().
func (t Try[T]) cause() error {
	if t.err == nil {
		return &adt.ArgumentError{Name: "cause"}
	}
	return t.err
}

func (t Try[T]) IsSuccess() bool {
	return t.isSuccess
}

func (t Try[T]) IsFailure() bool {
	return !t.isSuccess
}

func (t Try[T]) IsEmpty() bool {
	return !t.isSuccess
}

// Get returns the value of a Success. On a Failure the error wraps both
// adt.ErrNoSuchElement and the cause.
func (t Try[T]) Get() (T, error) {
	if !t.isSuccess {
		var zero T
		return zero, fmt.Errorf("%w: get on Failure: %w", adt.ErrNoSuchElement, t.cause())
	}
	return t.value, nil
}

// MustGet panics with the cause of a Failure.
func (t Try[T]) MustGet() T {
	if !t.isSuccess {
		panic(t.cause())
	}
	return t.value
}

// Cause returns the error held by a Failure. On a Success it returns a
// second, non-nil error wrapping adt.ErrNoSuchElement.
func (t Try[T]) Cause() (cause error, err error) {
	if t.isSuccess {
		return nil, adt.NoSuchElement("cause of Success")
	}
	return t.cause(), nil
}

func (t Try[T]) GetOrElse(other T) T {
	if t.isSuccess {
		return t.value
	}
	return other
}

func (t Try[T]) GetOrElseGet(supplier func(error) T) T {
	adt.RequireNonNil("supplier", supplier)
	if t.isSuccess {
		return t.value
	}
	return supplier(t.cause())
}

func (t Try[T]) OrElse(other Try[T]) Try[T] {
	if t.isSuccess {
		return t
	}
	return other
}

// Filter turns a Success that fails predicate into a Failure with
// adt.ErrNoSuchElement.
func (t Try[T]) Filter(predicate func(T) bool) Try[T] {
	adt.RequireNonNil("predicate", predicate)
	if !t.isSuccess {
		return t
	}
	return Of(func() (T, error) {
		if !predicate(t.value) {
			var zero T
			return zero, adt.NoSuchElement(fmt.Sprintf("predicate does not hold for %v", t.value))
		}
		return t.value, nil
	})
}

func (t Try[T]) Recover(f func(error) T) Try[T] {
	adt.RequireNonNil("recover", f)
	if t.isSuccess {
		return t
	}
	return OfValue(func() T { return f(t.cause()) })
}

func (t Try[T]) RecoverWith(f func(error) Try[T]) Try[T] {
	adt.RequireNonNil("recover", f)
	if t.isSuccess {
		return t
	}
	return recoverWith(t.cause(), f)
}

func (t Try[T]) OnSuccess(action func(T)) Try[T] {
	adt.RequireNonNil("action", action)
	if t.isSuccess {
		action(t.value)
	}
	return t
}

func (t Try[T]) OnFailure(action func(error)) Try[T] {
	adt.RequireNonNil("action", action)
	if !t.isSuccess {
		action(t.cause())
	}
	return t
}

func (t Try[T]) String() string {
	if t.isSuccess {
		return fmt.Sprintf("Success(%v)", t.value)
	}
	return fmt.Sprintf("Failure(%v)", t.cause())
}

// recoverWith runs f directly; going through OfValue would need a
// Try[Try[T]] inside a Try[T] method.
func recoverWith[T any](cause error, f func(error) Try[T]) (out Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = failure[T](fault(r))
		}
	}()
	return f(cause)
}
