package either

import (
	"fmt"

	"github.com/ib-77/sumtype/pkg/adt"
)

type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

var _ adt.Value[int] = Either[string, int]{}

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsEmpty reports a Left, so an Either can stand in for an adt.Value.
func (e Either[L, R]) IsEmpty() bool {
	return !e.isRight
}

// Get returns the Right value; on a Left it fails with adt.ErrNoSuchElement.
func (e Either[L, R]) Get() (R, error) {
	if !e.isRight {
		var zero R
		return zero, adt.NoSuchElement("get on Left")
	}
	return e.right, nil
}

// GetLeft returns the Left value; on a Right it fails with adt.ErrNoSuchElement.
func (e Either[L, R]) GetLeft() (L, error) {
	if e.isRight {
		var zero L
		return zero, adt.NoSuchElement("getLeft on Right")
	}
	return e.left, nil
}

func (e Either[L, R]) MustGet() R {
	v, err := e.Get()
	if err != nil {
		panic(err)
	}
	return v
}

func (e Either[L, R]) MustGetLeft() L {
	v, err := e.GetLeft()
	if err != nil {
		panic(err)
	}
	return v
}

func (e Either[L, R]) GetOrElse(other R) R {
	if e.isRight {
		return e.right
	}
	return other
}

func (e Either[L, R]) GetOrElseGet(f func(L) R) R {
	adt.RequireNonNil("other", f)
	if e.isRight {
		return e.right
	}
	return f(e.left)
}

func (e Either[L, R]) OrElse(other Either[L, R]) Either[L, R] {
	if e.isRight {
		return e
	}
	return other
}

func (e Either[L, R]) Swap() Either[R, L] {
	return Either[R, L]{left: e.right, right: e.left, isRight: !e.isRight}
}

// FilterOrElse turns a Right that fails predicate into Left(zero(right)).
func (e Either[L, R]) FilterOrElse(predicate func(R) bool, zero func(R) L) Either[L, R] {
	adt.RequireNonNil("predicate", predicate)
	adt.RequireNonNil("zero", zero)
	if !e.isRight || predicate(e.right) {
		return e
	}
	return Left[L, R](zero(e.right))
}

func (e Either[L, R]) Peek(action func(R)) Either[L, R] {
	adt.RequireNonNil("action", action)
	if e.isRight {
		action(e.right)
	}
	return e
}

func (e Either[L, R]) PeekLeft(action func(L)) Either[L, R] {
	adt.RequireNonNil("action", action)
	if !e.isRight {
		action(e.left)
	}
	return e
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}
