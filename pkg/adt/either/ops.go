package either

import (
	"github.com/ib-77/sumtype/pkg/adt"
	"github.com/ib-77/sumtype/pkg/adt/nel"
	"github.com/ib-77/sumtype/pkg/adt/option"
)

func Map[L, R, U any](e Either[L, R], f func(R) U) Either[L, U] {
	adt.RequireNonNil("mapper", f)
	if !e.isRight {
		return Left[L, U](e.left)
	}
	return Right[L](f(e.right))
}

func MapLeft[L, R, U any](e Either[L, R], f func(L) U) Either[U, R] {
	adt.RequireNonNil("mapper", f)
	if e.isRight {
		return Right[U](e.right)
	}
	return Left[U, R](f(e.left))
}

func Bimap[L, R, L2, R2 any](e Either[L, R], leftFn func(L) L2, rightFn func(R) R2) Either[L2, R2] {
	adt.RequireNonNil("leftMapper", leftFn)
	adt.RequireNonNil("rightMapper", rightFn)
	if e.isRight {
		return Right[L2](rightFn(e.right))
	}
	return Left[L2, R2](leftFn(e.left))
}

func FlatMap[L, R, U any](e Either[L, R], f func(R) Either[L, U]) Either[L, U] {
	adt.RequireNonNil("mapper", f)
	if !e.isRight {
		return Left[L, U](e.left)
	}
	return f(e.right)
}

func Fold[L, R, U any](e Either[L, R], leftFn func(L) U, rightFn func(R) U) U {
	adt.RequireNonNil("leftMapper", leftFn)
	adt.RequireNonNil("rightMapper", rightFn)
	if e.isRight {
		return rightFn(e.right)
	}
	return leftFn(e.left)
}

func ToOption[L, R any](e Either[L, R]) option.Option[R] {
	if !e.isRight {
		return option.None[R]()
	}
	return option.Some(e.right)
}

// FromOption maps Some(v) to Right(v) and None to Left(leftSupplier()).
func FromOption[L, R any](o option.Option[R], leftSupplier func() L) Either[L, R] {
	adt.RequireNonNil("leftSupplier", leftSupplier)
	if v, err := o.Get(); err == nil {
		return Right[L](v)
	}
	return Left[L, R](leftSupplier())
}

// FromResult adapts a (value, error) pair.
func FromResult[R any](v R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](v)
}

// Sequence is the slice form of ZipOrAccumulateN: every Right value in order,
// or every Left value in order.
func Sequence[L, R any](items []Either[L, R]) Either[nel.NonEmptyList[L], []R] {
	lefts := make([]L, 0)
	rights := make([]R, 0, len(items))
	for _, e := range items {
		if e.isRight {
			rights = append(rights, e.right)
		} else {
			lefts = append(lefts, e.left)
		}
	}
	if failures, err := nel.FromSlice(lefts); err == nil {
		return Left[nel.NonEmptyList[L], []R](failures)
	}
	return Right[nel.NonEmptyList[L]](rights)
}

// Traverse applies f to every item and sequences the results.
func Traverse[L, T, R any](items []T, f func(T) Either[L, R]) Either[nel.NonEmptyList[L], []R] {
	adt.RequireNonNil("mapper", f)
	results := make([]Either[L, R], len(items))
	for i, item := range items {
		results[i] = f(item)
	}
	return Sequence(results)
}

func Equal[L, R comparable](a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return a.right == b.right
	}
	return a.left == b.left
}
