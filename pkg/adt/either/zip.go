package either

import (
	"github.com/ib-77/sumtype/pkg/adt"
	"github.com/ib-77/sumtype/pkg/adt/nel"
)

// slot is the arity-independent view of one input: its Left payload, if any.
type slot[L any] struct {
	left   L
	failed bool
}

func (e Either[L, R]) asSlot() slot[L] {
	return slot[L]{left: e.left, failed: !e.isRight}
}

// collect returns the Left payloads of all slots in input order, or false
// when every slot is a Right.
func collect[L any](slots ...slot[L]) (nel.NonEmptyList[L], bool) {
	lefts := make([]L, 0, len(slots))
	for _, s := range slots {
		if s.failed {
			lefts = append(lefts, s.left)
		}
	}
	failures, err := nel.FromSlice(lefts)
	return failures, err == nil
}

// pad fills the slots a lower arity does not use.
func pad[L any]() Either[L, adt.Unit] {
	return Right[L](adt.Unit{})
}

// ZipOrAccumulate10 inspects all ten inputs. If every one is Right, f is
// applied to their values in order and the result returned as Right.
// Otherwise the Left payload of every failing input, in input order, is
// returned as Left. Inputs are never skipped after a failure.
func ZipOrAccumulate10[L, A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, R any](
	e1 Either[L, A1], e2 Either[L, A2], e3 Either[L, A3], e4 Either[L, A4], e5 Either[L, A5],
	e6 Either[L, A6], e7 Either[L, A7], e8 Either[L, A8], e9 Either[L, A9], e10 Either[L, A10],
	f func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10) R) Either[nel.NonEmptyList[L], R] {

	adt.RequireNonNil("transform", f)

	failures, failed := collect(e1.asSlot(), e2.asSlot(), e3.asSlot(), e4.asSlot(), e5.asSlot(),
		e6.asSlot(), e7.asSlot(), e8.asSlot(), e9.asSlot(), e10.asSlot())
	if failed {
		return Left[nel.NonEmptyList[L], R](failures)
	}

	return Right[nel.NonEmptyList[L]](f(e1.right, e2.right, e3.right, e4.right, e5.right,
		e6.right, e7.right, e8.right, e9.right, e10.right))
}

func ZipOrAccumulate2[L, A1, A2, R any](
	e1 Either[L, A1], e2 Either[L, A2],
	f func(A1, A2) R) Either[nel.NonEmptyList[L], R] {

	adt.RequireNonNil("transform", f)
	u := pad[L]()
	return ZipOrAccumulate10(e1, e2, u, u, u, u, u, u, u, u,
		func(a1 A1, a2 A2, _, _, _, _, _, _, _, _ adt.Unit) R {
			return f(a1, a2)
		})
}

func ZipOrAccumulate3[L, A1, A2, A3, R any](
	e1 Either[L, A1], e2 Either[L, A2], e3 Either[L, A3],
	f func(A1, A2, A3) R) Either[nel.NonEmptyList[L], R] {

	adt.RequireNonNil("transform", f)
	u := pad[L]()
	return ZipOrAccumulate10(e1, e2, e3, u, u, u, u, u, u, u,
		func(a1 A1, a2 A2, a3 A3, _, _, _, _, _, _, _ adt.Unit) R {
			return f(a1, a2, a3)
		})
}

func ZipOrAccumulate4[L, A1, A2, A3, A4, R any](
	e1 Either[L, A1], e2 Either[L, A2], e3 Either[L, A3], e4 Either[L, A4],
	f func(A1, A2, A3, A4) R) Either[nel.NonEmptyList[L], R] {

	adt.RequireNonNil("transform", f)
	u := pad[L]()
	return ZipOrAccumulate10(e1, e2, e3, e4, u, u, u, u, u, u,
		func(a1 A1, a2 A2, a3 A3, a4 A4, _, _, _, _, _, _ adt.Unit) R {
			return f(a1, a2, a3, a4)
		})
}

func ZipOrAccumulate5[L, A1, A2, A3, A4, A5, R any](
	e1 Either[L, A1], e2 Either[L, A2], e3 Either[L, A3], e4 Either[L, A4], e5 Either[L, A5],
	f func(A1, A2, A3, A4, A5) R) Either[nel.NonEmptyList[L], R] {

	adt.RequireNonNil("transform", f)
	u := pad[L]()
	return ZipOrAccumulate10(e1, e2, e3, e4, e5, u, u, u, u, u,
		func(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, _, _, _, _, _ adt.Unit) R {
			return f(a1, a2, a3, a4, a5)
		})
}

func ZipOrAccumulate6[L, A1, A2, A3, A4, A5, A6, R any](
	e1 Either[L, A1], e2 Either[L, A2], e3 Either[L, A3], e4 Either[L, A4], e5 Either[L, A5], e6 Either[L, A6],
	f func(A1, A2, A3, A4, A5, A6) R) Either[nel.NonEmptyList[L], R] {

	adt.RequireNonNil("transform", f)
	u := pad[L]()
	return ZipOrAccumulate10(e1, e2, e3, e4, e5, e6, u, u, u, u,
		func(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, _, _, _, _ adt.Unit) R {
			return f(a1, a2, a3, a4, a5, a6)
		})
}

func ZipOrAccumulate7[L, A1, A2, A3, A4, A5, A6, A7, R any](
	e1 Either[L, A1], e2 Either[L, A2], e3 Either[L, A3], e4 Either[L, A4], e5 Either[L, A5], e6 Either[L, A6], e7 Either[L, A7],
	f func(A1, A2, A3, A4, A5, A6, A7) R) Either[nel.NonEmptyList[L], R] {

	adt.RequireNonNil("transform", f)
	u := pad[L]()
	return ZipOrAccumulate10(e1, e2, e3, e4, e5, e6, e7, u, u, u,
		func(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, _, _, _ adt.Unit) R {
			return f(a1, a2, a3, a4, a5, a6, a7)
		})
}

func ZipOrAccumulate8[L, A1, A2, A3, A4, A5, A6, A7, A8, R any](
	e1 Either[L, A1], e2 Either[L, A2], e3 Either[L, A3], e4 Either[L, A4], e5 Either[L, A5], e6 Either[L, A6], e7 Either[L, A7], e8 Either[L, A8],
	f func(A1, A2, A3, A4, A5, A6, A7, A8) R) Either[nel.NonEmptyList[L], R] {

	adt.RequireNonNil("transform", f)
	u := pad[L]()
	return ZipOrAccumulate10(e1, e2, e3, e4, e5, e6, e7, e8, u, u,
		func(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, _, _ adt.Unit) R {
			return f(a1, a2, a3, a4, a5, a6, a7, a8)
		})
}

func ZipOrAccumulate9[L, A1, A2, A3, A4, A5, A6, A7, A8, A9, R any](
	e1 Either[L, A1], e2 Either[L, A2], e3 Either[L, A3], e4 Either[L, A4], e5 Either[L, A5], e6 Either[L, A6], e7 Either[L, A7], e8 Either[L, A8], e9 Either[L, A9],
	f func(A1, A2, A3, A4, A5, A6, A7, A8, A9) R) Either[nel.NonEmptyList[L], R] {

	adt.RequireNonNil("transform", f)
	u := pad[L]()
	return ZipOrAccumulate10(e1, e2, e3, e4, e5, e6, e7, e8, e9, u,
		func(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9, _ adt.Unit) R {
			return f(a1, a2, a3, a4, a5, a6, a7, a8, a9)
		})
}
