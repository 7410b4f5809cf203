// Package either provides Either[L, R], a value that is Left (by convention
// the failure) or Right (the success).
//
// Map, FlatMap and the other combinators are right-biased and
// short-circuit: a Left passes through untouched. The ZipOrAccumulateN
// family is the exception. It inspects every input and, when any of them is
// Left, returns all Left payloads in input order as a nel.NonEmptyList:
//
//	user := either.ZipOrAccumulate3(name, email, age,
//		func(n string, e string, a int) User { return User{n, e, a} })
//
// Arity 10 does the work; the lower arities pad the unused slots with a
// Right(adt.Unit{}) and delegate to it.
package either
