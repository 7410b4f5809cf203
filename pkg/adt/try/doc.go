// Package try provides Try[T], the outcome of a computation that may fail:
// Success holding a value or Failure holding the error it raised.
//
// Highlights:
// - Of/OfValue/Run: run a computation once, now, capturing a returned error
//   or a panic as Failure; nothing is re-panicked
// - Map/FlatMap: transform a Success, short-circuit a Failure
// - Recover/RecoverWith/OrElse: turn a Failure back into a Success
// - OnSuccess/OnFailure: side effects without changing the result
// - Fold/ToEither/FromEither/ToOption: leave the Try world
//
// A Try is never built from a plain value directly; Success and Failure are
// the results of Of and friends, or of FromEither.
package try
