// Package validate contains single-value, synchronous validation steps that
// operate on either.Either[E, T]. They are the building blocks for
// error-aware pipelines where Left carries the failure.
//
// Highlights:
// - Validate/AndValidate: apply a check, producing Left on invalid input
// - All: run many checks on one value, stopping at the first failure or
//   accumulating every failure
// - Switch/Map/Try/FailOnError: move a Right along the pipeline
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package validate
