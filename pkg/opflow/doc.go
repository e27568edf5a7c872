// Package opflow defines Outcome[T], the result of a computation that is
// either a success carrying a value or a failure carrying an Error, and the
// closed Error taxonomy used on the failure side.
//
// Highlights:
// - Validation/NotFound/Unauthorized/Unexpected: the four Error cases
// - Success/Failure/FailureFrom: construct Outcome[T]
// - From/Try: run a producer and capture returned errors and panics
// - FromNullable/FromNilable: guard against nil input
// - MatchError/SwitchError: exhaustive folds over the taxonomy
// - Restore: rebuild an Error from its introspected parts
//
// The algebra over Outcome lives in package solo (synchronous) and package
// async (over futures).
package opflow
