// Package solo contains the synchronous algebra over opflow.Outcome[T]. Every
// operation takes a context first and hands it to the callbacks it runs.
//
// Highlights:
// - Map/Bind/MapError/BindError: transform either side, short-circuit the other
// - TryMap: run a (value, error) function and capture errors and panics
// - Ensure/Require/EnsureMessage/Where: guard a success with a predicate
// - Validate/ValidateAll: fail-fast or accumulate-all rule evaluation
// - Recover: turn a failure back into a success
// - Tap/TapError/OnSuccess/OnFailure/TapIf/Finally: side effects only
// - Match/Switch/Flatten: leave or collapse the railway
// - WhenAll2/WhenAll3/WhenAll: combine outcomes, first failure wins
//
// Callbacks are never invoked on the non-matching case. Panics raised by
// callbacks propagate to the caller; only TryMap converts them into failures.
package solo
