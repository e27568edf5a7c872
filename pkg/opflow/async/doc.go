// Package async lifts the opflow algebra over futures. Every operation takes
// a *future.Future of an Outcome and returns a new future that awaits it
// before running the callback of the matching case. Callbacks are blocking
// functions executed on that goroutine.
//
// A callback that returns an error or panics faults the returned future, and
// so does the awaiting context being done. Faults travel down the chain; only
// the From/Try family converts them into Unexpected failures.
//
// Highlights:
// - From/Try/FromFuture/TryFuture/Lift: enter the railway
// - Map/Bind/MapError/BindError/TryMap/SelectMany: transform
// - Ensure/Require/EnsureMessage/Where/Validate/ValidateAll: guard
// - Recover/RecoverFuture: fall back to a value
// - Tap/TapError/OnSuccess/OnFailure/Finally: side effects
// - Match/Switch/Flatten/TryGet/TryGetError: leave the railway
// - WhenAll2/WhenAll3/WhenAll: await concurrently, first positional failure wins
package async
