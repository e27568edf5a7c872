// Package chain provides a fluent wrapper around opflow.Outcome[T] for
// building synchronous pipelines on top of the solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from an Outcome[T] or a value
// - Then/ThenTry/Map: transform without leaving the value type
// - Ensure/Require/EnsureMessage/Validate/ValidateAll: guard the value
// - Recover/MapError/BindError: work on the failure side
// - Tap/TapError/Finally: side effects
// - While/RepeatWhile: loop a step while a condition holds
// - Or/And: combine chains
// - MapTo/BindTo/Match: change the value type or leave the chain
package chain
