// Package future provides Future[T], a value that is computed on its own
// goroutine and awaited later. A future resolves exactly once, either to a
// value or to a fault (a Go error). Panics raised by the computation are
// recovered and become faults.
//
// Key operations:
// - Go: start a computation bound to a context
// - Resolved/Faulted: already-settled futures
// - Await: block until resolution or until the awaiting context is done
//
// The logger attached to the context with zerolog's WithContext receives a
// debug event for every recovered panic.
package future
