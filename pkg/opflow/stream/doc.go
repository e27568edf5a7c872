// Package stream runs many outcomes through async steps with a bounded number
// of workers. It is the fan-out/fan-in layer over package async: a step is an
// async operation applied to one outcome, a worker (locomotive) pulls
// outcomes from an input channel and pushes what the step produced.
//
// Common usage:
// - Of/FromOutcomes: feed values or outcomes into a channel
// - Run: apply an Engine over a channel with a number of lines
// - Map/Bind/TryMap/EnsureMessage: ready-made engines over async
// - Finally: fold every outcome into a plain value
// - Collect: drain a channel into a slice
//
// Worker count and the handling of items left over on cancellation are read
// from the context (WithWorkers, WithProcessRemaining).
package stream
