package stream

import (
	"context"

	"github.com/ib-77/opflow/pkg/opflow"
)

// Of sends every value as a success and closes the channel. Sending stops
// when ctx is done.
func Of[T any](ctx context.Context, values ...T) <-chan opflow.Outcome[T] {
	outcomes := make([]opflow.Outcome[T], 0, len(values))
	for _, v := range values {
		outcomes = append(outcomes, opflow.Success(v))
	}
	return FromOutcomes(ctx, outcomes...)
}

func FromOutcomes[T any](ctx context.Context, outcomes ...opflow.Outcome[T]) <-chan opflow.Outcome[T] {
	in := make(chan opflow.Outcome[T])

	go func() {
		defer close(in)

		for _, o := range outcomes {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- o:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect drains out until it is closed or ctx is done. With
// WithProcessRemaining set it reads until out is closed, whatever ctx says.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	if ProcessRemaining(ctx, false) {
		for v := range out {
			res = append(res, v)
		}
		return res
	}
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
