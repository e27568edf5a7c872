package async

import (
	"context"

	"github.com/ib-77/opflow/pkg/opflow"
	"github.com/ib-77/opflow/pkg/opflow/future"
	"github.com/ib-77/opflow/pkg/opflow/solo"
)

// Members of the WhenAll family are already running; every one of them is
// awaited before anything is reported. A fault wins over a failure, and among
// faults or failures the earliest position wins, whatever order they settled in.

func WhenAll2[A, B any](ctx context.Context,
	a *future.Future[opflow.Outcome[A]],
	b *future.Future[opflow.Outcome[B]]) *future.Future[opflow.Outcome[opflow.Pair[A, B]]] {

	return future.Go(ctx, func(ctx context.Context) (opflow.Outcome[opflow.Pair[A, B]], error) {
		oa, errA := a.Await(ctx)
		ob, errB := b.Await(ctx)
		if err := firstFault(errA, errB); err != nil {
			return opflow.Outcome[opflow.Pair[A, B]]{}, err
		}
		return solo.WhenAll2(oa, ob), nil
	})
}

func WhenAll3[A, B, C any](ctx context.Context,
	a *future.Future[opflow.Outcome[A]],
	b *future.Future[opflow.Outcome[B]],
	c *future.Future[opflow.Outcome[C]]) *future.Future[opflow.Outcome[opflow.Triple[A, B, C]]] {

	return future.Go(ctx, func(ctx context.Context) (opflow.Outcome[opflow.Triple[A, B, C]], error) {
		oa, errA := a.Await(ctx)
		ob, errB := b.Await(ctx)
		oc, errC := c.Await(ctx)
		if err := firstFault(errA, errB, errC); err != nil {
			return opflow.Outcome[opflow.Triple[A, B, C]]{}, err
		}
		return solo.WhenAll3(oa, ob, oc), nil
	})
}

func WhenAll[T any](ctx context.Context,
	inputs ...*future.Future[opflow.Outcome[T]]) *future.Future[opflow.Outcome[[]T]] {

	return future.Go(ctx, func(ctx context.Context) (opflow.Outcome[[]T], error) {
		outcomes := make([]opflow.Outcome[T], len(inputs))
		faults := make([]error, len(inputs))
		for i, in := range inputs {
			outcomes[i], faults[i] = in.Await(ctx)
		}
		if err := firstFault(faults...); err != nil {
			return opflow.Outcome[[]T]{}, err
		}
		return solo.WhenAll(outcomes...), nil
	})
}

func firstFault(faults ...error) error {
	for _, err := range faults {
		if err != nil {
			return err
		}
	}
	return nil
}
