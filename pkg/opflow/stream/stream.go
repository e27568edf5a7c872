package stream

import (
	"context"
	"fmt"
	"sync"

	"github.com/ib-77/opflow/pkg/opflow"
	"github.com/ib-77/opflow/pkg/opflow/async"
	"github.com/ib-77/opflow/pkg/opflow/future"
	"github.com/ib-77/opflow/pkg/opflow/solo"
)

const DefaultWorkers = 1

// Run starts lines workers applying engine to every outcome of inputCh. When
// lines is not positive the count comes from Workers(ctx, DefaultWorkers).
// Output order is not preserved across lines. With WithProcessRemaining set,
// the output must be read until it is closed.
func Run[In, Out any](ctx context.Context, inputCh <-chan opflow.Outcome[In],
	engine Engine[In, Out], lines int) <-chan opflow.Outcome[Out] {

	if lines <= 0 {
		lines = Workers(ctx, DefaultWorkers)
	}

	out := make(chan opflow.Outcome[Out])
	wg := &sync.WaitGroup{}

	for line := range lines {
		wg.Add(1)
		go locomotive(ctx, line, inputCh, out, engine, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) (Out, error)) Engine[In, Out] {
	return func(ctx context.Context, input *future.Future[opflow.Outcome[In]]) *future.Future[opflow.Outcome[Out]] {
		return async.Map(ctx, input, mapOnSuccess)
	}
}

func Bind[In, Out any](bindOnSuccess func(ctx context.Context, r In) (opflow.Outcome[Out], error)) Engine[In, Out] {
	return func(ctx context.Context, input *future.Future[opflow.Outcome[In]]) *future.Future[opflow.Outcome[Out]] {
		return async.Bind(ctx, input, bindOnSuccess)
	}
}

func TryMap[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Engine[In, Out] {
	return func(ctx context.Context, input *future.Future[opflow.Outcome[In]]) *future.Future[opflow.Outcome[Out]] {
		return async.TryMap(ctx, input, onTryExecute)
	}
}

// EnsureMessage panics when predicate is nil, before any line runs.
func EnsureMessage[T any](predicate func(ctx context.Context, in T) (bool, error), message string) Engine[T, T] {
	if predicate == nil {
		panic(fmt.Errorf("%w: predicate", opflow.ErrNilCallback))
	}
	return func(ctx context.Context, input *future.Future[opflow.Outcome[T]]) *future.Future[opflow.Outcome[T]] {
		return async.EnsureMessage(ctx, input, predicate, message)
	}
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnFailure func(ctx context.Context, err opflow.Error) Out
}

// Finally folds every outcome of inputCh with handlers, in arrival order.
// With WithProcessRemaining set it keeps folding until inputCh is closed, even
// after ctx is done, so upstream lines can flush their cancelled items.
func Finally[In, Out any](ctx context.Context, inputCh <-chan opflow.Outcome[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	if handlers.OnSuccess == nil || handlers.OnFailure == nil {
		panic(fmt.Errorf("%w: FinallyHandlers", opflow.ErrNilCallback))
	}

	out := make(chan Out)
	drain := ProcessRemaining(ctx, false)

	go func() {
		defer close(out)

		for {
			var (
				in opflow.Outcome[In]
				ok bool
			)
			if drain {
				in, ok = <-inputCh
			} else {
				select {
				case <-ctx.Done():
					return
				case in, ok = <-inputCh:
				}
			}
			if !ok {
				return
			}

			folded := solo.Match(ctx, in, handlers.OnSuccess, handlers.OnFailure)
			if drain {
				out <- folded
				continue
			}
			select {
			case out <- folded:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
