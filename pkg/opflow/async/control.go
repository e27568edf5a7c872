package async

import (
	"context"
	"fmt"

	"github.com/ib-77/opflow/pkg/opflow"
	"github.com/ib-77/opflow/pkg/opflow/future"
)

// Match folds the outcome into a value. Missing handlers panic at call time.
func Match[In, Out any](ctx context.Context, input *future.Future[opflow.Outcome[In]],
	onSuccess func(ctx context.Context, r In) (Out, error),
	onFailure func(ctx context.Context, err opflow.Error) (Out, error)) *future.Future[Out] {

	requireHandlers(onSuccess != nil, onFailure != nil)

	return future.Go(ctx, func(ctx context.Context) (Out, error) {
		in, err := input.Await(ctx)
		if err != nil {
			var zero Out
			return zero, err
		}
		if in.IsSuccess() {
			return onSuccess(ctx, in.Result())
		}
		return onFailure(ctx, in.Err())
	})
}

// Switch is the side-effecting dual of Match. The returned future settles once
// the invoked handler has returned.
func Switch[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	onSuccess func(ctx context.Context, r T) error,
	onFailure func(ctx context.Context, err opflow.Error) error) *future.Future[struct{}] {

	requireHandlers(onSuccess != nil, onFailure != nil)

	return Match(ctx, input,
		func(ctx context.Context, r T) (struct{}, error) {
			return struct{}{}, onSuccess(ctx, r)
		},
		func(ctx context.Context, err opflow.Error) (struct{}, error) {
			return struct{}{}, onFailure(ctx, err)
		})
}

func Flatten[T any](ctx context.Context,
	input *future.Future[opflow.Outcome[opflow.Outcome[T]]]) *future.Future[opflow.Outcome[T]] {

	return then(ctx, input, func(_ context.Context, in opflow.Outcome[opflow.Outcome[T]]) (opflow.Outcome[T], error) {
		if in.IsSuccess() {
			return in.Result(), nil
		}
		return opflow.FailureFrom[opflow.Outcome[T], T](in), nil
	})
}

// TryGet awaits input and extracts its value.
func TryGet[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]]) (T, bool, error) {
	in, err := input.Await(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}
	v, ok := in.TryGet()
	return v, ok, nil
}

// TryGetError awaits input and extracts its error.
func TryGetError[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]]) (opflow.Error, bool, error) {
	in, err := input.Await(ctx)
	if err != nil {
		return nil, false, err
	}
	e, ok := in.TryGetError()
	return e, ok, nil
}

func requireHandlers(onSuccess, onFailure bool) {
	requireCallback(onSuccess, "onSuccess")
	requireCallback(onFailure, "onFailure")
}

func requireCallback(present bool, name string) {
	if !present {
		panic(fmt.Errorf("%w: %s", opflow.ErrNilCallback, name))
	}
}
