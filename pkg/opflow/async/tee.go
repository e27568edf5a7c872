package async

import (
	"context"

	"github.com/ib-77/opflow/pkg/opflow"
	"github.com/ib-77/opflow/pkg/opflow/future"
)

func Tap[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	onSuccess func(ctx context.Context, r T) error) *future.Future[opflow.Outcome[T]] {

	return then(ctx, input, func(ctx context.Context, in opflow.Outcome[T]) (opflow.Outcome[T], error) {
		if in.IsSuccess() {
			if err := onSuccess(ctx, in.Result()); err != nil {
				return opflow.Outcome[T]{}, err
			}
		}
		return in, nil
	})
}

func TapError[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	onFailure func(ctx context.Context, err opflow.Error) error) *future.Future[opflow.Outcome[T]] {

	return then(ctx, input, func(ctx context.Context, in opflow.Outcome[T]) (opflow.Outcome[T], error) {
		if in.IsFailure() {
			if err := onFailure(ctx, in.Err()); err != nil {
				return opflow.Outcome[T]{}, err
			}
		}
		return in, nil
	})
}

func OnSuccess[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	action func(ctx context.Context, r T) error) *future.Future[opflow.Outcome[T]] {
	return Tap(ctx, input, action)
}

func OnFailure[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	action func(ctx context.Context, err opflow.Error) error) *future.Future[opflow.Outcome[T]] {
	return TapError(ctx, input, action)
}

// Finally runs action once input has settled as an outcome, whatever its case.
func Finally[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	action func(ctx context.Context) error) *future.Future[opflow.Outcome[T]] {

	return then(ctx, input, func(ctx context.Context, in opflow.Outcome[T]) (opflow.Outcome[T], error) {
		if err := action(ctx); err != nil {
			return opflow.Outcome[T]{}, err
		}
		return in, nil
	})
}
