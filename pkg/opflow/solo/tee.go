package solo

import (
	"context"

	"github.com/ib-77/opflow/pkg/opflow"
)

func Tap[T any](ctx context.Context,
	input opflow.Outcome[T],
	onSuccess func(ctx context.Context, r T)) opflow.Outcome[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}
	return input
}

func TapError[T any](ctx context.Context,
	input opflow.Outcome[T],
	onFailure func(ctx context.Context, err opflow.Error)) opflow.Outcome[T] {

	if input.IsFailure() {
		onFailure(ctx, input.Err())
	}
	return input
}

func OnSuccess[T any](ctx context.Context, input opflow.Outcome[T],
	action func(ctx context.Context, r T)) opflow.Outcome[T] {
	return Tap(ctx, input, action)
}

func OnFailure[T any](ctx context.Context, input opflow.Outcome[T],
	action func(ctx context.Context, err opflow.Error)) opflow.Outcome[T] {
	return TapError(ctx, input, action)
}

func TapIf[T any](ctx context.Context,
	input opflow.Outcome[T],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) opflow.Outcome[T] {

	if input.IsSuccess() {
		if condition(ctx, input.Result()) {
			onSuccessAndCondition(ctx, input.Result())
		}
	}
	return input
}

// Finally runs action on either case and returns input unchanged.
func Finally[T any](ctx context.Context, input opflow.Outcome[T],
	action func(ctx context.Context)) opflow.Outcome[T] {

	action(ctx)
	return input
}
