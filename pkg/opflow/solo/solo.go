package solo

import (
	"context"
	"fmt"

	"github.com/ib-77/opflow/pkg/opflow"
)

func Succeed[T any](input T) opflow.Outcome[T] {
	return opflow.Success(input)
}

func Fail[T any](err opflow.Error) opflow.Outcome[T] {
	return opflow.Failure[T](err)
}

func Map[In, Out any](ctx context.Context,
	input opflow.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out) opflow.Outcome[Out] {

	if input.IsSuccess() {
		return opflow.Success(onSuccess(ctx, input.Result()))
	}
	return opflow.FailureFrom[In, Out](input)
}

func Bind[In, Out any](ctx context.Context,
	input opflow.Outcome[In],
	onSuccess func(ctx context.Context, r In) opflow.Outcome[Out]) opflow.Outcome[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return opflow.FailureFrom[In, Out](input)
}

func MapError[T any](ctx context.Context,
	input opflow.Outcome[T],
	onFailure func(ctx context.Context, err opflow.Error) opflow.Error) opflow.Outcome[T] {

	if input.IsFailure() {
		return opflow.Failure[T](onFailure(ctx, input.Err()))
	}
	return input
}

func BindError[T any](ctx context.Context,
	input opflow.Outcome[T],
	onFailure func(ctx context.Context, err opflow.Error) opflow.Outcome[T]) opflow.Outcome[T] {

	if input.IsFailure() {
		return onFailure(ctx, input.Err())
	}
	return input
}

// TryMap runs onTryExecute on success. A returned error or a panic becomes an
// Unexpected failure.
func TryMap[In, Out any](ctx context.Context, input opflow.Outcome[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) opflow.Outcome[Out] {

	if input.IsSuccess() {
		return opflow.From(func() (Out, error) {
			return onTryExecute(ctx, input.Result())
		})
	}
	return opflow.FailureFrom[In, Out](input)
}

// SelectMany binds and then projects the original and the bound value together.
func SelectMany[T, M, Out any](ctx context.Context, input opflow.Outcome[T],
	bind func(ctx context.Context, r T) opflow.Outcome[M],
	project func(ctx context.Context, r T, m M) Out) opflow.Outcome[Out] {

	return Bind(ctx, input, func(ctx context.Context, r T) opflow.Outcome[Out] {
		return Map(ctx, bind(ctx, r), func(ctx context.Context, m M) Out {
			return project(ctx, r, m)
		})
	})
}

func Recover[T any](ctx context.Context, input opflow.Outcome[T],
	fallback func(ctx context.Context, err opflow.Error) T) opflow.Outcome[T] {

	if input.IsFailure() {
		return opflow.Success(fallback(ctx, input.Err()))
	}
	return input
}

func Match[In, Out any](ctx context.Context, input opflow.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err opflow.Error) Out) Out {

	requireHandlers(onSuccess != nil, onFailure != nil)

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onFailure(ctx, input.Err())
}

// Switch is the side-effecting dual of Match. Both handlers are required.
func Switch[T any](ctx context.Context, input opflow.Outcome[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err opflow.Error)) {

	requireHandlers(onSuccess != nil, onFailure != nil)

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	} else {
		onFailure(ctx, input.Err())
	}
}

// Flatten removes one level of nesting; no case is ever double-wrapped.
func Flatten[T any](input opflow.Outcome[opflow.Outcome[T]]) opflow.Outcome[T] {
	if input.IsSuccess() {
		return input.Result()
	}
	return opflow.FailureFrom[opflow.Outcome[T], T](input)
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
