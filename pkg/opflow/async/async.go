package async

import (
	"context"

	"github.com/ib-77/opflow/pkg/opflow"
	"github.com/ib-77/opflow/pkg/opflow/future"
)

// Lift wraps an already computed outcome.
func Lift[T any](o opflow.Outcome[T]) *future.Future[opflow.Outcome[T]] {
	return future.Resolved(o)
}

// FromFuture awaits pending and wraps its value. A fault, including the
// awaiting context being done, becomes Unexpected(fault.Error(), fault).
func FromFuture[T any](ctx context.Context, pending *future.Future[T]) *future.Future[opflow.Outcome[T]] {
	return future.Go(context.WithoutCancel(ctx), func(context.Context) (opflow.Outcome[T], error) {
		v, err := pending.Await(ctx)
		if err != nil {
			return opflow.FromErr[T](err), nil
		}
		return opflow.Success(v), nil
	})
}

// From runs producer on its own goroutine with the same capturing contract
// as FromFuture.
func From[T any](ctx context.Context, producer func(ctx context.Context) (T, error)) *future.Future[opflow.Outcome[T]] {
	return FromFuture(ctx, future.Go(ctx, producer))
}

func Try[T any](ctx context.Context, producer func(ctx context.Context) (T, error)) *future.Future[opflow.Outcome[T]] {
	return From(ctx, producer)
}

func TryFuture[T any](ctx context.Context, pending *future.Future[T]) *future.Future[opflow.Outcome[T]] {
	return FromFuture(ctx, pending)
}

// then awaits input and hands the settled outcome to step on a new future.
func then[In, Out any](ctx context.Context, input *future.Future[opflow.Outcome[In]],
	step func(ctx context.Context, in opflow.Outcome[In]) (opflow.Outcome[Out], error)) *future.Future[opflow.Outcome[Out]] {

	return future.Go(ctx, func(ctx context.Context) (opflow.Outcome[Out], error) {
		in, err := input.Await(ctx)
		if err != nil {
			return opflow.Outcome[Out]{}, err
		}
		return step(ctx, in)
	})
}

func Map[In, Out any](ctx context.Context, input *future.Future[opflow.Outcome[In]],
	onSuccess func(ctx context.Context, r In) (Out, error)) *future.Future[opflow.Outcome[Out]] {

	return then(ctx, input, func(ctx context.Context, in opflow.Outcome[In]) (opflow.Outcome[Out], error) {
		if in.IsFailure() {
			return opflow.FailureFrom[In, Out](in), nil
		}
		out, err := onSuccess(ctx, in.Result())
		if err != nil {
			return opflow.Outcome[Out]{}, err
		}
		return opflow.Success(out), nil
	})
}

func Bind[In, Out any](ctx context.Context, input *future.Future[opflow.Outcome[In]],
	onSuccess func(ctx context.Context, r In) (opflow.Outcome[Out], error)) *future.Future[opflow.Outcome[Out]] {

	return then(ctx, input, func(ctx context.Context, in opflow.Outcome[In]) (opflow.Outcome[Out], error) {
		if in.IsFailure() {
			return opflow.FailureFrom[In, Out](in), nil
		}
		return onSuccess(ctx, in.Result())
	})
}

func MapError[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	onFailure func(ctx context.Context, err opflow.Error) (opflow.Error, error)) *future.Future[opflow.Outcome[T]] {

	return then(ctx, input, func(ctx context.Context, in opflow.Outcome[T]) (opflow.Outcome[T], error) {
		if in.IsSuccess() {
			return in, nil
		}
		mapped, err := onFailure(ctx, in.Err())
		if err != nil {
			return opflow.Outcome[T]{}, err
		}
		return opflow.Failure[T](mapped), nil
	})
}

func BindError[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	onFailure func(ctx context.Context, err opflow.Error) (opflow.Outcome[T], error)) *future.Future[opflow.Outcome[T]] {

	return then(ctx, input, func(ctx context.Context, in opflow.Outcome[T]) (opflow.Outcome[T], error) {
		if in.IsSuccess() {
			return in, nil
		}
		return onFailure(ctx, in.Err())
	})
}

// TryMap runs onTryExecute on success and converts its error or panic into an
// Unexpected failure. A fault of input still propagates.
func TryMap[In, Out any](ctx context.Context, input *future.Future[opflow.Outcome[In]],
	onTryExecute func(ctx context.Context, r In) (Out, error)) *future.Future[opflow.Outcome[Out]] {

	return then(ctx, input, func(ctx context.Context, in opflow.Outcome[In]) (opflow.Outcome[Out], error) {
		if in.IsFailure() {
			return opflow.FailureFrom[In, Out](in), nil
		}
		return opflow.From(func() (Out, error) {
			return onTryExecute(ctx, in.Result())
		}), nil
	})
}

func SelectMany[T, M, Out any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	bind func(ctx context.Context, r T) (opflow.Outcome[M], error),
	project func(ctx context.Context, r T, m M) Out) *future.Future[opflow.Outcome[Out]] {

	return then(ctx, input, func(ctx context.Context, in opflow.Outcome[T]) (opflow.Outcome[Out], error) {
		if in.IsFailure() {
			return opflow.FailureFrom[T, Out](in), nil
		}
		bound, err := bind(ctx, in.Result())
		if err != nil {
			return opflow.Outcome[Out]{}, err
		}
		if bound.IsFailure() {
			return opflow.FailureFrom[M, Out](bound), nil
		}
		return opflow.Success(project(ctx, in.Result(), bound.Result())), nil
	})
}

func Recover[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	fallback func(ctx context.Context, err opflow.Error) (T, error)) *future.Future[opflow.Outcome[T]] {

	return then(ctx, input, func(ctx context.Context, in opflow.Outcome[T]) (opflow.Outcome[T], error) {
		if in.IsSuccess() {
			return in, nil
		}
		v, err := fallback(ctx, in.Err())
		if err != nil {
			return opflow.Outcome[T]{}, err
		}
		return opflow.Success(v), nil
	})
}

// RecoverFuture awaits fallback only when input is a failure.
func RecoverFuture[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	fallback *future.Future[T]) *future.Future[opflow.Outcome[T]] {

	return Recover(ctx, input, func(ctx context.Context, _ opflow.Error) (T, error) {
		return fallback.Await(ctx)
	})
}
