package chain

import (
	"context"

	"github.com/ib-77/opflow/pkg/opflow"
	"github.com/ib-77/opflow/pkg/opflow/solo"
)

// Chain wraps an opflow.Outcome with a context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res opflow.Outcome[T]
}

func Start[T any](ctx context.Context, r opflow.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, opflow.Success(v))
}

func (c Chain[T]) Result() opflow.Outcome[T] {
	return c.res
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

func (c Chain[T]) with(res opflow.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: res}
}

// Then composes functions that already return opflow.Outcome[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) opflow.Outcome[T]) Chain[T] {
	return c.with(solo.Bind(c.ctx, c.res, onSuccess))
}

// ThenTry composes functions that return (T, error), like repository calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return c.with(solo.TryMap(c.ctx, c.res, try))
}

func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return c.with(solo.Map(c.ctx, c.res, onSuccess))
}

func (c Chain[T]) Ensure(predicate func(ctx context.Context, t T) bool,
	errorFactory func(ctx context.Context, t T) opflow.Error) Chain[T] {
	return c.with(solo.Ensure(c.ctx, c.res, predicate, errorFactory))
}

func (c Chain[T]) Require(predicate func(ctx context.Context, t T) bool, err opflow.Error) Chain[T] {
	return c.with(solo.Require(c.ctx, c.res, predicate, err))
}

func (c Chain[T]) EnsureMessage(predicate func(ctx context.Context, t T) bool, message string) Chain[T] {
	return c.with(solo.EnsureMessage(c.ctx, c.res, predicate, message))
}

func (c Chain[T]) Validate(rules ...solo.Rule[T]) Chain[T] {
	return c.with(solo.Validate(c.ctx, c.res, rules...))
}

func (c Chain[T]) ValidateAll(rules ...solo.Rule[T]) Chain[T] {
	return c.with(solo.ValidateAll(c.ctx, c.res, rules...))
}

func (c Chain[T]) Recover(fallback func(ctx context.Context, err opflow.Error) T) Chain[T] {
	return c.with(solo.Recover(c.ctx, c.res, fallback))
}

func (c Chain[T]) MapError(onFailure func(ctx context.Context, err opflow.Error) opflow.Error) Chain[T] {
	return c.with(solo.MapError(c.ctx, c.res, onFailure))
}

func (c Chain[T]) BindError(onFailure func(ctx context.Context, err opflow.Error) opflow.Outcome[T]) Chain[T] {
	return c.with(solo.BindError(c.ctx, c.res, onFailure))
}

// Tap triggers a side effect on success without changing the result
func (c Chain[T]) Tap(onSuccess func(ctx context.Context, t T)) Chain[T] {
	return c.with(solo.Tap(c.ctx, c.res, onSuccess))
}

// TapError triggers a side effect on failure without changing the result
func (c Chain[T]) TapError(onFailure func(ctx context.Context, err opflow.Error)) Chain[T] {
	return c.with(solo.TapError(c.ctx, c.res, onFailure))
}

func (c Chain[T]) Finally(action func(ctx context.Context)) Chain[T] {
	return c.with(solo.Finally(c.ctx, c.res, action))
}

// While keeps applying onSuccess as long as the chain succeeds and cond holds
// for the current value. cond is checked before every step.
func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) opflow.Outcome[T],
	cond func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsSuccess() && cond(c.ctx, c.res.Result()) {
		c = c.Then(onSuccess)
	}
	return c
}

// RepeatWhile applies onSuccess at least once, then again as long as the
// chain succeeds and cond holds for the new value.
func (c Chain[T]) RepeatWhile(onSuccess func(ctx context.Context, t T) opflow.Outcome[T],
	cond func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}
	for {
		c = c.Then(onSuccess)
		if c.res.IsFailure() || !cond(c.ctx, c.res.Result()) {
			return c
		}
	}
}

// Or returns the first successful chain among c and alternatives, or the
// first failure when none succeeded.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	for _, ch := range alternatives {
		if ch.res.IsSuccess() {
			return ch
		}
	}
	return c
}

// And returns the first failing chain among c and required, or the last one
// when all succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	last := c
	for _, ch := range required {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// MapTo transforms the successful value into a value of another type
func MapTo[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// BindTo chains a function that returns opflow.Outcome[U]
func BindTo[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) opflow.Outcome[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Bind(c.ctx, c.res, onSuccess)}
}

// Match collapses the chain into a final value, delegating to solo.Match
func Match[T, U any](c Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, opflow.Error) U) U {
	return solo.Match(c.ctx, c.res, onSuccess, onFailure)
}
