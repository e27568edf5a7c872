package async

import (
	"context"

	"github.com/ib-77/opflow/pkg/opflow"
	"github.com/ib-77/opflow/pkg/opflow/future"
	"github.com/ib-77/opflow/pkg/opflow/solo"
)

// Rule validates a value and may replace it. A non-nil error is a fault.
type Rule[T any] func(ctx context.Context, in T) (opflow.Outcome[T], error)

// Check validates a value and returns a nil Error when it is valid.
type Check[T any] func(ctx context.Context, in T) (opflow.Error, error)

func (c Check[T]) Rule() Rule[T] {
	return func(ctx context.Context, in T) (opflow.Outcome[T], error) {
		invalid, err := c(ctx, in)
		if err != nil {
			return opflow.Outcome[T]{}, err
		}
		if invalid != nil {
			return opflow.Failure[T](invalid), nil
		}
		return opflow.Success(in), nil
	}
}

func Ensure[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	predicate func(ctx context.Context, in T) (bool, error),
	errorFactory func(ctx context.Context, in T) opflow.Error) *future.Future[opflow.Outcome[T]] {

	requireCallback(predicate != nil, "predicate")
	requireCallback(errorFactory != nil, "errorFactory")

	return then(ctx, input, func(ctx context.Context, in opflow.Outcome[T]) (opflow.Outcome[T], error) {
		if in.IsFailure() {
			return in, nil
		}
		ok, err := predicate(ctx, in.Result())
		if err != nil {
			return opflow.Outcome[T]{}, err
		}
		if !ok {
			return opflow.Failure[T](errorFactory(ctx, in.Result())), nil
		}
		return in, nil
	})
}

func Require[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	predicate func(ctx context.Context, in T) (bool, error),
	err opflow.Error) *future.Future[opflow.Outcome[T]] {

	if err == nil {
		panic(opflow.ErrNilError)
	}
	return Ensure(ctx, input, predicate, func(context.Context, T) opflow.Error { return err })
}

func EnsureMessage[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	predicate func(ctx context.Context, in T) (bool, error),
	message string) *future.Future[opflow.Outcome[T]] {

	return Require(ctx, input, predicate, opflow.Validation(message))
}

func Where[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	predicate func(ctx context.Context, in T) (bool, error)) *future.Future[opflow.Outcome[T]] {
	return EnsureMessage(ctx, input, predicate, "Predicate failed")
}

// Validate runs rules one after another and stops at the first failure.
func Validate[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	rules ...Rule[T]) *future.Future[opflow.Outcome[T]] {

	return then(ctx, input, func(ctx context.Context, current opflow.Outcome[T]) (opflow.Outcome[T], error) {
		for _, rule := range rules {
			if current.IsFailure() {
				return current, nil
			}
			next, err := rule(ctx, current.Result())
			if err != nil {
				return opflow.Outcome[T]{}, err
			}
			current = next
		}
		return current, nil
	})
}

// ValidateAll runs every rule against the input value, one after another, and
// accumulates failures like solo.ValidateAll.
func ValidateAll[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	rules ...Rule[T]) *future.Future[opflow.Outcome[T]] {

	return then(ctx, input, func(ctx context.Context, in opflow.Outcome[T]) (opflow.Outcome[T], error) {
		if in.IsFailure() {
			return in, nil
		}

		var errs []opflow.Error
		for _, rule := range rules {
			res, err := rule(ctx, in.Result())
			if err != nil {
				return opflow.Outcome[T]{}, err
			}
			if res.IsFailure() {
				errs = append(errs, res.Err())
			}
		}
		return solo.Accumulate(in, errs), nil
	})
}

func ValidateChecks[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	checks ...Check[T]) *future.Future[opflow.Outcome[T]] {
	return Validate(ctx, input, rulesOf(checks)...)
}

func ValidateAllChecks[T any](ctx context.Context, input *future.Future[opflow.Outcome[T]],
	checks ...Check[T]) *future.Future[opflow.Outcome[T]] {
	return ValidateAll(ctx, input, rulesOf(checks)...)
}

func rulesOf[T any](checks []Check[T]) []Rule[T] {
	rules := make([]Rule[T], 0, len(checks))
	for _, c := range checks {
		rules = append(rules, c.Rule())
	}
	return rules
}
