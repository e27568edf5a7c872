package solo

import (
	"context"
	"strings"

	"github.com/ib-77/opflow/pkg/opflow"
)

// MultipleErrorsMessage is the message of the Validation error ValidateAll
// builds when more than one rule fails.
const MultipleErrorsMessage = "Multiple validation errors"

// Rule validates a value and may replace it.
type Rule[T any] func(ctx context.Context, in T) opflow.Outcome[T]

// Check validates a value and returns nil when it is valid.
type Check[T any] func(ctx context.Context, in T) opflow.Error

func (c Check[T]) Rule() Rule[T] {
	return func(ctx context.Context, in T) opflow.Outcome[T] {
		if err := c(ctx, in); err != nil {
			return opflow.Failure[T](err)
		}
		return opflow.Success(in)
	}
}

func Ensure[T any](ctx context.Context, input opflow.Outcome[T],
	predicate func(ctx context.Context, in T) bool,
	errorFactory func(ctx context.Context, in T) opflow.Error) opflow.Outcome[T] {

	requireCallback(predicate != nil, "predicate")
	requireCallback(errorFactory != nil, "errorFactory")

	if input.IsSuccess() && !predicate(ctx, input.Result()) {
		return opflow.Failure[T](errorFactory(ctx, input.Result()))
	}
	return input
}

func Require[T any](ctx context.Context, input opflow.Outcome[T],
	predicate func(ctx context.Context, in T) bool,
	err opflow.Error) opflow.Outcome[T] {

	if err == nil {
		panic(opflow.ErrNilError)
	}
	return Ensure(ctx, input, predicate, func(context.Context, T) opflow.Error { return err })
}

// EnsureMessage fails with Validation(message) when predicate does not hold.
func EnsureMessage[T any](ctx context.Context, input opflow.Outcome[T],
	predicate func(ctx context.Context, in T) bool,
	message string) opflow.Outcome[T] {

	return Require(ctx, input, predicate, opflow.Validation(message))
}

func Where[T any](ctx context.Context, input opflow.Outcome[T],
	predicate func(ctx context.Context, in T) bool) opflow.Outcome[T] {
	return EnsureMessage(ctx, input, predicate, "Predicate failed")
}

func NotEmpty(ctx context.Context, input opflow.Outcome[string], fieldName string) opflow.Outcome[string] {
	return EnsureMessage(ctx, input, func(_ context.Context, s string) bool {
		return strings.TrimSpace(s) != ""
	}, subject(fieldName)+" must not be empty")
}

func NotNil[T any](ctx context.Context, input opflow.Outcome[T], fieldName string) opflow.Outcome[T] {
	return EnsureMessage(ctx, input, func(_ context.Context, v T) bool {
		return !opflow.IsNil(v)
	}, subject(fieldName)+" must not be null")
}

// Validate applies rules in order, feeding each the value produced by the
// previous one, and stops at the first failure.
func Validate[T any](ctx context.Context, input opflow.Outcome[T], rules ...Rule[T]) opflow.Outcome[T] {
	current := input
	for _, rule := range rules {
		if current.IsFailure() {
			return current
		}
		current = rule(ctx, current.Result())
	}
	return current
}

// ValidateAll applies every rule to the input value and accumulates the
// failures (see Accumulate).
func ValidateAll[T any](ctx context.Context, input opflow.Outcome[T], rules ...Rule[T]) opflow.Outcome[T] {
	if input.IsFailure() {
		return input
	}

	var errs []opflow.Error
	for _, rule := range rules {
		if res := rule(ctx, input.Result()); res.IsFailure() {
			errs = append(errs, res.Err())
		}
	}
	return Accumulate(input, errs)
}

func ValidateChecks[T any](ctx context.Context, input opflow.Outcome[T], checks ...Check[T]) opflow.Outcome[T] {
	return Validate(ctx, input, rulesOf(checks)...)
}

func ValidateAllChecks[T any](ctx context.Context, input opflow.Outcome[T], checks ...Check[T]) opflow.Outcome[T] {
	return ValidateAll(ctx, input, rulesOf(checks)...)
}

// Accumulate applies the accumulation policy: no errors keeps input, a single
// error surfaces as is, several are folded into one Validation error whose
// fields are the rendered errors.
func Accumulate[T any](input opflow.Outcome[T], errs []opflow.Error) opflow.Outcome[T] {
	switch len(errs) {
	case 0:
		return input
	case 1:
		return opflow.Failure[T](errs[0])
	}

	fields := make([]string, 0, len(errs))
	for _, err := range errs {
		fields = append(fields, err.Error())
	}
	return opflow.Failure[T](opflow.Validation(MultipleErrorsMessage, fields...))
}

func rulesOf[T any](checks []Check[T]) []Rule[T] {
	rules := make([]Rule[T], 0, len(checks))
	for _, c := range checks {
		rules = append(rules, c.Rule())
	}
	return rules
}

func subject(fieldName string) string {
	if fieldName == "" {
		return "Value"
	}
	return fieldName
}
