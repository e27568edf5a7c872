// Package observe adapts outcomes to zerolog. The logger is always taken from
// the context (zerolog.Ctx), so nothing is written unless the caller attached
// one.
package observe

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ib-77/opflow/pkg/opflow"
)

// ErrorObject renders an opflow.Error as a structured zerolog object.
type ErrorObject struct {
	Err opflow.Error
}

func Err(e opflow.Error) ErrorObject {
	return ErrorObject{Err: e}
}

func (o ErrorObject) MarshalZerologObject(e *zerolog.Event) {
	if o.Err == nil {
		return
	}
	e.Str("kind", string(o.Err.Kind())).Str("message", o.Err.Message())
	if fields := opflow.FieldsOf(o.Err); len(fields) > 0 {
		e.Strs("fields", fields)
	}
	if cause := opflow.CauseOf(o.Err); cause != nil {
		e.AnErr("cause", cause)
	}
}

// Level picks the log level of a failure: Unexpected errors are errors, the
// other cases are warnings.
func Level(e opflow.Error) zerolog.Level {
	if opflow.IsUnexpected(e) {
		return zerolog.ErrorLevel
	}
	return zerolog.WarnLevel
}

// Success returns a callback for solo.Tap that logs the value at debug level.
func Success[T any](msg string) func(ctx context.Context, r T) {
	return func(ctx context.Context, r T) {
		zerolog.Ctx(ctx).Debug().Interface("value", r).Msg(msg)
	}
}

// Failure returns a callback for solo.TapError.
func Failure(msg string) func(ctx context.Context, err opflow.Error) {
	return func(ctx context.Context, err opflow.Error) {
		zerolog.Ctx(ctx).WithLevel(Level(err)).Object("error", Err(err)).Msg(msg)
	}
}

// Outcome logs o with its id, whatever its case.
func Outcome[T any](ctx context.Context, o opflow.Outcome[T], msg string) {
	logger := zerolog.Ctx(ctx)
	if e, failed := o.TryGetError(); failed {
		logger.WithLevel(Level(e)).Str("id", o.ID().String()).Object("error", Err(e)).Msg(msg)
		return
	}
	logger.Debug().Str("id", o.ID().String()).Interface("value", o.Result()).Msg(msg)
}

// AsyncSuccess adapts Success to the callback shape of async.Tap.
func AsyncSuccess[T any](msg string) func(ctx context.Context, r T) error {
	log := Success[T](msg)
	return func(ctx context.Context, r T) error {
		log(ctx, r)
		return nil
	}
}

// AsyncFailure adapts Failure to the callback shape of async.TapError.
func AsyncFailure(msg string) func(ctx context.Context, err opflow.Error) error {
	log := Failure(msg)
	return func(ctx context.Context, err opflow.Error) error {
		log(ctx, err)
		return nil
	}
}
