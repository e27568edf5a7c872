package opflow

import (
	"fmt"
	"reflect"
)

func FromValue[T any](v T) Outcome[T] {
	return Success(v)
}

func FromError[T any](err Error) Outcome[T] {
	return Failure[T](err)
}

// FromErr classifies any Go error as Unexpected(err.Error(), err), opflow
// errors included. The original error stays reachable through errors.As on
// the cause.
func FromErr[T any](err error) Outcome[T] {
	if err == nil {
		panic(ErrNilError)
	}
	return fromFault[T](err)
}

// From runs producer and wraps its value. A returned error or a panic turns
// into an Unexpected failure carrying the fault as cause.
func From[T any](producer func() (T, error)) (out Outcome[T]) {
	if producer == nil {
		panic(fmt.Errorf("%w: producer", ErrNilCallback))
	}

	defer func() {
		if r := recover(); r != nil {
			out = fromFault[T](AsFault(r))
		}
	}()

	v, err := producer()
	if err != nil {
		return fromFault[T](err)
	}
	return Success(v)
}

// Try behaves exactly like From.
func Try[T any](producer func() (T, error)) Outcome[T] {
	return From(producer)
}

// FromNullable succeeds with *value when value is not nil. The failure message
// defaults to "Value of type <T> was null.".
func FromNullable[T any](value *T, message ...string) Outcome[T] {
	if value == nil {
		return Failure[T](Unexpected(nullMessage[T](message), nil))
	}
	return Success(*value)
}

// FromNilable is FromNullable for types that are nilable themselves
// (pointers, maps, slices, channels, functions, interfaces).
func FromNilable[T any](value T, message ...string) Outcome[T] {
	if IsNil(value) {
		return Failure[T](Unexpected(nullMessage[T](message), nil))
	}
	return Success(value)
}

func fromFault[T any](err error) Outcome[T] {
	return Failure[T](Unexpected(err.Error(), err))
}

func nullMessage[T any](message []string) string {
	if len(message) > 0 {
		return message[0]
	}
	return fmt.Sprintf("Value of type %s was null.", reflect.TypeFor[T]().String())
}
