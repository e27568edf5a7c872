package opflow

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// OutcomeKind names the case of an Outcome.
type OutcomeKind string

const (
	KindSuccess OutcomeKind = "success"
	KindFailure OutcomeKind = "failure"
)

var errUninitialized = Unexpected("Outcome was not initialized.", nil)

// Outcome is either a success carrying a value or a failure carrying an Error.
// The zero Outcome reads as a failure.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       Error
	isSuccess bool
}

func Success[T any](r T) Outcome[T] {
	return Outcome[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure panics with ErrNilError when err is nil and with an error wrapping
// ErrUnknownCase when err is not one of the four value cases.
func Failure[T any](err Error) Outcome[T] {
	if err == nil {
		panic(ErrNilError)
	}
	checkCase(err)
	return Outcome[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom re-types the failure held by from, keeping its id and creation
// time. It panics when from is a success.
func FailureFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	if from.isSuccess {
		panic(fmt.Errorf("opflow: FailureFrom called on %s", from))
	}
	return Outcome[Out]{
		err:       from.Err(),
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T]) Result() T {
	return o.result
}

// Err returns nil on success.
func (o Outcome[T]) Err() Error {
	if o.isSuccess {
		return nil
	}
	if o.err == nil {
		return errUninitialized
	}
	return o.err
}

func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T]) IsFailure() bool {
	return !o.isSuccess
}

func (o Outcome[T]) Kind() OutcomeKind {
	if o.isSuccess {
		return KindSuccess
	}
	return KindFailure
}

// TryGet returns the value and true on success, the zero value and false otherwise.
func (o Outcome[T]) TryGet() (T, bool) {
	if o.isSuccess {
		return o.result, true
	}
	var zero T
	return zero, false
}

// TryGetError returns the error and true on failure, nil and false otherwise.
func (o Outcome[T]) TryGetError() (Error, bool) {
	if o.isSuccess {
		return nil, false
	}
	return o.Err(), true
}

// Get adapts the outcome to the (value, error) convention of plain Go code.
func (o Outcome[T]) Get() (T, error) {
	if o.isSuccess {
		return o.result, nil
	}
	var zero T
	return zero, o.Err()
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) ID() uuid.UUID {
	return o.id
}

func (o Outcome[T]) String() string {
	if o.isSuccess {
		return fmt.Sprintf("Success: %v", o.result)
	}
	return fmt.Sprintf("Failure: %s", o.Err().Error())
}

// Equal compares case and payload. Id and creation time are ignored, also for
// a value that is itself an Outcome. Outcomes held inside other containers
// (slices, maps, structs) are compared with reflect.DeepEqual, ids included.
func (o Outcome[T]) Equal(other Outcome[T]) bool {
	if o.isSuccess != other.isSuccess {
		return false
	}
	if o.isSuccess {
		if nested, ok := any(o.result).(outcomeEqualer); ok {
			return nested.equalAny(other.result)
		}
		return reflect.DeepEqual(o.result, other.result)
	}
	return ErrorEqual(o.Err(), other.Err())
}

type outcomeEqualer interface {
	equalAny(other any) bool
}

func (o Outcome[T]) equalAny(other any) bool {
	ot, ok := other.(Outcome[T])
	return ok && o.Equal(ot)
}
