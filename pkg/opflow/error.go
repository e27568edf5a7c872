package opflow

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// Kind names one case of the closed Error taxonomy.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "notfound"
	KindUnauthorized Kind = "unauthorized"
	KindUnexpected   Kind = "unexpected"
)

var (
	// ErrNilError is raised (as a panic) when a nil Error is used to build a failure.
	ErrNilError = errors.New("opflow: nil error")
	// ErrNilCallback is raised (as a panic) when a required callback is missing.
	ErrNilCallback = errors.New("opflow: required callback is nil")
	// ErrUnknownCase is raised when an Error outside the four cases reaches a fold.
	ErrUnknownCase = errors.New("opflow: unknown error case")
)

// Kinds lists every case of the taxonomy in declaration order.
func Kinds() []Kind {
	return []Kind{KindValidation, KindNotFound, KindUnauthorized, KindUnexpected}
}

func (k Kind) Valid() bool {
	switch k {
	case KindValidation, KindNotFound, KindUnauthorized, KindUnexpected:
		return true
	}
	return false
}

// CaseName is the display name used by the "<CaseName>: <message>" rendering.
func (k Kind) CaseName() string {
	switch k {
	case KindValidation:
		return "Validation"
	case KindNotFound:
		return "NotFound"
	case KindUnauthorized:
		return "Unauthorized"
	case KindUnexpected:
		return "Unexpected"
	}
	return string(k)
}

// Error is the failure payload of an Outcome. The set of implementations is
// closed: ValidationError, NotFoundError, UnauthorizedError and UnexpectedError.
type Error interface {
	error
	Kind() Kind
	Message() string
	sealed()
}

type ValidationError struct {
	message string
	fields  []string
}

type NotFoundError struct {
	message string
}

type UnauthorizedError struct {
	message string
}

type UnexpectedError struct {
	message string
	cause   error
}

// Validation builds a validation error. Fields name the inputs at fault, in order.
func Validation(message string, fields ...string) ValidationError {
	return ValidationError{message: message, fields: slices.Clone(fields)}
}

func NotFound(message string) NotFoundError {
	return NotFoundError{message: message}
}

func Unauthorized(message string) UnauthorizedError {
	return UnauthorizedError{message: message}
}

// Unexpected builds an unexpected error. cause may be nil; it is kept for
// diagnostics and exposed through Unwrap.
func Unexpected(message string, cause error) UnexpectedError {
	return UnexpectedError{message: message, cause: cause}
}

func (e ValidationError) Kind() Kind      { return KindValidation }
func (e ValidationError) Message() string { return e.message }
func (e ValidationError) Error() string   { return render(e) }
func (e ValidationError) sealed()         {}

// Fields returns a copy of the implicated field list, nil when none was given.
func (e ValidationError) Fields() []string { return slices.Clone(e.fields) }

func (e NotFoundError) Kind() Kind      { return KindNotFound }
func (e NotFoundError) Message() string { return e.message }
func (e NotFoundError) Error() string   { return render(e) }
func (e NotFoundError) sealed()         {}

func (e UnauthorizedError) Kind() Kind      { return KindUnauthorized }
func (e UnauthorizedError) Message() string { return e.message }
func (e UnauthorizedError) Error() string   { return render(e) }
func (e UnauthorizedError) sealed()         {}

func (e UnexpectedError) Kind() Kind      { return KindUnexpected }
func (e UnexpectedError) Message() string { return e.message }
func (e UnexpectedError) Error() string   { return render(e) }
func (e UnexpectedError) Cause() error    { return e.cause }
func (e UnexpectedError) Unwrap() error   { return e.cause }
func (e UnexpectedError) sealed()         {}

func render(e Error) string {
	return fmt.Sprintf("%s: %s", e.Kind().CaseName(), e.Message())
}

func IsValidation(e Error) bool {
	_, ok := e.(ValidationError)
	return ok
}

func IsNotFound(e Error) bool {
	_, ok := e.(NotFoundError)
	return ok
}

func IsUnauthorized(e Error) bool {
	_, ok := e.(UnauthorizedError)
	return ok
}

func IsUnexpected(e Error) bool {
	_, ok := e.(UnexpectedError)
	return ok
}

func AsValidation(e Error) (ValidationError, bool) {
	v, ok := e.(ValidationError)
	return v, ok
}

func AsNotFound(e Error) (NotFoundError, bool) {
	v, ok := e.(NotFoundError)
	return v, ok
}

func AsUnauthorized(e Error) (UnauthorizedError, bool) {
	v, ok := e.(UnauthorizedError)
	return v, ok
}

func AsUnexpected(e Error) (UnexpectedError, bool) {
	v, ok := e.(UnexpectedError)
	return v, ok
}

// MessageOf returns the message of any case; empty for a nil Error.
func MessageOf(e Error) string {
	if e == nil {
		return ""
	}
	return e.Message()
}

// CauseOf returns the causative fault of an Unexpected error and nil for every
// other case.
func CauseOf(e Error) error {
	if u, ok := e.(UnexpectedError); ok {
		return u.cause
	}
	return nil
}

// FieldsOf returns the field list of a Validation error and nil otherwise.
func FieldsOf(e Error) []string {
	if v, ok := e.(ValidationError); ok {
		return v.Fields()
	}
	return nil
}

// MatchError folds e into a value, calling exactly the function of its case.
func MatchError[R any](e Error,
	onValidation func(ValidationError) R,
	onNotFound func(NotFoundError) R,
	onUnauthorized func(UnauthorizedError) R,
	onUnexpected func(UnexpectedError) R) R {

	requireCallbacks(onValidation != nil, onNotFound != nil, onUnauthorized != nil, onUnexpected != nil)

	switch v := e.(type) {
	case ValidationError:
		return onValidation(v)
	case NotFoundError:
		return onNotFound(v)
	case UnauthorizedError:
		return onUnauthorized(v)
	case UnexpectedError:
		return onUnexpected(v)
	}
	panic(fmt.Errorf("%w: %T", ErrUnknownCase, e))
}

// SwitchError is the side-effecting dual of MatchError.
func SwitchError(e Error,
	onValidation func(ValidationError),
	onNotFound func(NotFoundError),
	onUnauthorized func(UnauthorizedError),
	onUnexpected func(UnexpectedError)) {

	requireCallbacks(onValidation != nil, onNotFound != nil, onUnauthorized != nil, onUnexpected != nil)

	switch v := e.(type) {
	case ValidationError:
		onValidation(v)
	case NotFoundError:
		onNotFound(v)
	case UnauthorizedError:
		onUnauthorized(v)
	case UnexpectedError:
		onUnexpected(v)
	default:
		panic(fmt.Errorf("%w: %T", ErrUnknownCase, e))
	}
}

// ErrorEqual reports structural equality: same case, same message, same
// ordered fields, and the very same cause.
func ErrorEqual(a, b Error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() || a.Message() != b.Message() {
		return false
	}
	switch av := a.(type) {
	case ValidationError:
		bv, ok := b.(ValidationError)
		return ok && slices.Equal(av.fields, bv.fields)
	case UnexpectedError:
		bv, ok := b.(UnexpectedError)
		return ok && sameCause(av.cause, bv.cause)
	case NotFoundError, UnauthorizedError:
		return reflect.TypeOf(a) == reflect.TypeOf(b)
	}
	return false
}

// checkCase panics with ErrUnknownCase unless e is one of the four value
// cases. Pointers to the case structs satisfy Error too and are rejected.
func checkCase(e Error) {
	switch e.(type) {
	case ValidationError, NotFoundError, UnauthorizedError, UnexpectedError:
		return
	}
	panic(fmt.Errorf("%w: %T", ErrUnknownCase, e))
}

func sameCause(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}

// Restore rebuilds an Error from its introspected parts. An unrecognised kind
// yields Unexpected("Unknown error type '<kind>'") so decoding never produces a
// malformed value.
func Restore(kind string, message string, fields []string, cause error) Error {
	switch Kind(kind) {
	case KindValidation:
		return Validation(message, fields...)
	case KindNotFound:
		return NotFound(message)
	case KindUnauthorized:
		return Unauthorized(message)
	case KindUnexpected:
		return Unexpected(message, cause)
	}
	return Unexpected(fmt.Sprintf("Unknown error type '%s'", kind), nil)
}

func requireCallbacks(present ...bool) {
	for i, ok := range present {
		if !ok {
			panic(fmt.Errorf("%w: argument #%d", ErrNilCallback, i+1))
		}
	}
}
