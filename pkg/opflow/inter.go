package opflow

import (
	"time"

	"github.com/google/uuid"
)

// Classifier is the minimal read surface of an Outcome, independent of its
// value type.
type Classifier interface {
	// Kind returns KindSuccess or KindFailure
	Kind() OutcomeKind
	// IsSuccess returns true if the outcome holds a value
	IsSuccess() bool
	// IsFailure returns true if the outcome holds an Error
	IsFailure() bool
	// TryGetError returns the Error of a failure
	TryGetError() (Error, bool)
}

// Introspector is everything an external encoder needs to read an Outcome
// without privileged access.
type Introspector[T any] interface {
	Classifier
	// TryGet returns the value of a success
	TryGet() (T, bool)
}

// Traced is implemented by values stamped with an identity and a creation time.
type Traced interface {
	ID() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var (
	_ Introspector[int] = Outcome[int]{}
	_ Traced            = Outcome[int]{}
)
