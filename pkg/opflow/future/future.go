package future

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ib-77/opflow/pkg/opflow"
)

type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go runs fn on a new goroutine. When ctx is already done fn is not run and
// the future faults with ctx.Err().
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if ctx.Err() != nil {
			f.err = ctx.Err()
			return
		}

		defer func() {
			if r := recover(); r != nil {
				f.err = opflow.AsFault(r)
				zerolog.Ctx(ctx).Debug().Err(f.err).Msg("future: recovered panic")
			}
		}()

		f.value, f.err = fn(ctx)
	}()

	return f
}

func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), value: v}
	close(f.done)
	return f
}

func Faulted[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Await blocks until the future settles or ctx is done. In the latter case
// ctx.Err() is returned as the fault and the future keeps running.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
