package stream

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ib-77/opflow/pkg/opflow"
	"github.com/ib-77/opflow/pkg/opflow/future"
)

var ErrCancelled = errors.New("operation cancelled")

// Engine is one async step applied to a single outcome.
type Engine[In, Out any] func(ctx context.Context,
	input *future.Future[opflow.Outcome[In]]) *future.Future[opflow.Outcome[Out]]

// locomotive pulls outcomes from inputCh until it is closed or ctx is done. A
// fault of the engine is emitted as an Unexpected failure so one bad item
// never stops the line.
func locomotive[In, Out any](ctx context.Context, line int, inputCh <-chan opflow.Outcome[In],
	outCh chan<- opflow.Outcome[Out], engine Engine[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	logger := zerolog.Ctx(ctx).With().Int("line", line).Logger()
	logger.Debug().Msg("stream: line started")
	defer func() { logger.Debug().Msg("stream: line stopped") }()

	for {
		select {
		case <-ctx.Done():
			cancelRemaining(ctx, inputCh, outCh)
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			out, err := engine(ctx, future.Resolved(in)).Await(ctx)
			if err != nil {
				if ctx.Err() != nil && opflow.IsCancellation(err) {
					cancelOne(ctx, outCh)
					cancelRemaining(ctx, inputCh, outCh)
					return
				}
				logger.Debug().Err(err).Msg("stream: step faulted")
				out = opflow.FromErr[Out](err)
			}

			select {
			case <-ctx.Done():
				// the processed outcome is still delivered when remaining items are
				if ProcessRemaining(ctx, false) {
					outCh <- out
				}
				cancelRemaining(ctx, inputCh, outCh)
				return
			case outCh <- out:
			}
		}
	}
}

func cancelled[T any](ctx context.Context) opflow.Outcome[T] {
	return opflow.Failure[T](opflow.Unexpected(ErrCancelled.Error(), errors.Join(ErrCancelled, ctx.Err())))
}

func cancelOne[Out any](ctx context.Context, outCh chan<- opflow.Outcome[Out]) {
	if ProcessRemaining(ctx, false) {
		outCh <- cancelled[Out](ctx)
	}
}

func cancelRemaining[In, Out any](ctx context.Context, inputCh <-chan opflow.Outcome[In],
	outCh chan<- opflow.Outcome[Out]) {

	if !ProcessRemaining(ctx, false) {
		return
	}
	for range inputCh {
		outCh <- cancelled[Out](ctx)
	}
}
