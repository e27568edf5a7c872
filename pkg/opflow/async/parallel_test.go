package async

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/opflow/pkg/opflow"
	"github.com/ib-77/opflow/pkg/opflow/future"
)

// gated settles with o only after release is closed.
func gated[T any](ctx context.Context, o opflow.Outcome[T], release <-chan struct{}) *future.Future[opflow.Outcome[T]] {
	return future.Go(ctx, func(context.Context) (opflow.Outcome[T], error) {
		<-release
		return o, nil
	})
}

func TestWhenAll_AllSucceed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	got := await(t, WhenAll(ctx, Lift(opflow.Success(1)), Lift(opflow.Success(2)), Lift(opflow.Success(3))))
	assertOutcome(t, opflow.Success([]int{1, 2, 3}), got)
}

func TestWhenAll_PositionWinsOverSettleOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	release := make(chan struct{})

	first := gated(ctx, opflow.Failure[int](opflow.NotFound("first")), release)
	second := Lift(opflow.Failure[int](opflow.Validation("second")))

	all := WhenAll(ctx, first, second)
	<-second.Done()
	close(release)

	assertOutcome(t, opflow.Failure[[]int](opflow.NotFound("first")), await(t, all))
}

func TestWhenAll_FaultBeatsFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("boom")

	all := WhenAll(ctx, Lift(opflow.Failure[int](opflow.NotFound("x"))), future.Faulted[opflow.Outcome[int]](boom))
	_, err := all.Await(ctx)
	assert.Same(t, boom, err)
}

func TestWhenAll2_3(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	assertOutcome(t, opflow.Success(opflow.Pair[int, string]{First: 1, Second: "a"}),
		await(t, WhenAll2(ctx, Lift(opflow.Success(1)), Lift(opflow.Success("a")))))

	release := make(chan struct{})
	close(release)
	assertOutcome(t, opflow.Failure[opflow.Triple[int, string, bool]](opflow.Unauthorized("b")),
		await(t, WhenAll3(ctx,
			Lift(opflow.Success(1)),
			gated(ctx, opflow.Failure[string](opflow.Unauthorized("b")), release),
			Lift(opflow.Failure[bool](opflow.NotFound("c"))))))
}
