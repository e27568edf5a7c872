package solo

import (
	"context"
	"testing"

	"github.com/ib-77/opflow/pkg/opflow"
)

func TestTap_ReturnsInputUnchanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var seen []int

	in := Succeed(7)
	out := Tap(ctx, in, func(_ context.Context, v int) { seen = append(seen, v) })
	if out.ID() != in.ID() {
		t.Fatal("tap must return its input")
	}

	Tap(ctx, Fail[int](opflow.NotFound("x")), func(_ context.Context, v int) { seen = append(seen, v) })
	OnSuccess(ctx, Succeed(8), func(_ context.Context, v int) { seen = append(seen, v) })

	if len(seen) != 2 || seen[0] != 7 || seen[1] != 8 {
		t.Fatalf("unexpected calls %v", seen)
	}
}

func TestTapError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var seen []string

	TapError(ctx, Succeed(1), func(_ context.Context, e opflow.Error) { seen = append(seen, e.Message()) })
	in := Fail[int](opflow.Unauthorized("nope"))
	out := OnFailure(ctx, in, func(_ context.Context, e opflow.Error) { seen = append(seen, e.Message()) })

	if out.ID() != in.ID() {
		t.Fatal("tap must return its input")
	}
	if len(seen) != 1 || seen[0] != "nope" {
		t.Fatalf("unexpected calls %v", seen)
	}
}

func TestTapIf(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	count := 0
	even := func(_ context.Context, v int) bool { return v%2 == 0 }
	inc := func(context.Context, int) { count++ }

	TapIf(ctx, Succeed(2), even, inc)
	TapIf(ctx, Succeed(3), even, inc)
	TapIf(ctx, Fail[int](opflow.Validation("x")), even, inc)

	if count != 1 {
		t.Fatalf("expected one call, got %d", count)
	}
}

func TestFinally_RunsOnBothCases(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	count := 0

	ok := Finally(ctx, Succeed(1), func(context.Context) { count++ })
	failed := Finally(ctx, Fail[int](opflow.NotFound("x")), func(context.Context) { count++ })

	if count != 2 {
		t.Fatalf("expected two calls, got %d", count)
	}
	mustEqual(t, opflow.Success(1), ok)
	mustEqual(t, opflow.Failure[int](opflow.NotFound("x")), failed)
}
