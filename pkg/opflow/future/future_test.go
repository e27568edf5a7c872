package future

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/opflow/pkg/opflow"
)

func TestGo_Resolves(t *testing.T) {
	t.Parallel()

	f := Go(context.Background(), func(context.Context) (int, error) { return 42, nil })

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, f.Ready())
}

func TestGo_Faults(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := Go(context.Background(), func(context.Context) (int, error) { return 0, boom })

	_, err := f.Await(context.Background())
	assert.Same(t, boom, err)
}

func TestGo_RecoversPanic(t *testing.T) {
	t.Parallel()

	f := Go(context.Background(), func(context.Context) (string, error) { panic("kaput") })

	_, err := f.Await(context.Background())
	var pe *opflow.PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "kaput", pe.Value)
	assert.Equal(t, "kaput", err.Error())
}

func TestGo_RecoversErrorPanicAsIs(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := Go(context.Background(), func(context.Context) (int, error) { panic(boom) })

	_, err := f.Await(context.Background())
	assert.Same(t, boom, err)
}

func TestGo_CancelledContextSkipsWork(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Bool
	f := Go(ctx, func(context.Context) (int, error) {
		ran.Store(true)
		return 1, nil
	})

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran.Load())
}

func TestAwait_ContextDone(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 7, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, f.Ready())

	close(release)
	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestAwait_SettledWinsOverDoneContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, err := Resolved(3).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestResolvedAndFaulted(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := Faulted[int](boom)
	assert.True(t, f.Ready())

	select {
	case <-f.Done():
	default:
		t.Fatal("faulted future must be settled")
	}

	_, err := f.Await(context.Background())
	assert.Same(t, boom, err)
}
