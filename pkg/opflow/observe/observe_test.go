package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/opflow/pkg/opflow"
	"github.com/ib-77/opflow/pkg/opflow/async"
	"github.com/ib-77/opflow/pkg/opflow/solo"
)

func capture() (context.Context, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf)
	return logger.WithContext(context.Background()), buf
}

func entries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var res []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		res = append(res, entry)
	}
	return res
}

func TestLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zerolog.ErrorLevel, Level(opflow.Unexpected("x", nil)))
	assert.Equal(t, zerolog.WarnLevel, Level(opflow.Validation("x")))
	assert.Equal(t, zerolog.WarnLevel, Level(opflow.NotFound("x")))
	assert.Equal(t, zerolog.WarnLevel, Level(opflow.Unauthorized("x")))
}

func TestFailure_WritesStructuredError(t *testing.T) {
	t.Parallel()

	ctx, buf := capture()
	solo.TapError(ctx, opflow.Failure[int](opflow.Validation("bad input", "name", "age")), Failure("validation failed"))

	logs := entries(t, buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "warn", logs[0]["level"])
	assert.Equal(t, "validation failed", logs[0]["message"])

	errObj, ok := logs[0]["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "validation", errObj["kind"])
	assert.Equal(t, "bad input", errObj["message"])
	assert.Equal(t, []any{"name", "age"}, errObj["fields"])
}

func TestFailure_UnexpectedCarriesCause(t *testing.T) {
	t.Parallel()

	ctx, buf := capture()
	Failure("step failed")(ctx, opflow.Unexpected("db", errors.New("connection reset")))

	logs := entries(t, buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "error", logs[0]["level"])

	errObj := logs[0]["error"].(map[string]any)
	assert.Equal(t, "connection reset", errObj["cause"])
}

func TestSuccess_LogsAtDebug(t *testing.T) {
	t.Parallel()

	ctx, buf := capture()
	solo.Tap(ctx, opflow.Success(5), Success[int]("computed"))

	logs := entries(t, buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "debug", logs[0]["level"])
	assert.EqualValues(t, 5, logs[0]["value"])
}

func TestOutcome_LogsID(t *testing.T) {
	t.Parallel()

	ctx, buf := capture()
	ok := opflow.Success("v")
	failed := opflow.Failure[string](opflow.NotFound("gone"))

	Outcome(ctx, ok, "done")
	Outcome(ctx, failed, "done")

	logs := entries(t, buf)
	require.Len(t, logs, 2)
	assert.Equal(t, ok.ID().String(), logs[0]["id"])
	assert.Equal(t, "v", logs[0]["value"])
	assert.Equal(t, failed.ID().String(), logs[1]["id"])
	assert.Equal(t, "warn", logs[1]["level"])
}

func TestAsyncAdapters(t *testing.T) {
	t.Parallel()

	ctx, buf := capture()

	f := async.TapError(ctx,
		async.Tap(ctx, async.Lift(opflow.Failure[int](opflow.Unauthorized("nope"))), AsyncSuccess[int]("never")),
		AsyncFailure("denied"))

	_, err := f.Await(ctx)
	require.NoError(t, err)

	logs := entries(t, buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "denied", logs[0]["message"])
}

func TestNoLoggerInContextIsSilent(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		Failure("quiet")(context.Background(), opflow.NotFound("x"))
		Outcome(context.Background(), opflow.Success(1), "quiet")
	})
}
