package tickfsm_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librescoot/tickfsm"
)

func TestRunnerStepsUntilDeadline(t *testing.T) {
	var m tickfsm.Machine
	require.NoError(t, m.Init(0))

	var polled int
	require.NoError(t, m.Register(0, func() tickfsm.StateID {
		polled++
		return 0
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	r := tickfsm.NewRunner(&m, 5*time.Millisecond)
	err := r.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Positive(t, polled)
	assert.Equal(t, uint64(polled), r.Ticks())
}

func TestRunnerCancelledBeforeFirstTick(t *testing.T) {
	var m tickfsm.Machine
	require.NoError(t, m.Init(0))

	r := tickfsm.NewRunner(&m, 0) // falls back to DefaultTickInterval

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, r.Run(ctx), context.Canceled)
	assert.Zero(t, r.Ticks())
}
