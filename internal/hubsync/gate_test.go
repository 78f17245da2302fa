package hubsync_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"GaltonBoardController/internal/actuator"
	"GaltonBoardController/internal/bernoulli"
	"GaltonBoardController/internal/hubsync"
	"GaltonBoardController/internal/logx"
	"GaltonBoardController/internal/model"
	"GaltonBoardController/internal/sequencer"
	"GaltonBoardController/internal/simclock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFeed struct {
	runs atomic.Int32
}

func (f *countingFeed) RunOnce() error {
	f.runs.Add(1)
	return nil
}

// chanTrigger resolves when its channel is closed.
type chanTrigger struct {
	fired chan struct{}
}

func (t *chanTrigger) WaitForSignal(ctx context.Context) error {
	select {
	case <-t.fired:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func testLogger() *logx.Logger {
	return logx.New("test", simclock.New(1))
}

func TestPrimaryFeedsExactlyOnce(t *testing.T) {
	feed := &countingFeed{}
	gate, err := hubsync.NewGate(model.RolePrimary, feed, nil, 0, testLogger())
	require.NoError(t, err)

	require.NoError(t, gate.Open(context.Background()))
	require.NoError(t, gate.Open(context.Background()))
	assert.Equal(t, int32(1), feed.runs.Load())
}

func TestSecondaryTimesOutWithoutTrigger(t *testing.T) {
	trig := &chanTrigger{fired: make(chan struct{})}
	gate, err := hubsync.NewGate(model.RoleSecondary, nil, trig, 20*time.Millisecond, testLogger())
	require.NoError(t, err)

	err = gate.Open(context.Background())
	assert.ErrorIs(t, err, hubsync.ErrSyncTimeout)
}

func TestGateRequiresRoleCollaborators(t *testing.T) {
	_, err := hubsync.NewGate(model.RolePrimary, nil, nil, 0, testLogger())
	assert.Error(t, err)

	_, err = hubsync.NewGate(model.RoleSecondary, nil, nil, 0, testLogger())
	assert.Error(t, err)
}

// The secondary must not command a single actuator until the trigger fires.
func TestSecondaryHoldsAllCommandsUntilTriggered(t *testing.T) {
	initial := map[string]float64{"A": 0, "C": 0}
	drv := actuator.NewStub(nil, initial)
	trig := &chanTrigger{fired: make(chan struct{})}
	gate, err := hubsync.NewGate(model.RoleSecondary, nil, trig, 0, testLogger())
	require.NoError(t, err)

	src, err := bernoulli.New(0.5, nil)
	require.NoError(t, err)
	seq, err := sequencer.New(model.RoleSecondary, []string{"A", "C"}, 30, 10, 0, initial, src, drv, simclock.New(1000), testLogger())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		if err := gate.Open(context.Background()); err != nil {
			done <- err
			return
		}
		done <- seq.Run(2)
	}()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, drv.MoveCount(), "no commands before the trigger")

	close(trig.fired)
	require.NoError(t, <-done)
	assert.Equal(t, 8, drv.MoveCount(), "2 cycles x (2 commands + 2 resets)")
}
