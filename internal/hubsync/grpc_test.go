package hubsync_test

import (
	"context"
	"testing"
	"time"

	"GaltonBoardController/internal/hubsync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerOverGRPC(t *testing.T) {
	log := testLogger()
	gs, lis, srv, err := hubsync.Start("127.0.0.1:0", log)
	require.NoError(t, err)
	defer hubsync.Stop(gs, lis, log)

	addr := lis.Addr().String()

	// Nothing fired yet: the wait must still be pending.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	err = srv.WaitForSignal(ctx)
	cancel()
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, hubsync.Fire(context.Background(), addr, "test", "board ready"))

	ctx, cancel = context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, srv.WaitForSignal(ctx))

	// Repeated triggers are acknowledged and ignored.
	assert.NoError(t, hubsync.Fire(context.Background(), addr, "test", "again"))
}

func TestFireAgainstClosedEndpoint(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	err := hubsync.Fire(ctx, "127.0.0.1:1", "test", "")
	assert.Error(t, err)
}
