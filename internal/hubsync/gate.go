// Package hubsync coordinates the start of the two controllers: the primary
// pumps the first ball, the secondary holds until the operator's trigger.
package hubsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"GaltonBoardController/internal/actuator"
	"GaltonBoardController/internal/logx"
	"GaltonBoardController/internal/model"
)

// ErrSyncTimeout reports that the secondary's bounded trigger wait expired
// before anyone fired the trigger.
var ErrSyncTimeout = errors.New("hubsync: trigger wait timed out")

// FeedAction releases the first ball into the board. Fire-and-forget from
// the sequencer's perspective: it only has to happen before cycle 1.
type FeedAction interface {
	RunOnce() error
}

// ManualTrigger blocks until an external signal says the board is ready.
type ManualTrigger interface {
	WaitForSignal(ctx context.Context) error
}

// Gate is the one-shot handshake run before a controller's first cycle.
// Primary: feed once, never wait. Secondary: wait, never feed.
type Gate struct {
	role    model.Role
	feed    FeedAction
	trigger ManualTrigger
	timeout time.Duration // 0 = wait forever, as the original build does
	log     *logx.Logger

	opened bool
}

func NewGate(role model.Role, feed FeedAction, trigger ManualTrigger, timeout time.Duration, log *logx.Logger) (*Gate, error) {
	switch role {
	case model.RolePrimary:
		if feed == nil {
			return nil, fmt.Errorf("hubsync: primary gate needs a feed action")
		}
	case model.RoleSecondary:
		if trigger == nil {
			return nil, fmt.Errorf("hubsync: secondary gate needs a trigger")
		}
	default:
		return nil, fmt.Errorf("hubsync: unknown role %q", role)
	}
	return &Gate{role: role, feed: feed, trigger: trigger, timeout: timeout, log: log}, nil
}

// Open performs the role's handshake exactly once. A second call is a no-op.
func (g *Gate) Open(ctx context.Context) error {
	if g.opened {
		return nil
	}

	switch g.role {
	case model.RolePrimary:
		g.log.Infof("SYNC/FEED → releasing first ball")
		if err := g.feed.RunOnce(); err != nil {
			return fmt.Errorf("hubsync: feed action: %w", err)
		}
	case model.RoleSecondary:
		if g.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, g.timeout)
			defer cancel()
			g.log.Infof("SYNC/WAIT → waiting for trigger (timeout %s)", g.timeout)
		} else {
			g.log.Infof("SYNC/WAIT → waiting for trigger (no timeout)")
		}
		if err := g.trigger.WaitForSignal(ctx); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return ErrSyncTimeout
			}
			return fmt.Errorf("hubsync: trigger wait: %w", err)
		}
		g.log.Infof("SYNC/GO → trigger received")
	}

	g.opened = true
	return nil
}

// MotorFeed is the FeedAction of the sample build: one full rotation of the
// dedicated pump motor pushes a ball onto the top row.
type MotorFeed struct {
	drv   actuator.Sweeper
	motor string
	speed int
}

func NewMotorFeed(drv actuator.Sweeper, motor string, speed int) *MotorFeed {
	return &MotorFeed{drv: drv, motor: motor, speed: speed}
}

func (f *MotorFeed) RunOnce() error {
	return f.drv.Sweep(f.motor, 360, f.speed)
}
