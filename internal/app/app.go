// Package app wires configuration, randomness and drivers into the two run
// modes: statistical simulation and physical deployment.
package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"GaltonBoardController/internal/actuator"
	"GaltonBoardController/internal/bernoulli"
	"GaltonBoardController/internal/config"
	"GaltonBoardController/internal/hubsync"
	"GaltonBoardController/internal/logx"
	"GaltonBoardController/internal/model"
	"GaltonBoardController/internal/record"
	"GaltonBoardController/internal/sequencer"
	"GaltonBoardController/internal/sim"
	"GaltonBoardController/internal/simclock"
)

// StatusDisplay is whatever tells the operator the controller is alive. The
// sample build shows a heart glyph on the hub; here it is cosmetic only.
type StatusDisplay interface {
	ShowRunning()
	ShowIdle()
}

// LogDisplay writes the status to the log.
type LogDisplay struct {
	Log *logx.Logger
}

func (d *LogDisplay) ShowRunning() { d.Log.Infof("STATUS → running") }
func (d *LogDisplay) ShowIdle()    { d.Log.Infof("STATUS → idle") }

// RunSimulation runs the configured number of trials, optionally records
// them, and writes the per-bin report to w.
func RunSimulation(cfg *config.Config, log *logx.Logger, r *rand.Rand, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	src, err := bernoulli.New(cfg.Probability, r)
	if err != nil {
		return err
	}

	var rec *record.Recorder
	if cfg.Recording.Enabled {
		rec, err = record.Open(cfg.Recording.Path)
		if err != nil {
			return err
		}
		defer rec.Close()
		log.Infof("SIM/RECORD → run=%s", rec.RunID())
	}

	log.Infof("SIM/START → levels=%d balls=%d p=%.3f trials=%d",
		cfg.Levels, cfg.Balls.Simulation, cfg.Probability, cfg.Simulation.Trials)

	trials := make([]model.TrialResult, 0, cfg.Simulation.Trials)
	for i := 0; i < cfg.Simulation.Trials; i++ {
		tr := sim.RunTrial(src, cfg.Levels, cfg.Balls.Simulation)
		if rec != nil {
			rec.RecordTrial(i+1, tr)
		}
		trials = append(trials, tr)
	}

	stats, err := sim.Aggregate(trials, cfg.Levels)
	if err != nil {
		return err
	}
	sim.WriteReport(w, stats, cfg.Simulation.Trials)
	return nil
}

// RunController runs one role's physical share of the board to completion:
// handshake, then exactly balls.physical cycles.
func RunController(
	ctx context.Context,
	cfg *config.Config,
	role model.Role,
	drv actuator.Driver,
	clock *simclock.Clock,
	log *logx.Logger,
	r *rand.Rand,
	display StatusDisplay,
) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	order, err := cfg.OrderFor(role)
	if err != nil {
		return err
	}
	src, err := bernoulli.New(cfg.Probability, r)
	if err != nil {
		return err
	}

	display.ShowRunning()
	defer display.ShowIdle()

	initial, err := sequencer.CaptureInitialPositions(drv, order)
	if err != nil {
		return err
	}
	log.Infof("BOOT → role=%s initial positions=%v", role, initial)

	gate, cleanup, err := buildGate(cfg, role, drv, clock, log)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := gate.Open(ctx); err != nil {
		return err
	}

	seq, err := sequencer.New(
		role,
		order,
		cfg.Motor.OpeningDegrees,
		cfg.Motor.Speed,
		time.Duration(cfg.Motor.SettleSimS*float64(time.Second)),
		initial,
		src,
		drv,
		clock,
		log,
	)
	if err != nil {
		return err
	}
	return seq.Run(cfg.Balls.Physical)
}

// buildGate assembles the role's handshake: feed pump for the primary, a
// gRPC trigger endpoint for the secondary.
func buildGate(
	cfg *config.Config,
	role model.Role,
	drv actuator.Driver,
	clock *simclock.Clock,
	log *logx.Logger,
) (*hubsync.Gate, func(), error) {
	cleanup := func() {}

	switch role {
	case model.RolePrimary:
		sweeper, ok := drv.(actuator.Sweeper)
		if !ok {
			return nil, nil, fmt.Errorf("app: driver cannot sweep, primary needs the feed pump")
		}
		feed := hubsync.NewMotorFeed(sweeper, cfg.Motor.FeedMotor, cfg.Motor.Speed)
		gate, err := hubsync.NewGate(role, feed, nil, 0, log)
		if err != nil {
			return nil, nil, err
		}
		return gate, cleanup, nil

	case model.RoleSecondary:
		gs, lis, srv, err := hubsync.Start(cfg.Sync.ListenAddr, log)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { hubsync.Stop(gs, lis, log) }
		var timeout time.Duration
		if cfg.Sync.TriggerTimeoutSimS > 0 {
			timeout = clock.SimToReal(time.Duration(cfg.Sync.TriggerTimeoutSimS * float64(time.Second)))
		}
		gate, err := hubsync.NewGate(role, nil, srv, timeout, log)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		return gate, cleanup, nil
	}

	return nil, nil, fmt.Errorf("app: unknown role %q", role)
}
