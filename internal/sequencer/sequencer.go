// Package sequencer drives one controller's share of the board: per cycle it
// draws a direction for every level, swings the beams, lets the ball settle
// and swings everything back.
package sequencer

import (
	"fmt"
	"math"
	"time"

	"GaltonBoardController/internal/actuator"
	"GaltonBoardController/internal/bernoulli"
	"GaltonBoardController/internal/logx"
	"GaltonBoardController/internal/model"
)

// Phase is the sequencer's position inside a cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActuating
	PhaseSettling
	PhaseResetting
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActuating:
		return "actuating"
	case PhaseSettling:
		return "settling"
	case PhaseResetting:
		return "resetting"
	case PhaseTerminal:
		return "terminal"
	}
	return "unknown"
}

// Waiter is the timed suspension point between commanding and resetting.
// *simclock.Clock satisfies it; tests pass a no-op.
type Waiter interface {
	SleepSim(d time.Duration)
}

// Sequencer runs B cycles over one role's ordered actuator list. It is
// strictly sequential: beams move one at a time and cycles never overlap,
// because the physical motion is sequential.
type Sequencer struct {
	role    model.Role
	order   []string
	opening float64
	speed   int
	settle  time.Duration
	initial map[string]float64 // captured once at startup, read-only here

	src  *bernoulli.Source
	drv  actuator.Driver
	wait Waiter
	log  *logx.Logger

	phase  Phase
	cycles int
}

// CaptureInitialPositions reads every actuator's angle once. The returned
// map is the reference point for every later command and must not be
// refreshed mid-run.
func CaptureInitialPositions(drv actuator.Driver, order []string) (map[string]float64, error) {
	initial := make(map[string]float64, len(order))
	for _, id := range order {
		a, err := drv.Position(id)
		if err != nil {
			return nil, fmt.Errorf("capture position of %q: %w", id, err)
		}
		initial[id] = a
	}
	return initial, nil
}

func New(
	role model.Role,
	order []string,
	opening float64,
	speed int,
	settle time.Duration,
	initial map[string]float64,
	src *bernoulli.Source,
	drv actuator.Driver,
	wait Waiter,
	log *logx.Logger,
) (*Sequencer, error) {
	if len(order) == 0 {
		return nil, fmt.Errorf("sequencer: empty actuator order for role %q", role)
	}
	if opening <= 0 || opening > 180 {
		return nil, fmt.Errorf("sequencer: opening %.1f out of (0,180]", opening)
	}
	for _, id := range order {
		if _, ok := initial[id]; !ok {
			return nil, fmt.Errorf("sequencer: no initial position for %q", id)
		}
	}
	return &Sequencer{
		role:    role,
		order:   order,
		opening: opening,
		speed:   speed,
		settle:  settle,
		initial: initial,
		src:     src,
		drv:     drv,
		wait:    wait,
		log:     log,
	}, nil
}

// Phase reports where the sequencer currently is; cosmetic, for logs/status.
func (s *Sequencer) Phase() Phase { return s.phase }

// Run executes exactly balls cycles and terminates. Command failures are
// hardware faults: warned about and skipped, never retried, never fatal —
// the remaining beams still have to move.
func (s *Sequencer) Run(balls int) error {
	if balls <= 0 {
		return fmt.Errorf("sequencer: ball count %d must be > 0", balls)
	}
	s.log.Infof("RUN/START → role=%s motors=%v balls=%d opening=%.0f°", s.role, s.order, balls, s.opening)
	for ball := 1; ball <= balls; ball++ {
		s.cycle(ball)
	}
	s.phase = PhaseTerminal
	s.log.Infof("RUN/DONE → role=%s cycles=%d", s.role, s.cycles)
	return nil
}

func (s *Sequencer) cycle(ball int) {
	s.phase = PhaseActuating
	rowCount := 0
	for _, id := range s.order {
		right := s.src.Draw()
		rowCount++
		cmd := s.Command(id, rowCount, right)
		if err := s.drv.MoveTo(cmd.Actuator, cmd.Target, cmd.Speed, cmd.Path); err != nil {
			s.log.Warnf("MOVE/FAULT → ball=%d motor=%s target=%.0f: %v", ball, id, cmd.Target, err)
		}
	}

	s.phase = PhaseSettling
	s.wait.SleepSim(s.settle)

	s.phase = PhaseResetting
	for _, id := range s.order {
		if err := s.drv.MoveTo(id, s.initial[id], s.speed, model.PathShortest); err != nil {
			s.log.Warnf("RESET/FAULT → ball=%d motor=%s: %v", ball, id, err)
		}
	}

	s.phase = PhaseIdle
	s.cycles++
}

// Command builds the positioning order for one actuator given its row count
// (starting at 1 within this role's list) and the draw. The beam sends the
// ball right by turning right on even rows and left on odd rows.
func (s *Sequencer) Command(id string, rowCount int, right bool) model.ActuatorCommand {
	parity := (s.role.ParityStart() + rowCount) % 2
	moveRight := (right && parity == 0) || (!right && parity == 1)
	target := s.initial[id] - s.opening
	if moveRight {
		target = s.initial[id] + s.opening
	}
	return model.ActuatorCommand{
		Actuator: id,
		Target:   wrapDegrees(target),
		Speed:    s.speed,
		Path:     model.PathShortest,
	}
}

// wrapDegrees normalizes an angle into [0,360).
func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
