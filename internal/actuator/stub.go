package actuator

import (
	"fmt"
	"sync"

	"GaltonBoardController/internal/logx"
)

// Stub is an in-memory driver: positions live in a map, moves are logged.
// Used by `galton run --dry-run` and by tests that need a full controller
// pass without hardware.
type Stub struct {
	mu  sync.Mutex
	log *logx.Logger
	pos map[string]float64

	Moves  []Move // every MoveTo, in order
	Sweeps []Move // every Sweep, in order (Angle = relative degrees)
}

// Move records one driver call for inspection.
type Move struct {
	Actuator string
	Angle    float64
	Speed    int
	Path     string
}

func NewStub(log *logx.Logger, initial map[string]float64) *Stub {
	pos := make(map[string]float64, len(initial))
	for id, a := range initial {
		pos[id] = a
	}
	return &Stub{log: log, pos: pos}
}

func (s *Stub) Position(id string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.pos[id]
	if !ok {
		return 0, fmt.Errorf("actuator: unknown motor %q", id)
	}
	return a, nil
}

func (s *Stub) MoveTo(id string, angle float64, speed int, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pos[id]; !ok {
		return fmt.Errorf("actuator: unknown motor %q", id)
	}
	s.pos[id] = angle
	s.Moves = append(s.Moves, Move{Actuator: id, Angle: angle, Speed: speed, Path: path})
	if s.log != nil {
		s.log.Infof("STUB/MOVE → motor=%s target=%.0f speed=%d path=%q", id, angle, speed, path)
	}
	return nil
}

// MoveCount reports how many MoveTo calls the stub has seen.
func (s *Stub) MoveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Moves)
}

// SweepCount reports how many Sweep calls the stub has seen.
func (s *Stub) SweepCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Sweeps)
}

func (s *Stub) Sweep(id string, degrees float64, speed int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sweeps = append(s.Sweeps, Move{Actuator: id, Angle: degrees, Speed: speed})
	if s.log != nil {
		s.log.Infof("STUB/SWEEP → motor=%s degrees=%.0f speed=%d", id, degrees, speed)
	}
	return nil
}
