package sequencer_test

import (
	"fmt"
	"testing"
	"time"

	"GaltonBoardController/internal/bernoulli"
	"GaltonBoardController/internal/logx"
	"GaltonBoardController/internal/model"
	"GaltonBoardController/internal/sequencer"
	"GaltonBoardController/internal/simclock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDriver records every command and can fail selected motors.
type fakeDriver struct {
	pos    map[string]float64
	moves  []model.ActuatorCommand
	failOn map[string]bool
}

func (d *fakeDriver) Position(id string) (float64, error) {
	a, ok := d.pos[id]
	if !ok {
		return 0, fmt.Errorf("unknown motor %q", id)
	}
	return a, nil
}

func (d *fakeDriver) MoveTo(id string, angle float64, speed int, path string) error {
	if d.failOn[id] {
		return fmt.Errorf("motor %q stalled", id)
	}
	d.moves = append(d.moves, model.ActuatorCommand{Actuator: id, Target: angle, Speed: speed, Path: path})
	return nil
}

// fakeWait counts settle waits without sleeping.
type fakeWait struct {
	calls int
	last  time.Duration
}

func (w *fakeWait) SleepSim(d time.Duration) {
	w.calls++
	w.last = d
}

// script replays fixed uniform values, cycling when exhausted.
type script struct {
	vals []float64
	i    int
}

func (s *script) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func testLogger() *logx.Logger {
	return logx.New("test", simclock.New(1))
}

func newSequencer(t *testing.T, role model.Role, order []string, initial map[string]float64, drv *fakeDriver, rnd bernoulli.Uniform, wait sequencer.Waiter) *sequencer.Sequencer {
	t.Helper()
	src, err := bernoulli.New(0.5, rnd)
	require.NoError(t, err)
	seq, err := sequencer.New(role, order, 30, 10, 5*time.Second, initial, src, drv, wait, testLogger())
	require.NoError(t, err)
	return seq
}

func TestDirectionTruthTable(t *testing.T) {
	initial := map[string]float64{"C": 100, "E": 100}
	drv := &fakeDriver{pos: initial}

	// Primary rows: row 1 -> parity 0, row 2 -> parity 1.
	// Secondary rows: row 1 -> parity 1, row 2 -> parity 0.
	cases := []struct {
		role      model.Role
		rowCount  int
		right     bool
		moveRight bool
	}{
		{model.RolePrimary, 1, true, true},    // right, parity 0
		{model.RolePrimary, 2, true, false},   // right, parity 1
		{model.RolePrimary, 1, false, false},  // left, parity 0
		{model.RolePrimary, 2, false, true},   // left, parity 1
		{model.RoleSecondary, 1, true, false}, // right, parity 1
		{model.RoleSecondary, 2, true, true},  // right, parity 0
	}
	for _, tc := range cases {
		seq := newSequencer(t, tc.role, []string{"C", "E"}, initial, drv, &script{vals: []float64{0}}, &fakeWait{})
		cmd := seq.Command("C", tc.rowCount, tc.right)
		want := 70.0 // initial - opening
		if tc.moveRight {
			want = 130 // initial + opening
		}
		assert.Equal(t, want, cmd.Target, "role=%s row=%d right=%v", tc.role, tc.rowCount, tc.right)
		assert.Equal(t, model.PathShortest, cmd.Path)
		assert.Equal(t, 10, cmd.Speed)
	}
}

func TestTargetsStayInRange(t *testing.T) {
	initial := map[string]float64{"C": 350, "E": 10}
	drv := &fakeDriver{pos: initial}
	seq := newSequencer(t, model.RolePrimary, []string{"C", "E"}, initial, drv, &script{vals: []float64{0}}, &fakeWait{})

	// 350 + 30 wraps over zero, 10 - 30 wraps under it.
	cmd := seq.Command("C", 1, true)
	assert.Equal(t, 20.0, cmd.Target)

	cmd = seq.Command("E", 1, false)
	assert.Equal(t, 340.0, cmd.Target)

	for _, right := range []bool{true, false} {
		for row := 1; row <= 2; row++ {
			for _, id := range []string{"C", "E"} {
				c := seq.Command(id, row, right)
				assert.GreaterOrEqual(t, c.Target, 0.0)
				assert.Less(t, c.Target, 360.0)
			}
		}
	}
}

func TestRunEmitsCommandsThenSettlesThenResets(t *testing.T) {
	initial := map[string]float64{"A": 90, "C": 180}
	drv := &fakeDriver{pos: initial}
	wait := &fakeWait{}
	// Every draw is true (0.0 < 0.5).
	seq := newSequencer(t, model.RoleSecondary, []string{"A", "C"}, initial, drv, &script{vals: []float64{0}}, wait)

	require.NoError(t, seq.Run(3))

	// Per cycle: 2 actuation commands + 2 resets.
	require.Len(t, drv.moves, 12)
	assert.Equal(t, 3, wait.calls)
	assert.Equal(t, 5*time.Second, wait.last)
	assert.Equal(t, sequencer.PhaseTerminal, seq.Phase())

	// Cycle 1: secondary row 1 has parity 1, so a rightward draw moves the
	// beam left; row 2 has parity 0 and moves right.
	assert.Equal(t, model.ActuatorCommand{Actuator: "A", Target: 60, Speed: 10, Path: model.PathShortest}, drv.moves[0])
	assert.Equal(t, model.ActuatorCommand{Actuator: "C", Target: 210, Speed: 10, Path: model.PathShortest}, drv.moves[1])

	// Then both reset to their captured initial positions.
	assert.Equal(t, model.ActuatorCommand{Actuator: "A", Target: 90, Speed: 10, Path: model.PathShortest}, drv.moves[2])
	assert.Equal(t, model.ActuatorCommand{Actuator: "C", Target: 180, Speed: 10, Path: model.PathShortest}, drv.moves[3])
}

func TestHardwareFaultDoesNotAbortTheRun(t *testing.T) {
	initial := map[string]float64{"A": 0, "B": 0}
	drv := &fakeDriver{pos: initial, failOn: map[string]bool{"B": true}}
	seq := newSequencer(t, model.RolePrimary, []string{"A", "B"}, initial, drv, &script{vals: []float64{0}}, &fakeWait{})

	require.NoError(t, seq.Run(4))

	// Motor A still got its command and reset every cycle.
	count := 0
	for _, m := range drv.moves {
		assert.Equal(t, "A", m.Actuator)
		count++
	}
	assert.Equal(t, 8, count)
	assert.Equal(t, sequencer.PhaseTerminal, seq.Phase())
}

func TestNewValidation(t *testing.T) {
	src, err := bernoulli.New(0.5, &script{vals: []float64{0}})
	require.NoError(t, err)
	drv := &fakeDriver{pos: map[string]float64{"A": 0}}
	log := testLogger()

	_, err = sequencer.New(model.RolePrimary, nil, 30, 10, time.Second, map[string]float64{}, src, drv, &fakeWait{}, log)
	assert.Error(t, err, "empty order")

	_, err = sequencer.New(model.RolePrimary, []string{"A"}, 0, 10, time.Second, map[string]float64{"A": 0}, src, drv, &fakeWait{}, log)
	assert.Error(t, err, "zero opening")

	_, err = sequencer.New(model.RolePrimary, []string{"A"}, 200, 10, time.Second, map[string]float64{"A": 0}, src, drv, &fakeWait{}, log)
	assert.Error(t, err, "opening beyond shortest-path range")

	_, err = sequencer.New(model.RolePrimary, []string{"A", "B"}, 30, 10, time.Second, map[string]float64{"A": 0}, src, drv, &fakeWait{}, log)
	assert.Error(t, err, "missing initial position")
}

func TestRunRejectsNonPositiveBallCount(t *testing.T) {
	initial := map[string]float64{"A": 0}
	drv := &fakeDriver{pos: initial}
	seq := newSequencer(t, model.RolePrimary, []string{"A"}, initial, drv, &script{vals: []float64{0}}, &fakeWait{})
	assert.Error(t, seq.Run(0))
}

func TestCaptureInitialPositions(t *testing.T) {
	drv := &fakeDriver{pos: map[string]float64{"A": 12, "B": 340}}

	got, err := sequencer.CaptureInitialPositions(drv, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 12, "B": 340}, got)

	_, err = sequencer.CaptureInitialPositions(drv, []string{"A", "Z"})
	assert.Error(t, err)
}
