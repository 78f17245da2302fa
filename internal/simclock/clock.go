package simclock

import (
	"time"
)

// Clock converts between wall time and an accelerated board time. With
// scale=1 it behaves like the real clock; a dry run with scale=60 turns the
// 5 s settle wait into ~83 ms.
type Clock struct {
	scale     float64
	startReal time.Time
	startSim  time.Time
}

func New(scale float64) *Clock {
	if scale <= 0 {
		scale = 1
	}
	return &Clock{
		scale:     scale,
		startReal: time.Now(),
		startSim:  time.Unix(0, 0),
	}
}

func (c *Clock) NowSim() time.Time {
	elapsedReal := time.Since(c.startReal)
	simNs := float64(elapsedReal.Nanoseconds()) * c.scale
	return c.startSim.Add(time.Duration(simNs))
}

// SleepSim blocks for the real-time equivalent of a board-time duration.
func (c *Clock) SleepSim(d time.Duration) {
	time.Sleep(c.SimToReal(d))
}

// SimToReal converts a board-time duration into the wall duration to wait.
// Never returns less than 1 ms so a large scale cannot busy-spin callers.
func (c *Clock) SimToReal(d time.Duration) time.Duration {
	if c.scale <= 0 {
		return d
	}
	realD := time.Duration(float64(d) / c.scale)
	if realD < time.Millisecond {
		return time.Millisecond
	}
	return realD
}

// Stamp formats the current board time for log prefixes.
func (c *Clock) Stamp() string {
	return c.NowSim().Format("15:04:05.000")
}
