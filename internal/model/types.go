package model

import "fmt"

// Role identifies which physical controller instance is running. It selects
// the actuator ordering list, the row-parity offset and the sync behavior.
type Role string

const (
	RolePrimary   Role = "primary"   // hosts the feed motor, starts unprompted
	RoleSecondary Role = "secondary" // waits for the external trigger
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePrimary, RoleSecondary:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q (want %q or %q)", s, RolePrimary, RoleSecondary)
	}
}

// ParityStart is the offset added to the per-cycle row count before taking
// mod 2. The primary owns the upper rows of the board, the secondary
// continues the row numbering below it.
func (r Role) ParityStart() int {
	if r == RolePrimary {
		return 1
	}
	return 0
}

// PathShortest asks the driver to reach the target in the shorter
// rotational direction.
const PathShortest = "shortest path"

// ActuatorCommand is one absolute positioning order for one actuator.
type ActuatorCommand struct {
	Actuator string
	Target   float64 // degrees, [0,360)
	Speed    int
	Path     string
}

// TrialResult maps landing bin index (0..N) to the number of balls that
// landed there during one trial. Index == number of "right" outcomes.
type TrialResult []int

// Balls is the total number of balls accounted for by the trial.
func (t TrialResult) Balls() int {
	sum := 0
	for _, c := range t {
		sum += c
	}
	return sum
}

// BinStats is the cross-trial summary for a single bin.
type BinStats struct {
	Bin    int
	Counts []int // one entry per trial, in trial order
	Mean   float64
	Min    int
	Max    int
}

// AggregateStats holds one BinStats per bin, ordered 0..N.
type AggregateStats []BinStats
