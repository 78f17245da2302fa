// Package actuator defines the hardware surface the sequencer drives and a
// stub driver for dry runs. Real hub drivers live outside this repo.
package actuator

// Driver is the minimal surface of one hub's motors.
type Driver interface {
	// Position reads the current absolute angle of an actuator in [0,360).
	Position(id string) (float64, error)
	// MoveTo runs an actuator to an absolute angle at the given speed,
	// following the pathing hint (model.PathShortest).
	MoveTo(id string, angle float64, speed int, path string) error
}

// Sweeper is implemented by drivers whose motors can run through a relative
// sweep. The primary's feed pump needs one full rotation, not a position.
type Sweeper interface {
	Sweep(id string, degrees float64, speed int) error
}
