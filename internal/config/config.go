package config

import (
	"encoding/json"
	"fmt"
	"os"

	"GaltonBoardController/internal/model"
)

// ===== Top-level =====

type Config struct {
	Probability float64    `json:"probability"` // per-level right bias, 0..1
	Levels      int        `json:"levels"`      // N
	Balls       Balls      `json:"balls"`
	Motor       Motor      `json:"motor"`
	MotorOrder  MotorOrder `json:"motor_order"`
	Simulation  Simulation `json:"simulation"`
	Sync        Sync       `json:"sync"`
	Recording   Recording  `json:"recording"`
}

type Balls struct {
	Physical   int `json:"physical"`   // cycles per controller in deployment mode
	Simulation int `json:"simulation"` // balls per simulated trial
}

type Motor struct {
	Speed          int     `json:"speed"`
	OpeningDegrees float64 `json:"opening_degrees"`
	SettleSimS     float64 `json:"settle_sim_s"` // wait after each cycle's commands
	FeedMotor      string  `json:"feed_motor"`   // primary-only ball pump
}

// MotorOrder lists each role's actuators top to bottom; together the two
// lists cover one consistent row numbering across the whole board.
type MotorOrder struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

type Simulation struct {
	Trials    int     `json:"trials"`
	TimeScale float64 `json:"time_scale"` // board seconds per real second
}

type Sync struct {
	ListenAddr         string  `json:"listen_addr"`           // secondary's trigger endpoint
	TriggerTimeoutSimS float64 `json:"trigger_timeout_sim_s"` // 0 = wait forever
}

type Recording struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"` // empty = generated name
}

// ===== Loader + defaults =====

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := unset()
	if err := json.Unmarshal(b, c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	return c, nil
}

// Default constructs a Config without a file, defaults only.
func Default() *Config {
	c := unset()
	c.applyDefaults()
	return c
}

// unset marks probability and levels with sentinels so that an explicit 0 in
// the file (a legitimate degenerate board) survives defaulting.
func unset() *Config {
	return &Config{Probability: -1, Levels: -1}
}

// Defaults follow the sample two-hub build: ten levels split five per hub.
func (c *Config) applyDefaults() {
	if c.Probability < 0 {
		c.Probability = 0.1
	}
	if c.Levels < 0 {
		c.Levels = 10
	}
	if c.Balls.Physical == 0 {
		c.Balls.Physical = 50
	}
	if c.Balls.Simulation == 0 {
		c.Balls.Simulation = 100
	}
	if c.Motor.Speed == 0 {
		c.Motor.Speed = 10
	}
	if c.Motor.OpeningDegrees == 0 {
		c.Motor.OpeningDegrees = 30
	}
	if c.Motor.SettleSimS == 0 {
		c.Motor.SettleSimS = 5
	}
	if c.Motor.FeedMotor == "" {
		c.Motor.FeedMotor = "A"
	}
	if len(c.MotorOrder.Primary) == 0 {
		c.MotorOrder.Primary = []string{"C", "E", "B", "D", "F"}
	}
	if len(c.MotorOrder.Secondary) == 0 {
		c.MotorOrder.Secondary = []string{"A", "C", "E", "B", "D"}
	}
	if c.Simulation.Trials == 0 {
		c.Simulation.Trials = 10
	}
	if c.Simulation.TimeScale == 0 {
		c.Simulation.TimeScale = 1
	}
	if c.Sync.ListenAddr == "" {
		c.Sync.ListenAddr = "127.0.0.1:9031"
	}
}

// ===== Validation =====

// Validate covers everything both modes depend on. All failures are fatal
// configuration errors; nothing here is re-checked per draw or per cycle.
func (c *Config) Validate() error {
	if c.Probability < 0 || c.Probability > 1 {
		return fmt.Errorf("config: probability %.3f out of [0,1]", c.Probability)
	}
	if c.Levels < 0 {
		return fmt.Errorf("config: levels %d must be >= 0", c.Levels)
	}
	if c.Balls.Physical <= 0 {
		return fmt.Errorf("config: balls.physical %d must be > 0", c.Balls.Physical)
	}
	if c.Balls.Simulation <= 0 {
		return fmt.Errorf("config: balls.simulation %d must be > 0", c.Balls.Simulation)
	}
	if c.Simulation.Trials <= 0 {
		return fmt.Errorf("config: simulation.trials %d must be > 0", c.Simulation.Trials)
	}
	if c.Motor.OpeningDegrees <= 0 || c.Motor.OpeningDegrees > 180 {
		return fmt.Errorf("config: motor.opening_degrees %.1f out of (0,180], shortest-path targets need it", c.Motor.OpeningDegrees)
	}
	if c.Motor.SettleSimS < 0 {
		return fmt.Errorf("config: motor.settle_sim_s %.1f must be >= 0", c.Motor.SettleSimS)
	}
	return nil
}

// OrderFor returns the role's actuator list, top to bottom. An empty list is
// a configuration error: a controller with no actuators has nothing to run.
func (c *Config) OrderFor(role model.Role) ([]string, error) {
	var order []string
	switch role {
	case model.RolePrimary:
		order = c.MotorOrder.Primary
	case model.RoleSecondary:
		order = c.MotorOrder.Secondary
	default:
		return nil, fmt.Errorf("config: no motor order for role %q", role)
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("config: empty motor order for role %q", role)
	}
	return order, nil
}
