// Command galton runs the Galton board either as a statistical simulation or
// as one of the two physical hub controllers.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"GaltonBoardController/internal/actuator"
	"GaltonBoardController/internal/app"
	"GaltonBoardController/internal/config"
	"GaltonBoardController/internal/hubsync"
	"GaltonBoardController/internal/logx"
	"GaltonBoardController/internal/model"
	"GaltonBoardController/internal/simclock"

	"github.com/rs/xid"
	"github.com/spf13/cobra"
)

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt64(key string, def int64) int64 {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return i
}

// loadConfig reads the JSON config; a missing default file falls back to the
// built-in sample-build constants.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = getenv("CONFIG_PATH", "config.json")
		if _, err := os.Stat(path); err != nil {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

func newRand() *rand.Rand {
	seed := getenvInt64("SEED", time.Now().UnixNano())
	return rand.New(rand.NewSource(seed))
}

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "galton",
	Short: "Drives a two-hub LEGO Galton board, or simulates it in software.",
	Long: `galton runs a multi-level probabilistic ball-routing board. ` +
		`"sim" estimates how full each bin gets so you can size the build; ` +
		`"run" drives one hub's motors; "trigger" releases a waiting secondary hub.`,
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run bin-count simulations and print per-bin statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgPath)
		if err != nil {
			return err
		}
		clock := simclock.New(cfg.Simulation.TimeScale)
		log := logx.New("sim-"+xid.New().String(), clock)
		return app.RunSimulation(cfg, log, newRand(), os.Stdout)
	},
}

var (
	runRole   string
	runDryRun bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one hub's share of the physical board",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgPath)
		if err != nil {
			return err
		}
		roleStr := runRole
		if !cmd.Flags().Changed("role") {
			roleStr = getenv("ROLE", runRole)
		}
		role, err := model.ParseRole(roleStr)
		if err != nil {
			return err
		}
		if addr := os.Getenv("GRPC_ADDR"); addr != "" {
			cfg.Sync.ListenAddr = addr
		}

		clock := simclock.New(cfg.Simulation.TimeScale)
		log := logx.New("hub-"+string(role), clock)
		display := &app.LogDisplay{Log: log}

		if !runDryRun {
			// Hardware drivers are wired by the deployment, not this CLI.
			return fmt.Errorf("no hub driver available; use --dry-run to exercise the full cycle on the stub driver")
		}
		order, err := cfg.OrderFor(role)
		if err != nil {
			return err
		}
		initial := map[string]float64{cfg.Motor.FeedMotor: 0}
		for _, id := range order {
			initial[id] = 0
		}
		drv := actuator.NewStub(log, initial)

		return app.RunController(context.Background(), cfg, role, drv, clock, log, newRand(), display)
	},
}

var (
	triggerAddr string
	triggerNote string
)

var triggerCmd = &cobra.Command{
	Use:   "trigger",
	Short: "Fire a waiting secondary hub's start trigger",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return hubsync.Fire(ctx, triggerAddr, "galton-cli-"+xid.New().String(), triggerNote)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config.json (default $CONFIG_PATH or ./config.json)")
	runCmd.Flags().StringVar(&runRole, "role", string(model.RolePrimary), "controller role: primary or secondary")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "use the in-memory stub driver instead of hub motors")
	triggerCmd.Flags().StringVar(&triggerAddr, "addr", "127.0.0.1:9031", "secondary hub trigger endpoint")
	triggerCmd.Flags().StringVar(&triggerNote, "note", "", "free-form note logged by the secondary")
	rootCmd.AddCommand(simCmd, runCmd, triggerCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
