// Sonarbot - dancing and object-tracking robot on a simulated body
//
// The mode switch picks Dance (on) or Tracking (off). Both modes react to the
// two sonars; the simulated world moves an obstacle around and flips the switch.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/teslashibe/go-sonarbot/internal/config"
	"github.com/teslashibe/go-sonarbot/internal/log"
	"github.com/teslashibe/go-sonarbot/pkg/sim"
	"github.com/teslashibe/go-sonarbot/pkg/supervisor"
)

func main() {
	os.Exit(run())
}

func run() int {
	envFile := flag.String("env", config.DefaultEnvFile, "Path to an env file with SONARBOT_* settings")
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	cfg, err := config.LoadFile(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		return 1
	}
	if *debug {
		cfg.LogLevel = "debug"
	}

	var sinks []io.Writer
	if cfg.LogSerial != "" {
		port, err := log.OpenSerial(cfg.LogSerial, cfg.LogBaud)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			return 1
		}
		defer port.Close()
		sinks = append(sinks, port)
	}
	log.Init(cfg.LogLevel, sinks...)
	session := uuid.New().String()
	log.Info("sonarbot starting",
		"session", session,
		"speedup", cfg.SimSpeedup,
		"switch_period", cfg.SimSwitchPeriod,
		"serial", cfg.LogSerial)
	logger := log.With("session", session)

	world := sim.NewWorld(simConfig(cfg))
	bot := sim.NewRobot(world, logger)

	supCfg := supervisor.DefaultConfig()
	supCfg.Logger = logger

	sup, err := supervisor.New(bot.Hardware(world), supCfg)
	if err != nil {
		logger.Error("startup failed", "error", err)
		return 1
	}
	applyGainOverrides(sup, cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runErr := sup.Run(ctx)

	sup.Park()
	logger.Info("stopped", "virtual_time", world.Elapsed(), "steps", sup.Steps())

	if runErr != nil {
		logger.Error("control loop failed", "error", runErr)
		return 1
	}
	return 0
}

func simConfig(cfg config.Config) sim.Config {
	sc := sim.DefaultConfig()
	sc.Speedup = cfg.SimSpeedup
	sc.SwitchPeriod = cfg.SimSwitchPeriod
	return sc
}

// applyGainOverrides retunes tracking with any gains set in the environment.
func applyGainOverrides(sup *supervisor.Supervisor, cfg config.Config) {
	if cfg.TrackingKp == nil && cfg.TrackingKd == nil && cfg.TrackingKi == nil {
		return
	}
	gains := sup.Tracking().Gains()
	if cfg.TrackingKp != nil {
		gains.Kp = *cfg.TrackingKp
	}
	if cfg.TrackingKd != nil {
		gains.Kd = *cfg.TrackingKd
	}
	if cfg.TrackingKi != nil {
		gains.Ki = *cfg.TrackingKi
	}
	sup.Tracking().SetGains(gains)
}
