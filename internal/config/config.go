// Package config loads go-sonarbot runtime configuration from the environment.
//
// Values come from process env vars, optionally seeded from a .env file in the
// working directory. Anything unset falls back to the defaults below.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default runtime configuration.
const (
	DefaultLogLevel        = "info"
	DefaultSimSpeedup      = 1.0
	DefaultSimSwitchPeriod = 45 * time.Second
	DefaultEnvFile         = ".env"
	envPrefix              = "SONARBOT_"
)

// Config holds everything cmd/sonarbot needs at startup.
type Config struct {
	// Logging
	LogLevel  string
	LogSerial string // Serial port to mirror logs to; empty disables
	LogBaud   int

	// Tracking gain overrides; nil keeps the built-in gain.
	TrackingKp *float64
	TrackingKd *float64
	TrackingKi *float64

	// Simulation
	SimSpeedup      float64       // Virtual seconds per wall-clock second; 0 runs flat out
	SimSwitchPeriod time.Duration // How often the simulated switch flips
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:        DefaultLogLevel,
		SimSpeedup:      DefaultSimSpeedup,
		SimSwitchPeriod: DefaultSimSwitchPeriod,
	}
}

// LoadFile is Load with an explicit env file path. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if v := env("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	cfg.LogSerial = env("LOG_SERIAL")
	if cfg.LogBaud, err = intEnv("LOG_BAUD", 0); err != nil {
		return Config{}, err
	}

	if cfg.TrackingKp, err = floatPtrEnv("TRACKING_KP"); err != nil {
		return Config{}, err
	}
	if cfg.TrackingKd, err = floatPtrEnv("TRACKING_KD"); err != nil {
		return Config{}, err
	}
	if cfg.TrackingKi, err = floatPtrEnv("TRACKING_KI"); err != nil {
		return Config{}, err
	}

	if v := env("SIM_SPEEDUP"); v != "" {
		f, perr := strconv.ParseFloat(v, 64)
		if perr != nil || f < 0 {
			return Config{}, fmt.Errorf("%sSIM_SPEEDUP: invalid value %q", envPrefix, v)
		}
		cfg.SimSpeedup = f
	}
	if v := env("SIM_SWITCH_PERIOD"); v != "" {
		d, perr := time.ParseDuration(v)
		if perr != nil || d <= 0 {
			return Config{}, fmt.Errorf("%sSIM_SWITCH_PERIOD: invalid duration %q", envPrefix, v)
		}
		cfg.SimSwitchPeriod = d
	}

	return cfg, nil
}

func env(name string) string {
	return strings.TrimSpace(os.Getenv(envPrefix + name))
}

func intEnv(name string, def int) (int, error) {
	v := env(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s%s: %w", envPrefix, name, err)
	}
	return n, nil
}

func floatPtrEnv(name string) (*float64, error) {
	v := env(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%s%s: %w", envPrefix, name, err)
	}
	if f < 0 {
		return nil, fmt.Errorf("%s%s: gain must not be negative, got %g", envPrefix, name, f)
	}
	return &f, nil
}
