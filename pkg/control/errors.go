package control

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for invalid controller configuration.
var (
	// ErrInvalidRange is returned when a LinearMap input range is empty or inverted.
	ErrInvalidRange = errors.New("control: input min must be less than input max")

	// ErrInvalidTimestep is returned when a PID timestep is not positive.
	ErrInvalidTimestep = errors.New("control: timestep must be positive")

	// ErrInvalidSignalBounds is returned when the PID min signal exceeds the max signal.
	ErrInvalidSignalBounds = errors.New("control: min control signal exceeds max control signal")
)

// ConfigError reports a controller that cannot be built from its parameters.
type ConfigError struct {
	// Component is the controller being configured ("linear_map", "pid").
	Component string

	// Detail describes the offending values.
	Detail string

	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("%s: %v (%s)", e.Component, e.Err, e.Detail)
}

// Unwrap returns the underlying sentinel error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// clamp restricts v to the range [lo, hi]. NaN maps to the value in range
// nearest zero.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		v = 0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ordered returns a and b sorted ascending.
func ordered(a, b float64) (lo, hi float64) {
	if a > b {
		return b, a
	}
	return a, b
}
