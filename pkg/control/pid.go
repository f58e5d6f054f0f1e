package control

import (
	"fmt"
	"math"
	"time"
)

// DefaultWindupLimitFactor is the share of the signal bounds the integral term
// may reach before it is clamped.
const DefaultWindupLimitFactor = 0.8

// PIDParams configures a PIDController.
// Gains can be changed after construction; the timestep and signal bounds cannot.
type PIDParams struct {
	Kp float64 // Proportional gain
	Kd float64 // Derivative gain
	Ki float64 // Integral gain

	Timestep time.Duration // Fixed control period

	MinSignal float64
	MaxSignal float64

	// WindupLimitFactor scales the signal bounds into integral bounds.
	// Zero selects DefaultWindupLimitFactor, so a factor of exactly 0 cannot
	// be requested; 1.0 disables anti-windup.
	WindupLimitFactor float64
}

// String returns the parameters in a single log-friendly line.
func (p PIDParams) String() string {
	return fmt.Sprintf("Kp: %.2f, Kd: %.2f, Ki: %.2f, dt: %s, min: %.2f, max: %.2f, windup factor: %.2f",
		p.Kp, p.Kd, p.Ki, p.Timestep, p.MinSignal, p.MaxSignal, p.WindupLimitFactor)
}

// Gains groups the three live-tunable PID gains.
type Gains struct {
	Kp float64
	Kd float64
	Ki float64
}

// PIDController is an incremental PID controller with integral anti-windup.
// It is not safe for concurrent use; it is driven from a single control loop.
type PIDController struct {
	params          PIDParams
	timestepSeconds float64

	errorIntegral float64
	previousError float64
}

// NewPIDController builds a controller. It fails with a *ConfigError when the
// timestep is not positive or the signal bounds are inverted.
func NewPIDController(params PIDParams) (*PIDController, error) {
	if params.Timestep <= 0 {
		return nil, &ConfigError{Component: "pid", Detail: fmt.Sprintf("timestep %s", params.Timestep), Err: ErrInvalidTimestep}
	}
	if params.MinSignal > params.MaxSignal {
		return nil, &ConfigError{
			Component: "pid",
			Detail:    fmt.Sprintf("signal [%g, %g]", params.MinSignal, params.MaxSignal),
			Err:       ErrInvalidSignalBounds,
		}
	}
	if params.WindupLimitFactor == 0 {
		params.WindupLimitFactor = DefaultWindupLimitFactor
	}

	return &PIDController{
		params:          params,
		timestepSeconds: params.Timestep.Seconds(),
	}, nil
}

// ControlSignal runs one control step and returns the signal clamped to
// [MinSignal, MaxSignal]. It must be called once per timestep.
//
// Terms with a zero gain are left out, so an overflowing error never turns
// into 0*Inf. A signal that is still NaN (opposing infinite terms) clamps to
// the bound nearest zero.
func (c *PIDController) ControlSignal(currentState, targetState float64) float64 {
	currentError := targetState - currentState

	errorDerivative := (currentError - c.previousError) / c.timestepSeconds

	c.errorIntegral += currentError * c.timestepSeconds
	if math.IsNaN(c.errorIntegral) {
		c.errorIntegral = 0
	}

	if c.params.WindupLimitFactor != 1.0 {
		c.applyAntiWindup()
	}

	var signal float64
	if c.params.Kp != 0 {
		signal += c.params.Kp * currentError
	}
	if c.params.Kd != 0 {
		signal += c.params.Kd * errorDerivative
	}
	if c.params.Ki != 0 {
		signal += c.params.Ki * c.errorIntegral
	}

	c.previousError = currentError

	return clamp(signal, c.params.MinSignal, c.params.MaxSignal)
}

// applyAntiWindup clamps the integral so its contribution stays within a
// fraction of the signal bounds. Skipped while Ki is zero: the bounds divide by Ki.
func (c *PIDController) applyAntiWindup() {
	if c.params.Ki == 0 {
		return
	}
	lo, hi := ordered(
		c.params.WindupLimitFactor*c.params.MinSignal/c.params.Ki,
		c.params.WindupLimitFactor*c.params.MaxSignal/c.params.Ki,
	)
	c.errorIntegral = clamp(c.errorIntegral, lo, hi)
}

// UpdateKp sets the proportional gain.
func (c *PIDController) UpdateKp(kp float64) {
	c.params.Kp = kp
}

// UpdateKd sets the derivative gain.
func (c *PIDController) UpdateKd(kd float64) {
	c.params.Kd = kd
}

// UpdateKi sets the integral gain.
//
// When the gain increases, the accumulated integral is scaled down by the same
// ratio so Ki*integral, and therefore the next signal, does not jump. Setting
// Ki to zero discards the integral. A decrease leaves the integral untouched.
func (c *PIDController) UpdateKi(ki float64) {
	switch {
	case ki > c.params.Ki && c.errorIntegral != 0:
		if c.params.Ki == 0 {
			// Old contribution was 0*integral; keep it at zero.
			c.errorIntegral = 0
		} else {
			c.errorIntegral /= ki / c.params.Ki
		}
	case ki == 0:
		c.errorIntegral = 0
	}
	c.params.Ki = ki
}

// SetGains applies all three gains through the individual update operations.
func (c *PIDController) SetGains(g Gains) {
	c.UpdateKp(g.Kp)
	c.UpdateKd(g.Kd)
	c.UpdateKi(g.Ki)
}

// Gains returns the current gains.
func (c *PIDController) Gains() Gains {
	return Gains{Kp: c.params.Kp, Kd: c.params.Kd, Ki: c.params.Ki}
}

// Params returns a snapshot of the current parameters.
func (c *PIDController) Params() PIDParams {
	return c.params
}

// Timestep returns the fixed control period.
func (c *PIDController) Timestep() time.Duration {
	return c.params.Timestep
}

// IntegralContribution returns Ki times the accumulated error integral.
func (c *PIDController) IntegralContribution() float64 {
	if c.params.Ki == 0 {
		return 0
	}
	return c.params.Ki * c.errorIntegral
}
