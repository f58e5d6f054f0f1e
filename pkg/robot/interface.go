// Package robot defines the hardware capabilities the behaviour core consumes
// and the adapters that implement them on top of raw peripheral drivers.
//
// This package follows the Interface Segregation Principle (ISP) by defining
// small, focused interfaces. Behaviours depend only on these capabilities; the
// pin, PWM and LED drivers underneath are injected and can be real or simulated.
package robot

import (
	"time"

	"github.com/teslashibe/go-sonarbot/pkg/clock"
)

// Switch reports the position of the physical mode switch.
type Switch interface {
	State() SwitchState
}

// DistanceSensor measures the distance to the nearest object on each side.
// Distance blocks until both sensors have been read.
type DistanceSensor interface {
	Distance() Distance
}

// Joints commands the robot's servo joints.
// SetAngle clamps out-of-range requests to the joint limits and logs a warning.
type Joints interface {
	SetAngle(name JointName, angle int)
	Limits(name JointName) Limits
}

// Eyes controls the robot's indicator lights.
// CrossFade blocks for the full duration of the transition.
type Eyes interface {
	SetColour(colour Colour)
	CrossFade(from, to Colour, duration time.Duration)
}

// Hardware bundles every capability the behaviours use.
// Both modes hold the same *Hardware; only the active mode touches it.
type Hardware struct {
	Eyes       Eyes
	Joints     Joints
	Sonar      DistanceSensor
	ModeSwitch Switch

	// Clock is the wait primitive for timed sequences.
	Clock clock.Sleeper
}

// Validate checks that every capability is present.
func (h *Hardware) Validate() error {
	if h == nil {
		return ErrMissingCapability
	}
	missing := ""
	switch {
	case h.Eyes == nil:
		missing = "eyes"
	case h.Joints == nil:
		missing = "joints"
	case h.Sonar == nil:
		missing = "sonar"
	case h.ModeSwitch == nil:
		missing = "mode switch"
	case h.Clock == nil:
		missing = "clock"
	}
	if missing != "" {
		return &CapabilityError{Name: missing}
	}
	return nil
}

// Ensure adapters implement their capabilities
var (
	_ Joints         = (*ServoJoints)(nil)
	_ Eyes           = (*LEDEyes)(nil)
	_ DistanceSensor = (*SonarArray)(nil)
	_ Switch         = (*PinSwitch)(nil)
)
