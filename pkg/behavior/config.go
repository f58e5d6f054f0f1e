package behavior

import (
	"time"

	"github.com/teslashibe/go-sonarbot/pkg/control"
)

// EyeTransitionTime is the cross-fade time into every sub-state colour.
const EyeTransitionTime = 500 * time.Millisecond

// DanceConfig holds Dance mode settings.
type DanceConfig struct {
	Thresholds Thresholds

	// Sweep period at Thresholds.MinCM and Thresholds.MaxCM. Readings in
	// between are interpolated linearly. Either end may be the faster one.
	TempoAtMin time.Duration
	TempoAtMax time.Duration

	// ArmOffset is added to the mirrored waist angle for both arms while dancing.
	ArmOffset int

	// GuardArmAngle is the arm pose taken when something is too close.
	GuardArmAngle int

	EyeTransition time.Duration

	// Mode entry flashes red and light blue FlashCount times.
	FlashCount    int
	FlashInterval time.Duration

	// WithinRange entry pulses blue to red PulseCount times.
	PulseCount    int
	PulseDuration time.Duration
}

// DefaultDanceConfig returns the stock Dance settings.
func DefaultDanceConfig() DanceConfig {
	return DanceConfig{
		Thresholds:    Thresholds{MinCM: 25, MaxCM: 75},
		TempoAtMin:    500 * time.Millisecond,
		TempoAtMax:    3000 * time.Millisecond,
		ArmOffset:     -15,
		GuardArmAngle: -30,
		EyeTransition: EyeTransitionTime,
		FlashCount:    5,
		FlashInterval: 100 * time.Millisecond,
		PulseCount:    3,
		PulseDuration: 100 * time.Millisecond,
	}
}

// TrackingConfig holds Tracking mode settings.
type TrackingConfig struct {
	Thresholds Thresholds

	// ArmAngle is held by both arms for the whole mode.
	ArmAngle int

	// DeadBandCM is the left/right difference below which the waist holds still.
	DeadBandCM float64

	// PID turns the left/right difference into a waist increment in degrees.
	PID control.PIDParams

	EyeTransition time.Duration
}

// DefaultTrackingConfig returns the stock Tracking settings.
func DefaultTrackingConfig() TrackingConfig {
	return TrackingConfig{
		Thresholds: Thresholds{MinCM: 15, MaxCM: 85},
		ArmAngle:   -50,
		DeadBandCM: 5,
		PID: control.PIDParams{
			Kp:        1.5,
			Kd:        0,
			Ki:        0,
			Timestep:  50 * time.Millisecond,
			MinSignal: -10,
			MaxSignal: 10,
		},
		EyeTransition: EyeTransitionTime,
	}
}
