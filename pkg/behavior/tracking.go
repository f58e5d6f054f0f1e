package behavior

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/teslashibe/go-sonarbot/pkg/control"
	"github.com/teslashibe/go-sonarbot/pkg/movement"
	"github.com/teslashibe/go-sonarbot/pkg/robot"
)

// TrackingMode turns the waist to face the nearest object, using the
// difference between the left and right sonar readings as the error.
type TrackingMode struct {
	*Mode

	cfg        TrackingConfig
	pid        *control.PIDController
	waistAngle int
}

// NewTracking builds Tracking mode and enters its TooClose sub-state.
func NewTracking(hw *robot.Hardware, cfg TrackingConfig, logger *slog.Logger) (*TrackingMode, error) {
	pid, err := control.NewPIDController(cfg.PID)
	if err != nil {
		return nil, fmt.Errorf("tracking pid: %w", err)
	}

	t := &TrackingMode{cfg: cfg, pid: pid}
	m, err := newMode("TrackingMode", hw, cfg.Thresholds, robot.Green, cfg.EyeTransition,
		map[Band]behaviour{
			TooClose:    {colour: robot.Off},
			WithinRange: {colour: robot.Red, run: t.track},
			OutOfRange:  {colour: robot.LightBlue},
		}, logger)
	if err != nil {
		return nil, err
	}
	t.Mode = m
	m.onEnter = t.pose
	m.onSubStateEnter = t.centreWaist
	m.start()
	return t, nil
}

// SetGains retunes the controller. Gains are applied through the individual
// update operations so the integral is rescaled consistently.
func (t *TrackingMode) SetGains(g control.Gains) {
	t.pid.SetGains(g)
	t.logger.Info("tracking gains updated", "kp", g.Kp, "kd", g.Kd, "ki", g.Ki)
}

// Gains returns the controller gains.
func (t *TrackingMode) Gains() control.Gains {
	return t.pid.Gains()
}

// WaistAngle returns the last commanded waist angle.
func (t *TrackingMode) WaistAngle() int {
	return t.waistAngle
}

func (t *TrackingMode) pose() {
	t.showBaseline()
	movement.SetBothArmsToAngle(t.hw.Joints, t.cfg.ArmAngle)
	t.setWaistAngle(0)
}

func (t *TrackingMode) centreWaist() {
	t.setWaistAngle(0)
}

func (t *TrackingMode) track() {
	d := t.hw.Sonar.Distance()
	difference := d.Right - d.Left

	if math.IsNaN(difference) {
		t.logger.Warn("unusable sonar reading, holding waist", "distance", d.String())
	} else {
		increment := int(t.pid.ControlSignal(difference, 0))
		if math.Abs(difference) > t.cfg.DeadBandCM {
			t.waistAngle += increment
		}
		t.setWaistAngle(t.waistAngle)
	}

	t.hw.Clock.Sleep(t.pid.Timestep())
}

// setWaistAngle commands the waist, clamping to its limits.
func (t *TrackingMode) setWaistAngle(angle int) {
	limits := t.hw.Joints.Limits(robot.Waist)
	if clamped, ok := limits.Clamp(angle); ok {
		t.logger.Warn("waist angle out of bounds, clamping",
			"requested", angle,
			"min", limits.MinAngle,
			"max", limits.MaxAngle)
		angle = clamped
	}
	t.waistAngle = angle
	t.hw.Joints.SetAngle(robot.Waist, angle)
}
