// Package sim provides a simulated robot: a virtual clock, an obstacle that
// approaches, retreats and drifts sideways, a mode switch that flips on a
// timer, and the peripheral drivers the robot adapters sit on.
//
// The world reads the waist servo's PWM output back, so the sonar readings
// respond to where the robot is facing and tracking closes the loop.
package sim

import (
	"math"
	"sync"
	"time"

	"github.com/teslashibe/go-sonarbot/pkg/clock"
	"github.com/teslashibe/go-sonarbot/pkg/robot"
)

// Config describes the simulated world.
type Config struct {
	// Speedup is virtual time per unit of real time. Zero never waits.
	Speedup float64

	// SwitchPeriod is how long the switch holds each position. Zero holds
	// SwitchStartsOn forever.
	SwitchPeriod   time.Duration
	SwitchStartsOn bool

	// The obstacle starts at FarCM, reaches NearCM half way through
	// ApproachPeriod and is back at FarCM at the end.
	NearCM         float64
	FarCM          float64
	ApproachPeriod time.Duration

	// Obstacle bearing in degrees: BearingOffset + BearingAmplitude*sin(2πt/BearingPeriod).
	// Negative bearings are towards the robot's left.
	BearingOffset    float64
	BearingAmplitude float64
	BearingPeriod    time.Duration

	// SpreadCMPerDegree is how much nearer the obstacle appears to the sensor
	// on its side, per degree off the robot's heading.
	SpreadCMPerDegree float64
}

// DefaultConfig returns a world that exercises every sub-state of both modes.
func DefaultConfig() Config {
	return Config{
		Speedup:           1,
		SwitchPeriod:      45 * time.Second,
		SwitchStartsOn:    true,
		NearCM:            5,
		FarCM:             110,
		ApproachPeriod:    60 * time.Second,
		BearingAmplitude:  30,
		BearingPeriod:     17 * time.Second,
		SpreadCMPerDegree: 0.5,
	}
}

// World is the simulated environment. It implements clock.Sleeper; every wait
// the robot makes advances virtual time.
type World struct {
	cfg  Config
	real clock.Sleeper

	mu      sync.RWMutex
	elapsed time.Duration

	board *PWMBoard
	led   *LED
}

// NewWorld creates a world at virtual time zero.
func NewWorld(cfg Config) *World {
	return &World{
		cfg:   cfg,
		real:  clock.Real{},
		board: NewPWMBoard(),
		led:   &LED{},
	}
}

// Sleep advances virtual time by d, waiting d/Speedup of real time.
func (w *World) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	w.mu.Lock()
	w.elapsed += d
	w.mu.Unlock()

	if w.cfg.Speedup > 0 {
		w.real.Sleep(time.Duration(float64(d) / w.cfg.Speedup))
	}
}

// Elapsed returns the virtual time since the world was created.
func (w *World) Elapsed() time.Duration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.elapsed
}

// ObstacleDistance returns the obstacle's distance from the robot in centimetres.
func (w *World) ObstacleDistance() float64 {
	if w.cfg.ApproachPeriod <= 0 {
		return w.cfg.FarCM
	}
	phase := math.Mod(w.Elapsed().Seconds(), w.cfg.ApproachPeriod.Seconds()) / w.cfg.ApproachPeriod.Seconds()
	triangle := 1 - math.Abs(2*phase-1)
	return w.cfg.FarCM - (w.cfg.FarCM-w.cfg.NearCM)*triangle
}

// ObstacleBearing returns the obstacle's bearing from the robot's zero heading in degrees.
func (w *World) ObstacleBearing() float64 {
	bearing := w.cfg.BearingOffset
	if w.cfg.BearingPeriod > 0 {
		bearing += w.cfg.BearingAmplitude * math.Sin(2*math.Pi*w.Elapsed().Seconds()/w.cfg.BearingPeriod.Seconds())
	}
	return bearing
}

// WaistAngle returns the waist angle last written to the PWM board, or 0
// before the first write.
func (w *World) WaistAngle() int {
	off, ok := w.board.Off(robot.ServoChannel(robot.Waist))
	if !ok {
		return 0
	}
	return robot.DutyToAngle(robot.Waist, off)
}

// Readings returns what the left and right sonars see right now.
func (w *World) Readings() (left, right float64) {
	d := w.ObstacleDistance()
	relative := w.ObstacleBearing() - float64(w.WaistAngle())
	spread := w.cfg.SpreadCMPerDegree * relative
	return max(0, d+spread), max(0, d-spread)
}

// SwitchOn reports the mode switch position.
func (w *World) SwitchOn() bool {
	if w.cfg.SwitchPeriod <= 0 {
		return w.cfg.SwitchStartsOn
	}
	flips := int64(w.Elapsed() / w.cfg.SwitchPeriod)
	return (flips%2 == 0) == w.cfg.SwitchStartsOn
}

// Board returns the simulated servo driver board.
func (w *World) Board() *PWMBoard {
	return w.board
}

// LED returns the simulated eye LED.
func (w *World) LED() *LED {
	return w.led
}

// Echo returns the echo pin of the sonar on side.
func (w *World) Echo(side Side) *EchoPin {
	return &EchoPin{world: w, side: side}
}

// Pin returns the mode switch input pin.
func (w *World) Pin() *Pin {
	return &Pin{world: w}
}

var _ clock.Sleeper = (*World)(nil)
