package behavior

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/teslashibe/go-sonarbot/pkg/control"
	"github.com/teslashibe/go-sonarbot/pkg/movement"
	"github.com/teslashibe/go-sonarbot/pkg/robot"
)

// DanceMode sways the waist and arms at a tempo set by how far away the
// nearest object is.
type DanceMode struct {
	*Mode

	cfg       DanceConfig
	tempo     *control.LinearMap
	lastTempo time.Duration
}

// NewDance builds Dance mode and enters its TooClose sub-state.
func NewDance(hw *robot.Hardware, cfg DanceConfig, logger *slog.Logger) (*DanceMode, error) {
	tempo, err := control.NewLinearMap(control.LinearMapParams{
		InputMin:  cfg.Thresholds.MinCM,
		InputMax:  cfg.Thresholds.MaxCM,
		OutputMin: float64(cfg.TempoAtMin.Milliseconds()),
		OutputMax: float64(cfg.TempoAtMax.Milliseconds()),
	})
	if err != nil {
		return nil, fmt.Errorf("dance tempo: %w", err)
	}

	d := &DanceMode{cfg: cfg, tempo: tempo}
	m, err := newMode("DanceMode", hw, cfg.Thresholds, robot.LightBlue, cfg.EyeTransition,
		map[Band]behaviour{
			TooClose: {
				colour:      robot.Off,
				beforeEnter: d.raiseGuard,
			},
			WithinRange: {
				colour:     robot.Red,
				afterEnter: d.pulseEyes,
				run:        d.dance,
			},
			OutOfRange: {
				colour: robot.LightBlue,
			},
		}, logger)
	if err != nil {
		return nil, err
	}
	d.Mode = m
	m.onEnter = d.flashEyes
	m.start()
	return d, nil
}

// Tempo returns the sweep period for a distance in centimetres,
// truncated to whole milliseconds.
func (d *DanceMode) Tempo(distanceCM float64) time.Duration {
	return time.Duration(int(d.tempo.Output(distanceCM))) * time.Millisecond
}

// LastTempo returns the sweep period of the most recent dance motion.
func (d *DanceMode) LastTempo() time.Duration {
	return d.lastTempo
}

func (d *DanceMode) flashEyes() {
	eyes, clk := d.hw.Eyes, d.hw.Clock
	for range d.cfg.FlashCount {
		eyes.SetColour(robot.Red)
		clk.Sleep(d.cfg.FlashInterval)
		eyes.SetColour(robot.LightBlue)
		clk.Sleep(d.cfg.FlashInterval)
	}
	d.showBaseline()
	clk.Sleep(d.cfg.FlashInterval)
}

func (d *DanceMode) raiseGuard() {
	movement.SetBothArmsToAngle(d.hw.Joints, d.cfg.GuardArmAngle)
}

func (d *DanceMode) pulseEyes() {
	for range d.cfg.PulseCount {
		d.hw.Eyes.CrossFade(robot.Blue, robot.Red, d.cfg.PulseDuration)
		d.hw.Eyes.CrossFade(robot.Red, robot.Red, d.cfg.PulseDuration)
	}
	d.eyeColour = robot.Red
}

func (d *DanceMode) dance() {
	d.lastTempo = d.Tempo(d.lastDistance.Min)
	d.logger.Debug("dancing", "tempo", d.lastTempo, "distance", d.lastDistance.Min)
	movement.SingleDanceMotion(d.hw.Joints, d.hw.Clock, d.lastTempo, d.cfg.ArmOffset)
}
