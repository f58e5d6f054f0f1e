// Package behavior implements the robot's operating modes.
//
// A Mode is a three-way state machine over distance bands: TooClose,
// WithinRange and OutOfRange. Each band has a SubState whose entry and run
// actions are plain functions supplied by the concrete mode (Dance, Tracking).
// Modes and sub-states share one calling convention: Enter once on every
// transition edge, RunOnce on every poll while nothing changes.
package behavior

import (
	"fmt"
	"math"
	"time"

	"github.com/teslashibe/go-sonarbot/pkg/robot"
)

// State is anything the supervisor can switch between.
type State interface {
	// Enter runs the entry actions. Called exactly once per transition.
	Enter()

	// RunOnce runs one execution cycle while the state stays selected.
	RunOnce() error

	// Name identifies the state in logs.
	Name() string
}

// Band is a distance band within a mode.
type Band int

const (
	TooClose Band = iota
	WithinRange
	OutOfRange
)

// Bands lists every band in order.
var Bands = [...]Band{TooClose, WithinRange, OutOfRange}

// String returns the sub-state name for the band.
func (b Band) String() string {
	switch b {
	case TooClose:
		return "TooCloseState"
	case WithinRange:
		return "WithinRangeState"
	case OutOfRange:
		return "OutOfRangeState"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// Thresholds is the distance band, in centimetres, that counts as within range.
type Thresholds struct {
	MinCM float64
	MaxCM float64
}

// Validate checks the band is non-empty.
func (t Thresholds) Validate() error {
	if !(t.MinCM < t.MaxCM) {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidThresholds, t.MinCM, t.MaxCM)
	}
	return nil
}

// Resolve maps a distance to a band. Both boundaries belong to WithinRange.
// A NaN distance resolves to nothing.
func (t Thresholds) Resolve(distanceCM float64) (Band, bool) {
	switch {
	case math.IsNaN(distanceCM):
		return 0, false
	case distanceCM < t.MinCM:
		return TooClose, true
	case distanceCM > t.MaxCM:
		return OutOfRange, true
	default:
		return WithinRange, true
	}
}

// behaviour is the data+function pair that makes a SubState concrete.
// Any hook may be nil.
type behaviour struct {
	colour robot.Colour

	// beforeEnter runs before the shared entry (posing actuators).
	beforeEnter func()

	// afterEnter runs once the eyes have reached the sub-state colour.
	afterEnter func()

	// run is one execution cycle; nil means idle.
	run func()
}

// SubState is one band's behaviour inside a Mode.
type SubState struct {
	band     Band
	mode     *Mode
	fadeTime time.Duration
	behaviour
}

// Name returns the sub-state name.
func (s *SubState) Name() string {
	return s.band.String()
}

// Enter makes the sub-state current and fades the eyes to its colour.
func (s *SubState) Enter() {
	if s.beforeEnter != nil {
		s.beforeEnter()
	}

	m := s.mode
	m.logger.Info("entering sub-state", "state", s.Name())

	if m.onSubStateEnter != nil {
		m.onSubStateEnter()
	}

	m.current = s
	m.hw.Eyes.CrossFade(m.eyeColour, s.colour, s.fadeTime)
	m.eyeColour = s.colour

	if s.afterEnter != nil {
		s.afterEnter()
	}
}

// RunOnce runs the sub-state's cycle, or just logs when it is idle.
func (s *SubState) RunOnce() {
	if s.run == nil {
		s.mode.logger.Debug("running sub-state", "state", s.Name())
		return
	}
	s.run()
}
