// Package supervisor selects the active behaviour mode from the physical mode
// switch and drives it, one blocking step at a time.
package supervisor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/teslashibe/go-sonarbot/internal/log"
	"github.com/teslashibe/go-sonarbot/pkg/behavior"
	"github.com/teslashibe/go-sonarbot/pkg/movement"
	"github.com/teslashibe/go-sonarbot/pkg/robot"
)

// Config holds supervisor settings.
type Config struct {
	Dance    behavior.DanceConfig
	Tracking behavior.TrackingConfig

	// Logger receives all supervisor and mode logs. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the stock mode settings.
func DefaultConfig() Config {
	return Config{
		Dance:    behavior.DefaultDanceConfig(),
		Tracking: behavior.DefaultTrackingConfig(),
	}
}

// Supervisor owns both modes and switches between them on switch edges.
// It is single-threaded: Step and Run must not be called concurrently.
type Supervisor struct {
	hw     *robot.Hardware
	logger *slog.Logger

	dance    *behavior.DanceMode
	tracking *behavior.TrackingMode
	current  behavior.State

	steps uint64
}

// New builds both modes, each settling into its TooClose sub-state, and
// starts in Dance without running its entry sequence.
func New(hw *robot.Hardware, cfg Config) (*Supervisor, error) {
	logger := log.OrDiscard(cfg.Logger)

	dance, err := behavior.NewDance(hw, cfg.Dance, logger)
	if err != nil {
		return nil, fmt.Errorf("supervisor: %w", err)
	}
	tracking, err := behavior.NewTracking(hw, cfg.Tracking, logger)
	if err != nil {
		return nil, fmt.Errorf("supervisor: %w", err)
	}

	s := &Supervisor{
		hw:       hw,
		logger:   logger.With("component", "supervisor"),
		dance:    dance,
		tracking: tracking,
		current:  dance,
	}

	s.logger.Info("starting main loop", "mode", s.current.Name())
	hw.Eyes.SetColour(behavior.InitialEyeColour)
	return s, nil
}

// Current returns the name of the active mode.
func (s *Supervisor) Current() string {
	return s.current.Name()
}

// Dance returns the Dance mode.
func (s *Supervisor) Dance() *behavior.DanceMode {
	return s.dance
}

// Tracking returns the Tracking mode.
func (s *Supervisor) Tracking() *behavior.TrackingMode {
	return s.tracking
}

// Steps returns the number of completed steps.
func (s *Supervisor) Steps() uint64 {
	return s.steps
}

// desired maps a switch position to a mode. Unknown positions map to nil.
func (s *Supervisor) desired(state robot.SwitchState) behavior.State {
	switch state {
	case robot.SwitchOn:
		return s.dance
	case robot.SwitchOff:
		return s.tracking
	default:
		return nil
	}
}

// Step reads the switch once. On a change the new mode is entered; otherwise
// the current mode runs one cycle. A StateResolution error is fatal.
func (s *Supervisor) Step() error {
	state := s.hw.ModeSwitch.State()

	next := s.desired(state)
	if next == nil {
		s.logger.Error("desired mode unresolved", "switch", state.String())
		return fmt.Errorf("%w: switch %s", behavior.ErrStateResolution, state)
	}

	s.steps++
	if next != s.current {
		s.logger.Info("switching mode", "from", s.current.Name(), "to", next.Name(), "switch", state.String())
		s.current = next
		s.current.Enter()
		return nil
	}
	return s.current.RunOnce()
}

// Run steps until ctx is cancelled or a step fails. Cancellation is checked
// between steps, so an action in progress always completes.
func (s *Supervisor) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("main loop stopped", "steps", s.steps, "mode", s.current.Name())
			return nil
		default:
		}

		if err := s.Step(); err != nil {
			return err
		}
	}
}

// Park returns every joint to zero and turns the eyes off.
func (s *Supervisor) Park() {
	movement.AllJointsToZero(s.hw.Joints)
	s.hw.Eyes.SetColour(robot.Off)
	s.logger.Info("parked")
}
