package behavior

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/teslashibe/go-sonarbot/internal/log"
	"github.com/teslashibe/go-sonarbot/pkg/robot"
)

// InitialEyeColour is the colour the eyes are assumed to show before a mode
// has ever been entered.
const InitialEyeColour = robot.LightBlue

// Mode is a distance-driven state machine with one SubState per Band.
// Dance and Tracking embed it and supply the per-band behaviour.
type Mode struct {
	name       string
	hw         *robot.Hardware
	logger     *slog.Logger
	thresholds Thresholds
	baseline   robot.Colour

	states  [len(Bands)]*SubState
	current *SubState

	eyeColour    robot.Colour
	lastDistance robot.Distance

	// onEnter is the mode's entry sequence. It decides when the baseline
	// colour is shown; nil just shows it.
	onEnter func()

	// onSubStateEnter runs inside every sub-state's shared entry.
	onSubStateEnter func()
}

func newMode(name string, hw *robot.Hardware, thresholds Thresholds, baseline robot.Colour,
	fade time.Duration, behaviours map[Band]behaviour, logger *slog.Logger) (*Mode, error) {
	if err := hw.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	m := &Mode{
		name:       name,
		hw:         hw,
		logger:     log.OrDiscard(logger).With("mode", name),
		thresholds: thresholds,
		baseline:   baseline,
		eyeColour:  InitialEyeColour,
	}
	for _, band := range Bands {
		m.states[band] = &SubState{
			band:      band,
			mode:      m,
			fadeTime:  fade,
			behaviour: behaviours[band],
		}
	}
	return m, nil
}

// start forces the TooClose entry so the mode always has a current sub-state.
// Call it once the concrete mode has installed its hooks.
func (m *Mode) start() {
	m.states[TooClose].Enter()
}

// Name returns the mode name.
func (m *Mode) Name() string {
	return m.name
}

// Current returns the band of the active sub-state.
func (m *Mode) Current() Band {
	return m.current.band
}

// EyeColour returns the colour the eyes were last set to by this mode.
func (m *Mode) EyeColour() robot.Colour {
	return m.eyeColour
}

// LastDistance returns the reading used for the most recent sub-state selection.
func (m *Mode) LastDistance() robot.Distance {
	return m.lastDistance
}

// Enter runs the mode's entry sequence, which includes showing its baseline
// colour. The active sub-state is left as it was.
func (m *Mode) Enter() {
	m.logger.Info("entering mode")

	if m.onEnter == nil {
		m.showBaseline()
		return
	}
	m.onEnter()
}

// showBaseline sets the eyes to the mode colour.
func (m *Mode) showBaseline() {
	m.hw.Eyes.SetColour(m.baseline)
	m.eyeColour = m.baseline
}

// RunOnce reads the sonar and either enters the sub-state for the new band or
// runs the current one.
func (m *Mode) RunOnce() error {
	d := m.hw.Sonar.Distance()
	m.lastDistance = d

	band, ok := m.thresholds.Resolve(d.Min)
	if !ok {
		m.logger.Error("desired state unresolved", "distance", d.String())
		return fmt.Errorf("%w: %s at %s", ErrStateResolution, m.name, d)
	}

	if desired := m.states[band]; desired != m.current {
		desired.Enter()
		return nil
	}
	m.current.RunOnce()
	return nil
}
