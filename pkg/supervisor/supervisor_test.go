package supervisor

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teslashibe/go-sonarbot/pkg/behavior"
	"github.com/teslashibe/go-sonarbot/pkg/clock"
	"github.com/teslashibe/go-sonarbot/pkg/robot"
)

type mockEyes struct {
	sets  []robot.Colour
	fades int
}

func (m *mockEyes) SetColour(c robot.Colour) { m.sets = append(m.sets, c) }

func (m *mockEyes) CrossFade(from, to robot.Colour, d time.Duration) { m.fades++ }

type mockJoints struct {
	angles map[robot.JointName]int
}

func (m *mockJoints) SetAngle(name robot.JointName, angle int) {
	m.angles[name] = angle
}

func (m *mockJoints) Limits(name robot.JointName) robot.Limits {
	limits, _ := robot.JointLimits(name)
	return limits
}

type mockSonar struct {
	distance robot.Distance
}

func (m *mockSonar) Distance() robot.Distance { return m.distance }

// mockSwitch replays positions in order, repeating the last one, and calls
// onRead after every read.
type mockSwitch struct {
	states []robot.SwitchState
	reads  int
	onRead func(reads int)
}

func (m *mockSwitch) State() robot.SwitchState {
	s := m.states[min(m.reads, len(m.states)-1)]
	m.reads++
	if m.onRead != nil {
		m.onRead(m.reads)
	}
	return s
}

type rig struct {
	hw     *robot.Hardware
	eyes   *mockEyes
	joints *mockJoints
	sonar  *mockSonar
	sw     *mockSwitch
	clock  *clock.Recorder
}

func newRig(states ...robot.SwitchState) *rig {
	r := &rig{
		eyes:   &mockEyes{},
		joints: &mockJoints{angles: make(map[robot.JointName]int)},
		sonar:  &mockSonar{distance: robot.NewDistance(100, 100)},
		sw:     &mockSwitch{states: states},
		clock:  clock.NewRecorder(),
	}
	r.hw = &robot.Hardware{
		Eyes:       r.eyes,
		Joints:     r.joints,
		Sonar:      r.sonar,
		ModeSwitch: r.sw,
		Clock:      r.clock,
	}
	return r
}

func newTestSupervisor(t *testing.T, r *rig) *Supervisor {
	t.Helper()
	s, err := New(r.hw, DefaultConfig())
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	r := newRig(robot.SwitchOn)
	s := newTestSupervisor(t, r)

	assert.Equal(t, "DanceMode", s.Current())
	assert.Equal(t, behavior.TooClose, s.Dance().Current())
	assert.Equal(t, behavior.TooClose, s.Tracking().Current())
	assert.Equal(t, []robot.Colour{robot.LightBlue}, r.eyes.sets)
	assert.Zero(t, r.clock.Count(), "no mode entry sequence runs at startup")
}

func TestNew_MissingHardware(t *testing.T) {
	r := newRig(robot.SwitchOn)
	r.hw.Clock = nil

	_, err := New(r.hw, DefaultConfig())

	assert.ErrorIs(t, err, robot.ErrMissingCapability)
}

func TestStep_SwitchOnStaysInDance(t *testing.T) {
	r := newRig(robot.SwitchOn)
	s := newTestSupervisor(t, r)

	for range 3 {
		require.NoError(t, s.Step())
	}

	assert.Equal(t, "DanceMode", s.Current())
	assert.Equal(t, []robot.Colour{robot.LightBlue}, r.eyes.sets, "Dance entry never ran")
	assert.Equal(t, behavior.OutOfRange, s.Dance().Current())
}

func TestStep_EntersModeOncePerEdge(t *testing.T) {
	off, on := robot.SwitchOff, robot.SwitchOn
	r := newRig(off, off, off, on, on, off)
	s := newTestSupervisor(t, r)
	r.eyes.sets = nil

	want := []struct {
		mode  string
		green int
		flash int
	}{
		{"TrackingMode", 1, 0},
		{"TrackingMode", 1, 0},
		{"TrackingMode", 1, 0},
		{"DanceMode", 1, 5},
		{"DanceMode", 1, 5},
		{"TrackingMode", 2, 5},
	}

	for i, w := range want {
		require.NoError(t, s.Step(), "step %d", i)
		assert.Equal(t, w.mode, s.Current(), "step %d", i)
		assert.Equal(t, w.green, count(r.eyes.sets, robot.Green), "tracking entries after step %d", i)
		assert.Equal(t, w.flash, count(r.eyes.sets, robot.Red), "dance flashes after step %d", i)
	}
	assert.Equal(t, uint64(6), s.Steps())
}

func TestStep_TrackingEntryPosesArms(t *testing.T) {
	r := newRig(robot.SwitchOff)
	s := newTestSupervisor(t, r)

	require.NoError(t, s.Step())

	assert.Equal(t, -50, r.joints.angles[robot.LeftShoulder])
	assert.Equal(t, -50, r.joints.angles[robot.RightShoulder])
	assert.Equal(t, 0, r.joints.angles[robot.Waist])
}

func TestStep_UnknownSwitchState(t *testing.T) {
	r := newRig(robot.SwitchState(7))
	s := newTestSupervisor(t, r)

	err := s.Step()

	assert.ErrorIs(t, err, behavior.ErrStateResolution)
	assert.Equal(t, "DanceMode", s.Current())
	assert.Zero(t, s.Steps())
}

func TestStep_PropagatesModeError(t *testing.T) {
	r := newRig(robot.SwitchOn)
	s := newTestSupervisor(t, r)
	r.sonar.distance = robot.NewDistance(math.NaN(), math.NaN())

	assert.ErrorIs(t, s.Step(), behavior.ErrStateResolution)
}

func TestRun_StopsOnCancel(t *testing.T) {
	r := newRig(robot.SwitchOn)
	s := newTestSupervisor(t, r)

	ctx, cancel := context.WithCancel(context.Background())
	r.sw.onRead = func(reads int) {
		if reads == 10 {
			cancel()
		}
	}

	require.NoError(t, s.Run(ctx))

	// The step that observed the cancel still completes.
	assert.Equal(t, 10, r.sw.reads)
	assert.Equal(t, uint64(10), s.Steps())
}

func TestRun_AlreadyCancelled(t *testing.T) {
	r := newRig(robot.SwitchOn)
	s := newTestSupervisor(t, r)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, s.Run(ctx))
	assert.Zero(t, r.sw.reads)
}

func TestRun_ReturnsFatalError(t *testing.T) {
	r := newRig(robot.SwitchOn, robot.SwitchOff, robot.SwitchState(-1))
	s := newTestSupervisor(t, r)

	err := s.Run(context.Background())

	assert.ErrorIs(t, err, behavior.ErrStateResolution)
	assert.Equal(t, "TrackingMode", s.Current())
	assert.Equal(t, 3, r.sw.reads)
}

func TestPark(t *testing.T) {
	r := newRig(robot.SwitchOff)
	s := newTestSupervisor(t, r)
	require.NoError(t, s.Step())

	s.Park()

	for _, name := range robot.AllJoints {
		assert.Equal(t, 0, r.joints.angles[name], "joint %s", name)
	}
	assert.Equal(t, robot.Off, r.eyes.sets[len(r.eyes.sets)-1])
}

func count(colours []robot.Colour, c robot.Colour) int {
	n := 0
	for _, got := range colours {
		if got == c {
			n++
		}
	}
	return n
}
