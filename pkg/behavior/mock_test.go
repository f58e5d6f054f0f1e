package behavior

import (
	"math"
	"time"

	"github.com/teslashibe/go-sonarbot/pkg/clock"
	"github.com/teslashibe/go-sonarbot/pkg/robot"
)

// eyesCall records one Eyes call. For SetColour only to is set.
type eyesCall struct {
	fade     bool
	from, to robot.Colour
	duration time.Duration
}

// mockEyes records all eye commands for testing
type mockEyes struct {
	calls []eyesCall

	// onCall runs after every recorded call.
	onCall func()
}

func (m *mockEyes) SetColour(c robot.Colour) {
	m.record(eyesCall{to: c})
}

func (m *mockEyes) CrossFade(from, to robot.Colour, d time.Duration) {
	m.record(eyesCall{fade: true, from: from, to: to, duration: d})
}

func (m *mockEyes) record(c eyesCall) {
	m.calls = append(m.calls, c)
	if m.onCall != nil {
		m.onCall()
	}
}

func (m *mockEyes) last() eyesCall {
	return m.calls[len(m.calls)-1]
}

func (m *mockEyes) reset() {
	m.calls = nil
}

// mockJoints records commanded angles, clamped like the servo adapter.
type mockJoints struct {
	angles   map[robot.JointName]int
	commands int
}

func (m *mockJoints) SetAngle(name robot.JointName, angle int) {
	limits, _ := robot.JointLimits(name)
	angle, _ = limits.Clamp(angle)
	m.angles[name] = angle
	m.commands++
}

func (m *mockJoints) Limits(name robot.JointName) robot.Limits {
	limits, _ := robot.JointLimits(name)
	return limits
}

// mockSonar replays readings in order and then repeats the last one.
type mockSonar struct {
	readings []robot.Distance
	reads    int
}

func (m *mockSonar) Distance() robot.Distance {
	i := min(m.reads, len(m.readings)-1)
	m.reads++
	return m.readings[i]
}

func (m *mockSonar) set(left, right float64) {
	m.readings = []robot.Distance{robot.NewDistance(left, right)}
	m.reads = 0
}

type mockSwitch struct {
	state robot.SwitchState
}

func (m *mockSwitch) State() robot.SwitchState {
	return m.state
}

type rig struct {
	hw     *robot.Hardware
	eyes   *mockEyes
	joints *mockJoints
	sonar  *mockSonar
	clock  *clock.Recorder
}

func newRig() *rig {
	r := &rig{
		eyes:   &mockEyes{},
		joints: &mockJoints{angles: make(map[robot.JointName]int)},
		sonar:  &mockSonar{readings: []robot.Distance{robot.NewDistance(100, 100)}},
		clock:  clock.NewRecorder(),
	}
	r.hw = &robot.Hardware{
		Eyes:       r.eyes,
		Joints:     r.joints,
		Sonar:      r.sonar,
		ModeSwitch: &mockSwitch{},
		Clock:      r.clock,
	}
	return r
}

// clearLog forgets everything recorded so far.
func (r *rig) clearLog() {
	r.eyes.reset()
	r.joints.commands = 0
	r.clock.Reset()
}

var nan = math.NaN()
