// Package movement provides full-body motions for the robot.
//
// Timed motions are expressed as explicit step sequences: a list of poses and
// the wait between them. Playing a sequence blocks until the last step.
package movement

import (
	"time"

	"github.com/teslashibe/go-sonarbot/pkg/clock"
	"github.com/teslashibe/go-sonarbot/pkg/robot"
)

// Pose is a target angle for every joint, in degrees from the zero position.
type Pose struct {
	Waist         int
	LeftShoulder  int
	RightShoulder int
}

// Apply commands every joint. Joints clamp out-of-range angles themselves.
func (p Pose) Apply(j robot.Joints) {
	j.SetAngle(robot.Waist, p.Waist)
	j.SetAngle(robot.LeftShoulder, p.LeftShoulder)
	j.SetAngle(robot.RightShoulder, p.RightShoulder)
}

// Sequence is a choreographed motion: each pose is applied, then StepDelay elapses.
type Sequence struct {
	Name      string
	Poses     []Pose
	StepDelay time.Duration
}

// Duration returns the total time Play blocks for.
func (s Sequence) Duration() time.Duration {
	return time.Duration(len(s.Poses)) * s.StepDelay
}

// Play runs the sequence to completion. There is no early exit: a started
// motion always finishes.
func (s Sequence) Play(j robot.Joints, clk clock.Sleeper) {
	for _, p := range s.Poses {
		p.Apply(j)
		clk.Sleep(s.StepDelay)
	}
}
