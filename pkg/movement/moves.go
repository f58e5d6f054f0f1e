package movement

import (
	"time"

	"github.com/teslashibe/go-sonarbot/pkg/clock"
	"github.com/teslashibe/go-sonarbot/pkg/robot"
)

// SetBothArmsToAngle puts both shoulders at the same angle.
func SetBothArmsToAngle(j robot.Joints, angle int) {
	j.SetAngle(robot.LeftShoulder, angle)
	j.SetAngle(robot.RightShoulder, angle)
}

// AllJointsToZero returns every joint to its zero position.
func AllJointsToZero(j robot.Joints) {
	SetBothArmsToAngle(j, 0)
	j.SetAngle(robot.Waist, 0)
}

// DanceSweep builds one synchronised dance motion lasting roughly period.
//
//   - Waist:     0 -> max -> min -> 0
//   - Left arm:  follows the waist, shifted by armOffset
//   - Right arm: mirrors the waist, shifted by armOffset
//
// The waist range is narrower than the arm ranges, so it is the limiting case:
// the sweep covers the full waist range and the arms move as far as they can
// in that time.
func DanceSweep(waist robot.Limits, period time.Duration, armOffset int) Sequence {
	pose := func(i int) Pose {
		return Pose{Waist: i, LeftShoulder: i + armOffset, RightShoulder: -i + armOffset}
	}

	poses := make([]Pose, 0, 2*waist.Range())

	// 0 -> max
	for i := 0; i < waist.MaxAngle; i++ {
		poses = append(poses, pose(i))
	}
	// max -> min
	for i := waist.MaxAngle; i > waist.MinAngle; i-- {
		poses = append(poses, pose(i))
	}
	// min -> 0
	for i := waist.MinAngle; i < 0; i++ {
		poses = append(poses, pose(i))
	}

	var step time.Duration
	if r := waist.Range(); r > 0 {
		step = period / time.Duration(r) / 2
	}

	return Sequence{Name: "dance_sweep", Poses: poses, StepDelay: step}
}

// SingleDanceMotion plays one DanceSweep sized by the joints' waist limits.
// It blocks for the whole sweep.
func SingleDanceMotion(j robot.Joints, clk clock.Sleeper, period time.Duration, armOffset int) {
	DanceSweep(j.Limits(robot.Waist), period, armOffset).Play(j, clk)
}
