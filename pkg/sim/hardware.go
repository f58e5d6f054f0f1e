package sim

import (
	"log/slog"

	"github.com/teslashibe/go-sonarbot/pkg/robot"
)

// Robot is the set of robot adapters wired to a World.
type Robot struct {
	Joints *robot.ServoJoints
	Eyes   *robot.LEDEyes
	Sonar  *robot.SonarArray
	Switch *robot.PinSwitch
}

// NewRobot wires the robot adapters to w's drivers, with w as the clock.
func NewRobot(w *World, logger *slog.Logger) *Robot {
	return &Robot{
		Joints: robot.NewServoJoints(w.Board(), logger),
		Eyes:   robot.NewLEDEyes(w.LED(), w, logger),
		Sonar:  robot.NewSonarArray(w.Echo(Right), w.Echo(Left), w, logger),
		Switch: robot.NewPinSwitch(w.Pin(), logger),
	}
}

// Hardware bundles the adapters for the behaviour core.
func (r *Robot) Hardware(w *World) *robot.Hardware {
	return &robot.Hardware{
		Eyes:       r.Eyes,
		Joints:     r.Joints,
		Sonar:      r.Sonar,
		ModeSwitch: r.Switch,
		Clock:      w,
	}
}
