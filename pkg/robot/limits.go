package robot

import "fmt"

// JointName identifies one of the robot's servo joints.
type JointName int

const (
	Waist JointName = iota
	RightShoulder
	LeftShoulder
)

// AllJoints lists every joint.
var AllJoints = []JointName{Waist, RightShoulder, LeftShoulder}

// String returns the joint name as it appears in logs.
func (j JointName) String() string {
	switch j {
	case Waist:
		return "WAIST"
	case RightShoulder:
		return "RIGHT_SHOULDER"
	case LeftShoulder:
		return "LEFT_SHOULDER"
	default:
		return fmt.Sprintf("JointName(%d)", int(j))
	}
}

// Limits is the allowed angle range of a joint, in degrees from its
// kinematic zero position.
type Limits struct {
	MinAngle int
	MaxAngle int
}

// Range returns MaxAngle - MinAngle.
func (l Limits) Range() int {
	return l.MaxAngle - l.MinAngle
}

// Clamp restricts angle to the limits. The second result reports whether
// clamping was needed.
func (l Limits) Clamp(angle int) (int, bool) {
	if angle < l.MinAngle {
		return l.MinAngle, true
	}
	if angle > l.MaxAngle {
		return l.MaxAngle, true
	}
	return angle, false
}

// Hardware specific limits for each joint.
// The waist range is the narrowest; dance sweeps are sized by it.
var (
	WaistLimits         = Limits{MinAngle: -45, MaxAngle: 45}
	RightShoulderLimits = Limits{MinAngle: -60, MaxAngle: 120}
	LeftShoulderLimits  = Limits{MinAngle: -60, MaxAngle: 120}
)

// JointLimits returns the hardware limits for a joint.
func JointLimits(name JointName) (Limits, error) {
	switch name {
	case Waist:
		return WaistLimits, nil
	case RightShoulder:
		return RightShoulderLimits, nil
	case LeftShoulder:
		return LeftShoulderLimits, nil
	default:
		return Limits{}, fmt.Errorf("%w: %v", ErrUnknownJoint, name)
	}
}
