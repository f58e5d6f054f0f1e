package robot

import (
	"log/slog"
	"math"

	"github.com/teslashibe/go-sonarbot/internal/log"
	"github.com/teslashibe/go-sonarbot/pkg/control"
)

// PWMDriver is a multi-channel PWM board (e.g. a PCA9685 servo driver).
// on and off are tick counts within one PWM period.
type PWMDriver interface {
	SetPWM(channel uint8, on, off uint16) error
}

// FrequencySetter is implemented by PWM boards whose output frequency is
// configurable. NewServoJoints sets PWMFrequencyHz on such boards.
type FrequencySetter interface {
	SetFrequency(hz float64) error
}

// Servo board settings for the DF-Robot DC5535 servos on a 50Hz PWM board.
const (
	PWMFrequencyHz        = 50
	OscillatorFrequencyHz = 25_000_000
	PWMResolution         = 4096 // ticks per PWM period
	pulseSignalStart      = 0
)

// PrescaleFor returns the PCA9685-style prescale register value that yields
// hz from the board oscillator.
func PrescaleFor(hz float64) uint8 {
	if hz <= 0 {
		return 0
	}
	v := math.Round(OscillatorFrequencyHz/(PWMResolution*hz)) - 1
	return uint8(max(3, min(255, v)))
}

// Angles that put each joint in its kinematic zero position:
// torso facing forward, both arms in line with the torso.
const (
	WaistZeroOffset         = 85
	RightShoulderZeroOffset = 120
	LeftShoulderZeroOffset  = 60
)

// angleToDutyCycle converts a raw servo angle to a PWM off tick.
var angleToDutyCycle = control.LinearMapParams{
	InputMin:  0,   // Min angle
	InputMax:  180, // Max angle
	OutputMin: 60,  // Min duty cycle
	OutputMax: 450, // Max duty cycle
}

// dutyCycleToAngle is the inverse of angleToDutyCycle.
var dutyCycleToAngle = control.MustLinearMap(control.LinearMapParams{
	InputMin:  angleToDutyCycle.OutputMin,
	InputMax:  angleToDutyCycle.OutputMax,
	OutputMin: angleToDutyCycle.InputMin,
	OutputMax: angleToDutyCycle.InputMax,
})

// DutyToAngle recovers the kinematic angle of a joint from the off tick
// ServoJoints wrote for it.
func DutyToAngle(name JointName, off uint16) int {
	raw := int(math.Round(dutyCycleToAngle.Output(float64(off))))
	switch name {
	case Waist:
		return raw - WaistZeroOffset
	case LeftShoulder:
		return raw - LeftShoulderZeroOffset
	case RightShoulder:
		return RightShoulderZeroOffset - raw
	default:
		return raw
	}
}

// ServoJoints drives the three joints through a PWM driver board.
// Requested angles are clamped to the joint limits with a warning, never rejected.
type ServoJoints struct {
	driver  PWMDriver
	dutyMap *control.LinearMap
	logger  *slog.Logger

	angles map[JointName]int
}

// NewServoJoints creates joints on top of driver. The board frequency is set
// when the driver supports it; no angle is commanded until SetAngle.
func NewServoJoints(driver PWMDriver, logger *slog.Logger) *ServoJoints {
	j := &ServoJoints{
		driver:  driver,
		dutyMap: control.MustLinearMap(angleToDutyCycle),
		logger:  log.OrDiscard(logger).With("component", "joints"),
		angles:  make(map[JointName]int, len(AllJoints)),
	}
	if fs, ok := driver.(FrequencySetter); ok {
		if err := fs.SetFrequency(PWMFrequencyHz); err != nil {
			j.logger.Warn("setting pwm frequency failed", "hz", PWMFrequencyHz, "error", err)
		}
	}
	return j
}

// SetAngle commands a joint to angle degrees from its zero position.
func (j *ServoJoints) SetAngle(name JointName, angle int) {
	limits, err := JointLimits(name)
	if err != nil {
		j.logger.Warn("ignoring command for unknown joint", "joint", name, "angle", angle)
		return
	}

	// Don't fail silently on out of range requests
	if clamped, ok := limits.Clamp(angle); ok {
		j.logger.Warn("angle out of bounds, clamping",
			"joint", name,
			"requested", angle,
			"min", limits.MinAngle,
			"max", limits.MaxAngle,
			"clamped", clamped)
		angle = clamped
	}

	duty := uint16(math.Round(j.dutyMap.Output(float64(zeroOffset(name, angle)))))
	if err := j.driver.SetPWM(ServoChannel(name), pulseSignalStart, duty); err != nil {
		j.logger.Warn("pwm write failed", "joint", name, "angle", angle, "error", err)
		return
	}
	j.angles[name] = angle
}

// Limits returns the hardware limits for a joint.
func (j *ServoJoints) Limits(name JointName) Limits {
	limits, _ := JointLimits(name)
	return limits
}

// Angle returns the last angle successfully commanded to a joint.
func (j *ServoJoints) Angle(name JointName) int {
	return j.angles[name]
}

// zeroOffset converts a kinematic angle to the raw servo angle.
// The right shoulder servo is mounted mirrored.
func zeroOffset(name JointName, angle int) int {
	switch name {
	case Waist:
		return WaistZeroOffset + angle
	case LeftShoulder:
		return LeftShoulderZeroOffset + angle
	case RightShoulder:
		return RightShoulderZeroOffset - angle
	default:
		return angle
	}
}

// ServoChannel returns the driver board channel a joint is wired to.
func ServoChannel(name JointName) uint8 {
	switch name {
	case LeftShoulder:
		return 0
	case RightShoulder:
		return 1
	default:
		return 2
	}
}
