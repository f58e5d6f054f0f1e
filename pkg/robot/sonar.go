package robot

import (
	"log/slog"
	"time"

	"github.com/teslashibe/go-sonarbot/internal/log"
	"github.com/teslashibe/go-sonarbot/pkg/clock"
)

// EchoSensor triggers one ultrasonic ping (HC-SR04 style) and returns the
// width of the echo pulse, i.e. the round-trip time of the sound wave.
// A sensor that hears no echo returns zero or an error.
type EchoSensor interface {
	Echo() (time.Duration, error)
}

const (
	// SpeedOfSound in metres per second.
	SpeedOfSound = 343.0

	metresToCentimetres = 100.0

	// InterReadDelay separates the two pings so they don't hear each other.
	InterReadDelay = 30 * time.Millisecond
)

// SonarArray combines two sensors mounted 15 degrees apart at the front of
// the robot. Comparing them tells whether the nearest object is to the left,
// to the right or straight ahead.
type SonarArray struct {
	right  EchoSensor
	left   EchoSensor
	clock  clock.Sleeper
	logger *slog.Logger
}

// NewSonarArray creates a sonar array from the right and left sensors.
func NewSonarArray(right, left EchoSensor, clk clock.Sleeper, logger *slog.Logger) *SonarArray {
	return &SonarArray{
		right:  right,
		left:   left,
		clock:  clk,
		logger: log.OrDiscard(logger).With("component", "sonar"),
	}
}

// Distance reads the right sensor, waits InterReadDelay, then reads the left.
//
// A missing echo reads as 0cm. It cannot be told apart from an object touching
// the sensor, so a timeout is treated as "extremely close".
func (s *SonarArray) Distance() Distance {
	right := s.read("right", s.right)
	s.clock.Sleep(InterReadDelay)
	left := s.read("left", s.left)

	return NewDistance(left, right)
}

func (s *SonarArray) read(side string, sensor EchoSensor) float64 {
	echo, err := sensor.Echo()
	if err != nil {
		s.logger.Warn("sonar read failed, assuming obstruction", "side", side, "error", err)
		return 0
	}
	return EchoToCentimetres(echo)
}

// EchoToCentimetres converts a round-trip echo time to a one-way distance.
func EchoToCentimetres(echo time.Duration) float64 {
	if echo <= 0 {
		return 0
	}
	oneWay := echo.Seconds() / 2
	return oneWay * SpeedOfSound * metresToCentimetres
}

// CentimetresToEcho is the inverse of EchoToCentimetres.
func CentimetresToEcho(cm float64) time.Duration {
	if cm <= 0 {
		return 0
	}
	seconds := 2 * cm / metresToCentimetres / SpeedOfSound
	return time.Duration(seconds * float64(time.Second))
}
