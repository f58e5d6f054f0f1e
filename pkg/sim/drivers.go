package sim

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/teslashibe/go-sonarbot/pkg/robot"
)

// PWMChannels is the channel count of the simulated driver board.
const PWMChannels = 16

// MaxRangeCM is the furthest distance that returns an echo.
const MaxRangeCM = 400

var (
	// ErrNoEcho is returned when nothing is within range.
	ErrNoEcho = errors.New("sim: no echo")

	// ErrChannel is returned for writes to a channel the board does not have.
	ErrChannel = errors.New("sim: pwm channel out of range")
)

// PWMBoard records the last pulse written to each channel.
type PWMBoard struct {
	mu      sync.Mutex
	off     [PWMChannels]uint16
	written [PWMChannels]bool
	writes  int

	frequencyHz float64
	prescale    uint8
}

// NewPWMBoard creates a board with no channels written.
func NewPWMBoard() *PWMBoard {
	return &PWMBoard{}
}

// SetPWM implements robot.PWMDriver.
func (b *PWMBoard) SetPWM(channel uint8, on, off uint16) error {
	if int(channel) >= PWMChannels {
		return fmt.Errorf("%w: %d", ErrChannel, channel)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.off[channel] = off
	b.written[channel] = true
	b.writes++
	return nil
}

// SetFrequency implements robot.FrequencySetter. The board rounds to the
// nearest prescale it can generate.
func (b *PWMBoard) SetFrequency(hz float64) error {
	if hz <= 0 {
		return fmt.Errorf("sim: invalid pwm frequency %g", hz)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frequencyHz = hz
	b.prescale = robot.PrescaleFor(hz)
	return nil
}

// Frequency returns the configured output frequency and prescale.
func (b *PWMBoard) Frequency() (hz float64, prescale uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frequencyHz, b.prescale
}

// Off returns the last off tick written to channel, and whether one was.
func (b *PWMBoard) Off(channel uint8) (uint16, bool) {
	if int(channel) >= PWMChannels {
		return 0, false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.off[channel], b.written[channel]
}

// Writes returns the number of successful writes.
func (b *PWMBoard) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

// LED records the colour of the simulated eyes.
type LED struct {
	mu     sync.Mutex
	rgb    [3]uint8
	writes int
}

// SetRGB implements robot.RGBLed.
func (l *LED) SetRGB(r, g, b uint8) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rgb = [3]uint8{r, g, b}
	l.writes++
	return nil
}

// RGB returns the current colour.
func (l *LED) RGB() [3]uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rgb
}

// Writes returns the number of colour writes.
func (l *LED) Writes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writes
}

// Side identifies a sonar.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// EchoPin is one simulated ultrasonic sensor.
type EchoPin struct {
	world *World
	side  Side
}

// Echo implements robot.EchoSensor. Reading takes as long as the echo.
func (e *EchoPin) Echo() (time.Duration, error) {
	left, right := e.world.Readings()
	cm := left
	if e.side == Right {
		cm = right
	}
	if cm > MaxRangeCM {
		e.world.Sleep(robot.CentimetresToEcho(MaxRangeCM))
		return 0, fmt.Errorf("%w: %s sonar", ErrNoEcho, e.side)
	}

	echo := robot.CentimetresToEcho(cm)
	e.world.Sleep(echo)
	return echo, nil
}

// Pin is the simulated mode switch input.
type Pin struct {
	world *World
}

// Read implements robot.DigitalPin.
func (p *Pin) Read() (bool, error) {
	return p.world.SwitchOn(), nil
}

var (
	_ robot.PWMDriver       = (*PWMBoard)(nil)
	_ robot.FrequencySetter = (*PWMBoard)(nil)
	_ robot.RGBLed          = (*LED)(nil)
	_ robot.EchoSensor      = (*EchoPin)(nil)
	_ robot.DigitalPin      = (*Pin)(nil)
)
