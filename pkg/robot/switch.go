package robot

import (
	"log/slog"

	"github.com/teslashibe/go-sonarbot/internal/log"
)

// DigitalPin is a GPIO input, configured with a pull-down.
type DigitalPin interface {
	Read() (bool, error)
}

// PinSwitch reads the mode switch from a digital input.
type PinSwitch struct {
	pin    DigitalPin
	logger *slog.Logger
}

// NewPinSwitch creates a switch on pin.
func NewPinSwitch(pin DigitalPin, logger *slog.Logger) *PinSwitch {
	return &PinSwitch{pin: pin, logger: log.OrDiscard(logger).With("component", "switch")}
}

// State returns SwitchOn when the pin reads high. A failed read reports
// SwitchOff.
func (s *PinSwitch) State() SwitchState {
	high, err := s.pin.Read()
	if err != nil {
		s.logger.Warn("switch read failed", "error", err)
		return SwitchOff
	}
	if high {
		return SwitchOn
	}
	return SwitchOff
}
