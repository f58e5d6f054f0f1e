package robot

import "fmt"

// SwitchState is the position of the mode switch.
type SwitchState int

const (
	// SwitchOff selects the tracking behaviour.
	SwitchOff SwitchState = iota

	// SwitchOn selects the dance behaviour.
	SwitchOn
)

// String returns "ON" or "OFF".
func (s SwitchState) String() string {
	switch s {
	case SwitchOn:
		return "ON"
	case SwitchOff:
		return "OFF"
	default:
		return fmt.Sprintf("SwitchState(%d)", int(s))
	}
}

// Distance is one reading of the sonar array, in centimetres.
type Distance struct {
	Left  float64
	Right float64
	Min   float64 // min(Left, Right)
}

// NewDistance builds a reading with Min filled in.
func NewDistance(left, right float64) Distance {
	return Distance{Left: left, Right: right, Min: min(left, right)}
}

// String returns the reading rounded to whole centimetres.
func (d Distance) String() string {
	return fmt.Sprintf("Right: %.0f, Left: %.0f, Min: %.0f", d.Right, d.Left, d.Min)
}

// Colour is one of the preset eye colours.
type Colour int

const (
	Off Colour = iota
	Red
	Green
	Blue
	LightBlue
)

// RGB returns the 8-bit channel values for the colour.
func (c Colour) RGB() [3]uint8 {
	switch c {
	case Red:
		return [3]uint8{255, 0, 0}
	case Green:
		return [3]uint8{0, 255, 0}
	case Blue:
		return [3]uint8{0, 0, 255}
	case LightBlue:
		return [3]uint8{173, 216, 255}
	default:
		return [3]uint8{0, 0, 0}
	}
}

// String returns the colour name.
func (c Colour) String() string {
	switch c {
	case Off:
		return "off"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case LightBlue:
		return "light_blue"
	default:
		return fmt.Sprintf("Colour(%d)", int(c))
	}
}
