package robot

import (
	"log/slog"
	"time"

	"github.com/teslashibe/go-sonarbot/internal/log"
	"github.com/teslashibe/go-sonarbot/pkg/clock"
)

// RGBLed is a single RGB LED (both eyes are wired to the same driver pins).
type RGBLed interface {
	SetRGB(r, g, b uint8) error
}

// CrossFadeSteps is the number of intermediate colours in a cross-fade.
const CrossFadeSteps = 100

// LEDEyes implements Eyes on an RGB LED.
type LEDEyes struct {
	led    RGBLed
	clock  clock.Sleeper
	logger *slog.Logger
}

// NewLEDEyes creates eyes driving led. Cross-fades wait on clk between steps.
func NewLEDEyes(led RGBLed, clk clock.Sleeper, logger *slog.Logger) *LEDEyes {
	return &LEDEyes{
		led:    led,
		clock:  clk,
		logger: log.OrDiscard(logger).With("component", "eyes"),
	}
}

// SetColour switches the eyes to colour immediately.
func (e *LEDEyes) SetColour(colour Colour) {
	e.write(colour.RGB())
}

// CrossFade blends from one colour to another in CrossFadeSteps steps spread
// evenly over duration. The last step is exactly the target colour.
func (e *LEDEyes) CrossFade(from, to Colour, duration time.Duration) {
	a, b := from.RGB(), to.RGB()
	step := duration / CrossFadeSteps

	for i := 1; i <= CrossFadeSteps; i++ {
		t := float64(i) / CrossFadeSteps
		e.write([3]uint8{
			lerp8(a[0], b[0], t),
			lerp8(a[1], b[1], t),
			lerp8(a[2], b[2], t),
		})
		e.clock.Sleep(step)
	}
}

func (e *LEDEyes) write(rgb [3]uint8) {
	if err := e.led.SetRGB(rgb[0], rgb[1], rgb[2]); err != nil {
		e.logger.Warn("led write failed", "rgb", rgb, "error", err)
	}
}

// lerp8 interpolates between two channel values, rounding to nearest.
func lerp8(a, b uint8, t float64) uint8 {
	v := float64(a) + t*(float64(b)-float64(a))
	return uint8(v + 0.5)
}
