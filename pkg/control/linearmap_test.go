package control

import (
	"errors"
	"math"
	"testing"
)

const floatTolerance = 1e-9

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestLinearMap_Endpoints(t *testing.T) {
	tests := []struct {
		name   string
		params LinearMapParams
	}{
		{"dance tempo", LinearMapParams{InputMin: 25, InputMax: 75, OutputMin: 500, OutputMax: 3000}},
		{"servo duty", LinearMapParams{InputMin: 0, InputMax: 180, OutputMin: 60, OutputMax: 450}},
		{"reversed output", LinearMapParams{InputMin: 15, InputMax: 85, OutputMin: 3000, OutputMax: 500}},
		{"negative input", LinearMapParams{InputMin: -45, InputMax: 45, OutputMin: -1, OutputMax: 1}},
		{"awkward floats", LinearMapParams{InputMin: 0.1, InputMax: 0.7, OutputMin: 1.3, OutputMax: 9.9}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lm, err := NewLinearMap(tc.params)
			if err != nil {
				t.Fatalf("NewLinearMap: %v", err)
			}
			if got := lm.Output(tc.params.InputMin); got != tc.params.OutputMin {
				t.Errorf("Output(InputMin) = %v, want %v", got, tc.params.OutputMin)
			}
			if got := lm.Output(tc.params.InputMax); got != tc.params.OutputMax {
				t.Errorf("Output(InputMax) = %v, want %v", got, tc.params.OutputMax)
			}
		})
	}
}

func TestLinearMap_Midpoint(t *testing.T) {
	lm := MustLinearMap(LinearMapParams{InputMin: 25, InputMax: 75, OutputMin: 500, OutputMax: 3000})

	if got := lm.Output(50); !floatEquals(got, 1750) {
		t.Errorf("Output(50) = %v, want 1750", got)
	}
	if got := lm.Params().OutputMax; got != 3000 {
		t.Errorf("Params().OutputMax = %v, want 3000", got)
	}
	if got, want := lm.String(), "[25, 75] -> [500, 3000]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLinearMap_ClampedAndMonotonic(t *testing.T) {
	tests := []LinearMapParams{
		{InputMin: 25, InputMax: 75, OutputMin: 500, OutputMax: 3000},
		{InputMin: 25, InputMax: 75, OutputMin: 3000, OutputMax: 500},
		{InputMin: 0, InputMax: 180, OutputMin: 60, OutputMax: 450},
	}

	for _, params := range tests {
		lm := MustLinearMap(params)
		lo, hi := ordered(params.OutputMin, params.OutputMax)
		increasing := params.OutputMax > params.OutputMin

		prev := lm.Output(-1000)
		for x := -1000.0; x <= 1000; x += 0.5 {
			got := lm.Output(x)
			if got < lo || got > hi {
				t.Fatalf("%v: Output(%v) = %v outside [%v, %v]", lm, x, got, lo, hi)
			}
			if increasing && got < prev {
				t.Fatalf("%v: not increasing at %v (%v < %v)", lm, x, got, prev)
			}
			if !increasing && got > prev {
				t.Fatalf("%v: not decreasing at %v (%v > %v)", lm, x, got, prev)
			}
			prev = got
		}
	}
}

func TestLinearMap_InvalidRange(t *testing.T) {
	tests := []struct {
		name   string
		params LinearMapParams
	}{
		{"equal inputs", LinearMapParams{InputMin: 10, InputMax: 10, OutputMin: 0, OutputMax: 1}},
		{"inverted inputs", LinearMapParams{InputMin: 75, InputMax: 25, OutputMin: 0, OutputMax: 1}},
		{"nan bound", LinearMapParams{InputMin: math.NaN(), InputMax: 25, OutputMin: 0, OutputMax: 1}},
		{"inf bound", LinearMapParams{InputMin: 0, InputMax: 25, OutputMin: 0, OutputMax: math.Inf(1)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lm, err := NewLinearMap(tc.params)
			if err == nil {
				t.Fatalf("expected error, got map %v", lm)
			}
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("expected ErrInvalidRange, got %v", err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Component != "linear_map" {
				t.Errorf("expected *ConfigError for linear_map, got %T %v", err, err)
			}
		})
	}
}

func TestMustLinearMap_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for inverted range")
		}
	}()
	MustLinearMap(LinearMapParams{InputMin: 1, InputMax: 0})
}
