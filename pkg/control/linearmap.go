// Package control provides the numeric controllers used by the robot behaviours:
// a clamped linear range mapper and an incremental PID controller with anti-windup.
package control

import (
	"fmt"
	"math"
)

// LinearMapParams describes the two ranges a LinearMap connects.
// InputMin maps to OutputMin and InputMax maps to OutputMax. OutputMin may be
// greater than OutputMax, which reverses the direction of the mapping.
type LinearMapParams struct {
	InputMin  float64
	InputMax  float64
	OutputMin float64
	OutputMax float64
}

// LinearMap maps a value from one linear range to another, clamping the result
// to the output range. It is immutable after construction.
type LinearMap struct {
	params LinearMapParams

	// Y = m*X + c
	m float64
	c float64

	lo, hi float64
}

// NewLinearMap builds a LinearMap. It fails with a *ConfigError when the input
// range is empty or inverted, or when any bound is not finite.
func NewLinearMap(params LinearMapParams) (*LinearMap, error) {
	for _, v := range []float64{params.InputMin, params.InputMax, params.OutputMin, params.OutputMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ConfigError{Component: "linear_map", Detail: "bounds must be finite", Err: ErrInvalidRange}
		}
	}
	if params.InputMin >= params.InputMax {
		return nil, &ConfigError{
			Component: "linear_map",
			Detail:    fmt.Sprintf("input [%g, %g]", params.InputMin, params.InputMax),
			Err:       ErrInvalidRange,
		}
	}

	m := (params.OutputMax - params.OutputMin) / (params.InputMax - params.InputMin)
	lo, hi := ordered(params.OutputMin, params.OutputMax)

	return &LinearMap{
		params: params,
		m:      m,
		c:      params.OutputMax - m*params.InputMax,
		lo:     lo,
		hi:     hi,
	}, nil
}

// MustLinearMap is like NewLinearMap but panics on invalid params.
// Only use it for compile-time constant ranges.
func MustLinearMap(params LinearMapParams) *LinearMap {
	lm, err := NewLinearMap(params)
	if err != nil {
		panic(err)
	}
	return lm
}

// Output returns the mapped value for input, clamped to the output range.
func (l *LinearMap) Output(input float64) float64 {
	// The endpoints are returned exactly so float rounding in c never leaks.
	switch input {
	case l.params.InputMin:
		return l.params.OutputMin
	case l.params.InputMax:
		return l.params.OutputMax
	}
	return clamp(l.m*input+l.c, l.lo, l.hi)
}

// Params returns the ranges the map was built from.
func (l *LinearMap) Params() LinearMapParams {
	return l.params
}

// String returns a compact description for logging.
func (l *LinearMap) String() string {
	return fmt.Sprintf("[%g, %g] -> [%g, %g]",
		l.params.InputMin, l.params.InputMax, l.params.OutputMin, l.params.OutputMax)
}
