package behavior

import "errors"

var (
	// ErrStateResolution is returned when no state matches the current input.
	// It is fatal: the control loop stops and the last commanded angles hold.
	ErrStateResolution = errors.New("behavior: desired state resolved to none")

	// ErrInvalidThresholds is returned when a distance band is empty or inverted.
	ErrInvalidThresholds = errors.New("behavior: min distance must be less than max distance")
)
