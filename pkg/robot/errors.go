package robot

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCapability is returned when a Hardware bundle is incomplete.
	ErrMissingCapability = errors.New("robot: missing hardware capability")

	// ErrUnknownJoint is returned for joint names outside the limits table.
	ErrUnknownJoint = errors.New("robot: unknown joint")
)

// CapabilityError names the capability missing from a Hardware bundle.
type CapabilityError struct {
	Name string
}

// Error implements the error interface.
func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingCapability, e.Name)
}

// Unwrap returns ErrMissingCapability.
func (e *CapabilityError) Unwrap() error {
	return ErrMissingCapability
}
