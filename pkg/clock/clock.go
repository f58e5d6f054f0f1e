// Package clock provides the wait primitive behind every timed sequence
// (cross-fades, dance sweeps, the tracking control period).
//
// Choreography code never calls time.Sleep directly; it is handed a Sleeper so
// the single-threaded blocking model stays explicit and tests can run instantly.
package clock

import "time"

// Sleeper blocks the calling control flow for a duration.
type Sleeper interface {
	Sleep(d time.Duration)
}

// Real sleeps on the wall clock.
type Real struct{}

// Sleep blocks for d.
func (Real) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}

// SleeperFunc adapts a function to the Sleeper interface.
type SleeperFunc func(d time.Duration)

// Sleep calls f(d).
func (f SleeperFunc) Sleep(d time.Duration) {
	f(d)
}

var _ Sleeper = Real{}
