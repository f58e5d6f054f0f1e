package clock

import "time"

// Recorder is a Sleeper that returns immediately and records every wait.
// Use it in tests to assert on timing without blocking.
type Recorder struct {
	calls []time.Duration
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Sleep records d.
func (r *Recorder) Sleep(d time.Duration) {
	r.calls = append(r.calls, d)
}

// Calls returns a copy of the recorded waits.
func (r *Recorder) Calls() []time.Duration {
	out := make([]time.Duration, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns the number of recorded waits.
func (r *Recorder) Count() int {
	return len(r.calls)
}

// Total returns the sum of all recorded waits.
func (r *Recorder) Total() time.Duration {
	var total time.Duration
	for _, d := range r.calls {
		total += d
	}
	return total
}

// Reset forgets all recorded waits.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
}
