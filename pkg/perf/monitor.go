// pkg/perf/monitor.go
package perf

import (
	"sync"
	"time"
)

// Monitor tracks recent frame durations with an exponential moving
// average and recommends a quality downgrade after the average has been
// over budget for a sustained stretch. One slow frame never triggers a
// downgrade; garbage-collection hiccups are absorbed by the average.
type Monitor struct {
	mu sync.Mutex

	budget    time.Duration
	alpha     float64
	threshold int

	average   float64 // seconds
	overCount int
	primed    bool
}

// MonitorOption configures a Monitor
type MonitorOption func(*Monitor)

// WithSmoothing sets the EMA coefficient in (0,1]
func WithSmoothing(alpha float64) MonitorOption {
	return func(m *Monitor) { m.alpha = alpha }
}

// WithThreshold sets how many consecutive over-budget observations are
// required before a downgrade is recommended
func WithThreshold(frames int) MonitorOption {
	return func(m *Monitor) { m.threshold = frames }
}

// NewMonitor creates a monitor for the given per-frame time budget.
// Defaults: smoothing 0.1, threshold 120 frames (two seconds at 60 Hz).
func NewMonitor(budget time.Duration, opts ...MonitorOption) *Monitor {
	m := &Monitor{
		budget:    budget,
		alpha:     0.1,
		threshold: 120,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Observe records one frame duration. It returns true when the smoothed
// frame time has exceeded the budget for the configured stretch; the
// counter then restarts so the caller can apply one downgrade per report.
func (m *Monitor) Observe(frame time.Duration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	seconds := frame.Seconds()
	if !m.primed {
		m.average = seconds
		m.primed = true
	} else {
		m.average += (seconds - m.average) * m.alpha
	}

	if m.average > m.budget.Seconds() {
		m.overCount++
	} else {
		m.overCount = 0
	}

	if m.overCount >= m.threshold {
		m.overCount = 0
		return true
	}
	return false
}

// Average returns the smoothed frame duration
func (m *Monitor) Average() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	return time.Duration(m.average * float64(time.Second))
}
