// Package input implements the control latch for the driving demo: every
// raw input source (a keyboard key, a touch contact, a mouse button) records
// its own press/release against a logical intent, and an intent reads active
// while at least one of its sources is held. Tracking sources independently
// keeps simultaneous keyboard and multi-touch input correct: releasing one
// finger must not clear an intent another finger still holds.
package input

import "sync"

// Intent identifies a logical driving control
type Intent string

const (
	IntentAccelerate Intent = "accelerate"
	IntentBrake      Intent = "brake"
	IntentSteerLeft  Intent = "steer_left"
	IntentSteerRight Intent = "steer_right"
)

// ControlIntent is a point-in-time snapshot of all driving intents
type ControlIntent struct {
	Accelerate bool
	Brake      bool
	SteerLeft  bool
	SteerRight bool
}

// Steer returns the net steering input: -1 left, +1 right, 0 when neither
// or both directions are held (both-pressed nets to zero).
func (c ControlIntent) Steer() float64 {
	switch {
	case c.SteerLeft && c.SteerRight:
		return 0
	case c.SteerLeft:
		return -1
	case c.SteerRight:
		return 1
	}
	return 0
}

// Latch owns the per-source intent state. It is safe for use from a host
// that delivers input events on a different goroutine than the update loop.
type Latch struct {
	mu      sync.RWMutex
	sources map[Intent]map[string]struct{}
	drag    dragSession
}

// NewLatch creates an empty latch with all driving intents bound
func NewLatch() *Latch {
	return &Latch{
		sources: map[Intent]map[string]struct{}{
			IntentAccelerate: {},
			IntentBrake:      {},
			IntentSteerLeft:  {},
			IntentSteerRight: {},
		},
	}
}

// RecordActive marks a source as holding an intent. Unknown intents and
// empty source identifiers are silently ignored: a dropped control binding
// degrades to "that input never arrives", never to an error.
func (l *Latch) RecordActive(source string, intent Intent) {
	if source == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	active, ok := l.sources[intent]
	if !ok {
		return
	}
	active[source] = struct{}{}
}

// RecordInactive clears a source's hold on an intent. Releasing a source
// that was never recorded is a no-op.
func (l *Latch) RecordInactive(source string, intent Intent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	active, ok := l.sources[intent]
	if !ok {
		return
	}
	delete(active, source)
}

// IsActive reports whether any bound source currently holds the intent
func (l *Latch) IsActive(intent Intent) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.sources[intent]) > 0
}

// Snapshot returns the current state of all driving intents as one value,
// read once per tick by the kinematic model.
func (l *Latch) Snapshot() ControlIntent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return ControlIntent{
		Accelerate: len(l.sources[IntentAccelerate]) > 0,
		Brake:      len(l.sources[IntentBrake]) > 0,
		SteerLeft:  len(l.sources[IntentSteerLeft]) > 0,
		SteerRight: len(l.sources[IntentSteerRight]) > 0,
	}
}

// Clear drops every held source. Intended for focus-loss handling in a
// host frontend; a missed release otherwise persists until the next
// press/release pair for that source.
func (l *Latch) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for intent := range l.sources {
		l.sources[intent] = map[string]struct{}{}
	}
}
