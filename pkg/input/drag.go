// pkg/input/drag.go
package input

// DragKind distinguishes a camera orbit drag from a pinch/drag zoom
type DragKind int

const (
	DragOrbit DragKind = iota
	DragZoom
)

// DragDelta is the pointer movement since the previous move event, in
// screen pixels. The camera rig converts it to angle or distance deltas.
type DragDelta struct {
	DX float64
	DY float64
}

// dragSession holds the state needed to turn absolute pointer positions
// into per-move deltas. Only one session is open at a time; a move event
// outside a session is a stray and produces no delta.
type dragSession struct {
	active bool
	kind   DragKind
	lastX  float64
	lastY  float64
}

// BeginDrag opens a drag session at the given pointer position.
// Beginning while a session is already open restarts it, which also
// recovers from a missed release event.
func (l *Latch) BeginDrag(kind DragKind, x, y float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.drag = dragSession{active: true, kind: kind, lastX: x, lastY: y}
}

// MoveDrag consumes a pointer move event. It returns the delta since the
// previous event and true only while a session is open; stray moves return
// false and change nothing.
func (l *Latch) MoveDrag(x, y float64) (DragDelta, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.drag.active {
		return DragDelta{}, false
	}

	delta := DragDelta{DX: x - l.drag.lastX, DY: y - l.drag.lastY}
	l.drag.lastX = x
	l.drag.lastY = y
	return delta, true
}

// EndDrag closes the current session. Ending without an open session is a no-op.
func (l *Latch) EndDrag() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.drag.active = false
}

// DragActive reports whether a session is open and of which kind
func (l *Latch) DragActive() (DragKind, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.drag.kind, l.drag.active
}
