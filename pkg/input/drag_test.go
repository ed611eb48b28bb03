package input

import "testing"

func TestDrag_MoveOutsideSessionIsStray(t *testing.T) {
	latch := NewLatch()

	if _, ok := latch.MoveDrag(100, 100); ok {
		t.Error("move without an open session must produce no delta")
	}
}

func TestDrag_DeltasBetweenMoves(t *testing.T) {
	latch := NewLatch()

	latch.BeginDrag(DragOrbit, 100, 200)

	delta, ok := latch.MoveDrag(110, 195)
	if !ok {
		t.Fatal("move inside session should produce a delta")
	}
	if delta.DX != 10 || delta.DY != -5 {
		t.Errorf("expected delta {10 -5}, got %+v", delta)
	}

	// Next delta is relative to the previous move, not the start
	delta, ok = latch.MoveDrag(110, 200)
	if !ok || delta.DX != 0 || delta.DY != 5 {
		t.Errorf("expected delta {0 5}, got %+v ok=%v", delta, ok)
	}
}

func TestDrag_EndClosesSession(t *testing.T) {
	latch := NewLatch()

	latch.BeginDrag(DragZoom, 0, 0)
	latch.EndDrag()

	if _, ok := latch.MoveDrag(5, 5); ok {
		t.Error("moves after release must be strays")
	}
	if _, active := latch.DragActive(); active {
		t.Error("session should be closed")
	}
}

func TestDrag_BeginRestartsSession(t *testing.T) {
	// A missed release leaves the session open; the next begin recovers
	// by restarting from the new anchor point.
	latch := NewLatch()

	latch.BeginDrag(DragOrbit, 0, 0)
	latch.MoveDrag(50, 50)

	latch.BeginDrag(DragOrbit, 500, 500)
	delta, ok := latch.MoveDrag(501, 500)
	if !ok || delta.DX != 1 || delta.DY != 0 {
		t.Errorf("restarted session should anchor at the new begin, got %+v ok=%v", delta, ok)
	}
}

func TestDrag_KindReported(t *testing.T) {
	latch := NewLatch()

	latch.BeginDrag(DragZoom, 0, 0)
	kind, active := latch.DragActive()
	if !active || kind != DragZoom {
		t.Errorf("expected active zoom session, got kind=%v active=%v", kind, active)
	}

	latch.EndDrag()
}

func TestDrag_EndWithoutBegin(t *testing.T) {
	latch := NewLatch()
	latch.EndDrag() // must be a no-op
}
