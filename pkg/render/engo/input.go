// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-roadrush/pkg/engine"
	"github.com/opd-ai/go-roadrush/pkg/input"
)

// binding ties an Engo button name to a latch intent and the source
// identifier recorded for it
type binding struct {
	button string
	intent input.Intent
	source string
}

var drivingBindings = []binding{
	{button: "accelerate", intent: input.IntentAccelerate, source: "key:accelerate"},
	{button: "brake", intent: input.IntentBrake, source: "key:brake"},
	{button: "steerLeft", intent: input.IntentSteerLeft, source: "key:steerLeft"},
	{button: "steerRight", intent: input.IntentSteerRight, source: "key:steerRight"},
}

// InputSystem adapts Engo's polled input into latch recordings and camera
// drag sessions. The latch keeps per-source state, so this adapter only
// reports edges: a press records a source active, a release records it
// inactive, and held keys generate nothing in between.
type InputSystem struct {
	sim *engine.Sim

	held     map[string]bool
	dragging bool
}

// NewInputSystem creates the input adapter for a sim
func NewInputSystem(sim *engine.Sim) *InputSystem {
	return &InputSystem{
		sim:  sim,
		held: make(map[string]bool),
	}
}

// Add satisfies the ecs.System interface
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update polls input state and forwards edges to the simulation
func (is *InputSystem) Update(dt float32) {
	is.handleDrivingButtons()
	is.handleReset()
	is.handleMouse()
}

// handleDrivingButtons edge-detects the driving controls
func (is *InputSystem) handleDrivingButtons() {
	for _, b := range drivingBindings {
		down := engo.Input.Button(b.button).Down()
		if down == is.held[b.button] {
			continue
		}
		is.held[b.button] = down

		if down {
			is.sim.Latch.RecordActive(b.source, b.intent)
		} else {
			is.sim.Latch.RecordInactive(b.source, b.intent)
		}
	}
}

// handleReset restores the initial vehicle and camera orbit state
func (is *InputSystem) handleReset() {
	if engo.Input.Button("reset").JustPressed() {
		is.sim.Reset()
	}
}

// handleMouse turns mouse drags into orbit deltas and the scroll wheel
// into zoom deltas
func (is *InputSystem) handleMouse() {
	mouse := engo.Input.Mouse

	switch mouse.Action {
	case engo.Press:
		is.dragging = true
		is.sim.Latch.BeginDrag(input.DragOrbit, float64(mouse.X), float64(mouse.Y))
	case engo.Release:
		is.dragging = false
		is.sim.Latch.EndDrag()
	case engo.Move:
		if is.dragging {
			if delta, ok := is.sim.Latch.MoveDrag(float64(mouse.X), float64(mouse.Y)); ok {
				is.sim.Camera.ApplyDrag(input.DragOrbit, delta)
			}
		}
	}

	if mouse.ScrollY != 0 {
		// Scroll up zooms in
		is.sim.Camera.Zoom(float64(-mouse.ScrollY) * is.sim.Config.Camera.ZoomSensitivity * 20)
	}
}

// SetupInputBindings registers the demo's key bindings
func SetupInputBindings() {
	engo.Input.RegisterButton("accelerate", engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton("brake", engo.KeyS, engo.KeyArrowDown)
	engo.Input.RegisterButton("steerLeft", engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton("steerRight", engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton("reset", engo.KeyR)
}
