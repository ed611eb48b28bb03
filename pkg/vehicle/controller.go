// Package vehicle implements the kinematic motion model for the demo
// truck. The model is deliberately non-physical: speed changes by fixed
// per-tick increments, coasting decays multiplicatively, and lateral
// position is hard-clamped to the road. The tuning constants assume a
// 60 Hz tick; scaled integration mode preserves that tuning when the
// host frame rate varies.
package vehicle

import (
	"math"
	"sync"

	"github.com/opd-ai/go-roadrush/pkg/config"
	"github.com/opd-ai/go-roadrush/pkg/input"
	"github.com/opd-ai/go-roadrush/pkg/physics"
)

// State is the vehicle's authoritative transform plus its scalar speed.
// Heading 0 faces +Z; speed is signed, negative in reverse.
type State struct {
	Position physics.Vector3D
	Heading  float64
	Speed    float64
}

// Velocity derives the world-space velocity from heading and speed
func (s State) Velocity() physics.Vector3D {
	return physics.FromHeading(s.Heading, s.Speed)
}

// Controller owns the vehicle state and advances it once per tick.
// Consumers read the state by value; nothing outside the controller
// mutates it.
type Controller struct {
	mu    sync.Mutex
	cfg   config.VehicleConfig
	state State
}

// NewController creates a controller at the origin, at rest, facing +Z
func NewController(cfg config.VehicleConfig) *Controller {
	return &Controller{cfg: cfg}
}

// State returns a copy of the current vehicle state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Reset restores the initial state: origin, heading 0, at rest
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = State{}
}

// Update advances the state by one tick from the current intents.
// dt is in seconds; dt == 0 is a safe no-op. In fixed integration mode the
// per-tick constants apply as-is regardless of dt; in scaled mode they are
// scaled by dt against the reference tick rate.
//
// Order is fixed: longitudinal dynamics, steering, integration, lane clamp.
func (c *Controller) Update(dt float64, intent input.ControlIntent) {
	if dt <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	scale := 1.0
	if c.cfg.IntegrationMode == config.IntegrationScaled {
		scale = dt * c.cfg.TickRate
	}

	c.updateSpeed(intent, scale)
	c.updateHeading(intent, scale)

	step := physics.FromHeading(c.state.Heading, c.state.Speed*scale)
	c.state.Position = c.state.Position.Add(step)

	// Lane clamp: lateral drift beyond the road is silently absorbed
	c.state.Position.X = physics.Clamp(c.state.Position.X,
		-c.cfg.RoadHalfWidth, c.cfg.RoadHalfWidth)
}

// updateSpeed applies pedal input or coasting friction, then clamps.
// Accelerate wins over brake when both are held; friction applies only
// when neither pedal is down. Reverse is capped at half the forward max.
func (c *Controller) updateSpeed(intent input.ControlIntent, scale float64) {
	switch {
	case intent.Accelerate:
		c.state.Speed += c.cfg.AccelRate * scale
	case intent.Brake:
		c.state.Speed -= c.cfg.BrakeRate * scale
	default:
		// Multiplicative decay; the exponent keeps the per-tick decay
		// rate identical when scaled mode stretches or splits ticks
		c.state.Speed *= math.Pow(c.cfg.Friction, scale)
	}

	c.state.Speed = physics.Clamp(c.state.Speed,
		-c.cfg.MaxSpeed*0.5, c.cfg.MaxSpeed)
}

// updateHeading turns the vehicle when steering is held and the speed is
// outside the deadzone. Turn response scales with speed, and the sign of
// the speed flips the response so reversing steers like a real car.
func (c *Controller) updateHeading(intent input.ControlIntent, scale float64) {
	steer := intent.Steer()
	if steer == 0 {
		return
	}
	if math.Abs(c.state.Speed) <= c.cfg.SteerDeadzone {
		return
	}

	speedFactor := math.Abs(c.state.Speed) / c.cfg.MaxSpeed
	c.state.Heading += c.cfg.TurnRate * speedFactor *
		physics.Sign(c.state.Speed) * steer * scale
}
