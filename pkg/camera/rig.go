// Package camera implements the orbiting follow-camera for the demo.
// The rig owns its orbit state (horizontal angle, vertical angle,
// distance), reads the vehicle transform each tick, and smooths its
// position toward the ideal orbit point. The one tick of lag the
// smoothing introduces is deliberate: it is what keeps the camera from
// jittering when the vehicle turns sharply.
package camera

import (
	"math"
	"sync"

	"github.com/opd-ai/go-roadrush/pkg/config"
	"github.com/opd-ai/go-roadrush/pkg/input"
	"github.com/opd-ai/go-roadrush/pkg/physics"
)

// OrbitState is the user-controlled part of the camera: angles relative
// to the vehicle heading and the distance from the vehicle. The
// horizontal angle is unbounded and simply wraps through sine/cosine.
type OrbitState struct {
	AngleH   float64
	AngleV   float64
	Distance float64
}

// Rig computes the camera transform from the vehicle transform plus the
// orbit state. It never mutates vehicle state; the frame driver passes
// the post-update transform by value each tick.
type Rig struct {
	mu  sync.Mutex
	cfg config.CameraConfig

	orbit    OrbitState
	position physics.Vector3D
	lookAt   physics.Vector3D
	primed   bool
}

// NewRig creates a rig at the default orbit angles and distance
func NewRig(cfg config.CameraConfig) *Rig {
	return &Rig{
		cfg: cfg,
		orbit: OrbitState{
			AngleH:   0,
			AngleV:   cfg.DefaultAngleV,
			Distance: cfg.DefaultDistance,
		},
	}
}

// Orbit applies an orbit delta in radians. The vertical angle clamps
// immediately; the horizontal angle accumulates without bound.
func (r *Rig) Orbit(deltaH, deltaV float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orbit.AngleH += deltaH
	r.orbit.AngleV = physics.Clamp(r.orbit.AngleV+deltaV,
		r.cfg.MinAngleV, r.cfg.MaxAngleV)
}

// Zoom applies a distance delta, clamped immediately
func (r *Rig) Zoom(delta float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orbit.Distance = physics.Clamp(r.orbit.Distance+delta,
		r.cfg.MinDistance, r.cfg.MaxDistance)
}

// ApplyDrag converts a pointer drag delta into an orbit or zoom change
// using the configured sensitivities. Horizontal pointer movement orbits
// around the vehicle; vertical movement tilts, or zooms for a zoom drag.
func (r *Rig) ApplyDrag(kind input.DragKind, delta input.DragDelta) {
	switch kind {
	case input.DragOrbit:
		r.Orbit(delta.DX*r.cfg.OrbitSensitivity, delta.DY*r.cfg.OrbitSensitivity)
	case input.DragZoom:
		r.Zoom(delta.DY * r.cfg.ZoomSensitivity)
	}
}

// Update recomputes the camera transform from the vehicle's post-update
// position and heading. The ideal point sits behind the vehicle at the
// orbit angles; the actual position lerps toward it by the smoothing
// factor, which can never overshoot. The first update snaps so the
// session does not open with a glide from the origin.
func (r *Rig) Update(vehiclePos physics.Vector3D, vehicleHeading float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	target := r.targetFor(vehiclePos, vehicleHeading)

	if !r.primed {
		r.position = target
		r.primed = true
	} else {
		r.position = r.position.Lerp(target, r.cfg.SmoothFactor)
	}

	r.lookAt = vehiclePos.Add(physics.Vector3D{Y: r.cfg.LookAtHeight})
}

// targetFor computes the ideal camera position for a vehicle transform
func (r *Rig) targetFor(vehiclePos physics.Vector3D, vehicleHeading float64) physics.Vector3D {
	total := vehicleHeading + r.orbit.AngleH
	ground := r.orbit.Distance * math.Cos(r.orbit.AngleV)

	return vehiclePos.
		Sub(physics.FromHeading(total, ground)).
		Add(physics.Vector3D{Y: r.orbit.Distance * math.Sin(r.orbit.AngleV)})
}

// Position returns the smoothed camera position
func (r *Rig) Position() physics.Vector3D {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position
}

// LookAt returns the point the camera faces
func (r *Rig) LookAt() physics.Vector3D {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookAt
}

// OrbitState returns a copy of the current orbit state
func (r *Rig) OrbitState() OrbitState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orbit
}

// Reset restores the default orbit angles and tilt. The smoothed position
// is left alone: the camera glides back over the following ticks instead
// of teleporting.
func (r *Rig) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orbit = OrbitState{
		AngleH:   0,
		AngleV:   r.cfg.DefaultAngleV,
		Distance: r.orbit.Distance,
	}
}
