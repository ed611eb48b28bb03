// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-roadrush/pkg/logging"
	"github.com/opd-ai/go-roadrush/pkg/physics"
)

// Frame carries everything a renderer needs for one tick: the smoothed
// camera transform and a little telemetry for overlays. Scene geometry is
// handed to the renderer once at setup, not per frame; only transforms
// change between frames.
type Frame struct {
	Tick           uint64
	CameraPosition physics.Vector3D
	CameraLookAt   physics.Vector3D
	VehicleSpeed   float64
}

// Renderer consumes the camera transform and scene graph once per tick,
// after the simulation pipeline completes.
type Renderer interface {
	Clear()
	RenderFrame(frame Frame)
	Present()
}

// NullRenderer is a headless Renderer for tests and scripted runs.
type NullRenderer struct {
	logger *logging.Logger

	frames uint64
	last   Frame
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger().WithComponent("render"),
	}
}

// Clear implements Renderer.
func (r *NullRenderer) Clear() {}

// RenderFrame implements Renderer.
func (r *NullRenderer) RenderFrame(frame Frame) {
	r.frames++
	r.last = frame
	r.logger.Debug(context.Background(), "frame rendered",
		"tick", frame.Tick,
		"camera_x", frame.CameraPosition.X,
		"camera_y", frame.CameraPosition.Y,
		"camera_z", frame.CameraPosition.Z,
		"speed", frame.VehicleSpeed,
	)
}

// Present implements Renderer.
func (r *NullRenderer) Present() {}

// FrameCount returns how many frames have been rendered
func (r *NullRenderer) FrameCount() uint64 {
	return r.frames
}

// LastFrame returns the most recently rendered frame
func (r *NullRenderer) LastFrame() Frame {
	return r.last
}
