// Package engine drives the demo's per-tick pipeline. The order is fixed
// and significant: input snapshot, vehicle kinematics, wheel spin, camera,
// then render: the camera must read the vehicle's post-update transform
// so the only camera lag is the rig's deliberate smoothing lag.
package engine

import (
	"context"
	"time"

	"github.com/opd-ai/go-roadrush/pkg/camera"
	"github.com/opd-ai/go-roadrush/pkg/config"
	"github.com/opd-ai/go-roadrush/pkg/event"
	"github.com/opd-ai/go-roadrush/pkg/input"
	"github.com/opd-ai/go-roadrush/pkg/logging"
	"github.com/opd-ai/go-roadrush/pkg/perf"
	"github.com/opd-ai/go-roadrush/pkg/render"
	"github.com/opd-ai/go-roadrush/pkg/scene"
	"github.com/opd-ai/go-roadrush/pkg/vehicle"
)

// SimStatus tracks the session lifecycle
type SimStatus int

const (
	SimStatusIdle SimStatus = iota
	SimStatusRunning
	SimStatusStopped
)

// Sim owns the simulation components and runs the frame pipeline.
// All updates happen on the goroutine that calls Step or Run; input
// recording may happen from a host callback on another goroutine because
// the latch and rig serialize their own state.
type Sim struct {
	Config   *config.SimConfig
	Latch    *input.Latch
	Vehicle  *vehicle.Controller
	Wheels   *vehicle.SpinAnimator
	Camera   *camera.Rig
	Scene    scene.Provider
	Renderer render.Renderer
	EventBus *event.Bus

	Monitor *perf.Monitor
	Tier    perf.Tier

	Status      SimStatus
	CurrentTick uint64

	logger     *logging.Logger
	lastUpdate time.Time
}

// NewSim wires the simulation core around a scene provider and renderer.
// The provider supplies the vehicle root and wheel nodes; the sim never
// creates or queries geometry.
func NewSim(cfg *config.SimConfig, provider scene.Provider, renderer render.Renderer, bus *event.Bus) *Sim {
	return &Sim{
		Config:   cfg,
		Latch:    input.NewLatch(),
		Vehicle:  vehicle.NewController(cfg.Vehicle),
		Wheels:   vehicle.NewSpinAnimator(cfg.Vehicle.SpinGain, provider.WheelTransforms()),
		Camera:   camera.NewRig(cfg.Camera),
		Scene:    provider,
		Renderer: renderer,
		EventBus: bus,
		logger:   logging.NewLogger().WithComponent("engine"),
	}
}

// Start marks the session active and announces it
func (s *Sim) Start() {
	s.Status = SimStatusRunning
	s.lastUpdate = time.Now()
	s.EventBus.Publish(&event.BaseEvent{EventType: event.SimStarted, Source: s})
	s.logger.Info(context.Background(), "simulation started",
		"tick_rate", s.Config.Vehicle.TickRate,
		"integration_mode", s.Config.Vehicle.IntegrationMode,
		"quality_tier", s.Tier.String(),
	)
}

// Stop halts the session and announces it
func (s *Sim) Stop() {
	s.Status = SimStatusStopped
	s.EventBus.Publish(&event.BaseEvent{EventType: event.SimStopped, Source: s})
	s.logger.Info(context.Background(), "simulation stopped", "ticks", s.CurrentTick)
}

// Step runs one tick of the pipeline. dt is the elapsed time sample in
// seconds; in fixed integration mode it only gates the no-op case.
func (s *Sim) Step(dt float64) {
	intent := s.Latch.Snapshot()
	s.Vehicle.Update(dt, intent)

	state := s.Vehicle.State()
	s.Wheels.Update(state.Speed)
	s.Camera.Update(state.Position, state.Heading)

	root := s.Scene.RootTransform()
	root.Position = state.Position
	root.Rotation.Y = state.Heading

	s.CurrentTick++

	if s.Renderer != nil {
		s.Renderer.Clear()
		s.Renderer.RenderFrame(render.Frame{
			Tick:           s.CurrentTick,
			CameraPosition: s.Camera.Position(),
			CameraLookAt:   s.Camera.LookAt(),
			VehicleSpeed:   state.Speed,
		})
		s.Renderer.Present()
	}

	s.EventBus.Publish(event.NewTickEvent(s, s.CurrentTick, state.Speed))
}

// Reset restores the vehicle and camera orbit to their initial state.
// The camera position glides back through smoothing rather than snapping.
func (s *Sim) Reset() {
	s.Vehicle.Reset()
	s.Wheels.Reset()
	s.Camera.Reset()

	s.EventBus.Publish(&event.BaseEvent{EventType: event.VehicleReset, Source: s})
	s.EventBus.Publish(&event.BaseEvent{EventType: event.CameraReset, Source: s})
	s.logger.Info(context.Background(), "session reset", "tick", s.CurrentTick)
}

// Run drives Step from a wall-clock ticker at the configured tick rate
// until the context is cancelled. Elapsed time is sampled per tick so
// scaled integration mode sees real frame times.
func (s *Sim) Run(ctx context.Context) error {
	s.Start()
	defer s.Stop()

	interval := time.Duration(float64(time.Second) / s.Config.Vehicle.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(s.lastUpdate).Seconds()
			s.lastUpdate = now

			frameStart := time.Now()
			s.Step(dt)
			s.observeFrame(time.Since(frameStart))
		}
	}
}

// observeFrame feeds the frame-time monitor and applies a quality
// downgrade when the monitor reports sustained over-budget frames.
func (s *Sim) observeFrame(frame time.Duration) {
	if s.Monitor == nil {
		return
	}
	if !s.Monitor.Observe(frame) {
		return
	}

	previous := s.Tier
	next := previous.Downgrade()
	if next == previous {
		return
	}

	s.Tier = next
	s.EventBus.Publish(event.NewQualityEvent(s, int(previous), int(next)))
	s.logger.Warn(context.Background(), "frame budget exceeded, quality downgraded",
		"previous_tier", previous.String(),
		"new_tier", next.String(),
		"average_frame", s.Monitor.Average().String(),
	)
}
