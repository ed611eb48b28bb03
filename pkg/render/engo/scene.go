// pkg/render/engo/scene.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-roadrush/pkg/engine"
	"github.com/opd-ai/go-roadrush/pkg/event"
	"github.com/opd-ai/go-roadrush/pkg/scene"
)

// DemoScene is the Engo scene hosting the driving demo: it owns the ECS
// world and wires the simulation pipeline, input adapter, and camera
// applier into Engo's per-frame update.
type DemoScene struct {
	world *ecs.World

	sim      *engine.Sim
	eventBus *event.Bus
	scenery  *scene.ProceduralScene

	renderer *EngoRenderer
	camera   *CameraSystem
	input    *InputSystem
}

// NewDemoScene creates the scene around an already-constructed sim
func NewDemoScene(sim *engine.Sim, scenery *scene.ProceduralScene, eventBus *event.Bus) *DemoScene {
	return &DemoScene{
		sim:      sim,
		scenery:  scenery,
		eventBus: eventBus,
		world:    &ecs.World{},
	}
}

// Type returns the scene type (required by Engo)
func (s *DemoScene) Type() string {
	return "DemoScene"
}

// Preload is called before the scene starts (required by Engo)
func (s *DemoScene) Preload() {
	// All geometry is procedural shapes; nothing to load
}

// Setup is called when the scene starts (required by Engo)
func (s *DemoScene) Setup(u engo.Updater) {
	s.world = &ecs.World{}

	s.world.AddSystem(&common.RenderSystem{})
	s.world.AddSystem(&common.MouseSystem{})

	SetupInputBindings()

	// Pipeline order within a frame follows system registration order:
	// input first, then the simulation step, then the camera applier.
	s.input = NewInputSystem(s.sim)
	s.world.AddSystem(s.input)

	s.world.AddSystem(&simSystem{sim: s.sim})

	s.renderer = NewEngoRenderer(s.world, s.scenery)
	if err := s.renderer.Initialize(); err != nil {
		panic("failed to initialize renderer: " + err.Error())
	}
	s.sim.Renderer = s.renderer

	s.camera = NewCameraSystem(s.sim.Camera)
	s.world.AddSystem(s.camera)

	s.sim.Start()
}

// simSystem drives one simulation tick per Engo frame
type simSystem struct {
	sim *engine.Sim
}

// Add satisfies the ecs.System interface
func (ss *simSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface
func (ss *simSystem) Remove(basic ecs.BasicEntity) {}

// Update advances the simulation by the frame's elapsed time
func (ss *simSystem) Update(dt float32) {
	ss.sim.Step(float64(dt))
}
