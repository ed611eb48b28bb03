// pkg/scene/procedural.go
package scene

import (
	"math/rand/v2"

	"github.com/opd-ai/go-roadrush/pkg/config"
	"github.com/opd-ai/go-roadrush/pkg/physics"
)

// ProceduralScene assembles the demo scenery from primitive nodes: a truck
// with four wheels, a road strip, and seeded roadside trees. Placement is
// deterministic for a given seed so a session can be reproduced.
type ProceduralScene struct {
	world  *Transform
	truck  *Transform
	wheels []*Transform
}

// NewProceduralScene builds the scenery. treeCount comes from the quality
// settings so low-tier devices get a sparser roadside; roadHalfWidth keeps
// trees off the drivable lane.
func NewProceduralScene(cfg config.SceneConfig, roadHalfWidth float64, treeCount int) *ProceduralScene {
	s := &ProceduralScene{
		world: NewTransform("world"),
	}

	s.buildRoad(cfg, roadHalfWidth)
	s.buildTruck()
	s.buildTrees(cfg, roadHalfWidth, treeCount)

	return s
}

// RootTransform implements Provider: the node the kinematic model steers
func (s *ProceduralScene) RootTransform() *Transform {
	return s.truck
}

// WheelTransforms implements Provider: the nodes the spin animator rolls
func (s *ProceduralScene) WheelTransforms() []*Transform {
	return s.wheels
}

// World returns the full scene tree for a renderer
func (s *ProceduralScene) World() *Transform {
	return s.world
}

func (s *ProceduralScene) buildRoad(cfg config.SceneConfig, roadHalfWidth float64) {
	road := NewTransform("road")
	road.Scale = physics.Vector3D{X: roadHalfWidth * 2, Y: 0.01, Z: cfg.RoadLength}
	s.world.AddChild(road)

	// Shoulder strips mark the lane clamp boundary visually
	for _, side := range []float64{-1, 1} {
		shoulder := NewTransform("shoulder")
		shoulder.Position = physics.Vector3D{X: side * (roadHalfWidth + 0.25), Y: 0.01, Z: 0}
		shoulder.Scale = physics.Vector3D{X: 0.5, Y: 0.01, Z: cfg.RoadLength}
		s.world.AddChild(shoulder)
	}
}

func (s *ProceduralScene) buildTruck() {
	s.truck = NewTransform("truck")
	s.world.AddChild(s.truck)

	body := NewTransform("body")
	body.Position = physics.Vector3D{X: 0, Y: 0.9, Z: -0.4}
	body.Scale = physics.Vector3D{X: 1.6, Y: 0.8, Z: 2.6}
	s.truck.AddChild(body)

	cab := NewTransform("cab")
	cab.Position = physics.Vector3D{X: 0, Y: 1.5, Z: 1.1}
	cab.Scale = physics.Vector3D{X: 1.4, Y: 0.9, Z: 1.0}
	s.truck.AddChild(cab)

	wheelOffsets := []physics.Vector3D{
		{X: -0.85, Y: 0.4, Z: 1.2},
		{X: 0.85, Y: 0.4, Z: 1.2},
		{X: -0.85, Y: 0.4, Z: -1.2},
		{X: 0.85, Y: 0.4, Z: -1.2},
	}
	for _, offset := range wheelOffsets {
		wheel := NewTransform("wheel")
		wheel.Position = offset
		wheel.Scale = physics.Vector3D{X: 0.3, Y: 0.8, Z: 0.8}
		s.truck.AddChild(wheel)
		s.wheels = append(s.wheels, wheel)
	}
}

func (s *ProceduralScene) buildTrees(cfg config.SceneConfig, roadHalfWidth float64, treeCount int) {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	for i := 0; i < treeCount; i++ {
		tree := NewTransform("tree")

		// Trees sit beyond the shoulders, alternating sides
		side := float64(1)
		if i%2 == 0 {
			side = -1
		}
		lateral := roadHalfWidth + 2 + rng.Float64()*cfg.TreeSpread
		along := (rng.Float64() - 0.5) * cfg.RoadLength

		tree.Position = physics.Vector3D{X: side * lateral, Y: 0, Z: along}

		trunk := NewTransform("trunk")
		trunk.Position = physics.Vector3D{X: 0, Y: 0.75, Z: 0}
		trunk.Scale = physics.Vector3D{X: 0.3, Y: 1.5, Z: 0.3}
		tree.AddChild(trunk)

		crown := NewTransform("crown")
		crown.Position = physics.Vector3D{X: 0, Y: 2.2, Z: 0}
		crown.Scale = physics.Vector3D{X: 1.4, Y: 1.6, Z: 1.4}
		tree.AddChild(crown)

		s.world.AddChild(tree)
	}
}
