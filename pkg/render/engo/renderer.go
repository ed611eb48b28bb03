// pkg/render/engo/renderer.go
package engo

import (
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-roadrush/pkg/render"
	"github.com/opd-ai/go-roadrush/pkg/scene"
)

// pixelsPerUnit is the top-down projection scale
const pixelsPerUnit = 16.0

// worldToScreen projects a ground-plane point into Engo's screen plane.
// World +Z (forward) maps to screen up, which is negative Y in Engo.
func worldToScreen(x, z float64) (float32, float32) {
	return float32(x * pixelsPerUnit), float32(-z * pixelsPerUnit)
}

// visual pairs a scene node with its ECS rendering components
type visual struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
	node   *scene.Transform
}

// EngoRenderer implements render.Renderer as a top-down projection of the
// scene tree. Every drawable node gets one ECS entity at setup; per frame
// only the transforms are recomputed, so the vehicle and its wheels follow
// the simulation while the scenery stays put.
type EngoRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem
	scenery      *scene.ProceduralScene

	visuals []*visual
}

// NewEngoRenderer creates a renderer for the procedural scenery
func NewEngoRenderer(world *ecs.World, scenery *scene.ProceduralScene) *EngoRenderer {
	return &EngoRenderer{
		world:   world,
		scenery: scenery,
	}
}

// Initialize locates the render system and builds one entity per drawable
// scene node
func (r *EngoRenderer) Initialize() error {
	for _, system := range r.world.Systems() {
		if rs, ok := system.(*common.RenderSystem); ok {
			r.renderSystem = rs
		}
	}
	if r.renderSystem == nil {
		r.renderSystem = &common.RenderSystem{}
		r.world.AddSystem(r.renderSystem)
	}

	r.buildVisuals(r.scenery.World(), 0, 0, 0)
	return nil
}

// buildVisuals walks the scene tree accumulating ground-plane offsets and
// yaw so children follow their parents (wheels turn with the truck).
func (r *EngoRenderer) buildVisuals(node *scene.Transform, originX, originZ, yaw float64) {
	worldX, worldZ, worldYaw := composeGroundTransform(node, originX, originZ, yaw)

	if style, ok := styleFor(node.Name); ok {
		v := &visual{
			basic: ecs.NewBasic(),
			node:  node,
		}
		v.render = common.RenderComponent{
			Drawable: style.drawable,
			Color:    style.color,
		}
		v.space = r.spaceFor(node, worldX, worldZ, worldYaw)
		r.renderSystem.Add(&v.basic, &v.render, &v.space)
		r.visuals = append(r.visuals, v)
	}

	for _, child := range node.Children() {
		r.buildVisuals(child, worldX, worldZ, worldYaw)
	}
}

// spaceFor computes the ECS space component for a node's current transform
func (r *EngoRenderer) spaceFor(node *scene.Transform, worldX, worldZ, worldYaw float64) common.SpaceComponent {
	width := float32(node.Scale.X * pixelsPerUnit)
	height := float32(node.Scale.Z * pixelsPerUnit)

	px, py := worldToScreen(worldX, worldZ)
	return common.SpaceComponent{
		Position: engo.Point{X: px - width/2, Y: py - height/2},
		Width:    width,
		Height:   height,
		Rotation: float32(worldYaw * 180 / math.Pi),
	}
}

// Clear implements render.Renderer; Engo clears the frame itself
func (r *EngoRenderer) Clear() {}

// RenderFrame implements render.Renderer: refresh every visual's space
// component from the scene tree's current transforms
func (r *EngoRenderer) RenderFrame(frame render.Frame) {
	r.refreshVisuals(r.scenery.World(), 0, 0, 0)
}

// Present implements render.Renderer; Engo presents through its own loop
func (r *EngoRenderer) Present() {}

// refreshVisuals mirrors buildVisuals but only updates existing entities
func (r *EngoRenderer) refreshVisuals(node *scene.Transform, originX, originZ, yaw float64) {
	worldX, worldZ, worldYaw := composeGroundTransform(node, originX, originZ, yaw)

	for _, v := range r.visuals {
		if v.node == node {
			v.space = r.spaceFor(node, worldX, worldZ, worldYaw)
			break
		}
	}

	for _, child := range node.Children() {
		r.refreshVisuals(child, worldX, worldZ, worldYaw)
	}
}

// composeGroundTransform applies a parent's ground-plane transform to a
// node: the local offset rotates by the parent yaw, yaws accumulate.
func composeGroundTransform(node *scene.Transform, originX, originZ, yaw float64) (x, z, outYaw float64) {
	sin, cos := math.Sin(yaw), math.Cos(yaw)
	x = originX + node.Position.X*cos + node.Position.Z*sin
	z = originZ - node.Position.X*sin + node.Position.Z*cos
	outYaw = yaw + node.Rotation.Y
	return x, z, outYaw
}
