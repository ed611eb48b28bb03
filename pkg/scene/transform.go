// Package scene models the demo's scenery as a tree of transform nodes.
// The simulation core only ever writes to the vehicle root and its wheel
// nodes; everything else is static geometry placed once at construction.
// A provider backed by a loaded asset can replace the procedural one
// without the core noticing.
package scene

import "github.com/opd-ai/go-roadrush/pkg/physics"

// Transform is one node in the scene tree: a local position, euler
// rotation (radians), scale, and child nodes.
type Transform struct {
	Name     string
	Position physics.Vector3D
	Rotation physics.Vector3D
	Scale    physics.Vector3D

	children []*Transform
}

// NewTransform creates a named node with identity scale
func NewTransform(name string) *Transform {
	return &Transform{
		Name:  name,
		Scale: physics.Vector3D{X: 1, Y: 1, Z: 1},
	}
}

// AddChild attaches a node and returns it for chaining
func (t *Transform) AddChild(child *Transform) *Transform {
	t.children = append(t.children, child)
	return child
}

// Children returns the node's direct children
func (t *Transform) Children() []*Transform {
	return t.children
}

// Walk visits the node and all descendants depth-first
func (t *Transform) Walk(visit func(*Transform)) {
	visit(t)
	for _, child := range t.children {
		child.Walk(visit)
	}
}

// Provider is the capability the simulation core needs from scenery:
// the vehicle root it steers and the wheel nodes it spins. The core never
// creates or queries geometry.
type Provider interface {
	RootTransform() *Transform
	WheelTransforms() []*Transform
}
