// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-roadrush/pkg/camera"
)

// CameraSystem applies the orbit rig's smoothed output to Engo's 2D
// camera: the viewport centers on the look-at point and the rig distance
// maps to zoom. The rig does all smoothing and clamping; this system is a
// pure applier and never mutates rig state.
type CameraSystem struct {
	rig *camera.Rig
}

// NewCameraSystem creates the camera applier for a rig
func NewCameraSystem(rig *camera.Rig) *CameraSystem {
	return &CameraSystem{rig: rig}
}

// Add satisfies the ecs.System interface
func (cs *CameraSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {}

// Update pushes the rig's current transform into the Engo camera
func (cs *CameraSystem) Update(dt float32) {
	lookAt := cs.rig.LookAt()
	px, py := worldToScreen(lookAt.X, lookAt.Z)

	engo.Mailbox.Dispatch(common.CameraMessage{
		Axis:        common.XAxis,
		Value:       px,
		Incremental: false,
	})
	engo.Mailbox.Dispatch(common.CameraMessage{
		Axis:        common.YAxis,
		Value:       py,
		Incremental: false,
	})
	engo.Mailbox.Dispatch(common.CameraMessage{
		Axis:        common.ZAxis,
		Value:       cs.zoomFor(cs.rig.OrbitState().Distance),
		Incremental: false,
	})
}

// zoomFor maps orbit distance to camera zoom: closer orbit, larger scene
func (cs *CameraSystem) zoomFor(distance float64) float32 {
	if distance <= 0 {
		return 1
	}
	return float32(referenceOrbitDistance / distance)
}

// referenceOrbitDistance is the orbit distance rendered at zoom 1.0
const referenceOrbitDistance = 7.0
