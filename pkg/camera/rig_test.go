package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-roadrush/pkg/config"
	"github.com/opd-ai/go-roadrush/pkg/input"
	"github.com/opd-ai/go-roadrush/pkg/physics"
)

func testCameraConfig() config.CameraConfig {
	return config.DefaultConfig().Camera
}

func TestRig_FirstUpdateSnapsToTarget(t *testing.T) {
	rig := NewRig(testCameraConfig())

	vehicle := physics.Vector3D{X: 2, Y: 0, Z: 50}
	rig.Update(vehicle, 0)

	// With heading 0 the camera sits straight behind on -Z, raised by tilt
	orbit := rig.OrbitState()
	expected := vehicle.
		Sub(physics.FromHeading(0, orbit.Distance*math.Cos(orbit.AngleV))).
		Add(physics.Vector3D{Y: orbit.Distance * math.Sin(orbit.AngleV)})

	assert.InDelta(t, 0, rig.Position().Distance(expected), 1e-12,
		"first update must snap, not glide from the origin")
}

func TestRig_ConvergesBehindMovingVehicle(t *testing.T) {
	cfg := testCameraConfig()
	rig := NewRig(cfg)

	// Straight-line drive: the camera should settle to a fixed offset
	// behind the vehicle and close on the ideal point monotonically.
	pos := physics.Vector3D{}
	rig.Update(pos, 0)

	// With step s per tick and smoothing factor a, the lag settles at
	// s*(1-a)/a behind the ideal point and approaches it from below.
	const step = 0.5
	steadyLag := step * (1 - cfg.SmoothFactor) / cfg.SmoothFactor

	var gap float64
	for i := 0; i < 600; i++ {
		pos.Z += step
		rig.Update(pos, 0)

		orbit := rig.OrbitState()
		target := pos.
			Sub(physics.FromHeading(0, orbit.Distance*math.Cos(orbit.AngleV))).
			Add(physics.Vector3D{Y: orbit.Distance * math.Sin(orbit.AngleV)})

		gap = rig.Position().Distance(target)
		assert.LessOrEqual(t, gap, steadyLag+1e-6,
			"tick %d: smoothing lag must stay within its steady-state bound", i)
	}

	assert.InDelta(t, steadyLag, gap, 1e-3,
		"lag should settle at the steady-state value; it is a property, not a bug")
	assert.Greater(t, gap, 0.0)

	// Behind means larger Z gap than lateral drift
	camera := rig.Position()
	assert.Less(t, camera.Z, pos.Z)
	assert.InDelta(t, 0, camera.X, 1e-6)
}

func TestRig_LerpNeverOvershootsTarget(t *testing.T) {
	rig := NewRig(testCameraConfig())

	vehicle := physics.Vector3D{}
	rig.Update(vehicle, 0)

	// Teleport the vehicle far ahead, then hold it still; the camera
	// must approach its new target without ever passing it.
	vehicle.Z = 200
	orbit := rig.OrbitState()
	target := vehicle.
		Sub(physics.FromHeading(0, orbit.Distance*math.Cos(orbit.AngleV))).
		Add(physics.Vector3D{Y: orbit.Distance * math.Sin(orbit.AngleV)})

	prev := rig.Position().Distance(target)
	for i := 0; i < 500; i++ {
		rig.Update(vehicle, 0)
		gap := rig.Position().Distance(target)
		require.LessOrEqual(t, gap, prev+1e-9, "tick %d: gap grew", i)
		prev = gap
	}

	assert.InDelta(t, 0, prev, 1e-6, "camera should converge onto the target")
}

func TestRig_VerticalAngleClampsUnderOvershootingDrags(t *testing.T) {
	cfg := testCameraConfig()
	rig := NewRig(cfg)

	// Wild drag sequence, including deltas far past either bound
	deltas := []float64{5, -20, 0.3, 100, -0.01, -50, 2}
	for _, d := range deltas {
		rig.Orbit(0, d)
		angleV := rig.OrbitState().AngleV
		assert.GreaterOrEqual(t, angleV, cfg.MinAngleV)
		assert.LessOrEqual(t, angleV, cfg.MaxAngleV)
	}
}

func TestRig_HorizontalAngleIsUnbounded(t *testing.T) {
	rig := NewRig(testCameraConfig())

	for i := 0; i < 100; i++ {
		rig.Orbit(1, 0)
	}

	assert.InDelta(t, 100, rig.OrbitState().AngleH, 1e-12,
		"horizontal orbit accumulates full turns without clamping")
}

func TestRig_ZoomClamps(t *testing.T) {
	cfg := testCameraConfig()
	rig := NewRig(cfg)

	rig.Zoom(1000)
	assert.Equal(t, cfg.MaxDistance, rig.OrbitState().Distance)

	rig.Zoom(-1000)
	assert.Equal(t, cfg.MinDistance, rig.OrbitState().Distance)
}

func TestRig_ApplyDragMapsKinds(t *testing.T) {
	cfg := testCameraConfig()
	rig := NewRig(cfg)

	before := rig.OrbitState()
	rig.ApplyDrag(input.DragOrbit, input.DragDelta{DX: 100, DY: 40})
	after := rig.OrbitState()

	assert.InDelta(t, before.AngleH+100*cfg.OrbitSensitivity, after.AngleH, 1e-12)
	assert.InDelta(t, before.AngleV+40*cfg.OrbitSensitivity, after.AngleV, 1e-12)
	assert.Equal(t, before.Distance, after.Distance)

	rig.ApplyDrag(input.DragZoom, input.DragDelta{DY: 100})
	assert.InDelta(t, after.Distance+100*cfg.ZoomSensitivity,
		rig.OrbitState().Distance, 1e-12)
}

func TestRig_OrbitAngleRotatesCameraAroundVehicle(t *testing.T) {
	rig := NewRig(testCameraConfig())

	vehicle := physics.Vector3D{}
	rig.Update(vehicle, 0)
	behind := rig.Position()

	// Half a turn puts the camera in front at the same distance
	rig.Orbit(math.Pi, 0)
	for i := 0; i < 2000; i++ {
		rig.Update(vehicle, 0)
	}
	front := rig.Position()

	assert.InDelta(t, behind.Z, -front.Z, 1e-3)
	assert.InDelta(t, behind.Y, front.Y, 1e-3)
}

func TestRig_ResetRestoresOrbitButNotPosition(t *testing.T) {
	cfg := testCameraConfig()
	rig := NewRig(cfg)

	vehicle := physics.Vector3D{}
	rig.Update(vehicle, 0)

	rig.Orbit(2, 0.5)
	rig.Zoom(4)
	for i := 0; i < 10; i++ {
		rig.Update(vehicle, 0)
	}
	moved := rig.Position()

	rig.Reset()

	orbit := rig.OrbitState()
	assert.Zero(t, orbit.AngleH)
	assert.Equal(t, cfg.DefaultAngleV, orbit.AngleV)

	// Position glides back over subsequent ticks, never teleports
	assert.Equal(t, moved, rig.Position(),
		"reset must not touch the smoothed position")

	rig.Update(vehicle, 0)
	assert.NotEqual(t, moved, rig.Position(), "camera should start gliding back")
}

func TestRig_LookAtTracksVehicleWithHeightOffset(t *testing.T) {
	cfg := testCameraConfig()
	rig := NewRig(cfg)

	vehicle := physics.Vector3D{X: 1, Y: 0, Z: 9}
	rig.Update(vehicle, 1.3)

	expected := vehicle.Add(physics.Vector3D{Y: cfg.LookAtHeight})
	assert.Equal(t, expected, rig.LookAt())
}
