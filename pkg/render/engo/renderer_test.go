package engo

import (
	"math"
	"testing"

	"github.com/opd-ai/go-roadrush/pkg/config"
	"github.com/opd-ai/go-roadrush/pkg/scene"
)

func TestWorldToScreen(t *testing.T) {
	tests := []struct {
		name  string
		x, z  float64
		wantX float32
		wantY float32
	}{
		{"origin", 0, 0, 0, 0},
		{"forward maps to screen up", 0, 2, 0, -2 * pixelsPerUnit},
		{"right stays right", 3, 0, 3 * pixelsPerUnit, 0},
		{"behind maps to screen down", -1, -1, -pixelsPerUnit, pixelsPerUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := worldToScreen(tt.x, tt.z)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("worldToScreen(%f, %f) = (%f, %f), want (%f, %f)",
					tt.x, tt.z, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestComposeGroundTransform_IdentityParent(t *testing.T) {
	node := scene.NewTransform("wheel")
	node.Position.X = 0.85
	node.Position.Z = 1.2

	x, z, yaw := composeGroundTransform(node, 0, 0, 0)
	if x != 0.85 || z != 1.2 || yaw != 0 {
		t.Errorf("identity parent should pass the local offset through, got (%f, %f, %f)", x, z, yaw)
	}
}

func TestComposeGroundTransform_RotatedParent(t *testing.T) {
	// A quarter turn left swings a forward offset to the side
	node := scene.NewTransform("wheel")
	node.Position.Z = 2

	x, z, yaw := composeGroundTransform(node, 5, 5, math.Pi/2)
	if math.Abs(x-7) > 1e-9 || math.Abs(z-5) > 1e-9 {
		t.Errorf("expected offset rotated to (7, 5), got (%f, %f)", x, z)
	}
	if math.Abs(yaw-math.Pi/2) > 1e-9 {
		t.Errorf("yaw should accumulate, got %f", yaw)
	}
}

func TestStyleFor_CoversAllDrawableSceneNodes(t *testing.T) {
	cfg := config.DefaultConfig()
	scenery := scene.NewProceduralScene(cfg.Scene, cfg.Vehicle.RoadHalfWidth, 4)

	groups := map[string]bool{"world": true, "truck": true, "tree": true}

	scenery.World().Walk(func(node *scene.Transform) {
		if groups[node.Name] {
			if _, ok := styleFor(node.Name); ok {
				t.Errorf("group node %q should not be drawable", node.Name)
			}
			return
		}
		if _, ok := styleFor(node.Name); !ok {
			t.Errorf("no style registered for scene node %q", node.Name)
		}
	})
}
