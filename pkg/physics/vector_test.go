package physics

import (
	"math"
	"testing"
)

func TestVector3D_AddSub(t *testing.T) {
	a := Vector3D{X: 1, Y: 2, Z: 3}
	b := Vector3D{X: 4, Y: -2, Z: 0.5}

	sum := a.Add(b)
	if sum != (Vector3D{X: 5, Y: 0, Z: 3.5}) {
		t.Errorf("Add: expected {5 0 3.5}, got %v", sum)
	}

	diff := sum.Sub(b)
	if diff != a {
		t.Errorf("Sub: expected %v, got %v", a, diff)
	}
}

func TestVector3D_Scale(t *testing.T) {
	v := Vector3D{X: 1, Y: -2, Z: 3}
	scaled := v.Scale(-2)
	if scaled != (Vector3D{X: -2, Y: 4, Z: -6}) {
		t.Errorf("Scale: expected {-2 4 -6}, got %v", scaled)
	}
}

func TestVector3D_Length(t *testing.T) {
	v := Vector3D{X: 3, Y: 0, Z: 4}
	if v.Length() != 5 {
		t.Errorf("Length: expected 5, got %f", v.Length())
	}
	if v.LengthSquared() != 25 {
		t.Errorf("LengthSquared: expected 25, got %f", v.LengthSquared())
	}
}

func TestVector3D_Normalize(t *testing.T) {
	v := Vector3D{X: 0, Y: 10, Z: 0}
	unit := v.Normalize()
	if unit != (Vector3D{X: 0, Y: 1, Z: 0}) {
		t.Errorf("Normalize: expected unit Y, got %v", unit)
	}

	// Zero vector must not divide by zero
	zero := Vector3D{}.Normalize()
	if zero != (Vector3D{}) {
		t.Errorf("Normalize zero: expected zero vector, got %v", zero)
	}
}

func TestVector3D_Lerp(t *testing.T) {
	tests := []struct {
		name     string
		from     Vector3D
		to       Vector3D
		t        float64
		expected Vector3D
	}{
		{
			name:     "Halfway",
			from:     Vector3D{X: 0, Y: 0, Z: 0},
			to:       Vector3D{X: 10, Y: -4, Z: 2},
			t:        0.5,
			expected: Vector3D{X: 5, Y: -2, Z: 1},
		},
		{
			name:     "Zero factor stays",
			from:     Vector3D{X: 1, Y: 1, Z: 1},
			to:       Vector3D{X: 9, Y: 9, Z: 9},
			t:        0,
			expected: Vector3D{X: 1, Y: 1, Z: 1},
		},
		{
			name:     "Full factor arrives",
			from:     Vector3D{X: 1, Y: 1, Z: 1},
			to:       Vector3D{X: 9, Y: 9, Z: 9},
			t:        1,
			expected: Vector3D{X: 9, Y: 9, Z: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.Lerp(tt.to, tt.t)
			if got.Distance(tt.expected) > 1e-12 {
				t.Errorf("Lerp: expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVector3D_LerpNeverOvershoots(t *testing.T) {
	pos := Vector3D{X: 0, Y: 0, Z: 0}
	target := Vector3D{X: 100, Y: 0, Z: 0}

	prev := pos.Distance(target)
	for i := 0; i < 200; i++ {
		pos = pos.Lerp(target, 0.1)
		d := pos.Distance(target)
		if d > prev {
			t.Fatalf("distance to target grew at step %d: %f > %f", i, d, prev)
		}
		if pos.X > target.X {
			t.Fatalf("overshot target at step %d: %v", i, pos)
		}
		prev = d
	}
}

func TestFromHeading(t *testing.T) {
	tests := []struct {
		name      string
		heading   float64
		magnitude float64
		expected  Vector3D
	}{
		{
			name:      "Heading zero points along +Z",
			heading:   0,
			magnitude: 2,
			expected:  Vector3D{X: 0, Y: 0, Z: 2},
		},
		{
			name:      "Quarter turn points along +X",
			heading:   math.Pi / 2,
			magnitude: 1,
			expected:  Vector3D{X: 1, Y: 0, Z: 0},
		},
		{
			name:      "Negative magnitude reverses",
			heading:   0,
			magnitude: -1,
			expected:  Vector3D{X: 0, Y: 0, Z: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromHeading(tt.heading, tt.magnitude)
			if got.Distance(tt.expected) > 1e-12 {
				t.Errorf("FromHeading(%f, %f): expected %v, got %v",
					tt.heading, tt.magnitude, tt.expected, got)
			}
		})
	}
}
