package physics

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "Below range", value: -5, min: -3, max: 3, expected: -3},
		{name: "Above range", value: 7, min: -3, max: 3, expected: 3},
		{name: "Inside range", value: 1.5, min: -3, max: 3, expected: 1.5},
		{name: "At lower bound", value: -3, min: -3, max: 3, expected: -3},
		{name: "At upper bound", value: 3, min: -3, max: 3, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.value, tt.min, tt.max); got != tt.expected {
				t.Errorf("Clamp(%f, %f, %f): expected %f, got %f",
					tt.value, tt.min, tt.max, tt.expected, got)
			}
		})
	}
}

func TestSign(t *testing.T) {
	if Sign(3.2) != 1 {
		t.Error("Sign of positive should be 1")
	}
	if Sign(-0.001) != -1 {
		t.Error("Sign of negative should be -1")
	}
	if Sign(0) != 0 {
		t.Error("Sign of zero should be 0")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.25); got != 2.5 {
		t.Errorf("Lerp(0, 10, 0.25): expected 2.5, got %f", got)
	}
	if got := Lerp(-4, 4, 0.5); got != 0 {
		t.Errorf("Lerp(-4, 4, 0.5): expected 0, got %f", got)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected float64
	}{
		{name: "Already in range", angle: 1, expected: 1},
		{name: "Just above pi", angle: math.Pi + 0.5, expected: -math.Pi + 0.5},
		{name: "Full turn", angle: 2 * math.Pi, expected: 0},
		{name: "Negative full turn", angle: -2 * math.Pi, expected: 0},
		{name: "Many turns", angle: 7 * math.Pi, expected: math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapAngle(tt.angle)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("WrapAngle(%f): expected %f, got %f", tt.angle, tt.expected, got)
			}
		})
	}
}
