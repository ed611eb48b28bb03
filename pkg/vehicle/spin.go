// pkg/vehicle/spin.go
package vehicle

import "github.com/opd-ai/go-roadrush/pkg/scene"

// SpinAnimator rolls the wheel geometry in proportion to vehicle speed.
// The accumulated angle is written identically to every wheel node; there
// is no differential or steering-angle modeling, and the angle is never
// wrapped because only its sine/cosine ever reach the screen.
type SpinAnimator struct {
	gain   float64
	angle  float64
	wheels []*scene.Transform
}

// NewSpinAnimator creates an animator for the given wheel nodes.
// A nil wheel slice is valid for headless runs; the angle still accumulates.
func NewSpinAnimator(gain float64, wheels []*scene.Transform) *SpinAnimator {
	return &SpinAnimator{gain: gain, wheels: wheels}
}

// Update adds speed*gain radians of roll and applies it to every wheel
func (a *SpinAnimator) Update(speed float64) {
	a.angle += speed * a.gain
	a.apply()
}

// Angle returns the accumulated roll in radians
func (a *SpinAnimator) Angle() float64 {
	return a.angle
}

// Reset zeroes the accumulated roll
func (a *SpinAnimator) Reset() {
	a.angle = 0
	a.apply()
}

func (a *SpinAnimator) apply() {
	for _, wheel := range a.wheels {
		wheel.Rotation.X = a.angle
	}
}
