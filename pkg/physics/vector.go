// pkg/physics/vector.go
package physics

import "math"

// Vector3D represents a 3D vector in world space
type Vector3D struct {
	X float64
	Y float64
	Z float64
}

// Add returns the sum of two vectors
func (v Vector3D) Add(other Vector3D) Vector3D {
	return Vector3D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3D) Sub(other Vector3D) Vector3D {
	return Vector3D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector3D) Scale(factor float64) Vector3D {
	return Vector3D{
		X: v.X * factor,
		Y: v.Y * factor,
		Z: v.Z * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector3D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector3D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction
func (v Vector3D) Normalize() Vector3D {
	length := v.Length()
	if length == 0 {
		return Vector3D{}
	}
	return Vector3D{
		X: v.X / length,
		Y: v.Y / length,
		Z: v.Z / length,
	}
}

// Distance returns the distance between two vectors
func (v Vector3D) Distance(other Vector3D) float64 {
	return v.Sub(other).Length()
}

// Dot returns the dot product of two vectors
func (v Vector3D) Dot(other Vector3D) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Lerp returns the vector moved toward target by fraction t.
// A factor in (0,1) can never overshoot the target.
func (v Vector3D) Lerp(target Vector3D, t float64) Vector3D {
	return Vector3D{
		X: v.X + (target.X-v.X)*t,
		Y: v.Y + (target.Y-v.Y)*t,
		Z: v.Z + (target.Z-v.Z)*t,
	}
}

// FromHeading creates a ground-plane vector from a heading angle and magnitude.
// Heading 0 points along +Z; positive headings rotate toward +X.
func FromHeading(heading float64, magnitude float64) Vector3D {
	return Vector3D{
		X: magnitude * math.Sin(heading),
		Y: 0,
		Z: magnitude * math.Cos(heading),
	}
}
