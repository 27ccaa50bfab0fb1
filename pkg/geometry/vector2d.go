package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for float64 comparisons and for deciding
// whether a vector is effectively zero.
const Epsilon = 1e-9

// Vector2D represents a 2D vector or point in cartesian space.
// Fields are exported because they are plain data, which also allows the
// short literal form: v := Vector2D{1, 2}
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewVector creates a new Vector2D.
func NewVector(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// String implements fmt.Stringer.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// ---------------------------------------------------------------------
// Arithmetic
// Value receivers returning new values keep these immutable and cheap.
// ---------------------------------------------------------------------

// Add adds two vectors and returns the result.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other vector from the current vector.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul scales the vector by a scalar value.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// Dot calculates the dot product of two vectors.
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross calculates the 2D scalar cross product (the z-component of the
// equivalent 3D cross product).
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// ---------------------------------------------------------------------
// Magnitude and normalization
// ---------------------------------------------------------------------

// LenSqr calculates the squared magnitude. Faster than Len for comparisons.
func (v Vector2D) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len calculates the magnitude (length) of the vector.
func (v Vector2D) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
// Returns a zero vector if the length is effectively zero.
func (v Vector2D) Normalize() Vector2D {
	l := v.Len()
	if l < Epsilon {
		return Vector2D{}
	}
	return v.Mul(1 / l)
}

// ClampLengthMax returns the vector with its magnitude capped at max,
// direction preserved.
func (v Vector2D) ClampLengthMax(max float64) Vector2D {
	l := v.Len()
	if l > max && l > Epsilon {
		return v.Mul(max / l)
	}
	return v
}

// ClampLength returns the vector with its magnitude clamped into
// [min, max], direction preserved. A zero vector stays zero since it has
// no direction to scale along.
func (v Vector2D) ClampLength(min, max float64) Vector2D {
	l := v.Len()
	if l < Epsilon {
		return v
	}
	if l < min {
		return v.Mul(min / l)
	}
	if l > max {
		return v.Mul(max / l)
	}
	return v
}

// ---------------------------------------------------------------------
// Geometric utilities
// ---------------------------------------------------------------------

// DistanceTo calculates the Euclidean distance to another vector.
func (v Vector2D) DistanceTo(other Vector2D) float64 {
	return v.Sub(other).Len()
}

// Angle returns the angle (in radians) of the vector relative to the
// X-axis. Range: [-Pi, Pi]
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleBetween returns the signed angle (in radians) from v to other.
// Positive is counter-clockwise. Range: [-Pi, Pi]
func (v Vector2D) AngleBetween(other Vector2D) float64 {
	return math.Atan2(v.Cross(other), v.Dot(other))
}

// CosineSimilarity returns the cosine of the angle between two vectors:
// 1 if they point the same way, -1 if opposite. If either vector has
// (near) zero magnitude the similarity is undefined; 0 is returned so the
// caller never sees a NaN.
func (v Vector2D) CosineSimilarity(other Vector2D) float64 {
	d := v.Len() * other.Len()
	if d < Epsilon {
		return 0
	}
	return v.Dot(other) / d
}

// Eq checks if two vectors are approximately equal within Epsilon.
func (v Vector2D) Eq(other Vector2D) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}
