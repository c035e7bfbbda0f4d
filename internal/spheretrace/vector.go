package spheretrace

import "math"

type Real = float64

// Vector3 is used both for positions and for directions.
type Vector3 struct {
	X, Y, Z Real
}

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// AddScaled returns v + s*d, the point reached after walking distance s along d.
func (v Vector3) AddScaled(d Vector3, s Real) Vector3 {
	return Vector3{v.X + s*d.X, v.Y + s*d.Y, v.Z + s*d.Z}
}

// Dot returns the dot product between two vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return math.Sqrt(v.Dot(v)) }

// IsZero reports whether all components are exactly zero.
func (v Vector3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Norm returns a unit-length version of the vector and true.
// A zero or non-finite length returns the input unchanged and false.
func (v Vector3) Norm() (Vector3, bool) {
	l := v.Len()
	if l == 0 || !isFinite(l) {
		return v, false
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}, true
}
