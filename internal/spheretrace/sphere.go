package spheretrace

import (
	"fmt"
	"math"
)

// Sphere is the only primitive. Name is a label and has no effect on rendering.
type Sphere struct {
	ID     uint32
	Name   string
	Center Vector3
	Radius Real
	Color  Color
}

func NewSphere(id uint32, name string, center Vector3, radius Real, color Color) (*Sphere, error) {
	if !(radius > 0) || !isFinite(radius) {
		return nil, fmt.Errorf("sphere %d (%s): radius must be > 0, got %v", id, name, radius)
	}
	if !isFinite(center.X) || !isFinite(center.Y) || !isFinite(center.Z) {
		return nil, fmt.Errorf("sphere %d (%s): center must be finite, got %+v", id, name, center)
	}
	s := &Sphere{ID: id, Name: name, Center: center, Radius: radius, Color: color}
	DebugLog("Created sphere: %+v", s)
	return s, nil
}

func (s *Sphere) ShapeID() uint32          { return s.ID }
func (s *Sphere) Kind() Kind               { return KindSphere }
func (s *Sphere) Label() string            { return s.Name }
func (s *Sphere) Paint() Color             { return s.Color }
func (s *Sphere) Normal(p Vector3) Vector3 { return p.Sub(s.Center) }

// Ray/sphere intersection: solve a*t^2 + b*t + c = 0 with oc = O - C,
// a = D.D, b = 2 oc.D, c = oc.oc - r^2. The smaller root is returned even
// when it is negative, so the hit may be behind the origin.
func (s *Sphere) rayParam(r Ray) (Real, bool) {
	_, _, _, t, ok := sphereRoots(r, s.Center, s.Radius)
	return t, ok
}

// sphereRoots exposes the quadratic terms for tests and for the debug log.
func sphereRoots(r Ray, center Vector3, radius Real) (disc, t1, t2, t Real, ok bool) {
	D := r.Direction
	oc := r.Origin.Sub(center)
	a := D.Dot(D)
	if a == 0 || !isFinite(a) {
		// degenerate ray: zero-length direction
		return 0, 0, 0, 0, false
	}
	b := 2 * oc.Dot(D)
	c := oc.Dot(oc) - radius*radius
	disc = b*b - 4*a*c
	if disc < 0 || !isFinite(disc) {
		return disc, 0, 0, 0, false
	}
	sqrtD := math.Sqrt(disc)
	inv2a := 1 / (2 * a)
	t1 = (-b - sqrtD) * inv2a
	t2 = (-b + sqrtD) * inv2a
	t = t1
	if t2 < t1 {
		t = t2
	}
	return disc, t1, t2, t, true
}
