package spheretrace

import (
	"fmt"
	"maps"
	"slices"
)

// Scene is an ordered list of shapes seen through one camera.
// It is read-only while a frame renders.
type Scene struct {
	Shapes     []Shape
	Camera     Camera
	Background Color
	MaxBounces int
	Policy     Policy

	ids map[uint32]struct{}
}

func NewScene(camera Camera, background Color, maxBounces int, policy Policy) (*Scene, error) {
	if maxBounces <= 0 {
		return nil, fmt.Errorf("max bounces must be > 0, got %d", maxBounces)
	}
	if camera.Direction.IsZero() {
		return nil, fmt.Errorf("camera direction must be non-zero")
	}
	s := &Scene{
		Camera:     camera,
		Background: background,
		MaxBounces: maxBounces,
		Policy:     policy,
		ids:        make(map[uint32]struct{}),
	}
	DebugLog("Created scene camera=%+v, background=%s, maxBounces=%d, policy=%+v", camera, background, maxBounces, policy)
	return s, nil
}

// AddShape appends a shape; ids must be unique within the scene.
func (s *Scene) AddShape(sh Shape) error {
	if s.ids == nil {
		s.ids = make(map[uint32]struct{})
	}
	id := sh.ShapeID()
	if _, dup := s.ids[id]; dup {
		return fmt.Errorf("duplicate shape id %d (%s)", id, sh.Label())
	}
	s.ids[id] = struct{}{}
	s.Shapes = append(s.Shapes, sh)
	return nil
}

func (s *Scene) AddSphere(sp *Sphere) error { return s.AddShape(sp) }

// WithCamera returns a copy of the scene seen through c. The copy has its
// own shape list and id set; the shapes themselves are shared.
func (s *Scene) WithCamera(c Camera) *Scene {
	cp := *s
	cp.Camera = c
	cp.Shapes = slices.Clone(s.Shapes)
	cp.ids = maps.Clone(s.ids)
	return &cp
}

// pick returns the shape the current bounce reacts to, skipping the shape
// the ray just left (skip is ignored when hasSkip is false).
func (s *Scene) pick(r Ray, skip uint32, hasSkip bool) (Shape, Vector3, bool) {
	if s.Policy.Hit == HitNearest {
		return s.pickNearest(r, skip, hasSkip)
	}
	for _, sh := range s.Shapes {
		if hasSkip && sh.ShapeID() == skip {
			continue
		}
		if P, ok := Intersect(r, sh); ok {
			return sh, P, true
		}
	}
	return nil, Vector3{}, false
}

func (s *Scene) pickNearest(r Ray, skip uint32, hasSkip bool) (Shape, Vector3, bool) {
	var (
		best  Shape
		bestT Real
	)
	for _, sh := range s.Shapes {
		if hasSkip && sh.ShapeID() == skip {
			continue
		}
		t, ok := sh.rayParam(r)
		if !ok || t < 0 {
			continue
		}
		if best == nil || t < bestT {
			best, bestT = sh, t
		}
	}
	if best == nil {
		return nil, Vector3{}, false
	}
	return best, r.At(bestT), true
}
