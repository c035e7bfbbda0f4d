package spheretrace

import "fmt"

// Camera casts parallel primary rays: every pixel shares Direction and only
// the origin is shifted by the pixel offset from the viewport center.
type Camera struct {
	Origin    Vector3 `json:"origin"`
	Direction Vector3 `json:"direction"`
}

func NewCamera(origin, direction Vector3) (Camera, error) {
	if direction.IsZero() {
		return Camera{}, fmt.Errorf("camera direction must be non-zero")
	}
	return Camera{Origin: origin, Direction: direction}, nil
}

// PrimaryRay builds the ray for pixel (x, y) of a width x height viewport.
func (c Camera) PrimaryRay(x, y, width, height int) Ray {
	return Ray{
		Origin: Vector3{
			X: c.Origin.X + Real(x) - Real(width)/2,
			Y: c.Origin.Y + Real(y) - Real(height)/2,
			Z: c.Origin.Z,
		},
		Direction: c.Direction,
	}
}

// Moved returns a copy of the camera translated by d.
func (c Camera) Moved(d Vector3) Camera {
	c.Origin = c.Origin.Add(d)
	return c
}
