package spheretrace

// Ray is an origin plus a direction; the direction need not be unit-length.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// At returns Origin + t*Direction.
func (r Ray) At(t Real) Vector3 { return r.Origin.AddScaled(r.Direction, t) }
