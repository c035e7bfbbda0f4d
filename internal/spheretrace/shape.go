package spheretrace

// Kind tags the primitive variant behind a Shape.
type Kind uint8

const (
	KindSphere Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Shape is the closed set of primitives the tracer understands.
// The unexported method keeps implementations inside this package.
type Shape interface {
	ShapeID() uint32
	Kind() Kind
	Label() string
	Paint() Color
	// Normal returns the outward (not normalized) normal at a surface point.
	Normal(p Vector3) Vector3
	// rayParam returns the ray parameter t of the intersection the shape reports.
	rayParam(r Ray) (Real, bool)
}

// Intersect returns the point where r meets s, if any.
// The point may lie behind the ray origin.
func Intersect(r Ray, s Shape) (Vector3, bool) {
	t, ok := s.rayParam(r)
	if !ok {
		return Vector3{}, false
	}
	return r.At(t), true
}
