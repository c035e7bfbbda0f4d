package spheretrace

import "fmt"

// ReflectRule selects how the bounce direction is derived from the normal.
type ReflectRule uint8

const (
	// ReflectNaive uses D - 2N, which is not a physical mirror reflection.
	ReflectNaive ReflectRule = iota
	// ReflectMirror uses D - 2(D.N)N.
	ReflectMirror
)

// HitRule selects which intersected shape a bounce reacts to.
type HitRule uint8

const (
	// HitFirstInOrder takes the first shape in scene order that reports a hit.
	HitFirstInOrder HitRule = iota
	// HitNearest takes the hit with the smallest non-negative ray parameter.
	HitNearest
)

// Policy groups the tracer behaviours that differ from a textbook tracer.
// The zero value reproduces the reference output.
type Policy struct {
	Reflect ReflectRule
	Hit     HitRule
	// StopOnMiss ends the bounce loop on the first bounce that hits nothing.
	// A miss leaves the ray unchanged, so the remaining bounces would miss too.
	StopOnMiss bool
}

type PolicyCfg struct {
	Reflect    string `json:"reflect,omitempty"` // "naive" (default) or "mirror"
	Hit        string `json:"hit,omitempty"`     // "first" (default) or "nearest"
	StopOnMiss bool   `json:"stopOnMiss,omitempty"`
}

func (pc PolicyCfg) Build() (Policy, error) {
	var p Policy
	switch pc.Reflect {
	case "", "naive":
		p.Reflect = ReflectNaive
	case "mirror":
		p.Reflect = ReflectMirror
	default:
		return Policy{}, fmt.Errorf("unknown reflect policy %q", pc.Reflect)
	}
	switch pc.Hit {
	case "", "first":
		p.Hit = HitFirstInOrder
	case "nearest":
		p.Hit = HitNearest
	default:
		return Policy{}, fmt.Errorf("unknown hit policy %q", pc.Hit)
	}
	p.StopOnMiss = pc.StopOnMiss
	return p, nil
}

func reflectDir(rule ReflectRule, D, N Vector3) Vector3 {
	if rule == ReflectMirror {
		return D.Sub(N.Mul(2 * D.Dot(N)))
	}
	return D.Sub(N.Mul(2))
}
