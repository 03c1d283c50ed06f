package staticray

import (
	"math"

	"github.com/golang/geo/r3"
)

// Shape detects intersections against the exterior of a surface and, on
// the nearest one found this bounce, installs a commit closure via
// PhotonState.Hit. The scene driver calls HitExterior on every shape
// (including the Lens) each bounce, then invokes whichever commit closure
// belongs to the nearest hit - the original's TraceState::_HitFunc
// protocol, carried over directly as a Go closure rather than a tagged
// variant, since Go closures are already the idiomatic, cheap equivalent
// and the original itself uses std::function for this.
type Shape interface {
	HitExterior(st *PhotonState)
}

// Sphere is a solid sphere shaded by Mat. Ported from Shapes.h's Sphere.
type Sphere struct {
	Position r3.Vector
	Radius   float64
	Mat      Material
}

func (s *Sphere) HitExterior(st *PhotonState) {
	delta := s.Position.Sub(st.Position)
	adj := delta.Dot(st.Direction)
	if adj < Epsilon {
		return
	}

	radSq := s.Radius * s.Radius
	oppSq := delta.Dot(delta) - adj*adj
	if oppSq >= radSq {
		return
	}

	dist := adj - math.Sqrt(radSq-oppSq)
	if dist >= st.HitDist {
		return
	}

	shape := s
	st.Hit(dist, func() bool {
		st.Position = st.Position.Add(st.Direction.Mul(st.HitDist))
		normal := st.Position.Sub(shape.Position).Mul(1 / shape.Radius)
		return shape.Mat.Interact(st, normal)
	})
}

// Plane is an infinite flat surface shaded by Mat. Ported from Shapes.h's
// Plane.
type Plane struct {
	Position r3.Vector
	Normal   r3.Vector
	Mat      Material
}

func (p *Plane) HitExterior(st *PhotonState) {
	denom := p.Normal.Dot(st.Direction)
	if denom > -Epsilon {
		return
	}

	dist := p.Normal.Dot(p.Position.Sub(st.Position)) / denom
	if dist >= st.HitDist || dist < Epsilon {
		return
	}

	plane := p
	st.Hit(dist, func() bool {
		st.Position = st.Position.Add(st.Direction.Mul(st.HitDist))
		return plane.Mat.Interact(st, plane.Normal)
	})
}
