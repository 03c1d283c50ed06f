package staticray

import "github.com/golang/geo/r3"

// Lens is the virtual camera's capture surface during render. It behaves
// as a Shape: when a photon crosses its aperture within the f-limit, it is
// projected into filmspace and exposed to the scene's film, and the trace
// terminates. Ported from Lens.h.
type Lens struct {
	Position  r3.Vector
	Direction r3.Vector
	Up        r3.Vector
	Aperture  float64
	FLimit    float64

	u, v   r3.Vector // +U/+V axes, normalized
	ua, va r3.Vector // +U/+V axes scaled to the aperture
	flim   float64   // cosine of the f-limit
	radSq  float64   // aperture radius squared
}

// NewLens precomputes the lens's basis and derived constants. Ported from
// Lens.h's static constexpr members.
func NewLens(position, direction, up r3.Vector, aperture, fLimit float64) *Lens {
	u := direction.Cross(up).Normalize()
	v := direction.Cross(u)

	return &Lens{
		Position:  position,
		Direction: direction,
		Up:        up,
		Aperture:  aperture,
		FLimit:    fLimit,

		u:  u,
		v:  v,
		ua: u.Mul(1 / aperture / 2),
		va: v.Mul(1 / aperture / 2),

		// Cosine of the f-limit: RVector(1, -FLimit).ConstNormalized().y
		flim: (r3.Vector{X: 1, Y: -fLimit}).Normalize().Y,

		radSq: (aperture * aperture) / 4,
	}
}

func (l *Lens) HitExterior(st *PhotonState) {
	proj := l.Direction.Dot(st.Direction)
	if proj > l.flim {
		return
	}

	dist := l.Direction.Dot(l.Position.Sub(st.Position)) / proj
	if dist >= st.HitDist || dist < Epsilon {
		return
	}

	pos := st.Position.Add(st.Direction.Mul(dist))
	offset := pos.Sub(l.Position)
	if offset.Dot(offset) >= l.radSq {
		return
	}

	lens := l
	st.Hit(dist, func() bool {
		st.Position = pos

		hit := HitRecord{
			PosU: NewFixed16(lens.ua.Dot(pos)),
			PosV: NewFixed16(lens.va.Dot(pos)),
			DirU: NewFixed16(lens.u.Dot(st.Direction)),
			DirV: NewFixed16(lens.v.Dot(st.Direction)),
			Clr:  Store(st.Color),
		}
		if err := st.Film.Expose(hit); err != nil {
			DebugLog("film expose failed: %v", err)
		}

		// Tracing ends at the lens regardless of whether the exposure
		// itself succeeded.
		return false
	})
}
