package staticray

import "github.com/golang/geo/r3"

// Material decides what happens when a photon strikes a shape's surface:
// whether it's absorbed (returning false terminates the trace) and, if
// not, its new direction. Ported from Materials.h.
type Material interface {
	Interact(st *PhotonState, normal r3.Vector) bool
}

// IdealDiffuse is a Lambertian surface tinted by Color. Ported from
// Materials.h's IdealDiffuse.
type IdealDiffuse struct {
	Color RColor
}

func (m IdealDiffuse) Interact(st *PhotonState, normal r3.Vector) bool {
	if Absorb(&st.Color, m.Color) {
		return false
	}
	st.Direction = normal.Add(RandomNormal(st.RNG)).Normalize()
	return true
}

// IdealMirror is a perfectly specular surface. Ported from Materials.h's
// IdealMirror.
type IdealMirror struct{}

func (IdealMirror) Interact(st *PhotonState, normal r3.Vector) bool {
	st.Direction = st.Direction.Sub(normal.Mul(2 * st.Direction.Dot(normal)))
	return true
}

// ShinyOpaque mixes a specular reflection with a diffuse, tinted one,
// chosen by Russian roulette against Specular. Ported from Materials.h's
// ShinyOpaque.
type ShinyOpaque struct {
	Color    RColor
	Specular float64
}

func (m ShinyOpaque) Interact(st *PhotonState, normal r3.Vector) bool {
	switch {
	case st.PoolRNG() <= m.Specular:
		st.Direction = st.Direction.Sub(normal.Mul(2 * st.Direction.Dot(normal)))
	case !Absorb(&st.Color, m.Color):
		st.Direction = normal.Add(RandomNormal(st.RNG)).Normalize()
	default:
		return false
	}
	return true
}
