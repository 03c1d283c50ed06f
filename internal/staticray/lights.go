package staticray

import "github.com/golang/geo/r3"

// Light emits photons into the scene. Traces reports how many photons a
// pass should fire for a given Multiplier; Emit sets a PhotonState's
// starting position, direction, and color. Ported from Lights.h.
type Light interface {
	Traces(multiplier float64) uint64
	Emit(st *PhotonState)
}

// LightBase carries the intensity/color policy shared by every light.
// Ported from Lights.h's LightBase.
type LightBase struct {
	Intensity float64
	Color     RColor
}

func (b LightBase) Traces(multiplier float64) uint64 {
	return uint64(b.Intensity * multiplier)
}

func (b LightBase) emitColor(st *PhotonState) {
	st.Color = Emit(b.Color)
}

// PointBeam emits every photon along a single fixed direction. Used for
// debug/deterministic scenes. Ported from Lights.h's PointBeam.
type PointBeam struct {
	LightBase
	Position  r3.Vector
	Direction r3.Vector
}

func (l PointBeam) Emit(st *PhotonState) {
	st.Position = l.Position
	st.Direction = l.Direction
	l.emitColor(st)
}

// PointLight emits photons in uniformly random directions from a single
// point. Ported from Lights.h's PointLight.
type PointLight struct {
	LightBase
	Position r3.Vector
}

func (l PointLight) Emit(st *PhotonState) {
	st.Position = l.Position
	st.Direction = RandomNormal(st.RNG)
	l.emitColor(st)
}

// OmniSphere emits photons from random points on a sphere's surface, in
// directions biased outward from the surface normal. Ported from
// Lights.h's OmniSphere.
type OmniSphere struct {
	LightBase
	Position r3.Vector
	Radius   float64
}

func (l OmniSphere) Emit(st *PhotonState) {
	dir := RandomNormal(st.RNG)
	st.Position = l.Position.Add(dir.Mul(l.Radius))
	st.Direction = dir.Add(RandomNormal(st.RNG)).Normalize()
	l.emitColor(st)
}
