package staticray

import (
	"math"

	"github.com/golang/geo/r3"
)

// PhotonState is a single worker's exclusively-owned trace state: its
// position along the current photon's path, its PRNG stream, its film
// buffer, and the nearest-hit bookkeeping used by the commit-latest-nearest
// intersection protocol. Ported from StaticRay.h's TraceState.
type PhotonState struct {
	Film *ColorFilm
	RNG  *Xoroshiro128Plus

	Position  r3.Vector
	Direction r3.Vector
	Color     RColor

	pool    [4]float64
	poolIdx int

	Hits    int
	HitDist float64
	hitFunc func() bool
}

// Reset clears the nearest-hit bookkeeping before tracing a new bounce.
func (st *PhotonState) Reset() {
	st.HitDist = math.Inf(1)
	st.hitFunc = nil
}

// Hit records a candidate intersection, replacing any earlier one; each
// shape calls it only after checking that distance is below HitDist.
// commit is invoked later, once, only if this remains the nearest hit
// found across every shape.
func (st *PhotonState) Hit(distance float64, commit func() bool) {
	st.HitDist = distance
	st.hitFunc = commit
}

// PoolRNG returns a random float64 in [0,1), drawing four at a time from a
// single RNG call and refilling every fourth request. Ported from
// StaticRay.h's TraceState::PoolRNG.
func (st *PhotonState) PoolRNG() float64 {
	idx := st.poolIdx & 3
	st.poolIdx++
	if idx == 0 {
		st.pool = randomXYZWUnsigned(st.RNG.Next())
	}
	return st.pool[idx]
}
