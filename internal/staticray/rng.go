package staticray

import (
	"math"

	"github.com/golang/geo/r3"
)

// splitMix64 seeds a Xoroshiro128Plus from a single 64bit value.
// Ported from Xoroshiro.h's Random64.
type splitMix64 struct{ state uint64 }

func newSplitMix64(seed uint64) *splitMix64 {
	return &splitMix64{state: seed}
}

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func rotl(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

// Xoroshiro128Plus is a 128bit-state PRNG. Ported from Xoroshiro.h's
// Random128. Each worker owns one; the LongJump/ShortJump methods partition
// a single seed sequence into non-overlapping subsequences so that workers
// never draw the same numbers.
type Xoroshiro128Plus struct {
	s0, s1 uint64
}

// NewXoroshiro128Plus seeds a generator via splitmix64, matching Random128's
// constructor.
func NewXoroshiro128Plus(seed uint64) *Xoroshiro128Plus {
	sm := newSplitMix64(seed)
	return &Xoroshiro128Plus{s0: sm.next(), s1: sm.next()}
}

func (r *Xoroshiro128Plus) Next() uint64 {
	s0, s1 := r.s0, r.s1
	v := s0 + s1

	s1 ^= s0
	r.s0 = rotl(s0, 24) ^ s1 ^ (s1 << 16)
	r.s1 = rotl(s1, 37)

	return v
}

func (r *Xoroshiro128Plus) jump(j0, j1 uint64) {
	var s0, s1 uint64
	for _, j := range [2]uint64{j0, j1} {
		for b := uint(0); b < 64; b++ {
			if j&(1<<b) != 0 {
				s0 ^= r.s0
				s1 ^= r.s1
			}
			r.Next()
		}
	}
	r.s0, r.s1 = s0, s1
}

// ShortJump is equivalent to 2^64 calls to Next. It produces 2^64
// non-overlapping subsequences for parallel workers.
func (r *Xoroshiro128Plus) ShortJump() {
	r.jump(0xDF900294D8F554A5, 0x170865DF4B3201FC)
}

// LongJump is equivalent to 2^96 calls to Next. It produces 2^32 starting
// points from which ShortJump generates further non-overlapping streams.
func (r *Xoroshiro128Plus) LongJump() {
	r.jump(0xD2A98B26625EEE7B, 0xDDDF9B1090AA7AC1)
}

// randomXYZWUnsigned returns four values in [0,1) drawn from a single
// 64bit word. Ported from Utility.h's RandomXYZWUnsigned, which packs
// mantissa bits from shifted copies of Bits into [1,2)-range floats and
// subtracts 1. The Go port reproduces the same bit slicing without the
// unsafe pointer aliasing the original uses to do it in a single cast.
func randomXYZWUnsigned(bits uint64) [4]float64 {
	unsigned01 := func(shifted uint64) float64 {
		v := (uint32(shifted) & 0x007FFF80) | 0x3F800000
		return float64(math.Float32frombits(v)) - 1
	}
	return [4]float64{
		unsigned01(bits << 7),
		unsigned01(bits >> 9),
		unsigned01(bits >> 25),
		unsigned01(bits >> 41),
	}
}

// randomXYZSigned returns a vector whose components lie in (-1,+1), drawn
// from a single 64bit word. Ported from Utility.h's RandomXYZSigned: each
// component's magnitude comes from 20 mantissa bits, its sign from one of
// the three high bits of Bits.
func randomXYZSigned(bits uint64) r3.Vector {
	unsigned01 := func(shifted uint64) float64 {
		v := (uint32(shifted) & 0x007FFFF8) | 0x3F800000
		return float64(math.Float32frombits(v)) - 1
	}

	x, y, z := unsigned01(bits<<2), unsigned01(bits>>18), unsigned01(bits>>38)
	if bits&(1<<63) != 0 {
		x = -x
	}
	if bits&(1<<62) != 0 {
		y = -y
	}
	if bits&(1<<61) != 0 {
		z = -z
	}
	return r3.Vector{X: x, Y: y, Z: z}
}

// RandomInSphere rejection-samples a unit-radius sphere.
func RandomInSphere(rng *Xoroshiro128Plus) r3.Vector {
	for {
		p := randomXYZSigned(rng.Next())
		if p.Dot(p) < 1 {
			return p
		}
	}
}

// RandomNormal returns a uniformly distributed unit vector.
func RandomNormal(rng *Xoroshiro128Plus) r3.Vector {
	return RandomInSphere(rng).Normalize()
}
