package staticray

import "testing"

func TestXoroshiro128PlusDeterministic(t *testing.T) {
	a := NewXoroshiro128Plus(42)
	b := NewXoroshiro128Plus(42)
	for i := 0; i < 8; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("same seed diverged at step %d: %d != %d", i, x, y)
		}
	}
}

func TestLongJumpProducesDifferentStream(t *testing.T) {
	a := NewXoroshiro128Plus(DefaultSeed)
	b := NewXoroshiro128Plus(DefaultSeed)
	b.LongJump()

	same := true
	for i := 0; i < 16; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("LongJump did not move the stream away from its un-jumped origin")
	}
}

func TestShortJumpProducesDifferentStream(t *testing.T) {
	a := NewXoroshiro128Plus(DefaultSeed)
	b := NewXoroshiro128Plus(DefaultSeed)
	b.ShortJump()

	same := true
	for i := 0; i < 16; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("ShortJump did not move the stream away from its un-jumped origin")
	}
}

func TestSuccessiveLongJumpsDiffer(t *testing.T) {
	seen := map[[2]uint64]bool{}
	rng := NewXoroshiro128Plus(DefaultSeed)
	for i := 0; i < 8; i++ {
		rng.LongJump()
		state := [2]uint64{rng.s0, rng.s1}
		if seen[state] {
			t.Fatalf("LongJump %d repeated a prior worker's starting state", i)
		}
		seen[state] = true
	}
}

func TestRandomXYZWUnsignedRange(t *testing.T) {
	rng := NewXoroshiro128Plus(1)
	for i := 0; i < 1000; i++ {
		vals := randomXYZWUnsigned(rng.Next())
		for _, v := range vals {
			if v < 0 || v >= 1 {
				t.Fatalf("randomXYZWUnsigned produced %v, want [0,1)", v)
			}
		}
	}
}

func TestRandomNormalIsUnit(t *testing.T) {
	rng := NewXoroshiro128Plus(7)
	for i := 0; i < 100; i++ {
		v := RandomNormal(rng)
		n := v.Dot(v)
		if n < 0.98 || n > 1.02 {
			t.Fatalf("RandomNormal produced non-unit vector, |v|^2=%v", n)
		}
	}
}
