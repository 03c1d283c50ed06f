package staticray

import "testing"

func TestColorStoreLoadRoundTrip(t *testing.T) {
	c := RColor{R: 0.25, G: 0.5, B: 0.75}
	got := Load(Store(c))
	const tol = 1.0 / 255
	if abs(got.R-c.R) > tol || abs(got.G-c.G) > tol || abs(got.B-c.B) > tol {
		t.Fatalf("Load(Store(%v)) = %v, want within %v", c, got, tol)
	}
}

func TestColorStoreClamps(t *testing.T) {
	got := Store(RColor{R: 2, G: -1, B: 0.5})
	if got[0] != 255 {
		t.Fatalf("Store clamp high: got %d, want 255", got[0])
	}
	if got[1] != 0 {
		t.Fatalf("Store clamp low: got %d, want 0", got[1])
	}
}

func TestAbsorbTerminatesBelowCutoff(t *testing.T) {
	c := RColor{R: 0.0001, G: 0.0001, B: 0.0001}
	terminated := Absorb(&c, RColor{R: 1, G: 1, B: 1})
	if !terminated {
		t.Fatalf("Absorb should report termination below LumaCutoff, sum=%v", c.Sum())
	}
}

func TestAbsorbContinuesAboveCutoff(t *testing.T) {
	c := RColor{R: 1, G: 1, B: 1}
	terminated := Absorb(&c, RColor{R: 0.9, G: 0.9, B: 0.9})
	if terminated {
		t.Fatalf("Absorb should not terminate a bright photon, sum=%v", c.Sum())
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
