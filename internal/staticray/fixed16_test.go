package staticray

import "testing"

func TestFixed16RoundTrip(t *testing.T) {
	cases := []float64{0, 0.5, -0.5, 0.999, -0.999, 0.00003}
	for _, x := range cases {
		got := NewFixed16(x).Float64()
		if diff := got - x; diff > 1.0/32768 || diff < -1.0/32768 {
			t.Fatalf("NewFixed16(%v).Float64() = %v, want within 1/32768", x, got)
		}
	}
}

func TestFixed16Saturates(t *testing.T) {
	if got := NewFixed16(10); got != 32767 {
		t.Fatalf("NewFixed16(10) = %d, want 32767", got)
	}
	if got := NewFixed16(-10); got != -32768 {
		t.Fatalf("NewFixed16(-10) = %d, want -32768", got)
	}
}

func TestFixed16Truncates(t *testing.T) {
	// 0.50002 * 32768 = 16384.655...; truncation must floor toward zero
	// (16384), not round (16385), per Design Notes' override of the
	// data-model table's wording.
	f := NewFixed16(0.50002)
	if f != 16384 {
		t.Fatalf("NewFixed16(0.50002) = %d, want 16384 (truncated)", f)
	}
}
