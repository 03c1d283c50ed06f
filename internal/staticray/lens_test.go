package staticray

import (
	"path/filepath"
	"testing"

	"github.com/golang/geo/r3"
)

func newTestFilm(t *testing.T) (*ColorFilm, *DataStream) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "film.dat")
	ds := NewDataStream()
	if err := ds.New(path); err != nil {
		t.Fatalf("New: %v", err)
	}
	film := NewColorFilm(ds, 16)
	if err := film.WriteConfig(2); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	return film, ds
}

func TestLensCapturesPhotonWithinAperture(t *testing.T) {
	film, ds := newTestFilm(t)
	defer ds.Close()

	lens := NewLens(r3.Vector{}, r3.Vector{X: 0, Y: 0, Z: -1}, r3.Vector{X: 0, Y: 1, Z: 0}, 2, 0.8)

	st := &PhotonState{Film: film, Color: RColor{R: 1, G: 1, B: 1}}
	st.Reset()
	// Lens faces -z (into the scene); a captured photon travels back
	// toward the lens along +z.
	st.Position = r3.Vector{X: 0, Y: 0, Z: -5}
	st.Direction = r3.Vector{X: 0, Y: 0, Z: 1}

	lens.HitExterior(st)
	if st.hitFunc == nil {
		t.Fatalf("expected a photon travelling straight at the lens to be captured")
	}
	if cont := st.hitFunc(); cont {
		t.Fatalf("lens commit closure should always end the trace, got continue=true")
	}
	if len(film.buf) != 1 {
		t.Fatalf("expected exactly one buffered exposure, got %d", len(film.buf))
	}
}

func TestLensRejectsPhotonOutsideAperture(t *testing.T) {
	film, ds := newTestFilm(t)
	defer ds.Close()

	lens := NewLens(r3.Vector{}, r3.Vector{X: 0, Y: 0, Z: -1}, r3.Vector{X: 0, Y: 1, Z: 0}, 2, 0.8)

	st := &PhotonState{Film: film}
	st.Reset()
	st.Position = r3.Vector{X: 10, Y: 10, Z: -5}
	st.Direction = r3.Vector{X: 0, Y: 0, Z: 1}

	lens.HitExterior(st)
	if st.hitFunc != nil {
		t.Fatalf("expected a photon far outside the aperture radius to miss the lens")
	}
}

func TestLensRejectsPhotonBehindFLimit(t *testing.T) {
	film, ds := newTestFilm(t)
	defer ds.Close()

	lens := NewLens(r3.Vector{}, r3.Vector{X: 0, Y: 0, Z: -1}, r3.Vector{X: 0, Y: 1, Z: 0}, 2, 0.8)

	st := &PhotonState{Film: film}
	st.Reset()
	st.Position = r3.Vector{X: 0, Y: 0, Z: -1}
	// Travelling away from the lens, almost parallel to its plane.
	st.Direction = r3.Vector{X: 1, Y: 0, Z: 0.01}.Normalize()

	lens.HitExterior(st)
	if st.hitFunc != nil {
		t.Fatalf("expected a grazing-angle photon beyond the f-limit to miss the lens")
	}
}
