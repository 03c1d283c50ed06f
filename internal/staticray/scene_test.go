package staticray

import (
	"testing"

	"github.com/golang/geo/r3"
)

// recordingShape reports a fixed HitExterior distance and records whether
// its commit closure was ever invoked.
type recordingShape struct {
	distance float64
	committed *bool
}

func (s recordingShape) HitExterior(st *PhotonState) {
	if s.distance >= st.HitDist {
		return
	}
	committed := s.committed
	st.Hit(s.distance, func() bool {
		*committed = true
		return false
	})
}

func TestTraceCommitsOnlyNearestHit(t *testing.T) {
	var nearCommitted, farCommitted bool

	scene := &Scene{Shapes: []Shape{
		recordingShape{distance: 10, committed: &farCommitted},
		recordingShape{distance: 2, committed: &nearCommitted},
		recordingShape{distance: 7, committed: &farCommitted},
	}}

	st := &PhotonState{}
	Trace(scene, st)

	if !nearCommitted {
		t.Fatalf("expected the nearest shape's commit closure to run")
	}
	if farCommitted {
		t.Fatalf("a farther shape's commit closure ran even though a nearer hit existed")
	}
}

func TestTraceReturnsFalseWithNoHits(t *testing.T) {
	scene := &Scene{Shapes: []Shape{}}
	st := &PhotonState{}
	if Trace(scene, st) {
		t.Fatalf("Trace on an empty scene should not continue bouncing")
	}
}

func TestSphereHitExteriorRejectsBehindRay(t *testing.T) {
	sphere := &Sphere{Position: r3.Vector{X: 0, Y: 0, Z: -5}, Radius: 1, Mat: IdealMirror{}}
	st := &PhotonState{}
	st.Reset()
	st.Position = r3.Vector{X: 0, Y: 0, Z: 0}
	st.Direction = r3.Vector{X: 0, Y: 0, Z: 1} // facing away from the sphere

	sphere.HitExterior(st)
	if st.hitFunc != nil {
		t.Fatalf("sphere behind the ray's origin should not register a hit")
	}
}

func TestDefaultSceneAndLightsAreNonEmpty(t *testing.T) {
	scene := NewDefaultScene()
	if len(scene.Shapes) == 0 {
		t.Fatalf("expected NewDefaultScene to populate shapes")
	}
	if scene.Lens == nil {
		t.Fatalf("expected NewDefaultScene to include a lens")
	}

	lights := NewDefaultLights()
	if len(lights) == 0 {
		t.Fatalf("expected NewDefaultLights to populate lights")
	}
}
