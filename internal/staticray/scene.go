package staticray

import "github.com/golang/geo/r3"

// Scene is a fixed, compile-time-known collection of shapes (including the
// Lens, which participates in intersection tests exactly like any other
// shape) traced against by every worker. The distilled specification
// forbids runtime scene authoring (no CLI flags, no JSON config); the
// original's compile-time tuple of trait objects becomes a plain Go slice
// of the Shape interface here - Design Notes explicitly sanctions "a
// dynamic vector of trait objects" as the idiomatic alternative to
// compile-time template specialization in a language without templates.
type Scene struct {
	Shapes []Shape
	Lens   *Lens
}

// Trace fires a single ray through every shape in the scene and, if any
// shape recorded the nearest intersection this bounce, commits it. It
// returns true if the trace should continue bouncing.
func Trace(scene *Scene, st *PhotonState) bool {
	st.Reset()
	for _, shape := range scene.Shapes {
		shape.HitExterior(st)
	}
	if st.hitFunc != nil {
		return st.hitFunc()
	}
	return false
}

// NewDefaultScene builds the fixed room, spheres, and camera lens used by
// both render and develop, restored verbatim (materials, geometry, and
// camera placement) from StaticRay.cpp's non-debug Render(): a six-plane
// room (four white walls split by one red and one blue), two diffuse
// spheres matching the wall colors, one mirror sphere, and a lens aimed
// across the room's diagonal.
func NewDefaultScene() *Scene {
	red := RColor{R: 0.9, G: 0.3, B: 0.3}
	blue := RColor{R: 0.3, G: 0.3, B: 0.9}
	white := RColor{R: 0.9, G: 0.9, B: 0.9}

	redPaint := IdealDiffuse{Color: red}
	bluePaint := IdealDiffuse{Color: blue}
	whitePaint := IdealDiffuse{Color: white}
	mirror := IdealMirror{}

	cameraPos := r3.Vector{X: -2, Y: 4, Z: 2}
	cameraTgt := r3.Vector{X: 2, Y: -4, Z: -2}
	cameraDir := cameraTgt.Sub(cameraPos).Normalize()

	const lensRadius = 2.0

	lens := NewLens(cameraPos, cameraDir, r3.Vector{X: 0, Y: 0, Z: 1}, lensRadius, 0.8)

	shapes := []Shape{
		&Plane{Position: r3.Vector{X: 0, Y: 0, Z: -6}, Normal: r3.Vector{X: 0, Y: 0, Z: 1}, Mat: whitePaint},  // floor
		&Plane{Position: r3.Vector{X: 0, Y: 0, Z: 6}, Normal: r3.Vector{X: 0, Y: 0, Z: -1}, Mat: whitePaint},  // ceiling
		&Plane{Position: r3.Vector{X: 0, Y: -6, Z: 0}, Normal: r3.Vector{X: 0, Y: 1, Z: 0}, Mat: whitePaint},  // north wall
		&Plane{Position: r3.Vector{X: 0, Y: 6, Z: 0}, Normal: r3.Vector{X: 0, Y: -1, Z: 0}, Mat: whitePaint},  // south wall
		&Plane{Position: r3.Vector{X: -6, Y: 0, Z: 0}, Normal: r3.Vector{X: 1, Y: 0, Z: 0}, Mat: redPaint},    // west wall
		&Plane{Position: r3.Vector{X: 6, Y: 0, Z: 0}, Normal: r3.Vector{X: -1, Y: 0, Z: 0}, Mat: bluePaint},   // east wall

		&Sphere{Position: r3.Vector{X: -4, Y: -4, Z: 1}, Radius: 2, Mat: bluePaint},
		&Sphere{Position: r3.Vector{X: 4, Y: -4, Z: 1}, Radius: 2, Mat: redPaint},
		&Sphere{Position: r3.Vector{X: 0, Y: 0, Z: -3}, Radius: 3, Mat: mirror},

		lens,
	}

	return &Scene{Shapes: shapes, Lens: lens}
}

// NewDefaultLights builds the two-light setup from StaticRay.cpp's
// non-debug Render(): an omnidirectional white sphere light overhead and a
// green point light. A supplemental PointLight is included here
// specifically because it is what the original actually exercises outside
// its _DEBUG branch; the single-direction PointBeam variant used by the
// _DEBUG branch is not part of this setup, and no test constructs it.
func NewDefaultLights() []Light {
	white := RColor{R: 1, G: 1, B: 1}
	green := RColor{R: 0, G: 1, B: 0}

	return []Light{
		OmniSphere{LightBase: LightBase{Intensity: 1, Color: white}, Position: r3.Vector{X: 0, Y: 0, Z: 5}, Radius: 1},
		PointLight{LightBase: LightBase{Intensity: 1, Color: green}, Position: r3.Vector{X: 0, Y: 5, Z: -5}},
	}
}
