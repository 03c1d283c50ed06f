package staticray

// Compile-time checks that every concrete type satisfies the interface it
// is meant to implement.
var (
	_ Shape = (*Sphere)(nil)
	_ Shape = (*Plane)(nil)
	_ Shape = (*Lens)(nil)

	_ Material = IdealDiffuse{}
	_ Material = IdealMirror{}
	_ Material = ShinyOpaque{}

	_ Light = PointBeam{}
	_ Light = PointLight{}
	_ Light = OmniSphere{}
)
