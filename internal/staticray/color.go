package staticray

import "math"

// RColor is a linear tri-stimulus RGB color. Worldspace vector algebra
// (position, direction, normals) is delegated to github.com/golang/geo/r3;
// color is domain-specific policy (elementwise multiply, luma-sum
// absorption test, 8-bit quantization), so it keeps its own small type
// rather than borrowing r3.Vector. Ported from Colors.h's RGBSystem.
type RColor struct {
	R, G, B float64
}

func (c RColor) Mul3(o RColor) RColor {
	return RColor{c.R * o.R, c.G * o.G, c.B * o.B}
}

func (c RColor) Add(o RColor) RColor {
	return RColor{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c RColor) Scale(s float64) RColor {
	return RColor{c.R * s, c.G * s, c.B * s}
}

func (c RColor) Sum() float64 {
	return c.R + c.G + c.B
}

// Emit selects an emissive color to emit; for a single-color light this is
// just the light's own color, but it is kept as a function to mirror the
// ColorSystem::Emit policy hook.
func Emit(emitter RColor) RColor {
	return emitter
}

// Absorb diminishes color by a material's absorption coefficient and
// reports whether the photon has dimmed below LumaCutoff and should be
// terminated.
func Absorb(color *RColor, material RColor) bool {
	*color = color.Mul3(material)
	return color.Sum() < LumaCutoff
}

// Store compresses an emissive color to its 8bit RGBA wire format. The
// distilled specification's data model explicitly calls for rounding here
// (unlike Fixed16, which truncates per Design Notes), so rounding is what
// is implemented.
func Store(c RColor) [4]uint8 {
	return [4]uint8{
		clampByteRound(c.R * 255),
		clampByteRound(c.G * 255),
		clampByteRound(c.B * 255),
		0,
	}
}

func clampByteRound(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Load restores an emissive color from its 8bit wire format.
func Load(stored [4]uint8) RColor {
	return RColor{
		float64(stored[0]) / 255,
		float64(stored[1]) / 255,
		float64(stored[2]) / 255,
	}
}
