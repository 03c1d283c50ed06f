package staticray

// Wire format constants. See DataStream and ColorFilm.
const (
	blockMagic uint16 = 0x5453 // little-endian bytes 0x53,0x54 ("ST")

	tagFile   uint16 = 0
	tagConfig uint16 = 1
	tagHits   uint16 = 2

	versionMajor uint8 = 1
	versionMinor uint8 = 1

	blockHeaderSize     = 8  // magic u16 + ident u16 + size u32
	fileHeaderSize      = 10 // blockHeaderSize + major u8 + minor u8
	configHeaderSize    = 12 // blockHeaderSize + lensRadius f32
	filmHeaderBaseSize  = 12 // blockHeaderSize + count u32
	hitRecordSize       = 16 // 4 x Fixed16 + 4 x uint8 color + 4 reserved
)

// Epsilon matches the original source's 0x1p-22r: the smallest displacement
// considered numerically significant when testing ray/surface intersections.
const Epsilon = 1.0 / (1 << 22)

// LumaCutoff is the sum of a color's three channels below which a photon is considered
// fully absorbed and its trace terminated.
const LumaCutoff = 0.001

// DefaultSeed seeds the root PRNG that each worker's stream is long-jumped
// from. Ported from Xoroshiro.h's Random64 default.
const DefaultSeed uint64 = 0x1234567890ABCDEF

// Fixed render parameters, ported from StaticRay.cpp's non-debug Render().
const (
	DefaultMultiplier = 1e5 // photons per pass per unit of light intensity
	DefaultPasses     = 1000
	DefaultBounces    = 10
	DefaultBufferCap  = 1 << 16
)

// Fixed develop parameters, ported from StaticRay.cpp's Develop().
const (
	DefaultZoom     = 1.0
	DefaultFocalLen = 1.0
	DefaultFLimit   = 0.8
	DefaultWidth    = 256
	DefaultHeight   = 256
	DefaultFrames   = 256
)
