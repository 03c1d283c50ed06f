package staticray

// HitRecord is the compact wire format for a single captured photon.
// Ported from Film.h's HitRecord. The distilled specification's wire
// format fixes this at 16 bytes; the 4 positional Fixed16 fields plus the
// 4-byte RGBA color only account for 12, so 4 reserved bytes pad it out to
// the documented size (the original C++ layout is 12 bytes - a divergence
// the distilled spec introduces and this port honors as the wire contract).
type HitRecord struct {
	PosU, PosV Fixed16
	DirU, DirV Fixed16
	Clr        [4]uint8
	_          [4]byte
}

type configHeader struct {
	blockHeader
	LensRadius float32
}

type filmHeader struct {
	blockHeader
	Count uint32
}

// ColorFilm is a bounded, thread-local queue of HitRecord backed by a
// shared DataStream. Ported from Film.h's ColorFilm.
type ColorFilm struct {
	Stream    *DataStream
	Config    configHeader
	buf       []HitRecord
	cap       int
	Exposures uint64
}

func NewColorFilm(stream *DataStream, bufferLimit int) *ColorFilm {
	return &ColorFilm{
		Stream: stream,
		buf:    make([]HitRecord, 0, bufferLimit),
		cap:    bufferLimit,
	}
}

// Expose buffers a captured photon, flushing when the buffer fills.
func (f *ColorFilm) Expose(hit HitRecord) error {
	f.buf = append(f.buf, hit)
	if len(f.buf) == f.cap {
		return f.Flush()
	}
	return nil
}

// Flush writes every buffered hit as one Hits block and empties the
// buffer. A no-op when the buffer is empty.
func (f *ColorFilm) Flush() error {
	if len(f.buf) == 0 {
		return nil
	}
	count := uint32(len(f.buf))
	f.Exposures += uint64(count)

	hdr := filmHeader{
		blockHeader: blockHeader{Magic: blockMagic, Ident: tagHits, Size: filmHeaderBaseSize + uint32(hitRecordSize)*count},
		Count:       count,
	}

	unlock := f.Stream.Sync()
	defer unlock()

	if err := f.Stream.writeFilmHeader(hdr); err != nil {
		return err
	}
	if err := f.Stream.writeHits(f.buf); err != nil {
		return err
	}
	f.buf = f.buf[:0]
	return nil
}

// WriteConfig writes the virtual camera configuration. Called exactly once
// before any Hits blocks are written.
func (f *ColorFilm) WriteConfig(lensRadius float32) error {
	f.Config = configHeader{
		blockHeader: blockHeader{Magic: blockMagic, Ident: tagConfig, Size: configHeaderSize},
		LensRadius:  lensRadius,
	}
	unlock := f.Stream.Sync()
	defer unlock()
	return f.Stream.writeConfigHeader(f.Config)
}

// ReadConfig seeks to the first Config block and reads it.
func (f *ColorFilm) ReadConfig() error {
	unlock := f.Stream.Sync()
	defer unlock()
	if err := f.Stream.Seek(tagConfig); err != nil {
		return err
	}
	return f.Stream.readConfigHeader(&f.Config)
}

// ReadHits invokes fn once per Hits block from the stream's current
// position forward, stopping (without error) at the first block it can't
// seek to or read - end of file and corruption are indistinguishable here,
// matching the original ColorFilm::ReadHits loop.
func (f *ColorFilm) ReadHits(fn func([]HitRecord)) {
	for f.readOneBlock(fn) {
	}
}

func (f *ColorFilm) readOneBlock(fn func([]HitRecord)) bool {
	unlock := f.Stream.Sync()
	defer unlock()

	if err := f.Stream.Seek(tagHits); err != nil {
		return false
	}
	var hdr filmHeader
	if err := f.Stream.readFilmHeader(&hdr); err != nil {
		return false
	}
	buf := make([]HitRecord, hdr.Count)
	if err := f.Stream.readHits(buf); err != nil {
		return false
	}
	fn(buf)
	return true
}
