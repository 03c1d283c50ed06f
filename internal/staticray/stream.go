package staticray

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
	"sync"
)

var (
	errBadMagic   = errors.New("staticray: bad block magic")
	errBadVersion = errors.New("staticray: unsupported file version")
	errBadBlock   = errors.New("staticray: block header/size mismatch")
)

type blockHeader struct {
	Magic uint16
	Ident uint16
	Size  uint32
}

type fileHeader struct {
	blockHeader
	Major uint8
	Minor uint8
}

func newFileHeader() fileHeader {
	return fileHeader{
		blockHeader: blockHeader{Magic: blockMagic, Ident: tagFile, Size: fileHeaderSize},
		Major:       versionMajor,
		Minor:       versionMinor,
	}
}

// DataStream wraps a file as a sequence of tagged, length-prefixed blocks.
// The first block is always a FileHeader; every subsequent block starts
// with a blockHeader whose Size reports the total size of that block,
// including its own 8-byte magic/ident/size triple (matching the
// sizeof-based size computation in the original Stream.h, and confirmed by
// the Hits block's documented "size = 12 + 16*count" convention, which
// already includes the blockHeader itself via the embedded filmHeader).
//
// Every compound operation (seeking plus reading, or writing a header plus
// its payload) must run under Sync so that concurrent workers never
// interleave their reads/writes.
type DataStream struct {
	mu sync.Mutex
	f  *os.File
}

func NewDataStream() *DataStream {
	return &DataStream{}
}

// Sync acquires the stream's lock and returns a function to release it.
func (ds *DataStream) Sync() func() {
	ds.mu.Lock()
	return ds.mu.Unlock
}

// New creates a new file for writing, truncating any existing content.
func (ds *DataStream) New(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	ds.f = f
	return binary.Write(ds.f, binary.LittleEndian, newFileHeader())
}

// Append opens an existing file for writing and seeks to the end.
func (ds *DataStream) Append(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	ds.f = f
	if err := ds.readFileHeader(); err != nil {
		return err
	}
	return ds.SeekTail()
}

// Open opens an existing file, optionally in read-only mode.
func (ds *DataStream) Open(path string, readOnly bool) error {
	flag := os.O_RDWR
	if readOnly {
		flag = os.O_RDONLY
	}
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return err
	}
	ds.f = f
	return ds.readFileHeader()
}

func (ds *DataStream) readFileHeader() error {
	var hdr fileHeader
	if err := binary.Read(ds.f, binary.LittleEndian, &hdr); err != nil {
		return err
	}
	if hdr.Magic != blockMagic || hdr.Ident != tagFile || hdr.Size != fileHeaderSize {
		return errBadBlock
	}
	if hdr.Major != versionMajor || hdr.Minor != versionMinor {
		return errBadVersion
	}
	return nil
}

func (ds *DataStream) Close() error {
	return ds.f.Close()
}

// Rewind seeks to the first block after the file header.
func (ds *DataStream) Rewind() error {
	_, err := ds.f.Seek(fileHeaderSize, io.SeekStart)
	return err
}

// readBlockHeader reads a generic 8-byte block header at the current
// position and validates only its magic, matching the original's base
// BlockHeader::Validate.
func (ds *DataStream) readBlockHeader() (blockHeader, error) {
	var hdr blockHeader
	if err := binary.Read(ds.f, binary.LittleEndian, &hdr); err != nil {
		return hdr, err
	}
	if hdr.Magic != blockMagic {
		return hdr, errBadMagic
	}
	return hdr, nil
}

// Step seeks past the block at the current position.
//
// The original Stream.h computes this seek as a *relative* offset of
// hdr.Size bytes from the position right after the 8-byte header it just
// read - which only lands correctly if Size excludes those 8 bytes. But
// every other block's Size (FileHeader, ConfigHeader, FilmHeader) includes
// them, via plain sizeof. The two conventions can't both be right; Step is
// unreachable from StaticRay.cpp's actual Render/Develop flow, so the
// inconsistency is latent there. This port keeps the one real convention
// (Size includes the header) and subtracts blockHeaderSize here so Step
// still lands on the next block correctly.
func (ds *DataStream) Step() error {
	hdr, err := ds.readBlockHeader()
	if err != nil {
		return err
	}
	if hdr.Size < blockHeaderSize {
		return errBadBlock
	}
	_, err = ds.f.Seek(int64(hdr.Size)-blockHeaderSize, io.SeekCurrent)
	return err
}

// Seek advances to the next block bearing the given identity tag, leaving
// the file position at the start of that block's header.
func (ds *DataStream) Seek(ident uint16) error {
	for {
		pos, err := ds.f.Seek(0, io.SeekCurrent)
		if err != nil {
			return err
		}
		hdr, err := ds.readBlockHeader()
		if err != nil {
			return err
		}
		if hdr.Ident == ident {
			_, err := ds.f.Seek(pos, io.SeekStart)
			return err
		}
		if _, err := ds.f.Seek(pos+int64(hdr.Size), io.SeekStart); err != nil {
			ds.f.Seek(pos, io.SeekStart)
			return err
		}
	}
}

// SeekTail seeks to the position just past the last valid block, i.e.
// where a new block may safely be appended.
func (ds *DataStream) SeekTail() error {
	if err := ds.Rewind(); err != nil {
		return err
	}
	for {
		pos, err := ds.f.Seek(0, io.SeekCurrent)
		if err != nil {
			return err
		}
		hdr, err := ds.readBlockHeader()
		if err != nil {
			_, err := ds.f.Seek(pos, io.SeekStart)
			return err
		}
		next := pos + int64(hdr.Size)
		if _, err := ds.f.Seek(next, io.SeekStart); err != nil {
			_, serr := ds.f.Seek(pos, io.SeekStart)
			if serr != nil {
				return serr
			}
			return nil
		}
	}
}

func (ds *DataStream) writeConfigHeader(h configHeader) error {
	return binary.Write(ds.f, binary.LittleEndian, h)
}

func (ds *DataStream) readConfigHeader(h *configHeader) error {
	if err := binary.Read(ds.f, binary.LittleEndian, h); err != nil {
		return err
	}
	if h.blockHeader.Magic != blockMagic || h.blockHeader.Ident != tagConfig || h.blockHeader.Size != configHeaderSize {
		return errBadBlock
	}
	return nil
}

func (ds *DataStream) writeFilmHeader(h filmHeader) error {
	return binary.Write(ds.f, binary.LittleEndian, h)
}

func (ds *DataStream) readFilmHeader(h *filmHeader) error {
	if err := binary.Read(ds.f, binary.LittleEndian, h); err != nil {
		return err
	}
	wantSize := uint32(filmHeaderBaseSize) + uint32(hitRecordSize)*h.Count
	if h.blockHeader.Magic != blockMagic || h.blockHeader.Ident != tagHits || h.blockHeader.Size != wantSize {
		return errBadBlock
	}
	return nil
}

func (ds *DataStream) writeHits(hits []HitRecord) error {
	return binary.Write(ds.f, binary.LittleEndian, hits)
}

func (ds *DataStream) readHits(buf []HitRecord) error {
	return binary.Read(ds.f, binary.LittleEndian, buf)
}
