package staticray

import (
	"bufio"
	"encoding/binary"
	"os"
)

// Image is a simple W*H grid of accumulated RColor, written out as a
// 24-bit uncompressed Targa file. Ported from Image.h's ImageType/
// TargaType. No third-party TGA encoder appears anywhere in the retrieved
// corpus, and Go's standard image package has no TGA codec either, so
// this thin collaborator stays hand-written.
type Image struct {
	Width, Height int
	Pix           []RColor
}

func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: make([]RColor, width*height)}
}

func (im *Image) At(x, y int) RColor {
	return im.Pix[y*im.Width+x]
}

func (im *Image) Accumulate(x, y int, c RColor) {
	i := y*im.Width + x
	im.Pix[i] = im.Pix[i].Add(c)
}

func (im *Image) Scale(s float64) {
	for i := range im.Pix {
		im.Pix[i] = im.Pix[i].Scale(s)
	}
}

type tgaHeader struct {
	IDLenMapType   uint16
	TypeCode       uint8
	ClrMapOrgLen   uint32
	MapEntrySize   uint8
	XOrgYOrg       uint32
	Width, Height  uint16
	BPP, ImgDesc   uint8
}

// WriteTGA writes the image as a 24-bit uncompressed Targa file, bottom
// row first, left to right - the orientation TGA's default bottom-left
// origin (ImgDesc = 0) expects.
func (im *Image) WriteTGA(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	hdr := tgaHeader{
		TypeCode: 2, // uncompressed true-color
		Width:    uint16(im.Width),
		Height:   uint16(im.Height),
		BPP:      24,
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return err
	}

	for y := im.Height - 1; y >= 0; y-- {
		for x := 0; x < im.Width; x++ {
			c := im.At(x, y)
			bgr := [3]byte{
				clampByteRound(c.B * 255),
				clampByteRound(c.G * 255),
				clampByteRound(c.R * 255),
			}
			if _, err := w.Write(bgr[:]); err != nil {
				return err
			}
		}
	}

	return w.Flush()
}
