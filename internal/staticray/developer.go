package staticray

import (
	"fmt"
	"math"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/golang/geo/r3"
	"github.com/remeh/sizedwaitgroup"
)

// DevelopConfig holds the tunable parameters of a develop pass. Defaults
// mirror StaticRay.cpp's Develop().
type DevelopConfig struct {
	Zoom     float64
	FocalLen float64
	FLimit   float64
	Width    int
	Height   int
	Frames   int
	Threads  int
	OutDir   string
}

func DefaultDevelopConfig() DevelopConfig {
	threads := runtime.NumCPU()
	if threads < 1 {
		threads = 1
	}
	return DevelopConfig{
		Zoom:     DefaultZoom,
		FocalLen: DefaultFocalLen,
		FLimit:   DefaultFLimit,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Frames:   DefaultFrames,
		Threads:  threads,
		OutDir:   "out",
	}
}

// Develop reads captured photons back from path and projects them through
// the virtual lens to produce cfg.Frames TGA images, one per animated
// focal distance. Ported from StaticRay.cpp's Develop().
func Develop(path string, cfg DevelopConfig) error {
	exposure, err := estimateExposure(path, cfg)
	if err != nil {
		return err
	}

	var frameIdx int32
	var mu sync.Mutex
	var firstErr error
	swg := sizedwaitgroup.New(cfg.Threads)

	for w := 0; w < cfg.Threads; w++ {
		swg.Add()
		go func() {
			defer swg.Done()
			if err := developWorker(path, cfg, exposure, &frameIdx); err != nil {
				DebugLog("develop worker failed: %v", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}
	swg.Wait()

	return firstErr
}

// estimateExposure scans every captured photon once to compute the
// normalization factor that brings accumulated radiance into a displayable
// range.
func estimateExposure(path string, cfg DevelopConfig) (float64, error) {
	data := NewDataStream()
	if err := data.Open(path, true); err != nil {
		return 0, err
	}
	defer data.Close()

	film := NewColorFilm(data, 1<<20)

	var photons uint64
	film.ReadHits(func(hits []HitRecord) {
		photons += uint64(len(hits))
	})

	if photons == 0 {
		// No photons recorded: frames stay black rather than dividing by
		// zero or scaling by infinity.
		return 0, nil
	}
	return 2 / (float64(photons) / float64(cfg.Width*cfg.Height)), nil
}

// developWorker opens its own independent handle onto path and claims
// frame indices until none remain.
func developWorker(path string, cfg DevelopConfig, exposure float64, frameIdx *int32) error {
	data := NewDataStream()
	if err := data.Open(path, true); err != nil {
		return err
	}
	defer data.Close()

	film := NewColorFilm(data, 1<<20)

	for {
		frame := int(atomic.AddInt32(frameIdx, 1)) - 1
		if frame >= cfg.Frames {
			return nil
		}

		if err := data.Rewind(); err != nil {
			return err
		}
		if err := film.ReadConfig(); err != nil {
			return err
		}

		image := developFrame(film, cfg, frame)
		image.Scale(exposure)

		Progress("%d", frame)

		out := filepath.Join(cfg.OutDir, fmt.Sprintf("out%04d.tga", frame))
		if err := image.WriteTGA(out); err != nil {
			return err
		}
	}
}

// developFrame projects every captured photon in film onto a fresh image
// at the given frame's focal distance. Ported from StaticRay.cpp's
// Develop() inner loop.
func developFrame(film *ColorFilm, cfg DevelopConfig, frame int) *Image {
	image := NewImage(cfg.Width, cfg.Height)
	half := r3.Vector{X: float64(cfg.Width) / 2, Y: float64(cfg.Height) / 2}

	focalDist := 2 + float64(frame)/32

	lensRad := float64(film.Config.LensRadius)
	fLimit := (r3.Vector{X: 1, Y: cfg.FLimit}).Normalize().Y

	hScale := half.Mul(lensRad * cfg.FocalLen * cfg.Zoom * math.Sqrt2 / -2)

	imgDist := 1 / (1/cfg.FocalLen - 1/focalDist)

	film.ReadHits(func(hits []HitRecord) {
		for _, hit := range hits {
			projectHit(image, hit, lensRad, cfg.FocalLen, fLimit, hScale, half, imgDist)
		}
	})

	return image
}

// projectHit inverse-projects one captured photon through the thin lens
// and accumulates its color onto the image plane, if it lands within the
// aperture mask and the visible frame. Ported from StaticRay.cpp's
// Develop() per-photon block, including the non-physical
// `recDir.z = 1 - recDir.z` approximation, replicated verbatim.
func projectHit(image *Image, hit HitRecord, lensRad, focalLen, fLimit float64, hScale, half r3.Vector, imgDist float64) {
	// Decode the hit position, relative to the lens position.
	recPos := r3.Vector{X: hit.PosU.Float64(), Y: hit.PosV.Float64()}.Mul(lensRad)

	// Decode the hit direction, relative to the lens direction.
	recDirX, recDirY := hit.DirU.Float64(), hit.DirV.Float64()
	zArg := 1 - recDirX*recDirX - recDirY*recDirY
	if zArg < 0 {
		return
	}
	recDir := r3.Vector{X: recDirX, Y: recDirY, Z: math.Sqrt(zArg)}

	// Deflection at this location on the virtual lens.
	lensDef := (r3.Vector{X: recPos.X, Y: recPos.Y, Z: focalLen}).Normalize()

	// Aperture mask.
	if recDir.Dot(lensDef) < fLimit {
		return
	}

	// Add the virtual lens surface normal to the ray direction.
	recDir.Z = 1 - recDir.Z

	projDir := recDir.Sub(lensDef).Normalize()

	imgPos := recPos.Add(projDir.Mul(imgDist / -projDir.Z))

	pixel := r3.Vector{
		X: imgPos.X*hScale.X + half.X,
		Y: imgPos.Y*hScale.Y + half.Y,
	}

	if pixel.X < 0 || pixel.Y < 0 || math.IsNaN(pixel.X) || math.IsInf(pixel.X, 0) || math.IsNaN(pixel.Y) || math.IsInf(pixel.Y, 0) {
		return
	}

	x, y := int(pixel.X), int(pixel.Y)
	if x >= image.Width || y >= image.Height {
		return
	}

	image.Accumulate(x, y, Load(hit.Clr))
}
