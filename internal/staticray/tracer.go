package staticray

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/remeh/sizedwaitgroup"
)

// RenderConfig holds the tunable parameters of a render pass. Defaults
// mirror StaticRay.cpp's non-debug Render().
type RenderConfig struct {
	Multiplier float64
	Passes     uint32
	Bounces    int
	BufferCap  int
	Threads    int
	LensRadius float32
}

func DefaultRenderConfig() RenderConfig {
	threads := runtime.NumCPU()
	if threads < 1 {
		threads = 1
	}
	return RenderConfig{
		Multiplier: DefaultMultiplier,
		Passes:     DefaultPasses,
		Bounces:    DefaultBounces,
		BufferCap:  DefaultBufferCap,
		Threads:    threads,
		LensRadius: 2,
	}
}

// Render traces photons from every light through the scene, capturing the
// ones that cross the lens into path's film file. Ported from
// StaticRay.cpp's Render().
func Render(path string, scene *Scene, lights []Light, cfg RenderConfig) error {
	data := NewDataStream()
	if err := data.New(path); err != nil {
		return err
	}
	defer data.Close()

	states := make([]*PhotonState, cfg.Threads)
	seed := NewXoroshiro128Plus(DefaultSeed)
	for i := range states {
		// Long-jump once per worker from a single shared seed generator,
		// partitioning the output stream into non-overlapping
		// subsequences with certainty.
		seed.LongJump()
		rng := *seed

		states[i] = &PhotonState{
			Film: NewColorFilm(data, cfg.BufferCap),
			RNG:  &rng,
		}
	}

	if err := states[0].Film.WriteConfig(cfg.LensRadius); err != nil {
		return err
	}

	start := time.Now()

	var pass uint32
	var totalPasses int64
	swg := sizedwaitgroup.New(cfg.Threads)
	for _, st := range states {
		st := st
		swg.Add()
		go func() {
			defer swg.Done()
			for atomic.AddUint32(&pass, 1) <= cfg.Passes {
				atomic.AddInt64(&totalPasses, 1)
				illuminate(scene, lights, cfg, st)
			}
		}()
	}
	swg.Wait()

	elapsed := time.Since(start)

	var hits, exposures uint64
	var flushErr error
	for _, st := range states {
		if err := st.Film.Flush(); err != nil {
			DebugLog("final flush failed: %v", err)
			if flushErr == nil {
				flushErr = err
			}
		}
		hits += uint64(st.Hits)
		exposures += st.Film.Exposures
	}

	DebugLog("%d exposures in %s", exposures, elapsed)
	if elapsed.Seconds() > 0 {
		Progress("%.2fM scene traces @ %.2fM traces/sec", float64(hits)/1e6, float64(hits)/elapsed.Seconds()/1e6)
	}
	return flushErr
}

// illuminate fires every light's quota of photons for one pass, bouncing
// each through the scene up to Bounces times.
func illuminate(scene *Scene, lights []Light, cfg RenderConfig, st *PhotonState) {
	for _, light := range lights {
		traces := light.Traces(cfg.Multiplier)
		for t := uint64(0); t < traces; t++ {
			light.Emit(st)
			for bounce := 0; bounce < cfg.Bounces && Trace(scene, st); bounce++ {
				st.Hits++
			}
		}
	}
}
