package main

import (
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strconv"

	"github.com/x-bios/staticray/internal/staticray"
)

// main wires environment toggles into a Render pass followed by a Develop
// pass over the same film file, the two-phase pipeline StaticRay.cpp's own
// main() drives. There are no command-line flags; every tunable comes from
// the fixed scene or an environment override, matching the original's
// compile-time configuration.
func main() {
	staticray.Debug = envBool("DEBUG")
	staticray.Verbose = envBool("VERBOSE")

	if envBool("PROFILE") {
		f, err := os.Create("cpu.out")
		if err != nil {
			log.Fatalf("staticray: profile create failed: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("staticray: profile start failed: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	const filmPath = "out/out.dat"
	if err := os.MkdirAll(filepath.Dir(filmPath), 0755); err != nil {
		log.Fatalf("staticray: creating output directory failed: %v", err)
	}

	renderCfg := staticray.DefaultRenderConfig()
	if n := envInt("THREADS"); n > 0 {
		renderCfg.Threads = n
	}

	scene := staticray.NewDefaultScene()
	lights := staticray.NewDefaultLights()

	if err := staticray.Render(filmPath, scene, lights, renderCfg); err != nil {
		log.Fatalf("staticray: render failed: %v", err)
	}

	developCfg := staticray.DefaultDevelopConfig()
	if n := envInt("THREADS"); n > 0 {
		developCfg.Threads = n
	}
	if err := os.MkdirAll(developCfg.OutDir, 0755); err != nil {
		log.Fatalf("staticray: creating output directory failed: %v", err)
	}

	if err := staticray.Develop(filmPath, developCfg); err != nil {
		log.Fatalf("staticray: develop failed: %v", err)
	}
}

func envBool(name string) bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}

func envInt(name string) int {
	v, ok := os.LookupEnv(name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
