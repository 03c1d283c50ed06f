package staticray

import (
	"os"
	"path/filepath"
	"testing"
)

// TestRenderDevelopEndToEnd exercises the full Render -> Develop pipeline
// against a tiny configuration, standing in for the distilled
// specification's end-to-end scenarios: a film file is produced, then
// consumed back into at least one TGA frame, without error.
func TestRenderDevelopEndToEnd(t *testing.T) {
	dir := t.TempDir()
	filmPath := filepath.Join(dir, "film.dat")

	renderCfg := RenderConfig{
		Multiplier: 200,
		Passes:     2,
		Bounces:    4,
		BufferCap:  64,
		Threads:    2,
		LensRadius: 2,
	}

	scene := NewDefaultScene()
	lights := NewDefaultLights()

	if err := Render(filmPath, scene, lights, renderCfg); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if _, err := os.Stat(filmPath); err != nil {
		t.Fatalf("expected a film file to exist after Render: %v", err)
	}

	developCfg := DevelopConfig{
		Zoom:     1,
		FocalLen: 1,
		FLimit:   0.8,
		Width:    8,
		Height:   8,
		Frames:   1,
		Threads:  1,
		OutDir:   dir,
	}

	if err := Develop(filmPath, developCfg); err != nil {
		t.Fatalf("Develop: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "out0000.tga")); err != nil {
		t.Fatalf("expected a TGA frame to be written by Develop: %v", err)
	}
}

func TestDevelopHandlesEmptyFilm(t *testing.T) {
	dir := t.TempDir()
	filmPath := filepath.Join(dir, "film.dat")

	ds := NewDataStream()
	if err := ds.New(filmPath); err != nil {
		t.Fatalf("New: %v", err)
	}
	film := NewColorFilm(ds, 16)
	if err := film.WriteConfig(2); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := ds.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	developCfg := DefaultDevelopConfig()
	developCfg.Width, developCfg.Height = 4, 4
	developCfg.Frames = 1
	developCfg.Threads = 1
	developCfg.OutDir = dir

	if err := Develop(filmPath, developCfg); err != nil {
		t.Fatalf("Develop on an empty film should not error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "out0000.tga")); err != nil {
		t.Fatalf("expected a (black) TGA frame even with no recorded photons: %v", err)
	}
}
