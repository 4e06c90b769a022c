package overlay

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestNormalize_ReencodesWithAlpha(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "sticker.png")
	writePNG(t, src, 64, 32)

	prep, ok := normalize(src, dir)
	if !ok {
		t.Fatal("normalize failed on a valid PNG")
	}
	if prep.Width != 64 || prep.Height != 32 {
		t.Errorf("dimensions: got %dx%d, want 64x32", prep.Width, prep.Height)
	}

	f, err := os.Open(prep.Path)
	if err != nil {
		t.Fatalf("open normalized: %v", err)
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode normalized: %v", err)
	}
	if format != "png" {
		t.Errorf("format: got %q, want png", format)
	}
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Errorf("re-encoded dimensions: got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestNormalize_UndecodableInput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(src, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok := normalize(src, dir); ok {
		t.Error("normalize should fail on garbage input")
	}
}

func TestNormalize_MissingInput(t *testing.T) {
	dir := t.TempDir()
	if _, ok := normalize(filepath.Join(dir, "missing.png"), dir); ok {
		t.Error("normalize should fail on a missing file")
	}
}
