package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// TestLoadPNG ensures a written PNG round-trips through Load.
func TestLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solid(40, 30, color.RGBA{R: 10, G: 20, B: 30, A: 255})); err != nil {
		t.Fatal(err)
	}
	f.Close()

	photo, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if photo.Width() != 40 || photo.Height() != 30 || photo.Format != "png" {
		t.Errorf("got %dx%d %s", photo.Width(), photo.Height(), photo.Format)
	}
	if got := color.RGBAModel.Convert(photo.PixelAt(100, 100)); got != color.RGBAModel.Convert(color.Black) {
		t.Errorf("out of bounds pixel = %v", got)
	}
}

// TestLoadMissing ensures a missing file is an error.
func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.jpg")); err == nil {
		t.Fatal("expected error")
	}
}

// TestIsSupportedFormat checks extension matching.
func TestIsSupportedFormat(t *testing.T) {
	for path, want := range map[string]bool{
		"a.JPG": true, "b.webp": true, "c.tif": true, "d.gif": false, "e": false,
	} {
		if got := IsSupportedFormat(path); got != want {
			t.Errorf("IsSupportedFormat(%q) = %v", path, got)
		}
	}
}

// TestFitScale ensures images only ever shrink to fit.
func TestFitScale(t *testing.T) {
	if got := FitScale(800, 400, 400, 400); got != 0.5 {
		t.Errorf("FitScale = %v, want 0.5", got)
	}
	if got := FitScale(100, 100, 400, 400); got != 1 {
		t.Errorf("FitScale = %v, want 1", got)
	}
	if got := Scale(solid(80, 40, color.RGBA{A: 255}), 0.5).Bounds(); got != image.Rect(0, 0, 40, 20) {
		t.Errorf("Scale bounds = %v", got)
	}
}

// TestCVSamplerMean ensures the mean comes back in RGB order.
func TestCVSamplerMean(t *testing.T) {
	img := solid(50, 50, color.RGBA{R: 200, G: 100, B: 20, A: 255})
	crop, mean, err := CVSampler{}.SampleRegion(img, image.Rect(10, 10, 26, 26))
	if err != nil {
		t.Fatalf("SampleRegion: %v", err)
	}
	if mean != (color.RGBA{R: 200, G: 100, B: 20, A: 255}) {
		t.Errorf("mean = %v", mean)
	}
	if crop.Bounds().Dx() != 16 || crop.Bounds().Dy() != 16 {
		t.Errorf("crop bounds = %v", crop.Bounds())
	}
	if _, _, err := (CVSampler{}).SampleRegion(img, image.Rect(60, 60, 70, 70)); err == nil {
		t.Error("expected error for region outside image")
	}
}
