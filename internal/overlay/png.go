package overlay

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"face-metrics/pkg/geometry"
)

// ErrNothingRendered is returned when writing before the first redraw.
var ErrNothingRendered = errors.New("overlay: nothing rendered yet")

// PNGSurface renders frames over a fixed photo into memory and writes the
// latest one as PNG.
type PNGSurface struct {
	Base  image.Image
	Style Style

	last *image.RGBA
}

// NewPNGSurface returns a surface over base using the default style for its size.
func NewPNGSurface(base image.Image) *PNGSurface {
	b := base.Bounds()
	return &PNGSurface{Base: base, Style: DefaultStyle(geometry.NewSize(float64(b.Dx()), float64(b.Dy())))}
}

// Redraw replaces the current rendering with f over the photo.
func (s *PNGSurface) Redraw(f Frame) {
	s.last = Compose(s.Base, f, s.Style)
}

// Image returns the latest rendering, or nil before the first Redraw.
func (s *PNGSurface) Image() *image.RGBA {
	return s.last
}

// WriteFile encodes the latest rendering to path.
func (s *PNGSurface) WriteFile(path string) error {
	if s.last == nil {
		return ErrNothingRendered
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, s.last); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
