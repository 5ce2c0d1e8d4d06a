package image

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// FitScale returns the factor that fits a w×h image inside maxW×maxH without
// enlarging it.
func FitScale(w, h, maxW, maxH int) float64 {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return 1
	}
	return math.Min(1, math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h)))
}

// Scale resamples img by factor with Catmull-Rom interpolation.
func Scale(img image.Image, factor float64) *image.RGBA {
	b := img.Bounds()
	w := int(math.Round(float64(b.Dx()) * factor))
	h := int(math.Round(float64(b.Dy()) * factor))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
