// Package colorutil provides shared color utilities for overlays and iris sampling.
package colorutil

import (
	"image/color"
	"math"
)

// Overlay colors, one per metric, named after the CSS colors the overlays
// have always used.
var (
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray       = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightBlue  = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	Blue       = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Pink       = color.RGBA{R: 255, G: 192, B: 203, A: 255}
	Purple     = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	Gold       = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	LightGreen = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	Orange     = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Brown      = color.RGBA{R: 165, G: 42, B: 42, A: 255}
	Grey       = Gray
	Aquamarine = color.RGBA{R: 127, G: 255, B: 212, A: 255}
)

// RGBToHSV converts RGB (0-255) to HSV (OpenCV convention: H 0-180, S 0-255, V 0-255).
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	r /= 255.0
	g /= 255.0
	b /= 255.0

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	diff := maxC - minC

	v = maxC * 255.0 // V in 0-255

	if maxC == 0 {
		s = 0
	} else {
		s = (diff / maxC) * 255.0 // S in 0-255
	}

	if diff == 0 {
		h = 0
	} else if maxC == r {
		h = 60 * math.Mod((g-b)/diff, 6)
	} else if maxC == g {
		h = 60 * ((b-r)/diff + 2)
	} else {
		h = 60 * ((r-g)/diff + 4)
	}

	if h < 0 {
		h += 360
	}

	h = h / 2 // Convert to OpenCV's 0-180 range

	return h, s, v
}

// IrisColorName gives a coarse name for an averaged iris color.
// Thresholds are in OpenCV HSV units.
func IrisColorName(c color.RGBA) string {
	h, s, v := RGBToHSV(float64(c.R), float64(c.G), float64(c.B))

	switch {
	case v < 50:
		return "dark brown"
	case s < 40:
		return "gray"
	case h >= 90 && h < 130:
		return "blue"
	case h >= 40 && h < 90:
		return "green"
	case h >= 20 && h < 40:
		return "hazel"
	default:
		return "brown"
	}
}
