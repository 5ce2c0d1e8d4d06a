// Package overlay rasterizes metric construction lines over a photo.
package overlay

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"face-metrics/internal/metrics"
	"face-metrics/pkg/colorutil"
	"face-metrics/pkg/geometry"
)

// Hover is the ring drawn around the draggable point under the pointer.
type Hover struct {
	Center geometry.Point2D
	Radius float64
}

// Frame is everything drawn in one redraw, in image coordinates.
type Frame struct {
	Drawables []metrics.Drawable
	Hover     *Hover
}

// Style controls stroke sizes, in image pixels before zoom.
type Style struct {
	LineWidth  int
	DotRadius  float64
	HoverColor color.RGBA
}

// BaseRadius is the vertex dot radius for an image of the given size. It
// grows with the square root of the area so dots look alike on any photo.
func BaseRadius(size geometry.Size) float64 {
	return math.Sqrt(size.Width * size.Height / 100000)
}

// DefaultStyle returns the style for an image of the given size.
func DefaultStyle(size geometry.Size) Style {
	r := BaseRadius(size)
	return Style{
		LineWidth:  max(1, int(math.Round(r/2))),
		DotRadius:  r,
		HoverColor: colorutil.Gray,
	}
}

// Draw strokes the frame onto dst, scaling image coordinates by zoom.
func Draw(dst *image.RGBA, f Frame, zoom float64, st Style) {
	for _, d := range f.Drawables {
		drawPolyline(dst, d, zoom, st)
	}
	if f.Hover != nil {
		c := geometry.Scale(zoom, zoom).Apply(f.Hover.Center)
		drawRing(dst, c.X, c.Y, f.Hover.Radius*zoom, st.HoverColor)
	}
}

// Compose copies base and draws the frame over it at full resolution.
func Compose(base image.Image, f Frame, st Style) *image.RGBA {
	b := base.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), base, b.Min, draw.Src)
	Draw(out, f, 1, st)
	return out
}

func drawPolyline(dst *image.RGBA, d metrics.Drawable, zoom float64, st Style) {
	if len(d.Points) == 0 {
		return
	}
	view := geometry.Scale(zoom, zoom)
	pts := make([]geometry.Point2D, len(d.Points))
	for i, p := range d.Points {
		pts[i] = view.Apply(p)
	}
	width := max(1, int(math.Round(float64(st.LineWidth)*math.Max(zoom, 0.5))))

	for i := 0; i+1 < len(pts); i++ {
		drawLine(dst, pts[i], pts[i+1], d.Color, width)
	}
	if d.Closed && len(pts) > 2 {
		drawLine(dst, pts[len(pts)-1], pts[0], d.Color, width)
	}
	for _, p := range pts {
		fillCircle(dst, p.X, p.Y, st.DotRadius*zoom, d.Color)
	}
}

// drawLine draws a line between two points using Bresenham's algorithm.
func drawLine(dst *image.RGBA, a, b geometry.Point2D, col color.RGBA, thickness int) {
	x1, y1 := int(math.Round(a.X)), int(math.Round(a.Y))
	x2, y2 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		for t := -thickness / 2; t <= thickness/2; t++ {
			for s := -thickness / 2; s <= thickness/2; s++ {
				set(dst, x1+s, y1+t, col)
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func fillCircle(dst *image.RGBA, cx, cy, r float64, col color.RGBA) {
	circle(dst, cx, cy, r, -1, col)
}

// drawRing outlines a circle two pixels thick.
func drawRing(dst *image.RGBA, cx, cy, r float64, col color.RGBA) {
	circle(dst, cx, cy, r, r-2, col)
}

func circle(dst *image.RGBA, cx, cy, r, inner float64, col color.RGBA) {
	r2 := r * r
	inner2 := -1.0
	if inner > 0 {
		inner2 = inner * inner
	}
	for y := int(cy - r - 1); y <= int(cy+r+1); y++ {
		for x := int(cx - r - 1); x <= int(cx+r+1); x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			d2 := dx*dx + dy*dy
			if d2 <= r2 && d2 >= inner2 {
				set(dst, x, y, col)
			}
		}
	}
}

func set(dst *image.RGBA, x, y int, col color.RGBA) {
	if (image.Point{X: x, Y: y}).In(dst.Bounds()) {
		dst.SetRGBA(x, y, col)
	}
}
