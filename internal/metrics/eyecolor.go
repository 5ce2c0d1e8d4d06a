package metrics

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"face-metrics/internal/assessment"
	lm "face-metrics/internal/landmarks"
	"face-metrics/pkg/colorutil"
	"face-metrics/pkg/geometry"
)

// ErrNotAssessable is returned by metrics without a reference range.
var ErrNotAssessable = errors.New("metric has no reference range")

// IrisSample is one sampled iris crop.
type IrisSample struct {
	Bounds image.Rectangle
	Crop   image.Image
	Mean   color.RGBA
	Name   string
}

// EyeColor locates both irises from the raw detection rings and, when an
// image and sampler are available, averages the color inside each box.
type EyeColor struct {
	base
	detection *lm.Detection
	img       image.Image
	sampler   RegionSampler

	Left    IrisSample
	Right   IrisSample
	Sampled bool
}

// NewEyeColor builds the metric.
func NewEyeColor(d Deps) *EyeColor {
	return &EyeColor{
		base:      newBase(KeyEyeColor, "Eye color", d),
		detection: d.Detection,
		img:       d.Image,
		sampler:   d.Sampler,
	}
}

// irisRing returns indices 1..4 of an iris sequence.
func (m *EyeColor) irisRing(seq string) ([]geometry.Point2D, error) {
	if m.detection == nil {
		return nil, &lm.InputExtractionError{Point: m.key, Sequence: seq, Index: 4, Length: -1}
	}
	ring, ok := m.detection.Sequence(seq)
	if !ok {
		return nil, &lm.InputExtractionError{Point: m.key, Sequence: seq, Index: 4, Length: -1}
	}
	if len(ring) < 5 {
		return nil, &lm.InputExtractionError{Point: m.key, Sequence: seq, Index: 4, Length: len(ring)}
	}
	return ring, nil
}

// Calculate derives the two boxes. The subject's left eye is the image's
// right one, so the left box comes from rightEyeIris, whose ring runs
// right, top, left, bottom.
func (m *EyeColor) Calculate() error {
	r, err := m.irisRing(lm.SeqRightEyeIris)
	if err != nil {
		return err
	}
	l, err := m.irisRing(lm.SeqLeftEyeIris)
	if err != nil {
		return err
	}
	left := geometry.NewRect(r[3].X, r[2].Y, r[1].X-r[3].X, r[4].Y-r[2].Y)
	right := geometry.NewRect(l[1].X, l[2].Y, l[3].X-l[1].X, l[4].Y-l[2].Y)
	if left.Empty() || right.Empty() {
		return &geometry.GeometryError{Op: "iris box", Kind: geometry.KindZeroLength}
	}

	m.Left = IrisSample{Bounds: left.Bounds()}
	m.Right = IrisSample{Bounds: right.Bounds()}
	m.Sampled = false
	if m.img == nil || m.sampler == nil {
		return nil
	}
	if err := m.sample(&m.Left); err != nil {
		return err
	}
	if err := m.sample(&m.Right); err != nil {
		return err
	}
	m.Sampled = true
	return nil
}

func (m *EyeColor) sample(s *IrisSample) error {
	crop, mean, err := m.sampler.SampleRegion(m.img, s.Bounds)
	if err != nil {
		return fmt.Errorf("sample iris %v: %w", s.Bounds, err)
	}
	s.Crop = crop
	s.Mean = mean
	s.Name = colorutil.IrisColorName(mean)
	return nil
}

// Render names the sampled colors, or the box sizes when nothing was sampled.
func (m *EyeColor) Render() string {
	if !m.Sampled {
		return fmt.Sprintf("left %dx%d px, right %dx%d px",
			m.Right.Bounds.Dx(), m.Right.Bounds.Dy(), m.Left.Bounds.Dx(), m.Left.Bounds.Dy())
	}
	return fmt.Sprintf("left %s, right %s", m.Right.Name, m.Left.Name)
}

func (m *EyeColor) Ideal() (string, error) { return "", nil }

func (m *EyeColor) Assess() (assessment.Result, error) {
	return assessment.Result{}, ErrNotAssessable
}

// Drawables outlines both sampling boxes.
func (m *EyeColor) Drawables() []Drawable {
	var out []Drawable
	for _, b := range []image.Rectangle{m.Left.Bounds, m.Right.Bounds} {
		if b.Empty() {
			continue
		}
		x0, y0, x1, y1 := float64(b.Min.X), float64(b.Min.Y), float64(b.Max.X), float64(b.Max.Y)
		out = append(out, Drawable{
			Color:  colorutil.White,
			Points: []geometry.Point2D{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}},
			Closed: true,
		})
	}
	return out
}

// NecessaryPoints is empty: the iris rings are not part of the store.
func (m *EyeColor) NecessaryPoints() []string { return nil }
