// Package metrics computes facial-proportion metrics from the named points of
// a landmarks.Store and classifies them against reference ranges.
//
// Every metric re-derives its construction points from the current base
// points on each Calculate, so a drag only needs every active metric to be
// recalculated; there is no dependency graph between metrics.
package metrics

import (
	"image"
	"image/color"

	"face-metrics/internal/assessment"
	"face-metrics/internal/landmarks"
	"face-metrics/internal/reference"
	"face-metrics/pkg/geometry"
)

// Metric is one facial-proportion measurement. Render, Assess and Drawables
// reflect the last successful Calculate.
type Metric interface {
	// Key is the stable identifier, also the reference database key.
	Key() string
	// Name is the display name.
	Name() string
	// Calculate recomputes the result and any derived points from the store.
	Calculate() error
	// Render formats the current result.
	Render() string
	// Ideal describes the reference range.
	Ideal() (string, error)
	// Assess classifies the current result against the reference range.
	Assess() (assessment.Result, error)
	// Drawables returns the overlay polylines.
	Drawables() []Drawable
	// NecessaryPoints lists the base points the metric reads.
	NecessaryPoints() []string
}

// Drawable is a polyline to stroke over the image, with a dot at each vertex.
type Drawable struct {
	Color  color.RGBA
	Points []geometry.Point2D
	Closed bool // Stroke back from the last point to the first
}

// RegionSampler crops a region of an image and averages its color.
type RegionSampler interface {
	SampleRegion(img image.Image, r image.Rectangle) (image.Image, color.RGBA, error)
}

// Deps are the collaborators a metric is built with.
type Deps struct {
	Store     *landmarks.Store
	Ranges    reference.Source
	Detection *landmarks.Detection // Raw detection, for the iris rings
	Image     image.Image          // Source image, for iris sampling
	Sampler   RegionSampler
}

// Constructor builds a metric bound to deps.
type Constructor func(deps Deps) Metric

// Registry lists every metric in display order.
var Registry = []struct {
	Key string
	New Constructor
}{
	{KeyMidfaceRatio, func(d Deps) Metric { return NewMidfaceRatio(d) }},
	{KeyFacialWidthToHeightRatio, func(d Deps) Metric { return NewFacialWidthToHeightRatio(d) }},
	{KeyChinToPhiltrumRatio, func(d Deps) Metric { return NewChinToPhiltrumRatio(d) }},
	{KeyCanthalTilt, func(d Deps) Metric { return NewCanthalTilt(d) }},
	{KeyMouthToNoseRatio, func(d Deps) Metric { return NewMouthToNoseRatio(d) }},
	{KeyBigonialWidth, func(d Deps) Metric { return NewBigonialWidth(d) }},
	{KeyLipRatio, func(d Deps) Metric { return NewLipRatio(d) }},
	{KeyEyeSeparationRatio, func(d Deps) Metric { return NewEyeSeparationRatio(d) }},
	{KeyEyeToMouthAngle, func(d Deps) Metric { return NewEyeToMouthAngle(d) }},
	{KeyLowerThirdHeight, func(d Deps) Metric { return NewLowerThirdHeight(d) }},
	{KeyPalpebralFissureLength, func(d Deps) Metric { return NewPalpebralFissureLength(d) }},
	{KeyEyeColor, func(d Deps) Metric { return NewEyeColor(d) }},
}

// Metric keys, matching the reference database.
const (
	KeyMidfaceRatio             = "midfaceRatio"
	KeyFacialWidthToHeightRatio = "facialWidthToHeightRatio"
	KeyChinToPhiltrumRatio      = "chinToPhiltrumRatio"
	KeyCanthalTilt              = "canthalTilt"
	KeyMouthToNoseRatio         = "mouthToNoseRatio"
	KeyBigonialWidth            = "bigonialWidth"
	KeyLipRatio                 = "lipRatio"
	KeyEyeSeparationRatio       = "eyeSeparationRatio"
	KeyEyeToMouthAngle          = "eyeToMouthAngle"
	KeyLowerThirdHeight         = "lowerThirdHeight"
	KeyPalpebralFissureLength   = "palpebralFissureLength"
	KeyEyeColor                 = "eyeColor"
)

// Derived point names registered into the store.
const (
	BottomLeftMidface  = "bottomLeftMidface"
	BottomRightMidface = "bottomRightMidface"
	FacialTopLeft      = "topLeft"
	FacialTopRight     = "topRight"
	FacialBottomLeft   = "bottomLeft"
	FacialBottomRight  = "bottomRight"
	UpperLipEnd        = "upperLipEnd"
	LowerLipEnd        = "lowerLipEnd"
	LowerThirdMiddle   = "lowerThirdMiddle"
	LowerThirdTop      = "lowerThirdTop"
	LowerThirdBottom   = "lowerThirdBottom"
)

// base carries what every metric shares: identity, the store and the
// reference source.
type base struct {
	key    string
	name   string
	store  *landmarks.Store
	ranges reference.Source
}

func newBase(key, name string, d Deps) base {
	return base{key: key, name: name, store: d.Store, ranges: d.Ranges}
}

func (b *base) Key() string  { return b.key }
func (b *base) Name() string { return b.name }

func (b *base) referenceRange() (reference.Range, error) {
	if b.ranges == nil {
		return reference.Range{}, &reference.MissingRangeError{Key: b.key}
	}
	return b.ranges.Range(b.key)
}

func (b *base) idealText(unit string) (string, error) {
	r, err := b.referenceRange()
	if err != nil {
		return "", err
	}
	return describeRange(r, unit), nil
}

func (b *base) assess(value float64) (assessment.Result, error) {
	r, err := b.referenceRange()
	if err != nil {
		return assessment.Result{}, err
	}
	return assessment.Assess(value, r)
}

// polylines resolves each name list into a drawable of the given color.
// A missing point drops the whole overlay.
func (b *base) polylines(c color.RGBA, lists ...[]string) []Drawable {
	out := make([]Drawable, 0, len(lists))
	for _, names := range lists {
		pts, err := b.store.Lookup(names...)
		if err != nil {
			return nil
		}
		out = append(out, Drawable{Color: c, Points: pts, Closed: true})
	}
	return out
}
