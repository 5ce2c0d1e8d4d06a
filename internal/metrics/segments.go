package metrics

import (
	"image/color"

	"face-metrics/internal/assessment"
	lm "face-metrics/internal/landmarks"
	"face-metrics/pkg/colorutil"
	"face-metrics/pkg/geometry"
)

// segmentRatio is the ratio of two point-to-point distances, drawn as the
// two segments.
type segmentRatio struct {
	base
	color color.RGBA
	num   [2]string
	den   [2]string
	Ratio float64
}

func (m *segmentRatio) Calculate() error {
	p, err := m.store.Lookup(m.num[0], m.num[1], m.den[0], m.den[1])
	if err != nil {
		return err
	}
	m.Ratio, err = geometry.DistanceRatio(p[0], p[1], p[2], p[3])
	return err
}

func (m *segmentRatio) Render() string                     { return formatRatio(m.Ratio) }
func (m *segmentRatio) Ideal() (string, error)             { return m.idealText("") }
func (m *segmentRatio) Assess() (assessment.Result, error) { return m.assess(m.Ratio) }

func (m *segmentRatio) Drawables() []Drawable {
	return m.polylines(m.color, m.num[:], m.den[:])
}

func (m *segmentRatio) NecessaryPoints() []string {
	return []string{m.num[0], m.num[1], m.den[0], m.den[1]}
}

// ChinToPhiltrumRatio is chin height over philtrum length.
type ChinToPhiltrumRatio struct{ segmentRatio }

func NewChinToPhiltrumRatio(d Deps) *ChinToPhiltrumRatio {
	return &ChinToPhiltrumRatio{segmentRatio{
		base:  newBase(KeyChinToPhiltrumRatio, "Chin to philtrum ratio", d),
		color: colorutil.Blue,
		num:   [2]string{lm.ChinTip, lm.LowerLip},
		den:   [2]string{lm.UpperLip, lm.NoseBottom},
	}}
}

// MouthToNoseRatio is mouth width over nose width.
type MouthToNoseRatio struct{ segmentRatio }

func NewMouthToNoseRatio(d Deps) *MouthToNoseRatio {
	return &MouthToNoseRatio{segmentRatio{
		base:  newBase(KeyMouthToNoseRatio, "Mouth to nose ratio", d),
		color: colorutil.Purple,
		num:   [2]string{lm.LeftLipCorner, lm.RightLipCorner},
		den:   [2]string{lm.LeftNoseCorner, lm.RightNoseCorner},
	}}
}

// BigonialWidth is bizygomatic width over jaw width.
type BigonialWidth struct{ segmentRatio }

func NewBigonialWidth(d Deps) *BigonialWidth {
	return &BigonialWidth{segmentRatio{
		base:  newBase(KeyBigonialWidth, "Bigonial width", d),
		color: colorutil.Gold,
		num:   [2]string{lm.LeftZygo, lm.RightZygo},
		den:   [2]string{lm.LeftGonial, lm.RightGonial},
	}}
}

// EyeSeparationRatio is interpupillary distance over bizygomatic width.
type EyeSeparationRatio struct{ segmentRatio }

func NewEyeSeparationRatio(d Deps) *EyeSeparationRatio {
	return &EyeSeparationRatio{segmentRatio{
		base:  newBase(KeyEyeSeparationRatio, "Eye separation ratio", d),
		color: colorutil.Orange,
		num:   [2]string{lm.LeftIris, lm.RightIris},
		den:   [2]string{lm.LeftZygo, lm.RightZygo},
	}}
}
