package metrics

import (
	"gonum.org/v1/gonum/stat"

	"face-metrics/internal/assessment"
	lm "face-metrics/internal/landmarks"
	"face-metrics/pkg/colorutil"
	"face-metrics/pkg/geometry"
)

// MidfaceRatio compares the interpupillary distance with the height from the
// pupils down to the cupid's-bow line.
type MidfaceRatio struct {
	base
	Ratio float64
}

// NewMidfaceRatio builds the metric.
func NewMidfaceRatio(d Deps) *MidfaceRatio {
	return &MidfaceRatio{base: newBase(KeyMidfaceRatio, "Midface ratio", d)}
}

// Calculate projects each iris onto the cupid's-bow line.
func (m *MidfaceRatio) Calculate() error {
	p, err := m.store.Lookup(lm.LeftIris, lm.RightIris, lm.LeftCupidBow, lm.RightCupidBow)
	if err != nil {
		return err
	}
	leftIris, rightIris := p[0], p[1]

	bottom, err := geometry.LineFromTwoPoints(p[2], p[3])
	if err != nil {
		return err
	}
	bottomLeft, err := bottom.Foot(leftIris)
	if err != nil {
		return err
	}
	bottomRight, err := bottom.Foot(rightIris)
	if err != nil {
		return err
	}
	m.store.SetDerived(BottomLeftMidface, bottomLeft)
	m.store.SetDerived(BottomRightMidface, bottomRight)

	left, err := geometry.DistanceRatio(leftIris, rightIris, leftIris, bottomLeft)
	if err != nil {
		return err
	}
	right, err := geometry.DistanceRatio(leftIris, rightIris, rightIris, bottomRight)
	if err != nil {
		return err
	}
	m.Ratio = stat.Mean([]float64{left, right}, nil)
	return nil
}

func (m *MidfaceRatio) Render() string                     { return formatRatio(m.Ratio) }
func (m *MidfaceRatio) Ideal() (string, error)             { return m.idealText("") }
func (m *MidfaceRatio) Assess() (assessment.Result, error) { return m.assess(m.Ratio) }

func (m *MidfaceRatio) Drawables() []Drawable {
	return m.polylines(colorutil.Red, []string{lm.LeftIris, lm.RightIris, BottomRightMidface, BottomLeftMidface})
}

func (m *MidfaceRatio) NecessaryPoints() []string {
	return []string{lm.LeftIris, lm.RightIris, lm.LeftCupidBow, lm.RightCupidBow}
}

// FacialWidthToHeightRatio boxes the face between the zygomatic points, the
// upper eyelid line and the cupid's-bow line.
type FacialWidthToHeightRatio struct {
	base
	Ratio float64
}

// NewFacialWidthToHeightRatio builds the metric.
func NewFacialWidthToHeightRatio(d Deps) *FacialWidthToHeightRatio {
	return &FacialWidthToHeightRatio{base: newBase(KeyFacialWidthToHeightRatio, "Facial width to height ratio", d)}
}

// Calculate drops perpendiculars to the eyelid line through each zygo and
// intersects them with both horizontal lines.
func (m *FacialWidthToHeightRatio) Calculate() error {
	p, err := m.store.Lookup(lm.LeftEyeUpper, lm.RightEyeUpper, lm.LeftCupidBow, lm.RightCupidBow, lm.LeftZygo, lm.RightZygo)
	if err != nil {
		return err
	}
	top, err := geometry.LineFromTwoPoints(p[0], p[1])
	if err != nil {
		return err
	}
	bottom, err := geometry.LineFromTwoPoints(p[2], p[3])
	if err != nil {
		return err
	}
	leftZygo, rightZygo := p[4], p[5]

	corners := make([]geometry.Point2D, 4)
	for i, c := range []struct {
		from geometry.Point2D
		to   geometry.Line
	}{{leftZygo, top}, {rightZygo, top}, {leftZygo, bottom}, {rightZygo, bottom}} {
		if corners[i], err = top.PerpendicularIntersect(c.from, c.to); err != nil {
			return err
		}
	}
	topLeft, topRight, bottomLeft, bottomRight := corners[0], corners[1], corners[2], corners[3]
	m.store.SetDerived(FacialTopLeft, topLeft)
	m.store.SetDerived(FacialTopRight, topRight)
	m.store.SetDerived(FacialBottomLeft, bottomLeft)
	m.store.SetDerived(FacialBottomRight, bottomRight)

	left, err := geometry.DistanceRatio(topLeft, topRight, topLeft, bottomLeft)
	if err != nil {
		return err
	}
	right, err := geometry.DistanceRatio(bottomLeft, bottomRight, topRight, bottomRight)
	if err != nil {
		return err
	}
	m.Ratio = stat.Mean([]float64{left, right}, nil)
	return nil
}

func (m *FacialWidthToHeightRatio) Render() string                     { return formatRatio(m.Ratio) }
func (m *FacialWidthToHeightRatio) Ideal() (string, error)             { return m.idealText("") }
func (m *FacialWidthToHeightRatio) Assess() (assessment.Result, error) { return m.assess(m.Ratio) }

func (m *FacialWidthToHeightRatio) Drawables() []Drawable {
	return m.polylines(colorutil.LightBlue, []string{FacialTopLeft, FacialTopRight, FacialBottomRight, FacialBottomLeft})
}

func (m *FacialWidthToHeightRatio) NecessaryPoints() []string {
	return []string{lm.LeftEyeUpper, lm.RightEyeUpper, lm.LeftCupidBow, lm.RightCupidBow, lm.LeftZygo, lm.RightZygo}
}

// LipRatio compares lower-lip height with upper-lip height, both measured
// from the lip separation perpendicular to the cupid's-bow line.
type LipRatio struct {
	base
	Ratio float64
}

// NewLipRatio builds the metric.
func NewLipRatio(d Deps) *LipRatio {
	return &LipRatio{base: newBase(KeyLipRatio, "Lip ratio", d)}
}

func (m *LipRatio) Calculate() error {
	p, err := m.store.Lookup(lm.LeftCupidBow, lm.RightCupidBow, lm.LowerLip, lm.LipSeparation)
	if err != nil {
		return err
	}
	sep := p[3]
	top, err := geometry.LineFromTwoPoints(p[0], p[1])
	if err != nil {
		return err
	}
	lower, err := top.Parallel(p[2])
	if err != nil {
		return err
	}
	upperEnd, err := top.Foot(sep)
	if err != nil {
		return err
	}
	lowerEnd, err := lower.Foot(sep)
	if err != nil {
		return err
	}
	m.store.SetDerived(UpperLipEnd, upperEnd)
	m.store.SetDerived(LowerLipEnd, lowerEnd)

	m.Ratio, err = geometry.DistanceRatio(lowerEnd, sep, upperEnd, sep)
	return err
}

func (m *LipRatio) Render() string                     { return formatRatio(m.Ratio) }
func (m *LipRatio) Ideal() (string, error)             { return m.idealText("") }
func (m *LipRatio) Assess() (assessment.Result, error) { return m.assess(m.Ratio) }

func (m *LipRatio) Drawables() []Drawable {
	return m.polylines(colorutil.LightGreen,
		[]string{UpperLipEnd, lm.LipSeparation},
		[]string{lm.LipSeparation, LowerLipEnd},
	)
}

func (m *LipRatio) NecessaryPoints() []string {
	return []string{lm.LeftCupidBow, lm.RightCupidBow, lm.LowerLip, lm.LipSeparation}
}

// LowerThirdHeight compares the nose-to-chin height with the brow-to-nose
// height, both taken along the perpendicular to the nose line through the
// middle of the nose.
type LowerThirdHeight struct {
	base
	Ratio float64
}

// NewLowerThirdHeight builds the metric.
func NewLowerThirdHeight(d Deps) *LowerThirdHeight {
	return &LowerThirdHeight{base: newBase(KeyLowerThirdHeight, "Lower third height", d)}
}

func (m *LowerThirdHeight) Calculate() error {
	p, err := m.store.Lookup(lm.LeftNoseCorner, lm.RightNoseCorner, lm.LeftEyebrow, lm.RightEyebrow, lm.ChinLeft, lm.ChinRight)
	if err != nil {
		return err
	}
	middle := geometry.Midpoint(p[0], p[1])
	nose, err := geometry.LineFromTwoPoints(p[0], p[1])
	if err != nil {
		return err
	}
	brow, err := geometry.LineFromTwoPoints(p[2], p[3])
	if err != nil {
		return err
	}
	chin, err := geometry.LineFromTwoPoints(p[4], p[5])
	if err != nil {
		return err
	}
	top, err := nose.PerpendicularIntersect(middle, brow)
	if err != nil {
		return err
	}
	bottom, err := nose.PerpendicularIntersect(middle, chin)
	if err != nil {
		return err
	}
	m.store.SetDerived(LowerThirdMiddle, middle)
	m.store.SetDerived(LowerThirdTop, top)
	m.store.SetDerived(LowerThirdBottom, bottom)

	m.Ratio, err = geometry.DistanceRatio(bottom, middle, middle, top)
	return err
}

func (m *LowerThirdHeight) Render() string                     { return formatRatio(m.Ratio) }
func (m *LowerThirdHeight) Ideal() (string, error)             { return m.idealText("") }
func (m *LowerThirdHeight) Assess() (assessment.Result, error) { return m.assess(m.Ratio) }

func (m *LowerThirdHeight) Drawables() []Drawable {
	return m.polylines(colorutil.Grey,
		[]string{lm.LeftEyebrow, lm.RightEyebrow, lm.RightNoseCorner, lm.LeftNoseCorner},
		[]string{lm.LeftNoseCorner, lm.RightNoseCorner, lm.ChinRight, lm.ChinLeft},
	)
}

func (m *LowerThirdHeight) NecessaryPoints() []string {
	return []string{lm.LeftNoseCorner, lm.RightNoseCorner, lm.LeftEyebrow, lm.RightEyebrow, lm.ChinLeft, lm.ChinRight}
}
