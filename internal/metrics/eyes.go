package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"face-metrics/internal/assessment"
	lm "face-metrics/internal/landmarks"
	"face-metrics/pkg/colorutil"
	"face-metrics/pkg/geometry"
)

// CanthalTilt is the signed angle of each eye's canthal axis against the
// bizygomatic line. Positive when the lateral canthus sits higher.
type CanthalTilt struct {
	base
	Left  float64
	Right float64
	Mean  float64
}

// NewCanthalTilt builds the metric.
func NewCanthalTilt(d Deps) *CanthalTilt {
	return &CanthalTilt{base: newBase(KeyCanthalTilt, "Canthal tilt", d)}
}

func (m *CanthalTilt) Calculate() error {
	p, err := m.store.Lookup(lm.LeftZygo, lm.RightZygo,
		lm.LeftLateralCanthus, lm.LeftMedialCanthus,
		lm.RightLateralCanthus, lm.RightMedialCanthus)
	if err != nil {
		return err
	}
	axis := p[1].Sub(p[0])
	line, err := geometry.LineFromTwoPoints(p[1], p[0])
	if err != nil {
		return err
	}

	tilt := func(lateral, medial geometry.Point2D) (float64, error) {
		e := lateral.Sub(medial)
		angle, err := geometry.AngleBetween(axis, e)
		if err != nil {
			return 0, err
		}
		if line.ValueAt(lateral.X)-(line.ValueAt(medial.X)+e.Y) > 0 {
			return angle, nil
		}
		return -angle, nil
	}

	left, err := tilt(p[2], p[3])
	if err != nil {
		return err
	}
	right, err := tilt(p[4], p[5])
	if err != nil {
		return err
	}
	m.Left, m.Right = left, right
	m.Mean = stat.Mean([]float64{left, right}, nil)
	return nil
}

// Render labels each side from the subject's point of view.
func (m *CanthalTilt) Render() string {
	return fmt.Sprintf("left %s, right %s", formatAngle(m.Right), formatAngle(m.Left))
}

func (m *CanthalTilt) Ideal() (string, error)             { return m.idealText("°") }
func (m *CanthalTilt) Assess() (assessment.Result, error) { return m.assess(m.Mean) }

func (m *CanthalTilt) Drawables() []Drawable {
	return m.polylines(colorutil.Pink,
		[]string{lm.LeftLateralCanthus, lm.LeftMedialCanthus},
		[]string{lm.RightLateralCanthus, lm.RightMedialCanthus},
	)
}

func (m *CanthalTilt) NecessaryPoints() []string {
	return []string{lm.LeftLateralCanthus, lm.LeftMedialCanthus, lm.RightLateralCanthus, lm.RightMedialCanthus, lm.LeftZygo, lm.RightZygo}
}

// PalpebralFissureLength is each eye's width over its lid opening.
type PalpebralFissureLength struct {
	base
	Left  float64
	Right float64
	Mean  float64
}

// NewPalpebralFissureLength builds the metric.
func NewPalpebralFissureLength(d Deps) *PalpebralFissureLength {
	return &PalpebralFissureLength{base: newBase(KeyPalpebralFissureLength, "Palpebral fissure length", d)}
}

func (m *PalpebralFissureLength) Calculate() error {
	p, err := m.store.Lookup(
		lm.LeftLateralCanthus, lm.LeftMedialCanthus, lm.LeftEyeUpper, lm.LeftEyeLower,
		lm.RightLateralCanthus, lm.RightMedialCanthus, lm.RightEyeUpper, lm.RightEyeLower)
	if err != nil {
		return err
	}
	left, err := geometry.DistanceRatio(p[0], p[1], p[2], p[3])
	if err != nil {
		return err
	}
	right, err := geometry.DistanceRatio(p[4], p[5], p[6], p[7])
	if err != nil {
		return err
	}
	m.Left, m.Right = left, right
	m.Mean = stat.Mean([]float64{left, right}, nil)
	return nil
}

// Render labels each side from the subject's point of view.
func (m *PalpebralFissureLength) Render() string {
	return fmt.Sprintf("left %s, right %s", formatRatio(m.Right), formatRatio(m.Left))
}

func (m *PalpebralFissureLength) Ideal() (string, error)             { return m.idealText("") }
func (m *PalpebralFissureLength) Assess() (assessment.Result, error) { return m.assess(m.Mean) }

func (m *PalpebralFissureLength) Drawables() []Drawable {
	return m.polylines(colorutil.Aquamarine,
		[]string{lm.LeftLateralCanthus, lm.LeftMedialCanthus},
		[]string{lm.LeftEyeUpper, lm.LeftEyeLower},
		[]string{lm.RightLateralCanthus, lm.RightMedialCanthus},
		[]string{lm.RightEyeUpper, lm.RightEyeLower},
	)
}

func (m *PalpebralFissureLength) NecessaryPoints() []string {
	return []string{
		lm.LeftLateralCanthus, lm.LeftMedialCanthus, lm.LeftEyeUpper, lm.LeftEyeLower,
		lm.RightLateralCanthus, lm.RightMedialCanthus, lm.RightEyeUpper, lm.RightEyeLower,
	}
}

// EyeToMouthAngle is the angle at the lip separation subtended by the pupils.
type EyeToMouthAngle struct {
	base
	Angle float64
}

// NewEyeToMouthAngle builds the metric.
func NewEyeToMouthAngle(d Deps) *EyeToMouthAngle {
	return &EyeToMouthAngle{base: newBase(KeyEyeToMouthAngle, "Eye to mouth angle", d)}
}

func (m *EyeToMouthAngle) Calculate() error {
	p, err := m.store.Lookup(lm.LipSeparation, lm.LeftIris, lm.RightIris)
	if err != nil {
		return err
	}
	m.Angle, err = geometry.AngleAt(p[0], p[1], p[2])
	return err
}

func (m *EyeToMouthAngle) Render() string                     { return formatAngle(m.Angle) }
func (m *EyeToMouthAngle) Ideal() (string, error)             { return m.idealText("°") }
func (m *EyeToMouthAngle) Assess() (assessment.Result, error) { return m.assess(m.Angle) }

func (m *EyeToMouthAngle) Drawables() []Drawable {
	return m.polylines(colorutil.Brown, []string{lm.LeftIris, lm.LipSeparation, lm.RightIris})
}

func (m *EyeToMouthAngle) NecessaryPoints() []string {
	return []string{lm.LipSeparation, lm.LeftIris, lm.RightIris}
}
