package metrics_test

import (
	"errors"
	"testing"

	"face-metrics/internal/landmarks"
	"face-metrics/internal/metrics"
	"face-metrics/internal/reference"
	"face-metrics/pkg/geometry"
)

func renderAll(s *metrics.Set) map[string]string {
	out := make(map[string]string)
	for _, r := range s.Results() {
		out[r.Key] = r.Value
	}
	return out
}

// TestSetAllActiveByDefault ensures every registered metric starts active.
func TestSetAllActiveByDefault(t *testing.T) {
	s := metrics.NewSet(fixtureDeps())
	if got := len(s.Active()); got != len(metrics.Registry) {
		t.Fatalf("active = %d, want %d", got, len(metrics.Registry))
	}
	s.Recompute()
	for _, r := range s.Results() {
		if r.Err != nil {
			t.Errorf("%s: %v", r.Key, r.Err)
		}
	}
}

// TestSetDragUnreferencedPoint ensures moving a point outside every active
// metric's necessary points leaves all rendered values unchanged.
func TestSetDragUnreferencedPoint(t *testing.T) {
	deps := fixtureDeps()
	s := metrics.NewSet(deps)
	if err := s.Only([]string{metrics.KeyMidfaceRatio, metrics.KeyEyeSeparationRatio, metrics.KeyCanthalTilt}); err != nil {
		t.Fatalf("Only: %v", err)
	}
	s.Recompute()
	before := renderAll(s)

	for _, name := range s.NecessaryPoints() {
		if name == landmarks.ChinTip {
			t.Fatalf("chinTip unexpectedly necessary")
		}
	}
	deps.Store.Set(landmarks.ChinTip, geometry.NewPoint2D(10, 10))
	s.Recompute()

	after := renderAll(s)
	for key, v := range before {
		if after[key] != v {
			t.Errorf("%s changed from %q to %q", key, v, after[key])
		}
	}
}

// TestSetFailureIsolation ensures one failing metric does not take down the
// others and is left out of the overlay.
func TestSetFailureIsolation(t *testing.T) {
	deps := fixtureDeps()
	deps.Store = storeWithout(landmarks.LowerLip)
	s := metrics.NewSet(deps)
	s.Recompute()

	var missing *landmarks.MissingPointError
	for _, key := range []string{metrics.KeyLipRatio, metrics.KeyChinToPhiltrumRatio} {
		if !errors.As(s.Err(key), &missing) {
			t.Errorf("%s err = %v, want MissingPointError", key, s.Err(key))
		}
	}
	results := renderAll(s)
	if results[metrics.KeyLipRatio] != metrics.Unavailable {
		t.Errorf("lipRatio rendered %q", results[metrics.KeyLipRatio])
	}
	if s.Err(metrics.KeyMidfaceRatio) != nil || results[metrics.KeyMidfaceRatio] == metrics.Unavailable {
		t.Errorf("midfaceRatio affected by sibling failure")
	}

	ok := metrics.NewSet(fixtureDeps())
	ok.Recompute()
	if got, all := len(s.Drawables()), len(ok.Drawables()); got >= all {
		t.Errorf("drawables = %d, want fewer than %d", got, all)
	}
}

// TestSetVerticalCupidBow ensures a degenerate construction line fails only
// the metrics that draw it.
func TestSetVerticalCupidBow(t *testing.T) {
	deps := fixtureDeps()
	deps.Store.Set(landmarks.RightCupidBow, geometry.NewPoint2D(190, 320))
	s := metrics.NewSet(deps)
	s.Recompute()

	var geomErr *geometry.GeometryError
	if !errors.As(s.Err(metrics.KeyMidfaceRatio), &geomErr) || geomErr.Kind != geometry.KindVertical {
		t.Errorf("midfaceRatio err = %v, want vertical GeometryError", s.Err(metrics.KeyMidfaceRatio))
	}
	if s.Err(metrics.KeyEyeSeparationRatio) != nil {
		t.Errorf("eyeSeparationRatio err = %v", s.Err(metrics.KeyEyeSeparationRatio))
	}

	// Recovers once the point moves back.
	deps.Store.Set(landmarks.RightCupidBow, geometry.NewPoint2D(210, 306))
	s.Recompute()
	if err := s.Err(metrics.KeyMidfaceRatio); err != nil {
		t.Errorf("midfaceRatio still failing: %v", err)
	}
}

// TestSetToggle ensures toggling changes the active and draggable sets.
func TestSetToggle(t *testing.T) {
	s := metrics.NewSet(fixtureDeps())
	if err := s.Only(nil); err != nil {
		t.Fatalf("Only: %v", err)
	}
	if len(s.NecessaryPoints()) != 0 {
		t.Errorf("necessary points with nothing active: %v", s.NecessaryPoints())
	}
	if err := s.SetActive(metrics.KeyEyeToMouthAngle, true); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	want := []string{landmarks.LeftIris, landmarks.LipSeparation, landmarks.RightIris}
	got := s.NecessaryPoints()
	if len(got) != len(want) {
		t.Fatalf("NecessaryPoints = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NecessaryPoints[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if err := s.SetActive("jawline", true); !errors.Is(err, metrics.ErrUnknownMetric) {
		t.Errorf("unknown key err = %v", err)
	}
}

// TestSetResultsAssessment ensures results carry assessments when a range
// exists and an assessment error when it does not.
func TestSetResultsAssessment(t *testing.T) {
	db := reference.NewDatabase()
	db.Entries[metrics.KeyEyeSeparationRatio] = reference.Bounded(0.45, 0.49, 0.01, "narrow", "wide")
	deps := fixtureDeps()
	deps.Ranges = db
	s := metrics.NewSet(deps)
	if err := s.Only([]string{metrics.KeyEyeSeparationRatio, metrics.KeyLipRatio}); err != nil {
		t.Fatalf("Only: %v", err)
	}
	s.Recompute()

	rows := s.Results()
	if len(rows) != 2 {
		t.Fatalf("results = %d, want 2", len(rows))
	}
	eyes := rows[1]
	if eyes.Key != metrics.KeyEyeSeparationRatio {
		eyes = rows[0]
	}
	// 100 / 200.01 is about 0.49995, just over the upper bound.
	if !eyes.Assessed || eyes.Assessment.Text != "slightly too wide" {
		t.Errorf("eyeSeparation assessment = %+v, err %v", eyes.Assessment, eyes.AssessErr)
	}
	for _, r := range rows {
		if r.Key == metrics.KeyLipRatio && r.Assessed {
			t.Errorf("lipRatio assessed without a range")
		}
	}
}
