package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestPoint2DDistance(t *testing.T) {
	d := NewPoint2D(0, 0).Distance(NewPoint2D(3, 4))

	if math.Abs(d-5) > 1e-10 {
		t.Errorf("Distance failed: expected 5, got %v", d)
	}
}

func TestAngleAtRightAngle(t *testing.T) {
	angle, err := AngleAt(NewPoint2D(0, 0), NewPoint2D(5, 0), NewPoint2D(0, 2))
	if err != nil {
		t.Fatalf("AngleAt failed: %v", err)
	}
	if math.Abs(angle-90) > 1e-10 {
		t.Errorf("AngleAt failed: expected 90, got %v", angle)
	}
}

func TestAngleAtZeroLength(t *testing.T) {
	_, err := AngleAt(NewPoint2D(1, 1), NewPoint2D(1, 1), NewPoint2D(0, 2))

	var gerr *GeometryError
	if !errors.As(err, &gerr) || gerr.Kind != KindZeroLength {
		t.Fatalf("expected zero-length error, got %v", err)
	}
}

func TestAngleBetweenIgnoresDirection(t *testing.T) {
	a, err := AngleBetween(NewPoint2D(1, 0), NewPoint2D(-1, -1))
	if err != nil {
		t.Fatalf("AngleBetween failed: %v", err)
	}
	if math.Abs(a-45) > 1e-10 {
		t.Errorf("AngleBetween failed: expected 45, got %v", a)
	}
}

func TestDistanceRatioZeroDenominator(t *testing.T) {
	p := NewPoint2D(2, 2)

	_, err := DistanceRatio(NewPoint2D(0, 0), NewPoint2D(1, 1), p, p)

	var gerr *GeometryError
	if !errors.As(err, &gerr) || gerr.Kind != KindZeroLength {
		t.Fatalf("expected zero-length error, got %v", err)
	}
}

func TestTranslationInverse(t *testing.T) {
	tr := Translation(12, -7)
	inv, ok := tr.Inverse()
	if !ok {
		t.Fatal("Inverse failed: translation should be invertible")
	}

	p := NewPoint2D(3, 4)
	if got := inv.Apply(tr.Apply(p)); got.Distance(p) > 1e-10 {
		t.Errorf("Inverse failed: expected %v, got %v", p, got)
	}
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(NewPoint2D(-2, 4), NewPoint2D(6, 10))

	if want := NewPoint2D(2, 7); got.Distance(want) > 1e-10 {
		t.Errorf("Midpoint failed: expected %v, got %v", want, got)
	}
}
