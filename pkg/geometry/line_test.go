package geometry

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func TestLineFromTwoPointsReproducesBothPoints(t *testing.T) {
	cases := [][2]Point2D{
		{NewPoint2D(0, 0), NewPoint2D(1, 1)},
		{NewPoint2D(-3.5, 2), NewPoint2D(7, -11.25)},
		{NewPoint2D(100, 200), NewPoint2D(140, 200)},
		{NewPoint2D(12.3, 45.6), NewPoint2D(12.30001, 99)},
	}

	for _, c := range cases {
		l, err := LineFromTwoPoints(c[0], c[1])
		if err != nil {
			t.Fatalf("LineFromTwoPoints(%v, %v) failed: %v", c[0], c[1], err)
		}
		for _, p := range c {
			got := l.ValueAt(p.X)
			if math.Abs(got-p.Y) > 1e-6*math.Max(1, math.Abs(p.Y)) {
				t.Errorf("ValueAt(%v) failed: expected %v, got %v", p.X, p.Y, got)
			}
		}
	}
}

func TestLineFromTwoPointsVertical(t *testing.T) {
	_, err := LineFromTwoPoints(NewPoint2D(5, 1), NewPoint2D(5, 9))

	var gerr *GeometryError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GeometryError, got %v", err)
	}
	if gerr.Kind != KindVertical {
		t.Errorf("expected kind %v, got %v", KindVertical, gerr.Kind)
	}
}

func TestLinePerpendicularSlope(t *testing.T) {
	for _, slope := range []float64{0.5, -2, 3.75, -0.01} {
		l, err := LineFromSlopeAndPoint(slope, NewPoint2D(1, 2))
		if err != nil {
			t.Fatalf("LineFromSlopeAndPoint failed: %v", err)
		}
		perp, err := l.Perpendicular(NewPoint2D(-4, 8))
		if err != nil {
			t.Fatalf("Perpendicular failed: %v", err)
		}
		if math.Abs(perp.Slope*slope+1) > tolerance {
			t.Errorf("Perpendicular failed: slope product expected -1, got %v", perp.Slope*slope)
		}
	}
}

func TestLinePerpendicularOfHorizontal(t *testing.T) {
	l := Line{Slope: 0, Intercept: 3}

	_, err := l.Perpendicular(NewPoint2D(1, 1))

	var gerr *GeometryError
	if !errors.As(err, &gerr) || gerr.Kind != KindHorizontalPerpendicular {
		t.Fatalf("expected horizontal perpendicular error, got %v", err)
	}
}

func TestLineIntersectWithOwnPerpendicular(t *testing.T) {
	l, err := LineFromTwoPoints(NewPoint2D(0, 1), NewPoint2D(4, 3))
	if err != nil {
		t.Fatalf("LineFromTwoPoints failed: %v", err)
	}
	p := NewPoint2D(2, 2)

	perp, err := l.Perpendicular(p)
	if err != nil {
		t.Fatalf("Perpendicular failed: %v", err)
	}
	got, err := l.Intersect(perp)
	if err != nil {
		t.Fatalf("Intersect failed: %v", err)
	}
	if got.Distance(p) > tolerance {
		t.Errorf("Intersect failed: expected %v, got %v", p, got)
	}
}

func TestLineIntersectParallel(t *testing.T) {
	l := Line{Slope: 2, Intercept: 1}
	other, err := l.Parallel(NewPoint2D(0, 5))
	if err != nil {
		t.Fatalf("Parallel failed: %v", err)
	}

	_, err = l.Intersect(other)

	var gerr *GeometryError
	if !errors.As(err, &gerr) || gerr.Kind != KindParallel {
		t.Fatalf("expected parallel error, got %v", err)
	}
}

func TestLineParallelKeepsSlope(t *testing.T) {
	l := Line{Slope: -1.5, Intercept: 4}

	par, err := l.Parallel(NewPoint2D(2, 10))
	if err != nil {
		t.Fatalf("Parallel failed: %v", err)
	}
	if par.Slope != l.Slope {
		t.Errorf("Parallel failed: expected slope %v, got %v", l.Slope, par.Slope)
	}
	if math.Abs(par.ValueAt(2)-10) > tolerance {
		t.Errorf("Parallel failed: line does not pass through (2, 10)")
	}
}

func TestLineFootOnHorizontal(t *testing.T) {
	l, err := LineFromTwoPoints(NewPoint2D(100, 200), NewPoint2D(140, 200))
	if err != nil {
		t.Fatalf("LineFromTwoPoints failed: %v", err)
	}

	got, err := l.Foot(NewPoint2D(90, 150))
	if err != nil {
		t.Fatalf("Foot failed: %v", err)
	}
	want := NewPoint2D(90, 200)
	if got != want {
		t.Errorf("Foot failed: expected %v, got %v", want, got)
	}
}

func TestLineFootMatchesPerpendicularIntersect(t *testing.T) {
	l := Line{Slope: 0.25, Intercept: -3}
	p := NewPoint2D(7, 11)

	foot, err := l.Foot(p)
	if err != nil {
		t.Fatalf("Foot failed: %v", err)
	}
	perp, err := l.Perpendicular(p)
	if err != nil {
		t.Fatalf("Perpendicular failed: %v", err)
	}
	want, err := perp.Intersect(l)
	if err != nil {
		t.Fatalf("Intersect failed: %v", err)
	}
	if foot.Distance(want) > tolerance {
		t.Errorf("Foot failed: expected %v, got %v", want, foot)
	}
}
