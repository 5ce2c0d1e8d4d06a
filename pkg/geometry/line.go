package geometry

// Line is a non-vertical line y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// LineFromTwoPoints returns the line through p and q.
func LineFromTwoPoints(p, q Point2D) (Line, error) {
	if p.X == q.X {
		return Line{}, &GeometryError{Op: "line from two points", Kind: KindVertical}
	}
	return LineFromSlopeAndPoint((p.Y-q.Y)/(p.X-q.X), p)
}

// LineFromSlopeAndPoint returns the line with the given slope through p.
func LineFromSlopeAndPoint(slope float64, p Point2D) (Line, error) {
	l := Line{Slope: slope, Intercept: p.Y - slope*p.X}
	if !isFinite(l.Slope) || !isFinite(l.Intercept) {
		return Line{}, &GeometryError{Op: "line from slope", Kind: KindNonFinite}
	}
	return l, nil
}

// ValueAt returns y on the line at x.
func (l Line) ValueAt(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Perpendicular returns the line through p perpendicular to l.
func (l Line) Perpendicular(p Point2D) (Line, error) {
	if l.Slope == 0 {
		return Line{}, &GeometryError{Op: "perpendicular", Kind: KindHorizontalPerpendicular}
	}
	return LineFromSlopeAndPoint(-1/l.Slope, p)
}

// Parallel returns the line through p parallel to l.
func (l Line) Parallel(p Point2D) (Line, error) {
	return LineFromSlopeAndPoint(l.Slope, p)
}

// Intersect returns the single point where l meets other.
func (l Line) Intersect(other Line) (Point2D, error) {
	if l.Slope == other.Slope {
		return Point2D{}, &GeometryError{Op: "intersect", Kind: KindParallel}
	}
	x := (other.Intercept - l.Intercept) / (l.Slope - other.Slope)
	p := Point2D{X: x, Y: l.ValueAt(x)}
	if !p.IsFinite() {
		return Point2D{}, &GeometryError{Op: "intersect", Kind: KindNonFinite}
	}
	return p, nil
}

// PerpendicularIntersect returns the point where the perpendicular to l
// through p meets other. A horizontal l has the vertical x = p.X as its
// perpendicular, which is resolved directly against other.
func (l Line) PerpendicularIntersect(p Point2D, other Line) (Point2D, error) {
	if l.Slope == 0 {
		q := Point2D{X: p.X, Y: other.ValueAt(p.X)}
		if !q.IsFinite() {
			return Point2D{}, &GeometryError{Op: "perpendicular intersect", Kind: KindNonFinite}
		}
		return q, nil
	}
	perp, err := l.Perpendicular(p)
	if err != nil {
		return Point2D{}, err
	}
	return perp.Intersect(other)
}

// Foot returns the orthogonal projection of p onto l.
func (l Line) Foot(p Point2D) (Point2D, error) {
	return l.PerpendicularIntersect(p, l)
}
