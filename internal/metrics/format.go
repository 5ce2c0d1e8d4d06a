package metrics

import (
	"math"
	"strconv"

	"face-metrics/internal/reference"
)

// round rounds half up to the given number of decimal digits.
func round(v float64, digits int) float64 {
	f := math.Pow(10, float64(digits))
	return math.Floor(v*f+0.5) / f
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatRatio(v float64) string {
	return formatNumber(round(v, 2))
}

func formatAngle(v float64) string {
	return formatNumber(round(v, 0)) + "°"
}

// describeRange renders "L to U", "more than L" or "less than U".
func describeRange(r reference.Range, unit string) string {
	switch {
	case r.IdealLower != nil && r.IdealUpper != nil:
		return formatNumber(*r.IdealLower) + unit + " to " + formatNumber(*r.IdealUpper) + unit
	case r.IdealLower != nil:
		return "more than " + formatNumber(*r.IdealLower) + unit
	case r.IdealUpper != nil:
		return "less than " + formatNumber(*r.IdealUpper) + unit
	default:
		return ""
	}
}
