// Package assessment classifies a metric value against its reference range
// into perfect or a tiered low/high deviation.
package assessment

import (
	"errors"
	"math"

	"face-metrics/internal/reference"
)

// MaxTier is the highest severity tier.
const MaxTier = 4

// relTolerance absorbs float drift when stepping by the deviation, so that
// 1.5 - 3*0.1 reaches 1.2.
const relTolerance = 1e-9

var (
	// ErrInvalidDeviation reports a non-positive or non-finite deviation step.
	ErrInvalidDeviation = errors.New("assessment: deviation must be a positive number")
	// ErrNoBounds reports a range with neither bound set.
	ErrNoBounds = errors.New("assessment: range has no bounds")
	// ErrNonFiniteValue reports a NaN or infinite metric value.
	ErrNonFiniteValue = errors.New("assessment: value is not finite")
)

// Outcome is where a value falls relative to its range.
type Outcome int

const (
	Perfect Outcome = iota
	Low
	High
)

func (o Outcome) String() string {
	switch o {
	case Perfect:
		return "perfect"
	case Low:
		return "low"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// Result is a classified value.
type Result struct {
	Outcome Outcome
	Tier    int    // 0..MaxTier, meaningful for Low and High
	Text    string // "perfect" or e.g. "noticeably wide"
}

// TierLabel returns the wording for a severity tier.
func TierLabel(tier int) string {
	switch tier {
	case 0:
		return "slightly too"
	case 1:
		return "noticeably"
	case 2:
		return "significantly too"
	case 3:
		return "horribly"
	default:
		return "extremely"
	}
}

// Assess classifies value against r.
func Assess(value float64, r reference.Range) (Result, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Result{}, ErrNonFiniteValue
	}
	if !(r.Deviation > 0) || math.IsInf(r.Deviation, 0) {
		return Result{}, ErrInvalidDeviation
	}
	lower, upper := r.IdealLower, r.IdealUpper
	if lower == nil && upper == nil {
		return Result{}, ErrNoBounds
	}

	if (lower == nil || value >= *lower) && (upper == nil || value <= *upper) {
		return Result{Outcome: Perfect, Text: "perfect"}, nil
	}

	if lower != nil && value < *lower {
		tier := countSteps(func(k float64) bool {
			return value+k*r.Deviation < *lower-tol(*lower)
		})
		return Result{Outcome: Low, Tier: tier, Text: label(tier, r.DeviatingLow)}, nil
	}

	tier := countSteps(func(k float64) bool {
		return value-k*r.Deviation > *upper+tol(*upper)
	})
	return Result{Outcome: High, Tier: tier, Text: label(tier, r.DeviatingHigh)}, nil
}

// countSteps counts how many whole deviation steps k = 1, 2, ... still leave
// the value outside its bound, stopping at MaxTier.
func countSteps(outside func(k float64) bool) int {
	tier := 0
	for tier < MaxTier && outside(float64(tier+1)) {
		tier++
	}
	return tier
}

func tol(bound float64) float64 {
	return relTolerance * math.Max(1, math.Abs(bound))
}

func label(tier int, direction string) string {
	if direction == "" {
		return TierLabel(tier)
	}
	return TierLabel(tier) + " " + direction
}
