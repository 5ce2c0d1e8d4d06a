package panels

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/widget"

	"face-metrics/internal/assessment"
	"face-metrics/internal/metrics"
)

// TestAssessmentImportance checks the card color for each kind of result.
func TestAssessmentImportance(t *testing.T) {
	tests := []struct {
		name string
		r    metrics.Result
		want widget.Importance
	}{
		{"failed", metrics.Result{Err: errors.New("missing point")}, widget.DangerImportance},
		{"unassessed", metrics.Result{Value: "1.02"}, widget.MediumImportance},
		{"perfect", metrics.Result{Assessed: true, Assessment: assessment.Result{Outcome: assessment.Perfect}}, widget.SuccessImportance},
		{"slightly low", metrics.Result{Assessed: true, Assessment: assessment.Result{Outcome: assessment.Low, Tier: 0}}, widget.WarningImportance},
		{"noticeably high", metrics.Result{Assessed: true, Assessment: assessment.Result{Outcome: assessment.High, Tier: 1}}, widget.WarningImportance},
		{"significantly high", metrics.Result{Assessed: true, Assessment: assessment.Result{Outcome: assessment.High, Tier: 2}}, widget.DangerImportance},
		{"extremely low", metrics.Result{Assessed: true, Assessment: assessment.Result{Outcome: assessment.Low, Tier: assessment.MaxTier}}, widget.DangerImportance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assessmentImportance(tt.r); got != tt.want {
				t.Errorf("assessmentImportance = %v, want %v", got, tt.want)
			}
		})
	}
}
