package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"face-metrics/internal/app"
	"face-metrics/internal/assessment"
	"face-metrics/internal/metrics"
	"face-metrics/pkg/log"
)

// severeTier is the first deviation tier shown as an error.
const severeTier = 2

// metricRow is the card for one metric.
type metricRow struct {
	key        string
	card       *widget.Card
	active     *widget.Check
	value      *widget.Label
	ideal      *widget.Label
	assessment *widget.Label
}

// MetricsPanel lists every metric with its value, ideal range and
// assessment, and lets the user toggle which ones are computed.
type MetricsPanel struct {
	session   *app.Session
	container fyne.CanvasObject

	rows     []*metricRow
	syncing  bool
	onToggle func(active []string)
}

// NewMetricsPanel creates a metrics panel with one card per registered metric.
func NewMetricsPanel(session *app.Session) *MetricsPanel {
	mp := &MetricsPanel{session: session}

	cards := container.NewVBox()
	for _, entry := range metrics.Registry {
		row := &metricRow{
			key:        entry.Key,
			value:      widget.NewLabel("-"),
			ideal:      widget.NewLabel(""),
			assessment: widget.NewLabel(""),
		}
		row.value.TextStyle = fyne.TextStyle{Bold: true}
		row.assessment.Wrapping = fyne.TextWrapWord

		key := entry.Key
		row.active = widget.NewCheck("Show", func(checked bool) {
			mp.toggle(key, checked)
		})
		row.active.SetChecked(true)

		// The name needs no landmarks, so an unbound instance will do.
		row.card = widget.NewCard(entry.New(metrics.Deps{}).Name(), "", container.NewVBox(
			row.active,
			row.value,
			row.ideal,
			row.assessment,
		))

		mp.rows = append(mp.rows, row)
		cards.Add(row.card)
	}

	mp.container = container.NewVScroll(cards)
	return mp
}

// Container returns the panel container.
func (mp *MetricsPanel) Container() fyne.CanvasObject {
	return mp.container
}

// OnToggle sets the callback run with the new active keys after a toggle.
func (mp *MetricsPanel) OnToggle(callback func(active []string)) {
	mp.onToggle = callback
}

// SetActive checks exactly the metrics in keys. An empty list checks all.
func (mp *MetricsPanel) SetActive(keys []string) {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	mp.syncing = true
	for _, row := range mp.rows {
		row.active.SetChecked(len(keys) == 0 || want[row.key])
	}
	mp.syncing = false
}

// ActiveKeys returns the checked metric keys in display order.
func (mp *MetricsPanel) ActiveKeys() []string {
	var keys []string
	for _, row := range mp.rows {
		if row.active.Checked {
			keys = append(keys, row.key)
		}
	}
	return keys
}

// Update shows results. Metrics without a result are shown as inactive.
func (mp *MetricsPanel) Update(results []metrics.Result) {
	byKey := make(map[string]metrics.Result, len(results))
	for _, r := range results {
		byKey[r.Key] = r
	}

	for _, row := range mp.rows {
		r, ok := byKey[row.key]
		if !ok {
			row.value.SetText("-")
			row.ideal.SetText("")
			row.assessment.Importance = widget.MediumImportance
			row.assessment.SetText("")
			continue
		}
		row.value.SetText(r.Value)
		if r.Ideal != "" {
			row.ideal.SetText("Ideal: " + r.Ideal)
		} else {
			row.ideal.SetText("")
		}
		row.assessment.Importance = assessmentImportance(r)
		switch {
		case r.Err != nil:
			row.assessment.SetText(r.Err.Error())
		case r.Assessed:
			row.assessment.SetText(r.Assessment.Text)
		default:
			row.assessment.SetText("")
		}
	}
}

// assessmentImportance colors a card's assessment line by severity through
// the theme's success, warning and error colors.
func assessmentImportance(r metrics.Result) widget.Importance {
	switch {
	case r.Err != nil:
		return widget.DangerImportance
	case !r.Assessed:
		return widget.MediumImportance
	case r.Assessment.Outcome == assessment.Perfect:
		return widget.SuccessImportance
	case r.Assessment.Tier < severeTier:
		return widget.WarningImportance
	default:
		return widget.DangerImportance
	}
}

// Clear blanks every card.
func (mp *MetricsPanel) Clear() {
	mp.Update(nil)
}

func (mp *MetricsPanel) toggle(key string, checked bool) {
	if mp.syncing {
		return
	}
	if a := mp.session.Current(); a != nil {
		if err := a.Controller.SetActive(key, checked); err != nil {
			log.Warn(log.Fields{"metric": key, "error": err.Error()}, "[panels.MetricsPanel] toggle failed")
		}
	}
	if mp.onToggle != nil {
		mp.onToggle(mp.ActiveKeys())
	}
}
