// Package panels provides UI panels for the application.
package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"face-metrics/internal/app"
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	session   *app.Session
	container *container.AppTabs

	metricsPanel *MetricsPanel
	pointsPanel  *PointsPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(session *app.Session) *SidePanel {
	sp := &SidePanel{session: session}

	sp.metricsPanel = NewMetricsPanel(session)
	sp.pointsPanel = NewPointsPanel(session)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Metrics", sp.metricsPanel.Container()),
		container.NewTabItem("Points", sp.pointsPanel.Container()),
	)

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// Metrics returns the metrics tab.
func (sp *SidePanel) Metrics() *MetricsPanel {
	return sp.metricsPanel
}

// Sync refreshes both tabs from the current analysis.
func (sp *SidePanel) Sync() {
	if a := sp.session.Current(); a != nil {
		sp.metricsPanel.Update(a.Results())
	} else {
		sp.metricsPanel.Clear()
	}
	sp.pointsPanel.Update()
}
