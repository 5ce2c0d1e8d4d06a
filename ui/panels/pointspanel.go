package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"face-metrics/internal/app"
	"face-metrics/internal/interaction"
)

// PointsPanel lists the draggable landmark points of the current analysis.
type PointsPanel struct {
	session   *app.Session
	container fyne.CanvasObject

	list    *widget.List
	status  *widget.Label
	entries []interaction.NamedPoint
}

// NewPointsPanel creates a new points panel.
func NewPointsPanel(session *app.Session) *PointsPanel {
	pp := &PointsPanel{session: session}

	pp.list = widget.NewList(
		func() int {
			return len(pp.entries)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("point")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(pp.entries) {
				e := pp.entries[id]
				obj.(*widget.Label).SetText(fmt.Sprintf("%s  (%.1f, %.1f)", e.Name, e.Point.X, e.Point.Y))
			}
		},
	)

	pp.status = widget.NewLabel("No face loaded")

	pp.container = container.NewBorder(
		widget.NewCard("Points", "", pp.status),
		nil, nil, nil,
		pp.list,
	)

	return pp
}

// Container returns the panel container.
func (pp *PointsPanel) Container() fyne.CanvasObject {
	return pp.container
}

// Update reloads the point list from the current analysis.
func (pp *PointsPanel) Update() {
	a := pp.session.Current()
	if a == nil {
		pp.entries = nil
		pp.status.SetText("No face loaded")
		pp.list.Refresh()
		return
	}

	pp.entries = a.Controller.DraggablePoints()

	state, dragged := a.Controller.State()
	if state == interaction.Dragging {
		pp.status.SetText("Dragging " + dragged)
	} else {
		pp.status.SetText(fmt.Sprintf("%d draggable points", len(pp.entries)))
	}
	pp.list.Refresh()
}
