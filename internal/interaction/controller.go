// Package interaction turns pointer events into point drags and redraws.
package interaction

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"face-metrics/internal/landmarks"
	"face-metrics/internal/metrics"
	"face-metrics/internal/overlay"
	"face-metrics/pkg/geometry"
)

// ErrDerivedPoint is returned when moving a point a metric constructs.
var ErrDerivedPoint = errors.New("derived points cannot be moved")

// HoverPadding is how much larger the hover ring is than the pick radius.
const HoverPadding = 1.5

// Surface displays frames. The fyne canvas and the PNG renderer implement it.
type Surface interface {
	Redraw(f overlay.Frame)
}

// State is the controller's drag state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// PickRadius returns the hit radius for an image of the given size, scaled
// by a configuration factor. A non-positive factor means 1.
func PickRadius(size geometry.Size, scale float64) float64 {
	if scale <= 0 {
		scale = 1
	}
	return overlay.BaseRadius(size) * scale
}

// Controller moves store points in response to pointer events and keeps the
// surface in sync. All coordinates are image pixels.
//
// The controller is the only path to its store and metric set once built:
// every method takes mu, so pointer events and background reference reloads
// may call it from different goroutines. Surface redraws and the change
// callback run after mu is released.
type Controller struct {
	mu      sync.Mutex
	store   *landmarks.Store
	set     *metrics.Set
	surface Surface
	radius  float64

	state    State
	dragging string
	onChange func()
}

// NewController wires a controller to a store, its metric set and a surface.
func NewController(store *landmarks.Store, set *metrics.Set, surface Surface, radius float64) *Controller {
	return &Controller{store: store, set: set, surface: surface, radius: radius}
}

// OnChange registers a callback run after every recompute, e.g. to refresh
// a results table. It may call back into the controller.
func (c *Controller) OnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// State returns the drag state and the dragged point name, if any.
func (c *Controller) State() (State, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.dragging
}

// Radius returns the pick radius.
func (c *Controller) Radius() float64 {
	return c.radius
}

// PointAt returns the draggable point nearest p within the pick radius.
// Ties go to the lexically smaller name.
func (c *Controller) PointAt(p geometry.Point2D) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pointAt(p)
}

func (c *Controller) pointAt(p geometry.Point2D) (string, bool) {
	names := c.set.NecessaryPoints()
	sort.Strings(names)

	best := ""
	bestDist := math.Inf(1)
	for _, name := range names {
		q, err := c.store.Get(name)
		if err != nil {
			continue
		}
		if d := q.Distance(p); d <= c.radius && d < bestDist {
			best, bestDist = name, d
		}
	}
	return best, best != ""
}

// PointerDown starts a drag when p is on a draggable point.
func (c *Controller) PointerDown(p geometry.Point2D) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	name, ok := c.pointAt(p)
	if !ok {
		return false
	}
	c.state, c.dragging = Dragging, name
	return true
}

// PointerMove moves the dragged point to p and recomputes, or updates the
// hover highlight when idle.
func (c *Controller) PointerMove(p geometry.Point2D) {
	c.mu.Lock()
	if c.state == Dragging {
		c.store.Set(c.dragging, p)
		c.refreshLocked()
		return
	}

	var hover *overlay.Hover
	if name, ok := c.pointAt(p); ok {
		q, _ := c.store.Get(name)
		hover = &overlay.Hover{Center: q, Radius: c.radius + HoverPadding}
	}
	frame := c.frame(hover)
	c.mu.Unlock()
	c.redraw(frame)
}

// PointerUp ends any drag.
func (c *Controller) PointerUp() {
	c.mu.Lock()
	c.state, c.dragging = Idle, ""
	c.mu.Unlock()
}

// PointerCancel ends any drag, e.g. when the pointer leaves the surface.
func (c *Controller) PointerCancel() {
	c.PointerUp()
}

// Move drags name to p in one step.
func (c *Controller) Move(name string, p geometry.Point2D) error {
	c.mu.Lock()
	if _, err := c.store.Get(name); err != nil {
		c.mu.Unlock()
		return err
	}
	if c.store.IsDerived(name) {
		c.mu.Unlock()
		return fmt.Errorf("move %s: %w", name, ErrDerivedPoint)
	}
	c.store.Set(name, p)
	c.refreshLocked()
	return nil
}

// SetActive toggles a metric and refreshes.
func (c *Controller) SetActive(key string, on bool) error {
	c.mu.Lock()
	if err := c.set.SetActive(key, on); err != nil {
		c.mu.Unlock()
		return err
	}
	c.refreshLocked()
	return nil
}

// Refresh recomputes the active metrics and redraws without a highlight.
func (c *Controller) Refresh() {
	c.mu.Lock()
	c.refreshLocked()
}

// refreshLocked recomputes with mu held, then releases it before redrawing
// and notifying.
func (c *Controller) refreshLocked() {
	c.set.Recompute()
	frame := c.frame(nil)
	onChange := c.onChange
	c.mu.Unlock()

	c.redraw(frame)
	if onChange != nil {
		onChange()
	}
}

// Results returns the display rows of the active metrics.
func (c *Controller) Results() []metrics.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set.Results()
}

// ActiveCount returns how many metrics are active.
func (c *Controller) ActiveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.set.Active())
}

// NamedPoint is a landmark position reported to panels.
type NamedPoint struct {
	Name  string
	Point geometry.Point2D
}

// DraggablePoints returns the draggable points and their positions, sorted
// by name.
func (c *Controller) DraggablePoints() []NamedPoint {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := c.set.NecessaryPoints()
	out := make([]NamedPoint, 0, len(names))
	for _, name := range names {
		if p, err := c.store.Get(name); err == nil {
			out = append(out, NamedPoint{Name: name, Point: p})
		}
	}
	return out
}

// Frame builds the current frame.
func (c *Controller) Frame(hover *overlay.Hover) overlay.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame(hover)
}

func (c *Controller) frame(hover *overlay.Hover) overlay.Frame {
	return overlay.Frame{Drawables: c.set.Drawables(), Hover: hover}
}

func (c *Controller) redraw(f overlay.Frame) {
	if c.surface != nil {
		c.surface.Redraw(f)
	}
}
