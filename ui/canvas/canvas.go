// Package canvas provides the zoomable photo canvas the metric overlays are
// drawn and dragged on.
package canvas

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	faceimage "face-metrics/internal/image"
	"face-metrics/internal/overlay"
	"face-metrics/pkg/geometry"
)

const (
	minZoom  = 0.1
	maxZoom  = 10.0
	zoomStep = 1.25
)

// PointerHandler receives pointer events in image coordinates.
// interaction.Controller implements it.
type PointerHandler interface {
	PointerDown(p geometry.Point2D) bool
	PointerMove(p geometry.Point2D)
	PointerUp()
	PointerCancel()
}

// FaceCanvas displays a photo with the current overlay frame and forwards
// pointer input to a handler. It implements interaction.Surface.
type FaceCanvas struct {
	widget.BaseWidget

	mu     sync.Mutex
	photo  image.Image
	scaled *image.RGBA // photo resampled at zoom, rebuilt lazily
	frame  overlay.Frame
	style  overlay.Style

	raster  *fynecanvas.Raster
	zoom    float64
	scroll  *zoomScroll
	content *pointerContent
	imgSize fyne.Size

	handler      PointerHandler
	pressed      bool
	onZoomChange func(zoom float64)
}

// zoomScroll wraps a scroll container but uses the wheel for zoom.
type zoomScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
	canvas *FaceCanvas
}

func newZoomScroll(content fyne.CanvasObject, canvas *FaceCanvas) *zoomScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	zs := &zoomScroll{scroll: scroll, canvas: canvas}
	zs.ExtendBaseWidget(zs)
	return zs
}

func (zs *zoomScroll) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		zs.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		zs.canvas.ZoomOut()
	}
}

func (zs *zoomScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(zs.scroll)
}

// Size returns the scroll container's size.
func (zs *zoomScroll) Size() fyne.Size {
	return zs.scroll.Size()
}

// Refresh refreshes the scroll container.
func (zs *zoomScroll) Refresh() {
	zs.scroll.Refresh()
	zs.BaseWidget.Refresh()
}

// Resize sets the size of the scroll container.
func (zs *zoomScroll) Resize(size fyne.Size) {
	zs.scroll.Resize(size)
	zs.BaseWidget.Resize(size)
}

// pointerContent wraps the raster to receive mouse events. Event positions
// are relative to the content, so they only need unzooming.
type pointerContent struct {
	widget.BaseWidget
	canvas *FaceCanvas
	raster *fynecanvas.Raster
}

var (
	_ desktop.Mouseable = (*pointerContent)(nil)
	_ desktop.Hoverable = (*pointerContent)(nil)
	_ fyne.Draggable    = (*pointerContent)(nil)
)

func newPointerContent(fc *FaceCanvas, raster *fynecanvas.Raster) *pointerContent {
	pc := &pointerContent{canvas: fc, raster: raster}
	pc.ExtendBaseWidget(pc)
	return pc
}

func (pc *pointerContent) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.raster)
}

func (pc *pointerContent) MinSize() fyne.Size {
	return pc.raster.MinSize()
}

// toImage maps a widget position back to image pixels.
func (pc *pointerContent) toImage(pos fyne.Position) geometry.Point2D {
	p := geometry.NewPoint2D(float64(pos.X), float64(pos.Y))
	inv, ok := geometry.Scale(pc.canvas.zoom, pc.canvas.zoom).Inverse()
	if !ok {
		return p
	}
	return inv.Apply(p)
}

func (pc *pointerContent) MouseDown(ev *desktop.MouseEvent) {
	if pc.canvas.handler == nil || ev.Button != desktop.MouseButtonPrimary {
		return
	}
	pc.canvas.pressed = pc.canvas.handler.PointerDown(pc.toImage(ev.Position))
}

func (pc *pointerContent) MouseUp(ev *desktop.MouseEvent) {
	if pc.canvas.handler == nil {
		return
	}
	pc.canvas.pressed = false
	pc.canvas.handler.PointerUp()
}

func (pc *pointerContent) MouseIn(ev *desktop.MouseEvent) {}

func (pc *pointerContent) MouseMoved(ev *desktop.MouseEvent) {
	if pc.canvas.handler != nil {
		pc.canvas.handler.PointerMove(pc.toImage(ev.Position))
	}
}

func (pc *pointerContent) MouseOut() {
	if pc.canvas.handler == nil {
		return
	}
	pc.canvas.pressed = false
	pc.canvas.handler.PointerCancel()
}

// Dragged keeps drags flowing while the button is held; fyne stops sending
// MouseMoved once a drag starts.
func (pc *pointerContent) Dragged(ev *fyne.DragEvent) {
	if pc.canvas.handler != nil && pc.canvas.pressed {
		pc.canvas.handler.PointerMove(pc.toImage(ev.Position))
	}
}

func (pc *pointerContent) DragEnd() {
	if pc.canvas.handler == nil {
		return
	}
	pc.canvas.pressed = false
	pc.canvas.handler.PointerUp()
}

// NewFaceCanvas creates an empty canvas.
func NewFaceCanvas() *FaceCanvas {
	fc := &FaceCanvas{
		zoom:    1.0,
		imgSize: fyne.NewSize(400, 300),
	}

	fc.raster = fynecanvas.NewRaster(fc.draw)
	fc.raster.ScaleMode = fynecanvas.ImageScalePixels
	fc.raster.SetMinSize(fc.imgSize)

	fc.content = newPointerContent(fc, fc.raster)
	fc.scroll = newZoomScroll(fc.content, fc)

	fc.ExtendBaseWidget(fc)
	return fc
}

// SetHandler routes pointer events to h.
func (fc *FaceCanvas) SetHandler(h PointerHandler) {
	fc.handler = h
}

// SetPhoto replaces the displayed photo and clears the overlay.
func (fc *FaceCanvas) SetPhoto(img image.Image) {
	fc.mu.Lock()
	fc.photo = img
	fc.scaled = nil
	fc.frame = overlay.Frame{}
	if img != nil {
		b := img.Bounds()
		fc.style = overlay.DefaultStyle(geometry.NewSize(float64(b.Dx()), float64(b.Dy())))
	}
	fc.mu.Unlock()
	fc.updateContentSize()
}

// Redraw shows a new overlay frame.
func (fc *FaceCanvas) Redraw(f overlay.Frame) {
	fc.mu.Lock()
	fc.frame = f
	fc.mu.Unlock()
	fc.raster.Refresh()
}

// SetZoom sets the zoom level.
func (fc *FaceCanvas) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	fc.mu.Lock()
	if zoom != fc.zoom {
		fc.scaled = nil
	}
	fc.zoom = zoom
	fc.mu.Unlock()
	fc.updateContentSize()

	if fc.onZoomChange != nil {
		fc.onZoomChange(zoom)
	}
}

// Zoom returns the current zoom level.
func (fc *FaceCanvas) Zoom() float64 {
	return fc.zoom
}

// ZoomIn increases the zoom level.
func (fc *FaceCanvas) ZoomIn() {
	fc.SetZoom(fc.zoom * zoomStep)
}

// ZoomOut decreases the zoom level.
func (fc *FaceCanvas) ZoomOut() {
	fc.SetZoom(fc.zoom / zoomStep)
}

// FitToWindow adjusts zoom to fit the photo in the visible area.
func (fc *FaceCanvas) FitToWindow() {
	if fc.photo == nil {
		return
	}
	b := fc.photo.Bounds()
	view := fc.scroll.Size()
	if view.Width <= 0 || view.Height <= 0 {
		return
	}
	fc.SetZoom(faceimage.FitScale(b.Dx(), b.Dy(), int(view.Width), int(view.Height)) * 0.95)
}

// OnZoomChange sets a callback for zoom changes.
func (fc *FaceCanvas) OnZoomChange(callback func(zoom float64)) {
	fc.onZoomChange = callback
}

// Container returns the canvas container for embedding in layouts.
func (fc *FaceCanvas) Container() fyne.CanvasObject {
	return fc.scroll
}

// Refresh refreshes the canvas display.
func (fc *FaceCanvas) Refresh() {
	fc.raster.Refresh()
}

func (fc *FaceCanvas) updateContentSize() {
	if fc.photo == nil {
		fc.imgSize = fyne.NewSize(400, 300)
	} else {
		b := fc.photo.Bounds()
		fc.imgSize = fyne.NewSize(float32(float64(b.Dx())*fc.zoom), float32(float64(b.Dy())*fc.zoom))
	}

	fc.raster.SetMinSize(fc.imgSize)
	fc.raster.Resize(fc.imgSize)
	if fc.content != nil {
		fc.content.Resize(fc.imgSize)
		fc.content.Refresh()
	}
	fc.raster.Refresh()
	if fc.scroll != nil {
		fc.scroll.Refresh()
	}
}

// draw is the raster drawing function.
func (fc *FaceCanvas) draw(w, h int) image.Image {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	output := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(output.Pix); i += 4 {
		output.Pix[i] = 255
	}
	if fc.photo == nil {
		return output
	}

	if fc.scaled == nil {
		fc.scaled = faceimage.Scale(fc.photo, fc.zoom)
	}
	copy2D(output, fc.scaled)

	overlay.Draw(output, fc.frame, fc.zoom, fc.style)
	return output
}

// copy2D copies src into the top-left corner of dst.
func copy2D(dst, src *image.RGBA) {
	rows := min(dst.Bounds().Dy(), src.Bounds().Dy())
	cols := min(dst.Bounds().Dx(), src.Bounds().Dx()) * 4
	for y := 0; y < rows; y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+cols], src.Pix[y*src.Stride:y*src.Stride+cols])
	}
}

// CreateRenderer implements fyne.Widget.
func (fc *FaceCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &faceCanvasRenderer{canvas: fc}
}

type faceCanvasRenderer struct {
	canvas *FaceCanvas
}

func (r *faceCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.scroll.Resize(size)
}

func (r *faceCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *faceCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *faceCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.scroll}
}

func (r *faceCanvasRenderer) Destroy() {}
