// Package mainwindow provides the main application window.
package mainwindow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"face-metrics/internal/app"
	faceimage "face-metrics/internal/image"
	"face-metrics/internal/landmarks"
	"face-metrics/internal/overlay"
	"face-metrics/internal/reference"
	"face-metrics/internal/version"
	"face-metrics/pkg/log"
	"face-metrics/ui/canvas"
	"face-metrics/ui/panels"
	"face-metrics/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	prefKeyLastDir       = "lastDirectory"
	prefKeyLastImage     = "lastImage"
	prefKeyWindowWidth   = "windowWidth"
	prefKeyWindowHeight  = "windowHeight"
	prefKeyActiveMetrics = "activeMetrics"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app           fyne.App
	session       *app.Session
	prefs         *prefs.Prefs
	referencePath string

	canvas    *canvas.FaceCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label
	zoomLabel *widget.Label
}

// New creates a new main window. referencePath is reloaded by the
// Reload Reference menu item.
func New(fyneApp fyne.App, session *app.Session, p *prefs.Prefs, referencePath string) *MainWindow {
	win := fyneApp.NewWindow("Face Metrics")

	mw := &MainWindow{
		Window:        win,
		app:           fyneApp,
		session:       session,
		prefs:         p,
		referencePath: referencePath,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	mw.Resize(fyne.NewSize(
		float32(p.FloatWithFallback(prefKeyWindowWidth, 1200)),
		float32(p.FloatWithFallback(prefKeyWindowHeight, 800)),
	))
	mw.SetCloseIntercept(func() {
		mw.SavePreferences()
		mw.Close()
	})

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewFaceCanvas()

	mw.sidePanel = panels.NewSidePanel(mw.session)
	metricsPanel := mw.sidePanel.Metrics()
	if keys, ok := mw.prefs.StringList(prefKeyActiveMetrics); ok && len(keys) > 0 {
		metricsPanel.SetActive(keys)
	} else if len(mw.session.ActiveMetrics) > 0 {
		metricsPanel.SetActive(mw.session.ActiveMetrics)
	}
	mw.session.ActiveMetrics = metricsPanel.ActiveKeys()
	metricsPanel.OnToggle(func(active []string) {
		mw.session.ActiveMetrics = active
		mw.prefs.SetStringList(prefKeyActiveMetrics, active)
	})

	mw.statusBar = widget.NewLabel("Open an image to begin")
	mw.zoomLabel = widget.NewLabel("100%")
	mw.canvas.OnZoomChange(func(zoom float64) {
		mw.zoomLabel.SetText(fmt.Sprintf("%.0f%%", zoom*100))
	})

	toolbar := mw.createToolbar()

	canvasArea := container.NewBorder(
		toolbar,               // top
		nil,                   // bottom
		nil,                   // left
		nil,                   // right
		mw.canvas.Container(), // center
	)

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		canvasArea,
	)
	split.SetOffset(0.28)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)

	mw.SetContent(content)
}

// createToolbar creates the toolbar with zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	return container.NewHBox(
		widget.NewButton("Open...", mw.onOpenImage),
		widget.NewSeparator(),
		widget.NewLabel("Zoom:"),
		widget.NewButton("-", mw.canvas.ZoomOut),
		widget.NewButton("+", mw.canvas.ZoomIn),
		widget.NewButton("Fit", mw.canvas.FitToWindow),
		widget.NewButton("1:1", func() { mw.canvas.SetZoom(1.0) }),
		mw.zoomLabel,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", mw.onOpenImage),
		fyne.NewMenuItem("Export Overlay...", mw.onExportOverlay),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reload Reference", mw.onReloadReference),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			mw.SavePreferences()
			mw.app.Quit()
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.canvas.ZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.canvas.ZoomOut),
		fyne.NewMenuItem("Fit to Window", mw.canvas.FitToWindow),
		fyne.NewMenuItem("Actual Size", func() { mw.canvas.SetZoom(1.0) }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for session events.
func (mw *MainWindow) setupEventHandlers() {
	mw.session.On(app.EventAnalysisStarted, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.updateStatus("Analyzing " + filepath.Base(path) + "...")
		}
	})

	mw.session.On(app.EventReset, func(data interface{}) {
		mw.canvas.SetHandler(nil)
		mw.canvas.SetPhoto(nil)
		mw.sidePanel.Sync()
	})

	mw.session.On(app.EventAnalysisComplete, func(data interface{}) {
		a, ok := data.(*app.Analysis)
		if !ok {
			return
		}
		mw.SetTitle("Face Metrics - " + filepath.Base(a.Photo.Path))
		mw.canvas.SetPhoto(a.Photo.Image)
		mw.canvas.SetHandler(a.Controller)
		mw.canvas.FitToWindow()
		// SetPhoto clears the overlay drawn during analysis.
		a.Controller.Refresh()
		mw.updateStatus(fmt.Sprintf("%s: %d metrics, %dx%d px",
			filepath.Base(a.Photo.Path), a.Controller.ActiveCount(), a.Photo.Width(), a.Photo.Height()))
	})

	mw.session.On(app.EventAnalysisFailed, func(data interface{}) {
		err, ok := data.(error)
		if !ok {
			return
		}
		mw.SetTitle("Face Metrics")
		if app.IsNoFace(err) {
			mw.updateStatus("No face detected")
			return
		}
		mw.updateStatus("Analysis failed: " + err.Error())
		dialog.ShowError(err, mw.Window)
	})

	mw.session.On(app.EventMetricsChanged, func(data interface{}) {
		mw.sidePanel.Sync()
	})

	mw.session.On(app.EventReferenceReloaded, func(data interface{}) {
		mw.sidePanel.Sync()
		mw.updateStatus("Reference data reloaded")
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// OpenImage analyzes the image at path in the background, reading landmarks
// from the dump next to it.
func (mw *MainWindow) OpenImage(path string) {
	mw.prefs.SetString(prefKeyLastImage, path)
	det := landmarks.FileDetector{Path: landmarks.SidecarPath(path)}
	go func() {
		// Failures reach the window through EventAnalysisFailed.
		_, _ = mw.session.Analyze(context.Background(), path, det, mw.canvas)
	}()
}

// RestoreLastImage reopens the previously analyzed image if it and its
// landmark dump still exist.
func (mw *MainWindow) RestoreLastImage() {
	path := mw.prefs.String(prefKeyLastImage)
	if path == "" {
		return
	}
	for _, p := range []string{path, landmarks.SidecarPath(path)} {
		if _, err := os.Stat(p); err != nil {
			return
		}
	}
	mw.OpenImage(path)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefKeyLastDir, filepath.Dir(filePath))
}

// SavePreferences stores the window size and writes preferences to disk.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		mw.prefs.SetFloat(prefKeyWindowWidth, float64(size.Width))
		mw.prefs.SetFloat(prefKeyWindowHeight, float64(size.Height))
	}
	if err := mw.prefs.SaveIfChanged(); err != nil {
		log.Warn(log.Fields{"path": mw.prefs.Path(), "error": err.Error()}, "[mainwindow.SavePreferences] failed to save preferences")
	}
}

// Menu action handlers

func (mw *MainWindow) onOpenImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		mw.OpenImage(path)
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter(faceimage.SupportedFormats()))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onExportOverlay() {
	a := mw.session.Current()
	if a == nil {
		mw.updateStatus("Nothing to export")
		return
	}

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if !strings.EqualFold(filepath.Ext(path), ".png") {
			path += ".png"
		}
		mw.saveLastDir(path)

		surface := overlay.NewPNGSurface(a.Photo.Image)
		surface.Redraw(a.Controller.Frame(nil))
		if err := surface.WriteFile(path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Overlay written to " + path)
	}, mw.Window)
	base := filepath.Base(a.Photo.Path)
	fd.SetFileName(strings.TrimSuffix(base, filepath.Ext(base)) + ".overlay.png")
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onReloadReference() {
	mw.session.SetReference(reference.LoadOrEmpty(mw.referencePath))
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Face Metrics",
		fmt.Sprintf("Face Metrics v%s\n\n"+
			"Measures facial proportions from face-mesh landmarks\n"+
			"and compares them with reference ranges.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
