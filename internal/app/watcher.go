package app

import (
	"os"
	"time"

	"face-metrics/internal/reference"
	"face-metrics/pkg/log"
)

// ReferenceWatcher polls the reference file and triggers a callback when it
// is modified, so edited ranges apply without restarting.
type ReferenceWatcher struct {
	path          string
	modTime       time.Time
	checkInterval time.Duration
	stopCh        chan struct{}
	onChange      func()
}

// NewReferenceWatcher creates a watcher for path. A missing file has a zero
// baseline, so creating it later counts as a change.
func NewReferenceWatcher(path string, checkInterval time.Duration) *ReferenceWatcher {
	w := &ReferenceWatcher{
		path:          path,
		checkInterval: checkInterval,
		stopCh:        make(chan struct{}),
	}
	if info, err := os.Stat(path); err == nil {
		w.modTime = info.ModTime()
	}
	return w
}

// OnChange sets the callback. It is called from the watcher goroutine.
func (w *ReferenceWatcher) OnChange(callback func()) {
	w.onChange = callback
}

// Start begins watching in a background goroutine.
func (w *ReferenceWatcher) Start() {
	w.stopCh = make(chan struct{})
	go w.watchLoop()
}

// Stop stops the watcher goroutine.
func (w *ReferenceWatcher) Stop() {
	close(w.stopCh)
}

func (w *ReferenceWatcher) watchLoop() {
	ticker := time.NewTicker(w.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			if w.checkForUpdate() && w.onChange != nil {
				w.onChange()
			}
		}
	}
}

// checkForUpdate reports a newer modification time and moves the baseline.
func (w *ReferenceWatcher) checkForUpdate() bool {
	info, err := os.Stat(w.path)
	if err != nil {
		return false
	}
	if !info.ModTime().After(w.modTime) {
		return false
	}
	w.modTime = info.ModTime()
	return true
}

// WatchReference reloads the reference file into the session whenever it
// changes. Stop the returned watcher when done.
func (s *Session) WatchReference(path string, checkInterval time.Duration) *ReferenceWatcher {
	w := NewReferenceWatcher(path, checkInterval)
	w.OnChange(func() {
		log.Info(log.Fields{"path": path}, "[app.Session.WatchReference] reference file changed")
		s.SetReference(reference.LoadOrEmpty(path))
	})
	w.Start()
	return w
}
