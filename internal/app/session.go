// Package app holds the analysis session shared by the GUI and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"face-metrics/internal/image"
	"face-metrics/internal/interaction"
	"face-metrics/internal/landmarks"
	"face-metrics/internal/metrics"
	"face-metrics/internal/reference"
	"face-metrics/pkg/log"
)

var tracer = otel.Tracer("face-metrics/internal/app")

// EventType identifies session events.
type EventType int

const (
	EventAnalysisStarted EventType = iota
	EventAnalysisComplete
	EventAnalysisFailed
	EventMetricsChanged
	EventReferenceReloaded
	EventReset
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// Analysis is the result of analyzing one image. It is discarded as a whole
// when the next image is analyzed.
type Analysis struct {
	ID         string
	Photo      *image.Photo
	Detection  *landmarks.Detection
	Store      *landmarks.Store
	Metrics    *metrics.Set
	Controller *interaction.Controller
}

// Results returns the active metric rows. Once the analysis is published,
// Store and Metrics are only touched through Controller, which serializes
// pointer edits against background reference reloads.
func (a *Analysis) Results() []metrics.Result {
	return a.Controller.Results()
}

// Session runs analyses and tells listeners about them.
type Session struct {
	mu sync.RWMutex

	ranges          reference.Source
	Sampler         metrics.RegionSampler
	PickRadiusScale float64
	ActiveMetrics   []string // Empty means all

	current   *Analysis
	listeners map[EventType][]EventListener
}

// NewSession creates a session that assesses against ranges.
func NewSession(ranges reference.Source) *Session {
	return &Session{
		ranges:          ranges,
		Sampler:         image.CVSampler{},
		PickRadiusScale: 1,
		listeners:       make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *Session) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *Session) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Current returns the latest analysis, or nil.
func (s *Session) Current() *Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Range implements reference.Source over whichever database is loaded, so
// metrics built earlier see a reloaded one.
func (s *Session) Range(key string) (reference.Range, error) {
	s.mu.RLock()
	src := s.ranges
	s.mu.RUnlock()
	if src == nil {
		return reference.Range{}, &reference.MissingRangeError{Key: key}
	}
	return src.Range(key)
}

// SetReference swaps the reference data and refreshes the current analysis.
func (s *Session) SetReference(src reference.Source) {
	s.mu.Lock()
	s.ranges = src
	s.mu.Unlock()

	if a := s.Current(); a != nil {
		a.Controller.Refresh()
	}
	s.Emit(EventReferenceReloaded, src)
}

// Reset discards the current analysis.
func (s *Session) Reset() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.Emit(EventReset, nil)
}

// Analyze loads the image at path, detects the face with det, builds the
// metrics and draws them on surface, which may be nil. The previous analysis
// is discarded first, so a failure leaves the session empty.
func (s *Session) Analyze(ctx context.Context, path string, det landmarks.Detector, surface interaction.Surface) (*Analysis, error) {
	s.Reset()

	id := uuid.NewString()
	logger := log.WithSession(id)
	ctx, span := tracer.Start(ctx, "Session.Analyze", trace.WithAttributes(
		attribute.String("session.id", id),
		attribute.String("image.path", path),
	))
	defer span.End()

	s.Emit(EventAnalysisStarted, path)
	a, err := s.analyze(ctx, id, path, det, surface)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.WithField("path", path).WithError(err).Error("[app.Session.Analyze] analysis failed")
		s.Emit(EventAnalysisFailed, err)
		return nil, err
	}

	s.mu.Lock()
	s.current = a
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"path":    path,
		"metrics": a.Controller.ActiveCount(),
	}).Info("[app.Session.Analyze] analysis complete")
	s.Emit(EventAnalysisComplete, a)
	return a, nil
}

func (s *Session) analyze(ctx context.Context, id, path string, det landmarks.Detector, surface interaction.Surface) (*Analysis, error) {
	a := &Analysis{ID: id}

	err := step(ctx, "image.Load", func(context.Context) error {
		var err error
		a.Photo, err = image.Load(path)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = step(ctx, "landmarks.Detect", func(ctx context.Context) error {
		detections, err := det.Detect(ctx, a.Photo.Image)
		if err != nil {
			return fmt.Errorf("detect: %w", err)
		}
		a.Detection, err = landmarks.First(detections)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = step(ctx, "landmarks.Extract", func(context.Context) error {
		var err error
		a.Store, err = landmarks.Extract(a.Detection)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = step(ctx, "metrics.Build", func(context.Context) error {
		a.Metrics = metrics.NewSet(metrics.Deps{
			Store:     a.Store,
			Ranges:    s,
			Detection: a.Detection,
			Image:     a.Photo.Image,
			Sampler:   s.Sampler,
		})
		if len(s.ActiveMetrics) > 0 {
			if err := a.Metrics.Only(s.ActiveMetrics); err != nil {
				return err
			}
		}
		radius := interaction.PickRadius(a.Photo.Size(), s.PickRadiusScale)
		a.Controller = interaction.NewController(a.Store, a.Metrics, surface, radius)
		a.Controller.OnChange(func() { s.Emit(EventMetricsChanged, a) })
		a.Controller.Refresh()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// step runs fn in a child span, stopping early if ctx is done.
func step(ctx context.Context, name string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// IsNoFace reports whether err means the image had no face.
func IsNoFace(err error) bool {
	return errors.Is(err, landmarks.ErrNoFace)
}
