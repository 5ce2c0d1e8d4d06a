package metrics

import (
	"errors"
	"fmt"
	"sort"

	"face-metrics/internal/assessment"
	"face-metrics/pkg/log"
)

// ErrUnknownMetric is returned for a key not in Registry.
var ErrUnknownMetric = errors.New("unknown metric")

// Unavailable is rendered in place of a metric whose calculation failed.
const Unavailable = "unavailable"

// Result is a display row for one metric.
type Result struct {
	Key        string
	Name       string
	Value      string
	Ideal      string
	Assessment assessment.Result
	Assessed   bool
	Err        error // Calculation failure
	AssessErr  error // Missing or invalid reference data
}

// Set owns the metrics of one analysis and which of them are active. A metric
// whose last Calculate failed is reported as unavailable and not drawn; the
// others are unaffected.
type Set struct {
	metrics []Metric
	active  map[string]bool
	errs    map[string]error
}

// NewSet builds every registered metric against deps. All are active.
func NewSet(deps Deps) *Set {
	s := &Set{
		active: make(map[string]bool, len(Registry)),
		errs:   make(map[string]error),
	}
	for _, r := range Registry {
		s.metrics = append(s.metrics, r.New(deps))
		s.active[r.Key] = true
	}
	return s
}

// Metrics returns every metric in display order.
func (s *Set) Metrics() []Metric {
	return s.metrics
}

// Get returns the metric with the given key.
func (s *Set) Get(key string) (Metric, bool) {
	for _, m := range s.metrics {
		if m.Key() == key {
			return m, true
		}
	}
	return nil, false
}

// IsActive reports whether key is toggled on.
func (s *Set) IsActive(key string) bool {
	return s.active[key]
}

// SetActive toggles a metric. Turning one on calculates it immediately.
func (s *Set) SetActive(key string, on bool) error {
	m, ok := s.Get(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMetric, key)
	}
	s.active[key] = on
	if on {
		s.calculate(m)
	}
	return nil
}

// Only activates exactly the given keys.
func (s *Set) Only(keys []string) error {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		if _, ok := s.Get(k); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownMetric, k)
		}
		want[k] = true
	}
	for _, m := range s.metrics {
		s.active[m.Key()] = want[m.Key()]
	}
	return nil
}

// Active returns the active metrics in display order.
func (s *Set) Active() []Metric {
	var out []Metric
	for _, m := range s.metrics {
		if s.active[m.Key()] {
			out = append(out, m)
		}
	}
	return out
}

// Recompute calculates every active metric.
func (s *Set) Recompute() {
	for _, m := range s.Active() {
		s.calculate(m)
	}
}

func (s *Set) calculate(m Metric) {
	if err := m.Calculate(); err != nil {
		if _, failed := s.errs[m.Key()]; !failed {
			log.Warn(log.Fields{"metric": m.Key(), "error": err}, "[metrics.Set] calculation failed")
		}
		s.errs[m.Key()] = err
		return
	}
	delete(s.errs, m.Key())
}

// Err returns the last calculation error of key.
func (s *Set) Err(key string) error {
	return s.errs[key]
}

// NecessaryPoints is the sorted union of the active metrics' base points.
func (s *Set) NecessaryPoints() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range s.Active() {
		for _, name := range m.NecessaryPoints() {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Drawables collects the overlays of active metrics that calculated cleanly.
func (s *Set) Drawables() []Drawable {
	var out []Drawable
	for _, m := range s.Active() {
		if s.errs[m.Key()] != nil {
			continue
		}
		out = append(out, m.Drawables()...)
	}
	return out
}

// Results returns one row per active metric.
func (s *Set) Results() []Result {
	var out []Result
	for _, m := range s.Active() {
		r := Result{Key: m.Key(), Name: m.Name(), Err: s.errs[m.Key()]}
		if r.Err != nil {
			r.Value = Unavailable
			out = append(out, r)
			continue
		}
		r.Value = m.Render()
		r.Ideal, r.AssessErr = m.Ideal()
		if r.AssessErr == nil {
			r.Assessment, r.AssessErr = m.Assess()
			r.Assessed = r.AssessErr == nil
		}
		out = append(out, r)
	}
	return out
}
