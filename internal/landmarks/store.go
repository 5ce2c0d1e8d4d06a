package landmarks

import (
	"fmt"
	"sort"

	"face-metrics/pkg/geometry"
)

// MissingPointError reports a point name that is not in the store.
type MissingPointError struct {
	Name string
}

func (e *MissingPointError) Error() string {
	return fmt.Sprintf("point %q not in store", e.Name)
}

// Store is the named point mapping shared by every metric of a session.
// It is written by extraction, by drags and by metrics registering derived
// points; it is not safe for concurrent use.
type Store struct {
	points  map[string]geometry.Point2D
	derived map[string]bool
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		points:  make(map[string]geometry.Point2D),
		derived: make(map[string]bool),
	}
}

// Get returns the named point.
func (s *Store) Get(name string) (geometry.Point2D, error) {
	p, ok := s.points[name]
	if !ok {
		return geometry.Point2D{}, &MissingPointError{Name: name}
	}
	return p, nil
}

// Has reports whether name is present.
func (s *Store) Has(name string) bool {
	_, ok := s.points[name]
	return ok
}

// Set stores a base point, overwriting any previous value.
func (s *Store) Set(name string, p geometry.Point2D) {
	s.points[name] = p
}

// SetDerived stores a point computed by a metric.
func (s *Store) SetDerived(name string, p geometry.Point2D) {
	s.points[name] = p
	s.derived[name] = true
}

// IsDerived reports whether name was registered by a metric.
func (s *Store) IsDerived(name string) bool {
	return s.derived[name]
}

// Names returns all point names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.points))
	for name := range s.points {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of stored points.
func (s *Store) Len() int {
	return len(s.points)
}

// Lookup resolves several names at once, failing on the first missing one.
func (s *Store) Lookup(names ...string) ([]geometry.Point2D, error) {
	out := make([]geometry.Point2D, len(names))
	for i, name := range names {
		p, err := s.Get(name)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	c := NewStore()
	for k, v := range s.points {
		c.points[k] = v
	}
	for k, v := range s.derived {
		c.derived[k] = v
	}
	return c
}
