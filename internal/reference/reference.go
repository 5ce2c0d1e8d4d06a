// Package reference holds the ideal ranges each metric is assessed against.
package reference

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"face-metrics/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Range is the reference data for one metric. At least one bound is set;
// a bound is set when it is non-nil, so zero is a valid bound.
type Range struct {
	IdealLower    *float64 `json:"idealLower,omitempty" validate:"required_without=IdealUpper"`
	IdealUpper    *float64 `json:"idealUpper,omitempty" validate:"required_without=IdealLower"`
	Deviation     float64  `json:"deviation" validate:"gt=0"`
	DeviatingLow  string   `json:"deviatingLow,omitempty"`
	DeviatingHigh string   `json:"deviatingHigh,omitempty"`
}

// Bounded returns a range with both bounds set.
func Bounded(lower, upper, deviation float64, low, high string) Range {
	return Range{IdealLower: &lower, IdealUpper: &upper, Deviation: deviation, DeviatingLow: low, DeviatingHigh: high}
}

// AtLeast returns a lower-bounded range.
func AtLeast(lower, deviation float64, low string) Range {
	return Range{IdealLower: &lower, Deviation: deviation, DeviatingLow: low}
}

// AtMost returns an upper-bounded range.
func AtMost(upper, deviation float64, high string) Range {
	return Range{IdealUpper: &upper, Deviation: deviation, DeviatingHigh: high}
}

// MissingRangeError reports a metric without reference data. It disables
// that metric's assessment only.
type MissingRangeError struct {
	Key string
}

func (e *MissingRangeError) Error() string {
	return fmt.Sprintf("no reference range for %q", e.Key)
}

// Source supplies reference ranges by metric key.
type Source interface {
	Range(key string) (Range, error)
}

// Database is the reference data file: {"entries": {"midfaceRatio": {...}}}.
type Database struct {
	Entries map[string]Range `json:"entries"`
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{Entries: make(map[string]Range)}
}

// Range returns the entry for key.
func (db *Database) Range(key string) (Range, error) {
	if db == nil {
		return Range{}, &MissingRangeError{Key: key}
	}
	r, ok := db.Entries[key]
	if !ok {
		return Range{}, &MissingRangeError{Key: key}
	}
	return r, nil
}

// Keys returns the entry keys in sorted order.
func (db *Database) Keys() []string {
	keys := make([]string, 0, len(db.Entries))
	for k := range db.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Parse decodes a database and drops entries that fail validation, so that
// a bad entry only disables its own metric.
func Parse(data []byte) (*Database, error) {
	db := NewDatabase()
	if err := json.Unmarshal(data, db); err != nil {
		return nil, fmt.Errorf("failed to decode reference database: %w", err)
	}
	if db.Entries == nil {
		db.Entries = make(map[string]Range)
	}

	validate := validator.New()
	for _, key := range db.Keys() {
		r := db.Entries[key]
		if err := validate.Struct(r); err != nil {
			log.Warn(log.Fields{"key": key, "error": err.Error()}, "[reference.Parse] dropping invalid entry")
			delete(db.Entries, key)
		}
	}
	return db, nil
}

// Load reads a database file.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference database: %w", err)
	}
	return Parse(data)
}

// LoadOrEmpty reads a database file and falls back to an empty database on
// any error, so metrics still compute without assessments.
func LoadOrEmpty(path string) *Database {
	db, err := Load(path)
	if err != nil {
		log.Error(log.Fields{"path": path, "error": err.Error()}, "[reference.LoadOrEmpty] using empty reference database")
		return NewDatabase()
	}
	log.Info(log.Fields{"path": path, "entries": len(db.Entries)}, "[reference.LoadOrEmpty] reference database loaded")
	return db
}
