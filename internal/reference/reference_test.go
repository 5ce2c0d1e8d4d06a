package reference

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestParseKeepsZeroLowerBound ensures a zero bound counts as set.
func TestParseKeepsZeroLowerBound(t *testing.T) {
	db, err := Parse([]byte(`{"entries":{"canthalTilt":{"idealLower":0,"deviation":2,"deviatingLow":"negative"}}}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	r, err := db.Range("canthalTilt")
	if err != nil {
		t.Fatalf("Range returned error: %v", err)
	}
	if r.IdealLower == nil || *r.IdealLower != 0 {
		t.Fatalf("expected zero lower bound, got %v", r.IdealLower)
	}
	if r.IdealUpper != nil {
		t.Fatalf("expected no upper bound, got %v", *r.IdealUpper)
	}
}

// TestParseDropsInvalidEntries ensures bad entries only disable themselves.
func TestParseDropsInvalidEntries(t *testing.T) {
	data := `{"entries":{
		"noBounds":{"deviation":0.1},
		"zeroDeviation":{"idealLower":1,"idealUpper":2,"deviation":0},
		"lipRatio":{"idealLower":1.5,"idealUpper":1.7,"deviation":0.1,"deviatingLow":"thin","deviatingHigh":"thick"}
	}}`

	db, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(db.Entries) != 1 {
		t.Fatalf("expected 1 valid entry, got %v", db.Keys())
	}
	if _, err := db.Range("lipRatio"); err != nil {
		t.Fatalf("lipRatio should survive validation: %v", err)
	}
}

// TestRangeMissing ensures unknown keys report MissingRangeError.
func TestRangeMissing(t *testing.T) {
	_, err := NewDatabase().Range("midfaceRatio")

	var merr *MissingRangeError
	if !errors.As(err, &merr) || merr.Key != "midfaceRatio" {
		t.Fatalf("expected MissingRangeError, got %v", err)
	}
}

// TestLoadOrEmptyFallsBack ensures an unreadable file yields an empty database.
func TestLoadOrEmptyFallsBack(t *testing.T) {
	db := LoadOrEmpty(filepath.Join(t.TempDir(), "missing.json"))

	if db == nil || len(db.Entries) != 0 {
		t.Fatalf("expected empty database, got %+v", db)
	}
}

// TestLoadReadsFile ensures Load decodes entries from disk.
func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	body := `{"entries":{"midfaceRatio":{"idealLower":0.93,"idealUpper":1,"deviation":0.05,"deviatingLow":"short","deviatingHigh":"long"}}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	db, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	r, err := db.Range("midfaceRatio")
	if err != nil {
		t.Fatalf("Range returned error: %v", err)
	}
	if *r.IdealLower != 0.93 || *r.IdealUpper != 1 || r.DeviatingHigh != "long" {
		t.Fatalf("unexpected range %+v", r)
	}
}
