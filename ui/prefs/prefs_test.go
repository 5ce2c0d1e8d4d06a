package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", prefsFile)
	p := LoadFrom(path)

	p.SetString("lastDirectory", "/photos")
	p.SetFloat("windowWidth", 1280)
	p.SetBool("showHover", false)
	p.SetStringList("activeMetrics", []string{"midfaceRatio", "lipRatio"})
	if err := p.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	q := LoadFrom(path)
	if got := q.String("lastDirectory"); got != "/photos" {
		t.Errorf("String = %q, want /photos", got)
	}
	if got := q.Float("windowWidth"); got != 1280 {
		t.Errorf("Float = %v, want 1280", got)
	}
	if got := q.Bool("showHover", true); got {
		t.Error("Bool = true, want false")
	}
	list, ok := q.StringList("activeMetrics")
	if !ok || len(list) != 2 || list[0] != "midfaceRatio" || list[1] != "lipRatio" {
		t.Errorf("StringList = %v, %v", list, ok)
	}
}

func TestDefaults(t *testing.T) {
	p := LoadFrom(filepath.Join(t.TempDir(), prefsFile))

	if got := p.FloatWithFallback("windowHeight", 800); got != 800 {
		t.Errorf("FloatWithFallback = %v, want 800", got)
	}
	if !p.Bool("missing", true) {
		t.Error("Bool fallback not used")
	}
	if _, ok := p.StringList("activeMetrics"); ok {
		t.Error("StringList reported an unset key as set")
	}
}

func TestEmptyListIsSet(t *testing.T) {
	p := LoadFrom(filepath.Join(t.TempDir(), prefsFile))
	p.SetStringList("activeMetrics", nil)

	list, ok := p.StringList("activeMetrics")
	if !ok || len(list) != 0 {
		t.Errorf("StringList = %v, %v; want empty and set", list, ok)
	}
}

func TestSaveIfChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	p := LoadFrom(path)

	if err := p.SaveIfChanged(); err != nil {
		t.Fatalf("SaveIfChanged: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file written without changes: %v", err)
	}

	p.SetString("k", "v")
	if err := p.SaveIfChanged(); err != nil {
		t.Fatalf("SaveIfChanged: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not written: %v", err)
	}
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := LoadFrom(path)
	if got := p.String("anything"); got != "" {
		t.Errorf("String = %q, want empty", got)
	}
}
