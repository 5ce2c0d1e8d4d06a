package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ReferencePath != "reference.json" || cfg.LogLevel != "info" || cfg.PickRadiusScale != 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.ActiveMetrics) != 0 {
		t.Fatalf("expected all metrics active, got %v", cfg.ActiveMetrics)
	}
}

func TestLoadPrefixedVariables(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FACE_METRICS_ACTIVE_METRICS", "midfaceRatio,lipRatio")
	t.Setenv("FACE_METRICS_PICK_RADIUS_SCALE", "2.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.ActiveMetrics) != 2 || cfg.ActiveMetrics[1] != "lipRatio" {
		t.Fatalf("ActiveMetrics = %v", cfg.ActiveMetrics)
	}
	if cfg.PickRadiusScale != 2.5 {
		t.Fatalf("PickRadiusScale = %v", cfg.PickRadiusScale)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("FACE_METRICS_REFERENCE_PATH=ranges.json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("FACE_METRICS_REFERENCE_PATH") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ReferencePath != "ranges.json" {
		t.Fatalf("ReferencePath = %q", cfg.ReferencePath)
	}
}

func TestLoadRejectsBadScale(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FACE_METRICS_PICK_RADIUS_SCALE", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseEnvError(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FACE_METRICS_PICK_RADIUS_SCALE", "wide")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
