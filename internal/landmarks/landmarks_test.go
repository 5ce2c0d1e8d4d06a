package landmarks_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"face-metrics/internal/landmarks"
	"face-metrics/internal/landmarks/landmarkstest"
	"face-metrics/pkg/geometry"
)

// TestExtractUsesMapping ensures every mapped name is read from its sequence and index.
func TestExtractUsesMapping(t *testing.T) {
	det := landmarkstest.Detection()

	store, err := landmarks.Extract(det)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if store.Len() != len(landmarks.Mapping) {
		t.Fatalf("expected %d points, got %d", len(landmarks.Mapping), store.Len())
	}
	for name, want := range landmarkstest.BasePoints {
		got, err := store.Get(name)
		if err != nil {
			t.Fatalf("Get(%s) returned error: %v", name, err)
		}
		if got != want {
			t.Errorf("%s: expected %v, got %v", name, want, got)
		}
	}
}

// TestExtractMirrorsIris ensures left/right are swapped between the model and the store.
func TestExtractMirrorsIris(t *testing.T) {
	det := &landmarks.Detection{Annotations: map[string][]geometry.Point2D{}}
	for _, m := range landmarks.Mapping {
		seq := det.Annotations[m.Source.Sequence]
		for len(seq) <= m.Source.Index {
			seq = append(seq, geometry.Point2D{})
		}
		det.Annotations[m.Source.Sequence] = seq
	}
	det.Annotations[landmarks.SeqRightEyeIris][0] = geometry.NewPoint2D(1, 2)

	store, err := landmarks.Extract(det)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	got, _ := store.Get(landmarks.LeftIris)
	if got != geometry.NewPoint2D(1, 2) {
		t.Fatalf("expected leftIris from rightEyeIris[0], got %v", got)
	}
}

// TestExtractMissingSequence ensures an absent sequence aborts extraction.
func TestExtractMissingSequence(t *testing.T) {
	det := landmarkstest.Detection()
	delete(det.Annotations, landmarks.SeqSilhouette)

	_, err := landmarks.Extract(det)

	var ierr *landmarks.InputExtractionError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected InputExtractionError, got %v", err)
	}
	if ierr.Sequence != landmarks.SeqSilhouette || ierr.Length != -1 {
		t.Fatalf("unexpected error detail: %+v", ierr)
	}
}

// TestExtractShortSequence ensures a sequence shorter than the required index
// aborts extraction at the first mapped point it cannot reach.
func TestExtractShortSequence(t *testing.T) {
	det := landmarkstest.Detection()
	det.Annotations[landmarks.SeqLipsUpperOuter] = det.Annotations[landmarks.SeqLipsUpperOuter][:10]

	_, err := landmarks.Extract(det)

	var ierr *landmarks.InputExtractionError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected InputExtractionError, got %v", err)
	}
	if ierr.Point != landmarks.RightLipCorner || ierr.Index != 10 || ierr.Length != 10 {
		t.Fatalf("unexpected error detail: %+v", ierr)
	}
}

// TestStoreMissingPoint ensures lookups of unknown names fail with MissingPointError.
func TestStoreMissingPoint(t *testing.T) {
	store := landmarks.NewStore()

	_, err := store.Lookup("nowhere")

	var merr *landmarks.MissingPointError
	if !errors.As(err, &merr) || merr.Name != "nowhere" {
		t.Fatalf("expected MissingPointError, got %v", err)
	}
}

// TestStoreDerivedFlag ensures derived registrations are tracked separately.
func TestStoreDerivedFlag(t *testing.T) {
	store := landmarks.NewStore()
	store.Set("a", geometry.NewPoint2D(1, 1))
	store.SetDerived("b", geometry.NewPoint2D(2, 2))

	if store.IsDerived("a") || !store.IsDerived("b") {
		t.Fatal("derived flags not tracked")
	}
	clone := store.Clone()
	clone.Set("a", geometry.NewPoint2D(9, 9))
	if p, _ := store.Get("a"); p != geometry.NewPoint2D(1, 1) {
		t.Fatal("Clone shares state with the original")
	}
}

// TestFileDetectorSingleAndList ensures both dump layouts decode and z is dropped.
func TestFileDetectorSingleAndList(t *testing.T) {
	dir := t.TempDir()
	single := filepath.Join(dir, "single.json")
	list := filepath.Join(dir, "list.json")
	body := `{"annotations":{"noseBottom":[[10.5,20.25,-3.0]]}}`
	if err := os.WriteFile(single, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(list, []byte("["+body+","+body+"]"), 0o644); err != nil {
		t.Fatal(err)
	}

	one, err := landmarks.FileDetector{Path: single}.Detect(context.Background(), nil)
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if len(one) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(one))
	}
	if got := one[0].Annotations[landmarks.SeqNoseBottom][0]; got != geometry.NewPoint2D(10.5, 20.25) {
		t.Fatalf("unexpected point %v", got)
	}

	two, err := landmarks.FileDetector{Path: list}.Detect(context.Background(), nil)
	if err != nil {
		t.Fatalf("Detect returned error: %v", err)
	}
	if len(two) != 2 {
		t.Fatalf("expected 2 detections, got %d", len(two))
	}
}

// TestFirstWithoutFaces ensures an empty detection list reports ErrNoFace.
func TestFirstWithoutFaces(t *testing.T) {
	if _, err := landmarks.First(nil); !errors.Is(err, landmarks.ErrNoFace) {
		t.Fatalf("expected ErrNoFace, got %v", err)
	}
}

// TestSidecarPath ensures the dump sits next to the image.
func TestSidecarPath(t *testing.T) {
	if got := landmarks.SidecarPath("/photos/face.jpeg"); got != "/photos/face.landmarks.json" {
		t.Errorf("SidecarPath = %q", got)
	}
}
