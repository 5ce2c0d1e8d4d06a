package landmarks

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"face-metrics/pkg/geometry"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNoFace is returned when a detector finds no face in the image.
var ErrNoFace = errors.New("no face detected")

// InputExtractionError reports a detection that lacks a sequence or index
// required by the point mapping. It is fatal for the whole analysis.
type InputExtractionError struct {
	Point    string
	Sequence string
	Index    int
	Length   int // Length of the sequence, -1 if absent
}

func (e *InputExtractionError) Error() string {
	if e.Length < 0 {
		return fmt.Sprintf("extract %s: detection has no %q sequence", e.Point, e.Sequence)
	}
	return fmt.Sprintf("extract %s: %q has %d points, need index %d", e.Point, e.Sequence, e.Length, e.Index)
}

// Detection is one face as produced by the face-mesh model: named, ordered
// point sequences.
type Detection struct {
	Annotations map[string][]geometry.Point2D
}

// Sequence returns the named sequence and whether it exists.
func (d *Detection) Sequence(name string) ([]geometry.Point2D, bool) {
	seq, ok := d.Annotations[name]
	return seq, ok
}

// Extract builds a Store from a detection using Mapping.
func Extract(d *Detection) (*Store, error) {
	if d == nil {
		return nil, &InputExtractionError{Point: Mapping[0].Name, Sequence: Mapping[0].Source.Sequence, Length: -1}
	}
	store := NewStore()
	for _, m := range Mapping {
		seq, ok := d.Sequence(m.Source.Sequence)
		if !ok {
			return nil, &InputExtractionError{Point: m.Name, Sequence: m.Source.Sequence, Index: m.Source.Index, Length: -1}
		}
		if m.Source.Index >= len(seq) {
			return nil, &InputExtractionError{Point: m.Name, Sequence: m.Source.Sequence, Index: m.Source.Index, Length: len(seq)}
		}
		store.Set(m.Name, seq[m.Source.Index])
	}
	return store, nil
}

// Detector finds faces in an image. The face-mesh model behind it runs
// outside this module.
type Detector interface {
	Detect(ctx context.Context, img image.Image) ([]Detection, error)
}

// meshFile is the JSON dump written by the face-mesh model: either a single
// prediction or a list of them, each with an "annotations" object mapping
// sequence names to [x, y] or [x, y, z] arrays.
type meshFile struct {
	Annotations map[string][][]float64 `json:"annotations"`
}

// FileDetector serves detections from a JSON dump of face-mesh predictions.
type FileDetector struct {
	Path string
}

// SidecarPath is where the landmark dump for an image is expected:
// "face.jpg" pairs with "face.landmarks.json".
func SidecarPath(imagePath string) string {
	return strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + ".landmarks.json"
}

// Detect ignores the image and returns the predictions stored in the file.
func (f FileDetector) Detect(ctx context.Context, _ image.Image) ([]Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read landmarks: %w", err)
	}
	return ParseDetections(data)
}

// ParseDetections decodes one prediction object or an array of them.
func ParseDetections(data []byte) ([]Detection, error) {
	var many []meshFile
	if err := json.Unmarshal(data, &many); err != nil {
		var one meshFile
		if err := json.Unmarshal(data, &one); err != nil {
			return nil, fmt.Errorf("failed to decode landmarks: %w", err)
		}
		many = []meshFile{one}
	}

	detections := make([]Detection, 0, len(many))
	for i, mf := range many {
		d := Detection{Annotations: make(map[string][]geometry.Point2D, len(mf.Annotations))}
		for name, coords := range mf.Annotations {
			seq := make([]geometry.Point2D, len(coords))
			for j, c := range coords {
				if len(c) < 2 {
					return nil, fmt.Errorf("prediction %d: %s[%d] has %d coordinates", i, name, j, len(c))
				}
				seq[j] = geometry.NewPoint2D(c[0], c[1])
			}
			d.Annotations[name] = seq
		}
		detections = append(detections, d)
	}
	return detections, nil
}

// First returns the first detection or ErrNoFace.
func First(detections []Detection) (*Detection, error) {
	if len(detections) == 0 {
		return nil, ErrNoFace
	}
	return &detections[0], nil
}
