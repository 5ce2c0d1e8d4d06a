package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"face-metrics/internal/app"
	"face-metrics/internal/interaction"
	"face-metrics/internal/landmarks"
	"face-metrics/internal/reference"
	"face-metrics/pkg/geometry"
)

// pointMove is one --move flag.
type pointMove struct {
	Name string
	To   geometry.Point2D
}

// parseMove parses "name=x,y".
func parseMove(s string) (pointMove, error) {
	name, coords, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return pointMove{}, fmt.Errorf("move %q: want name=x,y", s)
	}
	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return pointMove{}, fmt.Errorf("move %q: want name=x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return pointMove{}, fmt.Errorf("move %q: x: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return pointMove{}, fmt.Errorf("move %q: y: %w", s, err)
	}
	return pointMove{Name: strings.TrimSpace(name), To: geometry.NewPoint2D(x, y)}, nil
}

// analyzeImage runs a session over imagePath, applies the --move flags and
// returns the analysis.
func analyzeImage(ctx context.Context, imagePath string, surface interaction.Surface) (*app.Analysis, error) {
	parsed := make([]pointMove, 0, len(moves))
	for _, m := range moves {
		pm, err := parseMove(m)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, pm)
	}

	session := app.NewSession(reference.LoadOrEmpty(referencePath))
	session.PickRadiusScale = cfg.PickRadiusScale
	session.ActiveMetrics = metricKeys

	det := landmarks.FileDetector{Path: landmarksPath}
	if det.Path == "" {
		det.Path = landmarks.SidecarPath(imagePath)
	}

	a, err := session.Analyze(ctx, imagePath, det, surface)
	if err != nil {
		if app.IsNoFace(err) {
			return nil, fmt.Errorf("%s: no face detected", imagePath)
		}
		return nil, err
	}
	for _, pm := range parsed {
		if err := a.Controller.Move(pm.Name, pm.To); err != nil {
			return nil, err
		}
	}
	return a, nil
}
