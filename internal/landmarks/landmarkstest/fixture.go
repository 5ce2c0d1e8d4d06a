// Package landmarkstest provides a synthetic frontal face for tests.
package landmarkstest

import (
	"face-metrics/internal/landmarks"
	"face-metrics/pkg/geometry"
)

// ImageSize is the size of the image the fixture face sits in.
var ImageSize = geometry.NewSize(400, 500)

// BasePoints is a plausible upright face in a 400x500 image.
var BasePoints = map[string]geometry.Point2D{
	landmarks.LeftIris:            {X: 150, Y: 200},
	landmarks.RightIris:           {X: 250, Y: 200},
	landmarks.LeftLateralCanthus:  {X: 125, Y: 199},
	landmarks.LeftMedialCanthus:   {X: 175, Y: 203},
	landmarks.RightLateralCanthus: {X: 275, Y: 199},
	landmarks.RightMedialCanthus:  {X: 225, Y: 203},
	landmarks.LeftEyeUpper:        {X: 150, Y: 190},
	landmarks.LeftEyeLower:        {X: 150, Y: 210},
	landmarks.RightEyeUpper:       {X: 250, Y: 191},
	landmarks.RightEyeLower:       {X: 250, Y: 210},
	landmarks.LeftEyebrow:         {X: 140, Y: 170},
	landmarks.RightEyebrow:        {X: 260, Y: 171},
	landmarks.LeftZygo:            {X: 100, Y: 230},
	landmarks.RightZygo:           {X: 300, Y: 232},
	landmarks.NoseBottom:          {X: 200, Y: 280},
	landmarks.LeftNoseCorner:      {X: 180, Y: 275},
	landmarks.RightNoseCorner:     {X: 220, Y: 276},
	landmarks.LeftCupidBow:        {X: 190, Y: 305},
	landmarks.LipSeparation:       {X: 200, Y: 318},
	landmarks.RightCupidBow:       {X: 210, Y: 306},
	landmarks.LeftLipCorner:       {X: 165, Y: 318},
	landmarks.RightLipCorner:      {X: 235, Y: 319},
	landmarks.LowerLip:            {X: 200, Y: 335},
	landmarks.UpperLip:            {X: 200, Y: 303},
	landmarks.LeftGonial:          {X: 125, Y: 340},
	landmarks.RightGonial:         {X: 275, Y: 341},
	landmarks.ChinLeft:            {X: 185, Y: 390},
	landmarks.ChinTip:             {X: 200, Y: 395},
	landmarks.ChinRight:           {X: 215, Y: 391},
}

// Iris rings: index 0 is the center, 1..4 the extreme points.
var (
	RightEyeIris = []geometry.Point2D{{X: 150, Y: 200}, {X: 158, Y: 200}, {X: 150, Y: 192}, {X: 142, Y: 200}, {X: 150, Y: 208}}
	LeftEyeIris  = []geometry.Point2D{{X: 250, Y: 200}, {X: 242, Y: 200}, {X: 250, Y: 192}, {X: 258, Y: 200}, {X: 250, Y: 208}}
)

// Detection builds a detection whose extraction yields BasePoints. Unmapped
// sequence slots are filled with the image center.
func Detection() *landmarks.Detection {
	filler := geometry.NewPoint2D(ImageSize.Width/2, ImageSize.Height/2)
	ann := make(map[string][]geometry.Point2D)

	for _, m := range landmarks.Mapping {
		seq := ann[m.Source.Sequence]
		for len(seq) <= m.Source.Index {
			seq = append(seq, filler)
		}
		seq[m.Source.Index] = BasePoints[m.Name]
		ann[m.Source.Sequence] = seq
	}

	ann[landmarks.SeqRightEyeIris] = append([]geometry.Point2D(nil), RightEyeIris...)
	ann[landmarks.SeqLeftEyeIris] = append([]geometry.Point2D(nil), LeftEyeIris...)

	return &landmarks.Detection{Annotations: ann}
}

// Store returns a store holding BasePoints.
func Store() *landmarks.Store {
	s := landmarks.NewStore()
	for name, p := range BasePoints {
		s.Set(name, p)
	}
	return s
}
