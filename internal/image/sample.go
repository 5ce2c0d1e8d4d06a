package image

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"
)

// CVSampler crops and averages image regions with OpenCV.
type CVSampler struct{}

// SampleRegion returns the crop of r, clipped to the image, and its mean color.
func (CVSampler) SampleRegion(img image.Image, r image.Rectangle) (image.Image, color.RGBA, error) {
	rgba := ToRGBA(img)
	r = r.Sub(img.Bounds().Min).Intersect(rgba.Bounds())
	if r.Empty() {
		return nil, color.RGBA{}, fmt.Errorf("region %v outside image", r)
	}

	bounds := rgba.Bounds()
	mat, err := gocv.NewMatFromBytes(bounds.Dy(), bounds.Dx(), gocv.MatTypeCV8UC4, rgba.Pix)
	if err != nil {
		return nil, color.RGBA{}, fmt.Errorf("convert image: %w", err)
	}
	defer mat.Close()

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(mat, &bgr, gocv.ColorRGBAToBGR)

	region := bgr.Region(r)
	defer region.Close()

	mean := gocv.NewMat()
	defer mean.Close()
	stddev := gocv.NewMat()
	defer stddev.Close()
	gocv.MeanStdDev(region, &mean, &stddev)
	if mean.Empty() || mean.Rows() < 3 {
		return nil, color.RGBA{}, fmt.Errorf("no mean for region %v", r)
	}

	// mean is a 3x1 column in BGR order.
	avg := color.RGBA{
		R: channel(mean.GetDoubleAt(2, 0)),
		G: channel(mean.GetDoubleAt(1, 0)),
		B: channel(mean.GetDoubleAt(0, 0)),
		A: 255,
	}

	// A region shares its parent's stride, so copy it out before converting.
	cropMat := region.Clone()
	defer cropMat.Close()
	crop, err := cropMat.ToImage()
	if err != nil {
		return nil, color.RGBA{}, fmt.Errorf("crop region %v: %w", r, err)
	}
	return crop, avg, nil
}

func channel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
