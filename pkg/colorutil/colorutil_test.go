package colorutil

import (
	"image/color"
	"math"
	"testing"
)

func TestRGBToHSVPrimaries(t *testing.T) {
	cases := []struct {
		name    string
		r, g, b float64
		h       float64
	}{
		{"red", 255, 0, 0, 0},
		{"green", 0, 255, 0, 60},
		{"blue", 0, 0, 255, 120},
	}

	for _, c := range cases {
		h, s, v := RGBToHSV(c.r, c.g, c.b)
		if math.Abs(h-c.h) > 1e-9 || s != 255 || v != 255 {
			t.Errorf("%s: expected (%v, 255, 255), got (%v, %v, %v)", c.name, c.h, h, s, v)
		}
	}
}

func TestIrisColorName(t *testing.T) {
	cases := []struct {
		c    color.RGBA
		want string
	}{
		{color.RGBA{R: 20, G: 15, B: 10, A: 255}, "dark brown"},
		{color.RGBA{R: 60, G: 110, B: 200, A: 255}, "blue"},
		{color.RGBA{R: 70, G: 150, B: 80, A: 255}, "green"},
		{color.RGBA{R: 140, G: 90, B: 40, A: 255}, "brown"},
		{color.RGBA{R: 120, G: 120, B: 125, A: 255}, "gray"},
	}

	for _, c := range cases {
		if got := IrisColorName(c.c); got != c.want {
			t.Errorf("IrisColorName(%v) failed: expected %q, got %q", c.c, c.want, got)
		}
	}
}
