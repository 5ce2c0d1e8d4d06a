package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Assessment colors. Labels pick them up through widget importance, so a
// metric card reads green when perfect and shifts to amber and red as the
// deviation tier grows.
var (
	ColorPerfect   = color.NRGBA{R: 0x2E, G: 0x9D, B: 0x4F, A: 0xFF}
	ColorDeviation = color.NRGBA{R: 0xE0, G: 0x8A, B: 0x00, A: 0xFF}
	ColorSevere    = color.NRGBA{R: 0xE5, G: 0x39, B: 0x35, A: 0xFF}
)

// Card and list sizing. The side panel shows one card per metric next to
// the photo, so cards are packed tighter than the default theme.
const (
	cardPadding      = 3
	cardInnerPadding = 5
	cardTitleText    = 15
	cardBodyText     = 13
	cardLineSpacing  = 2
	listScrollBar    = 10
)

// FaceMetricsTheme tunes the default theme for the metric cards and the
// points list.
type FaceMetricsTheme struct{}

var _ fyne.Theme = (*FaceMetricsTheme)(nil)

func (t *FaceMetricsTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return ColorPerfect
	case theme.ColorNameWarning:
		return ColorDeviation
	case theme.ColorNameError:
		return ColorSevere
	case theme.ColorNamePrimary:
		return ColorSevere // Matches the midface overlay
	case theme.ColorNameSelection:
		// Highlighted row in the points list.
		return color.NRGBA{R: 0x7F, G: 0xFF, B: 0xD4, A: 0x80}
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *FaceMetricsTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *FaceMetricsTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *FaceMetricsTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return cardPadding
	case theme.SizeNameInnerPadding:
		return cardInnerPadding
	case theme.SizeNameSubHeadingText:
		return cardTitleText
	case theme.SizeNameText:
		return cardBodyText
	case theme.SizeNameLineSpacing:
		return cardLineSpacing
	case theme.SizeNameScrollBar:
		return listScrollBar
	default:
		return theme.DefaultTheme().Size(name)
	}
}
