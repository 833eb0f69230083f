package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
)

// jetAnchors are the control points of the classic jet ramp:
// dark blue → blue → cyan → yellow → red → dark red.
var jetAnchors = []struct {
	pos float64
	col colorful.Color
}{
	{0.000, colorful.Color{R: 0, G: 0, B: 0.5}},
	{0.125, colorful.Color{R: 0, G: 0, B: 1}},
	{0.375, colorful.Color{R: 0, G: 1, B: 1}},
	{0.625, colorful.Color{R: 1, G: 1, B: 0}},
	{0.875, colorful.Color{R: 1, G: 0, B: 0}},
	{1.000, colorful.Color{R: 0.5, G: 0, B: 0}},
}

// jetPalette implements palette.Palette over a precomputed color slice.
type jetPalette []color.Color

// Colors returns the palette colors, darkest-blue first.
func (p jetPalette) Colors() []color.Color { return p }

// Jet returns an n-color palette sampling the jet ramp at evenly spaced
// positions. n is clamped to at least 2 so both ends of the ramp appear.
func Jet(n int) palette.Palette {
	if n < 2 {
		n = 2
	}
	cs := make([]color.Color, n)
	for i := range cs {
		cs[i] = jetAt(float64(i) / float64(n-1))
	}
	return jetPalette(cs)
}

// jetAt linearly blends between the two anchors surrounding position
// t ∈ [0,1].
func jetAt(t float64) color.Color {
	if t <= 0 {
		return jetAnchors[0].col
	}
	for s := 0; s < len(jetAnchors)-1; s++ {
		a, b := jetAnchors[s], jetAnchors[s+1]
		if t <= b.pos {
			f := (t - a.pos) / (b.pos - a.pos)
			return a.col.BlendRgb(b.col, f).Clamped()
		}
	}
	return jetAnchors[len(jetAnchors)-1].col
}
