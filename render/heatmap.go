package render

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrTooSmall indicates a matrix too small to drop its first row and column
// before rendering.
var ErrTooSmall = errors.New("render: matrix must be at least 2x2 to render")

// legendSteps is the number of swatches in the palette legend. The heat map
// itself uses the full Options.Levels resolution.
const legendSteps = 12

// Options configures HeatMap.
//
// Fields:
//   - Levels — number of discrete palette levels for the heat map.
//   - Size   — width and height of the (square) output figure.
//
// Zero or negative fields fall back to the defaults.
type Options struct {
	Levels int
	Size   vg.Length
}

// DefaultOptions mirrors the original figure: a 4×4-inch panel with a
// near-continuous 255-level jet ramp.
func DefaultOptions() Options {
	return Options{Levels: 255, Size: 4 * vg.Inch}
}

// grid adapts a mat.Matrix to plotter.GridXYZ with unit-spaced cells.
// Rows are flipped so row 0 renders at the top, image-style.
type grid struct {
	m mat.Matrix
}

func (g grid) Dims() (c, r int) {
	rr, cc := g.m.Dims()
	return cc, rr
}

func (g grid) X(c int) float64 { return float64(c) }

func (g grid) Y(r int) float64 { return float64(r) }

func (g grid) Z(c, r int) float64 {
	rr, _ := g.m.Dims()
	return g.m.At(rr-1-r, c)
}

// HeatMap renders log1p(m[1:,1:]) as a jet-colored heat map with a palette
// legend and saves it as PNG at path. If path already exists, nothing is
// rendered and HeatMap returns (false, nil); reruns never overwrite prior
// images. On success it returns (true, nil).
//
// Errors: ErrTooSmall for matrices under 2×2, or any render/filesystem
// failure.
func HeatMap(path string, m mat.Matrix, opts *Options) (bool, error) {
	o := DefaultOptions()
	if opts != nil {
		if opts.Levels > 1 {
			o.Levels = opts.Levels
		}
		if opts.Size > 0 {
			o.Size = opts.Size
		}
	}

	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("render: stat %s: %w", path, err)
	}

	r, c := m.Dims()
	if r < 2 || c < 2 {
		return false, ErrTooSmall
	}

	// Log-scale a trimmed copy; the first row and column are index cells.
	z := mat.NewDense(r-1, c-1, nil)
	for i := 1; i < r; i++ {
		for j := 1; j < c; j++ {
			z.Set(i-1, j-1, math.Log1p(m.At(i, j)))
		}
	}

	h := plotter.NewHeatMap(grid{m: z}, Jet(o.Levels))

	p := plot.New()
	p.HideAxes() // cell indices, not coordinates
	p.Add(h)
	addScaleLegend(p, h.Min, h.Max)

	if err := p.Save(o.Size, o.Size, path); err != nil {
		return false, fmt.Errorf("render: save %s: %w", path, err)
	}

	return true, nil
}

// addScaleLegend attaches a coarse palette legend labelled with the data
// range, the plot-native stand-in for a colorbar.
func addScaleLegend(p *plot.Plot, min, max float64) {
	thumbs := plotter.PaletteThumbnailers(Jet(legendSteps))
	for i := len(thumbs) - 1; i >= 0; i-- {
		var name string
		switch i {
		case 0:
			name = fmt.Sprintf("%.2f", min)
		case len(thumbs) - 1:
			name = fmt.Sprintf("%.2f", max)
		}
		p.Legend.Add(name, thumbs[i])
	}
	p.Legend.Top = true
}
