package plotbox

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
)

const (
	paletteColors = 255
	contourLevels = 20
	// dB floors more than this far below the grid maximum are clamped
	// so a single -Inf cell cannot flatten the color scale.
	dynamicRange = 120.0
)

// denseGrid adapts a dense matrix to plotter.GridXYZ. z is indexed
// row-first, rows following y.
type denseGrid struct {
	x []float64
	y []float64
	z [][]float64
}

func (g *denseGrid) Dims() (int, int)   { return len(g.x), len(g.y) }
func (g *denseGrid) X(c int) float64    { return g.x[c] }
func (g *denseGrid) Y(r int) float64    { return g.y[r] }
func (g *denseGrid) Z(c, r int) float64 { return g.z[r][c] }

func newDenseGrid(x, y []float64, z [][]float64) (*denseGrid, error) {
	if len(z) != len(y) {
		return nil, errors.Errorf("grid has %d rows for %d y values", len(z), len(y))
	}
	for i, row := range z {
		if len(row) != len(x) {
			return nil, errors.Errorf("grid row %d has %d columns for %d x values", i, len(row), len(x))
		}
	}

	return &denseGrid{x: x, y: y, z: z}, nil
}

func (g *denseGrid) bounds() (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, row := range g.z {
		for _, v := range row {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				continue
			}
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}
	if min > max {
		min, max = 0, 1
	}
	if min == max {
		max = min + 1
	}

	return min, max
}

// clampToFloor replaces values (notably -Inf from zero magnitudes in
// dB scale) below max-dynamicRange with that floor, in place.
func (g *denseGrid) clampToFloor() {
	_, max := g.bounds()
	floor := max - dynamicRange
	for _, row := range g.z {
		for i, v := range row {
			if v < floor || math.IsNaN(v) {
				row[i] = floor
			}
		}
	}
}

// heatPanel builds a heatmap panel over the grid. A non-nil scale
// fixes the color range, which keeps animation frames comparable.
func heatPanel(g *denseGrid, title, xLabel, yLabel string, scale *Range) *plot.Plot {
	min, max := g.bounds()
	if scale != nil {
		min, max = scale.Min, scale.Max
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(min)
	cm.SetMax(max)

	h := plotter.NewHeatMap(g, cm.Palette(paletteColors))
	h.Min = min
	h.Max = max

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(h)

	return p
}

// contourPanel builds a filled-level contour panel over the grid.
func contourPanel(g *denseGrid, title, xLabel, yLabel string) *plot.Plot {
	min, max := g.bounds()

	cm := moreland.SmoothBlueRed()
	cm.SetMin(min)
	cm.SetMax(max)

	levels := make([]float64, contourLevels)
	step := (max - min) / float64(contourLevels+1)
	for i := range levels {
		levels[i] = min + float64(i+1)*step
	}

	c := plotter.NewContour(g, levels, cm.Palette(paletteColors))

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(c)

	return p
}
