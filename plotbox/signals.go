package plotbox

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
)

// SignalIO plots the input and output signals of a system as a column
// of two panels sharing the time axis.
func SignalIO(t, input, output []float64, opts PlotOptions) (*Figure, error) {
	inPanel, err := linePanel(t, input, opts.title(0, "Input"), realColor, opts)
	if err != nil {
		return nil, errors.Wrap(err, "plotting input")
	}
	outPanel, err := linePanel(t, output, opts.title(1, "Output"), realColor, opts)
	if err != nil {
		return nil, errors.Wrap(err, "plotting output")
	}

	return newFigure([][]*plot.Plot{{inPanel}, {outPanel}})
}

// SignalIOComplex plots complex input and output signals as a 2x2
// grid: real parts in the left column, imaginary parts in the right.
func SignalIOComplex(t []float64, input, output []complex128, opts PlotOptions) (*Figure, error) {
	inRe, inIm := splitComplex(input)
	outRe, outIm := splitComplex(output)

	panels := [][]*plot.Plot{make([]*plot.Plot, 2), make([]*plot.Plot, 2)}
	for _, part := range []struct {
		row, col int
		sig      []float64
		title    string
		color    color.Color
	}{
		{row: 0, col: 0, sig: inRe, title: opts.title(0, "Input - real part"), color: realColor},
		{row: 0, col: 1, sig: inIm, title: opts.title(1, "Input - imaginary part"), color: imagColor},
		{row: 1, col: 0, sig: outRe, title: opts.title(2, "Output - real part"), color: realColor},
		{row: 1, col: 1, sig: outIm, title: opts.title(3, "Output - imaginary part"), color: imagColor},
	} {
		p, err := linePanel(t, part.sig, part.title, part.color, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "plotting %s", part.title)
		}
		panels[part.row][part.col] = p
	}

	return newFigure(panels)
}

// TimeSignal plots a collection of signals sharing a time base, one
// panel per signal.
func TimeSignal(t []float64, signals [][]float64, opts PlotOptions) (*Figure, error) {
	if len(signals) == 0 {
		return nil, errors.New("no signals to plot")
	}

	panels := make([][]*plot.Plot, len(signals))
	for i, sig := range signals {
		p, err := linePanel(t, sig, opts.title(i, fmt.Sprintf("Signal %d", i+1)), realColor, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "plotting signal %d", i+1)
		}
		panels[i] = []*plot.Plot{p}
	}

	return newFigure(panels)
}

// Collection plots a rectangular collection of signal groups: one
// column per group, one row per signal within a group. Titles apply
// column-first.
func Collection(t []float64, coll [][][]float64, opts PlotOptions) (*Figure, error) {
	if len(coll) == 0 || len(coll[0]) == 0 {
		return nil, errors.New("no signals to plot")
	}

	rows := len(coll[0])
	for i, group := range coll {
		if len(group) != rows {
			return nil, errors.Errorf("group %d has %d signals, expected %d", i, len(group), rows)
		}
	}

	panels := make([][]*plot.Plot, rows)
	for r := range panels {
		panels[r] = make([]*plot.Plot, len(coll))
	}

	for c, group := range coll {
		for r, sig := range group {
			def := fmt.Sprintf("Group %d - signal %d", c+1, r+1)
			p, err := linePanel(t, sig, opts.title(c*rows+r, def), realColor, opts)
			if err != nil {
				return nil, errors.Wrapf(err, "plotting group %d signal %d", c+1, r+1)
			}
			panels[r][c] = p
		}
	}

	return newFigure(panels)
}

func splitComplex(sig []complex128) ([]float64, []float64) {
	re := make([]float64, len(sig))
	im := make([]float64, len(sig))
	for i, c := range sig {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return re, im
}
