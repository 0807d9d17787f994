package plotbox

import (
	"math/cmplx"

	"github.com/d-bouvier/gobox/mathbox"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
)

// KernelStyle selects how a two-dimensional kernel is rendered.
type KernelStyle string

const (
	StyleHeatMap KernelStyle = "heatmap"
	StyleContour KernelStyle = "contour"
)

func (s KernelStyle) Validate() error {
	switch s {
	case StyleHeatMap, StyleContour:
		return nil
	default:
		return errors.Errorf("invalid kernel style '%s'", string(s))
	}
}

// TimeKernel plots a first-order time kernel (a linear filter impulse
// response) as a line panel.
func TimeKernel(t, kernel []float64, opts PlotOptions) (*Figure, error) {
	p, err := linePanel(t, kernel, opts.title(0, "Time kernel of order 1"), realColor, opts)
	if err != nil {
		return nil, errors.Wrap(err, "plotting kernel")
	}

	return newFigure([][]*plot.Plot{{p}})
}

// TimeKernel2D plots a second-order time kernel over the (t, t) plane
// in the requested style.
func TimeKernel2D(t []float64, kernel [][]float64, style KernelStyle, opts PlotOptions) (*Figure, error) {
	if style == "" {
		style = StyleHeatMap
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}

	grid, err := newDenseGrid(t, t, kernel)
	if err != nil {
		return nil, errors.Wrap(err, "building kernel grid")
	}

	title := opts.title(0, "Time kernel of order 2")
	var p *plot.Plot
	if style == StyleContour {
		p = contourPanel(grid, title, "Time (s)", "Time (s)")
	} else {
		p = heatPanel(grid, title, "Time (s)", "Time (s)", nil)
	}

	return newFigure([][]*plot.Plot{{p}})
}

// FreqKernelOptions configures the transfer kernel templates.
type FreqKernelOptions struct {
	PlotOptions
	// Linear plots raw magnitude instead of dB.
	Linear bool
	// KeepWrapped skips phase unwrapping.
	KeepWrapped bool
	// Style selects the rendering of two-dimensional kernels.
	Style KernelStyle
}

// FreqKernel plots a first-order transfer kernel as magnitude and
// phase panels over frequency.
func FreqKernel(f []float64, kernel []complex128, opts FreqKernelOptions) (*Figure, error) {
	if len(f) != len(kernel) {
		return nil, errors.Errorf("length mismatch: %d frequencies and %d coefficients", len(f), len(kernel))
	}

	mag := make([]float64, len(kernel))
	phase := make([]float64, len(kernel))
	for i, c := range kernel {
		mag[i] = cmplx.Abs(c)
		phase[i] = cmplx.Phase(c)
	}

	magTitle := "Magnitude"
	if !opts.Linear {
		var err error
		if mag, err = mathbox.SafeDB(mag, ones(len(mag))); err != nil {
			return nil, errors.Wrap(err, "converting magnitude to dB")
		}
		magTitle += " (dB)"
	}
	if !opts.KeepWrapped {
		mathbox.Unwrap(phase)
	}

	magPanel, err := linePanel(f, mag, opts.title(0, magTitle), realColor, opts.PlotOptions)
	if err != nil {
		return nil, errors.Wrap(err, "plotting magnitude")
	}
	magPanel.X.Label.Text = "Frequency (Hz)"
	magPanel.Y.Label.Text = magTitle

	phasePanel, err := linePanel(f, phase, opts.title(1, "Phase (radians)"), realColor, opts.PlotOptions)
	if err != nil {
		return nil, errors.Wrap(err, "plotting phase")
	}
	phasePanel.X.Label.Text = "Frequency (Hz)"
	phasePanel.Y.Label.Text = "Phase (radians)"

	return newFigure([][]*plot.Plot{{magPanel}, {phasePanel}})
}

// FreqKernel2D plots a second-order transfer kernel as magnitude and
// phase panels over the (f, f) plane.
func FreqKernel2D(f []float64, kernel [][]complex128, opts FreqKernelOptions) (*Figure, error) {
	style := opts.Style
	if style == "" {
		style = StyleHeatMap
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}

	mag := make([][]float64, len(kernel))
	phase := make([][]float64, len(kernel))
	for i, row := range kernel {
		mag[i] = make([]float64, len(row))
		phase[i] = make([]float64, len(row))
		for j, c := range row {
			if opts.Linear {
				mag[i][j] = cmplx.Abs(c)
			} else {
				mag[i][j] = mathbox.SafeDBScalar(cmplx.Abs(c), 1)
			}
			phase[i][j] = cmplx.Phase(c)
		}
		if !opts.KeepWrapped {
			mathbox.Unwrap(phase[i])
		}
	}

	magTitle := "Magnitude"
	if !opts.Linear {
		magTitle += " (dB)"
	}

	magGrid, err := newDenseGrid(f, f, mag)
	if err != nil {
		return nil, errors.Wrap(err, "building magnitude grid")
	}
	if !opts.Linear {
		magGrid.clampToFloor()
	}
	phaseGrid, err := newDenseGrid(f, f, phase)
	if err != nil {
		return nil, errors.Wrap(err, "building phase grid")
	}

	var magPanel, phasePanel *plot.Plot
	if style == StyleContour {
		magPanel = contourPanel(magGrid, opts.title(0, magTitle), "Frequency (Hz)", "Frequency (Hz)")
		phasePanel = contourPanel(phaseGrid, opts.title(1, "Phase (radians)"), "Frequency (Hz)", "Frequency (Hz)")
	} else {
		magPanel = heatPanel(magGrid, opts.title(0, magTitle), "Frequency (Hz)", "Frequency (Hz)", nil)
		phasePanel = heatPanel(phaseGrid, opts.title(1, "Phase (radians)"), "Frequency (Hz)", "Frequency (Hz)", nil)
	}

	return newFigure([][]*plot.Plot{{magPanel}, {phasePanel}})
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}
