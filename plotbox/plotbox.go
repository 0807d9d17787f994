// Package plotbox provides figure templates for the signals the
// toolbox works with: input/output pairs, signal collections,
// spectrograms, and time or transfer kernels. A Figure is a grid of
// aligned panels that renders to png (default), pdf, svg or jpg, and
// is written to disk by savebox.SaveFigure.
package plotbox

import (
	"image/color"
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

const (
	panelWidth  = 5 * vg.Inch
	panelHeight = 3 * vg.Inch
	tilePad     = 2 * vg.Millimeter
)

var (
	realColor = color.RGBA{B: 255, A: 255}
	imagColor = color.RGBA{R: 255, A: 255}
)

// Range bounds one axis of a panel.
type Range struct {
	Min float64
	Max float64
}

// PlotOptions carries the common optional settings of the figure
// templates. The zero value produces each template's defaults.
type PlotOptions struct {
	// Titles overrides the default panel titles, in panel order.
	Titles []string
	// XLim and YLim fix the axis limits of every panel; autoscaling is
	// used when nil.
	XLim *Range
	YLim *Range
}

func (opts PlotOptions) title(i int, def string) string {
	if i < len(opts.Titles) {
		return opts.Titles[i]
	}

	return def
}

func (opts PlotOptions) apply(p *plot.Plot) {
	if opts.XLim != nil {
		p.X.Min = opts.XLim.Min
		p.X.Max = opts.XLim.Max
	}
	if opts.YLim != nil {
		p.Y.Min = opts.YLim.Min
		p.Y.Max = opts.YLim.Max
	}
}

// Figure is a grid of aligned panels. Empty cells are permitted and
// left blank.
type Figure struct {
	panels [][]*plot.Plot
	rows   int
	cols   int
	width  vg.Length
	height vg.Length
}

func newFigure(panels [][]*plot.Plot) (*Figure, error) {
	if len(panels) == 0 {
		return nil, errors.New("figure has no panels")
	}

	cols := len(panels[0])
	for _, row := range panels {
		if len(row) != cols {
			return nil, errors.New("figure panel grid is ragged")
		}
	}
	if cols == 0 {
		return nil, errors.New("figure has no panels")
	}

	return &Figure{
		panels: panels,
		rows:   len(panels),
		cols:   cols,
		width:  vg.Length(cols) * panelWidth,
		height: vg.Length(len(panels)) * panelHeight,
	}, nil
}

// Panels exposes the underlying plots so callers can adjust styling
// before saving.
func (f *Figure) Panels() [][]*plot.Plot { return f.panels }

func (f *Figure) draw(dc draw.Canvas) {
	tiles := draw.Tiles{
		Rows: f.rows,
		Cols: f.cols,
		PadX: tilePad, PadY: tilePad,
		PadTop: tilePad, PadBottom: tilePad,
		PadLeft: tilePad, PadRight: tilePad,
	}

	canvases := plot.Align(f.panels, tiles, dc)
	for i := range f.panels {
		for j, p := range f.panels[i] {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}
}

// WriteImage renders the figure in the requested format (png, pdf, svg
// or jpg). It implements savebox.FigureWriter.
func (f *Figure) WriteImage(w io.Writer, format string) error {
	switch format {
	case "png":
		c := vgimg.New(f.width, f.height)
		f.draw(draw.New(c))
		_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
		return errors.Wrap(err, "writing png")
	case "jpg":
		c := vgimg.New(f.width, f.height)
		f.draw(draw.New(c))
		_, err := vgimg.JpegCanvas{Canvas: c}.WriteTo(w)
		return errors.Wrap(err, "writing jpg")
	case "pdf":
		c := vgpdf.New(f.width, f.height)
		f.draw(draw.New(c))
		_, err := c.WriteTo(w)
		return errors.Wrap(err, "writing pdf")
	case "svg":
		c := vgsvg.New(f.width, f.height)
		f.draw(draw.New(c))
		_, err := c.WriteTo(w)
		return errors.Wrap(err, "writing svg")
	default:
		return errors.Errorf("unsupported figure format '%s'", format)
	}
}

func linePanel(t, sig []float64, title string, c color.Color, opts PlotOptions) (*plot.Plot, error) {
	if len(t) != len(sig) {
		return nil, errors.Errorf("length mismatch: %d time points and %d samples", len(t), len(sig))
	}
	if len(t) == 0 {
		return nil, errors.New("cannot plot an empty signal")
	}

	xys := make(plotter.XYs, len(t))
	for i := range t {
		xys[i].X = t[i]
		xys[i].Y = sig[i]
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, errors.Wrap(err, "building line")
	}
	line.Color = c

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Amplitude"
	p.Add(plotter.NewGrid(), line)
	opts.apply(p)

	return p, nil
}
