package plotbox

import (
	"image"
	"image/color/palette"
	stddraw "image/draw"
	"image/gif"
	"io"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const defaultFrameInterval = 100 * time.Millisecond

// Animation is an ordered sequence of figures rendered as an animated
// GIF, each frame shown for Interval.
type Animation struct {
	Frames   []*Figure
	Interval time.Duration
}

// AddFrame appends a figure to the sequence.
func (a *Animation) AddFrame(f *Figure) { a.Frames = append(a.Frames, f) }

// WriteGIF renders the animation. It implements
// savebox.AnimationWriter.
func (a *Animation) WriteGIF(w io.Writer) error {
	if len(a.Frames) == 0 {
		return errors.New("animation has no frames")
	}

	interval := a.Interval
	if interval <= 0 {
		interval = defaultFrameInterval
	}
	// GIF frame delays are in centiseconds.
	delay := int(interval / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}

	out := &gif.GIF{LoopCount: 0}
	for i, frame := range a.Frames {
		c := vgimg.New(frame.width, frame.height)
		frame.draw(draw.New(c))

		var src image.Image = c.Image()
		paletted := image.NewPaletted(src.Bounds(), palette.Plan9)
		stddraw.FloydSteinberg.Draw(paletted, src.Bounds(), src, image.Point{})

		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)

		if i > 0 && !src.Bounds().Eq(out.Image[0].Bounds()) {
			return errors.Errorf("frame %d size differs from frame 0", i)
		}
	}

	return errors.Wrap(gif.EncodeAll(w, out), "encoding gif")
}

// TimeKernelAnimation renders an order-3 time kernel as an animation
// of its two-dimensional slices, all frames sharing one color scale.
func TimeKernelAnimation(t []float64, slices [][][]float64, style KernelStyle, opts PlotOptions) (*Animation, error) {
	if len(slices) == 0 {
		return nil, errors.New("kernel has no slices")
	}
	if style == "" {
		style = StyleHeatMap
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}

	grids := make([]*denseGrid, len(slices))
	scale := &Range{}
	for i, slice := range slices {
		grid, err := newDenseGrid(t, t, slice)
		if err != nil {
			return nil, errors.Wrapf(err, "building grid for slice %d", i)
		}
		grids[i] = grid

		min, max := grid.bounds()
		if i == 0 || min < scale.Min {
			scale.Min = min
		}
		if i == 0 || max > scale.Max {
			scale.Max = max
		}
	}

	anim := &Animation{}
	for i, grid := range grids {
		title := opts.title(i, "Time kernel of order 3")

		var p *plot.Plot
		if style == StyleContour {
			p = contourPanel(grid, title, "Time (s)", "Time (s)")
		} else {
			p = heatPanel(grid, title, "Time (s)", "Time (s)", scale)
		}

		fig, err := newFigure([][]*plot.Plot{{p}})
		if err != nil {
			return nil, errors.Wrapf(err, "building frame %d", i)
		}
		anim.AddFrame(fig)
	}

	return anim, nil
}
