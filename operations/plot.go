package operations

import (
	"context"

	"github.com/d-bouvier/gobox/plotbox"
	"github.com/d-bouvier/gobox/savebox"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Plot renders the columns of a saved series as a stacked figure of
// time signals and writes it in the image format implied by the
// output name.
func Plot() cli.Command {
	return cli.Command{
		Name:  "plot",
		Usage: "render a saved series as a figure",
		Flags: mergeFlags(
			addNameFlag(),
			addPathFlag(),
			addOutputFlag("name of the figure file", "figure.png"),
		),
		Before: mergeBeforeFuncs(
			setFlagOrFirstPositional(nameFlagName),
			requireStringFlag(nameFlagName),
		),
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			dir := c.String(pathFlagName)

			result, err := savebox.LoadData(ctx, c.String(nameFlagName), dir)
			if err != nil {
				return errors.Wrap(err, "loading input data")
			}
			if result.Series == nil {
				return errors.Errorf("'%s' holds a document, only series can be plotted", result.Path)
			}

			fig, err := seriesFigure(result.Series)
			if err != nil {
				return errors.Wrap(err, "building figure")
			}

			path, err := savebox.SaveFigure(fig, c.String(outputFlagName), dir)
			if err != nil {
				return errors.Wrap(err, "writing figure")
			}

			grip.Info(message.Fields{
				"input":  result.Path,
				"output": path,
			})
			return nil
		},
	}
}

func seriesFigure(s *savebox.Series) (*plotbox.Figure, error) {
	if s.Len() == 0 {
		return nil, errors.New("series has no samples")
	}

	t := make([]float64, s.Len())
	start := s.Time[0]
	for i, ts := range s.Time {
		t[i] = ts.Sub(start).Seconds()
	}

	signals := make([][]float64, len(s.Columns))
	for i, col := range s.Columns {
		sig := make([]float64, len(col.Values))
		for j, v := range col.Values {
			sig[j] = float64(v)
		}
		signals[i] = sig
	}

	return plotbox.TimeSignal(t, signals, plotbox.PlotOptions{Titles: s.ColumnNames()})
}
