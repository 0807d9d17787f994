package operations

import (
	"math/rand"
	"time"

	"github.com/d-bouvier/gobox/savebox"
	"github.com/d-bouvier/gobox/utilities"
	"github.com/mongodb/grip"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Generate synthesizes a series of random-walk counters and saves it.
// Useful for producing fixture data to exercise the other commands.
func Generate() cli.Command {
	return cli.Command{
		Name:  "generate",
		Usage: "synthesize a series of random-walk counters",
		Flags: mergeFlags(
			addPathFlag(),
			addFormatFlag(string(savebox.FormatFTDC)),
			[]cli.Flag{
				cli.StringFlag{
					Name:  joinFlagNames(nameFlagName, "n"),
					Usage: "base name for the generated file",
					Value: "metrics",
				},
				cli.IntFlag{
					Name:  samplesFlagName,
					Usage: "number of samples to generate",
					Value: 1000,
				},
				cli.DurationFlag{
					Name:  intervalFlagName,
					Usage: "time step between samples",
					Value: 100 * time.Millisecond,
				},
				cli.Int64Flag{
					Name:  seedFlagName,
					Usage: "seed for the random walk (0 seeds from the clock)",
				},
			},
		),
		Action: func(c *cli.Context) error {
			samples := c.Int(samplesFlagName)
			if samples <= 0 {
				return errors.Errorf("samples must be positive, got %d", samples)
			}

			seed := c.Int64(seedFlagName)
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			sw := utilities.StartStopwatch()
			s := generateSeries(c.String(nameFlagName), samples, c.Duration(intervalFlagName), rand.New(rand.NewSource(seed)))

			path, err := savebox.SaveData(s, c.String(nameFlagName), savebox.SaveOptions{
				Path:   []string{c.String(pathFlagName)},
				Format: savebox.DataFormat(c.String(formatFlagName)),
			})
			if err != nil {
				return errors.Wrap(err, "writing generated series")
			}

			fields := sw.Message("generation complete")
			fields["output"] = path
			fields["samples"] = samples
			grip.Info(fields)
			return nil
		},
	}
}

func generateSeries(name string, samples int, interval time.Duration, rng *rand.Rand) *savebox.Series {
	s := &savebox.Series{
		Name: name,
		Time: make([]time.Time, samples),
		Columns: []savebox.Column{
			{Name: "n", Values: make([]int64, samples)},
			{Name: "ops", Values: make([]int64, samples)},
			{Name: "size", Values: make([]int64, samples)},
			{Name: "workers", Values: make([]int64, samples)},
		},
	}

	ts := time.Now().Truncate(time.Millisecond)
	var ops, size int64
	for i := 0; i < samples; i++ {
		ts = ts.Add(interval)
		ops += 1 + rng.Int63n(10)
		if i%100 == 0 {
			size += rng.Int63n(1000)
		}

		s.Time[i] = ts
		s.Columns[0].Values[i] = int64(i + 1)
		s.Columns[1].Values[i] = ops
		s.Columns[2].Values[i] = size
		s.Columns[3].Values[i] = 1 + rng.Int63n(4)
	}

	return s
}
