package operations

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/d-bouvier/gobox/savebox"
	"github.com/d-bouvier/gobox/utilities"
	"github.com/mongodb/grip"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Convert rewrites a saved data file in another format, keeping the
// payload intact. Document formats convert freely among themselves,
// columnar formats among themselves.
func Convert() cli.Command {
	return cli.Command{
		Name:  "convert",
		Usage: "rewrite a saved data file in another format",
		Flags: mergeFlags(
			addNameFlag(),
			addPathFlag(),
			addFormatFlag(""),
			addOutputFlag("base name for the converted file (defaults to the input name)", ""),
			[]cli.Flag{
				cli.StringFlag{
					Name:  compressFlagName,
					Usage: "compression for the converted file: 'none' or 'gz'",
					Value: string(savebox.CompressionNone),
				},
			},
		),
		Before: mergeBeforeFuncs(
			setFlagOrFirstPositional(nameFlagName),
			requireStringFlag(nameFlagName),
			requireStringFlag(formatFlagName),
		),
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			dir := c.String(pathFlagName)

			result, err := savebox.LoadData(ctx, c.String(nameFlagName), dir)
			if err != nil {
				return errors.Wrap(err, "loading input data")
			}

			var payload interface{}
			if result.Series != nil {
				payload = result.Series
			} else {
				payload = result.Document
			}

			out := c.String(outputFlagName)
			if out == "" {
				base := filepath.Base(result.Path)
				out = strings.TrimSuffix(base, result.Format.Extension()+result.Compression.Extension())
			}

			sw := utilities.StartStopwatch()
			path, err := savebox.SaveData(payload, out, savebox.SaveOptions{
				Path:        []string{dir},
				Format:      savebox.DataFormat(c.String(formatFlagName)),
				Compression: savebox.Compression(c.String(compressFlagName)),
			})
			if err != nil {
				return errors.Wrap(err, "writing converted data")
			}

			fields := sw.Message("conversion complete")
			fields["input"] = result.Path
			fields["output"] = path
			grip.Info(fields)
			return nil
		},
	}
}
