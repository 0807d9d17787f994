package operations

import (
	"context"
	"sort"
	"time"

	"github.com/d-bouvier/gobox/mathbox"
	"github.com/d-bouvier/gobox/savebox"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

type fileDescription struct {
	Path        string                     `json:"path"`
	Format      savebox.DataFormat         `json:"format"`
	Compression savebox.Compression        `json:"compression"`
	Keys        []string                   `json:"keys,omitempty"`
	Samples     int                        `json:"samples,omitempty"`
	Start       *time.Time                 `json:"start,omitempty"`
	End         *time.Time                 `json:"end,omitempty"`
	Columns     map[string]mathbox.Summary `json:"columns,omitempty"`
}

// Inspect loads a saved data file and reports what it holds. Document
// payloads list their keys, columnar series get a per-column
// statistical summary.
func Inspect() cli.Command {
	return cli.Command{
		Name:  "inspect",
		Usage: "describe the contents of a saved data file",
		Flags: mergeFlags(
			addNameFlag(),
			addPathFlag(),
			addOutputFlag("write the description to this file instead of stdout", ""),
		),
		Before: mergeBeforeFuncs(
			setFlagOrFirstPositional(nameFlagName),
			requireStringFlag(nameFlagName),
		),
		Action: func(c *cli.Context) error {
			ctx := context.Background()

			result, err := savebox.LoadData(ctx, c.String(nameFlagName), c.String(pathFlagName))
			if err != nil {
				return errors.Wrap(err, "loading input data")
			}

			desc, err := describeResult(result)
			if err != nil {
				return err
			}

			if out := c.String(outputFlagName); out != "" {
				return errors.Wrap(writeJSON(out, desc), "writing description")
			}

			return errors.Wrap(printJSON(desc), "printing description")
		},
	}
}

func describeResult(result *savebox.Result) (*fileDescription, error) {
	desc := &fileDescription{
		Path:        result.Path,
		Format:      result.Format,
		Compression: result.Compression,
	}

	if result.Series == nil {
		for key := range result.Document {
			desc.Keys = append(desc.Keys, key)
		}
		sort.Strings(desc.Keys)
		return desc, nil
	}

	s := result.Series
	desc.Samples = s.Len()
	if s.Len() > 0 {
		start, end := s.Time[0], s.Time[s.Len()-1]
		desc.Start, desc.End = &start, &end
	}

	desc.Columns = map[string]mathbox.Summary{}
	for _, col := range s.Columns {
		summary, err := mathbox.DescribeInts(col.Values)
		if err != nil {
			return nil, errors.Wrapf(err, "summarizing column '%s'", col.Name)
		}
		desc.Columns[col.Name] = summary
	}

	return desc, nil
}
