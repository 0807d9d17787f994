package operations

import (
	"strings"

	"github.com/urfave/cli"
)

////////////////////////////////////////////////////////////////////////
//
// Flag Name Constants

const (
	nameFlagName     = "name"
	pathFlagName     = "path"
	outputFlagName   = "output"
	formatFlagName   = "format"
	compressFlagName = "compress"

	samplesFlagName  = "samples"
	intervalFlagName = "interval"
	seedFlagName     = "seed"

	bucketFlagName = "bucket"
	localFlagName  = "local"
	prefixFlagName = "prefix"
)

////////////////////////////////////////////////////////////////////////
//
// Utility Functions

func joinFlagNames(ids ...string) string { return strings.Join(ids, ", ") }

func mergeFlags(in ...[]cli.Flag) []cli.Flag {
	out := []cli.Flag{}

	for idx := range in {
		out = append(out, in[idx]...)
	}

	return out
}

////////////////////////////////////////////////////////////////////////
//
// Flag Groups

func addNameFlag(flags ...cli.Flag) []cli.Flag {
	return append(flags, cli.StringFlag{
		Name:  joinFlagNames(nameFlagName, "n"),
		Usage: "base name of the saved data file, with or without extension",
	})
}

func addPathFlag(flags ...cli.Flag) []cli.Flag {
	return append(flags, cli.StringFlag{
		Name:  joinFlagNames(pathFlagName, "dir", "d"),
		Usage: "directory holding saved data files",
		Value: ".",
	})
}

func addOutputFlag(usage, value string, flags ...cli.Flag) []cli.Flag {
	return append(flags, cli.StringFlag{
		Name:  joinFlagNames(outputFlagName, "o"),
		Usage: usage,
		Value: value,
	})
}

func addFormatFlag(value string, flags ...cli.Flag) []cli.Flag {
	return append(flags, cli.StringFlag{
		Name:  joinFlagNames(formatFlagName, "f"),
		Usage: "data format: 'gob', 'json', 'yaml', 'bson', 'ftdc', or 'parquet'",
		Value: value,
	})
}

func syncFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags,
		cli.StringFlag{
			Name:  bucketFlagName,
			Usage: "root directory of the results bucket",
			Value: "results",
		},
		cli.StringFlag{
			Name:  localFlagName,
			Usage: "local directory to sync",
			Value: ".",
		},
		cli.StringFlag{
			Name:  prefixFlagName,
			Usage: "key prefix inside the bucket",
		},
	)
}
