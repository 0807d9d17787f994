package operations

import (
	"context"

	"github.com/d-bouvier/gobox/savebox"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Sync copies result files between a local directory and a bucket.
func Sync() cli.Command {
	return cli.Command{
		Name:  "sync",
		Usage: "move result files to and from a bucket",
		Subcommands: []cli.Command{
			syncPush(),
			syncPull(),
			syncList(),
		},
	}
}

func syncPush() cli.Command {
	return cli.Command{
		Name:  "push",
		Usage: "copy a local directory into the bucket",
		Flags: syncFlags(),
		Action: func(c *cli.Context) error {
			ctx := context.Background()

			bucket, err := savebox.NewLocalBucket(c.String(bucketFlagName))
			if err != nil {
				return errors.Wrap(err, "opening bucket")
			}

			if err := bucket.Push(ctx, c.String(localFlagName), c.String(prefixFlagName)); err != nil {
				return errors.Wrap(err, "pushing to bucket")
			}

			grip.Info(message.Fields{
				"op":     "push",
				"local":  c.String(localFlagName),
				"prefix": c.String(prefixFlagName),
			})
			return nil
		},
	}
}

func syncPull() cli.Command {
	return cli.Command{
		Name:  "pull",
		Usage: "copy a bucket prefix into a local directory",
		Flags: syncFlags(),
		Action: func(c *cli.Context) error {
			ctx := context.Background()

			bucket, err := savebox.NewLocalBucket(c.String(bucketFlagName))
			if err != nil {
				return errors.Wrap(err, "opening bucket")
			}

			if err := bucket.Pull(ctx, c.String(localFlagName), c.String(prefixFlagName)); err != nil {
				return errors.Wrap(err, "pulling from bucket")
			}

			grip.Info(message.Fields{
				"op":     "pull",
				"local":  c.String(localFlagName),
				"prefix": c.String(prefixFlagName),
			})
			return nil
		},
	}
}

func syncList() cli.Command {
	return cli.Command{
		Name:  "list",
		Usage: "list the keys under a bucket prefix",
		Flags: syncFlags(),
		Action: func(c *cli.Context) error {
			ctx := context.Background()

			bucket, err := savebox.NewLocalBucket(c.String(bucketFlagName))
			if err != nil {
				return errors.Wrap(err, "opening bucket")
			}

			keys, err := bucket.List(ctx, c.String(prefixFlagName))
			if err != nil {
				return errors.Wrap(err, "listing bucket")
			}

			return errors.Wrap(printJSON(keys), "printing keys")
		},
	}
}
