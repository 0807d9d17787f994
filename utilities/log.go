// Package utilities holds the miscellaneous helpers of the toolbox:
// global logging setup, duplication of log output to a file, run
// headers, and wall-clock timing.
package utilities

import (
	"path/filepath"

	"github.com/d-bouvier/gobox/savebox"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/level"
	"github.com/mongodb/grip/send"
	"github.com/pkg/errors"
)

const defaultLogExtension = ".log"

// SetupLogging names the global grip sender and sets its threshold
// from a level string ("emergency" through "debug").
func SetupLogging(name, logLevel string) error {
	sender := grip.GetSender()
	sender.SetName(name)

	lvl := sender.Level()
	lvl.Threshold = level.FromString(logLevel)
	return errors.WithStack(sender.SetLevel(lvl))
}

// Restore undoes a DuplicateOutput call.
type Restore struct {
	previous send.Sender
	file     send.Sender
	closed   bool
}

// Close reinstates the previous global sender and closes the log
// file. It is safe to call more than once.
func (r *Restore) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if err := grip.SetSender(r.previous); err != nil {
		return errors.Wrap(err, "reinstating previous sender")
	}

	return errors.Wrap(r.file.Close(), "closing log file")
}

// DuplicateOutput routes all global grip output to a plain log file in
// addition to the current sender. The file is created under the
// directory named by parts, with a .log extension when name has none.
// The returned Restore reverts the global sender.
func DuplicateOutput(name string, parts ...string) (*Restore, error) {
	dir, err := savebox.EnsurePath(parts...)
	if err != nil {
		return nil, errors.Wrap(err, "resolving log directory")
	}

	if filepath.Ext(name) == "" {
		name += defaultLogExtension
	}

	fileSender, err := send.MakePlainFileLogger(filepath.Join(dir, name))
	if err != nil {
		return nil, errors.Wrap(err, "creating log file sender")
	}

	previous := grip.GetSender()
	fileSender.SetName(previous.Name())
	if err := fileSender.SetLevel(previous.Level()); err != nil {
		return nil, errors.Wrap(err, "matching log level")
	}

	if err := grip.SetSender(send.NewConfiguredMultiSender(previous, fileSender)); err != nil {
		return nil, errors.Wrap(err, "installing tee sender")
	}

	return &Restore{previous: previous, file: fileSender}, nil
}
