package savebox

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	defaultFigureExtension    = ".png"
	defaultAnimationExtension = ".gif"
)

var figureFormats = map[string]struct{}{
	"png": {},
	"pdf": {},
	"svg": {},
	"jpg": {},
}

// FigureWriter is the rendering behavior savebox needs from a figure;
// plotbox.Figure implements it. Supported formats are png, pdf, svg
// and jpg.
type FigureWriter interface {
	WriteImage(w io.Writer, format string) error
}

// AnimationWriter is the rendering behavior savebox needs from an
// animation; plotbox.Animation implements it.
type AnimationWriter interface {
	WriteGIF(w io.Writer) error
}

// SaveFigure renders the figure to a file under the directory named by
// parts and returns the full path. The output format follows the name
// extension, defaulting to png.
func SaveFigure(fig FigureWriter, name string, parts ...string) (string, error) {
	dir, err := EnsurePath(parts...)
	if err != nil {
		return "", errors.Wrap(err, "resolving figure directory")
	}

	ext := filepath.Ext(name)
	if ext == "" {
		ext = defaultFigureExtension
		name += ext
	}
	format := strings.TrimPrefix(ext, ".")
	if _, ok := figureFormats[format]; !ok {
		return "", errors.Errorf("unsupported figure format '%s'", format)
	}

	fullPath := filepath.Join(dir, name)
	f, err := os.Create(fullPath)
	if err != nil {
		return "", errors.Wrapf(err, "creating %s", fullPath)
	}
	defer f.Close()

	if err := fig.WriteImage(f, format); err != nil {
		return "", errors.Wrapf(err, "rendering figure to %s", fullPath)
	}
	if err := f.Sync(); err != nil {
		return "", errors.Wrapf(err, "syncing %s", fullPath)
	}

	return fullPath, nil
}

// SaveAnimation renders the animation to an animated GIF under the
// directory named by parts and returns the full path. The default
// extension is gif; no other container is supported.
func SaveAnimation(anim AnimationWriter, name string, parts ...string) (string, error) {
	dir, err := EnsurePath(parts...)
	if err != nil {
		return "", errors.Wrap(err, "resolving animation directory")
	}

	ext := filepath.Ext(name)
	if ext == "" {
		name += defaultAnimationExtension
	} else if ext != defaultAnimationExtension {
		return "", errors.Errorf("unsupported animation format '%s'", strings.TrimPrefix(ext, "."))
	}

	fullPath := filepath.Join(dir, name)
	f, err := os.Create(fullPath)
	if err != nil {
		return "", errors.Wrapf(err, "creating %s", fullPath)
	}
	defer f.Close()

	if err := anim.WriteGIF(f); err != nil {
		return "", errors.Wrapf(err, "rendering animation to %s", fullPath)
	}
	if err := f.Sync(); err != nil {
		return "", errors.Wrapf(err, "syncing %s", fullPath)
	}

	return fullPath, nil
}
