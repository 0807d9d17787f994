package savebox

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// EnsurePath resolves the given path components to an absolute
// directory and creates any missing folders along the way. With no
// arguments it returns the working directory. Relative components are
// resolved against the working directory.
func EnsurePath(parts ...string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "resolving working directory")
	}

	if len(parts) == 0 {
		return wd, nil
	}

	path := filepath.Join(parts...)
	if !filepath.IsAbs(path) {
		path = filepath.Join(wd, path)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating directory %s", path)
	}

	return path, nil
}
