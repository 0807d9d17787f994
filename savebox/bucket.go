package savebox

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Bucket is a small blob-store abstraction over a results directory.
// Keys are slash-separated paths relative to the bucket root. It keeps
// result syncing behind a single interface so a remote implementation
// can be swapped in without touching callers.
type Bucket interface {
	// Check verifies the bucket is usable.
	Check(context.Context) error

	// Put and Get move simple byte streams to and from keys.
	Put(ctx context.Context, key string, r io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Upload and Download move files between the local file system
	// and keys.
	Upload(ctx context.Context, key, path string) error
	Download(ctx context.Context, key, path string) error

	// Push and Pull recursively copy a local directory to and from a
	// key prefix.
	Push(ctx context.Context, local, prefix string) error
	Pull(ctx context.Context, local, prefix string) error

	// List returns the keys under a prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

type localBucket struct {
	root string
}

// NewLocalBucket returns a Bucket rooted at the given directory,
// creating it when missing.
func NewLocalBucket(root string) (Bucket, error) {
	abs, err := EnsurePath(root)
	if err != nil {
		return nil, errors.Wrap(err, "resolving bucket root")
	}

	return &localBucket{root: abs}, nil
}

func (b *localBucket) keyPath(key string) string {
	return filepath.Join(b.root, filepath.FromSlash(key))
}

func (b *localBucket) Check(_ context.Context) error {
	stat, err := os.Stat(b.root)
	if err != nil {
		return errors.Wrapf(err, "problem with bucket root %s", b.root)
	}
	if !stat.IsDir() {
		return errors.Errorf("bucket root %s is not a directory", b.root)
	}

	return nil
}

func (b *localBucket) Put(_ context.Context, key string, r io.Reader) error {
	path := b.keyPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating parent of %s", key)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", key)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return errors.Wrapf(err, "writing %s", key)
	}

	return errors.Wrapf(f.Sync(), "syncing %s", key)
}

func (b *localBucket) Get(_ context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(b.keyPath(key))
	return f, errors.Wrapf(err, "opening %s", key)
}

func (b *localBucket) Upload(ctx context.Context, key, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	return b.Put(ctx, key, f)
}

func (b *localBucket) Download(ctx context.Context, key, path string) error {
	r, err := b.Get(ctx, key)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating parent of %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	return errors.Wrapf(f.Sync(), "syncing %s", path)
}

func (b *localBucket) Push(ctx context.Context, local, prefix string) error {
	return filepath.Walk(local, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(local, path)
		if err != nil {
			return errors.Wrapf(err, "relativizing %s", path)
		}

		key := prefix + "/" + filepath.ToSlash(rel)
		return b.Upload(ctx, key, path)
	})
}

func (b *localBucket) Pull(ctx context.Context, local, prefix string) error {
	keys, err := b.List(ctx, prefix)
	if err != nil {
		return err
	}

	for _, key := range keys {
		rel := strings.TrimPrefix(strings.TrimPrefix(key, prefix), "/")
		if err := b.Download(ctx, key, filepath.Join(local, filepath.FromSlash(rel))); err != nil {
			return err
		}
	}

	return nil
}

func (b *localBucket) List(_ context.Context, prefix string) ([]string, error) {
	keys := []string{}

	err := filepath.Walk(b.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return errors.WithStack(err)
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(b.root, path)
		if err != nil {
			return errors.Wrapf(err, "relativizing %s", path)
		}

		key := filepath.ToSlash(rel)
		if prefix == "" || key == prefix || strings.HasPrefix(key, prefix+"/") {
			keys = append(keys, key)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "walking bucket")
	}

	sort.Strings(keys)
	return keys, nil
}
