package savebox

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalBucket(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("CheckCreatedRoot", func(t *testing.T) {
		bucket, err := NewLocalBucket(filepath.Join(t.TempDir(), "bucket"))
		require.NoError(t, err)
		assert.NoError(t, bucket.Check(ctx))
	})

	t.Run("PutAndGet", func(t *testing.T) {
		bucket, err := NewLocalBucket(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, bucket.Put(ctx, "runs/one/data.json", bytes.NewBufferString("{}")))

		r, err := bucket.Get(ctx, "runs/one/data.json")
		require.NoError(t, err)
		defer r.Close()
		payload, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(payload))
	})

	t.Run("GetMissingKey", func(t *testing.T) {
		bucket, err := NewLocalBucket(t.TempDir())
		require.NoError(t, err)

		_, err = bucket.Get(ctx, "missing")
		assert.Error(t, err)
	})

	t.Run("UploadAndDownload", func(t *testing.T) {
		bucket, err := NewLocalBucket(t.TempDir())
		require.NoError(t, err)

		src := filepath.Join(t.TempDir(), "src.txt")
		require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))
		require.NoError(t, bucket.Upload(ctx, "files/src.txt", src))

		dst := filepath.Join(t.TempDir(), "nested", "dst.txt")
		require.NoError(t, bucket.Download(ctx, "files/src.txt", dst))

		out, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(out))
	})

	t.Run("PushPullList", func(t *testing.T) {
		bucket, err := NewLocalBucket(t.TempDir())
		require.NoError(t, err)

		local := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(local, "sub"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(local, "a.txt"), []byte("a"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(local, "sub", "b.txt"), []byte("b"), 0o644))

		require.NoError(t, bucket.Push(ctx, local, "exp"))

		keys, err := bucket.List(ctx, "exp")
		require.NoError(t, err)
		assert.Equal(t, []string{"exp/a.txt", "exp/sub/b.txt"}, keys)

		restored := t.TempDir()
		require.NoError(t, bucket.Pull(ctx, restored, "exp"))
		assert.FileExists(t, filepath.Join(restored, "a.txt"))
		assert.FileExists(t, filepath.Join(restored, "sub", "b.txt"))

		keys, err = bucket.List(ctx, "otherprefix")
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}
