package savebox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsurePath(t *testing.T) {
	t.Run("NoArgsReturnsWorkingDirectory", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)

		path, err := EnsurePath()
		require.NoError(t, err)
		assert.Equal(t, wd, path)
	})

	t.Run("AbsolutePathIsCreated", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "results")

		path, err := EnsurePath(target)
		require.NoError(t, err)
		assert.Equal(t, target, path)
		assert.DirExists(t, target)
	})

	t.Run("RelativePathResolvesAgainstWorkingDirectory", func(t *testing.T) {
		tmp := t.TempDir()
		t.Chdir(tmp)

		path, err := EnsurePath("sub")
		require.NoError(t, err)
		assert.DirExists(t, path)
		assert.Equal(t, "sub", filepath.Base(path))
	})

	t.Run("PartsBuildHierarchy", func(t *testing.T) {
		tmp := t.TempDir()

		path, err := EnsurePath(tmp, "a", "b", "c")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmp, "a", "b", "c"), path)
		assert.DirExists(t, path)
	})
}
