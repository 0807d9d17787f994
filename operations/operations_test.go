package operations

import (
	"context"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/d-bouvier/gobox/savebox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func makeApp() *cli.App {
	app := cli.NewApp()
	app.Name = "gobox"
	app.Commands = []cli.Command{
		Generate(),
		Convert(),
		Inspect(),
		Plot(),
		Sync(),
	}
	return app
}

func runApp(t *testing.T, args ...string) error {
	t.Helper()
	return makeApp().Run(append([]string{"gobox"}, args...))
}

func TestGenerateSeries(t *testing.T) {
	s := generateSeries("metrics", 16, 100*time.Millisecond, rand.New(rand.NewSource(42)))

	require.NoError(t, s.Validate())
	assert.Equal(t, 16, s.Len())
	assert.Equal(t, []string{"n", "ops", "size", "workers"}, s.ColumnNames())

	n, ok := s.Column("n")
	require.True(t, ok)
	assert.EqualValues(t, 1, n[0])
	assert.EqualValues(t, 16, n[15])

	// counters never decrease
	ops, ok := s.Column("ops")
	require.True(t, ok)
	for i := 1; i < len(ops); i++ {
		assert.True(t, ops[i] >= ops[i-1])
	}
}

func TestGenerateCommand(t *testing.T) {
	tmp := t.TempDir()

	require.NoError(t, runApp(t, "generate", "--path", tmp, "--samples", "32", "--seed", "7"))
	assert.FileExists(t, filepath.Join(tmp, "metrics.ftdc"))

	assert.Error(t, runApp(t, "generate", "--path", tmp, "--samples", "0"))
	assert.Error(t, runApp(t, "generate", "--path", tmp, "--format", "csv"))
}

func TestConvertCommand(t *testing.T) {
	tmp := t.TempDir()

	require.NoError(t, runApp(t, "generate", "--path", tmp, "--samples", "32", "--seed", "7"))
	require.NoError(t, runApp(t, "convert", "--path", tmp, "--format", "parquet", "metrics.ftdc"))
	assert.FileExists(t, filepath.Join(tmp, "metrics.parquet"))

	// renamed output
	require.NoError(t, runApp(t, "convert", "--path", tmp, "--format", "parquet", "--output", "copy", "metrics.ftdc"))
	assert.FileExists(t, filepath.Join(tmp, "copy.parquet"))

	// a series cannot become a document format
	assert.Error(t, runApp(t, "convert", "--path", tmp, "--format", "json", "metrics.ftdc"))

	// missing input
	assert.Error(t, runApp(t, "convert", "--path", tmp, "--format", "parquet", "nothing"))
}

func TestInspectCommand(t *testing.T) {
	tmp := t.TempDir()
	out := filepath.Join(tmp, "desc.json")

	require.NoError(t, runApp(t, "generate", "--path", tmp, "--samples", "32", "--seed", "7"))
	require.NoError(t, runApp(t, "inspect", "--path", tmp, "--output", out, "metrics"))

	payload, err := os.ReadFile(out)
	require.NoError(t, err)

	desc := fileDescription{}
	require.NoError(t, json.Unmarshal(payload, &desc))
	assert.Equal(t, savebox.FormatFTDC, desc.Format)
	assert.Equal(t, 32, desc.Samples)
	require.Contains(t, desc.Columns, "ops")
	assert.EqualValues(t, 32, desc.Columns["ops"].Count)
	assert.True(t, desc.End.After(*desc.Start))
}

func TestInspectDocument(t *testing.T) {
	tmp := t.TempDir()

	doc := savebox.Document{"gain": 0.5, "label": "run"}
	_, err := savebox.SaveData(doc, "params", savebox.SaveOptions{
		Path:   []string{tmp},
		Format: savebox.FormatJSON,
	})
	require.NoError(t, err)

	result, err := savebox.LoadData(context.Background(), "params", tmp)
	require.NoError(t, err)

	desc, err := describeResult(result)
	require.NoError(t, err)
	assert.Equal(t, []string{"gain", "label"}, desc.Keys)
	assert.Zero(t, desc.Samples)
	assert.Empty(t, desc.Columns)
}

func TestPlotCommand(t *testing.T) {
	tmp := t.TempDir()

	require.NoError(t, runApp(t, "generate", "--path", tmp, "--samples", "32", "--seed", "7"))
	require.NoError(t, runApp(t, "plot", "--path", tmp, "--output", "fig.png", "metrics"))

	payload, err := os.ReadFile(filepath.Join(tmp, "fig.png"))
	require.NoError(t, err)
	assert.True(t, len(payload) > 8)
	assert.Equal(t, "\x89PNG", string(payload[:4]))
}

func TestSyncCommands(t *testing.T) {
	local := t.TempDir()
	bucket := t.TempDir()
	restored := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(local, "a.json"), []byte("{}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(local, "b.json"), []byte("{}\n"), 0o644))

	require.NoError(t, runApp(t, "sync", "push", "--bucket", bucket, "--local", local, "--prefix", "runs/one"))
	assert.FileExists(t, filepath.Join(bucket, "runs", "one", "a.json"))

	require.NoError(t, runApp(t, "sync", "pull", "--bucket", bucket, "--local", restored, "--prefix", "runs/one"))
	assert.FileExists(t, filepath.Join(restored, "a.json"))
	assert.FileExists(t, filepath.Join(restored, "b.json"))

	require.NoError(t, runApp(t, "sync", "list", "--bucket", bucket, "--prefix", "runs"))
}
