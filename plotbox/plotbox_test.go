package plotbox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteImage(t *testing.T) {
	fig, err := TimeSignal(timeVector(32), [][]float64{sine(32, 2)}, PlotOptions{})
	require.NoError(t, err)

	for _, test := range []struct {
		format string
		magic  []byte
	}{
		{format: "png", magic: []byte("\x89PNG")},
		{format: "svg", magic: []byte("<?xml")},
		{format: "pdf", magic: []byte("%PDF")},
	} {
		t.Run(test.format, func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, fig.WriteImage(buf, test.format))
			require.True(t, buf.Len() > len(test.magic))
			assert.Equal(t, test.magic, buf.Bytes()[:len(test.magic)])
		})
	}

	t.Run("UnsupportedFormat", func(t *testing.T) {
		assert.Error(t, fig.WriteImage(&bytes.Buffer{}, "bmp"))
	})
}

func TestFigureGridValidation(t *testing.T) {
	_, err := newFigure(nil)
	assert.Error(t, err)
}
