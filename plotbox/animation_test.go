package plotbox

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationWriteGIF(t *testing.T) {
	t.Run("EmptyAnimation", func(t *testing.T) {
		anim := &Animation{}
		assert.Error(t, anim.WriteGIF(&bytes.Buffer{}))
	})

	t.Run("FramesEncodeToGIF", func(t *testing.T) {
		tv := timeVector(16)
		anim := &Animation{Interval: 50 * time.Millisecond}
		for i := 1; i <= 3; i++ {
			fig, err := TimeSignal(tv, [][]float64{sine(16, float64(i))}, PlotOptions{})
			require.NoError(t, err)
			anim.AddFrame(fig)
		}

		buf := &bytes.Buffer{}
		require.NoError(t, anim.WriteGIF(buf))
		require.True(t, buf.Len() > 6)
		assert.Equal(t, "GIF89a", string(buf.Bytes()[:6]))
	})
}

func TestTimeKernelAnimation(t *testing.T) {
	tv := timeVector(8)
	slices := [][][]float64{squareKernel(8), squareKernel(8), squareKernel(8)}

	anim, err := TimeKernelAnimation(tv, slices, "", PlotOptions{})
	require.NoError(t, err)
	assert.Len(t, anim.Frames, 3)

	_, err = TimeKernelAnimation(tv, nil, "", PlotOptions{})
	assert.Error(t, err)

	_, err = TimeKernelAnimation(tv, slices, "surface", PlotOptions{})
	assert.Error(t, err)
}
