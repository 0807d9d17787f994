package plotbox

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareKernel(n int) [][]float64 {
	k := make([][]float64, n)
	for i := range k {
		k[i] = make([]float64, n)
		for j := range k[i] {
			k[i][j] = math.Exp(-float64(i+j) / float64(n))
		}
	}

	return k
}

func TestTimeKernel(t *testing.T) {
	tv := timeVector(32)

	fig, err := TimeKernel(tv, sine(32, 1), PlotOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Time kernel of order 1", fig.Panels()[0][0].Title.Text)

	_, err = TimeKernel(tv, sine(16, 1), PlotOptions{})
	assert.Error(t, err)
}

func TestTimeKernel2D(t *testing.T) {
	tv := timeVector(16)
	kernel := squareKernel(16)

	t.Run("DefaultStyleIsHeatMap", func(t *testing.T) {
		fig, err := TimeKernel2D(tv, kernel, "", PlotOptions{})
		require.NoError(t, err)
		assert.Equal(t, "Time kernel of order 2", fig.Panels()[0][0].Title.Text)
	})

	t.Run("ContourStyle", func(t *testing.T) {
		_, err := TimeKernel2D(tv, kernel, StyleContour, PlotOptions{})
		assert.NoError(t, err)
	})

	t.Run("InvalidStyle", func(t *testing.T) {
		_, err := TimeKernel2D(tv, kernel, "wireframe", PlotOptions{})
		assert.Error(t, err)
	})

	t.Run("RaggedKernel", func(t *testing.T) {
		_, err := TimeKernel2D(tv, [][]float64{{1, 2}, {3}}, "", PlotOptions{})
		assert.Error(t, err)
	})
}

func TestFreqKernel(t *testing.T) {
	n := 32
	fv := timeVector(n)
	kernel := make([]complex128, n)
	for i := range kernel {
		kernel[i] = cmplx.Exp(complex(0, float64(i)/4)) * complex(1/float64(i+1), 0)
	}

	fig, err := FreqKernel(fv, kernel, FreqKernelOptions{})
	require.NoError(t, err)
	panels := fig.Panels()
	require.Len(t, panels, 2)
	assert.Equal(t, "Magnitude (dB)", panels[0][0].Title.Text)
	assert.Equal(t, "Phase (radians)", panels[1][0].Title.Text)

	fig, err = FreqKernel(fv, kernel, FreqKernelOptions{Linear: true})
	require.NoError(t, err)
	assert.Equal(t, "Magnitude", fig.Panels()[0][0].Title.Text)

	_, err = FreqKernel(fv, kernel[:n/2], FreqKernelOptions{})
	assert.Error(t, err)
}

func TestFreqKernel2D(t *testing.T) {
	n := 12
	fv := timeVector(n)
	kernel := make([][]complex128, n)
	for i := range kernel {
		kernel[i] = make([]complex128, n)
		for j := range kernel[i] {
			kernel[i][j] = complex(float64(i+1), float64(j))
		}
	}

	fig, err := FreqKernel2D(fv, kernel, FreqKernelOptions{})
	require.NoError(t, err)
	panels := fig.Panels()
	require.Len(t, panels, 2)
	assert.Equal(t, "Magnitude (dB)", panels[0][0].Title.Text)

	_, err = FreqKernel2D(fv, kernel, FreqKernelOptions{Style: "surface"})
	assert.Error(t, err)
}
