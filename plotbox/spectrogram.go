package plotbox

import (
	"github.com/d-bouvier/gobox/mathbox"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
)

// SpectrogramOptions configures the spectrogram template. The zero
// value plots dB magnitude only, with unwrapped phase when enabled.
type SpectrogramOptions struct {
	// STFT configures the underlying transform.
	STFT mathbox.STFTOptions
	// Linear plots the raw magnitude instead of dB.
	Linear bool
	// Phase adds a phase panel below the magnitude.
	Phase bool
	// KeepWrapped skips phase unwrapping.
	KeepWrapped bool
}

// Spectrogram plots the short-time Fourier transform magnitude of a
// signal as a time/frequency heatmap, optionally with a phase panel.
func Spectrogram(sig []float64, opts SpectrogramOptions) (*Figure, error) {
	result, err := mathbox.STFT(sig, opts.STFT)
	if err != nil {
		return nil, errors.Wrap(err, "computing transform")
	}

	mag := result.Magnitude()
	magTitle := "STFT Magnitude"
	z := make([][]float64, len(result.Freqs))
	for bin := range result.Freqs {
		z[bin] = make([]float64, len(result.Times))
		for frame := range result.Times {
			if opts.Linear {
				z[bin][frame] = mag[frame][bin]
			} else {
				z[bin][frame] = mathbox.SafeDBScalar(mag[frame][bin], 1)
			}
		}
	}
	if !opts.Linear {
		magTitle += " (dB)"
	}

	grid, err := newDenseGrid(result.Times, result.Freqs, z)
	if err != nil {
		return nil, errors.Wrap(err, "building magnitude grid")
	}
	if !opts.Linear {
		grid.clampToFloor()
	}

	panels := [][]*plot.Plot{{heatPanel(grid, magTitle, "Time (s)", "Frequency (Hz)", nil)}}

	if opts.Phase {
		phase := result.Phase(!opts.KeepWrapped)
		pz := make([][]float64, len(result.Freqs))
		for bin := range result.Freqs {
			pz[bin] = make([]float64, len(result.Times))
			for frame := range result.Times {
				pz[bin][frame] = phase[frame][bin]
			}
		}

		phaseGrid, err := newDenseGrid(result.Times, result.Freqs, pz)
		if err != nil {
			return nil, errors.Wrap(err, "building phase grid")
		}
		panels = append(panels, []*plot.Plot{
			heatPanel(phaseGrid, "Phase (radians)", "Time (s)", "Frequency (Hz)", nil),
		})
	}

	return newFigure(panels)
}
