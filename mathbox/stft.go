package mathbox

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

const (
	defaultFrameLen   = 256
	defaultSampleRate = 1.0
)

// STFTOptions configures the short-time Fourier transform.
type STFTOptions struct {
	// FrameLen is the analysis frame length in samples. Defaults to 256.
	FrameLen int
	// HopLen is the number of samples between consecutive frames.
	// Defaults to FrameLen/2.
	HopLen int
	// SampleRate is used to scale the frequency and time axes.
	// Defaults to 1.
	SampleRate float64
	// Window is applied to each frame before the transform. Defaults to
	// a Hann window.
	Window func([]float64) []float64
}

func (opts *STFTOptions) setDefaults() {
	if opts.FrameLen <= 0 {
		opts.FrameLen = defaultFrameLen
	}
	if opts.HopLen <= 0 {
		opts.HopLen = opts.FrameLen / 2
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = defaultSampleRate
	}
	if opts.Window == nil {
		opts.Window = window.Hann
	}
}

// STFTResult holds the complex spectra of successive signal frames.
// Coeffs is indexed frame-first, Coeffs[i][j] being the coefficient of
// Freqs[j] in the frame centered near Times[i].
type STFTResult struct {
	Freqs  []float64
	Times  []float64
	Coeffs [][]complex128
}

// Magnitude returns the frame-by-frame coefficient magnitudes.
func (r *STFTResult) Magnitude() [][]float64 {
	out := make([][]float64, len(r.Coeffs))
	for i, frame := range r.Coeffs {
		out[i] = make([]float64, len(frame))
		for j, c := range frame {
			out[i][j] = cmplx.Abs(c)
		}
	}

	return out
}

// Phase returns the frame-by-frame coefficient angles. When unwrap is
// true the phase is unwrapped along the frequency axis of each frame.
func (r *STFTResult) Phase(unwrap bool) [][]float64 {
	out := make([][]float64, len(r.Coeffs))
	for i, frame := range r.Coeffs {
		out[i] = make([]float64, len(frame))
		for j, c := range frame {
			out[i][j] = cmplx.Phase(c)
		}
		if unwrap {
			Unwrap(out[i])
		}
	}

	return out
}

// STFT computes the short-time Fourier transform of the signal. The
// trailing partial frame, if any, is zero padded.
func STFT(sig []float64, opts STFTOptions) (*STFTResult, error) {
	opts.setDefaults()

	if len(sig) == 0 {
		return nil, errors.New("cannot transform an empty signal")
	}
	if opts.HopLen > opts.FrameLen {
		return nil, errors.Errorf("hop length %d exceeds frame length %d", opts.HopLen, opts.FrameLen)
	}

	nFrames := 1
	if len(sig) > opts.FrameLen {
		nFrames += int(math.Ceil(float64(len(sig)-opts.FrameLen) / float64(opts.HopLen)))
	}
	nBins := opts.FrameLen/2 + 1

	fft := fourier.NewFFT(opts.FrameLen)
	frame := make([]float64, opts.FrameLen)

	result := &STFTResult{
		Freqs:  make([]float64, nBins),
		Times:  make([]float64, nFrames),
		Coeffs: make([][]complex128, nFrames),
	}
	for j := range result.Freqs {
		result.Freqs[j] = float64(j) * opts.SampleRate / float64(opts.FrameLen)
	}

	for i := 0; i < nFrames; i++ {
		start := i * opts.HopLen
		for j := range frame {
			if start+j < len(sig) {
				frame[j] = sig[start+j]
			} else {
				frame[j] = 0
			}
		}
		opts.Window(frame)

		result.Times[i] = (float64(start) + float64(opts.FrameLen)/2) / opts.SampleRate
		result.Coeffs[i] = fft.Coefficients(nil, frame)
	}

	return result, nil
}
