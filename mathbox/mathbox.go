// Package mathbox provides small numeric helpers shared by the rest of
// the toolbox: decibel conversions that behave at zero, signal energy
// measures, summary statistics, and a short-time Fourier transform.
package mathbox

import (
	"math"

	"github.com/pkg/errors"
)

// SafeDBScalar returns 20*log10(num/den), mapping zero numerators to
// -Inf and zero denominators to +Inf instead of NaN.
func SafeDBScalar(num, den float64) float64 {
	if num == 0 {
		return math.Inf(-1)
	}
	if den == 0 {
		return math.Inf(1)
	}

	return 20 * math.Log10(num/den)
}

// SafeDB applies SafeDBScalar element-wise over two vectors of equal
// length.
func SafeDB(num, den []float64) ([]float64, error) {
	if len(num) != len(den) {
		return nil, errors.Errorf("length mismatch: %d numerators and %d denominators", len(num), len(den))
	}

	out := make([]float64, len(num))
	for i := range num {
		out[i] = SafeDBScalar(num[i], den[i])
	}

	return out, nil
}

// DB converts an amplitude ratio to decibels.
func DB(x float64) float64 { return 20 * math.Log10(x) }

// PowerDB converts a power ratio to decibels.
func PowerDB(x float64) float64 { return 10 * math.Log10(x) }

// InvDB converts decibels back to an amplitude ratio.
func InvDB(x float64) float64 { return math.Pow(10, x/20) }

// InvPowerDB converts decibels back to a power ratio.
func InvPowerDB(x float64) float64 { return math.Pow(10, x/10) }

// RMS returns the root mean square of the signal. The RMS of an empty
// signal is zero.
func RMS(sig []float64) float64 {
	if len(sig) == 0 {
		return 0
	}

	return math.Sqrt(Energy(sig) / float64(len(sig)))
}

// Energy returns the sum of squared samples.
func Energy(sig []float64) float64 {
	total := 0.0
	for _, v := range sig {
		total += v * v
	}

	return total
}

// NextPow2 returns the smallest power of two greater than or equal to n.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// Binomial returns the binomial coefficient C(n, k), or an error when
// the arguments are out of range.
func Binomial(n, k int) (int64, error) {
	if n < 0 || k < 0 || k > n {
		return 0, errors.Errorf("binomial coefficient undefined for n=%d k=%d", n, k)
	}

	if k > n-k {
		k = n - k
	}

	result := int64(1)
	for i := 0; i < k; i++ {
		result = result * int64(n-i) / int64(i+1)
	}

	return result, nil
}

// ClosestIndex returns the index of the element of vec closest to x.
func ClosestIndex(vec []float64, x float64) (int, error) {
	if len(vec) == 0 {
		return 0, errors.New("cannot search an empty vector")
	}

	best := 0
	bestDist := math.Abs(vec[0] - x)
	for i, v := range vec[1:] {
		if d := math.Abs(v - x); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}

	return best, nil
}

// Unwrap removes 2*pi discontinuities from a phase vector, in place,
// and returns it.
func Unwrap(phase []float64) []float64 {
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		for d > math.Pi {
			phase[i] -= 2 * math.Pi
			d = phase[i] - phase[i-1]
		}
		for d < -math.Pi {
			phase[i] += 2 * math.Pi
			d = phase[i] - phase[i-1]
		}
	}

	return phase
}
