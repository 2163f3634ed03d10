// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"

	"github.com/ik5/morsepbx/utils"
)

// Transform returns the normalized magnitude spectrum of samples.
// The result has one bin per input sample and its largest value is 1.0,
// or it is all zeros when the input is silent. Empty input gives an empty
// spectrum.
func Transform(samples []float64) []float64 {
	if len(samples) == 0 {
		return []float64{}
	}

	return Normalize(Magnitudes(fft.FFTReal(samples)))
}

// TransformFloat32 widens samples and calls Transform.
func TransformFloat32(samples []float32) []float64 {
	return Transform(utils.Widen(samples))
}

// Magnitudes returns |c| for every coefficient.
func Magnitudes(coeffs []complex128) []float64 {
	mags := make([]float64, len(coeffs))
	for i, c := range coeffs {
		mags[i] = cmplx.Abs(c)
	}

	return mags
}

// Normalize scales mags in place so the peak is 1.0 and returns it.
// An all-zero slice is returned unchanged.
func Normalize(mags []float64) []float64 {
	if len(mags) == 0 {
		return mags
	}

	peak := floats.Max(mags)
	if peak == 0 {
		return mags
	}

	// x/x is exactly 1; x*(1/x) is not always
	for i := range mags {
		mags[i] /= peak
	}

	return mags
}

// BinIndex maps a frequency to the nearest bin of an n-point transform.
// The result is not range checked.
func BinIndex(freqHz float64, n int, sampleRate int) int {
	// half rounds towards +Inf
	return int(math.Floor(freqHz*float64(n)/float64(sampleRate) + 0.5))
}
