// SPDX-License-Identifier: EPL-2.0

// Package spectrum turns time-domain samples into normalized magnitude
// spectra for tone detection.
//
// Transform runs one discrete Fourier transform over the whole buffer
// (github.com/mjibson/go-dsp/fft, radix-2 for powers of two and Bluestein
// for every other length) and scales the magnitudes so the peak is exactly
// 1.0. Silent input yields an all-zero spectrum instead of dividing by zero.
//
// Spectrogram runs a Hann-windowed short-time transform so the magnitude at
// one frequency can be followed over time.
//
// All arithmetic is float64. Samples arrive as float32 and are widened once,
// so threshold comparisons against normalized magnitudes see the same values
// on every platform. Every function is pure and safe for concurrent use on
// independent inputs.
package spectrum
