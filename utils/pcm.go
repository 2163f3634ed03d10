// SPDX-License-Identifier: EPL-2.0

// Package utils holds scalar PCM conversions shared by the format decoders,
// the tone synthesizer and the recording session.
package utils

// PCM16Scale maps int16 PCM onto [-1, 1).
const PCM16Scale float32 = 32768.0

// Float32ToInt16 clamps x to [-1, 1] and scales it to int16 PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from wrapping around
	return int16(x * 32767.0)
}

// Int16ToFloat32 converts one int16 PCM sample to [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / PCM16Scale
}

// FullScale returns the divisor that maps signed integer PCM of the given
// bit depth onto [-1, 1). Unknown depths fall back to 16 bit.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return PCM16Scale
	}
}

// IntToFloat32 converts a signed integer PCM sample of bitDepth bits to [-1, 1).
func IntToFloat32(v int, bitDepth int) float32 {
	return float32(v) / FullScale(bitDepth)
}

// Widen copies float32 samples into a new float64 slice.
func Widen(src []float32) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}

	return dst
}
