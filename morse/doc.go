// SPDX-License-Identifier: EPL-2.0

// Package morse segments a tone envelope into on-intervals and classifies
// each interval as a dot or a dash by its duration.
//
// Three entry points share one segmenter:
//
//   - Decode scans a single full-buffer spectrum and reads the same target
//     bin on every step. A trailing interval that is still sounding when the
//     scan ends is not emitted.
//   - DecodeSpectrogram follows the target bin across the frames of a
//     spectrum.Spectrogram, one step per hop.
//   - DecodeLevels accepts any per-step envelope.
//
// Thresholds are compared against normalized magnitudes in [0,1]. Durations
// are step counts converted to milliseconds; an interval of exactly DotMs is a
// dot and one of exactly DashMs is a dash.
//
// Synthesize goes the other way and renders a dot/dash string as a sine tone.
package morse
