// SPDX-License-Identifier: EPL-2.0

// Package morsepbx decodes Morse code keyed as an audio tone.
//
// A recording in any supported format is decoded to samples, resampled and
// mixed down to mono, then analysed at the target frequency:
//
//	dec, _ := morsepbx.NewDecoder(config.Default())
//	code, err := dec.DecodeFile(ctx, "cq.wav")
//	// code is a string of '.' and '-'
//
// # Modes
//
// config.ModeSpectrogram (the default) follows the target frequency through
// a short-time spectrogram, one step per hop, and is what recordings need.
//
// config.ModeFixedBin runs a single transform over the whole buffer and
// scans one bin of it as if it were a time series. A tone present at the
// target frequency keeps that bin above the threshold for the whole scan,
// and an interval still open when the scan ends is never emitted, so this
// mode returns "" for real recordings. It is kept for compatibility.
//
// # Formats
//
// DefaultRegistry maps file extensions to decoders:
//   - wav via formats/wav (PCM 8, 16, 24 and 32 bit)
//   - mp3 via formats/mp3
//   - ogg via formats/vorbis
//   - aiff, aif via formats/aiff
//
// The same packages back the CLI in cmd/morsepbx, which also renders Morse
// to WAV and stores takes through the session package.
package morsepbx
