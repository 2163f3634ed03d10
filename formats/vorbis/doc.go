// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis recordings with github.com/jfreymuth/oggvorbis.
//
// # Decoding Ogg Files
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("cq.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: float32 in [-1.0, 1.0], interleaved
//   - Channels: as encoded in the stream
//   - Sample rate: as encoded in the stream
//
// oggvorbis already produces float32, so samples are decoded straight into
// dst. Reads are trimmed to whole frames: with a stereo stream and a dst of
// 4095 values, at most 4094 are written.
//
// # Preparing for the Morse Decoder
//
//	source, _ := vorbis.Decoder{}.Decode(file)
//	buf, err := audio.Prepare(source, 0, 4096)
//	// a target rate of 0 keeps the stream rate
//
// Decoding only; Ogg is never written.
package vorbis
