// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF recordings with github.com/go-audio/aiff.
//
// # Decoding AIFF Files
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("cq.aiff")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// go-audio/aiff needs an io.ReadSeeker. Files satisfy it; any other reader is
// read into memory first.
//
// # Supported Formats
//
//   - Signed integer PCM at 8, 16, 24 and 32 bits
//   - Any channel count and sample rate
//
// Other depths fail with ErrUnsupportedBitDepth, and input that is not an
// AIFF container fails with ErrNotAiffFile. Compressed AIFF-C variants are
// rejected by the underlying library.
//
// # Preparing for the Morse Decoder
//
//	source, _ := aiff.Decoder{}.Decode(file)
//	buf, err := audio.Prepare(source, 0, 4096)
//
// The registry returned by morsepbx.DefaultRegistry maps both "aiff" and
// "aif" to this decoder.
package aiff
