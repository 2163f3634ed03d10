// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 recordings with github.com/hajimehoshi/go-mp3.
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("cq.mp3")
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
//   - Sample format: float32 in [-1.0, 1.0)
//   - Channels: always 2, go-mp3 upmixes mono streams
//   - Sample rate: whatever the stream carries, usually 44.1 kHz or 48 kHz
//
// go-mp3 hands out bytes, not samples. A read that ends halfway through a
// 16-bit sample keeps the odd byte for the next call, so no sample is split
// or lost between reads.
//
// # Preparing for the Morse Decoder
//
// The Morse decoder wants one finalized mono buffer. audio.Prepare chains
// the resampler and the mono mixer and drains the stream:
//
//	source, _ := mp3.Decoder{}.Decode(file)
//	buf, err := audio.Prepare(source, 8000, 4096)
//	// buf.Samples is mono at 8 kHz
//
// # Limitations
//
//   - Decoding only, MP3 is never written
//   - The whole stream is drained before decoding starts
package mp3
