// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio plumbing that feeds the Morse
// decoder.
//
// The building blocks are:
//   - Source, the streaming PCM interface every format decoder returns
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Registry, mapping file extensions to decoders
//   - Buffer, ReadAll and Prepare for turning a stream into a finalized
//     mono buffer
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. A read that returns
// io.EOF ends the stream; it may still carry a final batch of samples.
//
// # Preparing a Recording
//
// The decoder works on complete buffers only. Prepare chains the resampler
// and mono mixer and drains the result:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, err := audio.Prepare(src, 44100, 4096)
//
// When the source already runs at the target rate the resampler passes
// samples through unchanged.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, err := registry.Lookup("recording.WAV")
//
// Lookup returns ErrUnknownFormat for unregistered extensions. Keys are case
// insensitive and a leading dot is ignored, so "WAV", ".wav" and "wav" name
// the same decoder. The registry is safe for concurrent use.
//
// # Resampling
//
//	resampler := audio.NewResampler(source, 8000)
//	if resampler.Passthrough() {
//	    // rates already match
//	}
//
// The resampler interpolates with a Catmull-Rom spline over a four frame
// window. When downsampling, every input frame first goes through a one-pole
// lowpass to reduce aliasing. len(dst) must be a multiple of the channel
// count, otherwise ReadSamples returns ErrInvalidDstSize.
//
// # Channel Mixing
//
//	mono := audio.NewMonoMixer(source)
//	n, err := mono.ReadSamples(buf) // n mono frames
//
// MonoMixer averages all channels. Mono sources are passed through.
//
// # Reading Everything
//
//	buf, err := audio.ReadAll(mono, 4096)
//	fmt.Println(buf.Duration())
//
// ReadAll fails with ErrInvalidBufSize for a non-positive read size and with
// ErrInvalidSampleRate when the source reports a non-positive rate.
package audio
