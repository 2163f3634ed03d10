// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes WAV recordings on top of github.com/go-audio/wav.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("cq.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Supported input:
//   - Integer PCM at 8 (unsigned), 16, 24 or 32 bits
//   - Mono or multi-channel, any sample rate
//   - Chunks other than fmt and data are skipped
//
// Samples come back as float32 in [-1.0, 1.0). IEEE float WAV files are
// rejected with ErrOnlyPCMSupported, other depths with
// ErrUnsupportedBitDepth. Readers that cannot seek are buffered in memory.
//
// A read error that arrives together with decoded samples returns both, so
// nothing already decoded is lost.
//
// # Writing
//
// WriteWAV16 and WriteFloat32 write mono 16-bit PCM. The writer must be an
// io.WriteSeeker because the RIFF and data sizes are patched on close:
//
//	f, _ := os.Create("dot.wav")
//	defer f.Close()
//	err := wav.WriteFloat32(f, 44100, samples)
//
// Float samples are clamped to [-1, 1] and scaled by 32767. An empty sample
// slice still produces a valid file with an empty data chunk.
//
// # Round Trip
//
//	samples, _ := morse.Synthesize("..- .", 8000, morse.DefaultSynthParams())
//	wav.WriteFloat32(f, 8000, samples)
//	f.Seek(0, io.SeekStart)
//	source, _ := wav.Decoder{}.Decode(f)
package wav
