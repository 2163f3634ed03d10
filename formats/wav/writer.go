// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/morsepbx/utils"
)

const writeChunk = 8192

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. The encoder seeks
// back to patch the chunk sizes, so w must be seekable. w is not closed.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	return encode(w, sampleRate, len(samples), func(dst []int, offset int) {
		for i := range dst {
			dst[i] = int(samples[offset+i])
		}
	})
}

// WriteFloat32 converts float samples in [-1, 1] to 16-bit PCM and writes them
// as a mono WAV.
func WriteFloat32(w io.WriteSeeker, sampleRate int, samples []float32) error {
	return encode(w, sampleRate, len(samples), func(dst []int, offset int) {
		for i := range dst {
			dst[i] = int(utils.Float32ToInt16(samples[offset+i]))
		}
	})
}

func encode(w io.WriteSeeker, sampleRate int, total int, fill func(dst []int, offset int)) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, 1, formatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, min(total, writeChunk)),
		SourceBitDepth: 16,
	}

	// at least one Write, even when empty, so the encoder emits its headers
	for offset := 0; ; {
		n := min(writeChunk, total-offset)
		buf.Data = buf.Data[:n]
		fill(buf.Data, offset)

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}

		offset += n
		if offset >= total {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
