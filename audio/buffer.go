// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Buffer is a complete, finalized mono recording.
type Buffer struct {
	Samples    []float32
	SampleRate int
}

// Duration of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}

	return time.Duration(len(b.Samples)) * time.Second / time.Duration(b.SampleRate)
}

// ReadAll drains src into a Buffer, reading bufSize values at a time.
// src must be mono; pass it through a MonoMixer first otherwise.
func ReadAll(src Source, bufSize int) (*Buffer, error) {
	if bufSize <= 0 {
		return nil, ErrInvalidBufSize
	}

	if src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}

	out := &Buffer{
		Samples:    make([]float32, 0, src.SampleRate()),
		SampleRate: src.SampleRate(),
	}
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		out.Samples = append(out.Samples, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return out, nil
}

// Prepare resamples src to targetRate, mixes it down to mono and collects
// the whole stream. A targetRate of 0 keeps the source rate.
func Prepare(src Source, targetRate int, bufSize int) (*Buffer, error) {
	if targetRate < 0 {
		return nil, ErrInvalidSampleRate
	}

	if targetRate == 0 {
		targetRate = src.SampleRate()
	}

	if targetRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	return ReadAll(NewMonoMixer(NewResampler(src, targetRate)), bufSize)
}
