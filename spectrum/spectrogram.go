// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/floats"
)

// Spectrogram holds one magnitude spectrum per analysis frame. Frame k is
// centered on sample k*HopSize, covers [k*HopSize-FrameSize/2,
// k*HopSize-FrameSize/2+FrameSize) and keeps the bins 0..FrameSize/2. All frames share one normalization: the largest magnitude
// across the whole spectrogram is 1.0.
type Spectrogram struct {
	Frames    [][]float64
	FrameSize int
	HopSize   int
}

// NewSpectrogram analyses samples with Hann-windowed frames of frameSize
// samples, advancing hopSize samples between frame centers. Samples outside
// the buffer count as zero. Empty input yields a spectrogram with no frames.
func NewSpectrogram(samples []float64, frameSize, hopSize int) (*Spectrogram, error) {
	if frameSize <= 0 {
		return nil, ErrInvalidFrameSize
	}

	if hopSize <= 0 {
		return nil, ErrInvalidHopSize
	}

	sg := &Spectrogram{FrameSize: frameSize, HopSize: hopSize}
	if len(samples) == 0 {
		return sg, nil
	}

	taper := window.Hann(frameSize)
	frame := make([]float64, frameSize)
	bins := frameSize/2 + 1
	peak := 0.0

	for center := 0; center < len(samples); center += hopSize {
		lo := center - frameSize/2
		hi := min(len(samples), lo+frameSize)

		clear(frame)
		copy(frame[max(0, -lo):], samples[max(0, lo):hi])

		for i, w := range taper {
			frame[i] *= w
		}

		mags := Magnitudes(fft.FFTReal(frame)[:bins])
		peak = max(peak, floats.Max(mags))
		sg.Frames = append(sg.Frames, mags)
	}

	if peak > 0 {
		for _, mags := range sg.Frames {
			for i := range mags {
				mags[i] /= peak
			}
		}
	}

	return sg, nil
}

// Len is the number of frames.
func (s *Spectrogram) Len() int { return len(s.Frames) }

// Bin returns the bin nearest freqHz for this frame size. ok is false when
// the frequency falls outside 0..sampleRate/2 or sampleRate is not positive.
func (s *Spectrogram) Bin(freqHz float64, sampleRate int) (bin int, ok bool) {
	if sampleRate <= 0 {
		return 0, false
	}

	bin = BinIndex(freqHz, s.FrameSize, sampleRate)

	return bin, bin >= 0 && bin <= s.FrameSize/2
}

// Track returns the magnitude of one bin in every frame.
func (s *Spectrogram) Track(bin int) []float64 {
	track := make([]float64, len(s.Frames))
	for k, mags := range s.Frames {
		if bin >= 0 && bin < len(mags) {
			track[k] = mags[bin]
		}
	}

	return track
}
