// SPDX-License-Identifier: EPL-2.0

package morse

import (
	"fmt"
	"math"

	"github.com/ik5/morsepbx/spectrum"
)

// Decode scans a full-buffer spectrum of a recording taken at sampleRate.
// The target bin is round(TargetFrequencyHz*len(spec)/sampleRate) and must
// lie inside the spectrum. Every one of the len(spec) steps reads that same
// bin, each step standing for one sample. Empty input decodes to "" before
// p is looked at.
func Decode(spec []float64, sampleRate int, p Params) (string, error) {
	if sampleRate <= 0 {
		return "", ErrInvalidSampleRate
	}

	if len(spec) == 0 {
		return "", nil
	}

	if err := p.Validate(); err != nil {
		return "", err
	}

	target := spectrum.BinIndex(p.TargetFrequencyHz, len(spec), sampleRate)
	if target < 0 || target >= len(spec) {
		return "", fmt.Errorf("%w: bin %d of %d", ErrTargetOutOfRange, target, len(spec))
	}

	levels := make([]float64, len(spec))
	for i := range levels {
		levels[i] = spec[target]
	}

	return DecodeLevels(levels, float64(sampleRate), p)
}

// DecodeLevels decodes an envelope whose steps each last 1/stepRate seconds.
func DecodeLevels(levels []float64, stepRate float64, p Params) (string, error) {
	if math.IsNaN(stepRate) || math.IsInf(stepRate, 0) || stepRate <= 0 {
		return "", ErrInvalidSampleRate
	}

	if len(levels) == 0 {
		return "", nil
	}

	if err := p.Validate(); err != nil {
		return "", err
	}

	var out Symbols

	for _, iv := range Segment(levels, p.SilenceThreshold) {
		if sym, ok := Classify(iv.DurationMs(stepRate), p); ok {
			out = append(out, sym)
		}
	}

	return out.String(), nil
}

// DecodeSpectrogram follows the target bin across the frames of sg, which
// was computed from a recording at sampleRate. One step is one hop.
func DecodeSpectrogram(sg *spectrum.Spectrogram, sampleRate int, p Params) (string, error) {
	if sampleRate <= 0 {
		return "", ErrInvalidSampleRate
	}

	if sg == nil || sg.Len() == 0 {
		return "", nil
	}

	if err := p.Validate(); err != nil {
		return "", err
	}

	bin, ok := sg.Bin(p.TargetFrequencyHz, sampleRate)
	if !ok {
		return "", fmt.Errorf("%w: bin %d of %d", ErrTargetOutOfRange, bin, sg.FrameSize/2+1)
	}

	return DecodeLevels(sg.Track(bin), float64(sampleRate)/float64(sg.HopSize), p)
}
