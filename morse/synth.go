// SPDX-License-Identifier: EPL-2.0

package morse

import (
	"fmt"
	"math"
)

// SynthParams shapes the tone rendered by Synthesize.
type SynthParams struct {
	FrequencyHz float64
	Amplitude   float64
	DotMs       float64
	DashMs      float64
	// GapMs of silence follows every dot and dash.
	GapMs float64
	// SpaceMs of silence is rendered for each ' '.
	SpaceMs float64
}

func DefaultSynthParams() SynthParams {
	return SynthParams{
		FrequencyHz: 1000,
		Amplitude:   1,
		DotMs:       200,
		DashMs:      600,
		GapMs:       200,
		SpaceMs:     600,
	}
}

// maxSynthSamples bounds the rendered length so sizing cannot overflow.
const maxSynthSamples = 1 << 31

// Validate requires a positive frequency and amplitude, positive tone
// durations and non-negative pauses, all finite.
func (s SynthParams) Validate() error {
	switch {
	case !finite(s.FrequencyHz) || s.FrequencyHz <= 0:
		return fmt.Errorf("%w: tone frequency %v Hz", ErrInvalidParams, s.FrequencyHz)
	case !finite(s.Amplitude) || s.Amplitude <= 0:
		return fmt.Errorf("%w: amplitude %v", ErrInvalidParams, s.Amplitude)
	case !finite(s.DotMs) || s.DotMs <= 0:
		return fmt.Errorf("%w: dot duration %v ms", ErrInvalidParams, s.DotMs)
	case !finite(s.DashMs) || s.DashMs <= 0:
		return fmt.Errorf("%w: dash duration %v ms", ErrInvalidParams, s.DashMs)
	case !finite(s.GapMs) || s.GapMs < 0:
		return fmt.Errorf("%w: gap %v ms", ErrInvalidParams, s.GapMs)
	case !finite(s.SpaceMs) || s.SpaceMs < 0:
		return fmt.Errorf("%w: space %v ms", ErrInvalidParams, s.SpaceMs)
	}

	return nil
}

// Synthesize renders code, a string of '.', '-' and ' ', as mono samples at
// sampleRate. Each tone starts at phase zero.
func Synthesize(code string, sampleRate int, s SynthParams) ([]float32, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	span := func(ms float64) float64 { return math.Floor(float64(sampleRate) * ms / 1000) }

	total := 0.0

	for i := 0; i < len(code); i++ {
		switch code[i] {
		case byte(Dot):
			total += span(s.DotMs) + span(s.GapMs)
		case byte(Dash):
			total += span(s.DashMs) + span(s.GapMs)
		case ' ':
			total += span(s.SpaceMs)
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidSymbol, code[i], i)
		}
	}

	if total >= maxSynthSamples {
		return nil, fmt.Errorf("%w: %v samples is too long", ErrInvalidParams, total)
	}

	dot, dash, gap, space := int(span(s.DotMs)), int(span(s.DashMs)), int(span(s.GapMs)), int(span(s.SpaceMs))

	out := make([]float32, int(total))
	pos := 0
	step := 2 * math.Pi * s.FrequencyHz / float64(sampleRate)

	tone := func(n int) {
		for i := 0; i < n; i++ {
			out[pos+i] = float32(s.Amplitude * math.Sin(step*float64(i)))
		}

		pos += n + gap
	}

	for i := 0; i < len(code); i++ {
		switch code[i] {
		case byte(Dot):
			tone(dot)
		case byte(Dash):
			tone(dash)
		default:
			pos += space
		}
	}

	return out, nil
}
