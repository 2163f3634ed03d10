// SPDX-License-Identifier: EPL-2.0

package morse

// ToneInterval is the half-open step range [Start, End) during which the
// level stayed above the silence threshold.
type ToneInterval struct {
	Start int
	End   int
}

// Len is the number of steps in the interval.
func (t ToneInterval) Len() int { return t.End - t.Start }

// DurationMs converts the interval to milliseconds for steps of 1/stepRate
// seconds.
func (t ToneInterval) DurationMs(stepRate float64) float64 {
	return float64(t.Len()) * 1000 / stepRate
}

// Segment returns the closed on-intervals of levels. An interval opens on
// the first step above threshold and closes on the first step at or below
// it. An interval still open after the last step is discarded.
func Segment(levels []float64, threshold float64) []ToneInterval {
	var (
		out      []ToneInterval
		sounding bool
		start    int
	)

	for i, v := range levels {
		switch {
		case v > threshold && !sounding:
			sounding = true
			start = i
		case v <= threshold && sounding:
			sounding = false
			out = append(out, ToneInterval{Start: start, End: i})
		}
	}

	return out
}

// Classify maps a duration to a symbol. Durations in [DotMs, DashMs) are
// dots, DashMs and longer are dashes, anything shorter is noise and reports
// false.
func Classify(durationMs float64, p Params) (Symbol, bool) {
	switch {
	case durationMs >= p.DashMs:
		return Dash, true
	case durationMs >= p.DotMs:
		return Dot, true
	default:
		return 0, false
	}
}
