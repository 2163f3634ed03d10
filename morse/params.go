// SPDX-License-Identifier: EPL-2.0

package morse

import (
	"fmt"
	"math"
)

// Params controls detection and classification.
type Params struct {
	TargetFrequencyHz float64
	DotMs             float64
	DashMs            float64
	// SilenceThreshold is on the normalized [0,1] magnitude scale. A step is
	// sounding when its level is strictly above it.
	SilenceThreshold float64
}

func DefaultParams() Params {
	return Params{
		TargetFrequencyHz: 1000,
		DotMs:             200,
		DashMs:            600,
		SilenceThreshold:  0.1,
	}
}

// Validate reports the first unusable field, wrapped in ErrInvalidParams.
func (p Params) Validate() error {
	switch {
	case !finite(p.TargetFrequencyHz) || p.TargetFrequencyHz <= 0:
		return fmt.Errorf("%w: target frequency %v Hz", ErrInvalidParams, p.TargetFrequencyHz)
	case !finite(p.DotMs) || p.DotMs <= 0:
		return fmt.Errorf("%w: dot duration %v ms", ErrInvalidParams, p.DotMs)
	case !finite(p.DashMs) || p.DashMs <= p.DotMs:
		return fmt.Errorf("%w: dash duration %v ms not above dot duration %v ms", ErrInvalidParams, p.DashMs, p.DotMs)
	case !finite(p.SilenceThreshold) || p.SilenceThreshold < 0 || p.SilenceThreshold >= 1:
		return fmt.Errorf("%w: silence threshold %v outside [0,1)", ErrInvalidParams, p.SilenceThreshold)
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
