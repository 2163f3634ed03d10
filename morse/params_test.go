// SPDX-License-Identifier: EPL-2.0

package morse

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	if p.TargetFrequencyHz != 1000 || p.DotMs != 200 || p.DashMs != 600 || p.SilenceThreshold != 0.1 {
		t.Errorf("DefaultParams() = %+v", p)
	}

	if err := p.Validate(); err != nil {
		t.Errorf("DefaultParams().Validate() = %v", err)
	}
}

func TestParamsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Params)
	}{
		{"zero frequency", func(p *Params) { p.TargetFrequencyHz = 0 }},
		{"nan frequency", func(p *Params) { p.TargetFrequencyHz = math.NaN() }},
		{"negative dot", func(p *Params) { p.DotMs = -1 }},
		{"dash equals dot", func(p *Params) { p.DashMs = p.DotMs }},
		{"infinite dash", func(p *Params) { p.DashMs = math.Inf(1) }},
		{"negative threshold", func(p *Params) { p.SilenceThreshold = -0.1 }},
		{"threshold of one", func(p *Params) { p.SilenceThreshold = 1 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := DefaultParams()
			tt.modify(&p)

			err := p.Validate()
			if !errors.Is(err, ErrInvalidParams) || !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Validate() = %v, want ErrInvalidParams", err)
			}
		})
	}

	p := DefaultParams()
	p.SilenceThreshold = 0

	if err := p.Validate(); err != nil {
		t.Errorf("zero threshold: Validate() = %v", err)
	}
}
