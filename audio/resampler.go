// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Resampler streams src at a new sample rate using Catmull-Rom interpolation.
// It keeps the channel layout and applies a one-pole low-pass when
// downsampling. When both rates match it passes samples through untouched,
// which keeps tone durations sample exact for the decoder.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// window[1] and window[2] bracket the output position;
	// window[0] and window[3] are the outer Catmull-Rom taps.
	window [4][]float32
	primed bool
	pos    float64
	eof    bool

	scratch []float32

	lowpass   bool
	alpha     float32
	lpState   []float32
	lpStarted bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		scratch:  make([]float32, channels),
		lowpass:  step > 1.0,
		alpha:    0.5,
		lpState:  make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Passthrough reports whether source and destination rates are equal.
func (r *Resampler) Passthrough() bool {
	return r.src.SampleRate() == r.dstRate
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.Passthrough() {
		return r.src.ReadSamples(dst)
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0

			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		r.interpolate(dst[written*r.channels:(written+1)*r.channels], float32(r.pos))
		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}

// readFrame pulls one frame from src into dst, filtering it when downsampling.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	n, err := r.src.ReadSamples(r.scratch)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("%w", err)
	}

	if n == 0 {
		return false, err
	}

	copy(dst, r.scratch[:n])

	if r.lowpass {
		if !r.lpStarted {
			// seed with the first frame so the filter has no warm-up ramp
			copy(r.lpState, dst)
			r.lpStarted = true
		}

		for c := 0; c < r.channels; c++ {
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.lpState[c]
			r.lpState[c] = dst[c]
		}
	}

	return true, err
}

func (r *Resampler) prime() error {
	loaded := 0

	for i := 0; i < len(r.window); i++ {
		ok, err := r.readFrame(r.window[loaded])
		if ok {
			loaded++
		}

		if errors.Is(err, io.EOF) {
			r.eof = true
			break
		}

		if err != nil {
			return err
		}
	}

	if loaded == 0 {
		return io.EOF
	}

	// short sources repeat their last frame
	for i := loaded; i < len(r.window); i++ {
		copy(r.window[i], r.window[loaded-1])
	}

	r.primed = true

	return nil
}

// advance shifts the window by one source frame.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	w := &r.window
	w[0], w[1], w[2], w[3] = w[1], w[2], w[3], w[0]

	ok, err := r.readFrame(w[3])
	if errors.Is(err, io.EOF) {
		r.eof = true
	} else if err != nil {
		return err
	}

	if !ok {
		if r.eof {
			return io.EOF
		}

		copy(w[3], w[2])
	}

	return nil
}

func (r *Resampler) interpolate(out []float32, x float32) {
	w := &r.window
	for c := 0; c < r.channels; c++ {
		out[c] = catmullRom(w[0][c], w[1][c], w[2][c], w[3][c], x)
	}
}

// catmullRom interpolates between y1 (x=0) and y2 (x=1).
func catmullRom(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
