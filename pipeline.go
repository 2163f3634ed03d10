// SPDX-License-Identifier: EPL-2.0

package morsepbx

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/morsepbx/audio"
	"github.com/ik5/morsepbx/config"
	"github.com/ik5/morsepbx/formats/aiff"
	"github.com/ik5/morsepbx/formats/mp3"
	"github.com/ik5/morsepbx/formats/vorbis"
	"github.com/ik5/morsepbx/formats/wav"
	"github.com/ik5/morsepbx/morse"
	"github.com/ik5/morsepbx/spectrum"
	"github.com/ik5/morsepbx/utils"
)

const defaultBufSize = 4096

// DefaultRegistry returns a registry with every bundled format decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// Decoder runs the whole pipeline with one configuration. It holds no
// per-call state and is safe for concurrent use.
type Decoder struct {
	cfg      config.Config
	params   morse.Params
	log      *zap.Logger
	registry *audio.Registry
	bufSize  int
}

type Option func(*Decoder)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.log = l
		}
	}
}

// WithRegistry replaces DefaultRegistry.
func WithRegistry(r *audio.Registry) Option {
	return func(d *Decoder) {
		if r != nil {
			d.registry = r
		}
	}
}

// WithBufSize sets how many samples are read from a source at a time.
func WithBufSize(n int) Option {
	return func(d *Decoder) {
		if n > 0 {
			d.bufSize = n
		}
	}
}

// NewDecoder validates cfg and builds a Decoder. A nil cfg means
// config.Default.
func NewDecoder(cfg *config.Config, opts ...Option) (*Decoder, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	params := cfg.Params()
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("morsepbx: %w", err)
	}

	d := &Decoder{
		cfg:      *cfg,
		params:   params,
		log:      zap.NewNop(),
		registry: DefaultRegistry(),
		bufSize:  defaultBufSize,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// DecodeBuffer analyses a finalized mono buffer.
func (d *Decoder) DecodeBuffer(ctx context.Context, buf *audio.Buffer) (string, error) {
	if buf == nil {
		return "", ErrEmptyBuffer
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("morsepbx: %w", err)
	}

	var (
		code string
		err  error
	)

	switch d.cfg.Mode {
	case config.ModeFixedBin:
		code, err = morse.Decode(spectrum.TransformFloat32(buf.Samples), buf.SampleRate, d.params)
	case config.ModeSpectrogram:
		code, err = d.decodeSpectrogram(ctx, buf)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, d.cfg.Mode)
	}

	if err != nil {
		return "", fmt.Errorf("morsepbx: %w", err)
	}

	d.log.Debug("decoded buffer",
		zap.String("mode", d.cfg.Mode),
		zap.Int("samples", len(buf.Samples)),
		zap.Int("sample_rate", buf.SampleRate),
		zap.Duration("duration", buf.Duration()),
		zap.String("code", code),
	)

	return code, nil
}

func (d *Decoder) decodeSpectrogram(ctx context.Context, buf *audio.Buffer) (string, error) {
	if buf.SampleRate <= 0 {
		return "", morse.ErrInvalidSampleRate
	}

	hop := d.cfg.HopSize(buf.SampleRate)

	sg, err := spectrum.NewSpectrogram(utils.Widen(buf.Samples), d.cfg.FrameSize, hop)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	d.log.Debug("spectrogram ready",
		zap.Int("frames", sg.Len()),
		zap.Int("frame_size", sg.FrameSize),
		zap.Int("hop_size", sg.HopSize),
	)

	return morse.DecodeSpectrogram(sg, buf.SampleRate, d.params)
}

// DecodeSource drains src, brings it to mono at the configured rate and
// decodes it. src is not closed.
func (d *Decoder) DecodeSource(ctx context.Context, src audio.Source) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("morsepbx: %w", err)
	}

	buf, err := audio.Prepare(src, d.cfg.SampleRate, d.bufSize)
	if err != nil {
		return "", fmt.Errorf("morsepbx: prepare: %w", err)
	}

	return d.DecodeBuffer(ctx, buf)
}

// DecodeReader decodes r with the decoder registered for format.
func (d *Decoder) DecodeReader(ctx context.Context, r io.Reader, format string) (string, error) {
	dec, ok := d.registry.Get(format)
	if !ok {
		return "", fmt.Errorf("morsepbx: %w: %q", audio.ErrUnknownFormat, format)
	}

	return d.decodeWith(ctx, dec, r)
}

// DecodeFile picks the decoder from the file extension.
func (d *Decoder) DecodeFile(ctx context.Context, path string) (string, error) {
	dec, err := d.registry.Lookup(path)
	if err != nil {
		return "", fmt.Errorf("morsepbx: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("morsepbx: %w", err)
	}
	defer f.Close()

	d.log.Info("decoding file", zap.String("path", path), zap.String("mode", d.cfg.Mode))

	return d.decodeWith(ctx, dec, f)
}

func (d *Decoder) decodeWith(ctx context.Context, dec audio.Decoder, r io.Reader) (string, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return "", fmt.Errorf("morsepbx: %w", err)
	}
	defer src.Close()

	return d.DecodeSource(ctx, src)
}
