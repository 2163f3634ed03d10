// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/morsepbx/audio"
	"github.com/ik5/morsepbx/utils"
)

// go-mp3 always emits interleaved stereo, 16-bit little endian.
const (
	channels       = 2
	bytesPerSample = 2
)

// mp3Reader is the part of gomp3.Decoder the source needs, split out for tests.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// odd trailing byte left over from the previous Read
	carry    byte
	hasCarry bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) * bytesPerSample
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	raw := s.buf[:want]

	start := 0
	if s.hasCarry {
		raw[0] = s.carry
		start = 1
		s.hasCarry = false
	}

	n, err := s.dec.Read(raw[start:])
	n += start

	samples := n / bytesPerSample
	if n%bytesPerSample != 0 {
		s.carry = raw[n-1]
		s.hasCarry = true
	}

	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(raw[i*bytesPerSample:]))
		dst[i] = utils.Int16ToFloat32(v)
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("%w", err)
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
