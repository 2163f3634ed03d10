// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// mockMP3Reader hands out PCM bytes in chunks of at most step bytes.
type mockMP3Reader struct {
	sampleRate int
	data       []byte
	step       int
	err        error
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	if len(m.data) == 0 {
		return 0, io.EOF
	}

	n := min(len(buf), len(m.data))
	if m.step > 0 {
		n = min(n, m.step)
	}

	copy(buf, m.data[:n])
	m.data = m.data[n:]

	return n, nil
}

func encode(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func collect(t *testing.T, s *source, size int) []float32 {
	t.Helper()

	buf := make([]float32, size)
	var out []float32

	for {
		n, err := s.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out
		}

		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not MP3 data")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockMP3Reader{sampleRate: 44100}, sampleRate: 44100, buf: make([]byte, 8192)}

	if src.SampleRate() != 44100 || src.Channels() != 2 {
		t.Errorf("format = %d Hz x %d, want 44100 Hz x 2", src.SampleRate(), src.Channels())
	}

	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	pcm := []int16{0, 16384, -16384, -32768, 8192, -8192}
	src := &source{dec: &mockMP3Reader{data: encode(pcm...)}}

	got := collect(t, src, 4)
	if len(got) != len(pcm) {
		t.Fatalf("got %d samples, want %d", len(got), len(pcm))
	}

	for i, v := range pcm {
		if want := float32(v) / 32768; got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_OddByteReads(t *testing.T) {
	t.Parallel()

	pcm := []int16{1000, -1000, 2000, -2000, 3000}
	// 3 byte reads split every other sample across calls
	src := &source{dec: &mockMP3Reader{data: encode(pcm...), step: 3}}

	got := collect(t, src, 2)
	if len(got) != len(pcm) {
		t.Fatalf("got %d samples, want %d", len(got), len(pcm))
	}

	for i, v := range pcm {
		if want := float32(v) / 32768; got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockMP3Reader{err: io.ErrUnexpectedEOF}}

	_, err := src.ReadSamples(make([]float32, 8))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}
