// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/morsepbx/internal/audiotest"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 10, 0.25)
	mono := NewMonoMixer(src)

	buf := make([]float32, 10)
	n, err := mono.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 10 {
		t.Fatalf("ReadSamples() n = %d, want 10", n)
	}

	for i := 0; i < n; i++ {
		if buf[i] != 0.25 {
			t.Errorf("buf[%d] = %v, want 0.25", i, buf[i])
		}
	}
}

func TestMonoMixer_StereoToMono(t *testing.T) {
	t.Parallel()

	// left = 1.0, right = 0.0
	src := audiotest.NewMockSource(8000, 2, 8, func(_ int, ch int) float32 {
		if ch == 0 {
			return 1.0
		}
		return 0.0
	})
	mono := NewMonoMixer(src)

	buf := make([]float32, 8)
	n, _ := mono.ReadSamples(buf)

	if n != 8 {
		t.Fatalf("ReadSamples() n = %d, want 8 frames", n)
	}

	for i := 0; i < n; i++ {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_MultiChannel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		channels int
		want     float32
	}{
		{3, 1.0},
		{4, 1.5},
		{6, 2.5},
	}

	for _, tt := range tests {
		src := audiotest.NewMockSource(8000, tt.channels, 4, func(_ int, ch int) float32 {
			return float32(ch)
		})
		mono := NewMonoMixer(src)

		buf := make([]float32, 4)
		n, _ := mono.ReadSamples(buf)

		for i := 0; i < n; i++ {
			if math.Abs(float64(buf[i]-tt.want)) > 1e-6 {
				t.Errorf("%d channels: buf[%d] = %v, want %v", tt.channels, i, buf[i], tt.want)
			}
		}
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10))

	n, err := mono.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 5))

	buf := make([]float32, 16)
	n, err := mono.ReadSamples(buf)
	if n != 5 || err != io.EOF {
		t.Fatalf("first read = %d, %v; want 5, EOF", n, err)
	}

	n, err = mono.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("second read = %d, %v; want 0, EOF", n, err)
	}
}

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(22050, 2, 10)
	mono := NewMonoMixer(src)

	if mono.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", mono.SampleRate())
	}

	if mono.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mono.Channels())
	}

	if err := mono.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if !src.Closed() {
		t.Error("Close() did not close the source")
	}
}

func TestMonoMixer_LargeRead(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(audiotest.NewConstantSource(8000, 2, 10000, 0.5))

	buf := make([]float32, 10000)
	n, _ := mono.ReadSamples(buf)
	if n != 10000 {
		t.Errorf("ReadSamples() n = %d, want 10000", n)
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		mono := NewMonoMixer(audiotest.NewSineSource(44100, 2, 4096, 440))
		mono.ReadSamples(buf)
	}
}
