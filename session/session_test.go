// SPDX-License-Identifier: EPL-2.0

package session

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/morsepbx/audio"
	"github.com/ik5/morsepbx/formats/wav"
	"github.com/ik5/morsepbx/internal/audiotest"
)

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New(0)
	require.ErrorIs(t, err, ErrInvalidSampleRate)

	s, err := New(8000)
	require.NoError(t, err)
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, 8000, s.SampleRate())
}

func TestSession_Transitions(t *testing.T) {
	t.Parallel()

	s, err := New(8000)
	require.NoError(t, err)

	require.ErrorIs(t, s.Write([]float32{1}), ErrNotRecording)
	_, err = s.Stop()
	require.ErrorIs(t, err, ErrNotRecording)
	_, err = s.Buffer()
	require.ErrorIs(t, err, ErrNotStopped)

	require.NoError(t, s.Start())
	assert.Equal(t, Recording, s.State())
	require.ErrorIs(t, s.Start(), ErrAlreadyRecording)

	require.NoError(t, s.Write([]float32{0.1, 0.2}))
	require.NoError(t, s.Write([]float32{0.3}))

	_, err = s.Buffer()
	require.ErrorIs(t, err, ErrNotStopped)

	buf, err := s.Stop()
	require.NoError(t, err)
	assert.Equal(t, Stopped, s.State())
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, buf.Samples)
	assert.Equal(t, 8000, buf.SampleRate)

	got, err := s.Buffer()
	require.NoError(t, err)
	assert.Same(t, buf, got)

	require.ErrorIs(t, s.Write([]float32{1}), ErrNotRecording)

	// a new take leaves the old buffer untouched
	require.NoError(t, s.Start())
	require.NoError(t, s.Write([]float32{0.9}))

	next, err := s.Stop()
	require.NoError(t, err)
	assert.Equal(t, []float32{0.9}, next.Samples)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, buf.Samples)
}

func TestSession_Capture(t *testing.T) {
	t.Parallel()

	s, err := New(8000)
	require.NoError(t, err)

	src := audiotest.NewConstantSource(8000, 2, 1000, 0.5)
	require.ErrorIs(t, s.Capture(context.Background(), src), ErrNotRecording)

	require.NoError(t, s.Start())
	require.NoError(t, s.Capture(context.Background(), src))

	buf, err := s.Stop()
	require.NoError(t, err)
	require.Len(t, buf.Samples, 1000)

	for _, v := range buf.Samples {
		require.InDelta(t, 0.5, v, 1e-6)
	}
}

func TestSession_CaptureResamples(t *testing.T) {
	t.Parallel()

	s, err := New(8000)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	require.NoError(t, s.Capture(context.Background(), audiotest.NewSineSource(16000, 1, 16000, 440)))

	buf, err := s.Stop()
	require.NoError(t, err)
	assert.InDelta(t, 8000, len(buf.Samples), 160)
}

func TestSession_CaptureCanceled(t *testing.T) {
	t.Parallel()

	s, err := New(8000)
	require.NoError(t, err)
	require.NoError(t, s.Start())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = s.Capture(ctx, audiotest.NewSilentSource(8000, 1, 100))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Recording, s.State())
}

func TestSession_Save(t *testing.T) {
	t.Parallel()

	s, err := New(8000)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "takes")

	_, err = s.Save(dir)
	require.ErrorIs(t, err, ErrNotStopped)

	samples := make([]float32, 800)
	for i := range samples {
		samples[i] = float32(i%16-8) / 16
	}

	require.NoError(t, s.Start())
	require.NoError(t, s.Write(samples))
	_, err = s.Stop()
	require.NoError(t, err)

	path, err := s.Save(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "recording-"))
	assert.Equal(t, ".wav", filepath.Ext(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	src, err := wav.Decoder{}.Decode(f)
	require.NoError(t, err)

	got, err := audio.ReadAll(src, 256)
	require.NoError(t, err)
	assert.Equal(t, 8000, got.SampleRate)
	require.Len(t, got.Samples, len(samples))

	for i := range samples {
		assert.InDelta(t, samples[i], got.Samples[i], 1.0/16384)
	}

	other, err := s.Save(dir)
	require.NoError(t, err)
	assert.NotEqual(t, path, other)
}
