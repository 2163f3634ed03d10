// SPDX-License-Identifier: EPL-2.0

// Package session captures a recording and hands it over as a finalized
// buffer once stopped.
//
// A Session moves Idle -> Recording -> Stopped. Samples are accepted only
// while recording; the buffer is available only once stopped. Starting again
// from Stopped discards the previous take. A Session is owned by one caller
// and is not safe for concurrent use.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ik5/morsepbx/audio"
	"github.com/ik5/morsepbx/formats/wav"
)

type State int

const (
	Idle State = iota
	Recording
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session holds one mono take at a fixed sample rate.
type Session struct {
	sampleRate int
	state      State
	samples    []float32
	buf        *audio.Buffer
}

func New(sampleRate int) (*Session, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	return &Session{sampleRate: sampleRate}, nil
}

func (s *Session) State() State    { return s.state }
func (s *Session) SampleRate() int { return s.sampleRate }

// Start begins a new take.
func (s *Session) Start() error {
	if s.state == Recording {
		return ErrAlreadyRecording
	}

	s.state = Recording
	s.samples = s.samples[:0]
	s.buf = nil

	return nil
}

// Write appends mono samples at the session rate.
func (s *Session) Write(samples []float32) error {
	if s.state != Recording {
		return ErrNotRecording
	}

	s.samples = append(s.samples, samples...)

	return nil
}

// Capture drains src into the take, mixing it down to mono and resampling
// it to the session rate. ctx is checked between reads.
func (s *Session) Capture(ctx context.Context, src audio.Source) error {
	if s.state != Recording {
		return ErrNotRecording
	}

	mono := audio.NewMonoMixer(audio.NewResampler(src, s.sampleRate))
	buf := make([]float32, max(1, mono.BufSize()))

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session: capture: %w", err)
		}

		n, err := mono.ReadSamples(buf)
		s.samples = append(s.samples, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("session: capture: %w", err)
		}
	}
}

// Stop finalizes the take. The returned buffer owns its samples.
func (s *Session) Stop() (*audio.Buffer, error) {
	if s.state != Recording {
		return nil, ErrNotRecording
	}

	s.state = Stopped
	s.buf = &audio.Buffer{
		Samples:    append([]float32(nil), s.samples...),
		SampleRate: s.sampleRate,
	}

	return s.buf, nil
}

// Buffer returns the finalized take.
func (s *Session) Buffer() (*audio.Buffer, error) {
	if s.state != Stopped {
		return nil, ErrNotStopped
	}

	return s.buf, nil
}

// Save writes the finalized take to dir as a 16-bit mono WAV named
// recording-<uuid>.wav and returns its path. dir is created if missing.
func (s *Session) Save(dir string) (string, error) {
	if s.state != Stopped {
		return "", ErrNotStopped
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("session: %w", err)
	}

	path := filepath.Join(dir, "recording-"+uuid.NewString()+".wav")

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("session: %w", err)
	}

	if err := wav.WriteFloat32(f, s.sampleRate, s.buf.Samples); err != nil {
		f.Close()
		os.Remove(path)

		return "", fmt.Errorf("session: write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("session: %w", err)
	}

	return path, nil
}
