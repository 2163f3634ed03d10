// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The tests below share process environment through t.Setenv and so do not
// run in parallel.

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"decode"}, {"encode", ".-"}, {"play", "x.wav"}} {
		err := run(context.Background(), args, &bytes.Buffer{})
		require.ErrorIs(t, err, errUsage, args)
	}
}

func TestRun_EncodeDecodeRecord(t *testing.T) {
	dir := t.TempDir()
	recordings := filepath.Join(dir, "takes")

	t.Setenv("MORSE_SAMPLE_RATE", "8000")
	t.Setenv("RECORDING_DIR", recordings)
	t.Setenv("LOG_LEVEL", "error")

	wavPath := filepath.Join(dir, "sos.wav")
	require.NoError(t, run(context.Background(), []string{"encode", "... --- ...", wavPath}, &bytes.Buffer{}))

	info, err := os.Stat(wavPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"decode", wavPath}, &out))
	assert.Equal(t, "...---...\n", out.String())

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"record", wavPath}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, recordings, filepath.Dir(lines[0]))
	assert.Equal(t, "...---...", lines[1])

	_, err = os.Stat(lines[0])
	require.NoError(t, err)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("LOG_LEVEL", "error")

	err := run(context.Background(), []string{"encode", ".x", filepath.Join(dir, "bad.wav")}, &bytes.Buffer{})
	require.Error(t, err)

	err = run(context.Background(), []string{"decode", filepath.Join(dir, "missing.flac")}, &bytes.Buffer{})
	require.Error(t, err)

	t.Setenv("MORSE_MODE", "guess")

	err = run(context.Background(), []string{"decode", filepath.Join(dir, "a.wav")}, &bytes.Buffer{})
	require.Error(t, err)
}
