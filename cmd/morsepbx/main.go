// SPDX-License-Identifier: EPL-2.0

// Command morsepbx decodes Morse code from audio files and renders Morse
// code to WAV.
//
//	morsepbx decode <input.{wav|mp3|ogg|aiff}>
//	morsepbx record <input.{wav|mp3|ogg|aiff}>
//	morsepbx encode <code> <output.wav>
//
// Settings come from the environment and from ./.env when present.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/ik5/morsepbx"
	"github.com/ik5/morsepbx/config"
	"github.com/ik5/morsepbx/formats/wav"
	"github.com/ik5/morsepbx/morse"
	"github.com/ik5/morsepbx/session"
)

const (
	usage = "usage: morsepbx decode <input> | record <input> | encode <code> <output.wav>"

	defaultEncodeRate = 44100
)

var errUsage = errors.New(usage)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	var envFiles []string
	if _, err := os.Stat(".env"); err == nil {
		envFiles = append(envFiles, ".env")
	}

	cfg, err := config.Load(ctx, envFiles...)
	if err != nil {
		return err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	switch {
	case args[0] == "decode" && len(args) == 2:
		return decode(ctx, cfg, logger, args[1], stdout)
	case args[0] == "record" && len(args) == 2:
		return record(ctx, cfg, logger, args[1], stdout)
	case args[0] == "encode" && len(args) == 3:
		return encode(cfg, logger, args[1], args[2])
	default:
		return errUsage
	}
}

func decode(ctx context.Context, cfg *config.Config, logger *zap.Logger, path string, stdout io.Writer) error {
	dec, err := morsepbx.NewDecoder(cfg, morsepbx.WithLogger(logger))
	if err != nil {
		return err
	}

	code, err := dec.DecodeFile(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, code)

	return nil
}

// record captures path through a session, stores the take in the recording
// directory and decodes it.
func record(ctx context.Context, cfg *config.Config, logger *zap.Logger, path string, stdout io.Writer) error {
	reg := morsepbx.DefaultRegistry()

	dec, err := reg.Lookup(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return err
	}
	defer src.Close()

	rate := cfg.SampleRate
	if rate == 0 {
		rate = src.SampleRate()
	}

	sess, err := session.New(rate)
	if err != nil {
		return err
	}

	if err := sess.Start(); err != nil {
		return err
	}

	if err := sess.Capture(ctx, src); err != nil {
		return err
	}

	buf, err := sess.Stop()
	if err != nil {
		return err
	}

	saved, err := sess.Save(cfg.RecordingDir)
	if err != nil {
		return err
	}

	logger.Info("recording saved",
		zap.String("path", saved),
		zap.Duration("duration", buf.Duration()),
	)

	pipeline, err := morsepbx.NewDecoder(cfg, morsepbx.WithLogger(logger), morsepbx.WithRegistry(reg))
	if err != nil {
		return err
	}

	code, err := pipeline.DecodeBuffer(ctx, buf)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, saved)
	fmt.Fprintln(stdout, code)

	return nil
}

func encode(cfg *config.Config, logger *zap.Logger, code, outPath string) error {
	rate := cfg.SampleRate
	if rate == 0 {
		rate = defaultEncodeRate
	}

	sp := morse.DefaultSynthParams()
	sp.FrequencyHz = cfg.TargetFrequencyHz
	sp.DotMs = cfg.DotMs
	sp.DashMs = cfg.DashMs
	sp.GapMs = cfg.DotMs
	sp.SpaceMs = cfg.DashMs

	samples, err := morse.Synthesize(code, rate, sp)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	if err := wav.WriteFloat32(out, rate, samples); err != nil {
		out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return err
	}

	logger.Info("encoded",
		zap.String("path", outPath),
		zap.Int("samples", len(samples)),
		zap.Int("sample_rate", rate),
	)

	return nil
}
