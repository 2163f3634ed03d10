// SPDX-License-Identifier: EPL-2.0

// Package config loads decoder settings from the environment and an
// optional .env file.
package config

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ik5/morsepbx/morse"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Decoding modes.
const (
	ModeSpectrogram = "spectrogram"
	ModeFixedBin    = "fixed-bin"
)

// Config holds all settings of the decoder and the CLI.
type Config struct {
	// Decoding
	TargetFrequencyHz float64 `env:"MORSE_TARGET_FREQ_HZ, default=1000" validate:"gt=0"`
	DotMs             float64 `env:"MORSE_DOT_MS, default=200" validate:"gt=0"`
	DashMs            float64 `env:"MORSE_DASH_MS, default=600" validate:"gtfield=DotMs"`
	SilenceThreshold  float64 `env:"MORSE_SILENCE_THRESHOLD, default=0.1" validate:"gte=0,lt=1"`
	Mode              string  `env:"MORSE_MODE, default=spectrogram" validate:"oneof=spectrogram fixed-bin"`

	// Analysis. A SampleRate of 0 keeps the rate of the input.
	SampleRate int     `env:"MORSE_SAMPLE_RATE, default=0" validate:"gte=0"`
	FrameSize  int     `env:"MORSE_FRAME_SIZE, default=1024" validate:"gt=0"`
	HopMs      float64 `env:"MORSE_HOP_MS, default=10" validate:"gt=0"`

	// Storage
	RecordingDir string `env:"RECORDING_DIR, default=recordings" validate:"required"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL, default=info" validate:"oneof=debug info warn error"`
	LogFormat string `env:"LOG_FORMAT, default=console" validate:"oneof=json console"`
}

// Default returns the configuration an empty environment produces.
func Default() *Config {
	return &Config{
		TargetFrequencyHz: 1000,
		DotMs:             200,
		DashMs:            600,
		SilenceThreshold:  0.1,
		Mode:              ModeSpectrogram,
		FrameSize:         1024,
		HopMs:             10,
		RecordingDir:      "recordings",
		LogLevel:          "info",
		LogFormat:         "console",
	}
}

// Load reads the process environment. Values from envFiles fill in
// variables the environment does not set; later files lose to earlier ones.
func Load(ctx context.Context, envFiles ...string) (*Config, error) {
	lookupers := []envconfig.Lookuper{envconfig.OsLookuper()}

	for _, name := range envFiles {
		vars, err := godotenv.Read(name)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", name, err)
		}

		lookupers = append(lookupers, envconfig.MapLookuper(vars))
	}

	return LoadFrom(ctx, envconfig.MultiLookuper(lookupers...))
}

// LoadFrom reads and validates the configuration from l.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Params returns the detection and classification settings.
func (c *Config) Params() morse.Params {
	return morse.Params{
		TargetFrequencyHz: c.TargetFrequencyHz,
		DotMs:             c.DotMs,
		DashMs:            c.DashMs,
		SilenceThreshold:  c.SilenceThreshold,
	}
}

// HopSize converts HopMs to samples at sampleRate, never less than one.
func (c *Config) HopSize(sampleRate int) int {
	return max(1, int(math.Round(float64(sampleRate)*c.HopMs/1000)))
}

// NewLogger builds a zap logger. LogFormat "json" selects the production
// encoder, anything else the console one.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	zc := zap.NewDevelopmentConfig()
	if c.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
