// SPDX-License-Identifier: MIT
// Package: lvrand/trng
//
// config.go - capture and conditioning parameters, options and defaults.
//
// Deterministic defaults:
//   • SampleRate  = 44100 Hz
//   • BitDepth    = 16 (the only supported depth)
//   • Channels    = 1
//   • Duration    = 1s,   Grace = 500ms
//   • ChunkFrames = 1024
//   • Width       = 1 LSB per frame
//   • Debias      = true
//   • Conditioner = SHA256

package trng

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/lvrand/sampler"
)

const (
	DefaultSampleRate  = 44100
	DefaultBitDepth    = 16
	DefaultChannels    = 1
	DefaultDuration    = time.Second
	DefaultGrace       = 500 * time.Millisecond
	DefaultChunkFrames = 1024
	DefaultWidth       = 1

	// MaxWidth is the widest LSB window; the upper half of a frame carries
	// signal, not noise.
	MaxWidth = 8
)

// Conditioner selects the post-extraction mixing step.
type Conditioner uint8

const (
	SHA256 Conditioner = iota
	BLAKE2b
	None
)

// String implements fmt.Stringer.
func (c Conditioner) String() string {
	switch c {
	case SHA256:
		return "sha256"
	case BLAKE2b:
		return "blake2b"
	case None:
		return "none"
	default:
		return fmt.Sprintf("Conditioner(%d)", uint8(c))
	}
}

// ParseConditioner maps "sha256", "blake2b" or "none" (any case) to a
// Conditioner. The empty name selects the default, SHA256.
func ParseConditioner(name string) (Conditioner, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sha256", "sha-256", "":
		return SHA256, nil
	case "blake2b", "blake2b-256":
		return BLAKE2b, nil
	case "none":
		return None, nil
	}

	return 0, fmt.Errorf("trng.ParseConditioner: unknown conditioner %q: %w", name, sampler.ErrConfiguration)
}

// Config holds every capture and conditioning knob. It is copied into a
// Generator at construction and never changes afterwards.
type Config struct {
	SampleRate  int
	BitDepth    int
	Channels    int
	Duration    time.Duration
	Grace       time.Duration
	ChunkFrames int
	Width       int
	Debias      bool
	Conditioner Conditioner
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		SampleRate:  DefaultSampleRate,
		BitDepth:    DefaultBitDepth,
		Channels:    DefaultChannels,
		Duration:    DefaultDuration,
		Grace:       DefaultGrace,
		ChunkFrames: DefaultChunkFrames,
		Width:       DefaultWidth,
		Debias:      true,
		Conditioner: SHA256,
	}
}

// Frames is the number of frames one capture requests: rate × duration.
func (c Config) Frames() int {
	return int(int64(c.SampleRate) * int64(c.Duration) / int64(time.Second))
}

// Timeout bounds one capture.
func (c Config) Timeout() time.Duration {
	return c.Duration + c.Grace
}

// Validate reports a Config that cannot drive a capture. Errors wrap
// sampler.ErrConfiguration.
func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("trng.Config: sample rate %d must be > 0: %w", c.SampleRate, sampler.ErrConfiguration)
	case c.BitDepth != 16:
		return fmt.Errorf("trng.Config: bit depth %d unsupported (16 only): %w", c.BitDepth, sampler.ErrConfiguration)
	case c.Channels != 1:
		return fmt.Errorf("trng.Config: %d channels unsupported (mono only): %w", c.Channels, sampler.ErrConfiguration)
	case c.Duration <= 0:
		return fmt.Errorf("trng.Config: duration %v must be > 0: %w", c.Duration, sampler.ErrConfiguration)
	case c.Grace < 0:
		return fmt.Errorf("trng.Config: grace %v must be >= 0: %w", c.Grace, sampler.ErrConfiguration)
	case c.ChunkFrames <= 0:
		return fmt.Errorf("trng.Config: chunk %d must be > 0: %w", c.ChunkFrames, sampler.ErrConfiguration)
	case c.Width < 1 || c.Width > MaxWidth:
		return fmt.Errorf("trng.Config: width %d not in [1, %d]: %w", c.Width, MaxWidth, sampler.ErrConfiguration)
	case c.Conditioner > None:
		return fmt.Errorf("trng.Config: %v: %w", c.Conditioner, sampler.ErrConfiguration)
	case c.Frames() < 1:
		return fmt.Errorf("trng.Config: %v at %d Hz is shorter than one frame: %w", c.Duration, c.SampleRate, sampler.ErrConfiguration)
	}

	return nil
}

// Option customizes a Config. Constructors panic on meaningless values;
// combinations are checked by Validate.
type Option func(*Config)

// WithConfig replaces the whole Config; later options still apply on top.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// WithSampleRate sets the capture rate in Hz. Panics if hz <= 0.
func WithSampleRate(hz int) Option {
	if hz <= 0 {
		panic("trng: WithSampleRate(<=0)")
	}
	return func(c *Config) { c.SampleRate = hz }
}

// WithBitDepth sets the sample width in bits. Panics unless bits == 16.
func WithBitDepth(bits int) Option {
	if bits != 16 {
		panic("trng: WithBitDepth supports 16 only")
	}
	return func(c *Config) { c.BitDepth = bits }
}

// WithDuration sets the capture window. Panics if d <= 0.
func WithDuration(d time.Duration) Option {
	if d <= 0 {
		panic("trng: WithDuration(<=0)")
	}
	return func(c *Config) { c.Duration = d }
}

// WithGrace sets the extra time a capture may take beyond its duration.
// Panics if d < 0.
func WithGrace(d time.Duration) Option {
	if d < 0 {
		panic("trng: WithGrace(<0)")
	}
	return func(c *Config) { c.Grace = d }
}

// WithChunkFrames sets the frames requested per stream read. Panics if n <= 0.
func WithChunkFrames(n int) Option {
	if n <= 0 {
		panic("trng: WithChunkFrames(<=0)")
	}
	return func(c *Config) { c.ChunkFrames = n }
}

// WithWidth sets how many least significant bits each frame contributes.
// Panics outside [1, MaxWidth].
func WithWidth(bits int) Option {
	if bits < 1 || bits > MaxWidth {
		panic("trng: WithWidth out of [1, MaxWidth]")
	}
	return func(c *Config) { c.Width = bits }
}

// WithDebias toggles von Neumann debiasing.
func WithDebias(on bool) Option {
	return func(c *Config) { c.Debias = on }
}

// WithConditioner selects the mixing step. Panics on an unknown value.
func WithConditioner(k Conditioner) Option {
	if k > None {
		panic("trng: WithConditioner(unknown)")
	}
	return func(c *Config) { c.Conditioner = k }
}

func newConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
