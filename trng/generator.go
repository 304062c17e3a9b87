// SPDX-License-Identifier: MIT
// Package: lvrand/trng
//
// generator.go - the pooled microphone sampler.
//
// Contract:
//   • The pool holds conditioned words; an empty pool is refilled by exactly
//     one capture. There is no automatic retry.
//   • NextN either returns n samples or an error, never a prefix; a failed
//     NextN leaves the pool intact.
//   • Not safe for concurrent use.

package trng

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvrand/sampler"
)

// Generator is a sampler.Sampler and sampler.Batcher over captured audio.
type Generator struct {
	rec      Recorder
	cfg      Config
	pool     []uint32
	captures int
	quality  Quality
}

// New validates the options and returns a Generator reading from rec. No
// device is touched until the first draw.
func New(rec Recorder, opts ...Option) (*Generator, error) {
	if rec == nil {
		return nil, fmt.Errorf("trng.New: nil recorder: %w", sampler.ErrConfiguration)
	}
	cfg := newConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Generator{rec: rec, cfg: cfg}, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// refill appends the words of one fresh capture to the pool.
func (g *Generator) refill(ctx context.Context) error {
	samples, err := Capture(ctx, g.rec, g.cfg)
	if err != nil {
		return err
	}
	g.captures++

	bits, err := Extract(samples, g.cfg)
	if err != nil {
		return err
	}
	w := Condition(bits, g.cfg.Conditioner)

	g.quality = MeasureQuality(bits)
	g.quality.Frames = len(samples)
	g.quality.Words = len(w)

	if len(w) == 0 {
		return fmt.Errorf("trng: %d frames gave %d bits, not one word: %w", len(samples), len(bits), sampler.ErrInsufficientEntropy)
	}
	g.pool = append(g.pool, w...)

	return nil
}

// NextContext returns one sample, capturing first if the pool is empty.
func (g *Generator) NextContext(ctx context.Context) (float64, error) {
	if len(g.pool) == 0 {
		if err := g.refill(ctx); err != nil {
			return 0, fmt.Errorf("trng.Next: %w", err)
		}
	}

	w := g.pool[0]
	g.pool = g.pool[1:]

	return sampler.Unit32(w), nil
}

// Next is NextContext with context.Background.
func (g *Generator) Next() (float64, error) {
	return g.NextContext(context.Background())
}

// NextNContext returns n samples. If the pool holds fewer than n words, one
// capture is made; if the pool is still short the call fails with
// sampler.ErrInsufficientEntropy and the caller may retry with a longer
// Duration.
func (g *Generator) NextNContext(ctx context.Context, n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("trng.NextN: n=%d: %w", n, sampler.ErrBadCount)
	}
	if len(g.pool) < n {
		if err := g.refill(ctx); err != nil {
			return nil, fmt.Errorf("trng.NextN: %w", err)
		}
	}
	if len(g.pool) < n {
		return nil, fmt.Errorf("trng.NextN: requested %d samples, one capture gave %d: %w",
			n, len(g.pool), sampler.ErrInsufficientEntropy)
	}

	out := make([]float64, n)
	for i, w := range g.pool[:n] {
		out[i] = sampler.Unit32(w)
	}
	g.pool = g.pool[n:]

	return out, nil
}

// NextN is NextNContext with context.Background.
func (g *Generator) NextN(n int) ([]float64, error) {
	return g.NextNContext(context.Background(), n)
}

// Reproducible is false: output depends on physical noise.
func (g *Generator) Reproducible() bool { return false }

// Pooled reports the conditioned words not yet served.
func (g *Generator) Pooled() int { return len(g.pool) }

// Captures reports how many captures completed.
func (g *Generator) Captures() int { return g.captures }

// Quality reports indicators for the most recent capture that passed the
// health check.
func (g *Generator) Quality() Quality { return g.quality }
