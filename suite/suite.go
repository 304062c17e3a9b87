// SPDX-License-Identifier: MIT
// Package: lvrand/suite
//
// suite.go - construction, drawing and comparison of all generators.

package suite

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/katalvlaran/lvrand/analysis"
	"github.com/katalvlaran/lvrand/config"
	"github.com/katalvlaran/lvrand/csprng"
	"github.com/katalvlaran/lvrand/lcg"
	"github.com/katalvlaran/lvrand/msm"
	"github.com/katalvlaran/lvrand/mt19937"
	"github.com/katalvlaran/lvrand/sampler"
	"github.com/katalvlaran/lvrand/trng"
	"github.com/katalvlaran/lvrand/xorshift"
)

// Labels of the fixed engines. LCG rows are LabelLCGPrefix + preset name.
const (
	LabelLCGPrefix = "lcg-"
	LabelXorshift  = "xorshift32"
	LabelMT        = "mt19937"
	LabelCSPRNG    = "csprng"
	LabelHashChain = "sha256-chain"
	LabelAES       = "aes-ctr"
	LabelMSM       = "middle-square"
	LabelTRNG      = "trng"

	// LabelTRNGFallback replaces LabelTRNG when the CSPRNG stood in for it.
	LabelTRNGFallback = "trng(csprng)"
)

// Entry is one labelled generator.
type Entry struct {
	Label   string
	Sampler sampler.Sampler
}

// Runner owns one comparison run. It is not safe for concurrent use.
type Runner struct {
	conf config.Configuration
	log  *log.Logger
	rec  trng.Recorder
}

// Option customizes a Runner.
type Option func(*Runner)

// WithLogger routes progress messages to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("suite: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = l }
}

// WithRecorder overrides the audio backend named in the configuration.
// Panics on nil.
func WithRecorder(rec trng.Recorder) Option {
	if rec == nil {
		panic("suite: WithRecorder(nil)")
	}
	return func(r *Runner) { r.rec = rec }
}

// New returns a Runner for conf. Nothing is constructed until Build.
func New(conf config.Configuration, opts ...Option) *Runner {
	r := &Runner{conf: conf, log: log.Default()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Build constructs every configured generator, in table order. Any
// construction error aborts the run; none of them is recoverable.
func (r *Runner) Build() ([]Entry, error) {
	var entries []Entry
	add := func(label string, s sampler.Sampler) {
		entries = append(entries, Entry{Label: label, Sampler: s})
		r.log.Printf("suite: built %s (reproducible=%v)", label, s.Reproducible())
	}

	for _, name := range r.conf.LCGPresets {
		g, err := lcg.NewPreset(name, r.conf.Seed)
		if err != nil {
			return nil, fmt.Errorf("suite.Build: lcg %q: %w", name, err)
		}
		add(LabelLCGPrefix+name, g)
	}

	xs, err := xorshift.New32(r.conf.XorshiftSeed)
	if err != nil {
		return nil, fmt.Errorf("suite.Build: %w", err)
	}
	add(LabelXorshift, xs)

	add(LabelMT, mt19937.New(r.conf.MTSeed))
	add(LabelCSPRNG, csprng.New())
	add(LabelHashChain, csprng.NewHashChain(r.conf.Seed))

	aes, err := csprng.NewCounterAES()
	if err != nil {
		return nil, fmt.Errorf("suite.Build: %w", err)
	}
	add(LabelAES, aes)

	if r.conf.MSMDigits > 0 {
		m, err := msm.New(r.conf.MSMSeed, r.conf.MSMDigits)
		if err != nil {
			return nil, fmt.Errorf("suite.Build: %w", err)
		}
		add(LabelMSM, m)
	}

	if r.conf.TRNG {
		g, err := r.buildTRNG()
		if err != nil {
			return nil, fmt.Errorf("suite.Build: %w", err)
		}
		add(LabelTRNG, g)
	}

	return entries, nil
}

func (r *Runner) buildTRNG() (*trng.Generator, error) {
	cfg := trng.DefaultConfig()
	cfg.SampleRate = r.conf.SampleRate
	cfg.BitDepth = r.conf.BitDepth
	cfg.Duration = r.conf.CaptureDuration
	cfg.Width = r.conf.ExtractBits
	cfg.Debias = r.conf.Debias

	k, err := trng.ParseConditioner(r.conf.Conditioner)
	if err != nil {
		return nil, err
	}
	cfg.Conditioner = k

	rec := r.rec
	if rec == nil {
		rec, err = trng.NewRecorder(r.conf.AudioBackend, r.conf.AudioDevice, int64(r.conf.Seed))
		if err != nil {
			return nil, err
		}
	}

	return trng.New(rec, trng.WithConfig(cfg))
}

// contextSampler is implemented by samplers whose draws may block.
type contextSampler interface {
	NextContext(ctx context.Context) (float64, error)
}

// draw returns exactly n samples from s.
func draw(ctx context.Context, s sampler.Sampler, n int) ([]float64, error) {
	cs, ok := s.(contextSampler)
	if !ok {
		return sampler.NextN(s, n)
	}

	out := make([]float64, n)
	for i := range out {
		v, err := cs.NextContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("draw %d of %d: %w", i+1, n, err)
		}
		out[i] = v
	}

	return out, nil
}

// recoverable reports the errors after which a CSPRNG may stand in.
func recoverable(err error) bool {
	return errors.Is(err, sampler.ErrDeviceUnavailable) || errors.Is(err, sampler.ErrInsufficientEntropy)
}

// Draw collects Samples values from every entry, keyed by label. A TRNG
// entry that fails recoverably is replaced by a fresh csprng.System under
// LabelTRNGFallback.
func (r *Runner) Draw(ctx context.Context, entries []Entry) (map[string][]float64, error) {
	n := r.conf.Samples
	series := make(map[string][]float64, len(entries))

	for _, e := range entries {
		start := time.Now()
		label := e.Label

		xs, err := draw(ctx, e.Sampler, n)
		if err != nil && label == LabelTRNG && recoverable(err) {
			r.log.Printf("suite: %s unavailable, falling back to %s: %v", label, LabelCSPRNG, err)
			label = LabelTRNGFallback
			xs, err = draw(ctx, csprng.New(), n)
		}
		if err != nil {
			return nil, fmt.Errorf("suite.Draw: %s: %w", label, err)
		}

		series[label] = xs
		r.log.Printf("suite: drew %d samples from %s in %v", n, label, time.Since(start).Round(time.Microsecond))
	}

	return series, nil
}

// Run builds, draws and compares. The table rows are sorted by label.
func (r *Runner) Run(ctx context.Context) (analysis.Table, error) {
	entries, err := r.Build()
	if err != nil {
		return analysis.Table{}, err
	}
	series, err := r.Draw(ctx, entries)
	if err != nil {
		return analysis.Table{}, err
	}

	opts := analysis.DefaultOptions()
	if r.conf.Bins > 0 {
		opts.Bins = r.conf.Bins
	}

	return analysis.Compare(series, &opts)
}
