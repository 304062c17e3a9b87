// SPDX-License-Identifier: MIT
// Package: lvrand/trng
//
// synth.go - deterministic synthetic microphone.
//
// Model, per frame i at sample rate r:
//   - θᵢ₊₁ = θᵢ + τ·f/r             (phase accumulator, τ = 2π)
//   - yᵢ   = A·sin(θᵢ) + σ·N(0,1)    (tone plus Gaussian noise)
//   - yᵢ is rounded and clamped to the int16 range.
//
// The RNG and phase persist across Open calls, so successive captures
// continue one signal instead of replaying it.

package trng

import (
	"context"
	"io"
	"math"
	"math/rand"
)

const (
	tau = 2.0 * math.Pi

	defSynthAmplitude = 2000.0 // tone amplitude, in LSB units
	defSynthFrequency = 440.0  // Hz
	defSynthSigma     = 64.0   // noise standard deviation, in LSB units
)

// Synthetic is a seeded tone-plus-noise Recorder for offline runs and tests.
type Synthetic struct {
	Amplitude float64
	Frequency float64
	Sigma     float64

	rng   *rand.Rand
	theta float64
}

// NewSynthetic returns a Synthetic with the default tone and noise levels.
// Equal seeds give equal frame sequences.
func NewSynthetic(seed int64) *Synthetic {
	return &Synthetic{
		Amplitude: defSynthAmplitude,
		Frequency: defSynthFrequency,
		Sigma:     defSynthSigma,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Open implements Recorder. The stream yields cfg.Frames() frames, then io.EOF.
func (s *Synthetic) Open(_ context.Context, cfg Config) (Stream, error) {
	return &synthStream{src: s, rate: float64(cfg.SampleRate), left: cfg.Frames()}, nil
}

func (s *Synthetic) frame(rate float64) int16 {
	val := s.Amplitude * math.Sin(s.theta)
	s.theta = math.Mod(s.theta+tau*s.Frequency/rate, tau)
	if s.Sigma > 0 {
		val += s.Sigma * s.rng.NormFloat64()
	}

	return int16(math.Max(math.MinInt16, math.Min(math.MaxInt16, math.Round(val))))
}

type synthStream struct {
	src  *Synthetic
	rate float64
	left int
}

func (st *synthStream) Read(buf []int16) (int, error) {
	if st.left == 0 {
		return 0, io.EOF
	}
	n := min(len(buf), st.left)
	for i := 0; i < n; i++ {
		buf[i] = st.src.frame(st.rate)
	}
	st.left -= n

	return n, nil
}

func (st *synthStream) Close() error { return nil }
