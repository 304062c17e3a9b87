// SPDX-License-Identifier: MIT
// Package: lvrand/analysis
//
// summary.go - per-sequence statistics.
//
// Stages:
//  1. Validate options and samples (non-empty, every x ∈ [0,1)).
//  2. Moments via gonum stat.PopMeanVariance.
//  3. Histograms → chi-square (stat.ChiSquare + distuv.ChiSquared) and entropy.
//  4. Sorted copy → Kolmogorov–Smirnov statistic and p-value.
//  5. Lag-1 serial correlation via stat.Correlation.

package analysis

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const opAnalyze = "Analyze"

// Analyze computes the Summary of samples. A nil opts means DefaultOptions.
//
// Errors:
//   - ErrEmptySamples - len(samples) == 0.
//   - ErrBadBins      - Bins or EntropyBins < 2.
//   - ErrOutOfRange   - any sample is NaN or outside [0,1).
//
// Complexity: O(n log n) time (one sort), O(n + bins) memory.
func Analyze(samples []float64, opts *Options) (Summary, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(samples, o); err != nil {
		return Summary{}, fmt.Errorf("%s: %w", opAnalyze, err)
	}

	n := len(samples)
	s := Summary{N: n}

	s.Mean, s.Variance = stat.PopMeanVariance(samples, nil)
	s.StdDev = math.Sqrt(s.Variance)

	obs := histogram(samples, o.Bins)
	exp := make([]float64, o.Bins)
	for i := range exp {
		exp[i] = float64(n) / float64(o.Bins)
	}
	s.ChiSquare = stat.ChiSquare(obs, exp)
	s.ChiSquareP = distuv.ChiSquared{K: float64(o.Bins - 1)}.Survival(s.ChiSquare)

	s.Entropy = entropyBits(histogram(samples, o.EntropyBins), n)

	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	s.KS = ksUniform(sorted)
	s.KSP = kolmogorovP(s.KS, n)

	s.SerialCorrelation = math.NaN()
	if n > 1 {
		s.SerialCorrelation = stat.Correlation(samples[:n-1], samples[1:], nil)
	}

	return s, nil
}

func validate(samples []float64, o Options) error {
	if len(samples) == 0 {
		return ErrEmptySamples
	}
	if o.Bins < minBins || o.EntropyBins < minBins {
		return fmt.Errorf("bins=%d entropyBins=%d: %w", o.Bins, o.EntropyBins, ErrBadBins)
	}
	for i, x := range samples {
		if !(x >= 0 && x < 1) {
			return fmt.Errorf("sample %d = %v: %w", i, x, ErrOutOfRange)
		}
	}

	return nil
}

// histogram counts samples into k equal-width bins over [0,1).
func histogram(samples []float64, k int) []float64 {
	counts := make([]float64, k)
	for _, x := range samples {
		b := int(x * float64(k))
		if b >= k { // x*k can round up to k for x just below 1
			b = k - 1
		}
		counts[b]++
	}

	return counts
}

// entropyBits converts bin counts to probabilities and returns the Shannon
// entropy in bits.
func entropyBits(counts []float64, n int) float64 {
	p := make([]float64, len(counts))
	for i, c := range counts {
		p[i] = c / float64(n)
	}

	return stat.Entropy(p) / math.Ln2
}
