// SPDX-License-Identifier: MIT
// Package: lvrand/analysis
//
// ks.go - one-sample Kolmogorov–Smirnov test against U(0,1).
//
// gonum's stat.KolmogorovSmirnov compares two empirical samples and distuv
// has no Kolmogorov distribution, so the statistic against the uniform CDF
// and its asymptotic tail are computed here.

package analysis

import "math"

// ksUniform returns Dₙ = sup |Fₙ(x) − x| for ascending samples in [0,1).
func ksUniform(sorted []float64) float64 {
	n := float64(len(sorted))
	var d float64
	for i, x := range sorted {
		above := float64(i+1)/n - x // Fₙ just after x
		below := x - float64(i)/n   // Fₙ just before x
		d = math.Max(d, math.Max(above, below))
	}

	return d
}

// kolmogorovP returns the p-value of statistic d over n samples using
// Stephens' small-sample correction λ = (√n + 0.12 + 0.11/√n)·d and the
// alternating series Q(λ) = 2 Σ (−1)^{k−1} exp(−2k²λ²).
func kolmogorovP(d float64, n int) float64 {
	sn := math.Sqrt(float64(n))
	lambda := (sn + 0.12 + 0.11/sn) * d

	return kolmogorovQ(lambda)
}

const (
	ksMaxTerms = 100
	ksRelTerm  = 1e-6  // stop when a term is this small relative to the previous one
	ksRelSum   = 1e-16 // or relative to the running sum
)

// kolmogorovQ evaluates Q(λ), clamped to [0,1]. The series does not converge
// for λ → 0, where Q → 1.
func kolmogorovQ(lambda float64) float64 {
	a2 := -2 * lambda * lambda
	fac := 2.0
	var sum, prev float64
	for k := 1; k <= ksMaxTerms; k++ {
		term := fac * math.Exp(a2*float64(k*k))
		sum += term
		if math.Abs(term) <= ksRelTerm*prev || math.Abs(term) <= ksRelSum*sum {
			return math.Min(1, math.Max(0, sum))
		}
		fac = -fac
		prev = math.Abs(term)
	}

	return 1
}
