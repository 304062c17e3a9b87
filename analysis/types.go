// SPDX-License-Identifier: MIT
// Package: lvrand/analysis
//
// types.go - options and result records.

package analysis

// Default histogram sizes. 50 chi-square bins keep the expected count per bin
// at 200 for the customary 10,000 draws.
const (
	DefaultBins        = 50
	DefaultEntropyBins = 256

	minBins = 2
)

// Options configures Analyze and Compare.
//
// Fields:
//   - Bins        - equal-width bins for the chi-square test (≥ 2).
//   - EntropyBins - equal-width bins for Shannon entropy (≥ 2).
type Options struct {
	Bins        int
	EntropyBins int
}

// DefaultOptions returns Options{Bins: 50, EntropyBins: 256}.
func DefaultOptions() Options {
	return Options{Bins: DefaultBins, EntropyBins: DefaultEntropyBins}
}

// Summary is the statistical record of one sequence. It is derived data:
// generators never see or mutate it.
type Summary struct {
	N        int     // number of samples
	Mean     float64 // arithmetic mean
	Variance float64 // population variance
	StdDev   float64 // √Variance
	Entropy  float64 // Shannon entropy in bits over EntropyBins

	ChiSquare  float64 // Pearson χ² over Bins
	ChiSquareP float64 // P(χ²(Bins−1) ≥ ChiSquare)

	KS  float64 // sup |Fₙ(x) − x|
	KSP float64 // asymptotic Kolmogorov p-value of KS

	SerialCorrelation float64 // lag-1 Pearson correlation; NaN for constant input
}

// Uniform reports whether neither goodness-of-fit test rejects U(0,1) at
// significance alpha.
func (s Summary) Uniform(alpha float64) bool {
	return s.ChiSquareP >= alpha && s.KSP >= alpha
}

// Row is one labelled line of a comparison table.
type Row struct {
	Label string
	Summary
}

// Table is the result of Compare: rows sorted by label, all over N samples.
type Table struct {
	N    int
	Rows []Row
}

// Lookup returns the row for label.
func (t Table) Lookup(label string) (Row, bool) {
	for _, r := range t.Rows {
		if r.Label == label {
			return r, true
		}
	}

	return Row{}, false
}
