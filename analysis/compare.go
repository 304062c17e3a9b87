// SPDX-License-Identifier: MIT
// Package: lvrand/analysis
//
// compare.go - side-by-side summaries for named generators.

package analysis

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"text/tabwriter"
)

const opCompare = "Compare"

// Compare analyzes every labelled sequence and returns the rows sorted by
// label. All sequences must have the same, non-zero length.
//
// Errors: ErrEmptySamples, ErrLengthMismatch, plus anything Analyze returns
// (wrapped with the offending label).
func Compare(series map[string][]float64, opts *Options) (Table, error) {
	if len(series) == 0 {
		return Table{}, fmt.Errorf("%s: %w", opCompare, ErrEmptySamples)
	}

	labels := slices.Sorted(maps.Keys(series))
	n := len(series[labels[0]])
	for _, l := range labels[1:] {
		if len(series[l]) != n {
			return Table{}, fmt.Errorf("%s: %q has %d samples, %q has %d: %w",
				opCompare, labels[0], n, l, len(series[l]), ErrLengthMismatch)
		}
	}

	t := Table{N: n, Rows: make([]Row, 0, len(labels))}
	for _, l := range labels {
		s, err := Analyze(series[l], opts)
		if err != nil {
			return Table{}, fmt.Errorf("%s: %q: %w", opCompare, l, err)
		}
		t.Rows = append(t.Rows, Row{Label: l, Summary: s})
	}

	return t, nil
}

// Render writes t as an aligned text table.
func (t Table) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 1, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GENERATOR\tN\tMEAN\tVARIANCE\tCHI2\tCHI2 P\tKS\tKS P\tENTROPY\tSERIAL")
	for _, r := range t.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.6f\t%.3f\t%.4g\t%.6f\t%.4g\t%.4f\t%+.4f\n",
			r.Label, r.N, r.Mean, r.Variance, r.ChiSquare, r.ChiSquareP, r.KS, r.KSP, r.Entropy, r.SerialCorrelation)
	}

	return tw.Flush()
}
