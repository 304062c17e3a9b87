// Package analysis implements the analyzer side of the sampler contract:
// it turns captured sample sequences into read-only statistical summaries
// and a comparison table.
//
// Per sequence (Analyze):
//
//   - mean and population variance (expected 1/2 and 1/12 for U(0,1))
//   - standard deviation
//   - Shannon entropy in bits over EntropyBins equal-width bins
//   - Pearson chi-square statistic over Bins equal-width bins, with its
//     p-value from the χ²(Bins−1) survival function
//   - one-sample Kolmogorov–Smirnov statistic against U(0,1), with the
//     asymptotic Kolmogorov p-value
//   - lag-1 serial correlation (x₀…xₙ₋₂ against x₁…xₙ₋₁)
//
// Across generators (Compare):
//
//	Compare accepts {label → sequence}, requires equal lengths, and returns
//	a Table sorted by label. Table.Render writes an aligned text table.
//
// Plots and report files are not produced here; Summary carries numbers only.
//
// Statistics come from gonum (stat, stat/distuv). Inputs are never mutated.
package analysis
