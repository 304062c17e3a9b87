// SPDX-License-Identifier: MIT
// Package: lvrand/analysis
//
// errors.go - sentinel errors for the analysis package.
// Callers MUST branch with errors.Is; messages are stable.

package analysis

import "errors"

var (
	// ErrEmptySamples indicates an empty sequence or an empty collection.
	ErrEmptySamples = errors.New("analysis: no samples")

	// ErrLengthMismatch indicates that Compare received sequences of different lengths.
	ErrLengthMismatch = errors.New("analysis: sequences differ in length")

	// ErrOutOfRange indicates a sample outside [0,1) or NaN.
	ErrOutOfRange = errors.New("analysis: sample outside [0,1)")

	// ErrBadBins indicates a histogram bin count that is too small.
	ErrBadBins = errors.New("analysis: invalid bin count")
)
