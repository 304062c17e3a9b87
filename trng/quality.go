// SPDX-License-Identifier: MIT
// Package: lvrand/trng
//
// quality.go - cheap entropy quality indicators over extracted bits.

package trng

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Quality summarizes the extracted (pre-conditioning) bits of one capture.
//
// These are indicators, not an entropy estimate: a hash conditioner hides a
// bad source from every output test, so the raw bits are where problems show.
type Quality struct {
	Frames int // frames captured
	Bits   int // bits after extraction and debiasing
	Words  int // conditioned words produced

	// Bias is the fraction of ones minus 1/2, in [-0.5, 0.5].
	Bias float64
	// UniqueBytes is the fraction of the 256 byte values present in the
	// packed bits.
	UniqueBytes float64
	// SerialCorrelation is the lag-1 correlation of the packed bytes; NaN
	// with fewer than three bytes or constant bytes.
	SerialCorrelation float64
}

// MeasureQuality computes the bit-level fields of Quality. Frames and Words
// are left for the caller.
func MeasureQuality(bits []byte) Quality {
	q := Quality{Bits: len(bits), SerialCorrelation: math.NaN()}
	if len(bits) == 0 {
		return q
	}

	ones := 0
	for _, b := range bits {
		ones += int(b & 1)
	}
	q.Bias = float64(ones)/float64(len(bits)) - 0.5

	packed := PackBits(bits)
	var seen [256]bool
	distinct := 0
	for _, b := range packed {
		if !seen[b] {
			seen[b] = true
			distinct++
		}
	}
	q.UniqueBytes = float64(distinct) / 256

	if len(packed) >= 3 {
		xs := make([]float64, len(packed))
		for i, b := range packed {
			xs[i] = float64(b)
		}
		q.SerialCorrelation = stat.Correlation(xs[:len(xs)-1], xs[1:], nil)
	}

	return q
}
