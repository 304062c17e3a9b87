// SPDX-License-Identifier: MIT
// Package: lvrand/sampler
//
// normalize.go - word → [0,1) mappings.
//
// All mappings are exclusive at 1: a 32-bit word is divided by 2^32 rather
// than by 2^32−1, and 64-bit words keep only the 53 bits a float64 mantissa
// can hold exactly.

package sampler

import "golang.org/x/exp/constraints"

const (
	inv32 = 0x1p-32 // 1 / 2^32
	inv53 = 0x1p-53 // 1 / 2^53

	// BelowOne is the largest float64 strictly less than 1.
	BelowOne = 1 - inv53
)

// Unit32 maps a 32-bit word to [0,1) as u / 2^32. Exact.
func Unit32(u uint32) float64 {
	return float64(u) * inv32
}

// Unit53 maps a 64-bit word to [0,1) using its top 53 bits. Exact.
func Unit53(u uint64) float64 {
	return float64(u>>11) * inv53
}

// Normalize maps x ∈ [0, m) to x/m. m must be non-zero and x < m.
//
// For moduli above 2^53 the quotient can round up to 1.0; it is clamped to
// BelowOne so the [0,1) invariant holds for every modulus.
func Normalize[T constraints.Unsigned](x, m T) float64 {
	f := float64(x) / float64(m)
	if f >= 1 {
		return BelowOne
	}

	return f
}
