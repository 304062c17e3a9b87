// SPDX-License-Identifier: MIT
// Package: lvrand/sampler
//
// source.go - math/rand/v2 adapter for 32-bit engines.

package sampler

import "math/rand/v2"

type source struct {
	w Word32
}

// Assert that source implements rand.Source.
var _ rand.Source = source{}

// Uint64 concatenates two consecutive 32-bit draws, high word first.
func (s source) Uint64() uint64 {
	hi := uint64(s.w.Uint32())
	lo := uint64(s.w.Uint32())
	return hi<<32 | lo
}

// Source adapts a 32-bit engine into a [math/rand/v2.Source].
//
// Use it to build a *rand.Rand, or as the Src of a gonum distuv
// distribution, on top of any deterministic lvrand engine. Every Uint64
// consumes two draws from w.
func Source(w Word32) rand.Source {
	return source{w: w}
}
