// SPDX-License-Identifier: MIT
// Package: lvrand/sampler
//
// sampler.go - the uniform sequence contract and batch helper.

package sampler

import "fmt"

// Sampler produces samples uniform on [0,1), one per call, without end.
//
// Next either returns a sample in [0,1) and a nil error, or an error and a
// zero sample. Engines with deterministic state never return an error.
//
// Reproducible reports whether constructing a fresh instance with identical
// parameters replays the same sequence. It is false for sources backed by
// OS or physical entropy; that property is part of the contract, not an
// implementation detail.
type Sampler interface {
	Next() (float64, error)
	Reproducible() bool
}

// Batcher is implemented by samplers that can decide up front whether a
// request for n samples is satisfiable (e.g. a capture-backed pool).
// NextN prefers it over n calls to Next.
type Batcher interface {
	NextN(n int) ([]float64, error)
}

// Word32 is implemented by engines whose native output is a 32-bit word.
type Word32 interface {
	Uint32() uint32
}

// NextN draws exactly n samples from s, in order.
//
// On any error the result is nil: no partial sequence escapes.
// n == 0 returns an empty, non-nil slice. n < 0 returns ErrBadCount.
//
// Complexity: O(n) draws, O(n) memory.
func NextN(s Sampler, n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("NextN: n=%d: %w", n, ErrBadCount)
	}
	if b, ok := s.(Batcher); ok {
		return b.NextN(n)
	}

	out := make([]float64, n)
	for i := range out {
		v, err := s.Next()
		if err != nil {
			return nil, fmt.Errorf("NextN: draw %d of %d: %w", i+1, n, err)
		}
		out[i] = v
	}

	return out, nil
}
