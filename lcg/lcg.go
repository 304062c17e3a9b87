// SPDX-License-Identifier: MIT
// Package: lvrand/lcg
//
// lcg.go - parameter validation, recurrence and sampling.
//
// Contract:
//   • New validates Params and fails with sampler.ErrConfiguration; it never panics.
//   • Each draw mutates the single state word; nothing else is consulted.
//   • Identical Params ⇒ bit-identical sequences.

package lcg

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/lvrand/sampler"
)

// opNew prefixes construction errors.
const opNew = "lcg.New"

// Params is the immutable configuration of one generator instance.
type Params struct {
	Multiplier uint64 // a ∈ [0, m)
	Increment  uint64 // c ∈ [0, m)
	Modulus    uint64 // m > 0
	Seed       uint64 // x₀; reduced mod m
}

// Validate reports whether p describes a usable generator.
//
// Errors (all wrap sampler.ErrConfiguration):
//   - Modulus == 0.
//   - Multiplier ≥ Modulus or Increment ≥ Modulus.
//   - Increment == 0 and Seed ≡ 0 (mod m): a multiplicative generator seeded
//     at zero stays at zero forever.
func (p Params) Validate() error {
	if p.Modulus == 0 {
		return fmt.Errorf("%s: modulus must be > 0: %w", opNew, sampler.ErrConfiguration)
	}
	if p.Multiplier >= p.Modulus {
		return fmt.Errorf("%s: multiplier %d not in [0, %d): %w", opNew, p.Multiplier, p.Modulus, sampler.ErrConfiguration)
	}
	if p.Increment >= p.Modulus {
		return fmt.Errorf("%s: increment %d not in [0, %d): %w", opNew, p.Increment, p.Modulus, sampler.ErrConfiguration)
	}
	if p.Increment == 0 && p.Modulus > 1 && p.Seed%p.Modulus == 0 {
		return fmt.Errorf("%s: zero seed with zero increment is a fixed point: %w", opNew, sampler.ErrConfiguration)
	}

	return nil
}

// FullPeriod reports whether p satisfies the Hull–Dobell conditions, i.e.
// every seed yields a sequence of period exactly m.
//
// The prime-factor condition is decided without factoring m: strip from m
// every factor it shares with a−1; the condition holds iff nothing remains.
// Complexity: O(log² m).
func (p Params) FullPeriod() bool {
	a, c, m := p.Multiplier, p.Increment, p.Modulus
	if m <= 1 {
		return m == 1
	}
	if c == 0 || gcd(c, m) != 1 || a == 0 {
		return false
	}

	b := a - 1
	if m%4 == 0 && b%4 != 0 {
		return false
	}

	r := m
	for {
		g := gcd(r, b)
		if g == 1 {
			break
		}
		for r%g == 0 {
			r /= g
		}
	}

	return r == 1
}

// Generator is a Linear Congruential Generator. Not safe for concurrent use.
type Generator struct {
	p Params
	x uint64 // current state, always < m
}

// Assert that Generator implements the shared contracts.
var (
	_ sampler.Sampler = (*Generator)(nil)
	_ sampler.Word32  = (*Generator)(nil)
)

// New builds a generator from p. The seed is reduced modulo m.
func New(p Params) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Generator{p: p, x: p.Seed % p.Modulus}, nil
}

// Params returns the parameters the generator was built with.
func (g *Generator) Params() Params { return g.p }

// Uint64 advances the recurrence once and returns the new state x ∈ [0, m).
func (g *Generator) Uint64() uint64 {
	hi, lo := bits.Mul64(g.p.Multiplier, g.x)
	lo, carry := bits.Add64(lo, g.p.Increment, 0)
	// a·x + c ≤ m(m−1) < 2¹²⁸, so hi+carry cannot overflow.
	g.x = bits.Rem64(hi+carry, lo, g.p.Modulus)

	return g.x
}

// Uint32 advances once and returns the low 32 bits of the state. Only
// uniform over 32 bits when m is a multiple of 2³²; used to feed
// sampler.Source.
func (g *Generator) Uint32() uint32 {
	return uint32(g.Uint64())
}

// Float64 advances once and returns x/m ∈ [0,1).
func (g *Generator) Float64() float64 {
	return sampler.Normalize(g.Uint64(), g.p.Modulus)
}

// Next implements sampler.Sampler. It never fails.
func (g *Generator) Next() (float64, error) {
	return g.Float64(), nil
}

// Reproducible is always true.
func (g *Generator) Reproducible() bool { return true }

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
