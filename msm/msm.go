// SPDX-License-Identifier: MIT
// Package: lvrand/msm
//
// msm.go - middle-square recurrence.

package msm

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvrand/sampler"
)

// MaxDigits bounds the state width so that every state fits a uint64.
const MaxDigits = 18

// Generator is one middle-square instance.
type Generator struct {
	state  uint64
	digits int
	modulo uint64 // 10^digits
	sq     big.Int
}

// New returns a generator keeping digits middle digits per step.
//
// Errors (wrapping sampler.ErrConfiguration):
//   - digits outside [1, MaxDigits].
//   - seed with fewer than digits decimal digits.
func New(seed uint64, digits int) (*Generator, error) {
	if digits < 1 || digits > MaxDigits {
		return nil, fmt.Errorf("msm.New: digits=%d not in [1, %d]: %w", digits, MaxDigits, sampler.ErrConfiguration)
	}
	if n := len(strconv.FormatUint(seed, 10)); n < digits {
		return nil, fmt.Errorf("msm.New: seed %d has %d digits, need at least %d: %w", seed, n, digits, sampler.ErrConfiguration)
	}

	mod := uint64(1)
	for i := 0; i < digits; i++ {
		mod *= 10
	}

	return &Generator{state: seed, digits: digits, modulo: mod}, nil
}

// Uint64 advances the state and returns it, a value in [0, 10^digits).
func (g *Generator) Uint64() uint64 {
	x := new(big.Int).SetUint64(g.state)
	g.sq.Mul(x, x)

	s := g.sq.String()
	if len(s) < 2*g.digits {
		s = strings.Repeat("0", 2*g.digits-len(s)) + s
	}
	mid := (len(s) - g.digits) / 2

	// at most MaxDigits decimal digits: cannot fail
	g.state, _ = strconv.ParseUint(s[mid:mid+g.digits], 10, 64)

	return g.state
}

// Next returns the next state / 10^digits. The error is always nil.
func (g *Generator) Next() (float64, error) {
	return sampler.Normalize(g.Uint64(), g.modulo), nil
}

// Reproducible is true.
func (g *Generator) Reproducible() bool { return true }

// Digits reports the configured width.
func (g *Generator) Digits() int { return g.digits }
