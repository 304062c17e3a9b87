// SPDX-License-Identifier: MIT
// Package: lvrand/xorshift
//
// xorshift.go - 32- and 64-bit shift-xor recurrences.

package xorshift

import (
	"fmt"

	"github.com/katalvlaran/lvrand/sampler"
)

// Gen32 is the 32-bit XORShift generator with shifts (13, 17, 5).
type Gen32 struct {
	state uint32
}

// New32 returns a Gen32 seeded with seed. A zero seed fails with
// sampler.ErrConfiguration.
func New32(seed uint32) (*Gen32, error) {
	if seed == 0 {
		return nil, fmt.Errorf("xorshift.New32: seed must be non-zero: %w", sampler.ErrConfiguration)
	}

	return &Gen32{state: seed}, nil
}

// Uint32 advances the state and returns it.
func (g *Gen32) Uint32() uint32 {
	x := g.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.state = x

	return x
}

// Next returns the next sample, state / 2³². The error is always nil.
func (g *Gen32) Next() (float64, error) {
	return sampler.Unit32(g.Uint32()), nil
}

// Reproducible is true.
func (g *Gen32) Reproducible() bool { return true }

// Gen64 is the 64-bit XORShift generator with shifts (13, 7, 17).
type Gen64 struct {
	state uint64
}

// New64 returns a Gen64 seeded with seed. A zero seed fails with
// sampler.ErrConfiguration.
func New64(seed uint64) (*Gen64, error) {
	if seed == 0 {
		return nil, fmt.Errorf("xorshift.New64: seed must be non-zero: %w", sampler.ErrConfiguration)
	}

	return &Gen64{state: seed}, nil
}

// Uint64 advances the state and returns it.
func (g *Gen64) Uint64() uint64 {
	x := g.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.state = x

	return x
}

// Uint32 returns the high half of the next 64-bit word; the low bits of
// XORShift words are the weakest.
func (g *Gen64) Uint32() uint32 {
	return uint32(g.Uint64() >> 32)
}

// Next returns the top 53 bits of the next word divided by 2⁵³.
func (g *Gen64) Next() (float64, error) {
	return sampler.Unit53(g.Uint64()), nil
}

// Reproducible is true.
func (g *Gen64) Reproducible() bool { return true }
