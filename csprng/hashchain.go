// SPDX-License-Identifier: MIT
// Package: lvrand/csprng
//
// hashchain.go - SHA-256 state chain.

package csprng

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/katalvlaran/lvrand/sampler"
)

// HashChain advances a 32-byte state as state ← SHA-256(state) and emits bits
// from the front of each new digest. The seed occupies the low eight bytes of
// the initial state, big-endian.
//
// It is deterministic: equal seeds give equal sequences. Its security rests on
// the seed being secret, which this type does not manage.
type HashChain struct {
	state [sha256.Size]byte
}

// NewHashChain returns a chain seeded with seed. Every seed is valid.
func NewHashChain(seed uint64) *HashChain {
	h := &HashChain{}
	binary.BigEndian.PutUint64(h.state[sha256.Size-8:], seed)

	return h
}

func (h *HashChain) advance() {
	h.state = sha256.Sum256(h.state[:])
}

// Uint32 advances the chain and returns the first four digest bytes.
func (h *HashChain) Uint32() uint32 {
	h.advance()

	return binary.BigEndian.Uint32(h.state[:4])
}

// Next advances the chain and maps the first eight digest bytes to [0,1).
func (h *HashChain) Next() (float64, error) {
	h.advance()

	return sampler.Unit53(binary.BigEndian.Uint64(h.state[:8])), nil
}

// Reproducible is true.
func (h *HashChain) Reproducible() bool { return true }
