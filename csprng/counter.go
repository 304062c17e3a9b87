// SPDX-License-Identifier: MIT
// Package: lvrand/csprng
//
// counter.go - AES-128 counter-mode generator.

package csprng

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/lvrand/sampler"
)

// KeySize is the AES-128 key length in bytes.
const KeySize = 16

// CounterAES encrypts a 128-bit big-endian block counter under a key drawn
// once from the secure source. Each draw consumes one block.
type CounterAES struct {
	block   cipher.Block
	counter uint64
	out     [aes.BlockSize]byte
}

// NewCounterAES draws a fresh key and returns a generator with counter 0.
// A failed key read wraps sampler.ErrEntropyUnavailable.
func NewCounterAES(opts ...Option) (*CounterAES, error) {
	cfg := applyOptions(opts)

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(cfg.reader, key); err != nil {
		return nil, fmt.Errorf("csprng.NewCounterAES: %w: %v", sampler.ErrEntropyUnavailable, err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("csprng.NewCounterAES: %w: %v", sampler.ErrConfiguration, err)
	}

	return &CounterAES{block: block}, nil
}

func (c *CounterAES) step() []byte {
	var in [aes.BlockSize]byte
	binary.BigEndian.PutUint64(in[8:], c.counter)
	c.counter++
	c.block.Encrypt(c.out[:], in[:])

	return c.out[:]
}

// Uint32 returns the first four bytes of the next keystream block.
func (c *CounterAES) Uint32() uint32 {
	return binary.BigEndian.Uint32(c.step())
}

// Next maps the first eight bytes of the next keystream block to [0,1).
func (c *CounterAES) Next() (float64, error) {
	return sampler.Unit53(binary.BigEndian.Uint64(c.step())), nil
}

// Reproducible is false: the key is fresh per instance.
func (c *CounterAES) Reproducible() bool { return false }

// Counter reports how many blocks have been consumed.
func (c *CounterAES) Counter() uint64 { return c.counter }
