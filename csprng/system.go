// SPDX-License-Identifier: MIT
// Package: lvrand/csprng
//
// system.go - the stateless OS-entropy sampler and its helpers.

package csprng

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math/bits"

	"github.com/katalvlaran/lvrand/sampler"
)

// System draws every sample directly from the secure random source.
type System struct {
	r io.Reader
}

// New returns a System reading from crypto/rand.Reader unless overridden.
func New(opts ...Option) *System {
	cfg := applyOptions(opts)

	return &System{r: cfg.reader}
}

// read fills buf completely or fails with ErrEntropyUnavailable.
func (s *System) read(op string, buf []byte) error {
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return fmt.Errorf("%s: %w: %v", op, sampler.ErrEntropyUnavailable, err)
	}

	return nil
}

// Uint64 returns 64 secure random bits.
func (s *System) Uint64() (uint64, error) {
	var buf [8]byte
	if err := s.read("csprng.Uint64", buf[:]); err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint64(buf[:]), nil
}

// Uint32 returns 32 secure random bits.
func (s *System) Uint32() (uint32, error) {
	var buf [4]byte
	if err := s.read("csprng.Uint32", buf[:]); err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(buf[:]), nil
}

// Next reads 8 bytes and returns their top 53 bits / 2⁵³.
func (s *System) Next() (float64, error) {
	u, err := s.Uint64()
	if err != nil {
		return 0, err
	}

	return sampler.Unit53(u), nil
}

// Reproducible is false.
func (s *System) Reproducible() bool { return false }

// Below returns a uniform integer in [0, n). n must be positive.
//
// Lemire's multiply-shift with rejection: no modulo bias for any n.
func (s *System) Below(n uint64) (uint64, error) {
	if n == 0 {
		return 0, fmt.Errorf("csprng.Below: n must be > 0: %w", sampler.ErrConfiguration)
	}

	threshold := -n % n
	for {
		u, err := s.Uint64()
		if err != nil {
			return 0, err
		}
		hi, lo := bits.Mul64(u, n)
		if lo >= threshold {
			return hi, nil
		}
	}
}

// TokenBytes returns n secure random bytes.
func (s *System) TokenBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("csprng.TokenBytes: n=%d: %w", n, sampler.ErrBadCount)
	}
	buf := make([]byte, n)
	if err := s.read("csprng.TokenBytes", buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// TokenHex returns n secure random bytes as 2n lowercase hex digits.
func (s *System) TokenHex(n int) (string, error) {
	b, err := s.TokenBytes(n)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
