// SPDX-License-Identifier: MIT
// Package: lvrand/trng
//
// extract.go - health check, LSB extraction and von Neumann debiasing.
//
// Bits are carried one per byte (values 0 or 1) between stages; packing
// happens once, in Condition.

package trng

import (
	"fmt"

	"github.com/katalvlaran/lvrand/sampler"
)

// HealthCheck rejects a capture that cannot contain noise: an empty buffer
// or one whose frames are all equal (a muted or disconnected input).
func HealthCheck(samples []int16) error {
	if len(samples) == 0 {
		return fmt.Errorf("trng.HealthCheck: empty capture: %w", sampler.ErrInsufficientEntropy)
	}
	first := samples[0]
	for _, s := range samples[1:] {
		if s != first {
			return nil
		}
	}

	return fmt.Errorf("trng.HealthCheck: %d frames all equal to %d: %w", len(samples), first, sampler.ErrInsufficientEntropy)
}

// MaxRun is the repetition-count cutoff for extracted bits. A fair source
// produces a run of MaxRun equal bits with probability 2^-(MaxRun-1) per
// position.
const MaxRun = 64

// BitHealth rejects an extracted bit stream that is empty or repeats one bit
// value MaxRun or more times in a row. Low bits stuck at one value pass the
// frame-level HealthCheck whenever only the high bits move.
func BitHealth(bits []byte) error {
	if len(bits) == 0 {
		return fmt.Errorf("trng.BitHealth: no bits extracted: %w", sampler.ErrInsufficientEntropy)
	}
	run := 1
	for i := 1; i < len(bits); i++ {
		if bits[i] != bits[i-1] {
			run = 1
			continue
		}
		run++
		if run >= MaxRun {
			return fmt.Errorf("trng.BitHealth: bit %d repeated %d times at offset %d: %w",
				bits[i], run, i-run+1, sampler.ErrInsufficientEntropy)
		}
	}

	return nil
}

// ExtractLSB returns the width least significant bits of every frame, lowest
// bit first.
func ExtractLSB(samples []int16, width int) []byte {
	bits := make([]byte, 0, len(samples)*width)
	for _, s := range samples {
		u := uint16(s)
		for b := 0; b < width; b++ {
			bits = append(bits, byte(u>>b)&1)
		}
	}

	return bits
}

// VonNeumann debiases independent but biased bits: each non-overlapping pair
// 01 yields 0, 10 yields 1, and 00 or 11 yields nothing. A trailing odd bit
// is dropped.
func VonNeumann(bits []byte) []byte {
	out := make([]byte, 0, len(bits)/4)
	for i := 0; i+1 < len(bits); i += 2 {
		if bits[i] != bits[i+1] {
			out = append(out, bits[i])
		}
	}

	return out
}

// Extract runs the health check, LSB extraction and, when cfg.Debias is set,
// von Neumann debiasing. The resulting bits must pass BitHealth.
func Extract(samples []int16, cfg Config) ([]byte, error) {
	if err := HealthCheck(samples); err != nil {
		return nil, err
	}
	bits := ExtractLSB(samples, cfg.Width)
	if cfg.Debias {
		bits = VonNeumann(bits)
	}
	if err := BitHealth(bits); err != nil {
		return nil, err
	}

	return bits, nil
}
