// SPDX-License-Identifier: MIT
// Package: lvrand/trng
//
// condition.go - bit packing and hash conditioning.

package trng

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

const (
	// BlockBits is the conditioner input per output block.
	BlockBits = 512
	// DigestBits is the conditioner output per block.
	DigestBits = 256

	blockBytes = BlockBits / 8
)

// PackBits packs 0/1 bits into bytes, most significant bit first. A trailing
// partial byte is dropped.
func PackBits(bits []byte) []byte {
	out := make([]byte, len(bits)/8)
	for i := range out {
		var v byte
		for _, b := range bits[i*8 : i*8+8] {
			v = v<<1 | b&1
		}
		out[i] = v
	}

	return out
}

// Condition turns extracted bits into 32-bit words.
//
// None packs 32 bits per word. SHA256 and BLAKE2b hash every complete
// 512-bit block together with its big-endian block index and emit the
// 256-bit digest as eight words. Incomplete tails are dropped.
func Condition(bits []byte, k Conditioner) []uint32 {
	raw := PackBits(bits)
	if k == None {
		return words(raw)
	}

	blocks := len(raw) / blockBytes
	digests := make([]byte, 0, blocks*DigestBits/8)
	in := make([]byte, blockBytes+8)
	for i := 0; i < blocks; i++ {
		copy(in, raw[i*blockBytes:(i+1)*blockBytes])
		binary.BigEndian.PutUint64(in[blockBytes:], uint64(i))

		var sum [32]byte
		if k == BLAKE2b {
			sum = blake2b.Sum256(in)
		} else {
			sum = sha256.Sum256(in)
		}
		digests = append(digests, sum[:]...)
	}

	return words(digests)
}

func words(b []byte) []uint32 {
	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = binary.BigEndian.Uint32(b[i*4:])
	}

	return out
}
