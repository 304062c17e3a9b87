// SPDX-License-Identifier: MIT
// Package: lvrand/trng
//
// buffer.go - in-memory recorder.

package trng

import (
	"context"
	"io"
)

// Buffer replays a fixed slice of frames. Every Open starts from the first
// frame.
type Buffer struct {
	samples []int16
}

// NewBuffer returns a Buffer over a copy of samples.
func NewBuffer(samples []int16) *Buffer {
	return &Buffer{samples: append([]int16(nil), samples...)}
}

// Silent returns a Buffer of n zero frames.
func Silent(n int) *Buffer {
	return &Buffer{samples: make([]int16, n)}
}

// Open implements Recorder.
func (b *Buffer) Open(context.Context, Config) (Stream, error) {
	return &bufferStream{rest: b.samples}, nil
}

type bufferStream struct {
	rest []int16
}

func (s *bufferStream) Read(buf []int16) (int, error) {
	if len(s.rest) == 0 {
		return 0, io.EOF
	}
	n := copy(buf, s.rest)
	s.rest = s.rest[n:]

	return n, nil
}

func (s *bufferStream) Close() error {
	s.rest = nil
	return nil
}
