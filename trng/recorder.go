// SPDX-License-Identifier: MIT
// Package: lvrand/trng
//
// recorder.go - the audio input abstraction.

package trng

import "context"

// Recorder opens audio input streams.
//
// Open must honour ctx: a stream whose Read blocks is expected to unblock
// once ctx is done. Open failures are reported by Capture as
// sampler.ErrDeviceUnavailable.
type Recorder interface {
	Open(ctx context.Context, cfg Config) (Stream, error)
}

// Stream delivers mono 16-bit frames.
//
// Read fills a prefix of buf and returns the number of frames written. It
// returns io.EOF once the source has nothing more to give; n may be non-zero
// alongside io.EOF. Close releases the device and is called exactly once.
type Stream interface {
	Read(buf []int16) (int, error)
	Close() error
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(ctx context.Context, cfg Config) (Stream, error)

// Open calls f(ctx, cfg).
func (f RecorderFunc) Open(ctx context.Context, cfg Config) (Stream, error) {
	return f(ctx, cfg)
}
