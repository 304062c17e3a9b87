//go:build portaudio

// SPDX-License-Identifier: MIT
// Package: lvrand/trng
//
// portaudio.go - default input device through PortAudio (cgo).
//
// Build with -tags portaudio; requires the PortAudio C library.

package trng

import (
	"context"
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/katalvlaran/lvrand/sampler"
)

// PortAudio captures from the system default input device.
type PortAudio struct{}

func init() {
	backends[BackendPortAudio] = func(string, int64) Recorder { return PortAudio{} }
}

// Open implements Recorder. Initialization or stream errors wrap
// sampler.ErrDeviceUnavailable.
//
// PortAudio reads block; the stream is aborted when ctx is done so that a
// capture timeout unblocks Read.
func (PortAudio) Open(ctx context.Context, cfg Config) (Stream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("trng.PortAudio: %w: %v", sampler.ErrDeviceUnavailable, err)
	}

	in := make([]int16, cfg.ChunkFrames*cfg.Channels)
	stream, err := portaudio.OpenDefaultStream(cfg.Channels, 0, float64(cfg.SampleRate), cfg.ChunkFrames, in)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("trng.PortAudio: %w: %v", sampler.ErrDeviceUnavailable, err)
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("trng.PortAudio: %w: %v", sampler.ErrDeviceUnavailable, err)
	}

	stop := context.AfterFunc(ctx, func() { _ = stream.Abort() })

	return &paStream{s: stream, in: in, stop: stop}, nil
}

// paStream serves frames out of PortAudio's fixed-size read buffer.
type paStream struct {
	s    *portaudio.Stream
	in   []int16
	rest []int16
	stop func() bool
}

func (p *paStream) Read(buf []int16) (int, error) {
	if len(p.rest) == 0 {
		if err := p.s.Read(); err != nil {
			return 0, err
		}
		p.rest = p.in
	}
	n := copy(buf, p.rest)
	p.rest = p.rest[n:]

	return n, nil
}

func (p *paStream) Close() error {
	if p.stop() {
		_ = p.s.Stop()
	}
	cerr := p.s.Close()
	terr := portaudio.Terminate()
	for _, err := range []error{cerr, terr} {
		if err != nil {
			return err
		}
	}

	return nil
}
