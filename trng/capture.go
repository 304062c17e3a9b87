// SPDX-License-Identifier: MIT
// Package: lvrand/trng
//
// capture.go - one bounded capture window.
//
// Contract:
//   • The stream returned by Open is closed on every exit path.
//   • The window ends after cfg.Frames() frames, at io.EOF, or when the
//     timeout (cfg.Timeout()) expires; frames read so far are kept.
//   • Parent cancellation aborts the capture with ctx.Err().

package trng

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvrand/sampler"
)

// Capture records one window of audio from rec.
func Capture(ctx context.Context, rec Recorder, cfg Config) ([]int16, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("trng.Capture: nil recorder: %w", sampler.ErrConfiguration)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	stream, err := rec.Open(ctx, cfg)
	if err != nil {
		return nil, deviceError("trng.Capture: open", err)
	}
	defer func() { _ = stream.Close() }()

	want := cfg.Frames()
	out := make([]int16, 0, want)
	buf := make([]int16, min(cfg.ChunkFrames, want))

	for len(out) < want {
		if ctx.Err() != nil {
			break
		}
		n, rerr := stream.Read(buf[:min(len(buf), want-len(out))])
		out = append(out, buf[:n]...)
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			if ctx.Err() != nil {
				break // the device was torn down by the timeout
			}
			return nil, deviceError("trng.Capture: read", rerr)
		}
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, fmt.Errorf("trng.Capture: %w", ctx.Err())
	}

	return out, nil
}

// deviceError wraps err so that it always matches sampler.ErrDeviceUnavailable.
func deviceError(op string, err error) error {
	if errors.Is(err, sampler.ErrDeviceUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %w: %v", op, sampler.ErrDeviceUnavailable, err)
}
